package bcptag

// constants for subtag separators
const (
	HyphenSeparator     = "-"
	UnderscoreSeparator = "_"
)

// constants for positional subtag shapes. The parser classifies a token by
// its length and character class alone; registry membership is checked
// separately during validation.
const (
	ScriptSubtagLen      = 4
	RegionAlphaSubtagLen = 2
	RegionDigitSubtagLen = 3
)

// constants for canonical resolver scoring. The weights encode a strict
// preference order language > region > script: a script match can never
// outweigh a region mismatch.
const (
	ScoreLanguageMatch = 100
	ScoreRegionMatch   = 10
	ScoreScriptMatch   = 1
)

// gjson paths into the registry snapshot document
const (
	SnapshotLanguagesPath     = "languages"
	SnapshotScriptsPath       = "scripts"
	SnapshotRegionsPath       = "regions"
	SnapshotVariantsPath      = "variants"
	SnapshotGrandfatheredPath = "grandfathered"
	SnapshotFileDatePath      = "metadata.fileDate"
	SnapshotIDPath            = "metadata.snapshotId"
)
