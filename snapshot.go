package bcptag

import (
	_ "embed"
	"fmt"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
)

///////////////////////////////////////////////////////////////////////////////
// Errors
///////////////////////////////////////////////////////////////////////////////

// RegistryLoadError is returned when a registry snapshot is missing or
// malformed. For the embedded default snapshot this is a
// startup-configuration problem, raised once at first use and memoized.
type RegistryLoadError struct {
	Reason string
}

// Error implements the error interface
func (e RegistryLoadError) Error() string {
	return fmt.Sprintf("failed to load subtag registry snapshot: %s", e.Reason)
}

///////////////////////////////////////////////////////////////////////////////
// Snapshot
///////////////////////////////////////////////////////////////////////////////

// embeddedSnapshot is the packaged IANA Language Subtag Registry snapshot.
// How the file is produced (fetched, reformatted, stamped) is the snapshot
// builder's concern; this package only consumes the five collections and
// the metadata block.
//
//go:embed registry_snapshot.json
var embeddedSnapshot []byte

// Snapshot is the raw material a Registry is built from: five named string
// collections plus the metadata identifying the registry build. Any
// provider able to produce one of these can back a Registry; the embedded
// JSON document is merely the default provider.
type Snapshot struct {
	Languages     []string
	Scripts       []string
	Regions       []string
	Variants      []string
	Grandfathered []string

	// FileDate is the IANA File-Date header of the source registry file.
	FileDate string
	// SnapshotID identifies the snapshot build, for reproducibility
	// reporting by embedding applications. uuid.Nil when the provider did
	// not stamp one.
	SnapshotID uuid.UUID
}

// DecodeSnapshot decodes a registry snapshot JSON document. All five
// collections are required; the metadata block is optional but must be
// well-formed when present. Failures are reported as RegistryLoadError.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	if len(data) == 0 {
		return Snapshot{}, RegistryLoadError{Reason: "snapshot source is empty"}
	}
	if !gjson.ValidBytes(data) {
		return Snapshot{}, RegistryLoadError{Reason: "snapshot source is not valid JSON"}
	}

	root := gjson.ParseBytes(data)

	snap := Snapshot{
		FileDate: root.Get(SnapshotFileDatePath).String(),
	}

	collections := []struct {
		path string
		dest *[]string
	}{
		{SnapshotLanguagesPath, &snap.Languages},
		{SnapshotScriptsPath, &snap.Scripts},
		{SnapshotRegionsPath, &snap.Regions},
		{SnapshotVariantsPath, &snap.Variants},
		{SnapshotGrandfatheredPath, &snap.Grandfathered},
	}
	for _, c := range collections {
		col := root.Get(c.path)
		if !col.IsArray() {
			return Snapshot{}, RegistryLoadError{
				Reason: fmt.Sprintf("snapshot is missing the %q collection", c.path),
			}
		}
		for _, entry := range col.Array() {
			if entry.Type != gjson.String {
				return Snapshot{}, RegistryLoadError{
					Reason: fmt.Sprintf("collection %q contains a non-string entry: %s", c.path, entry.Raw),
				}
			}
			*c.dest = append(*c.dest, entry.String())
		}
	}

	if id := root.Get(SnapshotIDPath); id.Exists() {
		parsed, err := uuid.Parse(id.String())
		if err != nil {
			return Snapshot{}, RegistryLoadError{
				Reason: fmt.Sprintf("snapshot id %q is not a valid UUID: %v", id.String(), err),
			}
		}
		snap.SnapshotID = parsed
	}

	return snap, nil
}
