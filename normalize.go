package bcptag

import "strings"

// Normalize rewrites separators and casing of a raw locale string into the
// canonical BCP 47 shape. It never fails: the result is a string, possibly
// unchanged. Underscores become hyphens, then casing is applied by position:
//
//	"en"          -> "en"           (language lower-cased)
//	"en_us"       -> "en-US"        (second part treated as region)
//	"zH-haNS-cn"  -> "zh-Hans-CN"   (script title-cased, region upper-cased)
//
// Any casing or underscore variant of a grandfathered tag (e.g. "I_Klingon")
// short-circuits to the registry's canonical stored form.
//
// The positional rules are a heuristic, not grammar validation: with three
// or more parts the second part is title-cased even when it is actually a
// region or variant token (e.g. "de-DE-1901" normalizes to "de-De-1901").
// ParseTag re-interprets and re-cases the components it classifies; only the
// normalized string keeps the positional guess.
func Normalize(raw string) string {
	r, err := DefaultRegistry()
	if err != nil {
		// No registry means no grandfathered lookup; the positional rules
		// still apply.
		return normalizeParts(strings.ReplaceAll(raw, UnderscoreSeparator, HyphenSeparator))
	}
	return r.Normalize(raw)
}

// Normalize is the registry-backed form of the package-level Normalize. The
// registry only contributes the grandfathered whole-tag lookup.
func (r *Registry) Normalize(raw string) string {
	s := strings.ReplaceAll(raw, UnderscoreSeparator, HyphenSeparator)
	if canonical, ok := r.CanonicalGrandfathered(s); ok {
		return canonical
	}
	return normalizeParts(s)
}

// normalizeParts applies the positional casing rules to a hyphen-separated
// string.
func normalizeParts(s string) string {
	parts := strings.Split(s, HyphenSeparator)
	switch len(parts) {
	case 1:
		return strings.ToLower(parts[0])
	case 2:
		return strings.ToLower(parts[0]) + HyphenSeparator + strings.ToUpper(parts[1])
	default:
		parts[0] = strings.ToLower(parts[0])
		parts[1] = titleCase(parts[1])
		parts[2] = strings.ToUpper(parts[2])
		// parts beyond index 2 are left untouched
		return strings.Join(parts, HyphenSeparator)
	}
}
