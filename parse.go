package bcptag

import (
	"fmt"
	"strings"
)

///////////////////////////////////////////////////////////////////////////////
// Errors
///////////////////////////////////////////////////////////////////////////////

// ParseError is returned when a locale string cannot be decomposed into
// subtags. It is always recoverable by the caller: the facade treats it as
// "tag is invalid" and moves on to the fallback flow.
type ParseError struct {
	Locale string
	Reason string
}

// Error implements the error interface
func (e ParseError) Error() string {
	return fmt.Sprintf("cannot parse locale %q: %s", e.Locale, e.Reason)
}

///////////////////////////////////////////////////////////////////////////////
// ParsedTag
///////////////////////////////////////////////////////////////////////////////

// ParsedTag is the structural decomposition of a locale string. It carries
// no validity guarantee beyond the positional grammar: each component still
// has to pass registry membership checks to become a LanguageTag.
//
// Absence of an optional component is represented by the empty string (or a
// nil Variants slice), never by a placeholder value. Language is never empty
// after a successful parse.
type ParsedTag struct {
	// Language is the primary language subtag, lower-cased ("en"), or the
	// canonical whole-tag form for grandfathered tags ("i-klingon").
	Language string
	// Script is the optional script subtag, title-cased ("Hans").
	Script string
	// Region is the optional region subtag, upper-cased when alphabetic
	// ("US") and kept verbatim when numeric ("419").
	Region string
	// Variants are the remaining subtags in their original order. They are
	// only checked against the registry during validation, not at parse
	// time.
	Variants []string
}

// String renders the canonical textual form language[-Script][-REGION].
// Variants are deliberately excluded; use StringWithVariants when they
// matter.
func (pt ParsedTag) String() string {
	var b strings.Builder
	b.WriteString(pt.Language)
	if pt.Script != "" {
		b.WriteString(HyphenSeparator)
		b.WriteString(pt.Script)
	}
	if pt.Region != "" {
		b.WriteString(HyphenSeparator)
		b.WriteString(pt.Region)
	}
	return b.String()
}

// StringWithVariants renders the canonical form with variants appended.
func (pt ParsedTag) StringWithVariants() string {
	s := pt.String()
	for _, v := range pt.Variants {
		s += HyphenSeparator + v
	}
	return s
}

///////////////////////////////////////////////////////////////////////////////
// Parsing
///////////////////////////////////////////////////////////////////////////////

// ParseTag normalizes locale and splits it into a ParsedTag using the
// default registry. It fails with a ParseError when the normalized string is
// empty, and with a RegistryLoadError when the default registry cannot be
// loaded.
func ParseTag(locale string) (ParsedTag, error) {
	r, err := DefaultRegistry()
	if err != nil {
		return ParsedTag{}, err
	}
	return r.ParseTag(locale)
}

// MustParseTag is like ParseTag but panics on error. Use it for
// compile-time-constant locales only.
func MustParseTag(locale string) ParsedTag {
	pt, err := ParseTag(locale)
	if err != nil {
		panic(err)
	}
	return pt
}

// ParseTag normalizes locale and splits it into a ParsedTag.
//
// A grandfathered tag is returned whole: its canonical form becomes the
// Language component and nothing else is set. Otherwise the first part is
// the language and the remaining parts are consumed positionally, each at
// most once:
//
//  1. a 4-letter token in the next position is the script (stored
//     title-cased);
//  2. a 2-letter or 3-digit token in the next position is the region
//     (stored upper-cased when alphabetic);
//  3. everything left over becomes Variants, in original order.
//
// Script and region are only recognized at their fixed position: a 4-letter
// token appearing after a region is never reclassified as a script, it falls
// through to Variants.
func (r *Registry) ParseTag(locale string) (ParsedTag, error) {
	normalized := r.Normalize(locale)
	if normalized == "" {
		return ParsedTag{}, ParseError{Locale: locale, Reason: "empty locale"}
	}

	if canonical, ok := r.CanonicalGrandfathered(normalized); ok {
		return ParsedTag{Language: canonical}, nil
	}

	parts := strings.Split(normalized, HyphenSeparator)
	pt := ParsedTag{Language: strings.ToLower(parts[0])}
	rest := parts[1:]

	if len(rest) > 0 && len(rest[0]) == ScriptSubtagLen && isAlpha(rest[0]) {
		pt.Script = titleCase(rest[0])
		rest = rest[1:]
	}

	if len(rest) > 0 {
		switch {
		case len(rest[0]) == RegionAlphaSubtagLen && isAlpha(rest[0]):
			pt.Region = strings.ToUpper(rest[0])
			rest = rest[1:]
		case len(rest[0]) == RegionDigitSubtagLen && isDigit(rest[0]):
			pt.Region = rest[0]
			rest = rest[1:]
		}
	}

	if len(rest) > 0 {
		pt.Variants = append([]string(nil), rest...)
	}

	return pt, nil
}
