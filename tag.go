package bcptag

import (
	"encoding/json"
	"fmt"
	"strings"
)

///////////////////////////////////////////////////////////////////////////////
// Errors
///////////////////////////////////////////////////////////////////////////////

// InvalidArgumentError is returned by New before any parsing work when the
// supplied options contradict each other (an unreachable fallback).
type InvalidArgumentError struct {
	Reason string
}

// Error implements the error interface
func (e InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument: %s", e.Reason)
}

// InvalidLocaleError is returned by New when the input locale is invalid
// and no fallback was supplied.
type InvalidLocaleError struct {
	Locale string
}

// Error implements the error interface
func (e InvalidLocaleError) Error() string {
	return fmt.Sprintf("locale %q is not a valid language tag", e.Locale)
}

// InvalidFallbackLocaleError is returned by New when both the input locale
// and the fallback are invalid. It names both so the caller sees the full
// failure.
type InvalidFallbackLocaleError struct {
	Locale   string
	Fallback string
}

// Error implements the error interface
func (e InvalidFallbackLocaleError) Error() string {
	return fmt.Sprintf("neither locale %q nor fallback %q is a valid language tag",
		e.Locale, e.Fallback)
}

// InvalidMatchingTagError is returned by New when canonical resolution of
// an otherwise valid working tag found no candidate sharing its language.
type InvalidMatchingTagError struct {
	Tag        string
	Candidates []string
}

// Error implements the error interface
func (e InvalidMatchingTagError) Error() string {
	return fmt.Sprintf("tag %q has no match among canonical candidates [%s]",
		e.Tag, strings.Join(e.Candidates, ", "))
}

///////////////////////////////////////////////////////////////////////////////
// Tag Facade
///////////////////////////////////////////////////////////////////////////////

// TagOpts configures New. The zero value asks for plain parse-and-validate
// of the input with no fallback and no canonical resolution.
type TagOpts struct {
	// Fallback is a second locale to parse and validate when the input is
	// invalid. Empty means no fallback.
	Fallback string
	// CanonicalCandidates, when non-empty, makes New resolve the working
	// tag against this list via ResolveCanonical. When a Fallback is also
	// supplied it must be normalization-equal to one of the candidates,
	// otherwise the fallback could never survive resolution.
	CanonicalCandidates []string
}

// Tag is the finished product of the normalize -> parse -> validate ->
// resolve pipeline: a validated, optionally canonicalized language tag.
// It is immutable.
type Tag struct {
	tag LanguageTag
}

// New builds a Tag from input using the default registry. See
// Registry.NewTag for the full contract.
func New(input string, opts TagOpts) (Tag, error) {
	r, err := DefaultRegistry()
	if err != nil {
		return Tag{}, err
	}
	return r.NewTag(input, opts)
}

// MustNew is like New but panics on error. Use it for
// compile-time-constant locales only.
func MustNew(input string, opts TagOpts) Tag {
	t, err := New(input, opts)
	if err != nil {
		panic(err)
	}
	return t
}

// NewTag builds a Tag from input.
//
// When both a fallback and canonical candidates are supplied, the fallback
// must be normalization-equal to one of the candidates; this is checked
// before any parsing work and fails with InvalidArgumentError.
//
// The input is then parsed and validated. An invalid input without a
// fallback fails with InvalidLocaleError; with a fallback, the fallback is
// parsed and validated instead, and if that also fails the error is an
// InvalidFallbackLocaleError naming both. When candidates are supplied the
// working tag is resolved against them, and a failed resolution surfaces as
// InvalidMatchingTagError.
func (r *Registry) NewTag(input string, opts TagOpts) (Tag, error) {
	if opts.Fallback != "" && len(opts.CanonicalCandidates) > 0 {
		normalizedFallback := r.Normalize(opts.Fallback)
		reachable := false
		for _, c := range opts.CanonicalCandidates {
			if r.Normalize(c) == normalizedFallback {
				reachable = true
				break
			}
		}
		if !reachable {
			return Tag{}, InvalidArgumentError{
				Reason: fmt.Sprintf("fallback %q is not among the canonical candidates [%s]",
					opts.Fallback, strings.Join(opts.CanonicalCandidates, ", ")),
			}
		}
	}

	working, ok := r.parseAndValidate(input)
	if !ok {
		if opts.Fallback == "" {
			return Tag{}, InvalidLocaleError{Locale: input}
		}
		working, ok = r.parseAndValidate(opts.Fallback)
		if !ok {
			return Tag{}, InvalidFallbackLocaleError{Locale: input, Fallback: opts.Fallback}
		}
	}

	if len(opts.CanonicalCandidates) > 0 {
		resolved, err := r.ResolveCanonical(working, opts.CanonicalCandidates)
		if err != nil {
			return Tag{}, InvalidMatchingTagError{
				Tag:        working.StringWithVariants(),
				Candidates: append([]string(nil), opts.CanonicalCandidates...),
			}
		}
		working = resolved
	}

	return Tag{tag: working}, nil
}

// parseAndValidate is the option-style form of ParseTag + NewLanguageTag
// used by the fallback flow: "parse or validate failed" is a boolean
// outcome here, a deliberate control-flow conversion rather than error
// hiding. The hard errors stay reserved for New's final outcomes.
func (r *Registry) parseAndValidate(locale string) (LanguageTag, bool) {
	pt, err := r.ParseTag(locale)
	if err != nil {
		return LanguageTag{}, false
	}
	lt, err := r.NewLanguageTag(pt)
	if err != nil {
		return LanguageTag{}, false
	}
	return lt, true
}

///////////////////////////////////////////////////////////////////////////////
// Output Formats
///////////////////////////////////////////////////////////////////////////////

// LanguageTag returns the validated tag backing t, e.g. for use as a
// ResolveCanonical subject.
func (t Tag) LanguageTag() LanguageTag { return t.tag }

// Language returns the primary language subtag.
func (t Tag) Language() string { return t.tag.Language() }

// Script returns the script subtag, or "" when absent.
func (t Tag) Script() string { return t.tag.Script() }

// Region returns the region subtag, or "" when absent.
func (t Tag) Region() string { return t.tag.Region() }

// Variants returns a copy of the variant subtags in their original order.
func (t Tag) Variants() []string { return t.tag.Variants() }

// String renders the default canonical form language[-Script][-REGION].
// Variants are excluded here and included in StringWithVariants and in the
// JSON serialization; callers relying on the textual form must account for
// that asymmetry.
func (t Tag) String() string { return t.tag.String() }

// StringWithVariants renders the canonical form with variants appended.
func (t Tag) StringWithVariants() string { return t.tag.StringWithVariants() }

// Posix renders the canonical form with underscore separators
// ("en-US" -> "en_US").
func (t Tag) Posix() string {
	return strings.ReplaceAll(t.String(), HyphenSeparator, UnderscoreSeparator)
}

// Lower renders the canonical form all lower-cased ("en-us").
func (t Tag) Lower() string { return strings.ToLower(t.String()) }

// Upper renders the canonical form all upper-cased ("EN-US").
func (t Tag) Upper() string { return strings.ToUpper(t.String()) }

// PosixLower renders the underscore form all lower-cased ("en_us").
func (t Tag) PosixLower() string { return strings.ToLower(t.Posix()) }

// PosixUpper renders the underscore form all upper-cased ("EN_US").
func (t Tag) PosixUpper() string { return strings.ToUpper(t.Posix()) }

// Map returns the structured record form of the tag. Absent script/region
// are nil, variants are always a slice (possibly empty), ordered as parsed.
func (t Tag) Map() map[string]any {
	m := map[string]any{
		"language": t.Language(),
		"script":   nil,
		"region":   nil,
		"variants": t.variantsOrEmpty(),
	}
	if s := t.Script(); s != "" {
		m["script"] = s
	}
	if reg := t.Region(); reg != "" {
		m["region"] = reg
	}
	return m
}

// tagJSON fixes the serialized field order and keeps nulls for absent
// script/region.
type tagJSON struct {
	Language string   `json:"language"`
	Script   *string  `json:"script"`
	Region   *string  `json:"region"`
	Variants []string `json:"variants"`
}

// MarshalJSON implements json.Marshaler with the same shape as Map.
func (t Tag) MarshalJSON() ([]byte, error) {
	out := tagJSON{
		Language: t.Language(),
		Variants: t.variantsOrEmpty(),
	}
	if s := t.Script(); s != "" {
		out.Script = &s
	}
	if reg := t.Region(); reg != "" {
		out.Region = &reg
	}
	return json.Marshal(out)
}

func (t Tag) variantsOrEmpty() []string {
	if v := t.Variants(); v != nil {
		return v
	}
	return []string{}
}
