package bcptag

import (
	"fmt"
	"strings"
)

///////////////////////////////////////////////////////////////////////////////
// Errors
///////////////////////////////////////////////////////////////////////////////

// NoCanonicalMatchError is returned when no candidate shares the subject's
// language. Candidates that failed to parse or validate are listed
// separately: each bad candidate is a caller-input error surfaced here
// rather than silently dropped, but an individual bad candidate never
// aborts the scan.
type NoCanonicalMatchError struct {
	Subject    string
	Candidates []string
	Invalid    []string
}

// Error implements the error interface
func (e NoCanonicalMatchError) Error() string {
	msg := fmt.Sprintf("no canonical match for %q among [%s]",
		e.Subject, strings.Join(e.Candidates, ", "))
	if len(e.Invalid) > 0 {
		msg += fmt.Sprintf(" (invalid candidates: [%s])", strings.Join(e.Invalid, ", "))
	}
	return msg
}

///////////////////////////////////////////////////////////////////////////////
// Canonical Resolver
///////////////////////////////////////////////////////////////////////////////

// ResolveCanonical resolves subject against candidates using the default
// registry. See Registry.ResolveCanonical.
func ResolveCanonical(subject LanguageTag, candidates []string) (LanguageTag, error) {
	r, err := DefaultRegistry()
	if err != nil {
		return LanguageTag{}, err
	}
	return r.ResolveCanonical(subject, candidates)
}

// ResolveCanonical picks the best match for subject from a caller-supplied
// list of canonical tag strings.
//
// Each candidate is parsed and validated; ones that fail are skipped (and
// reported in the NoCanonicalMatchError if nothing matches). Candidates
// whose language differs from the subject's are discarded. Survivors are
// scored: 100 for the guaranteed language match, +10 when region is present
// on both sides and equal, +1 when script is present on both sides and
// equal. The maximum-scoring candidate wins; ties go to the earliest
// candidate in input order (first-wins, never overwritten by a later equal
// score).
func (r *Registry) ResolveCanonical(subject LanguageTag, candidates []string) (LanguageTag, error) {
	var (
		best      LanguageTag
		bestScore int
		found     bool
		invalid   []string
	)

	for _, raw := range candidates {
		pt, err := r.ParseTag(raw)
		if err != nil {
			invalid = append(invalid, raw)
			continue
		}
		candidate, err := r.NewLanguageTag(pt)
		if err != nil {
			invalid = append(invalid, raw)
			continue
		}
		if candidate.Language() != subject.Language() {
			continue
		}

		score := ScoreLanguageMatch
		if subject.Region() != "" && candidate.Region() == subject.Region() {
			score += ScoreRegionMatch
		}
		if subject.Script() != "" && candidate.Script() == subject.Script() {
			score += ScoreScriptMatch
		}

		if !found || score > bestScore {
			best = candidate
			bestScore = score
			found = true
		}
	}

	if !found {
		return LanguageTag{}, NoCanonicalMatchError{
			Subject:    subject.StringWithVariants(),
			Candidates: append([]string(nil), candidates...),
			Invalid:    invalid,
		}
	}
	return best, nil
}
