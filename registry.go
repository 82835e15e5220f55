package bcptag

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
)

///////////////////////////////////////////////////////////////////////////////
// Errors
///////////////////////////////////////////////////////////////////////////////

// RegistryValidationError is returned when a structurally parsed tag fails
// subtag membership checks. It is an expected, recoverable outcome (a
// user-typed locale simply being wrong), not a bug.
type RegistryValidationError struct {
	Tag string
}

// Error implements the error interface
func (e RegistryValidationError) Error() string {
	return fmt.Sprintf("language tag %q failed subtag registry validation", e.Tag)
}

///////////////////////////////////////////////////////////////////////////////
// Registry
///////////////////////////////////////////////////////////////////////////////

// Registry is an immutable snapshot of the IANA Language Subtag Registry:
// five subtag sets plus the grandfathered whole-tag forms. All queries are
// pure and deterministic, and a Registry is safe for unlimited concurrent
// readers because it is never mutated after construction.
//
// Stored casing follows the per-class convention (language lower, script
// title, region upper, variant lower), applied once at construction so that
// membership checks only need to canonicalize the query.
type Registry struct {
	languages map[string]struct{}
	scripts   map[string]struct{}
	regions   map[string]struct{}
	variants  map[string]struct{}

	// grandfathered maps the lower-cased form of each legacy whole tag to
	// its canonical stored form ("i-klingon", "en-GB-oed").
	grandfathered map[string]string

	fileDate   string
	snapshotID uuid.UUID
}

// RegistryStats reports the per-set entry counts of a Registry.
type RegistryStats struct {
	Languages     int
	Scripts       int
	Regions       int
	Variants      int
	Grandfathered int
}

// NewRegistry builds a Registry from a snapshot. Entries are deduplicated
// and re-cased per the subtag-class convention; the input slices are not
// retained.
func NewRegistry(snap Snapshot) *Registry {
	r := &Registry{
		languages:     make(map[string]struct{}, len(snap.Languages)),
		scripts:       make(map[string]struct{}, len(snap.Scripts)),
		regions:       make(map[string]struct{}, len(snap.Regions)),
		variants:      make(map[string]struct{}, len(snap.Variants)),
		grandfathered: make(map[string]string, len(snap.Grandfathered)),
		fileDate:      snap.FileDate,
		snapshotID:    snap.SnapshotID,
	}
	for _, s := range snap.Languages {
		r.languages[strings.ToLower(s)] = struct{}{}
	}
	for _, s := range snap.Scripts {
		r.scripts[titleCase(s)] = struct{}{}
	}
	for _, s := range snap.Regions {
		r.regions[strings.ToUpper(s)] = struct{}{}
	}
	for _, s := range snap.Variants {
		r.variants[strings.ToLower(s)] = struct{}{}
	}
	for _, s := range snap.Grandfathered {
		r.grandfathered[strings.ToLower(s)] = s
	}
	return r
}

///////////////////////////////////////////////////////////////////////////////
// Default Registry Singleton
///////////////////////////////////////////////////////////////////////////////

var (
	defaultRegistryOnce sync.Once
	defaultRegistry     *Registry
	defaultRegistryErr  error
)

// DefaultRegistry returns the process-wide Registry built from the embedded
// snapshot. The first call materializes the instance; every subsequent
// call, including concurrent first-access from multiple goroutines, returns
// the same immutable instance (or the same memoized RegistryLoadError).
//
// Components that should not depend on package-level state can instead take
// an explicitly constructed *Registry via NewRegistry and the method forms
// of Normalize, ParseTag, ResolveCanonical, and NewTag.
func DefaultRegistry() (*Registry, error) {
	defaultRegistryOnce.Do(func() {
		snap, err := DecodeSnapshot(embeddedSnapshot)
		if err != nil {
			defaultRegistryErr = err
			return
		}
		defaultRegistry = NewRegistry(snap)
	})
	return defaultRegistry, defaultRegistryErr
}

///////////////////////////////////////////////////////////////////////////////
// Membership Queries
///////////////////////////////////////////////////////////////////////////////

// IsValidLanguage reports whether s is a registered primary language
// subtag. The query is lower-cased before lookup.
func (r *Registry) IsValidLanguage(s string) bool {
	_, ok := r.languages[strings.ToLower(s)]
	return ok
}

// IsValidScript reports whether s is a registered script subtag. The query
// is title-cased before lookup.
func (r *Registry) IsValidScript(s string) bool {
	_, ok := r.scripts[titleCase(s)]
	return ok
}

// IsValidRegion reports whether s is a registered region subtag. The query
// is upper-cased before lookup (a no-op for the 3-digit numeric regions).
func (r *Registry) IsValidRegion(s string) bool {
	_, ok := r.regions[strings.ToUpper(s)]
	return ok
}

// IsValidVariant reports whether s is a registered variant subtag. The
// query is lower-cased before lookup.
func (r *Registry) IsValidVariant(s string) bool {
	_, ok := r.variants[strings.ToLower(s)]
	return ok
}

// IsGrandfathered reports whether tag matches a registered grandfathered
// whole-tag form, case-insensitively.
func (r *Registry) IsGrandfathered(tag string) bool {
	_, ok := r.grandfathered[strings.ToLower(tag)]
	return ok
}

// CanonicalGrandfathered returns the canonical stored form of a
// grandfathered tag ("I-KLINGON" -> "i-klingon", "en-gb-oed" ->
// "en-GB-oed") and whether tag matched one.
func (r *Registry) CanonicalGrandfathered(tag string) (string, bool) {
	canonical, ok := r.grandfathered[strings.ToLower(tag)]
	return canonical, ok
}

// FileDate returns the IANA File-Date of the source registry file the
// snapshot was built from.
func (r *Registry) FileDate() string {
	return r.fileDate
}

// SnapshotID returns the snapshot build identifier, or uuid.Nil when the
// provider did not stamp one.
func (r *Registry) SnapshotID() uuid.UUID {
	return r.snapshotID
}

// Stats returns the per-set entry counts.
func (r *Registry) Stats() RegistryStats {
	return RegistryStats{
		Languages:     len(r.languages),
		Scripts:       len(r.scripts),
		Regions:       len(r.regions),
		Variants:      len(r.variants),
		Grandfathered: len(r.grandfathered),
	}
}

///////////////////////////////////////////////////////////////////////////////
// Whole-Tag Validation
///////////////////////////////////////////////////////////////////////////////

// ValidateOpts tightens IsValidParsedTag beyond plain membership checking:
// a required component that is absent makes the tag invalid.
type ValidateOpts struct {
	RequireRegion bool
	RequireScript bool
}

// IsValidParsedTag reports whether every component of tag is registered.
//
// A tag whose canonical string form matches a grandfathered whole tag
// short-circuits to valid. Otherwise the language must validate, each
// present optional component must validate, and each component marked
// required in opts must be present.
func (r *Registry) IsValidParsedTag(tag ParsedTag, opts ValidateOpts) bool {
	if r.IsGrandfathered(tag.String()) {
		return true
	}
	if !r.IsValidLanguage(tag.Language) {
		return false
	}
	if opts.RequireScript && tag.Script == "" {
		return false
	}
	if tag.Script != "" && !r.IsValidScript(tag.Script) {
		return false
	}
	if opts.RequireRegion && tag.Region == "" {
		return false
	}
	if tag.Region != "" && !r.IsValidRegion(tag.Region) {
		return false
	}
	for _, v := range tag.Variants {
		if !r.IsValidVariant(v) {
			return false
		}
	}
	return true
}

// ValidateParsedTag returns a RegistryValidationError iff tag fails
// IsValidParsedTag with no required-component flags.
func (r *Registry) ValidateParsedTag(tag ParsedTag) error {
	if !r.IsValidParsedTag(tag, ValidateOpts{}) {
		return RegistryValidationError{Tag: tag.StringWithVariants()}
	}
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// LanguageTag
///////////////////////////////////////////////////////////////////////////////

// LanguageTag is a validated refinement of ParsedTag: structurally
// identical, but only constructible by passing registry validation, and
// immutable for its entire lifetime. It carries no reference back to the
// Registry that validated it; validation is a one-time gate, not a live
// constraint.
type LanguageTag struct {
	parsed ParsedTag
}

// NewLanguageTag promotes a ParsedTag to a LanguageTag, failing with a
// RegistryValidationError when any component is unregistered.
func (r *Registry) NewLanguageTag(tag ParsedTag) (LanguageTag, error) {
	if err := r.ValidateParsedTag(tag); err != nil {
		return LanguageTag{}, err
	}
	// Copy the variants so later mutation of the input slice cannot reach
	// the validated tag.
	tag.Variants = append([]string(nil), tag.Variants...)
	return LanguageTag{parsed: tag}, nil
}

// Language returns the primary language subtag (or the whole canonical form
// for grandfathered tags).
func (lt LanguageTag) Language() string { return lt.parsed.Language }

// Script returns the script subtag, or "" when absent.
func (lt LanguageTag) Script() string { return lt.parsed.Script }

// Region returns the region subtag, or "" when absent.
func (lt LanguageTag) Region() string { return lt.parsed.Region }

// Variants returns a copy of the variant subtags in their original order.
func (lt LanguageTag) Variants() []string {
	if len(lt.parsed.Variants) == 0 {
		return nil
	}
	return append([]string(nil), lt.parsed.Variants...)
}

// String renders the canonical form language[-Script][-REGION], variants
// excluded.
func (lt LanguageTag) String() string { return lt.parsed.String() }

// StringWithVariants renders the canonical form with variants appended.
func (lt LanguageTag) StringWithVariants() string { return lt.parsed.StringWithVariants() }
