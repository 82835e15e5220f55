// Package bcptag parses, normalizes, validates, and canonicalizes language
// identifiers following the IETF BCP 47 tag grammar (RFC 5646).
//
// Given a raw tag string such as "en_us", "zH-haNS-cn", or "i-klingon",
// the package decides whether the tag is well-formed, breaks it into its
// language/script/region/variant subtags, checks those subtags against a
// snapshot of the IANA Language Subtag Registry, and optionally resolves an
// under-specified tag (e.g. language-only "en") to the best match from an
// application-supplied list of canonical tags.
//
// The package is layered bottom-up:
//
//   - Normalize(): rewrites separators and casing into a canonical shape and
//     recognizes grandfathered whole-tag forms early.
//   - ParseTag(): splits a normalized string into a ParsedTag using
//     positional grammar rules.
//   - Registry: an immutable snapshot of five subtag sets (languages,
//     scripts, regions, variants, grandfathered tags) with membership and
//     whole-tag validation queries. The default instance is loaded once
//     from an embedded registry snapshot and reused for the process
//     lifetime.
//   - ResolveCanonical(): scores a caller-supplied candidate list against a
//     validated tag and picks the best match (language > region > script).
//   - New(): the orchestrating entry point. Normalize, parse, validate,
//     optionally fall back to a second locale when the primary is invalid,
//     and optionally resolve against canonical candidates. The resulting
//     Tag is immutable.
//
// Every operation is a pure function over immutable inputs once the default
// Registry has been constructed, so all of the package is safe for
// concurrent use. The only side effect in the package is the one-time lazy
// Registry load.
//
// All failure modes are expected outcomes of bad caller input, never
// programming bugs in the package: ParseError, RegistryValidationError,
// NoCanonicalMatchError, and the facade errors (InvalidArgumentError,
// InvalidLocaleError, InvalidFallbackLocaleError, InvalidMatchingTagError)
// all carry the offending input in their message. RegistryLoadError is the
// one startup-configuration failure: the embedded snapshot is missing or
// malformed.
//
// Extension ("-u-...") and private-use ("-x-...") subtag sequences are not
// supported: their tokens fall through to variants during parsing and are
// rejected by registry validation. Grandfathered forms are matched as whole
// tags before decomposition, so legacy "i-..." tags are unaffected.
package bcptag

/**
PLANNING:
- Extension and private-use subtag sequences (RFC 5646 section 2.2.6/2.2.7).
  Would need a singleton-aware scanner in ParseTag; today those tokens land
  in Variants and fail validation.
- Preferred-Value canonicalization for deprecated subtags (e.g. iw -> he).
  Requires carrying the registry's preferred-value mapping in the snapshot.
- Likely-subtag expansion (en -> en-Latn-US) as an alternative resolver
  strategy when no candidate list is supplied.
*/
