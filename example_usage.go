package bcptag

import (
	"errors"
	"fmt"
	"log"
)

// ExampleUsage walks through the typical lifecycle: normalize a sloppy
// locale, parse it, validate it, and resolve it against the set of tags an
// application actually ships translations for.
func ExampleUsage() {
	// Example 1: a browser-style locale with the wrong separator and casing.
	fmt.Println("=== Example 1: Normalize + Parse ===")

	fmt.Println(Normalize("en_us"))      // en-US
	fmt.Println(Normalize("zH-haNS-cn")) // zh-Hans-CN

	pt, err := ParseTag("de-DE-1901")
	if err != nil {
		log.Fatalf("parse failed: %v", err)
	}
	fmt.Printf("language=%s region=%s variants=%v\n", pt.Language, pt.Region, pt.Variants)

	// Example 2: the facade with fallback and canonical resolution.
	fmt.Println("=== Example 2: Facade ===")

	supported := []string{"en-US", "en-GB", "fr-FR", "de-DE"}

	tag, err := New("en_gb", TagOpts{
		Fallback:            "en-US",
		CanonicalCandidates: supported,
	})
	if err != nil {
		log.Fatalf("tag construction failed: %v", err)
	}
	fmt.Printf("canonical: %s posix: %s\n", tag, tag.Posix())

	// Example 3: invalid input falls back.
	tag, err = New("not-a-locale", TagOpts{Fallback: "en-US", CanonicalCandidates: supported})
	if err != nil {
		log.Fatalf("fallback flow failed: %v", err)
	}
	fmt.Printf("fell back to: %s\n", tag)

	// Example 4: expected failures carry the offending inputs.
	_, err = New("invalid", TagOpts{Fallback: "also-invalid"})
	var fallbackErr InvalidFallbackLocaleError
	if errors.As(err, &fallbackErr) {
		fmt.Printf("both inputs rejected: %v\n", err)
	}
}
