package bcptag

import "fmt"

func ExampleNormalize() {
	fmt.Println(Normalize("en_us"))
	fmt.Println(Normalize("zH-haNS-cn"))
	fmt.Println(Normalize("I_Klingon"))
	// Output:
	// en-US
	// zh-Hans-CN
	// i-klingon
}

func ExampleParseTag() {
	pt, _ := ParseTag("de-DE-1901")
	fmt.Printf("language=%s script=%q region=%s variants=%v\n",
		pt.Language, pt.Script, pt.Region, pt.Variants)
	// Output:
	// language=de script="" region=DE variants=[1901]
}

func ExampleResolveCanonical() {
	subject := MustNew("en-GB", TagOpts{}).LanguageTag()
	resolved, _ := ResolveCanonical(subject, []string{"en-US", "en-GB", "fr-FR"})
	fmt.Println(resolved)
	// Output:
	// en-GB
}

func ExampleNew() {
	tag, _ := New("en_gb", TagOpts{
		Fallback:            "en-US",
		CanonicalCandidates: []string{"en-US", "en-GB", "fr-FR"},
	})
	fmt.Println(tag, tag.Posix())
	// Output:
	// en-GB en_GB
}

func ExampleNew_fallback() {
	tag, _ := New("not-a-real-locale", TagOpts{Fallback: "en-US"})
	fmt.Println(tag)
	// Output:
	// en-US
}
