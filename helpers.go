package bcptag

import "strings"

///////////////////////////////////////////////////////////////////////////////
// Helpers
///////////////////////////////////////////////////////////////////////////////

// isAlpha reports whether s is non-empty and consists only of ASCII letters.
// Subtags are guaranteed ASCII by the tag grammar.
func isAlpha(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}

// isDigit reports whether s is non-empty and consists only of ASCII digits.
func isDigit(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// titleCase upper-cases the first byte of s and lower-cases the rest, the
// conventional rendering for script subtags ("hans" -> "Hans").
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
