package component

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var lowerCaser = cases.Lower(language.Und)

// Kebab converts an attribute name such as "userId" or "User Id" into
// "user-id". Names made only of lower-case ASCII letters are returned as is.
// Each upper-case ASCII letter that follows another character gets a hyphen,
// so acronyms split per letter ("XMLHttp" becomes "x-m-l-http").
func Kebab(name string) string {
	if isLowerASCII(name) {
		return name
	}

	// Capitalise the first letter of every word, then drop the whitespace.
	var words strings.Builder
	words.Grow(len(name))
	startOfWord := true
	for _, r := range name {
		if unicode.IsSpace(r) {
			startOfWord = true
			continue
		}
		if startOfWord && r >= 'a' && r <= 'z' {
			r -= 'a' - 'A'
		}
		startOfWord = false
		words.WriteRune(r)
	}

	var out strings.Builder
	out.Grow(words.Len() + 4)
	for i, r := range words.String() {
		if i > 0 && r >= 'A' && r <= 'Z' {
			out.WriteByte('-')
		}
		out.WriteRune(r)
	}
	return lowerCaser.String(out.String())
}

func isLowerASCII(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}
