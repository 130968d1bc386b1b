// Package textutil holds small text helpers shared by the app services.
package textutil

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// TitleCase uppercases the first letter of every word, collapsing
// repeated spaces. Entity names are normalized through this before
// storage and uniqueness checks.
func TitleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
