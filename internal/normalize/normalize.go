// Package normalize folds tour text into a canonical form for gazetteer
// matching: diacritics are stripped and the result is lower-cased, so
// "Đà Nẵng", "Da Nang" and "da nang" all compare equal.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFD, drops combining marks, and recomposes.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// The Vietnamese letter đ/Đ is a base letter, not a mark, so canonical
// decomposition leaves it alone and it needs its own replacement.
var dBar = strings.NewReplacer("đ", "d", "Đ", "D")

// Text returns the folded form of s. It is total (any input, including the
// empty string, yields a result) and idempotent.
func Text(s string) string {
	folded, _, _ := transform.String(stripMarks, s)
	return strings.ToLower(dBar.Replace(folded))
}
