package runelookup

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// StandardPrintable is the printable ASCII set in its conventional order:
// digits, lowercase letters, uppercase letters, punctuation, then
// space, tab, newline, carriage return, vertical tab and form feed.
const StandardPrintable = "0123456789" +
	"abcdefghijklmnopqrstuvwxyz" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~" +
	" \t\n\r\v\f"

// printableSet is the per-call effective printable set.
//
// It is kept as an ordered string rather than a rune set: a name word is
// printable when it occurs in the string as a substring. Single-letter
// words therefore match any printable letter, and multi-letter words match
// runs such as "DEF" or caller-supplied extras such as "AE".
type printableSet string

// newPrintableSet appends the uppercased extra characters to StandardPrintable.
// Uppercasing uses full case mapping, so "ß" contributes "SS".
func newPrintableSet(extra string) printableSet {
	if extra == "" {
		return StandardPrintable
	}
	// cases.Caser is stateful; a fresh one per call keeps this goroutine-safe.
	return printableSet(StandardPrintable + cases.Upper(language.Und).String(extra))
}

func (p printableSet) containsWord(word string) bool {
	return strings.Contains(string(p), word)
}

func (p printableSet) containsRune(r rune) bool {
	return strings.ContainsRune(string(p), r)
}
