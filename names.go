package runelookup

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/runenames"
)

// NameFunc resolves the Unicode standard name of r.
// It returns ErrNoName when r has no assigned name.
type NameFunc func(r rune) (string, error)

// Hangul syllable composition constants from the Unicode standard, section 3.12.
const (
	hangulBase   = 0xAC00
	hangulVCount = 21
	hangulTCount = 28
	hangulNCount = hangulVCount * hangulTCount
)

var (
	jamoLeading  = [...]string{"G", "GG", "N", "D", "DD", "R", "M", "B", "BB", "S", "SS", "", "J", "JJ", "C", "K", "T", "P", "H"}
	jamoVowel    = [...]string{"A", "AE", "YA", "YAE", "EO", "E", "YEO", "YE", "O", "WA", "WAE", "OE", "YO", "U", "WEO", "WE", "WI", "YU", "EU", "YI", "I"}
	jamoTrailing = [...]string{"", "G", "GG", "GS", "N", "NJ", "NH", "D", "L", "LG", "LM", "LB", "LS", "LT", "LP", "LH", "M", "B", "BS", "S", "SS", "NG", "J", "C", "K", "T", "P", "H"}
)

// UnicodeName is the default NameFunc, backed by golang.org/x/text/unicode/runenames.
//
// The table stores range labels such as "<CJK Ideograph>" or
// "<Hangul Syllable>" instead of per-character names. Those ranges get
// their algorithmic names ("CJK UNIFIED IDEOGRAPH-4E2D",
// "HANGUL SYLLABLE GA"); control codes, private use, surrogates and
// unassigned code points have no name.
func UnicodeName(r rune) (string, error) {
	name := runenames.Name(r)
	if name == "" {
		return "", noNameError(r)
	}
	if !strings.HasPrefix(name, "<") {
		return name, nil
	}

	label := strings.Trim(name, "<>")
	switch {
	case strings.HasPrefix(label, "CJK Ideograph"):
		return fmt.Sprintf("CJK UNIFIED IDEOGRAPH-%04X", r), nil
	case strings.HasPrefix(label, "Tangut Ideograph"):
		return fmt.Sprintf("TANGUT IDEOGRAPH-%04X", r), nil
	case strings.HasPrefix(label, "Hangul Syllable"):
		return hangulName(r), nil
	default:
		return "", noNameError(r)
	}
}

func hangulName(r rune) string {
	s := int(r - hangulBase)
	l := s / hangulNCount
	v := (s % hangulNCount) / hangulTCount
	t := s % hangulTCount
	return "HANGUL SYLLABLE " + jamoLeading[l] + jamoVowel[v] + jamoTrailing[t]
}

func noNameError(r rune) error {
	return fmt.Errorf("%w: %U", ErrNoName, r)
}
