package runelookup

import "slices"

// Result describes a character and the ASCII-safe replacement proposed for it.
type Result struct {
	// Words are the words of the Unicode name, shortest first.
	Words []string `json:"all_data" yaml:"all_data"`

	// IsPrintableLetter reports whether the shortest name word belongs to
	// the printable set, making it usable as the base letter.
	IsPrintableLetter bool `json:"is_printable_letter" yaml:"is_printable_letter"`

	// IsPrintable reports whether the character itself belongs to the printable set.
	IsPrintable bool `json:"is_printable" yaml:"is_printable"`

	// IsCapital reports whether the name contains the word CAPITAL.
	IsCapital bool `json:"is_capital" yaml:"is_capital"`

	// Suggested is the proposed replacement: the base letter, the character
	// itself, or the caller's replacement token (possibly empty).
	Suggested string `json:"suggested" yaml:"suggested"`
}

// BaseWord returns the shortest word of the Unicode name.
func (r Result) BaseWord() string {
	if len(r.Words) == 0 {
		return ""
	}
	return r.Words[0]
}

// clone returns a copy that does not share the Words backing array.
func (r Result) clone() Result {
	r.Words = slices.Clone(r.Words)
	return r
}
