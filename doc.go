// Package runelookup classifies single characters using the Unicode
// character database and proposes ASCII-safe replacements for them.
//
// The suggestion comes from a simple heuristic: the shortest word of the
// character's Unicode name is taken as its base letter. Accented Latin
// letters, whose names end in a one-letter base ("LATIN SMALL LETTER E
// WITH ACUTE"), map to that letter; characters that are already printable
// ASCII map to themselves; everything else maps to a caller-chosen
// replacement token.
//
// # Quick Start
//
//	res, err := runelookup.Lookup('é')
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Suggested) // "e"
//
// Lookups work on one character at a time. To transliterate a string,
// compose the results yourself:
//
//	var b strings.Builder
//	for _, r := range "Montréal" {
//	    res, err := runelookup.Lookup(r, runelookup.Replacement("x"))
//	    if err != nil {
//	        return err
//	    }
//	    b.WriteString(res.Suggested)
//	}
//	// b.String() == "Montreal"
//
// # Lookup Options
//
//   - CaseSensitive(false) keeps the uppercase spelling of the Unicode name
//     for lowercase letters ("é" → "E"). Default: true ("é" → "e").
//   - Replacement("x") sets the fallback suggestion. Default: "" (drop).
//   - ExtraPrintable("ae") extends the printable set for one lookup; the
//     value is uppercased, so "æ" (LATIN SMALL LETTER AE) maps to "ae".
//
// # Printable Set
//
// The printable set is [StandardPrintable] followed by the uppercased
// extra characters. A name word counts as printable when it occurs in that
// string as a substring, so besides single letters it also matches runs
// like "DEF" ("CYRILLIC SMALL LETTER DE" → "de") and supplied extras.
//
// # Known Limitations
//
// The heuristic is not a transliteration scheme. "ß" (LATIN SMALL LETTER
// SHARP S) becomes "s", ligatures need ExtraPrintable, and most non-Latin
// letters fall back to the replacement because their shortest name word
// is a script name such as "GREEK". When several words share the minimum
// length, the one appearing first in the name wins.
//
// # Caching
//
// Each [Classifier] memoizes results by the exact argument tuple in a
// [github.com/dmitrymomot/runelookup/pkg/cache.Memo]. The package-level
// functions use a process-wide classifier returned by [Default]. Create
// your own with [New] for isolated tests or to plug in a shared store:
//
//	store := cache.NewRedis[runelookup.Result](client, nil, cache.WithPrefix("runelookup"))
//	c := runelookup.New(runelookup.WithStore(store), runelookup.WithLogger(log))
//
// Entries are never evicted; the key space is bounded by the code point
// range and the option combinations in use.
//
// # Errors
//
//   - [ErrInvalidCharacter]: the input is not exactly one Unicode scalar value
//   - [ErrNoName]: the code point has no Unicode name (unassigned, control,
//     private use)
//
// Use [errors.Is] to check.
package runelookup
