package runelookup

import (
	"strconv"
	"strings"
)

// keyVersion prefixes every cache key; bump it when Result or the key
// layout changes so shared stores do not serve stale shapes.
const keyVersion = "v1"

// key encodes the full argument tuple of a lookup. Strings are quoted,
// so no replacement or extra printable value can forge a separator.
func (p lookupParams) key(r rune) string {
	var b strings.Builder
	b.Grow(32 + len(p.replacement) + len(p.extraPrintable))

	b.WriteString(keyVersion)
	b.WriteByte('|')
	b.WriteString(strconv.FormatInt(int64(r), 16))
	b.WriteByte('|')
	b.WriteString(strconv.FormatBool(p.caseSensitive))
	b.WriteByte('|')
	b.WriteString(strconv.Quote(p.replacement))
	b.WriteByte('|')
	b.WriteString(strconv.Quote(p.extraPrintable))

	return b.String()
}
