package runelookup

import (
	"log/slog"

	"github.com/dmitrymomot/runelookup/pkg/cache"
)

// Option configures a Classifier.
type Option func(*options)

type options struct {
	memo   *cache.Memo[Result]
	store  cache.Store[Result]
	names  NameFunc
	logger *slog.Logger
}

// WithStore memoizes results in store instead of a private in-memory store.
// Use cache.NewRedis to share results between processes.
func WithStore(store cache.Store[Result]) Option {
	return func(o *options) {
		o.store = store
	}
}

// WithMemo shares an existing memo between classifiers.
// It takes precedence over WithStore. Classifiers sharing a memo must use
// the same NameFunc, since keys do not include it.
func WithMemo(memo *cache.Memo[Result]) Option {
	return func(o *options) {
		o.memo = memo
	}
}

// WithNameFunc replaces the Unicode name database.
// Default: UnicodeName.
func WithNameFunc(fn NameFunc) Option {
	return func(o *options) {
		if fn != nil {
			o.names = fn
		}
	}
}

// WithLogger sets the logger used for debug output on cache misses.
// Default: no-op logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// LookupOption adjusts a single lookup.
type LookupOption func(*lookupParams)

type lookupParams struct {
	replacement    string
	extraPrintable string
	caseSensitive  bool
}

func newLookupParams(opts []LookupOption) lookupParams {
	p := lookupParams{caseSensitive: true}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// CaseSensitive controls whether a non-capital base letter is lowercased.
// With false, the base letter keeps the case of the Unicode name (uppercase).
// Default: true.
func CaseSensitive(enabled bool) LookupOption {
	return func(p *lookupParams) {
		p.caseSensitive = enabled
	}
}

// Replacement sets the suggestion used when neither the base letter nor
// the character itself is printable. Default: "" (drop the character).
func Replacement(s string) LookupOption {
	return func(p *lookupParams) {
		p.replacement = s
	}
}

// ExtraPrintable adds characters to the printable set for this lookup.
// They are uppercased before use, matching the uppercase Unicode names:
// ExtraPrintable("ae") lets "æ" (LATIN SMALL LETTER AE) map to "ae".
func ExtraPrintable(s string) LookupOption {
	return func(p *lookupParams) {
		p.extraPrintable = s
	}
}
