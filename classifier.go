package runelookup

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/runelookup/pkg/cache"
	"github.com/dmitrymomot/runelookup/pkg/logger"
)

// Classifier looks up characters and memoizes the results.
//
// Results are keyed by the exact argument tuple (character, case
// sensitivity, replacement, extra printable characters). Entries are never
// evicted: the key space is bounded by the Unicode code point range times
// the option combinations a caller uses. A Classifier is safe for
// concurrent use.
type Classifier struct {
	memo   *cache.Memo[Result]
	names  NameFunc
	logger *slog.Logger
}

// New creates a Classifier with its own memo table unless WithMemo or
// WithStore is given.
func New(opts ...Option) *Classifier {
	o := &options{
		names:  UnicodeName,
		logger: logger.NewNope(),
	}
	for _, opt := range opts {
		opt(o)
	}

	memo := o.memo
	if memo == nil {
		memo = cache.NewMemo(o.store)
	}

	return &Classifier{
		memo:   memo,
		names:  o.names,
		logger: o.logger,
	}
}

// Lookup classifies r and proposes a replacement for it.
func (c *Classifier) Lookup(r rune, opts ...LookupOption) (Result, error) {
	return c.LookupContext(context.Background(), r, opts...)
}

// LookupContext is Lookup with a context for stores that perform I/O.
//
// It fails with ErrInvalidCharacter when r is not a Unicode scalar value
// and with ErrNoName when r has no Unicode name. Failures are not cached.
func (c *Classifier) LookupContext(ctx context.Context, r rune, opts ...LookupOption) (Result, error) {
	if !utf8.ValidRune(r) {
		return Result{}, fmt.Errorf("%w: %#x", ErrInvalidCharacter, int64(r))
	}

	p := newLookupParams(opts)
	res, err := c.memo.GetOrCompute(ctx, p.key(r), func(ctx context.Context) (Result, error) {
		return c.classify(ctx, r, p)
	})
	if err != nil {
		return Result{}, err
	}

	return res.clone(), nil
}

// LookupString is Lookup for a string holding exactly one code point.
// Empty strings, invalid UTF-8 and longer strings fail with ErrInvalidCharacter.
func (c *Classifier) LookupString(s string, opts ...LookupOption) (Result, error) {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) || (r == utf8.RuneError && size == 1) {
		return Result{}, fmt.Errorf("%w: %q", ErrInvalidCharacter, s)
	}
	return c.Lookup(r, opts...)
}

// Stats reports how many lookups were served from the memo and how many
// were computed.
func (c *Classifier) Stats() cache.Stats {
	return c.memo.Stats()
}

// Close closes the underlying store.
func (c *Classifier) Close() error {
	return c.memo.Close()
}

func (c *Classifier) classify(ctx context.Context, r rune, p lookupParams) (Result, error) {
	name, err := c.names(r)
	if err != nil {
		return Result{}, err
	}

	words := nameWords(name)
	if len(words) == 0 {
		return Result{}, noNameError(r)
	}

	printable := newPrintableSet(p.extraPrintable)
	base := words[0]

	res := Result{
		Words:             words,
		IsPrintableLetter: printable.containsWord(base),
		IsPrintable:       printable.containsRune(r),
		IsCapital:         slices.Contains(words, "CAPITAL"),
		Suggested:         p.replacement,
	}

	switch {
	case res.IsPrintableLetter:
		res.Suggested = base
		if p.caseSensitive && !res.IsCapital {
			res.Suggested = cases.Lower(language.Und).String(base)
		}
	case res.IsPrintable:
		res.Suggested = string(r)
	}

	c.logger.DebugContext(ctx, "character classified",
		slog.String("rune", fmt.Sprintf("%U", r)),
		slog.String("name", name),
		slog.String("suggested", res.Suggested),
	)

	return res, nil
}

var defaultClassifier = sync.OnceValue(func() *Classifier { return New() })

// Default returns the process-wide Classifier used by the package-level
// Lookup and LookupString. Its memo lives for the life of the process.
func Default() *Classifier {
	return defaultClassifier()
}

// Lookup classifies r with the default Classifier.
func Lookup(r rune, opts ...LookupOption) (Result, error) {
	return Default().Lookup(r, opts...)
}

// LookupString classifies the single code point in s with the default Classifier.
func LookupString(s string, opts ...LookupOption) (Result, error) {
	return Default().LookupString(s, opts...)
}
