// Command runelookup prints ASCII-safe suggestions for the characters of
// its input, either as composed text or as per-character records.
//
//	runelookup "Montréal" "kožušček"
//	echo "cætera" | runelookup -in - -extra ae -format yaml
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/dmitrymomot/runelookup"
	"github.com/dmitrymomot/runelookup/pkg/cache"
	"github.com/dmitrymomot/runelookup/pkg/logger"
	"github.com/dmitrymomot/runelookup/pkg/redis"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := run(ctx, os.Args[1:], env.ToMap(os.Environ()), os.Stdin, os.Stdout, os.Stderr)
	switch {
	case err == nil:
	case errors.Is(err, flag.ErrHelp):
		os.Exit(2)
	default:
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, environ map[string]string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, texts, err := loadConfig(args, environ, stderr)
	if err != nil {
		return err
	}

	log := logger.New(stderr, cfg.Log)
	defer logger.Flush(2 * time.Second)

	classifier, closeFn, err := newClassifier(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeFn()

	lines, err := inputLines(cfg.Input, texts, stdin)
	if err != nil {
		return err
	}

	opts := []runelookup.LookupOption{
		runelookup.CaseSensitive(cfg.CaseSensitive),
		runelookup.Replacement(cfg.Replacement),
		runelookup.ExtraPrintable(cfg.ExtraPrintable),
	}

	out := newWriter(cfg.Format, stdout)
	for line, err := range lines {
		if err != nil {
			return fmt.Errorf("runelookup: read input: %w", err)
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := out.WriteLine(lookupLine(ctx, classifier, log, line, cfg.Replacement, opts)); err != nil {
			return fmt.Errorf("runelookup: write output: %w", err)
		}
	}

	stats := classifier.Stats()
	log.DebugContext(ctx, "lookups finished",
		slog.Uint64("hits", stats.Hits),
		slog.Uint64("misses", stats.Misses),
	)

	return nil
}

// newClassifier builds a classifier with an in-process memo, or a Redis
// backed one when a URL is configured.
func newClassifier(ctx context.Context, cfg Config, log *slog.Logger) (*runelookup.Classifier, func(), error) {
	if cfg.RedisURL == "" {
		c := runelookup.New(runelookup.WithLogger(log))
		return c, func() { _ = c.Close() }, nil
	}

	client, err := redis.Open(ctx, cfg.RedisURL, redis.WithLogger(log))
	if err != nil {
		return nil, nil, err
	}

	store := cache.NewRedis[runelookup.Result](client, nil, cache.WithPrefix(cfg.RedisPrefix))
	c := runelookup.New(runelookup.WithStore(store), runelookup.WithLogger(log))

	return c, func() {
		_ = c.Close()
		_ = client.Close()
	}, nil
}

// lookupLine classifies every rune of line. Characters that cannot be
// looked up are reported and replaced with the configured replacement.
func lookupLine(ctx context.Context, c *runelookup.Classifier, log *slog.Logger, line, replacement string, opts []runelookup.LookupOption) []record {
	records := make([]record, 0, len(line))
	for _, r := range line {
		rec := record{Char: string(r), Code: fmt.Sprintf("%U", r)}

		res, err := c.LookupContext(ctx, r, opts...)
		if err != nil {
			log.WarnContext(ctx, "character lookup failed",
				slog.String("code", rec.Code),
				slog.String("error", err.Error()),
			)
			rec.Error = err.Error()
			res = runelookup.Result{Suggested: replacement}
		}

		rec.Result = res
		records = append(records, rec)
	}
	return records
}

// inputLines yields the positional texts, or the lines of the -in source.
func inputLines(input string, texts []string, stdin io.Reader) (iter.Seq2[string, error], error) {
	if input == "" {
		if len(texts) == 0 {
			return nil, errUsage
		}
		return func(yield func(string, error) bool) {
			for _, t := range texts {
				if !yield(t, nil) {
					return
				}
			}
		}, nil
	}

	var src io.Reader
	var closer io.Closer
	if input == pipeName {
		if isTerminal(stdin) {
			return nil, errors.New("runelookup: `-` should be used with a pipe for stdin")
		}
		src = stdin
	} else {
		f, err := os.Open(input)
		if err != nil {
			return nil, fmt.Errorf("runelookup: open input: %w", err)
		}
		src, closer = f, f
	}

	return func(yield func(string, error) bool) {
		if closer != nil {
			defer closer.Close()
		}

		scanner := bufio.NewScanner(src)
		for scanner.Scan() {
			if !yield(scanner.Text(), nil) {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			yield("", err)
		}
	}, nil
}
