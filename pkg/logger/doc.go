// Package logger builds log/slog loggers for runelookup binaries.
//
// Libraries in this module default to [NewNope] and accept a
// *slog.Logger through their options; binaries create one with [New]:
//
//	log := logger.New(os.Stderr, logger.Config{Level: "debug", Format: "text"})
//	log.Debug("lookup computed", slog.String("rune", "U+00E9"))
//
// # Sentry Integration
//
// Setting Config.SentryDSN tees warnings and errors into Sentry through
// sentry-go's slog handler. Errors create Issues; warnings are kept as logs.
// An empty DSN, or a failed SDK initialization, leaves local logging only.
// Call [Flush] before exiting so buffered events are delivered.
package logger
