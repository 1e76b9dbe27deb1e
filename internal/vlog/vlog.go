// Package vlog is the engine's structured logging wrapper. No example
// in the corpus pulls in a third-party structured logger (zap/zerolog/
// logrus never appear in any go.mod this port draws from), so this
// wraps the standard library's own structured logger rather than
// inventing a dependency the corpus never reaches for.
package vlog

import (
	"log/slog"
	"os"
)

// Logger is a *slog.Logger alias, kept as a named type so call sites
// read as vlog.Logger rather than a raw stdlib type.
type Logger = *slog.Logger

var base = slog.New(slog.NewTextHandler(os.Stderr, nil))

// Default returns the package-level logger every component not handed
// an explicit Logger falls back to.
func Default() Logger { return base }

// SetDefault replaces the package-level logger, for a CLI entry point
// wiring in a different handler (e.g. JSON output, a different level).
func SetDefault(l Logger) { base = l }

// With returns a child logger carrying args as structured fields on
// every subsequent record, mirroring run.cpp's per-run diagnostic line
// ("Engine: %s | Query: %s | Threads: %ld | VectorSize: %ld") but as
// attributed structured fields instead of a formatted string.
func With(args ...any) Logger { return base.With(args...) }
