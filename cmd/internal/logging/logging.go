package logging

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"sync/atomic"
)

// Setup installs a text logger on stderr as the slog default and registers
// -log-level. Call the returned func last thing in main: it exits with 1 if
// any record at error level or above was logged, and 0 otherwise.
func Setup() (exit func()) {
	var level slog.LevelVar
	flag.TextVar(&level, "log-level", &level, "Minimum level of log records to print (debug, info, warn, error)")

	var errors atomic.Int64
	slog.SetDefault(slog.New(&countingHandler{
		next:   slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: &level}),
		errors: &errors,
	}))
	slog.SetLogLoggerLevel(slog.LevelError)

	return func() {
		if errors.Load() > 0 {
			os.Exit(1)
		}
		os.Exit(0)
	}
}

// countingHandler counts error records on their way to next. Loggers derived
// with With or WithGroup share the count.
type countingHandler struct {
	next   slog.Handler
	errors *atomic.Int64
}

func (h *countingHandler) Enabled(ctx context.Context, level slog.Level) bool {
	// errors are always counted, even when the level hides them
	return level >= slog.LevelError || h.next.Enabled(ctx, level)
}

func (h *countingHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= slog.LevelError {
		h.errors.Add(1)
	}
	if !h.next.Enabled(ctx, r.Level) {
		return nil
	}
	return h.next.Handle(ctx, r)
}

func (h *countingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &countingHandler{next: h.next.WithAttrs(attrs), errors: h.errors}
}

func (h *countingHandler) WithGroup(name string) slog.Handler {
	return &countingHandler{next: h.next.WithGroup(name), errors: h.errors}
}
