package logging

import (
	"context"
	"log/slog"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountingHandler(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	var errors atomic.Int64
	logger := slog.New(&countingHandler{
		next:   slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}),
		errors: &errors,
	})

	logger.Debug("quiet")
	logger.Info("something")
	logger.Warn("skipping unreadable dir")
	assert.Zero(t, errors.Load())
	assert.NotContains(t, buf.String(), "quiet")

	logger.ErrorContext(context.Background(), "create log file")
	assert.EqualValues(t, 1, errors.Load())

	// derived loggers keep counting
	logger.With("path", "x").WithGroup("g").Error("rename")
	assert.EqualValues(t, 2, errors.Load())
	assert.Contains(t, buf.String(), "path=x")
}

func TestCountingHandlerHiddenErrors(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	var errors atomic.Int64
	logger := slog.New(&countingHandler{
		next:   slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelError + 4}),
		errors: &errors,
	})

	logger.Error("hidden")
	assert.EqualValues(t, 1, errors.Load())
	assert.Empty(t, buf.String())
}
