package logger_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shashiranjanraj/storefront/pkg/logger"
)

func TestWithCtxFallsBackToBase(t *testing.T) {
	assert.Same(t, logger.L, logger.WithCtx(context.Background()))
}

func TestInjectLogger(t *testing.T) {
	var buf bytes.Buffer
	reqLog := slog.New(slog.NewTextHandler(&buf, nil)).With("request_id", "abc")
	ctx := logger.InjectLogger(context.Background(), reqLog)

	logger.WithCtx(ctx).Info("cart updated")
	assert.Contains(t, buf.String(), "request_id=abc")
	assert.Contains(t, buf.String(), `msg="cart updated"`)
}

func TestMultiHandlerFansOut(t *testing.T) {
	var a, b bytes.Buffer
	h := logger.NewMultiHandler(
		slog.NewTextHandler(&a, nil),
		slog.NewJSONHandler(&b, nil),
	)
	slog.New(h).With("email", "jane@example.com").Info("login")

	assert.Contains(t, a.String(), "email=jane@example.com")
	assert.Contains(t, b.String(), `"email":"jane@example.com"`)
}

func TestMultiHandlerRespectsLevels(t *testing.T) {
	var buf bytes.Buffer
	h := logger.NewMultiHandler(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
	log := slog.New(h)

	log.Info("dropped")
	log.Warn("kept")
	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "kept")
}

func TestSetOutput(t *testing.T) {
	orig := logger.L
	defer func() { logger.L = orig; slog.SetDefault(orig) }()

	var buf bytes.Buffer
	logger.SetOutput(&buf)
	logger.Warn("seed skipped", "products", 6)
	assert.Contains(t, buf.String(), "seed skipped")
}
