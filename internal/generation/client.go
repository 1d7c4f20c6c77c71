// Package generation delegates document drafting to an external text-generation service.
package generation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/JaimeStill/charter/internal/form"
	"github.com/JaimeStill/charter/internal/locale"
	"github.com/JaimeStill/charter/internal/policies"
	"github.com/JaimeStill/charter/pkg/formatting"
)

// Client produces a complete document for a kind, business details, and locale.
type Client interface {
	Generate(ctx context.Context, kind policies.Kind, data form.Data, l locale.Locale) (string, error)
}

// Provider performs one completion against a text-generation backend.
type Provider interface {
	Complete(ctx context.Context, prompt Prompt) (string, error)
}

type client struct {
	provider Provider
	timeout  time.Duration
	logger   *slog.Logger
}

// NewClient wraps a provider with prompt composition, response cleanup, and a
// per-request timeout. A zero timeout disables the deadline.
func NewClient(provider Provider, timeout time.Duration, logger *slog.Logger) Client {
	return &client{
		provider: provider,
		timeout:  timeout,
		logger:   logger.With("system", "generation"),
	}
}

// Generate runs a single request. The call is detached from ctx cancellation:
// once issued it runs until it resolves or the timeout elapses.
func (c *client) Generate(ctx context.Context, kind policies.Kind, data form.Data, l locale.Locale) (string, error) {
	prompt, err := ComposePrompt(kind, data, l)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFailed, err)
	}

	ctx = context.WithoutCancel(ctx)
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	raw, err := c.provider.Complete(ctx, prompt)
	if err != nil {
		c.logger.Error(
			"generation failed",
			"kind", kind,
			"locale", l,
			"duration", time.Since(start),
			"error", err,
		)
		return "", fmt.Errorf("%w: %w", ErrFailed, err)
	}

	text := formatting.StripFence(raw)
	if text == "" {
		c.logger.Warn("generation returned empty response", "kind", kind, "locale", l)
		return "", fmt.Errorf("%w: %w", ErrFailed, ErrEmptyResponse)
	}

	c.logger.Info(
		"document generated",
		"kind", kind,
		"locale", l,
		"chars", len(text),
		"duration", time.Since(start),
	)
	return text, nil
}
