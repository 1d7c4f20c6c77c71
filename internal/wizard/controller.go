// Package wizard drives the select → details → review flow for one session.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/anggasct/fluo"
	"golang.org/x/sync/semaphore"

	"github.com/JaimeStill/charter/internal/form"
	"github.com/JaimeStill/charter/internal/generation"
	"github.com/JaimeStill/charter/internal/locale"
	"github.com/JaimeStill/charter/internal/policies"
)

// DefaultCopiedFor is how long the copied flag stays set after a copy.
const DefaultCopiedFor = 2 * time.Second

// Clipboard receives the full document text on copy.
type Clipboard interface {
	WriteText(text string) error
}

// Config tunes a Controller. Zero values select defaults.
type Config struct {
	// CopiedFor is how long Copied reports true after Copy.
	CopiedFor time.Duration
	// Locale is the starting locale.
	Locale locale.Locale
	// Now supplies the date used for form defaults.
	Now func() time.Time
	// After schedules f once after d and returns a function that cancels it.
	After func(d time.Duration, f func()) (stop func() bool)
}

func (c *Config) applyDefaults() {
	if c.CopiedFor <= 0 {
		c.CopiedFor = DefaultCopiedFor
	}
	if c.Locale == "" {
		c.Locale = locale.Default
	}
	if c.Now == nil {
		c.Now = time.Now
	}
	if c.After == nil {
		c.After = func(d time.Duration, f func()) func() bool {
			return time.AfterFunc(d, f).Stop
		}
	}
}

// Controller owns one session's State. All methods are safe for concurrent use.
type Controller struct {
	mu      sync.Mutex
	machine fluo.Machine
	state   *State
	locale  locale.Locale

	copied   bool
	copyGen  uint64
	stopCopy func() bool

	gate      *semaphore.Weighted
	generator generation.Client
	clipboard Clipboard
	cfg       Config
	logger    *slog.Logger
}

// New creates a Controller at the select step with form defaults.
func New(generator generation.Client, clipboard Clipboard, cfg Config, logger *slog.Logger) (*Controller, error) {
	cfg.applyDefaults()
	if _, err := locale.Parse(string(cfg.Locale)); err != nil {
		return nil, err
	}

	state := NewState(cfg.Now())
	logger = logger.With("system", "wizard")

	m := newMachine()
	m.Context().Set(keyState, &state)
	m.AddObserver(&transitionLogger{logger: logger})
	if err := m.Start(); err != nil {
		return nil, fmt.Errorf("start wizard machine: %w", err)
	}

	return &Controller{
		machine:   m,
		state:     &state,
		locale:    cfg.Locale,
		gate:      semaphore.NewWeighted(1),
		generator: generator,
		clipboard: clipboard,
		cfg:       cfg,
		logger:    logger,
	}, nil
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return *c.state
}

// Snapshot returns the state with locale, copied flag, and advisory form warnings.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		State:    *c.state,
		Locale:   c.locale,
		Copied:   c.copied,
		Warnings: c.state.Form.Warnings(),
	}
}

// Locale returns the active locale.
func (c *Controller) Locale() locale.Locale {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.locale
}

// Copied reports whether a copy happened within the copied window.
func (c *Controller) Copied() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.copied
}

// SetLocale switches the interface and document language at any step.
func (c *Controller) SetLocale(l locale.Locale) error {
	l, err := locale.Parse(string(l))
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.locale = l
	return nil
}

// Select records kind and advances to the details step.
func (c *Controller) Select(kind policies.Kind) error {
	kind, err := policies.Parse(string(kind))
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.send(eventSelect, kind)
}

// Update sets a single form field at the details step. Values are not
// validated beyond type coercion.
func (c *Controller) Update(field form.Field, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Step != StepEnterDetails {
		return ErrInvalidTransition
	}
	if c.state.Generating {
		return ErrGenerating
	}
	return c.state.Form.Set(field, value)
}

// Back returns to the select step and clears the chosen policy.
func (c *Controller) Back() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Generating {
		return ErrGenerating
	}
	return c.send(eventBack, nil)
}

// Submit generates the document for the current policy, form, and locale.
// Only one submission runs at a time; a concurrent call returns ErrGenerating
// immediately. On failure the state stays at the details step with the form
// untouched and the returned error wraps generation.ErrFailed.
func (c *Controller) Submit(ctx context.Context) error {
	if !c.gate.TryAcquire(1) {
		return ErrGenerating
	}
	defer c.gate.Release(1)

	c.mu.Lock()
	if c.state.Step != StepEnterDetails {
		c.mu.Unlock()
		return ErrInvalidTransition
	}
	c.state.Generating = true
	kind, data, l := c.state.Policy, c.state.Form, c.locale
	c.mu.Unlock()

	text, err := c.generator.Generate(ctx, kind, data, l)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Generating = false

	if err != nil {
		if !errors.Is(err, generation.ErrFailed) {
			err = fmt.Errorf("%w: %w", generation.ErrFailed, err)
		}
		c.logger.Warn("submit failed", "policy", kind, "locale", l, "error", err)
		return err
	}

	if err := c.send(eventGenerated, text); err != nil {
		return fmt.Errorf("%w: %w", generation.ErrFailed, generation.ErrEmptyResponse)
	}
	return nil
}

// Copy writes the document text verbatim to the clipboard and sets the
// copied flag, which clears on its own after the configured delay.
func (c *Controller) Copy() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Step != StepReview {
		return ErrInvalidTransition
	}
	if err := c.clipboard.WriteText(c.state.Text); err != nil {
		return fmt.Errorf("%w: %w", ErrClipboard, err)
	}

	c.clearCopyTimer()
	c.copied = true
	gen := c.copyGen
	c.stopCopy = c.cfg.After(c.cfg.CopiedFor, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.copyGen == gen {
			c.copied = false
			c.stopCopy = nil
		}
	})
	return nil
}

// StartOver resets the state to initial values. The locale is kept.
func (c *Controller) StartOver() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.send(eventStartOver, NewState(c.cfg.Now())); err != nil {
		return err
	}
	c.clearCopyTimer()
	c.copied = false
	return nil
}

// Close cancels any pending copied-flag timer and stops the machine.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clearCopyTimer()
	_ = c.machine.Stop()
}

func (c *Controller) clearCopyTimer() {
	c.copyGen++
	if c.stopCopy != nil {
		c.stopCopy()
		c.stopCopy = nil
	}
}

// send dispatches an event and syncs Step with the machine. Callers hold c.mu.
func (c *Controller) send(event string, data any) error {
	res := c.machine.SendEvent(event, data)
	if !res.Success() {
		reason := res.RejectionReason
		if reason == "" && res.Error != nil {
			reason = res.Error.Error()
		}
		return fmt.Errorf("%w: %s", ErrInvalidTransition, reason)
	}
	c.state.Step = Step(c.machine.CurrentState())
	return nil
}
