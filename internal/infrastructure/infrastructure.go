// Package infrastructure provides core service initialization for application startup.
// It assembles the dependencies every module shares: lifecycle coordination,
// logging, the generation client, and the session store.
package infrastructure

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/JaimeStill/charter/internal/config"
	"github.com/JaimeStill/charter/internal/generation"
	"github.com/JaimeStill/charter/internal/sessions"
	"github.com/JaimeStill/charter/internal/wizard"
	"github.com/JaimeStill/charter/pkg/lifecycle"
)

// Infrastructure holds the core systems required by all modules.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Generator generation.Client
	Sessions  sessions.System
}

// New creates an Infrastructure from the application configuration.
// It initializes all systems but does not start them; call Start separately.
func New(cfg *config.Config) (*Infrastructure, error) {
	lc := lifecycle.New()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	generator, err := generation.New(lc.Context(), &cfg.Generation, &cfg.Agent, logger)
	if err != nil {
		return nil, fmt.Errorf("generation init failed: %w", err)
	}

	return NewWith(cfg, lc, logger, generator), nil
}

// NewWith assembles an Infrastructure around an existing generation client.
func NewWith(cfg *config.Config, lc *lifecycle.Coordinator, logger *slog.Logger, generator generation.Client) *Infrastructure {
	return &Infrastructure{
		Lifecycle: lc,
		Logger:    logger,
		Generator: generator,
		Sessions:  sessions.New(&cfg.Session, WizardFactory(cfg, generator, logger), logger),
	}
}

// WizardFactory returns a sessions.Factory that builds each session's wizard
// from the wizard config.
func WizardFactory(cfg *config.Config, generator generation.Client, logger *slog.Logger) sessions.Factory {
	wcfg := wizard.Config{
		CopiedFor: cfg.Wizard.CopiedForDuration(),
		Locale:    cfg.Wizard.Locale(),
	}
	return func(clipboard wizard.Clipboard) (*wizard.Controller, error) {
		return wizard.New(generator, clipboard, wcfg, logger)
	}
}

// Start registers all infrastructure systems with the lifecycle coordinator.
func (i *Infrastructure) Start() error {
	if err := i.Sessions.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("sessions start failed: %w", err)
	}
	return nil
}
