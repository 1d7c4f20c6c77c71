package config

import (
	"fmt"
	"os"
	"time"

	"github.com/JaimeStill/charter/internal/locale"
)

// AppConfig holds settings for the server-rendered web app.
type AppConfig struct {
	BasePath string `toml:"base_path"`
}

// Finalize applies defaults and environment variable overrides.
func (c *AppConfig) Finalize() error {
	if c.BasePath == "" {
		c.BasePath = "/app"
	}
	if v := os.Getenv("CHARTER_APP_BASE_PATH"); v != "" {
		c.BasePath = v
	}
	return nil
}

// Merge overwrites non-zero fields from overlay.
func (c *AppConfig) Merge(overlay *AppConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
}

// WizardConfig holds per-session wizard settings.
type WizardConfig struct {
	CopiedFor     string `toml:"copied_for"`
	DefaultLocale string `toml:"default_locale"`
}

// CopiedForDuration returns CopiedFor as a time.Duration.
func (c *WizardConfig) CopiedForDuration() time.Duration {
	d, _ := time.ParseDuration(c.CopiedFor)
	return d
}

// Locale returns DefaultLocale as a locale.Locale.
func (c *WizardConfig) Locale() locale.Locale {
	return locale.Locale(c.DefaultLocale)
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *WizardConfig) Finalize() error {
	if c.CopiedFor == "" {
		c.CopiedFor = "2s"
	}
	if c.DefaultLocale == "" {
		c.DefaultLocale = string(locale.Default)
	}
	if v := os.Getenv("CHARTER_WIZARD_COPIED_FOR"); v != "" {
		c.CopiedFor = v
	}
	if v := os.Getenv("CHARTER_WIZARD_DEFAULT_LOCALE"); v != "" {
		c.DefaultLocale = v
	}

	d, err := time.ParseDuration(c.CopiedFor)
	if err != nil {
		return fmt.Errorf("invalid copied_for: %w", err)
	}
	if d <= 0 {
		return fmt.Errorf("copied_for must be positive: %s", c.CopiedFor)
	}
	l, err := locale.Parse(c.DefaultLocale)
	if err != nil {
		return fmt.Errorf("default_locale: %w", err)
	}
	c.DefaultLocale = string(l)
	return nil
}

// Merge overwrites non-zero fields from overlay.
func (c *WizardConfig) Merge(overlay *WizardConfig) {
	if overlay.CopiedFor != "" {
		c.CopiedFor = overlay.CopiedFor
	}
	if overlay.DefaultLocale != "" {
		c.DefaultLocale = overlay.DefaultLocale
	}
}
