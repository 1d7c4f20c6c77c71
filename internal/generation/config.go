package generation

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	gaconfig "github.com/JaimeStill/go-agents/pkg/config"
)

// Provider names accepted by Config.Provider.
const (
	ProviderGemini = "gemini"
	ProviderAgent  = "agent"
)

// Config selects and configures the generation backend.
type Config struct {
	Provider string       `toml:"provider"`
	Timeout  string       `toml:"timeout"`
	Gemini   GeminiConfig `toml:"gemini"`
}

// DefaultTemperature applies when no temperature is configured.
const DefaultTemperature = 0.3

// GeminiConfig holds Gemini API settings. Temperature is a pointer so an
// explicit 0 is distinguishable from unset.
type GeminiConfig struct {
	APIKey      string   `toml:"api_key"`
	Model       string   `toml:"model"`
	Temperature *float64 `toml:"temperature"`
}

// TemperatureValue returns the configured temperature or DefaultTemperature.
func (c *GeminiConfig) TemperatureValue() float64 {
	if c.Temperature == nil {
		return DefaultTemperature
	}
	return *c.Temperature
}

// ConfigEnv maps config fields to environment variable names for override injection.
type ConfigEnv struct {
	Provider    string
	Timeout     string
	APIKey      string
	Model       string
	Temperature string
}

// TimeoutDuration returns Timeout as a time.Duration.
func (c *Config) TimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.Timeout)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *Config) Finalize(env *ConfigEnv) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.Provider != "" {
		c.Provider = overlay.Provider
	}
	if overlay.Timeout != "" {
		c.Timeout = overlay.Timeout
	}
	if overlay.Gemini.APIKey != "" {
		c.Gemini.APIKey = overlay.Gemini.APIKey
	}
	if overlay.Gemini.Model != "" {
		c.Gemini.Model = overlay.Gemini.Model
	}
	if overlay.Gemini.Temperature != nil {
		t := *overlay.Gemini.Temperature
		c.Gemini.Temperature = &t
	}
}

func (c *Config) loadDefaults() {
	if c.Provider == "" {
		c.Provider = ProviderGemini
	}
	if c.Timeout == "" {
		c.Timeout = "2m"
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Gemini.Temperature == nil {
		t := DefaultTemperature
		c.Gemini.Temperature = &t
	}
}

func (c *Config) loadEnv(env *ConfigEnv) {
	if env.Provider != "" {
		if v := os.Getenv(env.Provider); v != "" {
			c.Provider = v
		}
	}
	if env.Timeout != "" {
		if v := os.Getenv(env.Timeout); v != "" {
			c.Timeout = v
		}
	}
	if env.APIKey != "" {
		if v := os.Getenv(env.APIKey); v != "" {
			c.Gemini.APIKey = v
		}
	}
	if env.Model != "" {
		if v := os.Getenv(env.Model); v != "" {
			c.Gemini.Model = v
		}
	}
	if env.Temperature != "" {
		if v := os.Getenv(env.Temperature); v != "" {
			if t, err := strconv.ParseFloat(v, 64); err == nil {
				c.Gemini.Temperature = &t
			}
		}
	}
}

func (c *Config) validate() error {
	if c.Provider != ProviderGemini && c.Provider != ProviderAgent {
		return fmt.Errorf("%w: %s", ErrUnsupportedProvider, c.Provider)
	}
	if _, err := time.ParseDuration(c.Timeout); err != nil {
		return fmt.Errorf("invalid timeout: %w", err)
	}
	if t := c.Gemini.TemperatureValue(); t < 0 || t > 2 {
		return fmt.Errorf("invalid temperature: %v", t)
	}
	return nil
}

// New creates a Client for the configured provider.
func New(ctx context.Context, cfg *Config, agentCfg *gaconfig.AgentConfig, logger *slog.Logger) (Client, error) {
	var provider Provider

	switch cfg.Provider {
	case ProviderGemini:
		p, err := NewGemini(ctx, &cfg.Gemini)
		if err != nil {
			return nil, err
		}
		provider = p
		if cfg.Gemini.APIKey == "" {
			logger.Warn("gemini api key not configured; generation requests will fail")
		}
	case ProviderAgent:
		provider = NewAgent(*agentCfg)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedProvider, cfg.Provider)
	}

	return NewClient(provider, cfg.TimeoutDuration(), logger), nil
}
