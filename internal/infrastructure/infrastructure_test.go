package infrastructure_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/JaimeStill/charter/internal/config"
	"github.com/JaimeStill/charter/internal/form"
	"github.com/JaimeStill/charter/internal/generation"
	"github.com/JaimeStill/charter/internal/infrastructure"
	"github.com/JaimeStill/charter/internal/locale"
)

func validConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	if err := cfg.Session.Finalize(nil); err != nil {
		t.Fatalf("session finalize: %v", err)
	}
	if err := cfg.Wizard.Finalize(); err != nil {
		t.Fatalf("wizard finalize: %v", err)
	}
	if err := cfg.Generation.Finalize(nil); err != nil {
		t.Fatalf("generation finalize: %v", err)
	}
	return cfg
}

func TestNew(t *testing.T) {
	infra, err := infrastructure.New(validConfig(t))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if infra.Lifecycle == nil {
		t.Error("Lifecycle is nil")
	}
	if infra.Logger == nil {
		t.Error("Logger is nil")
	}
	if infra.Generator == nil {
		t.Error("Generator is nil")
	}
	if infra.Sessions == nil {
		t.Error("Sessions is nil")
	}
}

func TestNewWithoutCredentialFailsAtGeneration(t *testing.T) {
	infra, err := infrastructure.New(validConfig(t))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	_, err = infra.Generator.Generate(context.Background(), "privacy-policy", form.Defaults(time.Now()), locale.English)
	if err == nil {
		t.Fatal("expected generation error without api key")
	}
	if !errors.Is(err, generation.ErrFailed) || !errors.Is(err, generation.ErrMissingCredential) {
		t.Errorf("error: got %v, want ErrFailed wrapping ErrMissingCredential", err)
	}
}

func TestWizardFactoryUsesWizardConfig(t *testing.T) {
	cfg := validConfig(t)
	cfg.Wizard.DefaultLocale = "ru"

	infra, err := infrastructure.New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	sess, err := infra.Sessions.Resolve(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got := sess.Wizard.Locale(); got != locale.Russian {
		t.Errorf("locale: got %s, want ru", got)
	}
}

func TestStartAndShutdown(t *testing.T) {
	infra, err := infrastructure.New(validConfig(t))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if _, err := infra.Sessions.Resolve(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil)); err != nil {
		t.Fatalf("resolve: %v", err)
	}

	if err := infra.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	infra.Lifecycle.WaitForStartup()
	if !infra.Lifecycle.Ready() {
		t.Error("lifecycle should be ready after startup")
	}

	if err := infra.Lifecycle.Shutdown(5 * time.Second); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
	if n := infra.Sessions.Len(); n != 0 {
		t.Errorf("sessions after shutdown: got %d, want 0", n)
	}
}
