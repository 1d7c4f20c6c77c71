// Package api assembles the JSON API module with the catalog and wizard
// handlers, route registration, and the generated OpenAPI document.
package api

import (
	"net/http"

	"github.com/JaimeStill/charter/internal/config"
	"github.com/JaimeStill/charter/internal/infrastructure"
	"github.com/JaimeStill/charter/internal/sessions"
	"github.com/JaimeStill/charter/pkg/formatting"
	"github.com/JaimeStill/charter/pkg/middleware"
	"github.com/JaimeStill/charter/pkg/module"
	"github.com/JaimeStill/charter/pkg/openapi"
	"github.com/JaimeStill/charter/pkg/routes"
)

// NewModule creates the API module with all handlers and middleware.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, error) {
	runtime := NewRuntime(cfg, infra)

	wizardRoutes := NewWizardHandler(runtime.Logger).Routes()
	wizardRoutes.Middleware = append(wizardRoutes.Middleware, sessions.Middleware(runtime.Sessions, runtime.Logger))

	groups := []routes.Group{
		NewCatalogHandler(runtime.Logger).Routes(),
		wizardRoutes,
	}

	specBytes, err := buildSpec(cfg, groups)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	routes.Register(mux, groups...)
	mux.HandleFunc("GET /openapi.json", openapi.ServeSpec(specBytes))

	m, err := module.New(cfg.API.BasePath, mux)
	if err != nil {
		return nil, err
	}
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.Logger(runtime.Logger))
	m.Use(middleware.MaxBytes(runtime.MaxBodySize))
	m.Use(sessions.Attach(runtime.Sessions))

	runtime.Logger.Info(
		"api module configured",
		"base_path", cfg.API.BasePath,
		"max_body_size", formatting.FormatBytes(runtime.MaxBodySize, 0),
	)

	return m, nil
}
