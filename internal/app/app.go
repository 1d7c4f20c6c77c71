// Package app assembles the server-rendered wizard module.
package app

import (
	"net/http"

	"github.com/JaimeStill/charter/internal/config"
	"github.com/JaimeStill/charter/internal/infrastructure"
	"github.com/JaimeStill/charter/internal/sessions"
	"github.com/JaimeStill/charter/pkg/middleware"
	"github.com/JaimeStill/charter/pkg/module"
	"github.com/JaimeStill/charter/pkg/web"
	webapp "github.com/JaimeStill/charter/web/app"
)

// NewModule creates the web app module with its templates and static assets.
// Only the wizard step and action routes create sessions.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, error) {
	logger := infra.Logger.With("module", "app")

	ts, err := web.NewTemplateSet(
		webapp.FS,
		webapp.LayoutGlob,
		webapp.ViewDir,
		cfg.App.BasePath,
		funcs(cfg.App.BasePath),
		views,
	)
	if err != nil {
		return nil, err
	}

	handler := NewHandler(ts, logger)

	steps := handler.Routes()
	steps.Middleware = append(steps.Middleware, sessions.Middleware(infra.Sessions, logger))

	router := web.NewRouter()
	router.Register(steps)
	router.Handle("GET /static/", web.DistServer(webapp.FS, webapp.StaticDir, "/static"))
	router.SetFallback(handler.NotFound())

	m, err := module.New(cfg.App.BasePath, router)
	if err != nil {
		return nil, err
	}
	m.Use(middleware.Logger(logger))
	m.Use(middleware.MaxBytes(cfg.API.MaxBodySizeBytes()))
	m.Use(sessions.Attach(infra.Sessions))

	return m, nil
}

// Redirect sends requests for the site root to the app.
func Redirect(basePath string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, basePath+"/", http.StatusFound)
	}
}
