package api

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/charter/internal/locale"
	"github.com/JaimeStill/charter/internal/policies"
	"github.com/JaimeStill/charter/internal/sessions"
	"github.com/JaimeStill/charter/pkg/handlers"
	"github.com/JaimeStill/charter/pkg/openapi"
	"github.com/JaimeStill/charter/pkg/routes"
)

// PolicyOption is a catalog entry labeled for one locale.
type PolicyOption struct {
	Kind  policies.Kind `json:"kind"`
	Title string        `json:"title"`
	Icon  string        `json:"icon"`
	Label string        `json:"label"`
}

// CatalogHandler serves the policy catalog and supported locales.
type CatalogHandler struct {
	logger *slog.Logger
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{logger: logger.With("handler", "catalog")}
}

// Routes returns the route group for catalog endpoints.
func (h *CatalogHandler) Routes() routes.Group {
	return routes.Group{
		Tags: []string{"Catalog"},
		Routes: []routes.Route{
			{
				Method:  "GET",
				Pattern: "/policies",
				Handler: h.Policies,
				OpenAPI: &openapi.Operation{
					Summary:    "List policy kinds",
					Parameters: []*openapi.Parameter{openapi.QueryParam("locale", "string", "Label locale; defaults to the session locale", false)},
					Responses: map[int]*openapi.Response{
						200: {
							Description: "Catalog in display order",
							Content: map[string]*openapi.MediaType{
								"application/json": {Schema: &openapi.Schema{Type: "array", Items: openapi.SchemaRef("PolicyOption")}},
							},
						},
						400: openapi.ResponseRef("BadRequest"),
					},
				},
			},
			{
				Method:  "GET",
				Pattern: "/locales",
				Handler: h.Locales,
				OpenAPI: &openapi.Operation{
					Summary: "List supported locales",
					Responses: map[int]*openapi.Response{
						200: {
							Description: "Locales in picker order",
							Content: map[string]*openapi.MediaType{
								"application/json": {Schema: &openapi.Schema{Type: "array", Items: openapi.SchemaRef("LocaleOption")}},
							},
						},
					},
				},
			},
		},
	}
}

// Policies returns the catalog labeled for the requested locale, falling back
// to the caller's session locale and then the default.
func (h *CatalogHandler) Policies(w http.ResponseWriter, r *http.Request) {
	l := locale.Default
	if sess := sessions.FromContext(r.Context()); sess != nil {
		l = sess.Wizard.Locale()
	}
	if q := r.URL.Query().Get("locale"); q != "" {
		parsed, err := locale.Parse(q)
		if err != nil {
			respondError(w, h.logger, err)
			return
		}
		l = parsed
	}

	catalog := policies.Catalog()
	options := make([]PolicyOption, len(catalog))
	for i, opt := range catalog {
		options[i] = PolicyOption{
			Kind:  opt.Kind,
			Title: opt.Title,
			Icon:  opt.Icon,
			Label: opt.Label(l),
		}
	}

	handlers.RespondJSON(w, http.StatusOK, options)
}

// Locales returns the supported locales.
func (h *CatalogHandler) Locales(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, locale.Locales())
}
