package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/charter/internal/form"
	"github.com/JaimeStill/charter/internal/generation"
	"github.com/JaimeStill/charter/internal/locale"
	"github.com/JaimeStill/charter/internal/policies"
	"github.com/JaimeStill/charter/internal/sessions"
	"github.com/JaimeStill/charter/internal/viewer"
	"github.com/JaimeStill/charter/internal/wizard"
	"github.com/JaimeStill/charter/pkg/handlers"
	"github.com/JaimeStill/charter/pkg/openapi"
	"github.com/JaimeStill/charter/pkg/routes"
	"github.com/JaimeStill/charter/pkg/web"
)

// LocaleRequest switches the session locale.
type LocaleRequest struct {
	Locale locale.Locale `json:"locale"`
}

// SelectRequest chooses a policy kind.
type SelectRequest struct {
	Policy policies.Kind `json:"policy"`
}

// FieldRequest sets one form field.
type FieldRequest struct {
	Field form.Field `json:"field"`
	Value string     `json:"value"`
}

// WizardHandler exposes the session's wizard over JSON.
type WizardHandler struct {
	logger *slog.Logger
}

// NewWizardHandler creates a WizardHandler.
func NewWizardHandler(logger *slog.Logger) *WizardHandler {
	return &WizardHandler{logger: logger.With("handler", "wizard")}
}

// Routes returns the route group for wizard endpoints.
func (h *WizardHandler) Routes() routes.Group {
	snapshot := openapi.ResponseJSON("Wizard snapshot after the operation", "Snapshot")
	conflict := openapi.ResponseRef("Conflict")
	badRequest := openapi.ResponseRef("BadRequest")

	return routes.Group{
		Prefix: "/wizard",
		Tags:   []string{"Wizard"},
		Routes: []routes.Route{
			{
				Method: "GET", Pattern: "", Handler: h.Snapshot,
				OpenAPI: &openapi.Operation{
					Summary:   "Get the session wizard",
					Responses: map[int]*openapi.Response{200: snapshot},
				},
			},
			{
				Method: "PUT", Pattern: "/locale", Handler: h.SetLocale,
				OpenAPI: &openapi.Operation{
					Summary:     "Switch the interface and document language",
					RequestBody: openapi.RequestBodyJSON("LocaleRequest", true),
					Responses:   map[int]*openapi.Response{200: snapshot, 400: badRequest},
				},
			},
			{
				Method: "POST", Pattern: "/select", Handler: h.Select,
				OpenAPI: &openapi.Operation{
					Summary:     "Choose a policy kind",
					RequestBody: openapi.RequestBodyJSON("SelectRequest", true),
					Responses:   map[int]*openapi.Response{200: snapshot, 400: badRequest, 409: conflict},
				},
			},
			{
				Method: "PUT", Pattern: "/form", Handler: h.Update,
				OpenAPI: &openapi.Operation{
					Summary:     "Set one business detail",
					RequestBody: openapi.RequestBodyJSON("FieldRequest", true),
					Responses:   map[int]*openapi.Response{200: snapshot, 400: badRequest, 409: conflict},
				},
			},
			{
				Method: "POST", Pattern: "/back", Handler: h.Back,
				OpenAPI: &openapi.Operation{
					Summary:   "Return to policy selection",
					Responses: map[int]*openapi.Response{200: snapshot, 409: conflict},
				},
			},
			{
				Method: "POST", Pattern: "/generate", Handler: h.Generate,
				OpenAPI: &openapi.Operation{
					Summary:     "Generate the document",
					Description: "Blocks until the generation service responds or times out.",
					Responses: map[int]*openapi.Response{
						200: snapshot,
						409: conflict,
						502: openapi.ResponseRef("BadGateway"),
					},
				},
			},
			{
				Method: "POST", Pattern: "/copy", Handler: h.Copy,
				OpenAPI: &openapi.Operation{
					Summary:   "Copy the document to the session clipboard",
					Responses: map[int]*openapi.Response{200: snapshot, 409: conflict},
				},
			},
			{
				Method: "GET", Pattern: "/clipboard", Handler: h.Clipboard,
				OpenAPI: &openapi.Operation{
					Summary: "Read the session clipboard",
					Responses: map[int]*openapi.Response{
						200: openapi.ResponseContent("Clipboard text", "text/plain", &openapi.Schema{Type: "string"}),
						404: openapi.ResponseRef("NotFound"),
					},
				},
			},
			{
				Method: "GET", Pattern: "/export", Handler: h.Export,
				OpenAPI: &openapi.Operation{
					Summary: "Download the document as markdown",
					Responses: map[int]*openapi.Response{
						200: openapi.ResponseContent("Markdown attachment", "text/markdown", &openapi.Schema{Type: "string"}),
						409: conflict,
					},
				},
			},
			{
				Method: "POST", Pattern: "/reset", Handler: h.Reset,
				OpenAPI: &openapi.Operation{
					Summary:   "Start over",
					Responses: map[int]*openapi.Response{200: snapshot, 409: conflict},
				},
			},
		},
	}
}

// Snapshot returns the session wizard state.
func (h *WizardHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, nil)
}

// SetLocale switches the session locale.
func (h *WizardHandler) SetLocale(w http.ResponseWriter, r *http.Request) {
	var req LocaleRequest
	if err := decode(r, &req); err != nil {
		respondError(w, h.logger, err)
		return
	}
	h.respond(w, r, ctrl(r).SetLocale(req.Locale))
}

// Select chooses the policy kind and advances to details.
func (h *WizardHandler) Select(w http.ResponseWriter, r *http.Request) {
	var req SelectRequest
	if err := decode(r, &req); err != nil {
		respondError(w, h.logger, err)
		return
	}
	h.respond(w, r, ctrl(r).Select(req.Policy))
}

// Update sets one form field.
func (h *WizardHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req FieldRequest
	if err := decode(r, &req); err != nil {
		respondError(w, h.logger, err)
		return
	}
	h.respond(w, r, ctrl(r).Update(req.Field, req.Value))
}

// Back returns to policy selection.
func (h *WizardHandler) Back(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, ctrl(r).Back())
}

// Generate submits the document for generation. Failures carry the
// localized message.
func (h *WizardHandler) Generate(w http.ResponseWriter, r *http.Request) {
	c := ctrl(r)
	err := c.Submit(r.Context())
	if errors.Is(err, generation.ErrFailed) {
		h.logger.Warn("generation failed", "error", err)
		handlers.RespondJSON(w, http.StatusBadGateway, map[string]string{
			"error": c.Locale().Text().GenerationFailed,
		})
		return
	}
	h.respond(w, r, err)
}

// Copy writes the document to the session clipboard.
func (h *WizardHandler) Copy(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, ctrl(r).Copy())
}

// Clipboard returns the session clipboard as plain text.
func (h *WizardHandler) Clipboard(w http.ResponseWriter, r *http.Request) {
	text, ok := sessions.FromContext(r.Context()).Clipboard.Text()
	if !ok {
		handlers.RespondError(w, h.logger, http.StatusNotFound, errors.New("clipboard empty"))
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(text))
}

// Export downloads the generated document.
func (h *WizardHandler) Export(w http.ResponseWriter, r *http.Request) {
	state := ctrl(r).State()
	if state.Step != wizard.StepReview {
		respondError(w, h.logger, wizard.ErrInvalidTransition)
		return
	}

	web.Attachment(w, viewer.Filename(state.Policy, state.Form.EffectiveDate), viewer.ContentType, []byte(state.Text))
}

// Reset starts over at policy selection.
func (h *WizardHandler) Reset(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, ctrl(r).StartOver())
}

func (h *WizardHandler) respond(w http.ResponseWriter, r *http.Request, err error) {
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, ctrl(r).Snapshot())
}

func ctrl(r *http.Request) *wizard.Controller {
	return sessions.FromContext(r.Context()).Wizard
}
