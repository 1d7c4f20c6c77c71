package app

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
	"github.com/JaimeStill/charter/pkg/routes"
	"github.com/JaimeStill/charter/pkg/web"
)

// Handler serves the wizard pages. Routes from Routes must run behind
// sessions.Middleware; NotFound tolerates requests without a session.
type Handler struct {
	views  *web.TemplateSet
	logger *slog.Logger
}

// NewHandler creates a Handler rendering with views.
func NewHandler(views *web.TemplateSet, logger *slog.Logger) *Handler {
	return &Handler{
		views:  views,
		logger: logger.With("handler", "wizard"),
	}
}

// Routes returns the route group for the wizard pages and form posts.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/{$}", Handler: h.Index},
			{Method: "POST", Pattern: "/locale", Handler: h.SetLocale},
			{Method: "POST", Pattern: "/select", Handler: h.Select},
			{Method: "POST", Pattern: "/back", Handler: h.Back},
			{Method: "POST", Pattern: "/generate", Handler: h.Generate},
			{Method: "POST", Pattern: "/copy", Handler: h.Copy},
			{Method: "GET", Pattern: "/clipboard", Handler: h.Clipboard},
			{Method: "GET", Pattern: "/export", Handler: h.Export},
			{Method: "POST", Pattern: "/reset", Handler: h.Reset},
		},
	}
}

// Index renders the view for the session's current step.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	sess := sessions.FromContext(r.Context())
	h.render(w, http.StatusOK, newPage(sess.Wizard.Snapshot()))
}

// SetLocale switches the interface language and returns to the current step.
func (h *Handler) SetLocale(w http.ResponseWriter, r *http.Request) {
	sess := sessions.FromContext(r.Context())
	err := sess.Wizard.SetLocale(locale.Locale(r.FormValue("locale")))
	h.after(w, r, sess, err)
}

// Select records the chosen policy kind.
func (h *Handler) Select(w http.ResponseWriter, r *http.Request) {
	sess := sessions.FromContext(r.Context())
	err := sess.Wizard.Select(policies.Kind(r.FormValue("policy")))
	h.after(w, r, sess, err)
}

// Back returns to policy selection.
func (h *Handler) Back(w http.ResponseWriter, r *http.Request) {
	sess := sessions.FromContext(r.Context())
	h.after(w, r, sess, sess.Wizard.Back())
}

// Generate applies the posted form fields and submits the document for
// generation. A generation failure re-renders the details view with the
// localized notice.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	sess := sessions.FromContext(r.Context())

	if err := r.ParseForm(); err != nil {
		h.fail(w, r, sess, http.StatusBadRequest, err)
		return
	}

	for _, f := range form.Fields() {
		if _, ok := r.PostForm[string(f)]; !ok {
			continue
		}
		if err := sess.Wizard.Update(f, r.PostForm.Get(string(f))); err != nil {
			h.after(w, r, sess, err)
			return
		}
	}

	err := sess.Wizard.Submit(r.Context())
	if errors.Is(err, generation.ErrFailed) {
		p := newPage(sess.Wizard.Snapshot())
		p.Error = p.Text.GenerationFailed
		h.render(w, http.StatusBadGateway, p)
		return
	}
	h.after(w, r, sess, err)
}

// Copy places the document on the session clipboard.
func (h *Handler) Copy(w http.ResponseWriter, r *http.Request) {
	sess := sessions.FromContext(r.Context())
	h.after(w, r, sess, sess.Wizard.Copy())
}

// Clipboard returns the session clipboard as plain text for the browser to
// write to the host clipboard.
func (h *Handler) Clipboard(w http.ResponseWriter, r *http.Request) {
	sess := sessions.FromContext(r.Context())

	text, ok := sess.Clipboard.Text()
	if !ok {
		http.Error(w, "clipboard empty", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(text))
}

// Export downloads the generated document as markdown.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	sess := sessions.FromContext(r.Context())

	state := sess.Wizard.State()
	if state.Step != wizard.StepReview {
		h.redirect(w, r)
		return
	}

	web.Attachment(w, viewer.Filename(state.Policy, state.Form.EffectiveDate), viewer.ContentType, []byte(state.Text))
}

// Reset starts over from policy selection.
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	sess := sessions.FromContext(r.Context())
	h.after(w, r, sess, sess.Wizard.StartOver())
}

// NotFound renders the localized 404 page.
func (h *Handler) NotFound() http.HandlerFunc {
	return h.views.ErrorHandler(layout, "notfound", http.StatusNotFound, func(r *http.Request) web.ViewData {
		l := locale.Default
		if sess := sessions.FromContext(r.Context()); sess != nil {
			l = sess.Wizard.Locale()
		}
		return newPage(wizard.Snapshot{Locale: l}).viewData()
	})
}

// after redirects to the current step on success or on an operation the
// step does not allow, and re-renders with the mapped status otherwise.
func (h *Handler) after(w http.ResponseWriter, r *http.Request, sess *sessions.Session, err error) {
	if err == nil {
		h.redirect(w, r)
		return
	}

	status := wizard.MapHTTPStatus(err)
	if status == http.StatusConflict {
		h.logger.Debug("operation rejected", "path", r.URL.Path, "error", err)
		h.redirect(w, r)
		return
	}
	h.fail(w, r, sess, status, err)
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, sess *sessions.Session, status int, err error) {
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", "path", r.URL.Path, "status", status, "error", err)
	} else {
		h.logger.Warn("request failed", "path", r.URL.Path, "status", status, "error", err)
	}

	p := newPage(sess.Wizard.Snapshot())
	p.Error = err.Error()
	h.render(w, status, p)
}

func (h *Handler) render(w http.ResponseWriter, status int, p *page) {
	if err := p.prepare(); err != nil {
		h.logger.Error("page prepare failed", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if err := h.views.Render(w, status, layout, viewByStep[p.Snapshot.Step], p.viewData()); err != nil {
		h.logger.Error("render failed", "step", p.Snapshot.Step, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func (h *Handler) redirect(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, h.views.BasePath()+"/", http.StatusSeeOther)
}
