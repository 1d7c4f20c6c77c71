package app_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/JaimeStill/charter/internal/app"
	"github.com/JaimeStill/charter/internal/config"
	"github.com/JaimeStill/charter/internal/form"
	"github.com/JaimeStill/charter/internal/generation"
	"github.com/JaimeStill/charter/internal/infrastructure"
	"github.com/JaimeStill/charter/internal/locale"
	"github.com/JaimeStill/charter/internal/policies"
	"github.com/JaimeStill/charter/internal/sessions"
	"github.com/JaimeStill/charter/pkg/lifecycle"
	"github.com/JaimeStill/charter/pkg/module"
)

type fakeGenerator struct {
	mu   sync.Mutex
	text string
	err  error
	last form.Data
}

func (g *fakeGenerator) Generate(_ context.Context, _ policies.Kind, data form.Data, _ locale.Locale) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.last = data
	return g.text, g.err
}

type client struct {
	t        *testing.T
	http     *http.Client
	base     string
	handler  http.Handler
	sessions sessions.System
}

func newClient(t *testing.T, gen generation.Client) *client {
	t.Helper()

	cfg := &config.Config{}
	for name, finalize := range map[string]func() error{
		"app":        cfg.App.Finalize,
		"wizard":     cfg.Wizard.Finalize,
		"session":    func() error { return cfg.Session.Finalize(nil) },
		"generation": func() error { return cfg.Generation.Finalize(nil) },
	} {
		if err := finalize(); err != nil {
			t.Fatalf("%s finalize: %v", name, err)
		}
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	infra := infrastructure.NewWith(cfg, lifecycle.New(), logger, gen)

	m, err := app.NewModule(cfg, infra)
	if err != nil {
		t.Fatalf("NewModule() error = %v", err)
	}

	router := module.NewRouter()
	if err := router.Mount(m); err != nil {
		t.Fatalf("Mount() error = %v", err)
	}

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatal(err)
	}

	return &client{
		t:        t,
		http:     &http.Client{Jar: jar},
		base:     srv.URL + "/app",
		handler:  router,
		sessions: infra.Sessions,
	}
}

func (c *client) get(path string) (*http.Response, string) {
	c.t.Helper()
	resp, err := c.http.Get(c.base + path)
	if err != nil {
		c.t.Fatalf("GET %s: %v", path, err)
	}
	return resp, readBody(c.t, resp)
}

func (c *client) post(path string, values url.Values) (*http.Response, string) {
	c.t.Helper()
	resp, err := c.http.PostForm(c.base+path, values)
	if err != nil {
		c.t.Fatalf("POST %s: %v", path, err)
	}
	return resp, readBody(c.t, resp)
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return string(b)
}

func expect(t *testing.T, resp *http.Response, body string, status int, contains ...string) {
	t.Helper()
	if resp.StatusCode != status {
		t.Errorf("%s %s status = %d, want %d", resp.Request.Method, resp.Request.URL.Path, resp.StatusCode, status)
	}
	for _, want := range contains {
		if !strings.Contains(body, want) {
			t.Errorf("%s body missing %q", resp.Request.URL.Path, want)
		}
	}
}

func TestIndexRendersCatalog(t *testing.T) {
	c := newClient(t, &fakeGenerator{text: "# Doc"})

	resp, body := c.get("/")
	expect(t, resp, body, http.StatusOK,
		`lang="en"`,
		"Generate Legal Policies",
		"Privacy Policy",
		`value="return-refund"`,
		`value="cookie-consent"`,
		"Not legal advice.",
	)
	if got := resp.Header.Get("Content-Type"); got != "text/html; charset=utf-8" {
		t.Errorf("Content-Type = %q", got)
	}
}

func TestFullFlow(t *testing.T) {
	gen := &fakeGenerator{text: "# Privacy Policy\n\nAcme collects **nothing**.\n"}
	c := newClient(t, gen)

	resp, body := c.post("/select", url.Values{"policy": {"privacy-policy"}})
	expect(t, resp, body, http.StatusOK, `action="/app/generate"`, `name="company_name"`)

	resp, body = c.post("/generate", url.Values{
		"company_name":   {"Acme"},
		"contact_email":  {"legal@acme.test"},
		"effective_date": {"2026-10-18"},
		"platform_type":  {"App"},
	})
	expect(t, resp, body, http.StatusOK,
		"Document Ready",
		"<strong>nothing</strong>",
		`download="privacy-policy-2026-10-18.md"`,
	)

	if gen.last.CompanyName != "Acme" || gen.last.Platform != form.PlatformApp {
		t.Errorf("generator received %+v", gen.last)
	}

	resp, body = c.get("/export")
	expect(t, resp, body, http.StatusOK, "Acme collects **nothing**.")
	if got := resp.Header.Get("Content-Disposition"); !strings.Contains(got, "privacy-policy-2026-10-18.md") {
		t.Errorf("Content-Disposition = %q", got)
	}

	resp, body = c.get("/clipboard")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("clipboard before copy status = %d, want 404", resp.StatusCode)
	}

	resp, body = c.post("/copy", nil)
	expect(t, resp, body, http.StatusOK, `data-copied="true"`, "Copied!")

	resp, body = c.get("/clipboard")
	if body != gen.text {
		t.Errorf("clipboard = %q, want %q", body, gen.text)
	}

	resp, body = c.post("/reset", nil)
	expect(t, resp, body, http.StatusOK, `action="/app/select"`)
}

func TestGenerateFailureLocalized(t *testing.T) {
	c := newClient(t, &fakeGenerator{err: errors.New("401 unauthorized")})

	c.post("/locale", url.Values{"locale": {"fr"}})
	c.post("/select", url.Values{"policy": {"eula"}})

	resp, body := c.post("/generate", url.Values{"company_name": {"Acme"}})
	expect(t, resp, body, http.StatusBadGateway,
		`lang="fr"`,
		"Échec de la génération du contenu. Vérifiez la clé API.",
		`value="Acme"`,
	)
}

func TestWarningsShownNextToFields(t *testing.T) {
	c := newClient(t, &fakeGenerator{err: errors.New("offline")})

	c.post("/select", url.Values{"policy": {"disclaimer"}})
	resp, body := c.post("/generate", url.Values{"contact_email": {"not-an-email"}})
	expect(t, resp, body, http.StatusBadGateway, `class="warning"`)
}

func TestSetLocale(t *testing.T) {
	c := newClient(t, &fakeGenerator{})

	resp, body := c.post("/locale", url.Values{"locale": {"ru"}})
	expect(t, resp, body, http.StatusOK, `lang="ru"`, "Политика конфиденциальности")

	resp, body = c.post("/locale", url.Values{"locale": {"de"}})
	expect(t, resp, body, http.StatusBadRequest, `lang="ru"`)
}

func TestInvalidStepRedirects(t *testing.T) {
	c := newClient(t, &fakeGenerator{})

	for _, path := range []string{"/copy", "/back", "/generate", "/reset"} {
		resp, body := c.post(path, nil)
		expect(t, resp, body, http.StatusOK, "Privacy Policy")
		if resp.Request.URL.Path != "/app/" {
			t.Errorf("POST %s landed on %s, want /app/", path, resp.Request.URL.Path)
		}
	}

	resp, body := c.get("/export")
	expect(t, resp, body, http.StatusOK, `action="/app/select"`)
}

func TestUnknownPolicy(t *testing.T) {
	c := newClient(t, &fakeGenerator{})

	resp, body := c.post("/select", url.Values{"policy": {"nda"}})
	expect(t, resp, body, http.StatusBadRequest, `action="/app/select"`)
}

func TestNotFoundLocalized(t *testing.T) {
	c := newClient(t, &fakeGenerator{})

	resp, body := c.get("/missing")
	expect(t, resp, body, http.StatusNotFound, "Page not found")

	c.post("/locale", url.Values{"locale": {"fr"}})
	resp, body = c.get("/missing")
	expect(t, resp, body, http.StatusNotFound, "Page introuvable")
}

func TestStaticAssets(t *testing.T) {
	c := newClient(t, &fakeGenerator{})

	for _, path := range []string{"/static/app.css", "/static/app.js"} {
		resp, body := c.get(path)
		if resp.StatusCode != http.StatusOK {
			t.Errorf("GET %s status = %d", path, resp.StatusCode)
		}
		if body == "" {
			t.Errorf("GET %s returned empty body", path)
		}
	}
}

func TestStaticAndNotFoundDoNotCreateSessions(t *testing.T) {
	c := newClient(t, &fakeGenerator{})

	for _, path := range []string{"/app/static/app.css", "/app/static/app.js", "/app/missing", "/app/static/none.css"} {
		rec := httptest.NewRecorder()
		c.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if cookies := rec.Result().Cookies(); len(cookies) != 0 {
			t.Errorf("GET %s set cookies %v", path, cookies)
		}
	}

	if n := c.sessions.Len(); n != 0 {
		t.Errorf("sessions after static reads = %d, want 0", n)
	}

	resp, body := c.get("/")
	expect(t, resp, body, http.StatusOK, `action="/app/select"`)
	if n := c.sessions.Len(); n != 1 {
		t.Errorf("sessions after index = %d, want 1", n)
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	gen := &fakeGenerator{text: "# Doc"}
	a := newClient(t, gen)
	b := &client{t: t, http: &http.Client{}, base: a.base, handler: a.handler, sessions: a.sessions}
	jar, _ := cookiejar.New(nil)
	b.http.Jar = jar

	a.post("/select", url.Values{"policy": {"cookie-policy"}})

	resp, body := b.get("/")
	expect(t, resp, body, http.StatusOK, `action="/app/select"`)

	resp, body = a.get("/")
	expect(t, resp, body, http.StatusOK, `action="/app/generate"`)
}

func TestRedirect(t *testing.T) {
	rec := httptest.NewRecorder()
	app.Redirect("/app")(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusFound)
	}
	if got := rec.Header().Get("Location"); got != "/app/" {
		t.Errorf("Location = %q, want /app/", got)
	}
}
