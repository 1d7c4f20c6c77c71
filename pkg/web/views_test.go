package web_test

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/JaimeStill/charter/pkg/web"
)

var testFS = fstest.MapFS{
	"templates/layouts/app.html": {Data: []byte(
		`{{ define "app" }}<html lang="{{ .Lang }}"><title>{{ .Title }}</title>` +
			`<a href="{{ .BasePath }}/">home</a>{{ template "content" . }}</html>{{ end }}`,
	)},
	"templates/views/select.html": {Data: []byte(
		`{{ define "content" }}<h1>{{ upper .Data }}</h1>{{ end }}`,
	)},
	"templates/views/broken.html": {Data: []byte(
		`{{ define "content" }}{{ .Data.Missing }}{{ end }}`,
	)},
}

func newSet(t *testing.T) *web.TemplateSet {
	t.Helper()
	ts, err := web.NewTemplateSet(
		testFS,
		"templates/layouts/*.html",
		"templates/views",
		"/app",
		template.FuncMap{"upper": strings.ToUpper},
		[]web.ViewDef{
			{Name: "select", Template: "select.html"},
			{Name: "broken", Template: "broken.html"},
		},
	)
	if err != nil {
		t.Fatalf("new template set: %v", err)
	}
	return ts
}

func TestTemplateSetRender(t *testing.T) {
	ts := newSet(t)

	rec := httptest.NewRecorder()
	err := ts.Render(rec, http.StatusOK, "app", "select", web.ViewData{
		Title: "Generate Legal Policies",
		Lang:  "fr",
		Data:  "politique",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	body := rec.Body.String()
	for _, want := range []string{`lang="fr"`, "<title>Generate Legal Policies</title>", `href="/app/"`, "<h1>POLITIQUE</h1>"} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q: %s", want, body)
		}
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("content-type: got %s", ct)
	}
}

func TestTemplateSetRenderStatus(t *testing.T) {
	ts := newSet(t)

	rec := httptest.NewRecorder()
	if err := ts.Render(rec, http.StatusBadGateway, "app", "select", web.ViewData{Data: "x"}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if rec.Code != http.StatusBadGateway {
		t.Errorf("status: got %d, want 502", rec.Code)
	}
}

func TestTemplateSetRenderErrors(t *testing.T) {
	ts := newSet(t)

	rec := httptest.NewRecorder()
	if err := ts.Render(rec, http.StatusOK, "app", "unknown", web.ViewData{}); err == nil {
		t.Error("expected error for unknown view")
	}

	rec = httptest.NewRecorder()
	if err := ts.Render(rec, http.StatusOK, "app", "broken", web.ViewData{Data: "string has no fields"}); err == nil {
		t.Fatal("expected execution error")
	}
	if rec.Body.Len() != 0 {
		t.Errorf("failed render wrote %d bytes", rec.Body.Len())
	}
}

func TestErrorHandler(t *testing.T) {
	ts := newSet(t)

	handler := ts.ErrorHandler("app", "select", http.StatusNotFound, func(r *http.Request) web.ViewData {
		return web.ViewData{Title: "Not Found", Data: r.URL.Path}
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest("GET", "/nope", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "<h1>/NOPE</h1>") {
		t.Errorf("body: %s", rec.Body.String())
	}
}

func TestNewTemplateSetMissingView(t *testing.T) {
	_, err := web.NewTemplateSet(testFS, "templates/layouts/*.html", "templates/views", "/app", nil,
		[]web.ViewDef{{Name: "gone", Template: "gone.html"}})
	if err == nil {
		t.Fatal("expected error for missing view template")
	}
}
