package routes_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/charter/pkg/openapi"
	"github.com/JaimeStill/charter/pkg/routes"
)

func ok(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func wizardGroup() routes.Group {
	return routes.Group{
		Prefix: "/wizard",
		Tags:   []string{"Wizard"},
		Routes: []routes.Route{
			{
				Method:  "GET",
				Pattern: "",
				Handler: ok,
				OpenAPI: &openapi.Operation{Summary: "Get wizard snapshot"},
			},
			{
				Method:  "POST",
				Pattern: "/select",
				Handler: ok,
				OpenAPI: &openapi.Operation{Summary: "Select policy", Tags: []string{"Policies"}},
			},
			{
				Method:  "POST",
				Pattern: "/internal",
				Handler: ok,
			},
		},
	}
}

func TestRegisterHandlers(t *testing.T) {
	mux := http.NewServeMux()
	routes.Register(mux, wizardGroup())

	tests := []struct {
		name   string
		method string
		path   string
		want   int
	}{
		{"snapshot", "GET", "/wizard", http.StatusOK},
		{"select", "POST", "/wizard/select", http.StatusOK},
		{"undocumented", "POST", "/wizard/internal", http.StatusOK},
		{"wrong method", "GET", "/wizard/select", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, tt.path, nil)
			mux.ServeHTTP(rec, req)

			if rec.Code != tt.want {
				t.Errorf("status: got %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestNestedGroups(t *testing.T) {
	mux := http.NewServeMux()

	routes.Register(mux, routes.Group{
		Prefix:   "/v1",
		Children: []routes.Group{wizardGroup()},
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/v1/wizard/select", nil)
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("nested route: got %d, want 200", rec.Code)
	}
}

func TestGroupMiddleware(t *testing.T) {
	var order []string
	tag := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	child := wizardGroup()
	child.Middleware = []func(http.Handler) http.Handler{tag("child")}

	mux := http.NewServeMux()
	routes.Register(mux,
		routes.Group{
			Prefix:     "/v1",
			Middleware: []func(http.Handler) http.Handler{tag("outer"), tag("inner")},
			Children:   []routes.Group{child},
		},
		routes.Group{
			Routes: []routes.Route{{Method: "GET", Pattern: "/plain", Handler: ok}},
		},
	)

	mux.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("POST", "/v1/wizard/select", nil))
	want := []string{"outer", "inner", "child"}
	if len(order) != len(want) {
		t.Fatalf("middleware order: got %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("middleware order: got %v, want %v", order, want)
			break
		}
	}

	order = nil
	mux.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/plain", nil))
	if len(order) != 0 {
		t.Errorf("ungrouped route ran middleware %v", order)
	}
}

func TestDescribe(t *testing.T) {
	spec := openapi.NewSpec("Test", "1.0.0")

	if err := routes.Describe(spec, routes.Group{
		Prefix:   "/v1",
		Children: []routes.Group{wizardGroup()},
	}); err != nil {
		t.Fatalf("describe: %v", err)
	}

	if len(spec.Paths) != 2 {
		t.Fatalf("paths: got %d, want 2", len(spec.Paths))
	}

	get := spec.Paths["/v1/wizard"]
	if get == nil || get.Get == nil {
		t.Fatal("missing GET /v1/wizard")
	}
	if len(get.Get.Tags) != 1 || get.Get.Tags[0] != "Wizard" {
		t.Errorf("inherited tags: got %v, want [Wizard]", get.Get.Tags)
	}

	sel := spec.Paths["/v1/wizard/select"]
	if sel == nil || sel.Post == nil {
		t.Fatal("missing POST /v1/wizard/select")
	}
	if sel.Post.Tags[0] != "Policies" {
		t.Errorf("own tags: got %v, want [Policies]", sel.Post.Tags)
	}

	if _, found := spec.Paths["/v1/wizard/internal"]; found {
		t.Error("undocumented route should not be described")
	}
}

func TestDescribeUnsupportedMethod(t *testing.T) {
	spec := openapi.NewSpec("Test", "1.0.0")

	err := routes.Describe(spec, routes.Group{
		Routes: []routes.Route{
			{Method: "PATCH", Pattern: "/x", Handler: ok, OpenAPI: &openapi.Operation{}},
		},
	})
	if err == nil {
		t.Fatal("expected error for PATCH")
	}
}
