package routes

import (
	"net/http"

	"github.com/JaimeStill/charter/pkg/openapi"
)

// Group organizes routes under a common prefix with shared tags.
// Middleware wraps every route in the group and its children, first entry
// outermost.
type Group struct {
	Prefix     string
	Tags       []string
	Routes     []Route
	Children   []Group
	Middleware []func(http.Handler) http.Handler
}

// Register adds all routes from the given groups to the mux.
func Register(mux *http.ServeMux, groups ...Group) {
	for _, group := range groups {
		registerGroup(mux, "", nil, group)
	}
}

// Describe adds every documented route in groups to spec. Group tags are
// applied to operations that carry none of their own.
func Describe(spec *openapi.Spec, groups ...Group) error {
	for _, group := range groups {
		if err := describeGroup(spec, "", nil, group); err != nil {
			return err
		}
	}
	return nil
}

func registerGroup(mux *http.ServeMux, parentPrefix string, parentMW []func(http.Handler) http.Handler, group Group) {
	fullPrefix := parentPrefix + group.Prefix
	mw := append(append([]func(http.Handler) http.Handler{}, parentMW...), group.Middleware...)

	for _, route := range group.Routes {
		pattern := route.Method + " " + fullPrefix + route.Pattern
		var h http.Handler = route.Handler
		for i := len(mw) - 1; i >= 0; i-- {
			h = mw[i](h)
		}
		mux.Handle(pattern, h)
	}
	for _, child := range group.Children {
		registerGroup(mux, fullPrefix, mw, child)
	}
}

func describeGroup(spec *openapi.Spec, parentPrefix string, parentTags []string, group Group) error {
	fullPrefix := parentPrefix + group.Prefix
	tags := group.Tags
	if len(tags) == 0 {
		tags = parentTags
	}

	for _, route := range group.Routes {
		if route.OpenAPI == nil {
			continue
		}
		op := *route.OpenAPI
		if len(op.Tags) == 0 {
			op.Tags = tags
		}
		path := fullPrefix + route.Pattern
		if path == "" {
			path = "/"
		}
		if err := spec.AddOperation(route.Method, path, &op); err != nil {
			return err
		}
	}
	for _, child := range group.Children {
		if err := describeGroup(spec, fullPrefix, tags, child); err != nil {
			return err
		}
	}
	return nil
}
