package api

import (
	"fmt"

	"github.com/JaimeStill/charter/internal/config"
	"github.com/JaimeStill/charter/internal/form"
	"github.com/JaimeStill/charter/internal/locale"
	"github.com/JaimeStill/charter/internal/policies"
	"github.com/JaimeStill/charter/internal/wizard"
	"github.com/JaimeStill/charter/pkg/openapi"
	"github.com/JaimeStill/charter/pkg/routes"
)

func buildSpec(cfg *config.Config, groups []routes.Group) ([]byte, error) {
	spec := openapi.NewSpec(cfg.API.OpenAPI.Title, cfg.Version)
	spec.SetDescription(cfg.API.OpenAPI.Description)
	spec.AddServer(cfg.API.BasePath)
	spec.Components.AddSchemas(schemas())

	if err := routes.Describe(spec, groups...); err != nil {
		return nil, fmt.Errorf("describe routes: %w", err)
	}

	return openapi.MarshalJSON(spec)
}

func schemas() map[string]*openapi.Schema {
	kinds := make([]string, 0)
	for _, opt := range policies.Catalog() {
		kinds = append(kinds, string(opt.Kind))
	}

	codes := make([]string, 0)
	for _, opt := range locale.Locales() {
		codes = append(codes, string(opt.Code))
	}

	fields := make([]string, 0)
	for _, f := range form.Fields() {
		fields = append(fields, string(f))
	}

	platforms := make([]string, 0)
	for _, p := range form.Platforms() {
		platforms = append(platforms, string(p))
	}

	str := func(desc string) *openapi.Schema {
		return &openapi.Schema{Type: "string", Description: desc}
	}

	return map[string]*openapi.Schema{
		"PolicyOption": {
			Type:     "object",
			Required: []string{"kind", "title", "icon", "label"},
			Properties: map[string]*openapi.Schema{
				"kind":  openapi.StringEnum("Policy kind", kinds...),
				"title": str("English title"),
				"icon":  str("Icon name"),
				"label": str("Localized label"),
			},
		},
		"LocaleOption": {
			Type:     "object",
			Required: []string{"code", "label", "flag"},
			Properties: map[string]*openapi.Schema{
				"code":  openapi.StringEnum("Locale code", codes...),
				"label": str("Language name in that language"),
				"flag":  str("Flag emoji"),
			},
		},
		"LocaleRequest": {
			Type:       "object",
			Required:   []string{"locale"},
			Properties: map[string]*openapi.Schema{"locale": openapi.StringEnum("Locale code", codes...)},
		},
		"SelectRequest": {
			Type:       "object",
			Required:   []string{"policy"},
			Properties: map[string]*openapi.Schema{"policy": openapi.StringEnum("Policy kind", kinds...)},
		},
		"FieldRequest": {
			Type:     "object",
			Required: []string{"field", "value"},
			Properties: map[string]*openapi.Schema{
				"field": openapi.StringEnum("Form field", fields...),
				"value": str("Field value; effective_date uses YYYY-MM-DD"),
			},
		},
		"FormData": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"company_name":   str("Company or site name"),
				"website_url":    str("Website URL"),
				"contact_email":  str("Contact email"),
				"country":        str("Country"),
				"address":        str("Physical address"),
				"effective_date": {Type: "string", Format: "date"},
				"platform_type":  openapi.StringEnum("Where the policy applies", platforms...),
			},
		},
		"Warning": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"field":   openapi.StringEnum("Form field", fields...),
				"rule":    str("Failed format rule"),
				"message": str("Advisory message"),
			},
		},
		"Snapshot": {
			Type:     "object",
			Required: []string{"step", "form", "text", "generating", "locale", "copied"},
			Properties: map[string]*openapi.Schema{
				"step": openapi.StringEnum("Current step",
					string(wizard.StepSelectPolicy),
					string(wizard.StepEnterDetails),
					string(wizard.StepReview),
				),
				"policy":     openapi.StringEnum("Chosen policy kind", kinds...),
				"form":       openapi.SchemaRef("FormData"),
				"text":       str("Generated markdown; empty before review"),
				"generating": {Type: "boolean"},
				"locale":     openapi.StringEnum("Active locale", codes...),
				"copied":     {Type: "boolean", Description: "True for a short window after a copy"},
				"warnings":   {Type: "array", Items: openapi.SchemaRef("Warning")},
			},
		},
	}
}
