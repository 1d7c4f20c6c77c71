package app

import (
	"html/template"

	"github.com/JaimeStill/charter/internal/form"
	"github.com/JaimeStill/charter/internal/locale"
	"github.com/JaimeStill/charter/internal/policies"
	"github.com/JaimeStill/charter/internal/viewer"
	"github.com/JaimeStill/charter/internal/wizard"
	"github.com/JaimeStill/charter/pkg/web"
)

const layout = "app"

var views = []web.ViewDef{
	{Name: "select", Template: "select.html"},
	{Name: "details", Template: "details.html"},
	{Name: "review", Template: "review.html"},
	{Name: "notfound", Template: "notfound.html"},
}

var viewByStep = map[wizard.Step]string{
	wizard.StepSelectPolicy: "select",
	wizard.StepEnterDetails: "details",
	wizard.StepReview:       "review",
}

type stepView struct {
	Index  int
	Label  string
	Active bool
	Done   bool
}

type policyView struct {
	Kind  policies.Kind
	Icon  string
	Label string
}

type platformView struct {
	Value    form.Platform
	Label    string
	Selected bool
}

type fieldView struct {
	Name    string
	Label   string
	Type    string
	Value   string
	Warning string
}

// page is the data every view renders from.
type page struct {
	Text     locale.Labels
	Locales  []locale.Option
	Steps    []stepView
	Snapshot wizard.Snapshot

	Policies    []policyView
	PolicyLabel string
	Platforms   []platformView
	Warnings    map[form.Field]string

	Document template.HTML
	Filename string
	Error    string
}

func newPage(snap wizard.Snapshot) *page {
	text := snap.Locale.Text()

	p := &page{
		Text:     text,
		Locales:  locale.Locales(),
		Snapshot: snap,
		Warnings: make(map[form.Field]string, len(snap.Warnings)),
	}

	current := snap.Step.Index()
	for i, label := range []string{text.Step1, text.Step2, text.Step3} {
		idx := i + 1
		p.Steps = append(p.Steps, stepView{
			Index:  idx,
			Label:  label,
			Active: idx == current,
			Done:   idx < current,
		})
	}

	for _, w := range snap.Warnings {
		p.Warnings[w.Field] = w.Message
	}

	return p
}

// prepare fills the fields only the current step's view reads.
func (p *page) prepare() error {
	snap := p.Snapshot

	switch snap.Step {
	case wizard.StepSelectPolicy:
		for _, opt := range policies.Catalog() {
			p.Policies = append(p.Policies, policyView{
				Kind:  opt.Kind,
				Icon:  opt.Icon,
				Label: opt.Label(snap.Locale),
			})
		}
	case wizard.StepEnterDetails:
		if opt, err := policies.Find(snap.Policy); err == nil {
			p.PolicyLabel = opt.Label(snap.Locale)
		}
		for _, pl := range form.Platforms() {
			p.Platforms = append(p.Platforms, platformView{
				Value:    pl,
				Label:    platformLabel(p.Text, pl),
				Selected: pl == snap.Form.Platform,
			})
		}
	case wizard.StepReview:
		doc, err := viewer.Render(snap.Text)
		if err != nil {
			return err
		}
		p.Document = doc
		p.Filename = viewer.Filename(snap.Policy, snap.Form.EffectiveDate)
	}
	return nil
}

func (p *page) viewData() web.ViewData {
	return web.ViewData{
		Title: p.Text.Title,
		Lang:  string(p.Snapshot.Locale),
		Data:  p,
	}
}

func platformLabel(text locale.Labels, pl form.Platform) string {
	switch pl {
	case form.PlatformApp:
		return text.App
	case form.PlatformBoth:
		return text.Both
	default:
		return text.Website
	}
}

func funcs(basePath string) template.FuncMap {
	return template.FuncMap{
		"basePath": func() string { return basePath },
		"field": func(p *page, name, label, typ, value string) fieldView {
			return fieldView{
				Name:    name,
				Label:   label,
				Type:    typ,
				Value:   value,
				Warning: p.Warnings[form.Field(name)],
			}
		},
	}
}
