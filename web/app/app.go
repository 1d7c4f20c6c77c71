// Package app embeds the wizard's page templates and static assets.
package app

import "embed"

//go:embed templates static
var FS embed.FS

// Template locations within FS.
const (
	LayoutGlob = "templates/layouts/*.html"
	ViewDir    = "templates/views"
	StaticDir  = "static"
)
