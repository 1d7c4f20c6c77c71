package viewer_test

import (
	"strings"
	"testing"

	"github.com/JaimeStill/charter/internal/policies"
	"github.com/JaimeStill/charter/internal/viewer"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains []string
		excludes []string
	}{
		{
			name:     "headings and lists",
			input:    "# Privacy Policy\n\n## Data We Collect\n\n- Email\n- Name\n",
			contains: []string{"<h1", "Privacy Policy</h1>", "<h2", "<li>Email</li>"},
		},
		{
			name:     "table",
			input:    "| Cookie | Purpose |\n|---|---|\n| sid | session |\n",
			contains: []string{"<table>", "<td>sid</td>"},
		},
		{
			name:     "raw html omitted",
			input:    "Hello <script>alert(1)</script>\n",
			contains: []string{"Hello"},
			excludes: []string{"<script>"},
		},
		{
			name:     "javascript link dropped",
			input:    "[click](javascript:alert(1))\n",
			excludes: []string{"javascript:"},
		},
		{
			name:     "unicode",
			input:    "# Политика конфиденциальности\n",
			contains: []string{"Политика конфиденциальности"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := viewer.Render(tt.input)
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			html := string(got)
			for _, want := range tt.contains {
				if !strings.Contains(html, want) {
					t.Errorf("output missing %q:\n%s", want, html)
				}
			}
			for _, bad := range tt.excludes {
				if strings.Contains(html, bad) {
					t.Errorf("output contains %q:\n%s", bad, html)
				}
			}
		})
	}
}

func TestFilename(t *testing.T) {
	tests := []struct {
		kind policies.Kind
		date string
		want string
	}{
		{policies.PrivacyPolicy, "2026-10-18", "privacy-policy-2026-10-18.md"},
		{policies.EULA, "", "eula.md"},
		{"", "2026-01-01", "document-2026-01-01.md"},
	}

	for _, tt := range tests {
		if got := viewer.Filename(tt.kind, tt.date); got != tt.want {
			t.Errorf("Filename(%q, %q) = %q, want %q", tt.kind, tt.date, got, tt.want)
		}
	}
}
