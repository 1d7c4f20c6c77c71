package formatting

import (
	"regexp"
	"strings"
)

var fencePattern = regexp.MustCompile("(?s)^```[A-Za-z0-9_-]*[ \t]*\n(.*?)\n?```$")

// StripFence removes a code fence wrapping the entire content, as models
// often return markdown inside a ```markdown block. Content that is not
// wholly fenced is returned trimmed but otherwise unchanged.
func StripFence(content string) string {
	content = strings.TrimSpace(content)

	matches := fencePattern.FindStringSubmatch(content)
	if len(matches) < 2 {
		return content
	}

	inner := matches[1]
	// an inner fence means the outer markers belong to separate blocks
	if strings.Contains(inner, "```") {
		return content
	}
	return strings.TrimSpace(inner)
}
