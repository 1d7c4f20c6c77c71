package generation

import (
	"fmt"
	"strings"

	"github.com/JaimeStill/charter/internal/form"
	"github.com/JaimeStill/charter/internal/locale"
	"github.com/JaimeStill/charter/internal/policies"
)

const outputSpec = `Respond with the complete document in Markdown.

Format constraints:
- Start with a level-one heading containing the document title
- Use level-two headings for each section
- Use bullet lists where they aid readability
- Do not wrap the response in code fences
- Do not add commentary before or after the document

Content constraints:
- Use the business details exactly as given
- When a detail is not provided, write the clause generically; never invent a value and never leave bracketed placeholders
- State the effective date near the top of the document`

const notProvided = "(not provided)"

// Prompt is a composed generation request.
type Prompt struct {
	System string
	User   string
}

// Combined joins the system and user parts for providers that accept a single message.
func (p Prompt) Combined() string {
	return p.System + "\n\n" + p.User
}

// ComposePrompt builds the request for a document: drafting instructions for
// the kind plus the output format rules as the system part, and the business
// details plus the language instruction as the user part.
func ComposePrompt(kind policies.Kind, data form.Data, l locale.Locale) (Prompt, error) {
	instructions, err := policies.Instructions(kind)
	if err != nil {
		return Prompt{}, fmt.Errorf("load instructions for %s: %w", kind, err)
	}

	var sys strings.Builder
	sys.WriteString(instructions)
	sys.WriteString("\n\n")
	sys.WriteString(outputSpec)

	var user strings.Builder
	fmt.Fprintf(&user, "Document: %s\n\n", kind.Title())
	user.WriteString("Business details:\n")
	detail(&user, "Company / site name", data.CompanyName)
	detail(&user, "Website URL", data.WebsiteURL)
	detail(&user, "Contact email", data.ContactEmail)
	detail(&user, "Country", data.Country)
	detail(&user, "Physical address", data.Address)
	detail(&user, "Effective date", data.EffectiveDate)
	detail(&user, "Platform", string(data.Platform))
	fmt.Fprintf(&user, "\nWrite the entire document in %s.", l.Language())

	return Prompt{System: sys.String(), User: user.String()}, nil
}

func detail(sb *strings.Builder, label, value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		value = notProvided
	}
	fmt.Fprintf(sb, "- %s: %s\n", label, value)
}
