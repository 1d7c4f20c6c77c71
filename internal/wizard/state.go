package wizard

import (
	"time"

	"github.com/JaimeStill/charter/internal/form"
	"github.com/JaimeStill/charter/internal/locale"
	"github.com/JaimeStill/charter/internal/policies"
)

// Step is a wizard screen.
type Step string

// Wizard steps in flow order.
const (
	StepSelectPolicy Step = "select_policy"
	StepEnterDetails Step = "enter_details"
	StepReview       Step = "review"
)

// Index returns the 1-based position of the step in the flow.
func (s Step) Index() int {
	switch s {
	case StepEnterDetails:
		return 2
	case StepReview:
		return 3
	default:
		return 1
	}
}

// State is the session's wizard state.
//
// Invariants: Policy is set whenever Step is enter_details or review; Text is
// non-empty at review; Generating is only ever true at enter_details.
type State struct {
	Step       Step          `json:"step"`
	Policy     policies.Kind `json:"policy,omitempty"`
	Form       form.Data     `json:"form"`
	Text       string        `json:"text"`
	Generating bool          `json:"generating"`
}

// NewState returns the initial state with form defaults for now.
func NewState(now time.Time) State {
	return State{
		Step: StepSelectPolicy,
		Form: form.Defaults(now),
	}
}

// Snapshot is a point-in-time copy of everything a view needs.
type Snapshot struct {
	State
	Locale   locale.Locale  `json:"locale"`
	Copied   bool           `json:"copied"`
	Warnings []form.Warning `json:"warnings,omitempty"`
}
