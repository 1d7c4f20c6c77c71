package wizard

import (
	"fmt"
	"log/slog"

	"github.com/anggasct/fluo"

	"github.com/JaimeStill/charter/internal/policies"
)

// Machine events.
const (
	eventSelect    = "select"
	eventBack      = "back"
	eventGenerated = "generated"
	eventStartOver = "start_over"
)

const keyState = "state"

// newMachine builds the three-step flow. Transition actions mutate the
// *State stored under keyState in the machine context.
func newMachine() fluo.Machine {
	b := fluo.NewMachine()

	b.State(string(StepSelectPolicy)).Initial().
		To(string(StepEnterDetails)).On(eventSelect).
		When(selectable).
		Do(recordPolicy)

	b.State(string(StepEnterDetails)).
		To(string(StepSelectPolicy)).On(eventBack).
		Unless(generating).
		Do(clearPolicy).
		To(string(StepReview)).On(eventGenerated).
		When(hasText).
		Do(storeText)

	b.State(string(StepReview)).
		To(string(StepSelectPolicy)).On(eventStartOver).
		Do(reset)

	return b.Build().CreateInstance()
}

func stateFrom(ctx fluo.Context) (*State, error) {
	v, ok := ctx.Get(keyState)
	if !ok {
		return nil, fmt.Errorf("missing %s in machine context", keyState)
	}
	s, ok := v.(*State)
	if !ok {
		return nil, fmt.Errorf("%s is %T, not *State", keyState, v)
	}
	return s, nil
}

func selectable(ctx fluo.Context) bool {
	k, ok := ctx.GetEventData().(policies.Kind)
	return ok && k.Valid()
}

func generating(ctx fluo.Context) bool {
	s, err := stateFrom(ctx)
	return err == nil && s.Generating
}

func hasText(ctx fluo.Context) bool {
	text, ok := ctx.GetEventData().(string)
	return ok && text != ""
}

func recordPolicy(ctx fluo.Context) error {
	s, err := stateFrom(ctx)
	if err != nil {
		return err
	}
	s.Policy = ctx.GetEventData().(policies.Kind)
	s.Text = ""
	return nil
}

func clearPolicy(ctx fluo.Context) error {
	s, err := stateFrom(ctx)
	if err != nil {
		return err
	}
	s.Policy = ""
	return nil
}

func storeText(ctx fluo.Context) error {
	s, err := stateFrom(ctx)
	if err != nil {
		return err
	}
	s.Text = ctx.GetEventData().(string)
	s.Generating = false
	return nil
}

func reset(ctx fluo.Context) error {
	s, err := stateFrom(ctx)
	if err != nil {
		return err
	}
	initial, ok := ctx.GetEventData().(State)
	if !ok {
		return fmt.Errorf("start over requires initial State, got %T", ctx.GetEventData())
	}
	*s = initial
	return nil
}

type transitionLogger struct {
	fluo.BaseObserver
	logger *slog.Logger
}

func (o *transitionLogger) OnTransition(from, to string, event fluo.Event, ctx fluo.Context) {
	name := ""
	if event != nil {
		name = event.GetName()
	}
	o.logger.Debug("wizard transition", "from", from, "to", to, "event", name)
}
