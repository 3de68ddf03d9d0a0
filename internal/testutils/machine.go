package testutils

import (
	"context"
	"fmt"

	"github.com/tollgate/tollgate"
	"github.com/tollgate/tollgate/pkg/domain"
)

// StaticWorkflow is a fixed state/event declaration implementing
// ports.Workflow.
type StaticWorkflow []domain.StateDef

// States returns the declared states unchanged.
func (s StaticWorkflow) States() []domain.StateDef {
	return []domain.StateDef(s)
}

// OpenClosed is the canonical two-state fixture: open --close--> closed.
func OpenClosed() StaticWorkflow {
	return StaticWorkflow{
		{Name: "open", Events: []domain.Event{"close"}},
		{Name: "closed"},
	}
}

// Machine is a deliberately tiny workflow engine used to exercise hook
// wiring end to end. It does exactly what a real host engine is expected to
// do: run validators and before callbacks from its before-transition hook,
// commit the state change only if neither errored, then run the after
// callbacks.
type Machine struct {
	Current     domain.State
	hooks       *tollgate.Hooks
	transitions map[transitionKey]domain.State
}

type transitionKey struct {
	From  domain.State
	Event domain.Event
}

// NewMachine creates a machine starting at initial, dispatching through the
// given hooks.
func NewMachine(hooks *tollgate.Hooks, initial domain.State) *Machine {
	return &Machine{
		Current:     initial,
		hooks:       hooks,
		transitions: make(map[transitionKey]domain.State),
	}
}

// AddTransition declares that firing event in state from moves to state to.
func (m *Machine) AddTransition(from domain.State, event domain.Event, to domain.State) {
	m.transitions[transitionKey{From: from, Event: event}] = to
}

// Fire attempts the transition triggered by event. Any error from the
// validators or before callbacks cancels the transition: Current is
// unchanged. After callbacks run once the state change is committed.
func (m *Machine) Fire(ctx context.Context, instance any, event domain.Event, args map[string]any) error {
	to, ok := m.transitions[transitionKey{From: m.Current, Event: event}]
	if !ok {
		return fmt.Errorf("no transition for event %s from state %s", event, m.Current)
	}

	tc := domain.Context{
		Instance: instance,
		From:     m.Current,
		To:       to,
		Event:    event,
		Args:     args,
	}

	if err := m.hooks.RunValidators(ctx, event, tc); err != nil {
		return err
	}
	if err := m.hooks.RunBeforeCallbacks(ctx, event, tc); err != nil {
		return err
	}

	m.Current = to

	return m.hooks.RunAfterCallbacks(ctx, event, tc)
}
