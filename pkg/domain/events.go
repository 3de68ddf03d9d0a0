package domain

import "context"

// HookPhase identifies which of the three hook registries produced an event.
type HookPhase string

const (
	PhaseValidator HookPhase = "validator"
	PhaseBefore    HookPhase = "before"
	PhaseAfter     HookPhase = "after"
)

// HookEvent describes a single hook execution for observability purposes.
type HookEvent struct {
	Phase HookPhase `json:"phase"`
	Event Event     `json:"event"`
	From  State     `json:"from"`
	To    State     `json:"to"`
	// Reason is set only when Phase is PhaseValidator and the transition
	// was halted.
	Reason string `json:"reason,omitempty"`
}

// Observer defines callbacks for hook-layer observability.
// All fields are optional; nil funcs are skipped.
type Observer struct {
	// OnValidatorPass fires after all validators for an event passed.
	OnValidatorPass func(context.Context, *HookEvent)
	// OnHalt fires when a validator vetoes a transition.
	OnHalt func(context.Context, *HookEvent)
	// OnCallback fires after each before/after callback run completes.
	OnCallback func(context.Context, *HookEvent)
}
