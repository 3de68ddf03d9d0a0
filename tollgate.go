package tollgate

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/tollgate/tollgate/pkg/domain"
	"github.com/tollgate/tollgate/pkg/ports"
)

// Predicate decides whether a transition may proceed. A false result halts
// the transition with the paired validator's reason.
type Predicate func(ctx context.Context, tc domain.Context) bool

// Action is a side-effecting callback invoked around a transition. A non-nil
// error propagates to the host and aborts the remaining callbacks of the
// same phase.
type Action func(ctx context.Context, tc domain.Context) error

// Validator pairs a veto predicate with the human-readable reason reported
// when it fails.
type Validator struct {
	Reason string
	Cond   Predicate
}

// Hooks owns the three per-event hook registries for a single host type.
// Construct one per host type with New; all instances of that type share it.
//
// All methods are safe for concurrent use. Runners execute against a
// snapshot taken under the lock, so attaching from inside a running hook
// does not deadlock (the new entry is simply not seen by the in-flight run).
type Hooks struct {
	mu         sync.RWMutex
	events     map[domain.Event]struct{}
	validators *registry[Validator]
	before     *registry[Action]
	after      *registry[Action]

	logger   *slog.Logger
	observer domain.Observer
}

// Option defines a functional option for configuring Hooks.
type Option func(*Hooks)

// WithLogger sets a custom structured logger. By default hook execution is
// not logged.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Hooks) {
		h.logger = logger
	}
}

// WithObserver registers observability callbacks fired around hook
// execution (e.g. pkg/observability's Prometheus observer).
func WithObserver(obs domain.Observer) Option {
	return func(h *Hooks) {
		h.observer = obs
	}
}

// New builds the hook registries for one host type. The workflow supplies
// the declared event set used by every attach operation's membership check;
// the set is fixed at construction time and survives all Clear* calls.
func New(wf ports.Workflow, opts ...Option) *Hooks {
	h := &Hooks{
		events:     make(map[domain.Event]struct{}),
		validators: newRegistry[Validator](),
		before:     newRegistry[Action](),
		after:      newRegistry[Action](),
	}
	if wf != nil {
		h.events = domain.EventSet(wf.States())
	}

	for _, opt := range opts {
		opt(h)
	}

	if h.logger == nil {
		h.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	return h
}

// Declares reports whether event is part of the host's workflow definition.
func (h *Hooks) Declares(event domain.Event) bool {
	_, ok := h.events[event]
	return ok
}

// checkEvent enforces the membership invariant shared by all attachers.
func (h *Hooks) checkEvent(event domain.Event) error {
	if !h.Declares(event) {
		return &domain.UnknownEventError{Event: event}
	}
	return nil
}
