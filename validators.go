package tollgate

import (
	"context"

	"github.com/tollgate/tollgate/pkg/domain"
)

// AttachValidator registers a veto predicate for event. Validators run in
// insertion order; the first failing one halts the transition with its
// reason. Returns *domain.UnknownEventError if the workflow never declares
// event.
func (h *Hooks) AttachValidator(event domain.Event, reason string, cond Predicate) error {
	if err := h.checkEvent(event); err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.validators.add(event, Validator{Reason: reason, Cond: cond})
	return nil
}

// AttachValidators replays AttachValidator for every entry in bulk, in map
// iteration order per event but preserving each event's slice order. An
// empty or nil map is a no-op. The first undeclared event aborts the replay
// with *domain.UnknownEventError; entries attached before the failure stay
// attached.
func (h *Hooks) AttachValidators(bulk map[domain.Event][]Validator) error {
	for event, seq := range bulk {
		for _, v := range seq {
			if err := h.AttachValidator(event, v.Reason, v.Cond); err != nil {
				return err
			}
		}
	}
	return nil
}

// ClearValidators drops every registered validator for every event. The
// event membership check is unaffected.
func (h *Hooks) ClearValidators() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.validators.clear()
}

// ValidatorSnapshot returns a deep copy of the validator registry, keyed by
// event. Feeding it back to AttachValidators restores the captured state.
func (h *Hooks) ValidatorSnapshot() map[domain.Event][]Validator {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.validators.snapshot()
}

// RunValidators executes every validator registered for event, in insertion
// order, against the transition context. The first predicate returning false
// short-circuits: remaining validators are skipped and the transition is
// vetoed with *domain.HaltError carrying that validator's reason.
//
// An event with no validators always passes. The host must treat a non-nil
// return as transition cancellation: state does not change.
func (h *Hooks) RunValidators(ctx context.Context, event domain.Event, tc domain.Context) error {
	h.mu.RLock()
	seq := make([]Validator, len(h.validators.get(event)))
	copy(seq, h.validators.get(event))
	h.mu.RUnlock()

	for _, v := range seq {
		if v.Cond(ctx, tc) {
			continue
		}

		h.logger.Debug("transition halted",
			"event", event,
			"from", tc.From,
			"to", tc.To,
			"reason", v.Reason)

		if h.observer.OnHalt != nil {
			h.observer.OnHalt(ctx, &domain.HookEvent{
				Phase:  domain.PhaseValidator,
				Event:  event,
				From:   tc.From,
				To:     tc.To,
				Reason: v.Reason,
			})
		}
		return &domain.HaltError{Reason: v.Reason}
	}

	if h.observer.OnValidatorPass != nil {
		h.observer.OnValidatorPass(ctx, &domain.HookEvent{
			Phase: domain.PhaseValidator,
			Event: event,
			From:  tc.From,
			To:    tc.To,
		})
	}
	return nil
}
