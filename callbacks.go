package tollgate

import (
	"context"

	"github.com/tollgate/tollgate/pkg/domain"
)

// AttachBeforeCallback registers a callback invoked before the engine
// commits a transition triggered by event. Returns
// *domain.UnknownEventError if the workflow never declares event.
func (h *Hooks) AttachBeforeCallback(event domain.Event, fn Action) error {
	if err := h.checkEvent(event); err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.before.add(event, fn)
	return nil
}

// AttachAfterCallback registers a callback invoked after the engine commits
// a transition triggered by event. Same membership contract as
// AttachBeforeCallback.
func (h *Hooks) AttachAfterCallback(event domain.Event, fn Action) error {
	if err := h.checkEvent(event); err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.after.add(event, fn)
	return nil
}

// AttachBeforeCallbacks replays AttachBeforeCallback for every entry in
// bulk. An empty or nil map is a no-op; the first undeclared event aborts
// with *domain.UnknownEventError.
func (h *Hooks) AttachBeforeCallbacks(bulk map[domain.Event][]Action) error {
	for event, seq := range bulk {
		for _, fn := range seq {
			if err := h.AttachBeforeCallback(event, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

// AttachAfterCallbacks replays AttachAfterCallback for every entry in bulk.
// Same semantics as AttachBeforeCallbacks.
func (h *Hooks) AttachAfterCallbacks(bulk map[domain.Event][]Action) error {
	for event, seq := range bulk {
		for _, fn := range seq {
			if err := h.AttachAfterCallback(event, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

// ClearBeforeCallbacks drops every before callback for every event.
func (h *Hooks) ClearBeforeCallbacks() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.before.clear()
}

// ClearAfterCallbacks drops every after callback for every event.
func (h *Hooks) ClearAfterCallbacks() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.after.clear()
}

// BeforeSnapshot returns a deep copy of the before-callback registry.
func (h *Hooks) BeforeSnapshot() map[domain.Event][]Action {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.before.snapshot()
}

// AfterSnapshot returns a deep copy of the after-callback registry.
func (h *Hooks) AfterSnapshot() map[domain.Event][]Action {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.after.snapshot()
}

// RunBeforeCallbacks invokes every before callback registered for event, in
// insertion order. The first callback returning an error aborts the run;
// the error propagates unchanged. There is no isolation between callbacks.
func (h *Hooks) RunBeforeCallbacks(ctx context.Context, event domain.Event, tc domain.Context) error {
	return h.runCallbacks(ctx, domain.PhaseBefore, h.before, event, tc)
}

// RunAfterCallbacks invokes every after callback registered for event, in
// insertion order. Same error semantics as RunBeforeCallbacks. Note the
// engine has already committed the state change by the time these run; an
// error here does not roll it back.
func (h *Hooks) RunAfterCallbacks(ctx context.Context, event domain.Event, tc domain.Context) error {
	return h.runCallbacks(ctx, domain.PhaseAfter, h.after, event, tc)
}

func (h *Hooks) runCallbacks(ctx context.Context, phase domain.HookPhase, reg *registry[Action], event domain.Event, tc domain.Context) error {
	h.mu.RLock()
	seq := make([]Action, len(reg.get(event)))
	copy(seq, reg.get(event))
	h.mu.RUnlock()

	for i, fn := range seq {
		if err := fn(ctx, tc); err != nil {
			h.logger.Debug("callback failed",
				"phase", phase,
				"event", event,
				"index", i,
				"err", err)
			return err
		}
	}

	h.logger.Debug("callbacks completed",
		"phase", phase,
		"event", event,
		"count", len(seq))

	if h.observer.OnCallback != nil && len(seq) > 0 {
		h.observer.OnCallback(ctx, &domain.HookEvent{
			Phase: phase,
			Event: event,
			From:  tc.From,
			To:    tc.To,
		})
	}
	return nil
}
