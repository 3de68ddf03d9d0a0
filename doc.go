/*
Package tollgate attaches validators and before/after callbacks to the
transition lifecycle of an external finite-state-machine (workflow) engine.

Tollgate never defines or executes transitions itself. The host supplies its
own workflow definition (states, events, transitions) and wires tollgate's
runners into the engine's own before/after transition hooks. Validators can
veto a transition with a human-readable reason; callbacks perform
side-effects around it.

# Concept

Each host type owns one *Hooks value, constructed from the host's workflow
definition. Hooks maintains three per-event registries: validators, before
callbacks, and after callbacks. Attaching to an event the workflow never
declares fails immediately with *domain.UnknownEventError. Execution order is
always insertion order.

# Usage

	wf := myengine.Definition() // implements ports.Workflow

	hooks := tollgate.New(wf)

	err := hooks.AttachValidator("close", "Order has unshipped items", func(ctx context.Context, tc domain.Context) bool {
		return tc.Instance.(*Order).Shipped
	})
	if err != nil {
		log.Fatal(err)
	}

	// Inside the host's own "before transition" hook:
	if err := hooks.RunValidators(ctx, event, tc); err != nil {
		return err // transition does not commit
	}
	if err := hooks.RunBeforeCallbacks(ctx, event, tc); err != nil {
		return err
	}
	// ...engine commits the state change...
	return hooks.RunAfterCallbacks(ctx, event, tc)

A vetoed transition surfaces as *domain.HaltError whose message is the
validator's configured reason. Errors returned by user-supplied callbacks
propagate unchanged and abort the remaining callbacks of that run.
*/
package tollgate
