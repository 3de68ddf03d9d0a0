package tollgate

import (
	"context"

	"github.com/tollgate/tollgate/pkg/domain"
)

// Initiator represents a one-shot action triggered by a transition. Each
// invocation is a fresh construct-then-initiate pair; implementations keep
// no state across invocations beyond what their factory captures.
type Initiator interface {
	Initiate(ctx context.Context, tc domain.Context) error
}

// Factory builds a new Initiator for one transition context.
type Factory func(tc domain.Context) Initiator

// Initiate adapts a Factory into an Action, so an Initiator implementation
// can be registered directly as a callback:
//
//	hooks.AttachAfterCallback("close", tollgate.Initiate(func(tc domain.Context) tollgate.Initiator {
//		return &SendReceipt{Order: tc.Instance.(*Order)}
//	}))
//
// The factory runs once per invocation, immediately followed by Initiate on
// the fresh instance.
func Initiate(f Factory) Action {
	return func(ctx context.Context, tc domain.Context) error {
		return f(tc).Initiate(ctx, tc)
	}
}

// Base is the embeddable default Initiator. Its Initiate fails with
// domain.ErrNotImplemented, so forgetting to override the method surfaces
// as a loud contract violation instead of a silent no-op.
type Base struct{}

// Initiate must be overridden by the embedding type.
func (Base) Initiate(context.Context, domain.Context) error {
	return domain.ErrNotImplemented
}
