package ports

import "github.com/tollgate/tollgate/pkg/domain"

// Workflow is the read-only view of the host's state machine definition.
// Any engine (or hand-rolled fixture) that can enumerate its declared states
// and their outgoing events satisfies it.
//
// The hook points themselves are not part of this interface: the host wires
// RunValidators / RunBeforeCallbacks / RunAfterCallbacks into its own
// before/after transition hooks manually.
type Workflow interface {
	// States returns every declared state with its outgoing events.
	States() []domain.StateDef
}
