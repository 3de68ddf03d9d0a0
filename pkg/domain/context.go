package domain

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Context is the record assembled once per transition attempt and handed to
// every validator and callback registered for the triggering event. It is
// treated as immutable for the duration of the call.
type Context struct {
	// Instance is the host object undergoing the transition (e.g. an order).
	Instance any

	// From and To are the states on either side of the attempted transition.
	From State
	To   State

	// Event is the trigger that started the transition attempt.
	Event Event

	// Args carries free-form arguments forwarded from the transition call
	// site. Use DecodeArgs for typed access.
	Args map[string]any
}

// Arg returns a single forwarded argument by key.
func (c Context) Arg(key string) (any, bool) {
	v, ok := c.Args[key]
	return v, ok
}

// DecodeArgs decodes the forwarded arguments into a typed struct using
// mapstructure tags. Unknown keys are ignored.
func (c Context) DecodeArgs(out any) error {
	if err := mapstructure.Decode(c.Args, out); err != nil {
		return fmt.Errorf("failed to decode transition args: %w", err)
	}
	return nil
}
