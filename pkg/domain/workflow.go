package domain

// Event names a trigger declared by the host's workflow definition.
// Firing an event attempts to move a host instance between states.
type Event string

// State names a state declared by the host's workflow definition.
type State string

// StateDef describes a single declared state and the events that may be
// fired from it. The host engine owns these definitions; tollgate only
// reads them for event membership checks.
type StateDef struct {
	Name   State   `json:"name" yaml:"name" mapstructure:"name"`
	Events []Event `json:"events,omitempty" yaml:"events,omitempty" mapstructure:"events"`
}

// EventSet collects the union of events across all declared states.
// Hooks may only be attached to members of this set.
func EventSet(states []StateDef) map[Event]struct{} {
	set := make(map[Event]struct{})
	for _, s := range states {
		for _, e := range s.Events {
			set[e] = struct{}{}
		}
	}
	return set
}
