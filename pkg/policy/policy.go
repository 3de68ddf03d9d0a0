package policy

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/tollgate/tollgate"
	"github.com/tollgate/tollgate/pkg/domain"
)

// ValidatorRule binds a named predicate to an event, together with the
// reason reported when the predicate vetoes the transition.
type ValidatorRule struct {
	Reason    string `yaml:"reason" json:"reason"`
	Predicate string `yaml:"predicate" json:"predicate"`
}

// File represents the structure of a policy YAML file:
//
//	validators:
//	  close:
//	    - reason: "Order has unshipped items"
//	      predicate: all_items_shipped
//	before:
//	  close: [notify_warehouse]
//	after:
//	  close: [send_receipt]
type File struct {
	Validators map[domain.Event][]ValidatorRule `yaml:"validators" json:"validators"`
	Before     map[domain.Event][]string        `yaml:"before" json:"before"`
	After      map[domain.Event][]string        `yaml:"after" json:"after"`
}

// Load reads and parses a policy file from disk.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read policy file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a policy document from raw YAML.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse policy: %w", err)
	}
	return &f, nil
}

// Events returns the sorted union of events referenced anywhere in the
// policy. Used by static checks against a workflow outline.
func (f *File) Events() []domain.Event {
	set := make(map[domain.Event]struct{})
	for e := range f.Validators {
		set[e] = struct{}{}
	}
	for e := range f.Before {
		set[e] = struct{}{}
	}
	for e := range f.After {
		set[e] = struct{}{}
	}

	out := make([]domain.Event, 0, len(set))
	for e := range set {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Apply resolves every name in the policy against reg and replays the
// result through the bulk attachers of hooks. Resolution happens up front,
// so a missing name leaves hooks untouched; an undeclared event surfaces as
// *domain.UnknownEventError from the attachers.
func Apply(f *File, reg *Registry, hooks *tollgate.Hooks) error {
	validators := make(map[domain.Event][]tollgate.Validator, len(f.Validators))
	for event, rules := range f.Validators {
		for _, rule := range rules {
			p, err := reg.Predicate(rule.Predicate)
			if err != nil {
				return fmt.Errorf("validators.%s: %w", event, err)
			}
			validators[event] = append(validators[event], tollgate.Validator{Reason: rule.Reason, Cond: p})
		}
	}

	before, err := resolveActions(reg, f.Before, "before")
	if err != nil {
		return err
	}
	after, err := resolveActions(reg, f.After, "after")
	if err != nil {
		return err
	}

	if err := hooks.AttachValidators(validators); err != nil {
		return err
	}
	if err := hooks.AttachBeforeCallbacks(before); err != nil {
		return err
	}
	return hooks.AttachAfterCallbacks(after)
}

func resolveActions(reg *Registry, names map[domain.Event][]string, section string) (map[domain.Event][]tollgate.Action, error) {
	out := make(map[domain.Event][]tollgate.Action, len(names))
	for event, seq := range names {
		for _, name := range seq {
			a, err := reg.Action(name)
			if err != nil {
				return nil, fmt.Errorf("%s.%s: %w", section, event, err)
			}
			out[event] = append(out[event], a)
		}
	}
	return out, nil
}
