package policy

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/tollgate/tollgate/pkg/domain"
)

// Outline is a minimal standalone workflow description: each state mapped to
// its outgoing events. It implements ports.Workflow, so policies can be
// validated (and hooks constructed in tests) without the real engine.
//
//	states:
//	  open: [close]
//	  closed: []
type Outline struct {
	Defs map[domain.State][]domain.Event `yaml:"states" json:"states"`
}

// LoadWorkflow reads a workflow outline from a YAML file.
func LoadWorkflow(path string) (*Outline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read workflow outline: %w", err)
	}

	var o Outline
	if err := yaml.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("failed to parse workflow outline: %w", err)
	}
	return &o, nil
}

// States returns the declared states in stable (sorted) order.
func (o *Outline) States() []domain.StateDef {
	names := make([]domain.State, 0, len(o.Defs))
	for name := range o.Defs {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })

	out := make([]domain.StateDef, 0, len(names))
	for _, name := range names {
		out = append(out, domain.StateDef{Name: name, Events: o.Defs[name]})
	}
	return out
}
