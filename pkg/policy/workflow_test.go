package policy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tollgate/tollgate/pkg/domain"
	"github.com/tollgate/tollgate/pkg/policy"
)

func TestLoadWorkflow(t *testing.T) {
	path := writeFile(t, "workflow.yaml", `
states:
  open: [close]
  closed: []
`)

	outline, err := policy.LoadWorkflow(path)
	require.NoError(t, err)

	states := outline.States()
	require.Len(t, states, 2)

	// Sorted by state name for stable output.
	assert.Equal(t, domain.State("closed"), states[0].Name)
	assert.Empty(t, states[0].Events)
	assert.Equal(t, domain.State("open"), states[1].Name)
	assert.Equal(t, []domain.Event{"close"}, states[1].Events)

	set := domain.EventSet(states)
	_, ok := set["close"]
	assert.True(t, ok)
}

func TestLoadWorkflow_MissingFile(t *testing.T) {
	_, err := policy.LoadWorkflow("does-not-exist.yaml")
	require.Error(t, err)
}
