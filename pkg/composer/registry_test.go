package composer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reframe-systems/tesseract-planning/pkg/composer"
	"github.com/reframe-systems/tesseract-planning/pkg/nodes"
)

func newFactory() *composer.Factory {
	f := composer.NewFactory()
	nodes.RegisterDefaults(f)
	return f
}

func TestFactory_BuildDiscreteContactCheck(t *testing.T) {
	f := newFactory()

	task, err := f.Build(nodes.DiscreteContactCheckKind, "gate", composer.Config{
		"conditional": true,
		"inputs":      []string{"input_program"},
	})
	require.NoError(t, err)

	assert.Equal(t, "gate", task.Name())
	assert.True(t, task.IsConditional())
	assert.Equal(t, []string{"input_program"}, task.InputKeys())
}

func TestFactory_BuildFailsWithoutInputs(t *testing.T) {
	f := newFactory()

	_, err := f.Build(nodes.DiscreteContactCheckKind, "gate", composer.Config{})
	require.Error(t, err)
	assert.ErrorIs(t, err, composer.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "missing 'inputs' entry")
}

func TestFactory_BuildFailsWithTwoInputs(t *testing.T) {
	f := newFactory()

	_, err := f.Build(nodes.DiscreteContactCheckKind, "gate", composer.Config{
		"inputs": []string{"a", "b"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, composer.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "currently only supports one input key")
}

func TestFactory_UnknownKind(t *testing.T) {
	f := newFactory()

	_, err := f.Build("NoSuchTask", "x", composer.Config{})
	require.Error(t, err)
	assert.ErrorIs(t, err, composer.ErrInvalidConfig)
}

func TestFactory_Kinds(t *testing.T) {
	f := newFactory()
	assert.Contains(t, f.Kinds(), nodes.DiscreteContactCheckKind)
}
