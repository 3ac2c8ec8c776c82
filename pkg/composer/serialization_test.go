package composer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reframe-systems/tesseract-planning/pkg/composer"
	"github.com/reframe-systems/tesseract-planning/pkg/nodes"
)

func TestCodecRegistry_TaskRoundTrip(t *testing.T) {
	reg := composer.NewCodecRegistry()
	nodes.RegisterCodecs(reg)

	task := nodes.NewDiscreteContactCheckTaskWithKey("gate", "input_program", true)

	data, err := reg.Encode(nodes.DiscreteContactCheckKind, task)
	require.NoError(t, err)

	restored, err := reg.Decode(data)
	require.NoError(t, err)

	assert.Equal(t, task.Name(), restored.Name())
	assert.Equal(t, task.UUID(), restored.UUID())
	assert.Equal(t, task.IsConditional(), restored.IsConditional())
	assert.Equal(t, task.InputKeys(), restored.InputKeys())
}

func TestCodecRegistry_UnknownTag(t *testing.T) {
	reg := composer.NewCodecRegistry()

	_, err := reg.Decode([]byte("type: NoSuchTask\ntask: {}\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no codec registered")
}
