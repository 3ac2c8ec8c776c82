package composer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/reframe-systems/tesseract-planning/pkg/composer"
)

func TestNode_EqualComparesIdentityOnly(t *testing.T) {
	a := composer.NewNode("check", true)
	a.SetInputKeys("input_program")
	b := composer.NewNode("check", true)
	b.SetInputKeys("input_program")

	// Two separately constructed nodes differ by UUID but are the same node
	// as far as the engine is concerned.
	assert.NotEqual(t, a.UUID(), b.UUID())
	assert.True(t, a.Equal(&b))

	c := composer.NewNode("check", false)
	c.SetInputKeys("input_program")
	assert.False(t, a.Equal(&c), "conditional flag is part of identity")

	d := composer.NewNode("check", true)
	d.SetInputKeys("other_key")
	assert.False(t, a.Equal(&d), "input keys are part of identity")
}

func TestNode_YAMLRoundTrip(t *testing.T) {
	n := composer.NewNode("check", true)
	n.SetInputKeys("input_program")
	n.SetOutputKeys("verdict")

	data, err := yaml.Marshal(n)
	require.NoError(t, err)

	var restored composer.Node
	require.NoError(t, yaml.Unmarshal(data, &restored))

	assert.True(t, n.Equal(&restored))
	assert.Equal(t, n.UUID(), restored.UUID(), "the instance UUID must round-trip")
}
