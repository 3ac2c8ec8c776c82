package profiles_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reframe-systems/tesseract-planning/pkg/profiles"
)

const nodeName = "DiscreteContactCheckTask"

func dictWith(name string, longest float64) *profiles.Dictionary {
	d := profiles.NewDictionary()
	p := profiles.DefaultContactCheckProfile()
	p.Config.LongestValidSegmentLength = longest
	d.Add(nodeName, name, p)
	return d
}

func TestResolve_Precedence(t *testing.T) {
	// All three layers target LongestValidSegmentLength:
	//   dictionary "DEFAULT" = 0.10, remapped "FAST" = 0.20, override = 0.30.
	dict := dictWith("DEFAULT", 0.10)
	fast := profiles.DefaultContactCheckProfile()
	fast.Config.LongestValidSegmentLength = 0.20
	dict.Add(nodeName, "FAST", fast)

	remap := profiles.RemapTable{nodeName: {"DEFAULT": "FAST"}}
	overrides := map[string]any{"longest_valid_segment_length": 0.30}

	t.Run("override wins over remapped dictionary entry", func(t *testing.T) {
		p, err := profiles.Resolve(dict, nodeName, "DEFAULT", remap, overrides)
		require.NoError(t, err)
		assert.InDelta(t, 0.30, p.Config.LongestValidSegmentLength, 1e-12)
	})

	t.Run("without override the remapped entry wins", func(t *testing.T) {
		p, err := profiles.Resolve(dict, nodeName, "DEFAULT", remap, nil)
		require.NoError(t, err)
		assert.InDelta(t, 0.20, p.Config.LongestValidSegmentLength, 1e-12)
	})

	t.Run("without remapping the original entry wins", func(t *testing.T) {
		p, err := profiles.Resolve(dict, nodeName, "DEFAULT", nil, nil)
		require.NoError(t, err)
		assert.InDelta(t, 0.10, p.Config.LongestValidSegmentLength, 1e-12)
	})

	t.Run("without a dictionary entry the built-in default wins", func(t *testing.T) {
		p, err := profiles.Resolve(profiles.NewDictionary(), nodeName, "DEFAULT", nil, nil)
		require.NoError(t, err)
		assert.InDelta(t, profiles.DefaultLongestValidSegmentLength, p.Config.LongestValidSegmentLength, 1e-12)
	})
}

func TestResolve_NeverMutatesStoredProfile(t *testing.T) {
	dict := dictWith("DEFAULT", 0.10)

	_, err := profiles.Resolve(dict, nodeName, "DEFAULT", nil, map[string]any{
		"longest_valid_segment_length": 0.99,
		"stop_at_first_contact":        true,
	})
	require.NoError(t, err)

	stored, ok := dict.Lookup(nodeName, "DEFAULT")
	require.True(t, ok)
	cc := stored.(*profiles.ContactCheckProfile)
	assert.InDelta(t, 0.10, cc.Config.LongestValidSegmentLength, 1e-12)
	assert.False(t, cc.Config.StopAtFirstContact)
}

func TestResolve_MalformedOverridesDegradeToBase(t *testing.T) {
	dict := dictWith("DEFAULT", 0.10)

	p, err := profiles.Resolve(dict, nodeName, "DEFAULT", nil, map[string]any{
		"longest_valid_segment_length": []string{"not", "a", "float"},
	})
	require.Error(t, err)
	require.NotNil(t, p, "a malformed override must not block the check")
	assert.InDelta(t, 0.10, p.Config.LongestValidSegmentLength, 1e-12)
}

func TestApplyOverrides_LaterKeysWin(t *testing.T) {
	base := profiles.DefaultContactCheckProfile()

	p1, err := profiles.ApplyOverrides(base, map[string]any{"stop_at_first_contact": true})
	require.NoError(t, err)
	p2, err := profiles.ApplyOverrides(p1, map[string]any{"stop_at_first_contact": false})
	require.NoError(t, err)

	assert.True(t, p1.Config.StopAtFirstContact)
	assert.False(t, p2.Config.StopAtFirstContact)
}

func TestGet_WrongCapabilityFallsBack(t *testing.T) {
	d := profiles.NewDictionary()
	d.Add(nodeName, "DEFAULT", otherProfile{})

	fallback := profiles.DefaultContactCheckProfile()
	got := profiles.Get(d, nodeName, "DEFAULT", fallback)
	assert.Same(t, fallback, got)
}

func TestGet_NilDictionaryFallsBack(t *testing.T) {
	fallback := profiles.DefaultContactCheckProfile()
	got := profiles.Get(nil, nodeName, "DEFAULT", fallback)
	assert.Same(t, fallback, got)
}

type otherProfile struct{}

func (otherProfile) Kind() string { return "other" }
