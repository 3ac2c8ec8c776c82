package scene_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reframe-systems/tesseract-planning/pkg/adapters/scene"
	"github.com/reframe-systems/tesseract-planning/pkg/domain"
)

const sceneDoc = `
group: arm
joints: [j1, j2]
obstacles:
  - name: pillar
    center: [1.0, 0.0]
    radius: 0.25
  - name: crate
    center: [-2.0, -2.0]
    radius: 0.5
`

func TestParse(t *testing.T) {
	s, err := scene.Parse([]byte(sceneDoc))
	require.NoError(t, err)
	assert.Equal(t, "arm", s.Group)
	assert.Equal(t, []string{"j1", "j2"}, s.Joints)
	require.Len(t, s.Obstacles, 2)
	assert.Equal(t, "pillar", s.Obstacles[0].Name)
}

func TestParseRejectsIncompleteScenes(t *testing.T) {
	_, err := scene.Parse([]byte("joints: [j1]\n"))
	assert.ErrorContains(t, err, "missing group")

	_, err = scene.Parse([]byte("group: arm\n"))
	assert.ErrorContains(t, err, "missing joints")
}

func TestJointGroupLookup(t *testing.T) {
	s, err := scene.Parse([]byte(sceneDoc))
	require.NoError(t, err)
	env := scene.NewEnvironment(s)

	g, err := env.JointGroup("arm")
	require.NoError(t, err)
	assert.Equal(t, "arm", g.Name())
	assert.Equal(t, []string{"j1", "j2"}, g.JointNames())

	_, err = env.JointGroup("gantry")
	assert.ErrorContains(t, err, "unknown joint group")

	// Empty name resolves to the scene's only group.
	_, err = env.JointGroup("")
	assert.NoError(t, err)
}

func TestContactTest(t *testing.T) {
	s, err := scene.Parse([]byte(sceneDoc))
	require.NoError(t, err)
	env := scene.NewEnvironment(s)

	manager, err := env.DiscreteContactManager()
	require.NoError(t, err)
	solver, err := env.StateSolver()
	require.NoError(t, err)
	group, err := env.JointGroup("arm")
	require.NoError(t, err)
	manager.SetActiveLinks(group.ActiveLinkNames())
	manager.ApplyConfig(domain.ContactManagerConfig{})

	req := domain.ContactRequest{Type: domain.ContactTestAll}

	t.Run("clear state", func(t *testing.T) {
		state, err := solver.State([]string{"j1", "j2"}, []float64{0, 0})
		require.NoError(t, err)
		res, err := manager.ContactTest(state, req)
		require.NoError(t, err)
		assert.Empty(t, res)
	})

	t.Run("inside obstacle", func(t *testing.T) {
		state, err := solver.State([]string{"j1", "j2"}, []float64{1.0, 0.1})
		require.NoError(t, err)
		res, err := manager.ContactTest(state, req)
		require.NoError(t, err)
		require.Len(t, res, 1)
		contacts := res[domain.PairKey("tool0", "pillar")]
		require.Len(t, contacts, 1)
		assert.Less(t, contacts[0].Distance, 0.0)
	})
}

func TestContactTestHonorsMargins(t *testing.T) {
	s, err := scene.Parse([]byte(sceneDoc))
	require.NoError(t, err)
	env := scene.NewEnvironment(s)

	manager, err := env.DiscreteContactManager()
	require.NoError(t, err)
	manager.SetActiveLinks([]string{"tool0"})

	solver, err := env.StateSolver()
	require.NoError(t, err)
	// 0.1 outside the pillar's surface.
	state, err := solver.State([]string{"j1", "j2"}, []float64{1.35, 0})
	require.NoError(t, err)

	req := domain.ContactRequest{Type: domain.ContactTestAll}

	manager.ApplyConfig(domain.ContactManagerConfig{})
	res, err := manager.ContactTest(state, req)
	require.NoError(t, err)
	assert.Empty(t, res, "no margin, no contact")

	manager.ApplyConfig(domain.ContactManagerConfig{DefaultMargin: 0.2})
	res, err = manager.ContactTest(state, req)
	require.NoError(t, err)
	assert.Len(t, res, 1, "margin widens the reported band")

	manager.ApplyConfig(domain.ContactManagerConfig{
		PairMargins: map[string]float64{domain.PairKey("tool0", "pillar"): 0.2},
	})
	res, err = manager.ContactTest(state, req)
	require.NoError(t, err)
	assert.Len(t, res, 1, "pair margin overrides the default")
}

func TestContactTestInactiveLinks(t *testing.T) {
	s, err := scene.Parse([]byte(sceneDoc))
	require.NoError(t, err)
	env := scene.NewEnvironment(s)

	manager, err := env.DiscreteContactManager()
	require.NoError(t, err)
	// No SetActiveLinks call: nothing to collide.
	state := domain.RobotState{Joints: map[string]float64{"j1": 1, "j2": 0}}
	res, err := manager.ContactTest(state, domain.ContactRequest{Type: domain.ContactTestAll})
	require.NoError(t, err)
	assert.Empty(t, res)
}
