// Package scene provides a deliberately small environment model: a point
// robot in joint space surrounded by spherical obstacles. It exists so the
// contact gate can run end to end in the CLI and in tests; it is not a
// collision engine.
package scene

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/reframe-systems/tesseract-planning/pkg/domain"
	"github.com/reframe-systems/tesseract-planning/pkg/ports"
)

// toolLink is the single moving link of the point robot.
const toolLink = "tool0"

// Obstacle is a sphere in joint space.
type Obstacle struct {
	Name   string    `yaml:"name"`
	Center []float64 `yaml:"center"`
	Radius float64   `yaml:"radius"`
}

// Scene describes the group and the obstacles around it.
type Scene struct {
	Group     string     `yaml:"group"`
	Joints    []string   `yaml:"joints"`
	Obstacles []Obstacle `yaml:"obstacles"`
}

// Parse decodes a scene document.
func Parse(data []byte) (Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Scene{}, fmt.Errorf("parsing scene: %w", err)
	}
	if s.Group == "" {
		return Scene{}, fmt.Errorf("scene missing group name")
	}
	if len(s.Joints) == 0 {
		return Scene{}, fmt.Errorf("scene missing joints")
	}
	return s, nil
}

// Load reads a scene document from disk.
func Load(path string) (Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, fmt.Errorf("reading scene: %w", err)
	}
	return Parse(data)
}

// Environment implements ports.Environment over a Scene. Each getter hands
// out a fresh instance so concurrent executions never share mutable state.
type Environment struct {
	scene Scene
}

var _ ports.Environment = (*Environment)(nil)

// NewEnvironment wraps a scene.
func NewEnvironment(s Scene) *Environment {
	return &Environment{scene: s}
}

// JointGroup returns the scene's group. An empty name resolves to the
// scene's only group.
func (e *Environment) JointGroup(name string) (ports.JointGroup, error) {
	if name != "" && name != e.scene.Group {
		return nil, fmt.Errorf("unknown joint group %q", name)
	}
	return &jointGroup{scene: e.scene}, nil
}

// StateSolver returns a fresh solver.
func (e *Environment) StateSolver() (ports.StateSolver, error) {
	return &stateSolver{}, nil
}

// DiscreteContactManager returns a fresh, unconfigured manager.
func (e *Environment) DiscreteContactManager() (ports.ContactManager, error) {
	return &contactManager{scene: e.scene}, nil
}

type jointGroup struct {
	scene Scene
}

func (g *jointGroup) Name() string { return g.scene.Group }

func (g *jointGroup) JointNames() []string { return g.scene.Joints }

func (g *jointGroup) ActiveLinkNames() []string { return []string{toolLink} }

type stateSolver struct{}

func (s *stateSolver) State(names []string, positions []float64) (domain.RobotState, error) {
	if len(names) != len(positions) {
		return domain.RobotState{}, fmt.Errorf("joint name/position mismatch: %d vs %d", len(names), len(positions))
	}
	joints := make(map[string]float64, len(names))
	for i, n := range names {
		joints[n] = positions[i]
	}
	return domain.RobotState{Joints: joints}, nil
}

type contactManager struct {
	scene  Scene
	active map[string]bool
	cfg    domain.ContactManagerConfig
}

func (m *contactManager) SetActiveLinks(links []string) {
	m.active = make(map[string]bool, len(links))
	for _, l := range links {
		m.active[l] = true
	}
}

func (m *contactManager) ApplyConfig(cfg domain.ContactManagerConfig) { m.cfg = cfg }

// ContactTest measures the distance from the robot point to each obstacle
// surface and reports pairs closer than the threshold plus margin.
func (m *contactManager) ContactTest(state domain.RobotState, req domain.ContactRequest) (map[string][]domain.Contact, error) {
	if !m.active[toolLink] {
		return nil, nil
	}
	point := make([]float64, len(m.scene.Joints))
	for i, j := range m.scene.Joints {
		v, ok := state.Joints[j]
		if !ok {
			return nil, fmt.Errorf("state missing joint %q", j)
		}
		point[i] = v
	}

	results := make(map[string][]domain.Contact)
	for _, obs := range m.scene.Obstacles {
		if len(obs.Center) != len(point) {
			return nil, fmt.Errorf("obstacle %q dimension mismatch", obs.Name)
		}
		dist := euclidean(point, obs.Center) - obs.Radius
		margin := m.cfg.Margin(toolLink, obs.Name)
		if dist >= req.DistanceThreshold+margin {
			continue
		}
		key := domain.PairKey(toolLink, obs.Name)
		results[key] = append(results[key], domain.Contact{
			LinkNames: [2]string{toolLink, obs.Name},
			Distance:  dist,
		})
		if req.Type == domain.ContactTestFirst {
			break
		}
	}
	if len(results) == 0 {
		return nil, nil
	}
	return results, nil
}

func euclidean(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}
