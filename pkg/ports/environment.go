package ports

import "github.com/reframe-systems/tesseract-planning/pkg/domain"

// JointGroup exposes the kinematic group a trajectory moves.
type JointGroup interface {
	// Name returns the group name (e.g. "manipulator").
	Name() string

	// JointNames lists the joints in the group, in solver order.
	JointNames() []string

	// ActiveLinkNames lists the links that move with the group. Collision
	// checking is restricted to these links.
	ActiveLinkNames() []string
}

// StateSolver resolves joint positions into a robot state the collision
// manager can query.
type StateSolver interface {
	State(names []string, positions []float64) (domain.RobotState, error)
}

// ContactManager is the black-box collision query: given a robot state and the
// previously configured active links, return the link pairs in near-contact.
type ContactManager interface {
	// SetActiveLinks restricts subsequent queries to the given links.
	SetActiveLinks(links []string)

	// ApplyConfig applies margin settings. Like SetActiveLinks, this mutates
	// the manager for the rest of its lifetime; callers that share a manager
	// must hand out per-execution instances instead.
	ApplyConfig(cfg domain.ContactManagerConfig)

	// ContactTest queries one state, grouping results by unordered link pair.
	// An empty map means the state is contact-free.
	ContactTest(state domain.RobotState, req domain.ContactRequest) (map[string][]domain.Contact, error)
}

// Environment is the shared model of the robot and its surroundings. The
// getters hand out per-execution instances; nodes must not cache them across
// invocations because the returned collaborators are not safe for concurrent
// mutation.
type Environment interface {
	JointGroup(name string) (JointGroup, error)
	StateSolver() (StateSolver, error)
	DiscreteContactManager() (ContactManager, error)
}
