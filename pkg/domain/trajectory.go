package domain

// DefaultProfileKey is the profile name assumed when a trajectory does not
// carry one.
const DefaultProfileKey = "DEFAULT"

// ManipulatorInfo identifies the moving group a trajectory was planned for.
type ManipulatorInfo struct {
	GroupName    string `json:"group_name" yaml:"group_name" mapstructure:"group_name"`
	TCPFrame     string `json:"tcp_frame,omitempty" yaml:"tcp_frame,omitempty" mapstructure:"tcp_frame"`
	WorkingFrame string `json:"working_frame,omitempty" yaml:"working_frame,omitempty" mapstructure:"working_frame"`
}

// Combined merges this info with a fallback: fields left empty here are
// filled from other. Used to layer trajectory-level metadata over the
// problem-level defaults.
func (m ManipulatorInfo) Combined(other ManipulatorInfo) ManipulatorInfo {
	out := m
	if out.GroupName == "" {
		out.GroupName = other.GroupName
	}
	if out.TCPFrame == "" {
		out.TCPFrame = other.TCPFrame
	}
	if out.WorkingFrame == "" {
		out.WorkingFrame = other.WorkingFrame
	}
	return out
}

// JointWaypoint is one planned joint-space waypoint.
type JointWaypoint struct {
	Names     []string  `json:"names" yaml:"names" mapstructure:"names"`
	Positions []float64 `json:"positions" yaml:"positions" mapstructure:"positions"`
}

// Trajectory is a composite instruction: the ordered sequence of waypoints a
// planner produced for one manipulator, plus the profile metadata needed to
// post-process it. Pipeline nodes borrow trajectories from shared storage and
// must not mutate them.
type Trajectory struct {
	Description      string          `json:"description,omitempty" yaml:"description,omitempty" mapstructure:"description"`
	ProfileName      string          `json:"profile,omitempty" yaml:"profile,omitempty" mapstructure:"profile"`
	ProfileOverrides map[string]any  `json:"profile_overrides,omitempty" yaml:"profile_overrides,omitempty" mapstructure:"profile_overrides"`
	Manipulator      ManipulatorInfo `json:"manipulator" yaml:"manipulator" mapstructure:"manipulator"`
	Waypoints        []JointWaypoint `json:"waypoints" yaml:"waypoints" mapstructure:"waypoints"`
}

// Profile returns the trajectory's profile name, defaulting when unset.
func (t Trajectory) Profile() string {
	if t.ProfileName == "" {
		return DefaultProfileKey
	}
	return t.ProfileName
}

// Clone returns a deep copy.
func (t Trajectory) Clone() Trajectory {
	out := t
	if t.ProfileOverrides != nil {
		out.ProfileOverrides = make(map[string]any, len(t.ProfileOverrides))
		for k, v := range t.ProfileOverrides {
			out.ProfileOverrides[k] = v
		}
	}
	if t.Waypoints != nil {
		out.Waypoints = make([]JointWaypoint, len(t.Waypoints))
		for i, wp := range t.Waypoints {
			out.Waypoints[i] = JointWaypoint{
				Names:     append([]string(nil), wp.Names...),
				Positions: append([]float64(nil), wp.Positions...),
			}
		}
	}
	return out
}

// RobotState is the resolved state of the robot at one sample. The collision
// manager consumes it opaquely; only the state solver knows how to build one.
type RobotState struct {
	Joints map[string]float64
}
