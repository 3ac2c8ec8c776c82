package contactcheck

import (
	"fmt"
	"math"

	"github.com/reframe-systems/tesseract-planning/pkg/domain"
	"github.com/reframe-systems/tesseract-planning/pkg/ports"
	"github.com/reframe-systems/tesseract-planning/pkg/profiles"
)

// CheckTrajectory samples a trajectory at discrete states and queries the
// collision manager at each one, in ascending temporal order.
//
// The caller is responsible for restricting the manager to the moving group's
// active links and applying the manager configuration before calling; both are
// once-per-execution steps, not per-sample work.
//
// The returned aggregate is sparse: it holds one entry per sample with a
// non-empty contact set, each tagged with its sample ordinal. When
// cfg.StopAtFirstContact is set the loop terminates at the first violating
// sample and later samples are never queried. The trajectory is collision-free
// exactly when the aggregate is empty.
func CheckTrajectory(
	traj domain.Trajectory,
	manager ports.ContactManager,
	solver ports.StateSolver,
	cfg profiles.CollisionCheckConfig,
) ([]domain.ContactResultMap, bool, error) {
	var contacts []domain.ContactResultMap

	err := forEachSample(traj, solver, cfg.LongestValidSegmentLength, func(i int, state domain.RobotState) (bool, error) {
		found, err := manager.ContactTest(state, cfg.Request)
		if err != nil {
			return false, fmt.Errorf("contact test at sample %d: %w", i, err)
		}
		if len(found) == 0 {
			return true, nil
		}
		contacts = append(contacts, domain.ContactResultMap{Sample: i, Contacts: found})
		return !cfg.StopAtFirstContact, nil
	})
	if err != nil {
		return nil, false, err
	}

	return contacts, len(contacts) == 0, nil
}

// SampleStates returns every state CheckTrajectory would evaluate, in order.
// Exposed for inspection and tests; the checking loop itself generates states
// lazily so short-circuiting skips interpolation work too.
func SampleStates(traj domain.Trajectory, solver ports.StateSolver, longestValidSegmentLength float64) ([]domain.RobotState, error) {
	var states []domain.RobotState
	err := forEachSample(traj, solver, longestValidSegmentLength, func(_ int, state domain.RobotState) (bool, error) {
		states = append(states, state)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return states, nil
}

// forEachSample walks the trajectory's samples in ascending order: the first
// waypoint, then for each segment ceil(dist/longest) interpolated states up to
// and including the segment end. The visitor returns false to stop the walk.
// A trajectory with no waypoints produces no samples.
func forEachSample(
	traj domain.Trajectory,
	solver ports.StateSolver,
	longestValidSegmentLength float64,
	visit func(i int, state domain.RobotState) (bool, error),
) error {
	if len(traj.Waypoints) == 0 {
		return nil
	}
	if longestValidSegmentLength <= 0 {
		longestValidSegmentLength = profiles.DefaultLongestValidSegmentLength
	}

	sample := 0
	first := traj.Waypoints[0]
	state, err := solver.State(first.Names, first.Positions)
	if err != nil {
		return fmt.Errorf("solving state for waypoint 0: %w", err)
	}
	cont, err := visit(sample, state)
	if err != nil || !cont {
		return err
	}

	for w := 1; w < len(traj.Waypoints); w++ {
		from := traj.Waypoints[w-1]
		to := traj.Waypoints[w]
		dist, err := jointDistance(from, to)
		if err != nil {
			return fmt.Errorf("segment %d: %w", w-1, err)
		}

		steps := 1
		if dist > longestValidSegmentLength {
			steps = int(math.Ceil(dist / longestValidSegmentLength))
		}

		for s := 1; s <= steps; s++ {
			t := float64(s) / float64(steps)
			positions := lerp(from.Positions, to.Positions, t)
			state, err := solver.State(to.Names, positions)
			if err != nil {
				return fmt.Errorf("solving state for segment %d step %d: %w", w-1, s, err)
			}
			sample++
			cont, err := visit(sample, state)
			if err != nil || !cont {
				return err
			}
		}
	}
	return nil
}

func jointDistance(a, b domain.JointWaypoint) (float64, error) {
	if len(a.Positions) != len(b.Positions) {
		return 0, fmt.Errorf("waypoint dimension mismatch: %d vs %d", len(a.Positions), len(b.Positions))
	}
	sum := 0.0
	for i := range a.Positions {
		d := b.Positions[i] - a.Positions[i]
		sum += d * d
	}
	return math.Sqrt(sum), nil
}

func lerp(from, to []float64, t float64) []float64 {
	out := make([]float64, len(from))
	for i := range from {
		out[i] = from[i] + (to[i]-from[i])*t
	}
	return out
}
