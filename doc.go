// Package planning provides a collision safety gate for planned robot
// trajectories: a task node that samples a trajectory at discrete states,
// queries a collision model at each sample, and reports whether the
// trajectory is collision-free with enough evidence to act on failure.
//
// The package root is a thin facade; the building blocks live in
// pkg/composer (node contract), pkg/contactcheck (sampling algorithm),
// pkg/profiles (configuration resolution), and pkg/adapters (storage and
// environment implementations).
package planning
