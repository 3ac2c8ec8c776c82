// Package ports defines the interfaces between the task node and its external
// collaborators: the keyed data storage and the environment model that owns
// the kinematic tree and the collision manager. Implementations live in
// pkg/adapters.
package ports
