// Package domain holds the core value types exchanged between pipeline nodes:
// trajectories, contact evidence, and the tagged storage value. It has no
// dependencies on the execution machinery and can be imported by any layer.
package domain
