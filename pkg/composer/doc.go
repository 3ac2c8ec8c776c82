// Package composer provides the task-node contract for the pipeline graph
// engine: the shared node identity, the execution context handed to a task,
// the outcome record it returns, and the explicit builder and codec
// registries that construct and archive nodes.
//
// The graph scheduler itself is an external collaborator; this package only
// defines what it calls and what it gets back.
package composer
