// Package nodes contains the built-in pipeline task implementations and
// their registrations with the builder and codec registries.
package nodes
