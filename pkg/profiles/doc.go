// Package profiles implements the named configuration profiles that
// parameterize collision checking, and the resolution chain that produces the
// effective profile for one execution: per-call overrides shadow the named
// dictionary entry, which shadows the built-in default.
package profiles
