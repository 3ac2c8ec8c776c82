package composer

import (
	"log/slog"
	"sync/atomic"

	"github.com/reframe-systems/tesseract-planning/internal/observability"
	"github.com/reframe-systems/tesseract-planning/pkg/domain"
	"github.com/reframe-systems/tesseract-planning/pkg/ports"
	"github.com/reframe-systems/tesseract-planning/pkg/profiles"
)

// Problem describes the planning problem shared by every node in one pipeline
// run: the environment, the default manipulator, and the per-node profile
// remapping.
type Problem struct {
	Env              ports.Environment
	Manipulator      domain.ManipulatorInfo
	ProfileRemapping profiles.RemapTable
}

// Input is the execution context handed to a task by the engine. It exposes
// the abort query, the keyed data storage, the problem, and the profile
// dictionary. The dictionary and remapping table are shared read-only across
// concurrently running nodes.
type Input struct {
	Storage  ports.DataStorage
	Problem  Problem
	Profiles *profiles.Dictionary
	Logger   *slog.Logger
	Metrics  *observability.Metrics

	aborted atomic.Bool
}

// NewInput assembles an execution context.
func NewInput(storage ports.DataStorage, problem Problem, dict *profiles.Dictionary) *Input {
	return &Input{Storage: storage, Problem: problem, Profiles: dict}
}

// Abort flags the run as aborted. Tasks check the flag once, at entry.
func (in *Input) Abort() { in.aborted.Store(true) }

// IsAborted reports whether an upstream abort was requested.
func (in *Input) IsAborted() bool { return in.aborted.Load() }

// Log returns the configured logger, or a discard logger when none is set.
func (in *Input) Log() *slog.Logger {
	if in.Logger != nil {
		return in.Logger
	}
	return slog.New(slog.DiscardHandler)
}
