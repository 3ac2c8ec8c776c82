package planning

import (
	"context"
	"log/slog"

	"github.com/reframe-systems/tesseract-planning/internal/logging"
	"github.com/reframe-systems/tesseract-planning/internal/observability"
	"github.com/reframe-systems/tesseract-planning/pkg/adapters/memory"
	"github.com/reframe-systems/tesseract-planning/pkg/composer"
	"github.com/reframe-systems/tesseract-planning/pkg/domain"
	"github.com/reframe-systems/tesseract-planning/pkg/nodes"
	"github.com/reframe-systems/tesseract-planning/pkg/ports"
	"github.com/reframe-systems/tesseract-planning/pkg/profiles"
)

// Runner is the high-level entry point: it assembles the storage, profile
// dictionary, and registries a pipeline needs, and executes tasks against an
// environment. It stands in for the external graph scheduler in single-node
// deployments like the CLI.
type Runner struct {
	storage  ports.DataStorage
	profiles *profiles.Dictionary
	remap    profiles.RemapTable
	factory  *composer.Factory
	codecs   *composer.CodecRegistry
	logger   *slog.Logger
	metrics  *observability.Metrics
}

// Option configures a Runner.
type Option func(*Runner)

// WithStorage replaces the default in-memory data storage.
func WithStorage(s ports.DataStorage) Option {
	return func(r *Runner) { r.storage = s }
}

// WithProfiles replaces the profile dictionary.
func WithProfiles(d *profiles.Dictionary) Option {
	return func(r *Runner) { r.profiles = d }
}

// WithProfileRemapping sets the per-node profile remapping table.
func WithProfileRemapping(remap profiles.RemapTable) Option {
	return func(r *Runner) { r.remap = remap }
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) { r.logger = l }
}

// WithMetrics enables execution instrumentation.
func WithMetrics(m *observability.Metrics) Option {
	return func(r *Runner) { r.metrics = m }
}

// New creates a Runner with in-memory storage, an empty profile dictionary,
// and the built-in node kinds registered.
func New(opts ...Option) *Runner {
	r := &Runner{
		storage:  memory.NewStorage(),
		profiles: profiles.NewDictionary(),
		factory:  composer.NewFactory(),
		codecs:   composer.NewCodecRegistry(),
		logger:   logging.NewNop(),
	}
	nodes.RegisterDefaults(r.factory)
	nodes.RegisterCodecs(r.codecs)
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Storage returns the keyed data storage.
func (r *Runner) Storage() ports.DataStorage { return r.storage }

// Profiles returns the profile dictionary.
func (r *Runner) Profiles() *profiles.Dictionary { return r.profiles }

// Factory returns the node builder registry.
func (r *Runner) Factory() *composer.Factory { return r.factory }

// Codecs returns the node codec registry.
func (r *Runner) Codecs() *composer.CodecRegistry { return r.codecs }

// NewInput builds the execution context a task receives.
func (r *Runner) NewInput(env ports.Environment, manip domain.ManipulatorInfo) *composer.Input {
	in := composer.NewInput(r.storage, composer.Problem{
		Env:              env,
		Manipulator:      manip,
		ProfileRemapping: r.remap,
	}, r.profiles)
	in.Logger = r.logger
	in.Metrics = r.metrics
	return in
}

// Run executes one task to completion and returns its record.
func (r *Runner) Run(ctx context.Context, task composer.Task, env ports.Environment, manip domain.ManipulatorInfo) *composer.NodeInfo {
	return task.Execute(ctx, r.NewInput(env, manip))
}
