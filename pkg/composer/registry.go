package composer

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/mitchellh/mapstructure"
)

// ErrInvalidConfig marks a construction-time configuration error. Nodes that
// cannot be built from their configuration document fail fast here; nothing
// is deferred to execution.
var ErrInvalidConfig = errors.New("invalid node configuration")

// Config is a parsed configuration document for one node, as produced by a
// YAML pipeline definition.
type Config map[string]any

// BaseConfig is the portion of a node configuration every task understands.
type BaseConfig struct {
	Conditional bool     `mapstructure:"conditional" yaml:"conditional"`
	Inputs      []string `mapstructure:"inputs" yaml:"inputs"`
	Outputs     []string `mapstructure:"outputs" yaml:"outputs"`
}

// DecodeConfig decodes a configuration map onto a struct using its
// mapstructure tags. Unknown keys are ignored so node-specific and base
// settings can share one document.
func DecodeConfig(cfg Config, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(map[string]any(cfg)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// BuilderFunc constructs a task of one kind from its name and configuration
// document, or returns a configuration error.
type BuilderFunc func(name string, cfg Config) (Task, error)

// Factory is the explicit builder registry keyed by node-kind name. It is
// populated once at startup (see the nodes package's RegisterDefaults) rather
// than through implicit static registration.
type Factory struct {
	mu       sync.RWMutex
	builders map[string]BuilderFunc
}

// NewFactory creates an empty factory.
func NewFactory() *Factory {
	return &Factory{builders: make(map[string]BuilderFunc)}
}

// Register adds a builder for a node kind, replacing any previous one.
func (f *Factory) Register(kind string, fn BuilderFunc) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.builders[kind] = fn
}

// Build constructs a named task of the given kind from its configuration.
func (f *Factory) Build(kind, name string, cfg Config) (Task, error) {
	f.mu.RLock()
	fn, ok := f.builders[kind]
	f.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: unknown node kind %q", ErrInvalidConfig, kind)
	}
	return fn(name, cfg)
}

// Kinds lists the registered node kinds, sorted.
func (f *Factory) Kinds() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	kinds := make([]string, 0, len(f.builders))
	for k := range f.builders {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}
