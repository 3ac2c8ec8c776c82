package composer

import (
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

// TaskCodec encodes and decodes one concrete task type.
type TaskCodec struct {
	Encode func(Task) ([]byte, error)
	Decode func([]byte) (Task, error)
}

// CodecRegistry maps a type tag to encode/decode functions. Like the builder
// Factory it is populated explicitly at startup; archived tasks carry the tag
// so they can be reconstructed without reflection.
type CodecRegistry struct {
	mu     sync.RWMutex
	codecs map[string]TaskCodec
}

// NewCodecRegistry creates an empty registry.
func NewCodecRegistry() *CodecRegistry {
	return &CodecRegistry{codecs: make(map[string]TaskCodec)}
}

// Register adds a codec under a type tag.
func (r *CodecRegistry) Register(tag string, c TaskCodec) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.codecs[tag] = c
}

type taskEnvelope struct {
	Type string    `yaml:"type"`
	Task yaml.Node `yaml:"task"`
}

// Encode archives a task under its type tag.
func (r *CodecRegistry) Encode(tag string, t Task) ([]byte, error) {
	r.mu.RLock()
	codec, ok := r.codecs[tag]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("no codec registered for type %q", tag)
	}
	payload, err := codec.Encode(t)
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", tag, err)
	}
	var inner yaml.Node
	if err := yaml.Unmarshal(payload, &inner); err != nil {
		return nil, fmt.Errorf("encoding %s: %w", tag, err)
	}
	// Unwrap the document node so it nests cleanly inside the envelope.
	if inner.Kind == yaml.DocumentNode && len(inner.Content) == 1 {
		inner = *inner.Content[0]
	}
	return yaml.Marshal(taskEnvelope{Type: tag, Task: inner})
}

// Decode reconstructs a task from its archived form, dispatching on the type
// tag.
func (r *CodecRegistry) Decode(data []byte) (Task, error) {
	var env taskEnvelope
	if err := yaml.Unmarshal(data, &env); err != nil {
		return nil, err
	}
	r.mu.RLock()
	codec, ok := r.codecs[env.Type]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("no codec registered for type %q", env.Type)
	}
	payload, err := yaml.Marshal(&env.Task)
	if err != nil {
		return nil, err
	}
	return codec.Decode(payload)
}
