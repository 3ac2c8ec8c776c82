package nodes

import (
	"gopkg.in/yaml.v3"

	"github.com/reframe-systems/tesseract-planning/pkg/composer"
)

// RegisterDefaults populates a factory with the built-in node builders. Call
// once at startup.
func RegisterDefaults(f *composer.Factory) {
	f.Register(DiscreteContactCheckKind, newDiscreteContactCheckFromConfig)
}

// RegisterCodecs populates a codec registry with the built-in node types.
// Call once at startup.
func RegisterCodecs(r *composer.CodecRegistry) {
	r.Register(DiscreteContactCheckKind, composer.TaskCodec{
		Encode: func(t composer.Task) ([]byte, error) {
			return yaml.Marshal(t)
		},
		Decode: func(data []byte) (composer.Task, error) {
			t := &DiscreteContactCheckTask{}
			if err := yaml.Unmarshal(data, t); err != nil {
				return nil, err
			}
			return t, nil
		},
	})
}
