package profiles

import "github.com/reframe-systems/tesseract-planning/pkg/domain"

// Profile is the capability marker for entries in the Dictionary. Each node
// kind defines the concrete profile type it understands; lookups resolve by
// (node kind, profile name) and fall back to a built-in default when the
// entry is missing or of the wrong capability.
type Profile interface {
	Kind() string
}

// DefaultLongestValidSegmentLength is the sampling density used when a
// profile does not set one: no two consecutive samples may be further apart
// than this in joint space.
const DefaultLongestValidSegmentLength = 0.05

// CollisionCheckConfig controls how a trajectory is sampled and queried.
type CollisionCheckConfig struct {
	// LongestValidSegmentLength caps the joint-space distance between
	// consecutive samples. Segments longer than this are subdivided.
	LongestValidSegmentLength float64 `yaml:"longest_valid_segment_length" mapstructure:"longest_valid_segment_length"`

	// StopAtFirstContact terminates checking at the first sample with a
	// contact instead of collecting evidence for the whole trajectory.
	StopAtFirstContact bool `yaml:"stop_at_first_contact" mapstructure:"stop_at_first_contact"`

	// Request configures each individual contact query.
	Request domain.ContactRequest `yaml:"contact_request" mapstructure:"contact_request"`

	// ManagerConfig is applied to the collision manager before checking.
	ManagerConfig domain.ContactManagerConfig `yaml:"manager_config" mapstructure:"manager_config"`
}

// ContactCheckProfile bundles the collision-check configuration for one named
// profile. Stored profiles are immutable; the resolver only ever mutates
// copies.
type ContactCheckProfile struct {
	Config CollisionCheckConfig `yaml:"contact_check" mapstructure:"contact_check"`
}

// ContactCheckProfileKind tags ContactCheckProfile entries in the dictionary.
const ContactCheckProfileKind = "contact_check"

// Kind implements Profile.
func (p *ContactCheckProfile) Kind() string { return ContactCheckProfileKind }

// Clone returns a deep copy.
func (p *ContactCheckProfile) Clone() *ContactCheckProfile {
	out := *p
	if p.Config.ManagerConfig.PairMargins != nil {
		pm := make(map[string]float64, len(p.Config.ManagerConfig.PairMargins))
		for k, v := range p.Config.ManagerConfig.PairMargins {
			pm[k] = v
		}
		out.Config.ManagerConfig.PairMargins = pm
	}
	return &out
}

// DefaultContactCheckProfile returns the built-in fallback: default sampling
// density, exhaustive evidence gathering, zero distance threshold.
func DefaultContactCheckProfile() *ContactCheckProfile {
	return &ContactCheckProfile{
		Config: CollisionCheckConfig{
			LongestValidSegmentLength: DefaultLongestValidSegmentLength,
			StopAtFirstContact:        false,
			Request: domain.ContactRequest{
				Type:              domain.ContactTestAll,
				DistanceThreshold: 0,
			},
		},
	}
}
