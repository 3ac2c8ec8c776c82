package domain

import "strings"

// ContactTestType selects how much evidence a contact query gathers.
type ContactTestType int

const (
	// ContactTestFirst stops the query at the first contact found.
	ContactTestFirst ContactTestType = iota
	// ContactTestClosest keeps only the closest contact per link pair.
	ContactTestClosest
	// ContactTestAll gathers every contact within the distance threshold.
	ContactTestAll
)

func (t ContactTestType) String() string {
	switch t {
	case ContactTestFirst:
		return "first"
	case ContactTestClosest:
		return "closest"
	case ContactTestAll:
		return "all"
	default:
		return "unknown"
	}
}

// ContactRequest configures one contact query.
type ContactRequest struct {
	Type              ContactTestType `yaml:"type" mapstructure:"type"`
	DistanceThreshold float64         `yaml:"distance_threshold" mapstructure:"distance_threshold"`
}

// ContactManagerConfig carries the collision-manager settings a profile
// activates before checking: margins that widen or narrow what counts as
// "in contact".
type ContactManagerConfig struct {
	DefaultMargin float64            `yaml:"default_margin" mapstructure:"default_margin"`
	PairMargins   map[string]float64 `yaml:"pair_margins,omitempty" mapstructure:"pair_margins"`
}

// Margin returns the effective margin for a link pair.
func (c ContactManagerConfig) Margin(linkA, linkB string) float64 {
	if m, ok := c.PairMargins[PairKey(linkA, linkB)]; ok {
		return m
	}
	return c.DefaultMargin
}

// Contact is a single near-contact reported by the collision manager for one
// robot state.
type Contact struct {
	LinkNames [2]string `yaml:"link_names"`
	Distance  float64   `yaml:"distance"`
	Points    [2]Point  `yaml:"points,omitempty"`
	Normal    Point     `yaml:"normal,omitempty"`
}

// Point is a cartesian triple.
type Point [3]float64

// PairKey builds the unordered link-pair key used to group contacts.
func PairKey(a, b string) string {
	if strings.Compare(a, b) > 0 {
		a, b = b, a
	}
	return a + "|" + b
}

// ContactResultMap holds the contacts found at one trajectory sample, grouped
// by unordered link-pair key.
type ContactResultMap struct {
	// Sample is the ordinal of the sample along the trajectory.
	Sample int `yaml:"sample"`

	Contacts map[string][]Contact `yaml:"contacts"`
}

// Empty reports whether no contacts were recorded.
func (m ContactResultMap) Empty() bool { return len(m.Contacts) == 0 }

// Count returns the total number of contacts across all pairs.
func (m ContactResultMap) Count() int {
	n := 0
	for _, cs := range m.Contacts {
		n += len(cs)
	}
	return n
}

// Clone returns a deep copy.
func (m ContactResultMap) Clone() ContactResultMap {
	out := ContactResultMap{Sample: m.Sample}
	if m.Contacts != nil {
		out.Contacts = make(map[string][]Contact, len(m.Contacts))
		for k, cs := range m.Contacts {
			out.Contacts[k] = append([]Contact(nil), cs...)
		}
	}
	return out
}
