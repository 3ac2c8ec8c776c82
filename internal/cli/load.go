package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/reframe-systems/tesseract-planning/pkg/domain"
	"github.com/reframe-systems/tesseract-planning/pkg/profiles"
)

type profileDoc struct {
	Node         string                        `yaml:"node"`
	Name         string                        `yaml:"name"`
	ContactCheck profiles.CollisionCheckConfig `yaml:"contact_check"`
}

type profilesFile struct {
	Profiles []profileDoc        `yaml:"profiles"`
	Remap    profiles.RemapTable `yaml:"remap,omitempty"`
}

// LoadProfiles reads a profiles document and returns the populated dictionary
// plus any per-node remapping it declares. A missing path yields an empty
// dictionary: collision checking degrades to defaults, it does not block.
func LoadProfiles(path string) (*profiles.Dictionary, profiles.RemapTable, error) {
	dict := profiles.NewDictionary()
	if path == "" {
		return dict, nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading profiles: %w", err)
	}
	var file profilesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, nil, fmt.Errorf("parsing profiles: %w", err)
	}
	for _, p := range file.Profiles {
		if p.Node == "" || p.Name == "" {
			return nil, nil, fmt.Errorf("profile entry missing node or name")
		}
		dict.Add(p.Node, p.Name, &profiles.ContactCheckProfile{Config: p.ContactCheck})
	}
	return dict, file.Remap, nil
}

// LoadTrajectory reads a trajectory document.
func LoadTrajectory(path string) (domain.Trajectory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Trajectory{}, fmt.Errorf("reading trajectory: %w", err)
	}
	var t domain.Trajectory
	if err := yaml.Unmarshal(data, &t); err != nil {
		return domain.Trajectory{}, fmt.Errorf("parsing trajectory: %w", err)
	}
	return t, nil
}
