package profiles

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// RemapTable redirects profile names per node: remap[nodeName][profileName]
// yields the name to look up instead. It lets a pipeline author point one
// node at a different profile without editing the trajectory that carries
// the name.
type RemapTable map[string]map[string]string

// Remap resolves the effective profile name for a node. Absent entries leave
// the name unchanged.
func Remap(nodeName, profileName string, remap RemapTable) string {
	if byProfile, ok := remap[nodeName]; ok {
		if mapped, ok := byProfile[profileName]; ok && mapped != "" {
			return mapped
		}
	}
	return profileName
}

// ApplyOverrides layers per-call overrides onto a copy of the profile. The
// stored profile is never mutated. Override keys use the profile's
// mapstructure tags (e.g. "longest_valid_segment_length"); unknown keys are
// ignored and later keys win. A decode error still returns the untouched
// copy, so a malformed override can degrade but never block a check.
func ApplyOverrides(p *ContactCheckProfile, overrides map[string]any) (*ContactCheckProfile, error) {
	out := p.Clone()
	if len(overrides) == 0 {
		return out, nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &out.Config,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return p.Clone(), fmt.Errorf("building override decoder: %w", err)
	}
	if err := dec.Decode(overrides); err != nil {
		return p.Clone(), fmt.Errorf("applying profile overrides: %w", err)
	}
	return out, nil
}

// Resolve runs the full chain for one execution: per-node remapping, then
// dictionary lookup with a built-in default, then per-call overrides on a
// copy. Absence of configuration is always handled by defaulting; a safety
// gate must not be bypassable by a missing profile entry.
func Resolve(d *Dictionary, nodeName, profileName string, remap RemapTable, overrides map[string]any) (*ContactCheckProfile, error) {
	name := Remap(nodeName, profileName, remap)
	base := Get(d, nodeName, name, DefaultContactCheckProfile())
	return ApplyOverrides(base, overrides)
}
