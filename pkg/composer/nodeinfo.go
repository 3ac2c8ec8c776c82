package composer

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/reframe-systems/tesseract-planning/pkg/domain"
	"github.com/reframe-systems/tesseract-planning/pkg/ports"
)

// Return values reported to the engine.
const (
	// ReturnFailure marks a node that did not succeed: aborted, bad input, or
	// a failed check.
	ReturnFailure = 0
	// ReturnSuccess marks a collision-free, completed execution.
	ReturnSuccess = 1
)

// NodeInfo is the outcome record a task returns to the engine. It is created
// once per execution and owned by the engine afterwards; the engine uses
// Clone to snapshot records without aliasing.
type NodeInfo struct {
	// Identity copied from the task that produced the record.
	Name        string
	UUID        uuid.UUID
	Conditional bool
	InputKeys   []string
	OutputKeys  []string

	// ReturnValue routes the engine: ReturnSuccess or ReturnFailure.
	ReturnValue int

	// Message explains the outcome in human-readable form.
	Message string

	// Elapsed is the wall time the execution took.
	Elapsed time.Duration

	// Env references the environment snapshot the check ran against.
	Env ports.Environment

	// ContactResults carries the per-sample contact evidence, present only on
	// failure so the success path stays light.
	ContactResults []domain.ContactResultMap
}

// NewNodeInfo creates a failure-initialized record for a task.
func NewNodeInfo(t Task) *NodeInfo {
	return &NodeInfo{
		Name:        t.Name(),
		UUID:        t.UUID(),
		Conditional: t.IsConditional(),
		InputKeys:   slices.Clone(t.InputKeys()),
		OutputKeys:  slices.Clone(t.OutputKeys()),
		ReturnValue: ReturnFailure,
	}
}

// Clone returns a deep, independent copy.
func (i *NodeInfo) Clone() *NodeInfo {
	if i == nil {
		return nil
	}
	out := *i
	out.InputKeys = slices.Clone(i.InputKeys)
	out.OutputKeys = slices.Clone(i.OutputKeys)
	if i.ContactResults != nil {
		out.ContactResults = make([]domain.ContactResultMap, len(i.ContactResults))
		for idx, m := range i.ContactResults {
			out.ContactResults[idx] = m.Clone()
		}
	}
	return &out
}

// Equal compares records structurally over identity, return value, and
// message. The contact payload and elapsed time are excluded so engine-level
// result comparison stays cheap and stable across floating-point noise in the
// contact geometry.
func (i *NodeInfo) Equal(other *NodeInfo) bool {
	if i == nil || other == nil {
		return i == other
	}
	return i.Name == other.Name &&
		i.UUID == other.UUID &&
		i.Conditional == other.Conditional &&
		slices.Equal(i.InputKeys, other.InputKeys) &&
		slices.Equal(i.OutputKeys, other.OutputKeys) &&
		i.ReturnValue == other.ReturnValue &&
		i.Message == other.Message
}

type nodeInfoDoc struct {
	Name        string   `yaml:"name"`
	UUID        string   `yaml:"uuid"`
	Conditional bool     `yaml:"conditional"`
	InputKeys   []string `yaml:"input_keys,omitempty"`
	OutputKeys  []string `yaml:"output_keys,omitempty"`
	ReturnValue int      `yaml:"return_value"`
	Message     string   `yaml:"message"`
	ElapsedNS   int64    `yaml:"elapsed_ns"`
}

// MarshalYAML serializes the identity-relevant fields. The environment
// reference and contact payload do not round-trip.
func (i NodeInfo) MarshalYAML() (any, error) {
	return nodeInfoDoc{
		Name:        i.Name,
		UUID:        i.UUID.String(),
		Conditional: i.Conditional,
		InputKeys:   i.InputKeys,
		OutputKeys:  i.OutputKeys,
		ReturnValue: i.ReturnValue,
		Message:     i.Message,
		ElapsedNS:   i.Elapsed.Nanoseconds(),
	}, nil
}

// UnmarshalYAML restores a record serialized with MarshalYAML.
func (i *NodeInfo) UnmarshalYAML(node *yaml.Node) error {
	var doc nodeInfoDoc
	if err := node.Decode(&doc); err != nil {
		return err
	}
	id, err := uuid.Parse(doc.UUID)
	if err != nil {
		return err
	}
	i.Name = doc.Name
	i.UUID = id
	i.Conditional = doc.Conditional
	i.InputKeys = doc.InputKeys
	i.OutputKeys = doc.OutputKeys
	i.ReturnValue = doc.ReturnValue
	i.Message = doc.Message
	i.Elapsed = time.Duration(doc.ElapsedNS)
	return nil
}

// EncodeNodeInfo serializes the identity-relevant fields of a record.
func EncodeNodeInfo(i *NodeInfo) ([]byte, error) {
	return yaml.Marshal(i)
}

// DecodeNodeInfo restores a record serialized with EncodeNodeInfo.
func DecodeNodeInfo(data []byte) (*NodeInfo, error) {
	var i NodeInfo
	if err := yaml.Unmarshal(data, &i); err != nil {
		return nil, err
	}
	return &i, nil
}
