package composer

import (
	"context"
	"slices"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Task is the graph-engine-facing contract every pipeline node implements.
// Execute runs synchronously to completion and always returns a well-formed
// NodeInfo; execution-time problems are encoded in the record, never raised.
type Task interface {
	Name() string
	UUID() uuid.UUID
	IsConditional() bool
	InputKeys() []string
	OutputKeys() []string

	Execute(ctx context.Context, in *Input) *NodeInfo
}

// Node carries the identity shared by every task: name, instance UUID, the
// conditional flag that tells the engine whether downstream branching depends
// on this node's verdict, and the storage key bindings. Embed it in concrete
// tasks.
type Node struct {
	name        string
	id          uuid.UUID
	conditional bool
	inputKeys   []string
	outputKeys  []string
}

// NewNode creates a node identity with a fresh UUID.
func NewNode(name string, conditional bool) Node {
	return Node{name: name, id: uuid.New(), conditional: conditional}
}

// Name returns the node name.
func (n *Node) Name() string { return n.name }

// UUID returns the instance identifier.
func (n *Node) UUID() uuid.UUID { return n.id }

// IsConditional reports whether the engine branches on this node's result.
func (n *Node) IsConditional() bool { return n.conditional }

// InputKeys returns the bound input storage keys.
func (n *Node) InputKeys() []string { return n.inputKeys }

// OutputKeys returns the bound output storage keys.
func (n *Node) OutputKeys() []string { return n.outputKeys }

// SetInputKeys binds the input storage keys. Construction-time only.
func (n *Node) SetInputKeys(keys ...string) { n.inputKeys = keys }

// SetOutputKeys binds the output storage keys. Construction-time only.
func (n *Node) SetOutputKeys(keys ...string) { n.outputKeys = keys }

// Equal compares node identity: name, conditional flag, and key bindings.
// The instance UUID and any execution results are deliberately excluded; two
// separately constructed nodes with the same bindings are the same node as
// far as the engine is concerned.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	return n.name == other.name &&
		n.conditional == other.conditional &&
		slices.Equal(n.inputKeys, other.inputKeys) &&
		slices.Equal(n.outputKeys, other.outputKeys)
}

type nodeDoc struct {
	Name        string   `yaml:"name"`
	UUID        string   `yaml:"uuid"`
	Conditional bool     `yaml:"conditional"`
	InputKeys   []string `yaml:"input_keys,omitempty"`
	OutputKeys  []string `yaml:"output_keys,omitempty"`
}

// MarshalYAML serializes the identity fields.
func (n Node) MarshalYAML() (any, error) {
	return nodeDoc{
		Name:        n.name,
		UUID:        n.id.String(),
		Conditional: n.conditional,
		InputKeys:   n.inputKeys,
		OutputKeys:  n.outputKeys,
	}, nil
}

// UnmarshalYAML restores the identity fields, including the instance UUID.
func (n *Node) UnmarshalYAML(node *yaml.Node) error {
	var doc nodeDoc
	if err := node.Decode(&doc); err != nil {
		return err
	}
	id, err := uuid.Parse(doc.UUID)
	if err != nil {
		return err
	}
	n.name = doc.Name
	n.id = id
	n.conditional = doc.Conditional
	n.inputKeys = doc.InputKeys
	n.outputKeys = doc.OutputKeys
	return nil
}
