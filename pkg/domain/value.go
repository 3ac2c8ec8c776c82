package domain

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ValueKind tags the payload held by a Value.
type ValueKind int

const (
	ValueNil ValueKind = iota
	ValueTrajectory
	ValueString
	ValueFloat
	ValueBool
)

func (k ValueKind) String() string {
	switch k {
	case ValueNil:
		return "nil"
	case ValueTrajectory:
		return "trajectory"
	case ValueString:
		return "string"
	case ValueFloat:
		return "float"
	case ValueBool:
		return "bool"
	default:
		return "unknown"
	}
}

// Value is the closed tagged union stored in the keyed execution storage.
// Readers access the payload through typed accessors that fail with
// ErrValueType on mismatch instead of crashing.
type Value struct {
	kind ValueKind
	traj Trajectory
	str  string
	num  float64
	flag bool
}

// TrajectoryValue wraps a trajectory.
func TrajectoryValue(t Trajectory) Value { return Value{kind: ValueTrajectory, traj: t} }

// StringValue wraps a string.
func StringValue(s string) Value { return Value{kind: ValueString, str: s} }

// FloatValue wraps a float.
func FloatValue(f float64) Value { return Value{kind: ValueFloat, num: f} }

// BoolValue wraps a bool.
func BoolValue(b bool) Value { return Value{kind: ValueBool, flag: b} }

// Kind returns the payload tag.
func (v Value) Kind() ValueKind { return v.kind }

// IsNil reports whether the value carries no payload.
func (v Value) IsNil() bool { return v.kind == ValueNil }

// AsTrajectory returns the trajectory payload.
func (v Value) AsTrajectory() (Trajectory, error) {
	if v.kind == ValueNil {
		return Trajectory{}, ErrNilValue
	}
	if v.kind != ValueTrajectory {
		return Trajectory{}, fmt.Errorf("%w: expected trajectory, got %s", ErrValueType, v.kind)
	}
	return v.traj, nil
}

// AsString returns the string payload.
func (v Value) AsString() (string, error) {
	if v.kind == ValueNil {
		return "", ErrNilValue
	}
	if v.kind != ValueString {
		return "", fmt.Errorf("%w: expected string, got %s", ErrValueType, v.kind)
	}
	return v.str, nil
}

// AsFloat returns the float payload.
func (v Value) AsFloat() (float64, error) {
	if v.kind == ValueNil {
		return 0, ErrNilValue
	}
	if v.kind != ValueFloat {
		return 0, fmt.Errorf("%w: expected float, got %s", ErrValueType, v.kind)
	}
	return v.num, nil
}

// AsBool returns the bool payload.
func (v Value) AsBool() (bool, error) {
	if v.kind == ValueNil {
		return false, ErrNilValue
	}
	if v.kind != ValueBool {
		return false, fmt.Errorf("%w: expected bool, got %s", ErrValueType, v.kind)
	}
	return v.flag, nil
}

// Clone returns a deep copy of the value.
func (v Value) Clone() Value {
	out := v
	if v.kind == ValueTrajectory {
		out.traj = v.traj.Clone()
	}
	return out
}

type valueDoc struct {
	Kind       string      `yaml:"kind"`
	Trajectory *Trajectory `yaml:"trajectory,omitempty"`
	String     *string     `yaml:"string,omitempty"`
	Float      *float64    `yaml:"float,omitempty"`
	Bool       *bool       `yaml:"bool,omitempty"`
}

// MarshalYAML serializes the value with its kind tag, so storage backends can
// round-trip it without reflection.
func (v Value) MarshalYAML() (any, error) {
	doc := valueDoc{Kind: v.kind.String()}
	switch v.kind {
	case ValueNil:
	case ValueTrajectory:
		t := v.traj
		doc.Trajectory = &t
	case ValueString:
		s := v.str
		doc.String = &s
	case ValueFloat:
		f := v.num
		doc.Float = &f
	case ValueBool:
		b := v.flag
		doc.Bool = &b
	default:
		return nil, fmt.Errorf("cannot marshal value of kind %d", v.kind)
	}
	return doc, nil
}

// UnmarshalYAML restores a value from its tagged form.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	var doc valueDoc
	if err := node.Decode(&doc); err != nil {
		return err
	}
	switch doc.Kind {
	case "", "nil":
		*v = Value{}
	case "trajectory":
		if doc.Trajectory == nil {
			return fmt.Errorf("value tagged trajectory has no payload")
		}
		*v = TrajectoryValue(*doc.Trajectory)
	case "string":
		if doc.String == nil {
			return fmt.Errorf("value tagged string has no payload")
		}
		*v = StringValue(*doc.String)
	case "float":
		if doc.Float == nil {
			return fmt.Errorf("value tagged float has no payload")
		}
		*v = FloatValue(*doc.Float)
	case "bool":
		if doc.Bool == nil {
			return fmt.Errorf("value tagged bool has no payload")
		}
		*v = BoolValue(*doc.Bool)
	default:
		return fmt.Errorf("unknown value kind %q", doc.Kind)
	}
	return nil
}
