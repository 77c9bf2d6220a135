package graph

import (
	"fmt"

	"github.com/nuflow/nuflow/internal/tensor"
)

// PortKind distinguishes array inputs from scalar parameter inputs.
type PortKind int

// Port kinds.
const (
	PortArray  PortKind = iota // multi-dimensional array, positional
	PortScalar                 // 1-element parameter array, keyword only
)

// String returns a human-readable name for the port kind.
func (k PortKind) String() string {
	switch k {
	case PortArray:
		return "array"
	case PortScalar:
		return "scalar"
	default:
		return "unknown"
	}
}

// Sink is a port a producer output can be connected to.
type Sink interface {
	Port
	ConnectFrom(out *Output) error
	Connected() bool
}

// Input is a node's input port. It references, and never owns, the output of
// a producer node.
type Input struct {
	name   string
	node   *Node
	parent *Output
	kind   PortKind

	optional     bool
	defaultValue float64
}

// Name returns the input name.
func (in *Input) Name() string {
	return in.name
}

// Node returns the node the input belongs to.
func (in *Input) Node() *Node {
	return in.node
}

// Kind returns whether the input takes an array or a scalar.
func (in *Input) Kind() PortKind {
	return in.kind
}

// Optional reports whether the input may stay unconnected.
func (in *Input) Optional() bool {
	return in.optional
}

// Default returns the value used by an unconnected optional input.
func (in *Input) Default() float64 {
	return in.defaultValue
}

// Connected reports whether a producer is attached.
func (in *Input) Connected() bool {
	return in.parent != nil
}

// Parent returns the connected producer output, or nil.
func (in *Input) Parent() *Output {
	return in.parent
}

// DD returns the producer's data descriptor. The zero value is returned for
// an unconnected input.
func (in *Input) DD() DataDescriptor {
	if in.parent == nil {
		return DataDescriptor{DType: tensor.Undefined}
	}
	return in.parent.dd
}

// Values returns the producer's buffer without evaluating it. It is meant for
// compute functions, which run after the producers were touched.
func (in *Input) Values() []float64 {
	if in.parent == nil {
		return nil
	}
	return in.parent.data
}

// Value returns the first element of the producer's buffer, or the default
// of an unconnected optional input.
func (in *Input) Value() float64 {
	if in.parent == nil || len(in.parent.data) == 0 {
		return in.defaultValue
	}
	return in.parent.data[0]
}

// ConnectFrom attaches out as the producer of this input.
// Connecting changes the topology, so the node and its consumers need their
// types propagated again.
func (in *Input) ConnectFrom(out *Output) error {
	if err := in.checkConnect(out); err != nil {
		return err
	}
	in.parent = out
	out.children = append(out.children, in)
	in.node.Invalidate()
	return nil
}

// checkConnect reports why out cannot be connected to in, if it cannot.
func (in *Input) checkConnect(out *Output) error {
	if out == nil {
		return &WiringError{Node: in.node.name, Port: in.name, Details: "nil producer"}
	}
	if in.parent != nil {
		return fmt.Errorf("node %q, input %q: %w", in.node.name, in.name, ErrAlreadyConnected)
	}
	if out.node == in.node {
		return &WiringError{Node: in.node.name, Port: in.name, Details: "node output connected to its own input"}
	}
	return nil
}
