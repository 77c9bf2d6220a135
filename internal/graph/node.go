package graph

import (
	"fmt"

	"github.com/nuflow/nuflow/internal/tensor"
)

// Node binds a fixed set of input and output ports to one compute function.
//
// Lifecycle:
//  1. Construction declares the ports and sets the two callbacks.
//  2. UpdateTypes runs the type function once per topology change: producers
//     first, then the node's own checks, then output allocation.
//  3. Touch runs the compute function when the node is tainted, producers
//     first. Changing a producer taints every consumer downstream.
//
// Concrete nodes embed *Node.
type Node struct {
	name    string
	labels  Labels
	inputs  *Ports[*Input]
	outputs *Ports[*Output]

	typeFunc func() error
	fcn      func()

	typesUpdated bool
	tainted      bool
}

// NewNode creates a node without ports.
func NewNode(name string) *Node {
	return &Node{
		name:    name,
		inputs:  newPorts[*Input](),
		outputs: newPorts[*Output](),
		tainted: true,
	}
}

// Name returns the node name.
func (n *Node) Name() string {
	return n.name
}

// Base returns the node itself. Nodes embedding *Node expose it through
// promotion, which lets Fprint find the ports.
func (n *Node) Base() *Node {
	return n
}

// Labels returns the node labels.
func (n *Node) Labels() Labels {
	return n.labels
}

// SetLabels replaces the labels, keeping defaults for empty fields.
func (n *Node) SetLabels(labels, defaults Labels) {
	n.labels = labels.WithDefaults(defaults)
}

// Inputs returns the input ports.
func (n *Node) Inputs() *Ports[*Input] {
	return n.inputs
}

// Outputs returns the output ports.
func (n *Node) Outputs() *Ports[*Output] {
	return n.outputs
}

// SetFunctions sets the type function and the compute function.
func (n *Node) SetFunctions(typeFunc func() error, fcn func()) {
	n.typeFunc = typeFunc
	n.fcn = fcn
}

// AddInput declares a positional array input.
// Panics if the name is already used.
func (n *Node) AddInput(name string) *Input {
	return n.addInput(&Input{name: name, node: n, kind: PortArray}, true)
}

// AddScalarInput declares a keyword scalar parameter input.
// Panics if the name is already used.
func (n *Node) AddScalarInput(name string) *Input {
	return n.addInput(&Input{name: name, node: n, kind: PortScalar}, false)
}

// AddOptionalScalarInput declares a keyword scalar input that falls back to
// def when left unconnected.
// Panics if the name is already used.
func (n *Node) AddOptionalScalarInput(name string, def float64) *Input {
	return n.addInput(&Input{name: name, node: n, kind: PortScalar, optional: true, defaultValue: def}, false)
}

// AddOutput declares a positional output.
// Panics if the name is already used.
func (n *Node) AddOutput(name string) *Output {
	out := &Output{name: name, node: n}
	if err := n.outputs.add(name, out, true); err != nil {
		panic(fmt.Sprintf("node %q: %v", n.name, err))
	}
	return out
}

// AddPair declares a positional input and the output derived from it.
func (n *Node) AddPair(input, output string) (*Input, *Output) {
	return n.AddInput(input), n.AddOutput(output)
}

func (n *Node) addInput(in *Input, positional bool) *Input {
	if err := n.inputs.add(in.name, in, positional); err != nil {
		panic(fmt.Sprintf("node %q: %v", n.name, err))
	}
	return in
}

// TypesUpdated reports whether the types are propagated for the current
// topology.
func (n *Node) TypesUpdated() bool {
	return n.typesUpdated
}

// Tainted reports whether the outputs are stale.
func (n *Node) Tainted() bool {
	return n.tainted
}

// UpdateTypes propagates shapes, data types and axes. It is idempotent: once
// done, it returns immediately until the node is invalidated.
func (n *Node) UpdateTypes() error {
	if n.typesUpdated {
		return nil
	}

	for _, in := range n.inputs.All() {
		if in.parent == nil {
			if in.optional {
				continue
			}
			return TypeErrorf(n.name, in.name, "input is not connected")
		}
		if err := in.parent.node.UpdateTypes(); err != nil {
			return err
		}
		if in.kind == PortScalar && !in.parent.dd.Shape.Equal(tensor.Shape{1}) {
			return TypeErrorf(n.name, in.name, "scalar input must have shape (1,), got %v", in.parent.dd.Shape)
		}
	}

	if n.typeFunc != nil {
		if err := n.typeFunc(); err != nil {
			return err
		}
	}

	for _, out := range n.outputs.All() {
		if out.dd.DType == tensor.Undefined {
			return TypeErrorf(n.name, out.name, "output type is not defined by the type function")
		}
		out.allocate()
	}

	n.typesUpdated = true
	n.tainted = true
	return nil
}

// Touch evaluates the node if it is tainted, evaluating producers first.
func (n *Node) Touch() error {
	if !n.typesUpdated {
		return fmt.Errorf("node %q: %w", n.name, ErrNotReady)
	}
	if !n.tainted {
		return nil
	}
	for _, in := range n.inputs.All() {
		if in.parent == nil {
			continue
		}
		if err := in.parent.node.Touch(); err != nil {
			return err
		}
	}
	if n.fcn != nil {
		n.fcn()
	}
	n.tainted = false
	return nil
}

// Taint marks the node and every consumer downstream as stale.
func (n *Node) Taint() {
	if n.tainted {
		return
	}
	n.tainted = true
	n.forEachConsumer((*Node).Taint)
}

// Invalidate drops the propagated types of the node and every consumer
// downstream, so the next UpdateTypes runs the type functions again.
func (n *Node) Invalidate() {
	if !n.typesUpdated {
		return
	}
	n.typesUpdated = false
	n.tainted = true
	n.forEachConsumer((*Node).Invalidate)
}

func (n *Node) forEachConsumer(f func(*Node)) {
	for _, out := range n.outputs.all {
		for _, child := range out.children {
			f(child.node)
		}
	}
}
