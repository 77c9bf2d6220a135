// Package typefunc provides the building blocks of node type functions:
// input consistency checks and the propagation of data type, shape and axes
// from inputs to outputs.
//
// Each helper returns a *graph.TypeError on mismatch and writes nothing but
// output data descriptors, so a type function built from them is idempotent.
package typefunc

import (
	"github.com/nuflow/nuflow/internal/graph"
	"github.com/nuflow/nuflow/internal/tensor"
)

// CheckInputDimension checks that every input has ndim dimensions.
func CheckInputDimension(node *graph.Node, ndim int, inputs ...*graph.Input) error {
	for _, in := range inputs {
		if dim := in.DD().Dim(); dim != ndim {
			return graph.TypeErrorf(node.Name(), in.Name(), "expected %d dimension(s), got %d", ndim, dim)
		}
	}
	return nil
}

// CheckInputsEquivalence checks that the inputs share data type and shape.
func CheckInputsEquivalence(node *graph.Node, inputs ...*graph.Input) error {
	if len(inputs) < 2 {
		return nil
	}
	ref := inputs[0].DD()
	for _, in := range inputs[1:] {
		dd := in.DD()
		if dd.DType != ref.DType {
			return graph.TypeErrorf(node.Name(), in.Name(), "data type %s differs from %s of input %q", dd.DType, ref.DType, inputs[0].Name())
		}
		if !dd.Shape.Equal(ref.Shape) {
			return graph.TypeErrorf(node.Name(), in.Name(), "shape %v differs from %v of input %q", dd.Shape, ref.Shape, inputs[0].Name())
		}
	}
	return nil
}

// CheckInputShape checks that every connected input has the given shape.
func CheckInputShape(node *graph.Node, shape tensor.Shape, inputs ...*graph.Input) error {
	for _, in := range inputs {
		if !in.Connected() {
			continue
		}
		if got := in.DD().Shape; !got.Equal(shape) {
			return graph.TypeErrorf(node.Name(), in.Name(), "expected shape %v, got %v", shape, got)
		}
	}
	return nil
}

// CheckInputDType checks that every connected input has the given data type.
func CheckInputDType(node *graph.Node, dtype tensor.DataType, inputs ...*graph.Input) error {
	for _, in := range inputs {
		if !in.Connected() {
			continue
		}
		if got := in.DD().DType; got != dtype {
			return graph.TypeErrorf(node.Name(), in.Name(), "expected data type %s, got %s", dtype, got)
		}
	}
	return nil
}

// CopyOptions selects what CopyFromInputToOutput copies besides the data
// type and the shape.
type CopyOptions struct {
	Edges bool // copy the axes when they are bin edges
	Nodes bool // copy the axes when they are nodes
}

// CopyAll copies the data type, the shape and any axes.
var CopyAll = CopyOptions{Edges: true, Nodes: true}

// CopyFromInputToOutput assigns the input's data type and shape to every
// output. Axes are copied as selected by opts; otherwise the outputs get
// no axes.
func CopyFromInputToOutput(node *graph.Node, in *graph.Input, opts CopyOptions, outputs ...*graph.Output) error {
	if !in.Connected() {
		return graph.TypeErrorf(node.Name(), in.Name(), "input is not connected")
	}
	src := in.DD()
	for _, out := range outputs {
		dd := graph.DataDescriptor{DType: src.DType, Shape: src.Shape.Clone()}
		if (opts.Edges && src.HasAxes(graph.AxisEdges)) || (opts.Nodes && src.HasAxes(graph.AxisNodes)) {
			dd.Axes = src.Clone().Axes
		}
		out.SetDD(dd)
	}
	return nil
}

// AssignOutputAxesFromInputs makes the i-th input's producer the axis of the
// i-th output dimension. The number of inputs must match the output
// dimension. Existing axes are an error unless overwrite is set.
//
// Nodes sources must either have the output's shape (a mesh) or be 1-D with
// the dimension's size; edges sources must be 1-D with one extra element.
func AssignOutputAxesFromInputs(node *graph.Node, inputs []*graph.Input, out *graph.Output, kind graph.AxisKind, overwrite bool) error {
	dd := out.DD()
	if len(inputs) != dd.Dim() {
		return graph.TypeErrorf(node.Name(), out.Name(), "%d axis source(s) for a %d-dimensional output", len(inputs), dd.Dim())
	}
	if len(dd.Axes) > 0 && !overwrite {
		return graph.TypeErrorf(node.Name(), out.Name(), "axes are already assigned")
	}

	axes := make([]graph.Axis, len(inputs))
	for i, in := range inputs {
		if !in.Connected() {
			return graph.TypeErrorf(node.Name(), in.Name(), "input is not connected")
		}
		shape := in.DD().Shape
		switch kind {
		case graph.AxisNodes:
			if !shape.Equal(dd.Shape) && !shape.Equal(tensor.Shape{dd.Shape[i]}) {
				return graph.TypeErrorf(node.Name(), in.Name(), "shape %v cannot describe dimension %d of %v", shape, i, dd.Shape)
			}
		case graph.AxisEdges:
			if !shape.Equal(tensor.Shape{dd.Shape[i] + 1}) {
				return graph.TypeErrorf(node.Name(), in.Name(), "edges %v cannot describe dimension %d of %v", shape, i, dd.Shape)
			}
		default:
			return graph.TypeErrorf(node.Name(), out.Name(), "cannot assign axes of kind %s", kind)
		}
		axes[i] = graph.Axis{Kind: kind, Source: in.Parent()}
	}

	dd.Axes = axes
	out.SetDD(dd)
	return nil
}
