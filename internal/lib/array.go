// Package lib provides source nodes: arrays of data and scalar parameters.
package lib

import (
	"fmt"

	"github.com/nuflow/nuflow/internal/graph"
	"github.com/nuflow/nuflow/internal/tensor"
)

// Array is a source node holding an array. Its single output "array" carries
// the data; Set replaces the values and taints every consumer.
type Array struct {
	*graph.Node

	array  *tensor.Array
	output *graph.Output
	axes   []graph.Axis
}

// NewArray creates a source node holding a copy of a.
func NewArray(name string, a *tensor.Array) *Array {
	n := &Array{
		Node:  graph.NewNode(name),
		array: a.Clone(),
	}
	n.output = n.AddOutput("array")
	n.SetFunctions(n.typeFunc, n.compute)
	return n
}

// NewArrayFromSlice creates a source node holding data with the given shape.
func NewArrayFromSlice(name string, data []float64, shape tensor.Shape) (*Array, error) {
	a, err := tensor.FromSlice(data, shape)
	if err != nil {
		return nil, fmt.Errorf("array %q: %w", name, err)
	}
	return NewArray(name, a), nil
}

// Output returns the data output.
func (n *Array) Output() *graph.Output {
	return n.output
}

// Values returns a copy of the held values.
func (n *Array) Values() []float64 {
	return append([]float64(nil), n.array.Data()...)
}

// SetAxes attaches axes to the output. The sources are checked when types are
// propagated.
func (n *Array) SetAxes(axes ...graph.Axis) {
	n.axes = axes
	n.Invalidate()
}

// Set replaces the values. The number of values must match the shape.
func (n *Array) Set(values ...float64) error {
	if len(values) != n.array.NumElements() {
		return fmt.Errorf("array %q: expected %d values, got %d", n.Name(), n.array.NumElements(), len(values))
	}
	copy(n.array.Data(), values)
	n.Taint()
	return nil
}

func (n *Array) typeFunc() error {
	dd := graph.DataDescriptor{DType: n.array.DType(), Shape: n.array.Shape().Clone()}
	if len(n.axes) > 0 {
		if len(n.axes) != dd.Dim() {
			return graph.TypeErrorf(n.Name(), "array", "%d axes for a %d-dimensional array", len(n.axes), dd.Dim())
		}
		dd.Axes = append([]graph.Axis(nil), n.axes...)
	}
	n.output.SetDD(dd)
	return nil
}

func (n *Array) compute() {
	copy(n.output.Buffer(), n.array.Data())
}
