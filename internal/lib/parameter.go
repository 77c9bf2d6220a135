package lib

import (
	"github.com/nuflow/nuflow/internal/graph"
	"github.com/nuflow/nuflow/internal/tensor"
)

// Parameter is a source node holding a single physical constant as a
// 1-element array.
type Parameter struct {
	*Array
}

// NewParameter creates a parameter node with an initial value.
func NewParameter(name string, value float64, labels graph.Labels) *Parameter {
	p := &Parameter{Array: NewArray(name, tensor.Scalar(value))}
	p.SetLabels(labels, graph.Labels{Text: name})
	return p
}

// Value returns the current value.
func (p *Parameter) Value() float64 {
	return p.array.Data()[0]
}

// SetValue changes the value and taints every consumer.
func (p *Parameter) SetValue(v float64) {
	p.array.Data()[0] = v
	p.Taint()
}
