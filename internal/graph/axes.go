package graph

import "github.com/nuflow/nuflow/internal/tensor"

// AxisKind tells how an array dimension is described.
type AxisKind int

// Axis kinds.
const (
	AxisNone  AxisKind = iota
	AxisEdges          // bin edges, n+1 values for a dimension of size n
	AxisNodes          // bin centers or mesh coordinates
)

// String returns a human-readable name for the axis kind.
func (k AxisKind) String() string {
	switch k {
	case AxisNone:
		return "none"
	case AxisEdges:
		return "edges"
	case AxisNodes:
		return "nodes"
	default:
		return "unknown"
	}
}

// Axis describes one dimension of an output. Source is the output holding the
// coordinates: a 1-D array, or for nodes a mesh with the described output's
// shape.
type Axis struct {
	Kind   AxisKind
	Source *Output
}

// Values evaluates the source output and returns the coordinates.
func (a Axis) Values() ([]float64, error) {
	if a.Kind == AxisNone || a.Source == nil {
		return nil, nil
	}
	return a.Source.Data()
}

// DataDescriptor is the type of an output: data type, shape and per-dimension
// axes. An empty Axes slice means no axis is assigned.
type DataDescriptor struct {
	DType tensor.DataType
	Shape tensor.Shape
	Axes  []Axis
}

// Dim returns the number of dimensions.
func (d DataDescriptor) Dim() int {
	return len(d.Shape)
}

// Clone returns a copy that does not share slices with d.
func (d DataDescriptor) Clone() DataDescriptor {
	var axes []Axis
	if d.Axes != nil {
		axes = make([]Axis, len(d.Axes))
		copy(axes, d.Axes)
	}
	return DataDescriptor{DType: d.DType, Shape: d.Shape.Clone(), Axes: axes}
}

// HasAxes reports whether every dimension carries an axis of the given kind.
func (d DataDescriptor) HasAxes(kind AxisKind) bool {
	if len(d.Axes) == 0 || len(d.Axes) != d.Dim() {
		return false
	}
	for _, a := range d.Axes {
		if a.Kind != kind {
			return false
		}
	}
	return true
}

// AxesOf returns the axes of the given kind, or nil.
func (d DataDescriptor) AxesOf(kind AxisKind) []Axis {
	if !d.HasAxes(kind) {
		return nil
	}
	return d.Axes
}
