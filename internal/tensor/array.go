package tensor

import "fmt"

// Array is a row-major multi-dimensional array of float64 values.
type Array struct {
	data   []float64
	shape  Shape
	stride []int
}

// NewArray creates a zero-filled array with the given shape.
func NewArray(shape Shape) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	return &Array{
		data:   make([]float64, shape.NumElements()),
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
	}, nil
}

// FromSlice creates an array from a Go slice.
// The slice is copied into the array's memory.
func FromSlice(data []float64, shape Shape) (*Array, error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}
	a, err := NewArray(shape)
	if err != nil {
		return nil, err
	}
	copy(a.data, data)
	return a, nil
}

// Scalar creates a 1-element array of shape (1,).
func Scalar(v float64) *Array {
	return &Array{data: []float64{v}, shape: Shape{1}, stride: []int{1}}
}

// Shape returns the array's shape.
func (a *Array) Shape() Shape {
	return a.shape
}

// DType returns the array's data type.
func (a *Array) DType() DataType {
	return Float64
}

// NumElements returns the total number of elements.
func (a *Array) NumElements() int {
	return len(a.data)
}

// Data returns the flat row-major view of the array's data.
//
// WARNING: Modifications to the returned slice will modify the array.
func (a *Array) Data() []float64 {
	return a.data
}

// At returns the element at the given indices.
// Panics if indices are out of bounds.
func (a *Array) At(indices ...int) float64 {
	return a.data[a.offset(indices)]
}

// Set sets the element at the given indices.
// Panics if indices are out of bounds.
func (a *Array) Set(value float64, indices ...int) {
	a.data[a.offset(indices)] = value
}

func (a *Array) offset(indices []int) int {
	if len(indices) != len(a.shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(a.shape), len(indices)))
	}
	offset := 0
	for i, idx := range indices {
		if idx < 0 || idx >= a.shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, a.shape[i]))
		}
		offset += idx * a.stride[i]
	}
	return offset
}

// Clone returns a deep copy of the array.
func (a *Array) Clone() *Array {
	data := make([]float64, len(a.data))
	copy(data, a.data)
	return &Array{data: data, shape: a.shape.Clone(), stride: a.shape.ComputeStrides()}
}
