// Copyright 2025 The nuflow Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/nuflow/nuflow/internal/tensor"
)

// Shape represents the dimensions of an array.
// Example: Shape{121, 5} is a 2-D array of 121 rows and 5 columns.
type Shape = tensor.Shape

// DataType represents the data type of an array.
type DataType = tensor.DataType

// Data type constants.
const (
	Undefined DataType = tensor.Undefined
	Float64   DataType = tensor.Float64
)

// Array is a row-major multi-dimensional array of float64 values.
type Array = tensor.Array

// NewArray creates a zero-filled array with the given shape.
func NewArray(shape Shape) (*Array, error) {
	return tensor.NewArray(shape)
}

// FromSlice creates an array from a copy of data.
//
// Example:
//
//	a, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
func FromSlice(data []float64, shape Shape) (*Array, error) {
	return tensor.FromSlice(data, shape)
}

// Scalar creates a 1-element array of shape (1,), the shape of parameter
// inputs.
func Scalar(v float64) *Array {
	return tensor.Scalar(v)
}

// Full creates an array filled with value.
func Full(shape Shape, value float64) (*Array, error) {
	return tensor.Full(shape, value)
}

// Linspace returns n evenly spaced values over [start, stop], both ends
// included.
func Linspace(start, stop float64, n int) []float64 {
	return tensor.Linspace(start, stop, n)
}

// Meshgrid builds two arrays of shape (len(x), len(y)) with matrix indexing:
// xx[i, j] = x[i] and yy[i, j] = y[j].
func Meshgrid(x, y []float64) (xx, yy *Array, err error) {
	return tensor.Meshgrid(x, y)
}
