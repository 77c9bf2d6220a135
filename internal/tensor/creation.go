package tensor

import "fmt"

// Full creates an array filled with a specific value.
func Full(shape Shape, value float64) (*Array, error) {
	a, err := NewArray(shape)
	if err != nil {
		return nil, err
	}
	for i := range a.data {
		a.data[i] = value
	}
	return a, nil
}

// Linspace returns n evenly spaced values over [start, stop], both ends included.
//
// Example:
//
//	Linspace(0, 12, 121) // 0.0, 0.1, ..., 12.0
func Linspace(start, stop float64, n int) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{start}
	}
	out := make([]float64, n)
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = stop
	return out
}

// Meshgrid builds two 2-D arrays of shape (len(x), len(y)) with matrix ('ij')
// indexing: xx[i, j] = x[i] and yy[i, j] = y[j].
func Meshgrid(x, y []float64) (xx, yy *Array, err error) {
	shape := Shape{len(x), len(y)}
	if xx, err = NewArray(shape); err != nil {
		return nil, nil, fmt.Errorf("meshgrid: %w", err)
	}
	if yy, err = NewArray(shape); err != nil {
		return nil, nil, fmt.Errorf("meshgrid: %w", err)
	}
	for i, xv := range x {
		row := i * len(y)
		for j, yv := range y {
			xx.data[row+j] = xv
			yy.data[row+j] = yv
		}
	}
	return xx, yy, nil
}
