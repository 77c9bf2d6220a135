// Copyright 2025 The nuflow Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the array types the nuflow graph nodes exchange.
//
// Every port of the graph carries a row-major float64 array. Sources are
// usually built with Linspace and Meshgrid:
//
//	energies := tensor.Linspace(1, 10, 91)
//	cosines := tensor.Linspace(-1, 1, 5)
//	ee, ctheta, err := tensor.Meshgrid(energies, cosines) // shape (91, 5)
//
// The only data type is Float64; Undefined marks a port whose type has not
// been propagated yet.
package tensor
