// Copyright 2025 The nuflow Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package graph provides the public API of the nuflow computation graph.
//
// Nodes own typed input and output ports. Connecting ports builds the graph;
// Close propagates data types, shapes and axes once per topology change;
// reading an output evaluates the stale producers first.
//
// Example:
//
//	ee, ct, _ := tensor.Meshgrid(tensor.Linspace(1, 10, 10), []float64{-1, 0, 1})
//	enu, _ := reactornu.NewEeToEnu("enu")
//	_ = graph.ConnectPositional(enu.Inputs(), lib.NewArray("ee", ee).Output(), lib.NewArray("ct", ct).Output())
//	_, _ = graph.ConnectKeywords(parameters, enu.Inputs())
//
//	g := graph.New("ibd")
//	g.Add(enu)
//	if err := g.Close(); err != nil {
//	    return err
//	}
//	values, err := enu.Result().Data()
package graph

import (
	"io"

	"github.com/nuflow/nuflow/internal/graph"
	"github.com/nuflow/nuflow/internal/lib"
	"github.com/nuflow/nuflow/internal/tensor"
)

// Core types.
type (
	// Graph keeps the nodes of one computation and closes them together.
	Graph = graph.Graph

	// Evaluator is a node or a composite node.
	Evaluator = graph.Evaluator

	// Node binds input and output ports to a compute function.
	Node = graph.Node

	// MetaNode is a composite node merging the shared inputs of its members.
	MetaNode = graph.MetaNode

	// MemberPorts tells MetaNode.AddNode how a member's ports are exposed.
	MemberPorts = graph.MemberPorts

	// Input is a node input port.
	Input = graph.Input

	// Output is a node output port.
	Output = graph.Output

	// MergedInput is a composite node input feeding one or more member inputs.
	MergedInput = graph.MergedInput

	// Port is anything stored in a Ports collection.
	Port = graph.Port

	// Sink is a port an output can be connected to.
	Sink = graph.Sink

	// Labels are human-readable descriptions of a node's result.
	Labels = graph.Labels

	// DataDescriptor is the propagated type of an output.
	DataDescriptor = graph.DataDescriptor

	// Axis describes one dimension of an output.
	Axis = graph.Axis

	// AxisKind tells how a dimension is described.
	AxisKind = graph.AxisKind

	// TypeError reports a mismatch found while propagating types.
	TypeError = graph.TypeError

	// WiringError reports a construction-time wiring violation.
	WiringError = graph.WiringError

	// Array is a source node holding an array.
	Array = lib.Array

	// Parameter is a source node holding one scalar parameter.
	Parameter = lib.Parameter
)

// Ports is an ordered collection of ports addressable by name and, for the
// positional subset, by index.
type Ports[T Port] = graph.Ports[T]

// Axis kinds.
const (
	AxisNone  = graph.AxisNone
	AxisEdges = graph.AxisEdges
	AxisNodes = graph.AxisNodes
)

// Common errors.
var (
	ErrType             = graph.ErrType
	ErrWiring           = graph.ErrWiring
	ErrConfig           = graph.ErrConfig
	ErrAlreadyConnected = graph.ErrAlreadyConnected
	ErrNotReady         = graph.ErrNotReady
	ErrUnknownPort      = graph.ErrUnknownPort
)

// New creates an empty graph.
func New(name string) *Graph {
	return graph.New(name)
}

// NewNode creates a node without ports.
func NewNode(name string) *Node {
	return graph.NewNode(name)
}

// NewMetaNode creates an empty composite node.
func NewMetaNode(name string) *MetaNode {
	return graph.NewMetaNode(name)
}

// NewArray creates a source node holding a copy of a.
func NewArray(name string, a *tensor.Array) *Array {
	return lib.NewArray(name, a)
}

// NewParameter creates a source node holding one parameter value.
func NewParameter(name string, value float64, labels Labels) *Parameter {
	return lib.NewParameter(name, value, labels)
}

// ConnectKeywords connects every unconnected input whose name is a key of
// outputs and returns the number of connections made.
func ConnectKeywords[T Sink](outputs map[string]*Output, inputs *Ports[T]) (int, error) {
	return graph.ConnectKeywords(outputs, inputs)
}

// ConnectPositional connects outs to the positional inputs in order.
func ConnectPositional[T Sink](inputs *Ports[T], outs ...*Output) error {
	return graph.ConnectPositional(inputs, outs...)
}

// Fprint writes the ports of a node, or of a composite node and its members.
func Fprint(w io.Writer, e Evaluator) error {
	return graph.Fprint(w, e)
}
