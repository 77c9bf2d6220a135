// Package graph implements the typed computation graph: nodes with input and
// output ports, type propagation before evaluation, lazy evaluation with
// taint tracking, and composite nodes that merge shared parameter inputs.
package graph

import "fmt"

// Evaluator is what the graph drives: plain nodes and composite nodes.
type Evaluator interface {
	Name() string
	UpdateTypes() error
	Touch() error
}

// Graph keeps the nodes of one computation and closes them together.
type Graph struct {
	name  string
	items []Evaluator
}

// New creates an empty graph.
func New(name string) *Graph {
	return &Graph{name: name}
}

// Name returns the graph name.
func (g *Graph) Name() string {
	return g.name
}

// Add registers nodes with the graph.
func (g *Graph) Add(items ...Evaluator) {
	g.items = append(g.items, items...)
}

// Items returns the registered nodes.
func (g *Graph) Items() []Evaluator {
	return append([]Evaluator(nil), g.items...)
}

// Close propagates types through every registered node.
func (g *Graph) Close() error {
	for _, it := range g.items {
		if err := it.UpdateTypes(); err != nil {
			return fmt.Errorf("graph %q: %w", g.name, err)
		}
	}
	return nil
}

// Touch evaluates every tainted node.
func (g *Graph) Touch() error {
	for _, it := range g.items {
		if err := it.Touch(); err != nil {
			return fmt.Errorf("graph %q: %w", g.name, err)
		}
	}
	return nil
}
