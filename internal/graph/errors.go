package graph

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrType             = errors.New("type propagation failed")
	ErrWiring           = errors.New("invalid wiring")
	ErrConfig           = errors.New("invalid configuration")
	ErrAlreadyConnected = errors.New("input already connected")
	ErrNotReady         = errors.New("types are not propagated")
	ErrUnknownPort      = errors.New("unknown port")
)

// TypeError reports a shape, dtype or axis mismatch found while propagating
// types. It matches ErrType with errors.Is.
type TypeError struct {
	Node    string // Node whose type function failed
	Port    string // Port involved, if any
	Details string
}

// Error implements the error interface.
func (e *TypeError) Error() string {
	if e.Port != "" {
		return fmt.Sprintf("node %q, port %q: %s", e.Node, e.Port, e.Details)
	}
	return fmt.Sprintf("node %q: %s", e.Node, e.Details)
}

// Unwrap returns ErrType.
func (e *TypeError) Unwrap() error {
	return ErrType
}

// TypeErrorf builds a TypeError for the given node and port.
func TypeErrorf(node, port, format string, args ...any) *TypeError {
	return &TypeError{Node: node, Port: port, Details: fmt.Sprintf(format, args...)}
}

// WiringError reports a construction-time wiring contract violation.
// It matches ErrWiring with errors.Is.
type WiringError struct {
	Node    string // Composite or consumer node
	Member  string // Member node, for composite nodes
	Port    string
	Details string
}

// Error implements the error interface.
func (e *WiringError) Error() string {
	switch {
	case e.Member != "":
		return fmt.Sprintf("node %q, member %q, port %q: %s", e.Node, e.Member, e.Port, e.Details)
	case e.Port != "":
		return fmt.Sprintf("node %q, port %q: %s", e.Node, e.Port, e.Details)
	default:
		return fmt.Sprintf("node %q: %s", e.Node, e.Details)
	}
}

// Unwrap returns ErrWiring.
func (e *WiringError) Unwrap() error {
	return ErrWiring
}
