// Package storage keeps nodes, inputs and outputs under dotted keys such as
// "outputs.ibd.enu" so that graph builders can find each other's ports.
package storage

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/nuflow/nuflow/internal/graph"
)

// ErrDuplicateKey is returned when a key is registered twice.
var ErrDuplicateKey = errors.New("duplicate storage key")

// Key joins the parts into a dotted key, skipping empty parts.
func Key(parts ...string) string {
	nonEmpty := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, ".")
}

// Storage holds nodes, inputs and outputs under dotted keys.
type Storage struct {
	Nodes   map[string]graph.Evaluator
	Inputs  map[string]graph.Sink
	Outputs map[string]*graph.Output
}

// New creates an empty storage.
func New() *Storage {
	return &Storage{
		Nodes:   make(map[string]graph.Evaluator),
		Inputs:  make(map[string]graph.Sink),
		Outputs: make(map[string]*graph.Output),
	}
}

// AddNode registers a node under key.
func (s *Storage) AddNode(key string, node graph.Evaluator) error {
	return add(s.Nodes, "node", key, node)
}

// AddInput registers an input under key.
func (s *Storage) AddInput(key string, in graph.Sink) error {
	return add(s.Inputs, "input", key, in)
}

// AddOutput registers an output under key.
func (s *Storage) AddOutput(key string, out *graph.Output) error {
	return add(s.Outputs, "output", key, out)
}

func add[T any](m map[string]T, kind, key string, v T) error {
	if key == "" {
		return fmt.Errorf("empty %s key", kind)
	}
	if _, ok := m[key]; ok {
		return fmt.Errorf("%w: %s %q", ErrDuplicateKey, kind, key)
	}
	m[key] = v
	return nil
}

// Merge copies the entries of other into s. In strict mode an existing key
// is an error and nothing is copied; otherwise other's entries win.
func (s *Storage) Merge(other *Storage, strict bool) error {
	if strict {
		if err := checkDisjoint(s.Nodes, other.Nodes, "node"); err != nil {
			return err
		}
		if err := checkDisjoint(s.Inputs, other.Inputs, "input"); err != nil {
			return err
		}
		if err := checkDisjoint(s.Outputs, other.Outputs, "output"); err != nil {
			return err
		}
	}
	maps.Copy(s.Nodes, other.Nodes)
	maps.Copy(s.Inputs, other.Inputs)
	maps.Copy(s.Outputs, other.Outputs)
	return nil
}

func checkDisjoint[T any](dst, src map[string]T, kind string) error {
	for _, key := range slices.Sorted(maps.Keys(src)) {
		if _, ok := dst[key]; ok {
			return fmt.Errorf("%w: %s %q", ErrDuplicateKey, kind, key)
		}
	}
	return nil
}

// OutputsUnder returns the outputs whose key starts with prefix, keyed by the
// remainder of the key. The result can be passed to graph.ConnectKeywords.
func (s *Storage) OutputsUnder(prefix string) map[string]*graph.Output {
	return under(s.Outputs, prefix)
}

// InputsUnder returns the inputs whose key starts with prefix, keyed by the
// remainder of the key.
func (s *Storage) InputsUnder(prefix string) map[string]graph.Sink {
	return under(s.Inputs, prefix)
}

func under[T any](m map[string]T, prefix string) map[string]T {
	res := make(map[string]T)
	if prefix == "" {
		maps.Copy(res, m)
		return res
	}
	for key, v := range m {
		if rest, ok := strings.CutPrefix(key, prefix+"."); ok {
			res[rest] = v
		}
	}
	return res
}

// Keys returns the sorted keys of every node, input and output, prefixed by
// "nodes.", "inputs." and "outputs.".
func (s *Storage) Keys() []string {
	keys := make([]string, 0, len(s.Nodes)+len(s.Inputs)+len(s.Outputs))
	for k := range s.Nodes {
		keys = append(keys, "nodes."+k)
	}
	for k := range s.Inputs {
		keys = append(keys, "inputs."+k)
	}
	for k := range s.Outputs {
		keys = append(keys, "outputs."+k)
	}
	slices.Sort(keys)
	return keys
}
