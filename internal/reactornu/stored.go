package reactornu

import (
	"github.com/nuflow/nuflow/internal/graph"
	"github.com/nuflow/nuflow/internal/storage"
)

// ReplicateNueSurvivalProbability creates one NueSurvivalProbability per key,
// named "<name>.<key>", and registers them in a new storage:
//
//	nodes.<name>.<key>
//	inputs.<name>.enu.<key>
//	inputs.<name>.L.<key>
//	outputs.<name>.<key>
//
// An empty key registers a single node under name.
func ReplicateNueSurvivalProbability(name string, keys []string, opts ...Option) (*storage.Storage, error) {
	if len(keys) == 0 {
		keys = []string{""}
	}

	st := storage.New()
	for _, key := range keys {
		nodeKey := storage.Key(name, key)
		n, err := NewNueSurvivalProbability(nodeKey, opts...)
		if err != nil {
			return nil, err
		}
		if err := st.AddNode(nodeKey, n); err != nil {
			return nil, err
		}
		if err := st.AddInput(storage.Key(name, Enu, key), n.e); err != nil {
			return nil, err
		}
		if err := st.AddInput(storage.Key(name, Baseline, key), n.baseline); err != nil {
			return nil, err
		}
		if err := st.AddOutput(nodeKey, n.result); err != nil {
			return nil, err
		}
	}
	return st, nil
}

// NewStoredIBDGroup creates an IBDXsecVBO1Group and registers it in a new
// storage: the group under nodes.<XSec>, its two positional inputs under
// inputs.<XSec>.<input>, and the cross-section, antineutrino energy and
// Jacobian outputs under the member names.
//
// Empty member names default to "ibd.crosssection", "ibd.enu" and
// "ibd.jacobian".
func NewStoredIBDGroup(names GroupNames, opts ...Option) (*IBDXsecVBO1Group, *storage.Storage, error) {
	if names.XSec == "" {
		names.XSec = "ibd.crosssection"
	}
	if names.Enu == "" {
		names.Enu = "ibd.enu"
	}
	if names.Jacobian == "" {
		names.Jacobian = "ibd.jacobian"
	}

	g, err := NewIBDXsecVBO1Group(names, opts...)
	if err != nil {
		return nil, nil, err
	}

	st := storage.New()
	if err := st.AddNode(names.XSec, g); err != nil {
		return nil, nil, err
	}
	for _, in := range g.Inputs().Positional() {
		if err := st.AddInput(storage.Key(names.XSec, in.Name()), in); err != nil {
			return nil, nil, err
		}
	}
	outputs := map[string]string{
		names.XSec:     Result,
		names.Enu:      Enu,
		names.Jacobian: "jacobian",
	}
	if err := addGroupOutputs(st, g, outputs); err != nil {
		return nil, nil, err
	}
	return g, st, nil
}

// addGroupOutputs registers the group outputs named by the values of outputs
// under the matching keys.
func addGroupOutputs(st *storage.Storage, g *IBDXsecVBO1Group, outputs map[string]string) error {
	for key, port := range outputs {
		out, ok := g.Outputs().Get(port)
		if !ok {
			return &graph.WiringError{Node: g.Name(), Port: port, Details: "group has no such output"}
		}
		if err := st.AddOutput(key, out); err != nil {
			return err
		}
	}
	return nil
}
