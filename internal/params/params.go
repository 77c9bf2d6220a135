// Package params loads tables of physical parameters from YAML and turns
// them into parameter nodes.
//
// A table looks like
//
//	format: value                   # or [value, sigma_absolute|sigma_relative|sigma_percent]
//	state: fixed                    # or variable
//	parameters:
//	  ElectronMass: 0.5109989461
//	  oscillation:
//	    SinSq2Theta13: [0.0852, 0.0024]
//	labels:
//	  ElectronMass: electron mass, MeV
//
// Nested maps are flattened into dotted keys ("oscillation.SinSq2Theta13").
package params

import (
	"cmp"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"

	"github.com/nuflow/nuflow/internal/graph"
	"github.com/nuflow/nuflow/internal/lib"
	"github.com/nuflow/nuflow/internal/storage"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrFormat is returned for a malformed parameter table.
var ErrFormat = errors.New("invalid parameter table")

// State tells whether a parameter may be varied.
type State string

// Parameter states.
const (
	Fixed    State = "fixed"
	Variable State = "variable"
)

// Group returns the storage group of the state: "constant" or "free".
func (s State) Group() string {
	if s == Variable {
		return "free"
	}
	return "constant"
}

// Format lists the meaning of the numbers of each entry: "value", optionally
// followed by the kind of uncertainty.
type Format []string

// UnmarshalYAML accepts either a single name or a list of names.
func (f *Format) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*f = Format{value.Value}
		return nil
	case yaml.SequenceNode:
		var names []string
		if err := value.Decode(&names); err != nil {
			return err
		}
		*f = names
		return nil
	default:
		return fmt.Errorf("%w: format must be a name or a list of names (line %d)", ErrFormat, value.Line)
	}
}

var uncertainties = []string{"sigma_absolute", "sigma_relative", "sigma_percent"}

func (f Format) validate() error {
	switch {
	case len(f) == 1 && f[0] == "value":
		return nil
	case len(f) == 2 && f[0] == "value" && slices.Contains(uncertainties, f[1]):
		return nil
	default:
		return fmt.Errorf("%w: unsupported format %v", ErrFormat, []string(f))
	}
}

// Entry is one parameter of a table.
type Entry struct {
	Key   string
	Value float64
	Sigma float64 // absolute uncertainty, 0 if not given
	State State
	Label string
}

// Table is a set of parameters sorted by key.
type Table struct {
	entries []Entry
}

type document struct {
	Format     Format    `yaml:"format"`
	State      State     `yaml:"state"`
	Parameters yaml.Node `yaml:"parameters"`
	Labels     yaml.Node `yaml:"labels"`
}

// Load reads a parameter table from a YAML file.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return Parse(data)
}

// Defaults returns the built-in table: PDG constants of the IBD cross-section
// and reference oscillation parameters.
func Defaults() (*Table, error) {
	return Parse(defaultsYAML)
}

// Parse parses a parameter table from YAML bytes.
func Parse(data []byte) (*Table, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if len(doc.Format) == 0 {
		doc.Format = Format{"value"}
	}
	if err := doc.Format.validate(); err != nil {
		return nil, err
	}
	switch doc.State {
	case "":
		doc.State = Fixed
	case Fixed, Variable:
	default:
		return nil, fmt.Errorf("%w: unknown state %q", ErrFormat, doc.State)
	}

	raw := make(map[string]*yaml.Node)
	if err := flatten(&doc.Parameters, "", raw); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: no parameters", ErrFormat)
	}
	labels := make(map[string]*yaml.Node)
	if err := flatten(&doc.Labels, "", labels); err != nil {
		return nil, err
	}

	t := &Table{}
	for key, node := range raw {
		e, err := doc.Format.entry(key, node)
		if err != nil {
			return nil, err
		}
		e.State = doc.State
		if l, ok := labels[key]; ok {
			e.Label = l.Value
		}
		t.entries = append(t.entries, e)
	}
	t.sort()
	return t, nil
}

// flatten collects the leaves of a mapping under dotted keys.
func flatten(node *yaml.Node, prefix string, leaves map[string]*yaml.Node) error {
	switch node.Kind {
	case 0:
		return nil
	case yaml.DocumentNode:
		for _, c := range node.Content {
			if err := flatten(c, prefix, leaves); err != nil {
				return err
			}
		}
		return nil
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := storage.Key(prefix, node.Content[i].Value)
			value := node.Content[i+1]
			if value.Kind == yaml.MappingNode {
				if err := flatten(value, key, leaves); err != nil {
					return err
				}
				continue
			}
			leaves[key] = value
		}
		return nil
	default:
		return fmt.Errorf("%w: expected a mapping (line %d)", ErrFormat, node.Line)
	}
}

func (f Format) entry(key string, node *yaml.Node) (Entry, error) {
	var numbers []string
	switch node.Kind {
	case yaml.ScalarNode:
		numbers = []string{node.Value}
	case yaml.SequenceNode:
		for _, c := range node.Content {
			numbers = append(numbers, c.Value)
		}
	default:
		return Entry{}, fmt.Errorf("%w: parameter %q: expected a number or a list (line %d)", ErrFormat, key, node.Line)
	}
	if len(numbers) != len(f) {
		return Entry{}, fmt.Errorf("%w: parameter %q: %d number(s) for format %v (line %d)", ErrFormat, key, len(numbers), []string(f), node.Line)
	}

	values := make([]float64, len(numbers))
	for i, s := range numbers {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Entry{}, fmt.Errorf("%w: parameter %q: %v (line %d)", ErrFormat, key, err, node.Line)
		}
		values[i] = v
	}

	e := Entry{Key: key, Value: values[0]}
	if len(f) == 2 {
		switch f[1] {
		case "sigma_absolute":
			e.Sigma = values[1]
		case "sigma_relative":
			e.Sigma = values[1] * values[0]
		case "sigma_percent":
			e.Sigma = values[1] * 0.01 * values[0]
		}
	}
	return e, nil
}

func (t *Table) sort() {
	slices.SortFunc(t.entries, func(a, b Entry) int {
		return cmp.Compare(a.Key, b.Key)
	})
}

// Entries returns the parameters sorted by key.
func (t *Table) Entries() []Entry {
	return slices.Clone(t.entries)
}

// Get returns the parameter stored under key.
func (t *Table) Get(key string) (Entry, bool) {
	i, ok := slices.BinarySearchFunc(t.entries, key, func(e Entry, k string) int {
		return cmp.Compare(e.Key, k)
	})
	if !ok {
		return Entry{}, false
	}
	return t.entries[i], true
}

// Update adds the entries of other, replacing those with the same key.
func (t *Table) Update(other *Table) {
	for _, e := range other.entries {
		if i := slices.IndexFunc(t.entries, func(x Entry) bool { return x.Key == e.Key }); i >= 0 {
			t.entries[i] = e
			continue
		}
		t.entries = append(t.entries, e)
	}
	t.sort()
}

// Nodes creates one parameter node per entry, keyed by the entry key.
func (t *Table) Nodes() map[string]*lib.Parameter {
	nodes := make(map[string]*lib.Parameter, len(t.entries))
	for _, e := range t.entries {
		nodes[e.Key] = lib.NewParameter(e.Key, e.Value, graph.Labels{Text: e.Label})
	}
	return nodes
}

// Storage creates the parameter nodes and registers them under
// "parameter.<group>.<key>", where the group is "constant" for fixed
// parameters and "free" for variable ones. The same key is used for the node
// and its output.
func (t *Table) Storage() (*storage.Storage, error) {
	st := storage.New()
	nodes := t.Nodes()
	for _, e := range t.entries {
		key := storage.Key("parameter", e.State.Group(), e.Key)
		p := nodes[e.Key]
		if err := st.AddNode(key, p); err != nil {
			return nil, err
		}
		if err := st.AddOutput(key, p.Output()); err != nil {
			return nil, err
		}
	}
	return st, nil
}

// Outputs creates the parameter nodes and returns their outputs keyed by the
// entry key, ready for graph.ConnectKeywords.
func (t *Table) Outputs() map[string]*graph.Output {
	outs := make(map[string]*graph.Output, len(t.entries))
	for key, p := range t.Nodes() {
		outs[key] = p.Output()
	}
	return outs
}
