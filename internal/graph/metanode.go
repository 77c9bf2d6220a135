package graph

import "slices"

// MergedInput is a parent-level input of a MetaNode. It stands for one or
// more member inputs; connecting a producer to it connects every member.
type MergedInput struct {
	name    string
	members []*Input
}

// Name returns the parent-level name.
func (m *MergedInput) Name() string {
	return m.name
}

// Members returns the member inputs behind the port.
func (m *MergedInput) Members() []*Input {
	return append([]*Input(nil), m.members...)
}

// Connected reports whether every member input has a producer.
func (m *MergedInput) Connected() bool {
	for _, in := range m.members {
		if !in.Connected() {
			return false
		}
	}
	return true
}

// Parent returns the producer shared by the members, or nil.
func (m *MergedInput) Parent() *Output {
	if len(m.members) == 0 {
		return nil
	}
	return m.members[0].parent
}

// ConnectFrom connects out to every member input. Either all members get
// connected or none does.
func (m *MergedInput) ConnectFrom(out *Output) error {
	for _, in := range m.members {
		if err := in.checkConnect(out); err != nil {
			return err
		}
	}
	for _, in := range m.members {
		if err := in.ConnectFrom(out); err != nil {
			return err
		}
	}
	return nil
}

// MemberPorts tells MetaNode.AddNode how a member's ports are exposed.
type MemberPorts struct {
	// KwInputs are the member inputs exposed at the parent level.
	KwInputs []string
	// MergeInputs are the names shared across members: exposed inputs listed
	// here are merged into a single parent-level input of the same name.
	MergeInputs []string
	// KwOutputs maps member output names to parent-level output names.
	KwOutputs map[string]string
	// OutputsPos exposes the member's positional outputs under their own
	// names as positional parent-level outputs.
	OutputsPos bool
}

// MetaNode is a composite node: a fixed list of member nodes with internal
// wiring and a reduced, deduplicated set of parent-level ports.
type MetaNode struct {
	name    string
	nodes   []*Node
	inputs  *Ports[*MergedInput]
	outputs *Ports[*Output]
	exposed map[*Input]bool
}

// NewMetaNode creates an empty composite node.
func NewMetaNode(name string) *MetaNode {
	return &MetaNode{
		name:    name,
		inputs:  newPorts[*MergedInput](),
		outputs: newPorts[*Output](),
		exposed: make(map[*Input]bool),
	}
}

// Name returns the composite node name.
func (m *MetaNode) Name() string {
	return m.name
}

// Meta returns the composite node itself, see Node.Base.
func (m *MetaNode) Meta() *MetaNode {
	return m
}

// Nodes returns the members in the order they were added.
func (m *MetaNode) Nodes() []*Node {
	return append([]*Node(nil), m.nodes...)
}

// Inputs returns the parent-level inputs.
func (m *MetaNode) Inputs() *Ports[*MergedInput] {
	return m.inputs
}

// Outputs returns the parent-level outputs. They are owned by the members.
func (m *MetaNode) Outputs() *Ports[*Output] {
	return m.outputs
}

// AddNode adds a member and exposes its ports as described by ports.
// Every name in ports.KwInputs and in the keys of ports.KwOutputs must exist
// on the member.
func (m *MetaNode) AddNode(node *Node, ports MemberPorts) error {
	if slices.Contains(m.nodes, node) {
		return &WiringError{Node: m.name, Member: node.name, Details: "member added twice"}
	}

	for _, name := range ports.KwInputs {
		in, ok := node.inputs.Get(name)
		if !ok {
			return &WiringError{Node: m.name, Member: node.name, Port: name, Details: "member has no such input"}
		}
		if in.Connected() {
			return &WiringError{Node: m.name, Member: node.name, Port: name, Details: "input is wired internally and cannot be exposed"}
		}

		if merged, ok := m.inputs.Get(name); ok {
			if !slices.Contains(ports.MergeInputs, name) {
				return &WiringError{Node: m.name, Member: node.name, Port: name, Details: "parent input already exists and the name is not merged"}
			}
			merged.members = append(merged.members, in)
		} else if err := m.inputs.add(name, &MergedInput{name: name, members: []*Input{in}}, false); err != nil {
			return &WiringError{Node: m.name, Member: node.name, Port: name, Details: err.Error()}
		}
		m.exposed[in] = true
	}

	if ports.OutputsPos {
		for _, key := range node.outputs.positional {
			out := node.outputs.byName[key]
			if err := m.outputs.add(key, out, true); err != nil {
				return &WiringError{Node: m.name, Member: node.name, Port: key, Details: err.Error()}
			}
		}
	}
	for _, src := range sortedKeys(ports.KwOutputs) {
		out, ok := node.outputs.Get(src)
		if !ok {
			return &WiringError{Node: m.name, Member: node.name, Port: src, Details: "member has no such output"}
		}
		dst := ports.KwOutputs[src]
		if err := m.outputs.add(dst, out, false); err != nil {
			return &WiringError{Node: m.name, Member: node.name, Port: dst, Details: err.Error()}
		}
	}

	m.nodes = append(m.nodes, node)
	return nil
}

// MakePositionals sets the order of the positional parent-level inputs.
func (m *MetaNode) MakePositionals(names ...string) error {
	if err := m.inputs.makePositional(names...); err != nil {
		return &WiringError{Node: m.name, Details: err.Error()}
	}
	return nil
}

// Validate checks that every member input is either exposed at the parent
// level, connected internally or optional.
func (m *MetaNode) Validate() error {
	for _, node := range m.nodes {
		for _, in := range node.inputs.all {
			if m.exposed[in] || in.Connected() || in.optional {
				continue
			}
			return &WiringError{Node: m.name, Member: node.name, Port: in.name, Details: "input is neither exposed nor wired internally"}
		}
	}
	return nil
}

// UpdateTypes propagates types through the members in their wired order.
func (m *MetaNode) UpdateTypes() error {
	for _, node := range m.nodes {
		if err := node.UpdateTypes(); err != nil {
			return err
		}
	}
	return nil
}

// Touch evaluates the members in their wired order.
func (m *MetaNode) Touch() error {
	for _, node := range m.nodes {
		if err := node.Touch(); err != nil {
			return err
		}
	}
	return nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
