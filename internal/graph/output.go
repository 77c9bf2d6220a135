package graph

// Output is a node's output port. The buffer is owned by the node and read by
// reference by the connected inputs.
type Output struct {
	name     string
	node     *Node
	dd       DataDescriptor
	data     []float64
	children []*Input
}

// Name returns the output name.
func (o *Output) Name() string {
	return o.name
}

// Node returns the node owning the output.
func (o *Output) Node() *Node {
	return o.node
}

// DD returns the data descriptor assigned by the type function.
func (o *Output) DD() DataDescriptor {
	return o.dd
}

// SetDD assigns the data descriptor. Type functions call it.
func (o *Output) SetDD(dd DataDescriptor) {
	o.dd = dd
}

// Children returns the inputs connected to the output.
func (o *Output) Children() []*Input {
	return append([]*Input(nil), o.children...)
}

// Data evaluates the owning node if needed and returns the buffer.
//
// WARNING: The buffer belongs to the node; consumers must not modify it.
func (o *Output) Data() ([]float64, error) {
	if err := o.node.Touch(); err != nil {
		return nil, err
	}
	return o.data, nil
}

// Buffer returns the buffer without evaluating the node. Compute functions
// write their results into it.
func (o *Output) Buffer() []float64 {
	return o.data
}

// Connect attaches the output to every sink.
func (o *Output) Connect(sinks ...Sink) error {
	for _, s := range sinks {
		if err := s.ConnectFrom(o); err != nil {
			return err
		}
	}
	return nil
}

func (o *Output) allocate() {
	if n := o.dd.Shape.NumElements(); len(o.data) != n {
		o.data = make([]float64, n)
	}
}
