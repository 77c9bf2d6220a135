package graph

import "fmt"

// ConnectKeywords connects every unconnected input whose key is found in
// outputs. Inputs without a matching output are left untouched. It returns
// the number of connections made.
func ConnectKeywords[T Sink](outputs map[string]*Output, inputs *Ports[T]) (int, error) {
	count := 0
	for _, key := range inputs.names {
		out, ok := outputs[key]
		if !ok {
			continue
		}
		in := inputs.byName[key]
		if in.Connected() {
			continue
		}
		if err := in.ConnectFrom(out); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

// ConnectPositional connects outs to the positional inputs in order. The
// number of outputs must match the number of positional inputs.
func ConnectPositional[T Sink](inputs *Ports[T], outs ...*Output) error {
	if len(outs) != len(inputs.positional) {
		return fmt.Errorf("%w: expected %d positional inputs, got %d", ErrWiring, len(inputs.positional), len(outs))
	}
	for i, out := range outs {
		if err := inputs.At(i).ConnectFrom(out); err != nil {
			return err
		}
	}
	return nil
}
