package graph

import "fmt"

// Port is anything that can be stored in a Ports collection.
type Port interface {
	Name() string
}

// Ports is an ordered collection of ports addressable by key and, for the
// positional subset, by index.
type Ports[T Port] struct {
	names      []string
	all        []T
	byName     map[string]T
	positional []string
}

func newPorts[T Port]() *Ports[T] {
	return &Ports[T]{byName: make(map[string]T)}
}

// add registers port under key. Keys are unique within a collection.
func (p *Ports[T]) add(key string, port T, positional bool) error {
	if _, ok := p.byName[key]; ok {
		return fmt.Errorf("duplicate port %q", key)
	}
	p.names = append(p.names, key)
	p.all = append(p.all, port)
	p.byName[key] = port
	if positional {
		p.positional = append(p.positional, key)
	}
	return nil
}

// makePositional replaces the positional order with keys.
func (p *Ports[T]) makePositional(keys ...string) error {
	for _, k := range keys {
		if _, ok := p.byName[k]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownPort, k)
		}
	}
	p.positional = append([]string(nil), keys...)
	return nil
}

// Get returns the port registered under key.
func (p *Ports[T]) Get(key string) (T, bool) {
	port, ok := p.byName[key]
	return port, ok
}

// At returns the i-th positional port.
// Panics if i is out of range.
func (p *Ports[T]) At(i int) T {
	if i < 0 || i >= len(p.positional) {
		panic(fmt.Sprintf("positional index %d out of range [0, %d)", i, len(p.positional)))
	}
	return p.byName[p.positional[i]]
}

// Len returns the number of ports.
func (p *Ports[T]) Len() int {
	return len(p.all)
}

// NumPositional returns the number of positional ports.
func (p *Ports[T]) NumPositional() int {
	return len(p.positional)
}

// Names returns the keys in registration order.
func (p *Ports[T]) Names() []string {
	return append([]string(nil), p.names...)
}

// All returns the ports in registration order.
func (p *Ports[T]) All() []T {
	return append([]T(nil), p.all...)
}

// Positional returns the positional ports in order.
func (p *Ports[T]) Positional() []T {
	out := make([]T, len(p.positional))
	for i, k := range p.positional {
		out[i] = p.byName[k]
	}
	return out
}
