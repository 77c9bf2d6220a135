package storage

import (
	"testing"

	"github.com/nuflow/nuflow/internal/graph"
	"github.com/nuflow/nuflow/internal/lib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "a.b.c", Key("a", "b", "c"))
	assert.Equal(t, "a.c", Key("a", "", "c"))
	assert.Equal(t, "", Key())
}

func TestStorageAdd(t *testing.T) {
	s := New()
	p := lib.NewParameter("p", 1, graph.Labels{})

	require.NoError(t, s.AddNode("parameter.p", p))
	require.NoError(t, s.AddOutput("parameter.p", p.Output()))

	err := s.AddOutput("parameter.p", p.Output())
	require.ErrorIs(t, err, ErrDuplicateKey)

	err = s.AddNode("", p)
	require.Error(t, err)
}

func TestStorageUnder(t *testing.T) {
	s := New()
	a := lib.NewParameter("a", 1, graph.Labels{})
	b := lib.NewParameter("b", 2, graph.Labels{})
	c := lib.NewParameter("c", 3, graph.Labels{})
	require.NoError(t, s.AddOutput("parameter.constant.a", a.Output()))
	require.NoError(t, s.AddOutput("parameter.constant.group.b", b.Output()))
	require.NoError(t, s.AddOutput("parameter.free.c", c.Output()))

	got := s.OutputsUnder("parameter.constant")
	assert.Len(t, got, 2)
	assert.Same(t, a.Output(), got["a"])
	assert.Same(t, b.Output(), got["group.b"])

	assert.Len(t, s.OutputsUnder(""), 3)
	assert.Empty(t, s.OutputsUnder("parameter.const"))
}

func TestStorageMerge(t *testing.T) {
	a := lib.NewParameter("a", 1, graph.Labels{})
	b := lib.NewParameter("b", 2, graph.Labels{})

	s1 := New()
	require.NoError(t, s1.AddOutput("x", a.Output()))

	s2 := New()
	require.NoError(t, s2.AddOutput("x", b.Output()))
	require.NoError(t, s2.AddNode("b", b))

	err := s1.Merge(s2, true)
	require.ErrorIs(t, err, ErrDuplicateKey)
	assert.Same(t, a.Output(), s1.Outputs["x"])
	assert.Empty(t, s1.Nodes, "strict merge copies nothing on conflict")

	require.NoError(t, s1.Merge(s2, false))
	assert.Same(t, b.Output(), s1.Outputs["x"])

	assert.Equal(t, []string{"nodes.b", "outputs.x"}, s1.Keys())
}
