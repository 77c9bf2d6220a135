package lib

import (
	"testing"

	"github.com/nuflow/nuflow/internal/graph"
	"github.com/nuflow/nuflow/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArray(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6}
	a, err := NewArrayFromSlice("a", data, tensor.Shape{2, 3})
	require.NoError(t, err)

	data[0] = 100
	assert.Equal(t, 1.0, a.Values()[0], "the node keeps its own copy")

	require.NoError(t, a.UpdateTypes())
	dd := a.Output().DD()
	assert.Equal(t, tensor.Float64, dd.DType)
	assert.Equal(t, tensor.Shape{2, 3}, dd.Shape)
	assert.Empty(t, dd.Axes)

	got, err := a.Output().Data()
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, got)

	require.NoError(t, a.Set(6, 5, 4, 3, 2, 1))
	assert.True(t, a.Tainted())
	got, err = a.Output().Data()
	require.NoError(t, err)
	assert.Equal(t, []float64{6, 5, 4, 3, 2, 1}, got)

	require.Error(t, a.Set(1, 2))

	_, err = NewArrayFromSlice("bad", data, tensor.Shape{4})
	require.Error(t, err)
}

func TestArrayAxes(t *testing.T) {
	a, err := NewArrayFromSlice("a", []float64{1, 2, 3}, tensor.Shape{3})
	require.NoError(t, err)
	edges, err := NewArrayFromSlice("edges", []float64{0.5, 1.5, 2.5, 3.5}, tensor.Shape{4})
	require.NoError(t, err)

	a.SetAxes(graph.Axis{Kind: graph.AxisEdges, Source: edges.Output()})
	require.NoError(t, a.UpdateTypes())
	require.True(t, a.Output().DD().HasAxes(graph.AxisEdges))

	require.NoError(t, edges.UpdateTypes())
	values, err := a.Output().DD().Axes[0].Values()
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 1.5, 2.5, 3.5}, values)

	a.SetAxes(graph.Axis{Kind: graph.AxisEdges}, graph.Axis{Kind: graph.AxisEdges})
	assert.False(t, a.TypesUpdated())
	require.ErrorIs(t, a.UpdateTypes(), graph.ErrType)
}

func TestParameter(t *testing.T) {
	p := NewParameter("ElectronMass", 0.511, graph.Labels{})
	assert.Equal(t, "ElectronMass", p.Labels().Text)
	assert.Equal(t, 0.511, p.Value())

	require.NoError(t, p.UpdateTypes())
	assert.Equal(t, tensor.Shape{1}, p.Output().DD().Shape)
	got, err := p.Output().Data()
	require.NoError(t, err)
	assert.Equal(t, []float64{0.511}, got)

	p.SetValue(0.6)
	assert.True(t, p.Tainted())
	got, err = p.Output().Data()
	require.NoError(t, err)
	assert.Equal(t, []float64{0.6}, got)
}
