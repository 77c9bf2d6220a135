package params

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nuflow/nuflow/internal/graph"
	"github.com/nuflow/nuflow/internal/lib"
	"github.com/nuflow/nuflow/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	table, err := Defaults()
	require.NoError(t, err)
	assert.Len(t, table.Entries(), 13)

	me, ok := table.Get("ElectronMass")
	require.True(t, ok)
	assert.Equal(t, 0.5109989461, me.Value)
	assert.Equal(t, Fixed, me.State)
	assert.Equal(t, "electron mass, MeV (PDG2016)", me.Label)

	nmo, ok := table.Get("nmo")
	require.True(t, ok)
	assert.Equal(t, 1.0, nmo.Value)

	_, ok = table.Get("L")
	assert.False(t, ok)
}

func TestParse(t *testing.T) {
	data := []byte(`
format: [value, sigma_relative]
state: variable
parameters:
  L: [52.5, 0.01]
  oscillation:
    SinSq2Theta13: [0.0852, 0.1]
labels:
  oscillation:
    SinSq2Theta13: reactor mixing angle
`)
	table, err := Parse(data)
	require.NoError(t, err)

	entries := table.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "L", entries[0].Key)
	assert.InDelta(t, 0.525, entries[0].Sigma, 1e-12)
	assert.Equal(t, Variable, entries[0].State)

	e, ok := table.Get("oscillation.SinSq2Theta13")
	require.True(t, ok)
	assert.Equal(t, 0.0852, e.Value)
	assert.InDelta(t, 0.00852, e.Sigma, 1e-12)
	assert.Equal(t, "reactor mixing angle", e.Label)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad format", "format: [value, sigma]\nparameters: {a: [1, 2]}"},
		{"bad state", "state: loose\nparameters: {a: 1}"},
		{"count mismatch", "format: value\nparameters: {a: [1, 2]}"},
		{"not a number", "parameters: {a: one}"},
		{"empty", "format: value"},
		{"parameters list", "parameters: [1, 2]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.ErrorIs(t, err, ErrFormat)
		})
	}

	_, err := Parse([]byte("parameters: {a: 1"))
	require.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "baseline.yaml")
	require.NoError(t, os.WriteFile(path, []byte("parameters:\n  L: 1.5\n  nmo: -1\n"), 0o600))

	table, err := Load(path)
	require.NoError(t, err)

	defaults, err := Defaults()
	require.NoError(t, err)
	defaults.Update(table)

	nmo, ok := defaults.Get("nmo")
	require.True(t, ok)
	assert.Equal(t, -1.0, nmo.Value)
	l, ok := defaults.Get("L")
	require.True(t, ok)
	assert.Equal(t, 1.5, l.Value)
	assert.Len(t, defaults.Entries(), 14)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}

func TestStorage(t *testing.T) {
	table, err := Parse([]byte("state: variable\nparameters:\n  nmo: 1\n"))
	require.NoError(t, err)
	defaults, err := Defaults()
	require.NoError(t, err)
	defaults.Update(table)

	st, err := defaults.Storage()
	require.NoError(t, err)
	assert.Len(t, st.OutputsUnder("parameter.constant"), 12)
	free := st.OutputsUnder("parameter.free")
	require.Len(t, free, 1)

	p, ok := st.Nodes["parameter.free.nmo"].(*lib.Parameter)
	require.True(t, ok)
	assert.Equal(t, "nmo", p.Name())
	assert.Same(t, p.Output(), free["nmo"])
}

func TestOutputsConnect(t *testing.T) {
	defaults, err := Defaults()
	require.NoError(t, err)

	// A consumer with two of the table's names as keyword inputs.
	sum := graph.NewNode("sum")
	me := sum.AddScalarInput("ElectronMass")
	mp := sum.AddScalarInput("ProtonMass")
	out := sum.AddOutput("result")
	sum.SetFunctions(func() error {
		out.SetDD(graph.DataDescriptor{DType: tensor.Float64, Shape: tensor.Shape{1}})
		return nil
	}, func() {
		out.Buffer()[0] = me.Value() + mp.Value()
	})

	count, err := graph.ConnectKeywords(defaults.Outputs(), sum.Inputs())
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	require.NoError(t, sum.UpdateTypes())
	data, err := out.Data()
	require.NoError(t, err)
	assert.InDelta(t, 938.272081+0.5109989461, data[0], 1e-9)
}
