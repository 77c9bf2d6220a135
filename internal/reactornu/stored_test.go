package reactornu

import (
	"testing"

	"github.com/nuflow/nuflow/internal/graph"
	"github.com/nuflow/nuflow/internal/lib"
	"github.com/nuflow/nuflow/internal/storage"
	"github.com/nuflow/nuflow/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplicateNueSurvivalProbability(t *testing.T) {
	st, err := ReplicateNueSurvivalProbability("oscprob", []string{"DB1", "DB2"}, WithDistanceUnit(Meter))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"inputs.oscprob.L.DB1",
		"inputs.oscprob.L.DB2",
		"inputs.oscprob.enu.DB1",
		"inputs.oscprob.enu.DB2",
		"nodes.oscprob.DB1",
		"nodes.oscprob.DB2",
		"outputs.oscprob.DB1",
		"outputs.oscprob.DB2",
	}, st.Keys())

	node, ok := st.Nodes["oscprob.DB2"].(*NueSurvivalProbability)
	require.True(t, ok)
	assert.Equal(t, "oscprob.DB2", node.Name())
	assert.Equal(t, 1.0e-3, node.BaselineScale())

	// Wire the replicas from the storage: a common energy array and a
	// baseline per detector.
	e, err := lib.NewArrayFromSlice("enu", []float64{2, 4, 6}, tensor.Shape{3})
	require.NoError(t, err)
	params := outputsOf(newParameters())
	for det, baseline := range map[string]float64{"DB1": 52500, "DB2": 0} {
		require.NoError(t, st.Inputs[storage.Key("oscprob.enu", det)].ConnectFrom(e.Output()))
		l := lib.NewParameter(Baseline, baseline, graph.Labels{})
		require.NoError(t, st.Inputs[storage.Key("oscprob.L", det)].ConnectFrom(l.Output()))
		_, err := graph.ConnectKeywords(params, st.Nodes[storage.Key("oscprob", det)].(*NueSurvivalProbability).Inputs())
		require.NoError(t, err)
	}

	g := graph.New("oscprob")
	for _, n := range st.Nodes {
		g.Add(n)
	}
	require.NoError(t, g.Close())

	far, err := st.Outputs["oscprob.DB1"].Data()
	require.NoError(t, err)
	assert.InDelta(t, 0.972777601622811, far[0], 1e-9)

	near, err := st.Outputs["oscprob.DB2"].Data()
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 1}, near)
}

func TestReplicateNueSurvivalProbability_Single(t *testing.T) {
	st, err := ReplicateNueSurvivalProbability("oscprob", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"inputs.oscprob.L", "inputs.oscprob.enu", "nodes.oscprob", "outputs.oscprob"}, st.Keys())

	_, err = ReplicateNueSurvivalProbability("oscprob", []string{"a", "a"})
	require.ErrorIs(t, err, storage.ErrDuplicateKey)
}

func TestNewStoredIBDGroup(t *testing.T) {
	g, st, err := NewStoredIBDGroup(GroupNames{}, WithEnergyMode(EnergyEdep))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"inputs.ibd.crosssection.costheta",
		"inputs.ibd.crosssection.edep",
		"nodes.ibd.crosssection",
		"outputs.ibd.crosssection",
		"outputs.ibd.enu",
		"outputs.ibd.jacobian",
	}, st.Keys())
	assert.Same(t, g.Enu.Result(), st.Outputs["ibd.enu"])
	assert.Same(t, g.Jacobian.Result(), st.Outputs["ibd.jacobian"])
	assert.Same(t, g.XSec.Result(), st.Outputs["ibd.crosssection"])

	all := storage.New()
	require.NoError(t, all.Merge(st, true))
	require.ErrorIs(t, all.Merge(st, true), storage.ErrDuplicateKey)
}

func TestNewStoredIBDGroupUnknownOutput(t *testing.T) {
	g, err := NewIBDXsecVBO1Group(GroupNames{})
	require.NoError(t, err)

	st := storage.New()
	err = addGroupOutputs(st, g, map[string]string{"ibd.flux": "flux"})
	var werr *graph.WiringError
	require.ErrorAs(t, err, &werr)
	assert.Equal(t, "flux", werr.Port)
	assert.ErrorIs(t, err, graph.ErrWiring)
	assert.Empty(t, st.Outputs)
}
