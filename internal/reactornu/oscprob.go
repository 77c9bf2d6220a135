package reactornu

import (
	"github.com/nuflow/nuflow/internal/graph"
	"github.com/nuflow/nuflow/internal/kernels"
	"github.com/nuflow/nuflow/internal/tensor"
	"github.com/nuflow/nuflow/internal/typefunc"
)

// NueSurvivalProbability computes the ν̄e survival probability for an array of
// antineutrino energies.
//
// Inputs:
//   - "E": positional array of energies, MeV
//   - "L": baseline, in the unit selected by WithDistanceUnit
//   - "SinSq2Theta12", "SinSq2Theta13": sin²2θ₁₂ and sin²2θ₁₃
//   - "DeltaMSq21", "DeltaMSq32": Δm²₂₁ and |Δm²₃₂|, eV²
//   - "nmo": mass ordering, +1 normal and −1 inverted
//   - "oscprobArgConversion": optional, converts Δm²[eV²]·L[km]/E[MeV] into
//     the oscillation phase. Defaults to kernels.OscProbArgConversion.
//
// Output "result" has the data type, shape and axes of "E".
type NueSurvivalProbability struct {
	*graph.Node

	e      *graph.Input
	result *graph.Output

	baseline      *graph.Input
	sinSq2Theta12 *graph.Input
	sinSq2Theta13 *graph.Input
	deltaMSq21    *graph.Input
	deltaMSq32    *graph.Input
	nmo           *graph.Input
	conversion    *graph.Input

	baselineScale      float64
	useConversionInput bool
}

// NewNueSurvivalProbability creates the node. It fails on an unknown distance
// unit.
func NewNueSurvivalProbability(name string, opts ...Option) (*NueSurvivalProbability, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	scale, _ := o.unit.Scale()

	n := &NueSurvivalProbability{Node: graph.NewNode(name), baselineScale: scale}
	n.SetLabels(o.labels, graph.Labels{Mark: "P(ee)"})
	n.e, n.result = n.AddPair("E", Result)
	n.baseline = n.AddScalarInput(Baseline)
	n.sinSq2Theta12 = n.AddScalarInput(SinSq2Theta12)
	n.sinSq2Theta13 = n.AddScalarInput(SinSq2Theta13)
	n.deltaMSq21 = n.AddScalarInput(DeltaMSq21)
	n.deltaMSq32 = n.AddScalarInput(DeltaMSq32)
	n.nmo = n.AddScalarInput(MassOrdering)
	n.conversion = n.AddOptionalScalarInput(OscProbArgConversion, kernels.OscProbArgConversion)
	n.SetFunctions(n.typeFunc, n.compute)
	return n, nil
}

// Result returns the probability output.
func (n *NueSurvivalProbability) Result() *graph.Output {
	return n.result
}

// BaselineScale returns the factor converting the baseline input to km.
func (n *NueSurvivalProbability) BaselineScale() float64 {
	return n.baselineScale
}

func (n *NueSurvivalProbability) typeFunc() error {
	err := typefunc.CheckInputShape(n.Node, tensor.Shape{1},
		n.baseline, n.sinSq2Theta12, n.sinSq2Theta13, n.deltaMSq21, n.deltaMSq32, n.nmo, n.conversion)
	if err != nil {
		return err
	}
	if err := typefunc.CopyFromInputToOutput(n.Node, n.e, typefunc.CopyAll, n.result); err != nil {
		return err
	}
	if n.e.DD().Dim() == 1 {
		if err := typefunc.AssignOutputAxesFromInputs(n.Node, []*graph.Input{n.e}, n.result, graph.AxisNodes, true); err != nil {
			return err
		}
	}
	n.useConversionInput = n.conversion.Connected()
	return nil
}

func (n *NueSurvivalProbability) compute() {
	conversion := kernels.OscProbArgConversion
	if n.useConversionInput {
		conversion = n.conversion.Value()
	}
	kernels.NueSurvivalProbability(
		n.result.Buffer(),
		n.e.Values(),
		n.baseline.Value()*n.baselineScale,
		kernels.OscParams{
			SinSq2Theta12: n.sinSq2Theta12.Value(),
			SinSq2Theta13: n.sinSq2Theta13.Value(),
			DeltaMSq21:    n.deltaMSq21.Value(),
			DeltaMSq32:    n.deltaMSq32.Value(),
			NMO:           n.nmo.Value(),
		},
		conversion,
	)
}
