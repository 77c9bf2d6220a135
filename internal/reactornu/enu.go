package reactornu

import (
	"github.com/nuflow/nuflow/internal/graph"
	"github.com/nuflow/nuflow/internal/kernels"
	"github.com/nuflow/nuflow/internal/typefunc"
)

var enuLabels = graph.Labels{
	Text:      "Neutrino energy Eν, MeV",
	PlotTitle: `Neutrino energy $E_{\nu}$, MeV`,
	Latex:     `$E_{\nu}$, MeV`,
	Axis:      `$E_{\nu}$, MeV`,
}

// EeToEnu converts the positron energy and the positron scattering angle into
// the antineutrino energy, Enu(Ee, cosθ).
//
// Inputs: positional "ee" (or "edep") and "costheta", 2-D arrays of the same
// shape; keyword scalars "ElectronMass", "ProtonMass", "NeutronMass".
// Output: "result", with the energy input's shape and node axes taken from
// the two positional inputs.
type EeToEnu struct {
	*graph.Node

	energy *graph.Input
	ctheta *graph.Input
	result *graph.Output

	me, mp, mn *graph.Input

	mode EnergyMode
}

// NewEeToEnu creates the node. It fails on an unknown energy mode.
func NewEeToEnu(name string, opts ...Option) (*EeToEnu, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	n := &EeToEnu{Node: graph.NewNode(name), mode: o.energy}
	n.SetLabels(o.labels, enuLabels)
	n.energy = n.AddInput(o.energy.InputName())
	n.ctheta = n.AddInput(CosTheta)
	n.result = n.AddOutput(Result)
	n.me = n.AddScalarInput(ElectronMass)
	n.mp = n.AddScalarInput(ProtonMass)
	n.mn = n.AddScalarInput(NeutronMass)
	n.SetFunctions(n.typeFunc, n.compute)
	return n, nil
}

// EnergyMode returns the energy mode set at construction.
func (n *EeToEnu) EnergyMode() EnergyMode {
	return n.mode
}

// Result returns the antineutrino energy output.
func (n *EeToEnu) Result() *graph.Output {
	return n.result
}

func (n *EeToEnu) typeFunc() error {
	if err := typefunc.CheckInputDimension(n.Node, 2, n.energy, n.ctheta); err != nil {
		return err
	}
	if err := typefunc.CheckInputsEquivalence(n.Node, n.energy, n.ctheta); err != nil {
		return err
	}
	if err := typefunc.CopyFromInputToOutput(n.Node, n.energy, typefunc.CopyOptions{}, n.result); err != nil {
		return err
	}
	return typefunc.AssignOutputAxesFromInputs(n.Node, []*graph.Input{n.energy, n.ctheta}, n.result, graph.AxisNodes, false)
}

func (n *EeToEnu) compute() {
	kernels.EeToEnu(
		n.result.Buffer(),
		n.energy.Values(),
		n.ctheta.Values(),
		kernels.Masses{Electron: n.me.Value(), Proton: n.mp.Value(), Neutron: n.mn.Value()},
		n.mode.UseEdep(),
	)
}
