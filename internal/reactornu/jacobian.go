package reactornu

import (
	"github.com/nuflow/nuflow/internal/graph"
	"github.com/nuflow/nuflow/internal/kernels"
	"github.com/nuflow/nuflow/internal/typefunc"
)

var jacobianLabels = graph.Labels{
	Text:      "Energy conversion Jacobian dEν/dEdep",
	PlotTitle: `Energy conversion Jacobian $dE_{\nu}/dE_{\rm dep}$`,
	Latex:     `$dE_{\nu}/dE_{\rm dep}$`,
	Axis:      `$dE_{\nu}/dE_{\rm dep}$`,
}

// JacobianDEnuDEe computes dEnu/dEe (or dEnu/dEdep) of the EeToEnu transform.
//
// Inputs: positional "enu", "ee" (or "edep") and "costheta", 2-D arrays of the
// same shape; keyword scalars "ElectronMass" and "ProtonMass". The neutron
// mass enters through "enu".
type JacobianDEnuDEe struct {
	*graph.Node

	enu    *graph.Input
	energy *graph.Input
	ctheta *graph.Input
	result *graph.Output

	me, mp *graph.Input

	mode EnergyMode
}

// NewJacobianDEnuDEe creates the node. It fails on an unknown energy mode.
func NewJacobianDEnuDEe(name string, opts ...Option) (*JacobianDEnuDEe, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	n := &JacobianDEnuDEe{Node: graph.NewNode(name), mode: o.energy}
	n.SetLabels(o.labels, jacobianLabels)
	n.enu = n.AddInput(Enu)
	n.energy = n.AddInput(o.energy.InputName())
	n.ctheta = n.AddInput(CosTheta)
	n.result = n.AddOutput(Result)
	n.me = n.AddScalarInput(ElectronMass)
	n.mp = n.AddScalarInput(ProtonMass)
	n.SetFunctions(n.typeFunc, n.compute)
	return n, nil
}

// EnergyMode returns the energy mode set at construction.
func (n *JacobianDEnuDEe) EnergyMode() EnergyMode {
	return n.mode
}

// Result returns the Jacobian output.
func (n *JacobianDEnuDEe) Result() *graph.Output {
	return n.result
}

func (n *JacobianDEnuDEe) typeFunc() error {
	if err := typefunc.CheckInputDimension(n.Node, 2, n.enu, n.energy, n.ctheta); err != nil {
		return err
	}
	if err := typefunc.CheckInputsEquivalence(n.Node, n.enu, n.energy, n.ctheta); err != nil {
		return err
	}
	if err := typefunc.CopyFromInputToOutput(n.Node, n.energy, typefunc.CopyOptions{}, n.result); err != nil {
		return err
	}
	return typefunc.AssignOutputAxesFromInputs(n.Node, []*graph.Input{n.energy, n.ctheta}, n.result, graph.AxisNodes, false)
}

func (n *JacobianDEnuDEe) compute() {
	kernels.JacobianDEnuDEe(
		n.result.Buffer(),
		n.enu.Values(),
		n.energy.Values(),
		n.ctheta.Values(),
		n.me.Value(),
		n.mp.Value(),
		n.mode.UseEdep(),
	)
}
