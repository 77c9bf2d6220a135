package reactornu

import (
	"github.com/nuflow/nuflow/internal/graph"
	"github.com/nuflow/nuflow/internal/kernels"
	"github.com/nuflow/nuflow/internal/typefunc"
)

var xsecLabels = graph.Labels{
	Text:      "IBD cross section dσ/dcosθ, cm²",
	PlotTitle: `IBD cross section $d\sigma/d\cos\theta$, cm$^2$`,
	Latex:     `$d\sigma/d\cos\theta$, cm$^2$`,
	Axis:      `$d\sigma/d\cos\theta$, cm$^2$`,
}

// IBDXsecVBO1 computes the inverse beta decay cross-section dσ/dcosθ at first
// order in 1/M (Vogel & Beacom, 1999).
//
// Inputs: positional "enu" and "costheta", 2-D arrays of the same shape;
// keyword scalars "ElectronMass", "ProtonMass", "NeutronMass",
// "NeutronLifeTime", "PhaseSpaceFactor", "g", "f" and "f2".
type IBDXsecVBO1 struct {
	*graph.Node

	enu    *graph.Input
	ctheta *graph.Input
	result *graph.Output

	me, mp, mn *graph.Input
	lifetime   *graph.Input
	phaseSpace *graph.Input
	g, f, f2   *graph.Input
}

// NewIBDXsecVBO1 creates the node.
func NewIBDXsecVBO1(name string, opts ...Option) (*IBDXsecVBO1, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	n := &IBDXsecVBO1{Node: graph.NewNode(name)}
	n.SetLabels(o.labels, xsecLabels)
	n.enu = n.AddInput(Enu)
	n.ctheta = n.AddInput(CosTheta)
	n.result = n.AddOutput(Result)
	n.me = n.AddScalarInput(ElectronMass)
	n.mp = n.AddScalarInput(ProtonMass)
	n.mn = n.AddScalarInput(NeutronMass)
	n.lifetime = n.AddScalarInput(NeutronLifeTime)
	n.phaseSpace = n.AddScalarInput(PhaseSpaceFactor)
	n.g = n.AddScalarInput(CouplingG)
	n.f = n.AddScalarInput(CouplingF)
	n.f2 = n.AddScalarInput(CouplingF2)
	n.SetFunctions(n.typeFunc, n.compute)
	return n, nil
}

// Result returns the cross-section output.
func (n *IBDXsecVBO1) Result() *graph.Output {
	return n.result
}

func (n *IBDXsecVBO1) typeFunc() error {
	if err := typefunc.CheckInputDimension(n.Node, 2, n.enu, n.ctheta); err != nil {
		return err
	}
	if err := typefunc.CheckInputsEquivalence(n.Node, n.enu, n.ctheta); err != nil {
		return err
	}
	return typefunc.CopyFromInputToOutput(n.Node, n.enu, typefunc.CopyAll, n.result)
}

func (n *IBDXsecVBO1) compute() {
	kernels.IBDXsecVBO1(n.result.Buffer(), n.enu.Values(), n.ctheta.Values(), kernels.IBDConstants{
		Masses:           kernels.Masses{Electron: n.me.Value(), Proton: n.mp.Value(), Neutron: n.mn.Value()},
		NeutronLifeTime:  n.lifetime.Value(),
		PhaseSpaceFactor: n.phaseSpace.Value(),
		G:                n.g.Value(),
		F:                n.f.Value(),
		F2:               n.f2.Value(),
	})
}
