package reactornu

import (
	"github.com/nuflow/nuflow/internal/graph"
)

// GroupNames are the member node names of IBDXsecVBO1Group.
type GroupNames struct {
	XSec     string
	Enu      string
	Jacobian string
}

// DefaultGroupNames returns the member names used when none are given.
func DefaultGroupNames() GroupNames {
	return GroupNames{XSec: "ibd", Enu: "enu", Jacobian: "jacobian"}
}

func (g GroupNames) withDefaults() GroupNames {
	d := DefaultGroupNames()
	if g.XSec == "" {
		g.XSec = d.XSec
	}
	if g.Enu == "" {
		g.Enu = d.Enu
	}
	if g.Jacobian == "" {
		g.Jacobian = d.Jacobian
	}
	return g
}

// IBDXsecVBO1Group wires EeToEnu, JacobianDEnuDEe and IBDXsecVBO1 together:
// the antineutrino energy feeds both the Jacobian and the cross-section.
//
// Parent-level inputs: positional "ee" (or "edep") and "costheta", the masses
// shared by the members, and the cross-section constants. Each shared input
// is connected once and reaches every member declaring it.
// Parent-level outputs: "result" (positional, the cross-section), "enu" and
// "jacobian".
type IBDXsecVBO1Group struct {
	*graph.MetaNode

	XSec     *IBDXsecVBO1
	Enu      *EeToEnu
	Jacobian *JacobianDEnuDEe

	mode EnergyMode
}

var commonInputs = []string{ElectronMass, ProtonMass, NeutronMass}

// NewIBDXsecVBO1Group creates the members, wires them and exposes the merged
// ports. Empty member names fall back to DefaultGroupNames.
func NewIBDXsecVBO1Group(names GroupNames, opts ...Option) (*IBDXsecVBO1Group, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	names = names.withDefaults()

	xsec, err := NewIBDXsecVBO1(names.XSec, WithLabels(o.memberLabels["xsec"]))
	if err != nil {
		return nil, err
	}
	enu, err := NewEeToEnu(names.Enu, WithEnergyMode(o.energy), WithLabels(o.memberLabels["enu"]))
	if err != nil {
		return nil, err
	}
	jacobian, err := NewJacobianDEnuDEe(names.Jacobian, WithEnergyMode(o.energy), WithLabels(o.memberLabels["jacobian"]))
	if err != nil {
		return nil, err
	}

	g := &IBDXsecVBO1Group{
		MetaNode: graph.NewMetaNode(names.XSec),
		XSec:     xsec,
		Enu:      enu,
		Jacobian: jacobian,
		mode:     o.energy,
	}

	if err := enu.Result().Connect(jacobian.enu, xsec.enu); err != nil {
		return nil, err
	}

	energy := o.energy.InputName()
	merge := append([]string{energy, CosTheta}, commonInputs...)
	xsecInputs := append([]string{CosTheta}, commonInputs...)
	xsecInputs = append(xsecInputs, NeutronLifeTime, PhaseSpaceFactor, CouplingG, CouplingF, CouplingF2)

	err = g.AddNode(xsec.Node, graph.MemberPorts{
		KwInputs:    xsecInputs,
		MergeInputs: merge,
		OutputsPos:  true,
	})
	if err != nil {
		return nil, err
	}
	err = g.AddNode(enu.Node, graph.MemberPorts{
		KwInputs:    append([]string{energy, CosTheta}, commonInputs...),
		MergeInputs: merge,
		KwOutputs:   map[string]string{Result: Enu},
	})
	if err != nil {
		return nil, err
	}
	err = g.AddNode(jacobian.Node, graph.MemberPorts{
		KwInputs:    []string{energy, CosTheta, ElectronMass, ProtonMass},
		MergeInputs: merge[:len(merge)-1],
		KwOutputs:   map[string]string{Result: "jacobian"},
	})
	if err != nil {
		return nil, err
	}

	if err := g.MakePositionals(energy, CosTheta); err != nil {
		return nil, err
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// EnergyMode returns the energy mode of the EeToEnu and Jacobian members.
func (g *IBDXsecVBO1Group) EnergyMode() EnergyMode {
	return g.mode
}

// Result returns the cross-section output.
func (g *IBDXsecVBO1Group) Result() *graph.Output {
	return g.XSec.Result()
}
