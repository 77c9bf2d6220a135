// Package reactornu provides the computation graph nodes of the reactor
// antineutrino inverse beta decay analysis: the positron to antineutrino
// energy conversion, its Jacobian, the IBD cross-section, the ν̄e survival
// probability, and the composite node wiring the first three together.
package reactornu

import (
	"fmt"

	"github.com/nuflow/nuflow/internal/graph"
)

// Names of the parameter inputs.
const (
	ElectronMass     = "ElectronMass"
	ProtonMass       = "ProtonMass"
	NeutronMass      = "NeutronMass"
	NeutronLifeTime  = "NeutronLifeTime"
	PhaseSpaceFactor = "PhaseSpaceFactor"
	CouplingG        = "g"
	CouplingF        = "f"
	CouplingF2       = "f2"

	Baseline             = "L"
	SinSq2Theta12        = "SinSq2Theta12"
	SinSq2Theta13        = "SinSq2Theta13"
	DeltaMSq21           = "DeltaMSq21"
	DeltaMSq32           = "DeltaMSq32"
	MassOrdering         = "nmo"
	OscProbArgConversion = "oscprobArgConversion"

	CosTheta = "costheta"
	Enu      = "enu"
	Result   = "result"
)

// EnergyMode tells whether the energy input is the positron energy or the
// deposited energy (positron energy plus the annihilation electron mass).
type EnergyMode string

// Energy modes. The value is also the name of the energy input.
const (
	EnergyEe   EnergyMode = "ee"
	EnergyEdep EnergyMode = "edep"
)

// ParseEnergyMode validates an energy mode name.
func ParseEnergyMode(s string) (EnergyMode, error) {
	switch m := EnergyMode(s); m {
	case EnergyEe, EnergyEdep:
		return m, nil
	default:
		return "", fmt.Errorf("%w: unknown input energy %q (want ee or edep)", graph.ErrConfig, s)
	}
}

// InputName returns the name of the energy input.
func (m EnergyMode) InputName() string {
	return string(m)
}

// UseEdep reports whether the input is the deposited energy.
func (m EnergyMode) UseEdep() bool {
	return m == EnergyEdep
}

// DistanceUnit is the unit of the baseline input.
type DistanceUnit string

// Distance units.
const (
	Kilometer DistanceUnit = "km"
	Meter     DistanceUnit = "m"
)

// Scale returns the factor converting the unit to kilometres.
func (u DistanceUnit) Scale() (float64, error) {
	switch u {
	case Kilometer:
		return 1, nil
	case Meter:
		return 1.0e-3, nil
	default:
		return 0, fmt.Errorf("%w: invalid distance unit %q", graph.ErrConfig, string(u))
	}
}

// Option configures a node at construction.
type Option func(*options)

type options struct {
	energy       EnergyMode
	unit         DistanceUnit
	labels       graph.Labels
	memberLabels map[string]graph.Labels
}

// WithEnergyMode selects the energy input of EeToEnu, JacobianDEnuDEe and
// IBDXsecVBO1Group. The default is EnergyEe.
func WithEnergyMode(m EnergyMode) Option {
	return func(o *options) {
		o.energy = m
	}
}

// WithDistanceUnit selects the baseline unit of NueSurvivalProbability.
// The default is Kilometer.
func WithDistanceUnit(u DistanceUnit) Option {
	return func(o *options) {
		o.unit = u
	}
}

// WithLabels overrides the default labels of a node.
func WithLabels(l graph.Labels) Option {
	return func(o *options) {
		o.labels = l
	}
}

// WithMemberLabels overrides the labels of the members of
// IBDXsecVBO1Group. Keys are "xsec", "enu" and "jacobian".
func WithMemberLabels(labels map[string]graph.Labels) Option {
	return func(o *options) {
		o.memberLabels = labels
	}
}

func buildOptions(opts []Option) (options, error) {
	o := options{energy: EnergyEe, unit: Kilometer}
	for _, opt := range opts {
		opt(&o)
	}
	if _, err := ParseEnergyMode(string(o.energy)); err != nil {
		return o, err
	}
	if _, err := o.unit.Scale(); err != nil {
		return o, err
	}
	return o, nil
}
