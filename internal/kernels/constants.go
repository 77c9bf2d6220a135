package kernels

import "math"

// Exact SI constants.
const (
	planckConstant   = 6.62607015e-34  // J·s
	elementaryCharge = 1.602176634e-19 // C
	speedOfLight     = 299792458.0     // m/s
)

const (
	// HbarMeVs is the reduced Planck constant, MeV·s.
	HbarMeVs = planckConstant / (2 * math.Pi) / elementaryCharge * 1e-6

	// HbarCMeVcm is ħc, MeV·cm.
	HbarCMeVcm = HbarMeVs * speedOfLight * 1e2

	// ElectronVoltInverseMeter is the electron volt-inverse meter
	// relationship (CODATA 2018), m⁻¹.
	ElectronVoltInverseMeter = 806554.3937

	// OscProbArgConversion turns Δm²[eV²]·L[km]/E[MeV] into the oscillation
	// phase. It is the default of the oscillation probability conversion
	// input.
	OscProbArgConversion = 2 * math.Pi * 1e-3 * ElectronVoltInverseMeter
)

// Masses are the particle masses used by the IBD kinematics, MeV.
type Masses struct {
	Electron float64
	Proton   float64
	Neutron  float64
}

// Delta returns (mn² − mp² − me²)/(2 mp), the threshold shift of the
// antineutrino energy with respect to the positron energy.
func (m Masses) Delta() float64 {
	me2 := m.Electron * m.Electron
	mp2 := m.Proton * m.Proton
	mn2 := m.Neutron * m.Neutron
	return 0.5 * (mn2 - mp2 - me2) / m.Proton
}
