package kernels

import "math"

// IBDConstants are the inputs of the IBD cross-section besides the
// kinematics.
type IBDConstants struct {
	Masses
	NeutronLifeTime  float64 // τn, s
	PhaseSpaceFactor float64 // fR
	G                float64 // axial-vector coupling g
	F                float64 // vector coupling f
	F2               float64 // anomalous nucleon isovector magnetic moment f₂
}

// Sigma0 returns the cross-section normalization derived from the neutron
// lifetime, cm²/MeV²:
//
//	σ0 = 2π²·ħ·(ħc)² / ((f² + 3g²)·me⁵·τn·fR)
func (c IBDConstants) Sigma0() float64 {
	me5 := math.Pow(c.Electron, 5)
	f2g2 := c.F*c.F + 3*c.G*c.G
	return 2 * math.Pi * math.Pi * HbarMeVs * HbarCMeVcm * HbarCMeVcm /
		(f2g2 * me5 * c.NeutronLifeTime * c.PhaseSpaceFactor)
}

// IBDXsecVBO1 computes the inverse beta decay differential cross-section
// dσ/dcosθ in cm² at first order in 1/M (Vogel & Beacom, 1999):
//
//	dσ/dcosθ = σ0/2·[(f²+3g²) + (f²−g²)·ve1·cosθ]·Ee1·pe1 − σ0/2·Γ·Ee0·pe0/mp
//
// with Δ = mn − mp, y² = (Δ² − me²)/2, the zeroth order positron energy
// Ee0 = Enu − Δ and the first order one
// Ee1 = Ee0·(1 − Enu/mp·(1 − ve0·cosθ)) − y²/mp.
// The result is 0 when either positron energy is at or below me.
//
// out, enu and ctheta must have the same length.
func IBDXsecVBO1(out, enu, ctheta []float64, c IBDConstants) {
	me := c.Electron
	me2 := me * me
	mp := c.Proton
	deltaNP := c.Neutron - c.Proton
	y2 := 0.5 * (deltaNP*deltaNP - me2)

	f, g, f2 := c.F, c.G, c.F2
	ff, gg := f*f, g*g
	fPlus3g := ff + 3*gg
	fMinusG := ff - gg
	fPlusG := ff + gg
	halfSigma0 := 0.5 * c.Sigma0()

	for i := range out {
		e := enu[i]
		cos := ctheta[i]

		ee0 := e - deltaNP
		if ee0 <= me {
			out[i] = 0.0
			continue
		}
		pe0 := math.Sqrt(ee0*ee0 - me2)
		ve0 := pe0 / ee0

		ee1 := ee0*(1.0-e/mp*(1.0-ve0*cos)) - y2/mp
		if ee1 <= me {
			out[i] = 0.0
			continue
		}
		pe1 := math.Sqrt(ee1*ee1 - me2)
		ve1 := pe1 / ee1

		sigma1a := halfSigma0 * (fPlus3g + fMinusG*ve1*cos) * ee1 * pe1

		recoil := (ee0+deltaNP)*(1.0-cos/ve0) - deltaNP
		gamma := 2.0*g*(f+f2)*((2.0*ee0+deltaNP)*(1.0-ve0*cos)-me2/ee0) +
			fPlusG*(deltaNP*(1.0+ve0*cos)+me2/ee0) +
			fPlus3g*recoil +
			fMinusG*recoil*ve0*cos
		sigma1b := -halfSigma0 * gamma * ee0 * pe0 / mp

		out[i] = sigma1a + sigma1b
	}
}
