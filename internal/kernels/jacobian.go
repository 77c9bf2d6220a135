package kernels

import "math"

// JacobianDEnuDEe computes dEnu/dEe for the transform of EeToEnu:
//
//	J = (mp + Enu·(1 − cosθ/ve)) / (mp − Ee·(1 − ve·cosθ))
//
// The formula is the exact derivative of EeToEnu; the neutron mass enters
// only through enu, so enu must come from EeToEnu with the same masses.
//
// The result is exactly 0 when Ee ≤ me, when 1 − me²/Ee² ≤ 0, or when the
// denominator is not positive. With useEdep set, ee holds the deposited
// energy and dEnu/dEdep is returned, which is the same derivative.
//
// out, enu, ee and ctheta must have the same length.
func JacobianDEnuDEe(out, enu, ee, ctheta []float64, electronMass, protonMass float64, useEdep bool) {
	me := electronMass
	me2 := me * me

	for i := range out {
		e := ee[i]
		if useEdep {
			e -= me
		}
		if e <= me {
			out[i] = 0.0
			continue
		}
		ve2 := 1.0 - me2/(e*e)
		if ve2 <= 0 {
			out[i] = 0.0
			continue
		}
		ve := math.Sqrt(ve2)
		c := ctheta[i]
		numerator := protonMass + enu[i]*(1.0-c/ve)
		denominator := protonMass - e*(1.0-ve*c)
		if denominator <= 0 {
			out[i] = 0.0
			continue
		}
		out[i] = numerator / denominator
	}
}
