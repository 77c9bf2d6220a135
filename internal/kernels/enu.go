package kernels

import "math"

// EeToEnu converts the positron energy into the antineutrino energy:
//
//	Enu = (Ee + δ) / (1 − Ee/mp·(1 − ve·cosθ))
//	δ   = (mn² − mp² − me²)/(2 mp),  ve = sqrt(1 − me²/Ee²)
//
// With useEdep set, ee holds the deposited energy and the electron mass is
// subtracted first. At or below the electron mass the positron is taken at
// rest: Ee = me and ve = 0. A vanishing denominator gives ±Inf.
//
// out, ee and ctheta must have the same length.
func EeToEnu(out, ee, ctheta []float64, m Masses, useEdep bool) {
	me := m.Electron
	me2 := me * me
	delta := m.Delta()

	for i := range out {
		e := ee[i]
		if useEdep {
			e -= me
		}
		var ve float64
		if e > me {
			ve = math.Sqrt(1.0 - me2/(e*e))
		} else {
			e = me
		}
		epsilon := e / m.Proton
		e0 := e + delta
		corr := 1.0 - epsilon*(1.0-ve*ctheta[i])
		out[i] = e0 / corr
	}
}
