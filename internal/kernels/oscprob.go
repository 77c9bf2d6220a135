package kernels

import "math"

// OscParams are the oscillation parameters of the ν̄e survival probability.
type OscParams struct {
	SinSq2Theta12 float64 // sin²2θ₁₂
	SinSq2Theta13 float64 // sin²2θ₁₃
	DeltaMSq21    float64 // Δm²₂₁, eV²
	DeltaMSq32    float64 // |Δm²₃₂|, eV²
	NMO           float64 // mass ordering: +1 normal, −1 inverted
}

// NueSurvivalProbability computes the three-flavour survival probability
//
//	P = 1 − sin²2θ₁₃·(sin²θ₁₂·sin²(Δm²₃₂·Δ) + cos²θ₁₂·sin²(Δm²₃₁·Δ))
//	      − sin²2θ₁₂·cos⁴θ₁₃·sin²(Δm²₂₁·Δ)
//
// with Δ = conversion·L/(4E), Δm²₃₂ = nmo·|Δm²₃₂| and
// Δm²₃₁ = nmo·|Δm²₃₂| + Δm²₂₁. The baseline is in the unit the conversion
// expects (km for OscProbArgConversion).
//
// out and e must have the same length.
func NueSurvivalProbability(out, e []float64, baseline float64, p OscParams, conversion float64) {
	dm32 := p.NMO * p.DeltaMSq32
	dm31 := p.NMO*p.DeltaMSq32 + p.DeltaMSq21
	sinSqTheta12 := 0.5 * (1 - math.Sqrt(1-p.SinSq2Theta12))
	cosSqTheta12 := 1.0 - sinSqTheta12
	halfTheta13 := 0.5 * (1 - math.Sqrt(1-p.SinSq2Theta13))
	cosQuTheta13 := halfTheta13 * halfTheta13

	common := conversion * baseline / 4.0
	for i := range out {
		l4e := common / e[i]
		out[i] = 1 -
			p.SinSq2Theta13*(sinSqTheta12*sinSq(dm32*l4e)+cosSqTheta12*sinSq(dm31*l4e)) -
			p.SinSq2Theta12*cosQuTheta13*sinSq(p.DeltaMSq21*l4e)
	}
}

func sinSq(x float64) float64 {
	s := math.Sin(x)
	return s * s
}
