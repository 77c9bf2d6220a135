package kernels

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// PDG values used across the tests.
var pdg = Masses{
	Electron: 0.5109989461,
	Proton:   938.272081,
	Neutron:  939.565413,
}

var ibd = IBDConstants{
	Masses:           pdg,
	NeutronLifeTime:  879.4,
	PhaseSpaceFactor: 1.71465,
	G:                1.2701,
	F:                1.0,
	F2:               3.706,
}

var reference = OscParams{
	SinSq2Theta12: 0.851,
	SinSq2Theta13: 0.0852,
	DeltaMSq21:    7.53e-5,
	DeltaMSq32:    2.453e-3,
	NMO:           1,
}

func enuAt(e, c float64, useEdep bool) float64 {
	out := make([]float64, 1)
	EeToEnu(out, []float64{e}, []float64{c}, pdg, useEdep)
	return out[0]
}

func jacobianAt(e, c float64, useEdep bool) float64 {
	enu := enuAt(e, c, useEdep)
	out := make([]float64, 1)
	JacobianDEnuDEe(out, []float64{enu}, []float64{e}, []float64{c}, pdg.Electron, pdg.Proton, useEdep)
	return out[0]
}

func TestConstants(t *testing.T) {
	assert.InDelta(t, 1.29408422729533, pdg.Delta(), 1e-12)
	assert.InEpsilon(t, 6.582119569e-22, HbarMeVs, 1e-9)
	assert.InEpsilon(t, 197.3269804e-13, HbarCMeVcm, 1e-9)
	assert.InDelta(t, 5067.73071593698, OscProbArgConversion, 1e-9)
}

func TestEeToEnu(t *testing.T) {
	tests := []struct {
		name   string
		e, c   float64
		edep   bool
		expect float64
	}{
		{"forward", 2.0, 1.0, false, 3.29431729624335},
		{"backward", 2.0, -1.0, false, 3.30795251037723},
		{"transverse", 2.0, 0.0, false, 3.30112082337491},
		{"deposited", 2.0 + pdg.Electron, 1.0, true, 3.29431729624335},
		{"at threshold", pdg.Electron, 0.5, false, 1.80606678811008},
		{"below threshold", 0.3, 0.0, false, 1.80606678811008},
		{"deposited below threshold", 0.3, 1.0, true, 1.80606678811008},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expect, enuAt(tt.e, tt.c, tt.edep), 1e-9)
		})
	}
}

func TestEeToEnuAngularOrdering(t *testing.T) {
	for _, e := range []float64{1.0, 2.0, 5.0, 10.0} {
		forward := enuAt(e, 1.0, false)
		backward := enuAt(e, -1.0, false)
		assert.Less(t, forward, backward, "E=%v: backward emission needs more neutrino energy", e)
	}
}

func TestEeToEnuFinitePositive(t *testing.T) {
	for e := pdg.Electron + 1e-6; e < 12.0; e += 0.05 {
		for c := -1.0; c <= 1.0; c += 0.25 {
			enu := enuAt(e, c, false)
			require.False(t, math.IsInf(enu, 0) || math.IsNaN(enu), "E=%v cos=%v", e, c)
			require.Greater(t, enu, 0.0, "E=%v cos=%v", e, c)
		}
	}
}

func TestEeToEnuVanishingDenominator(t *testing.T) {
	// Ee = mp with ve·cosθ = 0 makes corr exactly zero.
	out := make([]float64, 1)
	EeToEnu(out, []float64{pdg.Proton}, []float64{0.0}, pdg, false)
	assert.True(t, math.IsInf(out[0], 1))
}

func TestJacobianZeroRegions(t *testing.T) {
	tests := []struct {
		name string
		e, c float64
		edep bool
	}{
		{"at threshold", pdg.Electron, 0.0, false},
		{"below threshold", 0.2, 1.0, false},
		{"negative energy", -1.0, 0.0, false},
		{"deposited at threshold", 2 * pdg.Electron, -1.0, true},
		{"negative denominator", 2 * pdg.Proton, -1.0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := []float64{math.NaN()}
			JacobianDEnuDEe(out, []float64{3.0}, []float64{tt.e}, []float64{tt.c}, pdg.Electron, pdg.Proton, tt.edep)
			assert.Equal(t, 0.0, out[0])
		})
	}
}

func TestJacobianValues(t *testing.T) {
	assert.InDelta(t, 0.999950210130913, jacobianAt(2.0, 1.0, false), 1e-12)
	assert.InDelta(t, 1.01141244494022, jacobianAt(2.0, -1.0, false), 1e-12)
	assert.InDelta(t, 1.00566194478181, jacobianAt(2.0, 0.0, false), 1e-12)
	assert.InDelta(t, jacobianAt(2.0, 0.3, false), jacobianAt(2.0+pdg.Electron, 0.3, true), 1e-12)
}

func TestJacobianMatchesNumericalDerivative(t *testing.T) {
	const h = 1e-5
	for _, edep := range []bool{false, true} {
		for e := 1.0; e <= 10.0; e += 0.5 {
			for c := -1.0; c <= 1.0; c += 0.5 {
				numeric := (enuAt(e+h, c, edep) - enuAt(e-h, c, edep)) / (2 * h)
				analytic := jacobianAt(e, c, edep)
				if edep && e-pdg.Electron <= pdg.Electron+h {
					continue
				}
				assert.InEpsilon(t, numeric, analytic, 1e-7, "E=%v cos=%v edep=%v", e, c, edep)
			}
		}
	}
}

func TestJacobianChangeOfVariables(t *testing.T) {
	// ∫ J dE over [a, b] must equal Enu(b) − Enu(a): a flat spectrum in Enu
	// maps to dN/dEe = dN/dEnu · J.
	const (
		a = 2.0
		b = 8.0
		n = 2000
	)
	for _, c := range []float64{-1.0, -0.3, 0.0, 0.7, 1.0} {
		step := (b - a) / n
		sum := 0.0
		for i := 0; i <= n; i++ {
			w := 2.0
			switch {
			case i == 0 || i == n:
				w = 1.0
			case i%2 == 1:
				w = 4.0
			}
			sum += w * jacobianAt(a+float64(i)*step, c, false)
		}
		integral := sum * step / 3
		expect := enuAt(b, c, false) - enuAt(a, c, false)
		assert.InDelta(t, expect, integral, 1e-9, "cos=%v", c)
	}
}

func TestNueSurvivalProbability(t *testing.T) {
	e := []float64{2.0, 4.0, 6.0}

	out := make([]float64, len(e))
	NueSurvivalProbability(out, e, 52.5, reference, OscProbArgConversion)
	assert.InDeltaSlice(t, []float64{0.972777601622811, 0.948232711518697, 0.975892208975714}, out, 1e-12)

	inverted := reference
	inverted.NMO = -1
	NueSurvivalProbability(out, e, 52.5, inverted, OscProbArgConversion)
	assert.InDeltaSlice(t, []float64{0.984221912639166, 0.944654131164767, 0.92712208005049}, out, 1e-12)
}

func TestNueSurvivalProbabilityLimits(t *testing.T) {
	e := []float64{1.8, 3.0, 5.5, 10.0}
	out := make([]float64, len(e))

	t.Run("no splitting", func(t *testing.T) {
		p := reference
		p.DeltaMSq21, p.DeltaMSq32 = 0, 0
		NueSurvivalProbability(out, e, 52.5, p, OscProbArgConversion)
		for _, v := range out {
			assert.Equal(t, 1.0, v)
		}
	})

	t.Run("zero baseline", func(t *testing.T) {
		NueSurvivalProbability(out, e, 0, reference, OscProbArgConversion)
		for _, v := range out {
			assert.Equal(t, 1.0, v)
		}
	})

	t.Run("high energy", func(t *testing.T) {
		high := []float64{1e6, 1e9}
		hout := make([]float64, 2)
		NueSurvivalProbability(hout, high, 52.5, reference, OscProbArgConversion)
		assert.InDelta(t, 1.0, hout[0], 1e-6)
		assert.InDelta(t, 1.0, hout[1], 1e-12)
	})

	t.Run("bounded", func(t *testing.T) {
		for E := 1.8; E < 12; E += 0.01 {
			NueSurvivalProbability(out[:1], []float64{E}, 52.5, reference, OscProbArgConversion)
			assert.True(t, out[0] >= 0 && out[0] <= 1, "E=%v P=%v", E, out[0])
		}
	})
}

func TestIBDXsecVBO1(t *testing.T) {
	assert.InEpsilon(t, 1.649049312501201e-44, ibd.Sigma0(), 1e-9)

	enu := []float64{1.8, 4.0, 4.0, 4.0}
	cos := []float64{0.0, 0.0, 1.0, -1.0}
	out := make([]float64, len(enu))
	IBDXsecVBO1(out, enu, cos, ibd)

	assert.Equal(t, 0.0, out[0], "below threshold")
	assert.InEpsilon(t, 3.3696869038389736e-43, out[1], 1e-9)
	assert.InEpsilon(t, 3.1044351937954586e-43, out[2], 1e-9)
	assert.InEpsilon(t, 3.625786897189897e-43, out[3], 1e-9)
}

func TestIBDXsecVBO1Total(t *testing.T) {
	// Integrated over cosθ the first order result stays within a few percent
	// of the zeroth order σ0·(f²+3g²)·Ee·pe.
	const n = 200
	for _, e := range []float64{2.5, 4.0, 6.0, 8.0} {
		cos := make([]float64, n+1)
		enu := make([]float64, n+1)
		for i := range cos {
			cos[i] = -1 + 2*float64(i)/n
			enu[i] = e
		}
		out := make([]float64, n+1)
		IBDXsecVBO1(out, enu, cos, ibd)

		sum := 0.0
		for i, v := range out {
			w := 2.0
			switch {
			case i == 0 || i == n:
				w = 1.0
			case i%2 == 1:
				w = 4.0
			}
			sum += w * v
		}
		total := sum * (2.0 / n) / 3

		ee0 := e - (pdg.Neutron - pdg.Proton)
		zeroth := ibd.Sigma0() * (ibd.F*ibd.F + 3*ibd.G*ibd.G) * ee0 * math.Sqrt(ee0*ee0-pdg.Electron*pdg.Electron)
		assert.InEpsilon(t, zeroth, total, 0.07, "Enu=%v", e)
		assert.Less(t, total, zeroth, "Enu=%v", e)
	}
}
