// Package kernels implements the element-wise numeric kernels of the reactor
// antineutrino analysis.
//
// Kernels operate on parallel flat slices and write into a caller-provided
// output slice. They never allocate and never fail: edge cases (sub-threshold
// energies, non-positive denominators) have defined results, and a vanishing
// denominator where no guard is specified gives ±Inf.
//
// Available kernels:
//   - EeToEnu: positron energy to antineutrino energy, Enu(Ee, cosθ)
//   - JacobianDEnuDEe: dEnu/dEe of the transform above
//   - IBDXsecVBO1: Vogel–Beacom first order IBD cross-section dσ/dcosθ
//   - NueSurvivalProbability: three-flavour ν̄e survival probability
//
// Energies and masses are in MeV, the baseline in km, mass-squared
// splittings in eV², the neutron lifetime in s.
package kernels
