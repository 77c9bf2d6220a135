// Copyright 2025 The nuflow Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package reactornu provides the public API of the reactor antineutrino
// inverse beta decay nodes:
//   - EeToEnu: antineutrino energy from the positron energy and angle
//   - JacobianDEnuDEe: Jacobian of that conversion
//   - IBDXsecVBO1: IBD cross-section at first order in 1/M
//   - IBDXsecVBO1Group: the three nodes above wired together, with the
//     shared masses merged into single inputs
//   - NueSurvivalProbability: three-flavour ν̄e survival probability
//
// Example:
//
//	ibd, err := reactornu.NewIBDXsecVBO1Group(reactornu.GroupNames{}, reactornu.WithEnergyMode(reactornu.EnergyEdep))
//	if err != nil {
//	    return err
//	}
//	_ = graph.ConnectPositional(ibd.Inputs(), edep.Output(), costheta.Output())
//	_, _ = graph.ConnectKeywords(parameters, ibd.Inputs())
package reactornu

import (
	"github.com/nuflow/nuflow/internal/graph"
	"github.com/nuflow/nuflow/internal/kernels"
	"github.com/nuflow/nuflow/internal/reactornu"
	"github.com/nuflow/nuflow/internal/storage"
)

// Node types.
type (
	EeToEnu                = reactornu.EeToEnu
	JacobianDEnuDEe        = reactornu.JacobianDEnuDEe
	IBDXsecVBO1            = reactornu.IBDXsecVBO1
	IBDXsecVBO1Group       = reactornu.IBDXsecVBO1Group
	NueSurvivalProbability = reactornu.NueSurvivalProbability
	GroupNames             = reactornu.GroupNames
)

// Configuration.
type (
	// Option configures a node at construction.
	Option = reactornu.Option

	// EnergyMode selects the positron energy or the deposited energy input.
	EnergyMode = reactornu.EnergyMode

	// DistanceUnit is the unit of the baseline input.
	DistanceUnit = reactornu.DistanceUnit

	// Storage keeps nodes and ports under dotted keys.
	Storage = storage.Storage
)

// Energy modes and distance units.
const (
	EnergyEe   = reactornu.EnergyEe
	EnergyEdep = reactornu.EnergyEdep
	Kilometer  = reactornu.Kilometer
	Meter      = reactornu.Meter
)

// Input names.
const (
	ElectronMass         = reactornu.ElectronMass
	ProtonMass           = reactornu.ProtonMass
	NeutronMass          = reactornu.NeutronMass
	NeutronLifeTime      = reactornu.NeutronLifeTime
	PhaseSpaceFactor     = reactornu.PhaseSpaceFactor
	CouplingG            = reactornu.CouplingG
	CouplingF            = reactornu.CouplingF
	CouplingF2           = reactornu.CouplingF2
	Baseline             = reactornu.Baseline
	SinSq2Theta12        = reactornu.SinSq2Theta12
	SinSq2Theta13        = reactornu.SinSq2Theta13
	DeltaMSq21           = reactornu.DeltaMSq21
	DeltaMSq32           = reactornu.DeltaMSq32
	MassOrdering         = reactornu.MassOrdering
	OscProbArgConversion = reactornu.OscProbArgConversion
	CosTheta             = reactornu.CosTheta
)

// DefaultOscProbArgConversion is used when the oscprobArgConversion input is
// left unconnected: 2π·10⁻³ times the electron volt-inverse meter
// relationship.
const DefaultOscProbArgConversion = kernels.OscProbArgConversion

// WithEnergyMode selects the energy input. The default is EnergyEe.
func WithEnergyMode(m EnergyMode) Option {
	return reactornu.WithEnergyMode(m)
}

// WithDistanceUnit selects the baseline unit. The default is Kilometer.
func WithDistanceUnit(u DistanceUnit) Option {
	return reactornu.WithDistanceUnit(u)
}

// WithLabels overrides the default labels of a node.
func WithLabels(l graph.Labels) Option {
	return reactornu.WithLabels(l)
}

// WithMemberLabels overrides the labels of the IBDXsecVBO1Group members,
// keyed by "xsec", "enu" and "jacobian".
func WithMemberLabels(labels map[string]graph.Labels) Option {
	return reactornu.WithMemberLabels(labels)
}

// ParseEnergyMode validates an energy mode name.
func ParseEnergyMode(s string) (EnergyMode, error) {
	return reactornu.ParseEnergyMode(s)
}

// NewEeToEnu creates the energy conversion node.
func NewEeToEnu(name string, opts ...Option) (*EeToEnu, error) {
	return reactornu.NewEeToEnu(name, opts...)
}

// NewJacobianDEnuDEe creates the Jacobian node.
func NewJacobianDEnuDEe(name string, opts ...Option) (*JacobianDEnuDEe, error) {
	return reactornu.NewJacobianDEnuDEe(name, opts...)
}

// NewIBDXsecVBO1 creates the cross-section node.
func NewIBDXsecVBO1(name string, opts ...Option) (*IBDXsecVBO1, error) {
	return reactornu.NewIBDXsecVBO1(name, opts...)
}

// NewIBDXsecVBO1Group creates the wired group of the three IBD nodes.
func NewIBDXsecVBO1Group(names GroupNames, opts ...Option) (*IBDXsecVBO1Group, error) {
	return reactornu.NewIBDXsecVBO1Group(names, opts...)
}

// NewNueSurvivalProbability creates the survival probability node.
func NewNueSurvivalProbability(name string, opts ...Option) (*NueSurvivalProbability, error) {
	return reactornu.NewNueSurvivalProbability(name, opts...)
}

// ReplicateNueSurvivalProbability creates one survival probability node per
// key and registers their ports in a storage.
func ReplicateNueSurvivalProbability(name string, keys []string, opts ...Option) (*Storage, error) {
	return reactornu.ReplicateNueSurvivalProbability(name, keys, opts...)
}

// NewStoredIBDGroup creates the IBD group and registers its ports in a
// storage.
func NewStoredIBDGroup(names GroupNames, opts ...Option) (*IBDXsecVBO1Group, *Storage, error) {
	return reactornu.NewStoredIBDGroup(names, opts...)
}
