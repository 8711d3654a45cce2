// Copyright (C) 2026, Benjamin Drung <bdrung@posteo.de>
// SPDX-License-Identifier: ISC

package psychro

// Limits is the validity range of a formulation. Evaluations outside it
// still return a value but raise ErrTemperatureRange or ErrPressureRange.
type Limits struct {
	Tmin, Tmax float64 // K
	Pmin, Pmax float64 // Pa
}

// CheckT returns ErrTemperatureRange if T is outside [Tmin, Tmax].
func (l Limits) CheckT(T float64) ErrorCode {
	if T < l.Tmin || T > l.Tmax {
		return ErrTemperatureRange
	}
	return OK
}

// CheckP returns ErrPressureRange if P is outside [Pmin, Pmax].
func (l Limits) CheckP(P float64) ErrorCode {
	if P < l.Pmin || P > l.Pmax {
		return ErrPressureRange
	}
	return OK
}

// SolverSettings tunes the wet-bulb Newton iteration of a formulation.
type SolverSettings struct {
	WetBulbStep    float64 // forward difference step in K
	WetBulbMaxIter int
}

// Formulation supplies the correlations that differ between moist air
// models. Model implements the composition resolver and every solver on top
// of it.
//
// Temperatures are in K, pressures in Pa, enthalpies in J/kg.
type Formulation interface {
	Name() string
	Limits() Limits
	Solver() SolverSettings

	// Pws is the saturation vapor pressure over ice or liquid water.
	Pws(T float64) float64
	// DPws is dPws/dT.
	DPws(T float64) float64
	// TwsGuess is a closed-form approximation of the inverse of Pws.
	TwsGuess(P float64) float64

	// Z is the compressibility factor of moist air with vapor mole
	// fraction xv.
	Z(T, P, xv float64, d *Diagnostics) float64
	// EFactor is the enhancement factor of saturated moist air.
	EFactor(T, P float64) float64

	// Enthalpy of moist air per kg of mixture.
	Enthalpy(T, P, xv float64, d *Diagnostics) float64
	// DryAirEnthalpy per kg of dry air.
	DryAirEnthalpy(T, P float64, d *Diagnostics) float64
	// VaporEnthalpy of saturated water vapor per kg.
	VaporEnthalpy(T float64, d *Diagnostics) float64
	// CondensedEnthalpy of saturated ice (T < 273.15 K) or liquid water per kg.
	CondensedEnthalpy(T float64) float64
}

// ByName returns the formulation called name: "ideal", "ashrae" or
// "giacomo".
func ByName(name string) (Formulation, bool) {
	switch name {
	case IdealGas{}.Name():
		return IdealGas{}, true
	case RealGas{}.Name():
		return RealGas{}, true
	case Giacomo{}.Name():
		return Giacomo{}, true
	}
	return nil, false
}

// Names lists the names accepted by ByName.
func Names() []string {
	return []string{IdealGas{}.Name(), RealGas{}.Name(), Giacomo{}.Name()}
}
