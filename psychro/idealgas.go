// Copyright (C) 2026, Benjamin Drung <bdrung@posteo.de>
// SPDX-License-Identifier: ISC

package psychro

import "math"

// IdealGas treats moist air as a mixture of ideal gases with constant
// specific heats: Z and the enhancement factor are 1. The vapor pressure
// curve is the banded fit from ASHRAE, Psychrometrics: Theory and Practice
// (1996), table 15, extended to 647.15 K. The pressure limit of 10 MPa is
// arbitrary.
type IdealGas struct{}

func (IdealGas) Name() string { return "ideal" }

func (IdealGas) Limits() Limits {
	return Limits{Tmin: 213.15, Tmax: 647.15, Pmin: 0.0, Pmax: 10e6}
}

func (IdealGas) Solver() SolverSettings {
	return SolverSettings{WetBulbStep: 1e-4, WetBulbMaxIter: 100}
}

// ln(Pws/kPa) = A·T² + B·T + C + D/T, valid below upper.
var idealPwsBands = []struct {
	upper      float64
	A, B, C, D float64
}{
	{273.15, -0.7297593707e-5, 0.5397420727e-2, 0.2069880620e2, -0.604227518e4},
	{322.15, 0.1255001965e-4, -0.1923595289e-1, 0.2705101899e2, -0.6344011577e4},
	{373.15, 0.1246732157e-4, -0.1915465806e-1, 0.2702388315e2, -0.6340941639e4},
	{423.15, 0.1204507646e-4, -0.1866650553e-1, 0.2683629403e2, -0.6316972063e4},
	{473.15, 0.1069730183e-4, -0.1698965754e-1, 0.2614073298e2, -0.622078230e4},
	{math.Inf(1), 1.20064e-5, -0.0193912, 27.539, -6483.51},
}

// T = E·β⁴ + F·β³ + G·β² + H·β + K with β = ln(P/Pa), valid below upper
// (table 16, with the printing errors of the book corrected).
var idealTwsBands = []struct {
	upper         float64
	E, F, G, H, K float64
}{
	{611.0, 0.1004926534e-2, 0.1392917633e-2, 0.2815151574e0, 0.7311621119e1, 0.2125893734e3},
	{12350.0, 0.5031062503e-2, -0.8826779380e-1, 0.1243688446e1, 0.3388534296e1, 0.2150077993e3},
	{101420.0, 0.0121404, -0.356801, 5.06151, -20.8232, 272.789},
	{476207.0, 0.2467291016e-1, -0.9367112883e0, 0.1514142334e2, -0.9882417501e2, 0.4995092948e3},
	{1555099.0, 0.2748402484e-1, -0.1068661307e1, 0.1742964962e2, -0.1161208532e3, 0.5472618120e3},
	{math.Inf(1), 0.0, 0.428138, -12.6338, 146.784, -292.288},
}

func idealPwsBand(T float64) int {
	for i, band := range idealPwsBands {
		if T < band.upper {
			return i
		}
	}
	return len(idealPwsBands) - 1
}

func (IdealGas) Pws(T float64) float64 {
	b := idealPwsBands[idealPwsBand(T)]
	return 1000.0 * math.Exp(b.A*T*T+b.B*T+b.C+b.D/T)
}

func (g IdealGas) DPws(T float64) float64 {
	b := idealPwsBands[idealPwsBand(T)]
	return g.Pws(T) * (2.0*b.A*T + b.B - b.D/(T*T))
}

func (IdealGas) TwsGuess(P float64) float64 {
	b := idealTwsBands[len(idealTwsBands)-1]
	for _, band := range idealTwsBands {
		if P < band.upper {
			b = band
			break
		}
	}
	beta := math.Log(P)
	return (((b.E*beta+b.F)*beta+b.G)*beta+b.H)*beta + b.K
}

func (IdealGas) Z(T, P, xv float64, d *Diagnostics) float64 {
	return 1.0
}

func (IdealGas) EFactor(T, P float64) float64 {
	return 1.0
}

// DryAirEnthalpy is a linear fit around 273.15 K.
func (IdealGas) DryAirEnthalpy(T, P float64, d *Diagnostics) float64 {
	return 1006.0 * (T - ZeroCelsius)
}

// VaporEnthalpy is a linear fit around room temperature.
func (IdealGas) VaporEnthalpy(T float64, d *Diagnostics) float64 {
	return 1000.0 * (2501.0 + 1.805*(T-ZeroCelsius))
}

func (IdealGas) CondensedEnthalpy(T float64) float64 {
	if T < ZeroCelsius {
		// Negative: ice lies below liquid water by the heat of fusion. A
		// +334.402 here would put ice above water at 0 °C.
		return 1000.0 * (-334.402 + 1.95645*(T-ZeroCelsius))
	}
	return 4186.0 * (T - ZeroCelsius)
}

// Enthalpy is the mass weighted sum of the dry air and vapor enthalpies.
func (g IdealGas) Enthalpy(T, P, xv float64, d *Diagnostics) float64 {
	xa := 1.0 - xv
	ha := g.DryAirEnthalpy(T, P, d)
	hv := g.VaporEnthalpy(T, d)
	return (xa*ha*Ma + xv*hv*Mv) / (xa*Ma + xv*Mv)
}
