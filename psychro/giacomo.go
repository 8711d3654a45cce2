// Copyright (C) 2026, Benjamin Drung <bdrung@posteo.de>
// SPDX-License-Identifier: ISC

package psychro

import "math"

// Giacomo uses the explicit compressibility, vapor pressure and enhancement
// factor equations of P. Giacomo, "Equation for the determination of the
// density of moist air (1981)", Metrologia 18, 1982. They hold from 60 kPa to
// 110 kPa and from 15 °C to 27 °C only. Enthalpies come from the RealGas
// correlations evaluated with these three equations.
type Giacomo struct{}

var giacomoGas = virialGas{curve: giacomoCurve{}, z: giacomoZ}

func (Giacomo) Name() string { return "giacomo" }

func (Giacomo) Limits() Limits {
	return Limits{Tmin: 288.15, Tmax: 300.15, Pmin: 60e3, Pmax: 110e3}
}

func (Giacomo) Solver() SolverSettings {
	return RealGas{}.Solver()
}

func (Giacomo) Pws(T float64) float64 { return giacomoCurve{}.Pws(T) }

func (Giacomo) DPws(T float64) float64 { return giacomoCurve{}.DPws(T) }

func (Giacomo) TwsGuess(P float64) float64 { return jabardoGuess(P) }

func (Giacomo) Z(T, P, xv float64, d *Diagnostics) float64 {
	return giacomoZ(T, P, xv, d)
}

// EFactor is f = α + β·P + γ·t², valid from 0 °C to 30 °C.
func (Giacomo) EFactor(T, P float64) float64 {
	t := T - ZeroCelsius
	return 1.00062 + 3.14e-8*P + 5.6e-7*t*t
}

func (Giacomo) Enthalpy(T, P, xv float64, d *Diagnostics) float64 {
	return giacomoGas.enthalpy(T, P, xv, d)
}

func (Giacomo) DryAirEnthalpy(T, P float64, d *Diagnostics) float64 {
	return giacomoGas.dryAirEnthalpy(T, P, d)
}

func (Giacomo) VaporEnthalpy(T float64, d *Diagnostics) float64 {
	return giacomoGas.vaporEnthalpy(T, d)
}

func (Giacomo) CondensedEnthalpy(T float64) float64 {
	return giacomoGas.condensedEnthalpy(T)
}

// giacomoCurve is Pws = exp(A·T² + B·T + C + D/T), valid from 0 °C to 27 °C.
type giacomoCurve struct{}

const (
	giacomoA = 1.2811805e-5
	giacomoB = -1.9509874e-2
	giacomoC = 34.04926034
	giacomoD = -6.3536311e3
)

func (giacomoCurve) Pws(T float64) float64 {
	return math.Exp(giacomoA*T*T + giacomoB*T + giacomoC + giacomoD/T)
}

func (c giacomoCurve) DPws(T float64) float64 {
	return c.Pws(T) * (2*giacomoA*T + giacomoB - giacomoD/(T*T))
}

func giacomoZ(T, P, xv float64, d *Diagnostics) float64 {
	const (
		a0 = 1.62419e-6
		a1 = -2.8969e-8
		a2 = 1.0880e-10
		b0 = 5.757e-6
		b1 = -2.589e-8
		c0 = 1.9297e-4
		c1 = -2.285e-6
		dd = 1.73e-11
		e  = -1.034e-8
	)
	t := T - ZeroCelsius
	return 1.0 - P/T*(a0+a1*t+a2*t*t+(b0+b1*t)*xv+(c0+c1*t)*xv*xv) +
		P*P/(T*T)*(dd+e*xv*xv)
}
