// Copyright (C) 2026, Benjamin Drung <bdrung@posteo.de>
// SPDX-License-Identifier: ISC

package psychro

import "math"

// RealGas is the moist air formulation of ASHRAE, Psychrometrics: Theory and
// Practice (1996), built on the Hyland-Wexler virial equation of state. It is
// valid from 173.15 K to 473.15 K and up to 5 MPa.
type RealGas struct{}

const (
	compressibilityMaxIter   = 100
	compressibilityTolerance = 1e-8 // m³/kmol

	dryAirVolumeMaxIter   = 100
	dryAirVolumeTolerance = 1e-8
	vaporVolumeMaxIter    = 200
	vaporVolumeTolerance  = 1e-9

	eFactorMaxIter   = 50
	eFactorTolerance = 1e-7
)

var realGas = virialGas{curve: hylandWexler{}, z: virialZ}

func (RealGas) Name() string { return "ashrae" }

func (RealGas) Limits() Limits {
	return Limits{Tmin: 173.15, Tmax: 473.15, Pmin: 0.0, Pmax: 5e6}
}

func (RealGas) Solver() SolverSettings {
	return SolverSettings{WetBulbStep: 1e-5, WetBulbMaxIter: 400}
}

func (RealGas) Pws(T float64) float64 { return hylandWexler{}.Pws(T) }

func (RealGas) DPws(T float64) float64 { return hylandWexler{}.DPws(T) }

func (RealGas) TwsGuess(P float64) float64 { return jabardoGuess(P) }

func (RealGas) CondensedEnthalpy(T float64) float64 {
	return realGas.condensedEnthalpy(T)
}

func (RealGas) Z(T, P, xv float64, d *Diagnostics) float64 {
	return virialZ(T, P, xv, d)
}

func (RealGas) Enthalpy(T, P, xv float64, d *Diagnostics) float64 {
	return realGas.enthalpy(T, P, xv, d)
}

func (RealGas) DryAirEnthalpy(T, P float64, d *Diagnostics) float64 {
	return realGas.dryAirEnthalpy(T, P, d)
}

func (RealGas) VaporEnthalpy(T float64, d *Diagnostics) float64 {
	return realGas.vaporEnthalpy(T, d)
}

// EFactor iterates the saturated air mole fraction xas = (P − f·Pws)/P and
// f = exp(lnf(T, P, xas)) from f = 1. Results below 1 are not physical and
// are replaced by 1, also when the iteration runs out of steps.
func (g RealGas) EFactor(T, P float64) float64 {
	pws := g.Pws(T)
	f := 1.0
	next := f
	for iter := 0; iter < eFactorMaxIter; iter++ {
		xas := (P - f*pws) / P
		next = math.Exp(lnf(T, P, xas))
		if math.Abs(next-f) < eFactorTolerance {
			break
		}
		f = next
	}
	return math.Max(next, 1.0)
}

// virialZ solves the virial equation of state of the mixture for its molar
// volume and returns the ratio to the ideal gas volume.
func virialZ(T, P, xv float64, d *Diagnostics) float64 {
	vi := R * T / P
	v, ok := virialMolarVolume(T, P, mixtureB(T, xv), mixtureC(T, xv),
		compressibilityMaxIter, compressibilityTolerance)
	if !ok {
		lg.Debugf("compressibility at T=%g K, P=%g Pa, xv=%g did not converge", T, P, xv)
		d.Raise(ErrCompressibilityNoConvergence)
	}
	return v / vi
}

// lnf is the logarithm of the enhancement factor for an estimate xas of the
// saturated air mole fraction. The expression printed in the ASHRAE book has
// an error; this is the form of Hyland and Wexler with that error removed.
func lnf(T, P, xas float64) float64 {
	vc := condensedVolume(T) * Mv
	kk := condensedCompressibility(T)
	k := 0.0
	if T >= ZeroCelsius {
		k = henryAir(T)
	}
	RT := R * T
	RT2 := RT * RT
	p := hylandWexler{}.Pws(T)
	P2 := P * P
	x := xas
	x2 := x * x
	Baa, Baw, Bww := baa(T), baw(T), bww(T)

	t1 := vc / RT * ((1+kk*p)*(P-p) - 0.5*kk*(P2-p*p))
	t2 := math.Log(1.0-k*x*P) + (x2*P/RT)*Baa - (2*x2*P/RT)*Baw
	t3 := -(P-p-x2*P)/RT*Bww + x2*x*P2/RT2*caaa(T)
	t4 := 3*x2*(1.0-2.0*x)*P2/(2*RT2)*caaw(T) - (3*x2*(1-x)*P2)/RT2*caww(T)
	t5 := -((1.0+2.0*x)*(1.0-x)*(1.0-x)*P2 - p*p) / (2.0 * RT2) * cwww(T)
	t6 := -x2*(1.0-3.0*x)*(1.0-x)*P2/RT2*Baa*Bww - 2.0*x2*x*(2.0-3.0*x)*P2/RT2*Baa*Baw
	t7 := 6.0*x2*(1.0-x)*(1.0-x)*P2/RT2*Bww*Baw - 3.0*x2*x2*P2/(2.0*RT2)*Baa*Baa
	t8 := -2.0*x2*(1.0-x)*(1.0-3.0*x)*P2/RT2*Baw*Baw -
		(p*p-(1.0+3.0*x)*math.Pow(1.0-x, 3)*P2)/(2*RT2)*Bww*Bww
	return t1 + t2 + t3 + t4 + t5 + t6 + t7 + t8
}

// saturationCurve is a vapor pressure correlation with its derivative.
type saturationCurve interface {
	Pws(T float64) float64
	DPws(T float64) float64
}

// hylandWexler is the vapor pressure over ice below 273.15 K and over liquid
// water above.
type hylandWexler struct{}

func (hylandWexler) Pws(T float64) float64 {
	if T < ZeroCelsius {
		return pwsIce(T)
	}
	return pwsLiquid(T)
}

func (hylandWexler) DPws(T float64) float64 {
	if T < ZeroCelsius {
		return pwsIce(T) * (0.56745359e4/(T*T) + 0.41635019e1/T - 0.96778430e-2 +
			0.12443140e-5*T + 0.62243475e-8*T*T - 0.37936096e-11*T*T*T)
	}
	return pwsLiquid(T) * (0.58002206e4/(T*T) + 0.65459673e1/T - 0.48640239e-1 +
		0.83529536e-4*T - 0.43356279e-7*T*T)
}

// pwsLiquid is valid from 273.15 K to 473.15 K.
func pwsLiquid(T float64) float64 {
	lnP := -0.58002206e4/T + 0.13914993e1 - 0.48640239e-1*T + 0.41764768e-4*T*T -
		0.14452093e-7*T*T*T + 0.65459673e1*math.Log(T)
	return math.Exp(lnP)
}

// pwsIce is valid from 173.15 K to 273.15 K.
func pwsIce(T float64) float64 {
	lnP := -0.56745359e4/T + 0.63925247e1 - 0.96778430e-2*T + 0.62215701e-6*T*T +
		0.20747825e-8*T*T*T - 0.94840240e-12*T*T*T*T + 0.41635019e1*math.Log(T)
	return math.Exp(lnP)
}

// virialGas evaluates the Hyland-Wexler enthalpies on top of a vapor
// pressure curve and a compressibility function, so that a formulation can
// replace either and keep the rest.
type virialGas struct {
	curve saturationCurve
	z     func(T, P, xv float64, d *Diagnostics) float64
}

// Ideal gas enthalpy polynomials in kJ/kmol with their reference offsets.
var (
	airIdealEnthalpy   = []float64{0.63290874e1, 0.28709015e2, 0.26431805e-2, -0.10405863e-4, 0.18660410e-7, -0.9784331e-11}
	vaporIdealEnthalpy = []float64{-0.5008e-2, 0.32491829e2, 0.65576345e-2, -0.26442147e-4, 0.51751789e-7, -0.31541624e-10}
	dryAirEnthalpyFit  = []float64{-0.79078691e4, 0.28709015e2, 0.26431805e-2, -0.10405863e-4, 0.18660410e-7, -0.97843331e-11}
)

const (
	airEnthalpyOffset   = -7914.1982 // kJ/kmol
	vaporEnthalpyOffset = 35994.17   // kJ/kmol
)

func polynomial(c []float64, x float64) float64 {
	y := 0.0
	for i := len(c) - 1; i >= 0; i-- {
		y = y*x + c[i]
	}
	return y
}

// enthalpy of moist air in J per kg of mixture.
func (g virialGas) enthalpy(T, P, xv float64, d *Diagnostics) float64 {
	xa := 1.0 - xv
	ha := polynomial(airIdealEnthalpy, T) + airEnthalpyOffset
	hv := polynomial(vaporIdealEnthalpy, T) + vaporEnthalpyOffset
	v := g.z(T, P, xv, d) * R * T / P
	hm := xa*ha*1000.0 + xv*hv*1000.0 +
		residualEnthalpy(T, v, mixtureB(T, xv), mixtureDB(T, xv), mixtureC(T, xv), mixtureDC(T, xv))
	return hm / (xa*Ma + xv*Mv)
}

// dryAirMolarVolume in m³/kmol.
func (g virialGas) dryAirMolarVolume(T, P float64, d *Diagnostics) float64 {
	v, ok := virialMolarVolume(T, P, baa(T), caaa(T), dryAirVolumeMaxIter, dryAirVolumeTolerance)
	if !ok {
		lg.Debugf("dry air molar volume at T=%g K, P=%g Pa did not converge", T, P)
		d.Raise(ErrDryAirVolumeNoConvergence)
	}
	return v
}

// dryAirEnthalpy in J/kg.
func (g virialGas) dryAirEnthalpy(T, P float64, d *Diagnostics) float64 {
	v := g.dryAirMolarVolume(T, P, d)
	h := 1000.0*polynomial(dryAirEnthalpyFit, T) +
		residualEnthalpy(T, v, baa(T), dBaa(T), caaa(T), dCaaa(T))
	return h / Ma
}

// vaporMolarVolume of saturated vapor in m³/kmol.
func (g virialGas) vaporMolarVolume(T float64, d *Diagnostics) float64 {
	v, ok := virialMolarVolume(T, g.curve.Pws(T), bww(T), cwww(T), vaporVolumeMaxIter, vaporVolumeTolerance)
	if !ok {
		lg.Debugf("saturated vapor molar volume at T=%g K did not converge", T)
		d.Raise(ErrVaporVolumeNoConvergence)
	}
	return v
}

// vaporEnthalpy of saturated vapor in J/kg, evaluated like the mixture
// enthalpy with xv = 1 at the saturation pressure.
func (g virialGas) vaporEnthalpy(T float64, d *Diagnostics) float64 {
	v := g.vaporMolarVolume(T, d)
	h := 1000.0*(polynomial(vaporIdealEnthalpy, T)+vaporEnthalpyOffset) +
		residualEnthalpy(T, v, bww(T), dBww(T), cwww(T), dCwww(T))
	return h / Mv
}

// iceEnthalpy of saturated ice in J/kg, 173.15 K < T < 273.15 K.
func (g virialGas) iceEnthalpy(T float64) float64 {
	return 1000.0 * (-0.647595e3 + T*(0.274292e0+T*(0.2910583e-2+T*0.1083437e-5)) + 0.107e-5*g.curve.Pws(T))
}

// liquidEnthalpy of saturated water in J/kg, 273.15 K < T < 473.15 K.
func (g virialGas) liquidEnthalpy(T float64) float64 {
	beta0 := T * liquidVolume(ZeroCelsius) * g.curve.DPws(ZeroCelsius)
	beta := T*liquidVolume(T)*g.curve.DPws(T) - beta0

	var alpha float64
	switch {
	case T < 373.125:
		alpha = -0.11411380e4 + T*(0.41930463e1+T*(-0.8134865e-4+T*(0.1451133e-6+T*-0.1005230e-9))) -
			0.563473*math.Pow(10, -0.036*(T-ZeroCelsius))
	case T <= 403.128:
		alpha = liquidEnthalpyHigh(T)
	default:
		alpha = liquidEnthalpyHigh(T) - 0.6059e-6*math.Pow(T-403.128, 3.1)
	}
	return 1000.0*alpha + beta
}

func liquidEnthalpyHigh(T float64) float64 {
	return -0.1141837121e4 + T*(0.4194325677e1+T*(-0.6908894163e-4+T*(0.105555302e-6+T*-0.7111382234e-10)))
}

func (g virialGas) condensedEnthalpy(T float64) float64 {
	if T < ZeroCelsius {
		return g.iceEnthalpy(T)
	}
	return g.liquidEnthalpy(T)
}
