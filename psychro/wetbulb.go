// Copyright (C) 2026, Benjamin Drung <bdrung@posteo.de>
// SPDX-License-Identifier: ISC

package psychro

import (
	"math"

	"gonum.org/v1/gonum/diff/fd"
)

const (
	wetBulbTolerance = 1e-7 // K

	humRatMaxIter   = 100
	humRatTolerance = 1e-8 // relative to the saturation humidity ratio
	humRatStep      = 1e-4 // relative to the saturation humidity ratio
)

// adiabaticResidual is the energy balance of an adiabatic saturator fed with
// air of humidity ratio w at T that leaves saturated at B:
//
//	(1 + w)·h(T, P, xv) + (w₂ − w)·h_f(B) − (1 + w₂)·h(B, P, xv₂)
//
// where w₂ and xv₂ belong to saturated air at B. It is zero when B is the
// wet-bulb temperature.
func adiabaticResidual(f Formulation, w, T, B, P float64, d *Diagnostics) float64 {
	xv1 := molFracFromHumRat(w)
	xv2 := f.EFactor(B, P) * f.Pws(B) / P
	w2 := humRatFromMolFrac(xv2)
	return (1.0+w)*f.Enthalpy(T, P, xv1, d) + (w2-w)*f.CondensedEnthalpy(B) -
		(1.0+w2)*f.Enthalpy(B, P, xv2, d)
}

// forwardDerivative estimates df/dx at x from a known f(x).
func forwardDerivative(f func(float64) float64, x, fx, step float64) float64 {
	return fd.Derivative(f, x, &fd.Settings{
		Formula:     fd.Forward,
		Step:        step,
		OriginKnown: true,
		OriginValue: fx,
	})
}

// wetBulbTemperature solves adiabaticResidual for B with Newton-Raphson,
// starting at T − 1.
func wetBulbTemperature(f Formulation, w, T, P float64, d *Diagnostics) float64 {
	settings := f.Solver()
	residual := func(B float64) float64 {
		return adiabaticResidual(f, w, T, B, P, d)
	}

	B := T - 1.0
	for iter := 0; iter < settings.WetBulbMaxIter; iter++ {
		r := residual(B)
		dB := -r / forwardDerivative(residual, B, r, settings.WetBulbStep)
		B += dB
		if math.Abs(dB) < wetBulbTolerance {
			return B
		}
	}
	lg.Debugf("%s: wet bulb for T=%g K, P=%g Pa, W=%g stuck at %g K", f.Name(), T, P, w, B)
	d.Raise(ErrWetBulbNoConvergence)
	return B
}

// humRatFromWetBulb solves adiabaticResidual for the humidity ratio given the
// dry-bulb T and wet-bulb B. The first guess is the ideal gas energy balance
// with the formulation's enthalpies; Newton-Raphson refines it.
func humRatFromWetBulb(f Formulation, T, B, P float64, d *Diagnostics) float64 {
	xsv := f.EFactor(B, P) * f.Pws(B) / P
	w2 := humRatFromMolFrac(xsv)
	hf := f.CondensedEnthalpy(B)

	w := (f.DryAirEnthalpy(B, P, d) - f.DryAirEnthalpy(T, P, d) - w2*hf + w2*f.VaporEnthalpy(B, d)) /
		(f.VaporEnthalpy(T, d) - hf)

	residual := func(w float64) float64 {
		return adiabaticResidual(f, w, T, B, P, d)
	}
	for iter := 0; iter < humRatMaxIter; iter++ {
		r := residual(w)
		dw := -r / forwardDerivative(residual, w, r, humRatStep*w2)
		w += dw
		if math.Abs(dw) < humRatTolerance*w2 {
			return w
		}
	}
	lg.Debugf("%s: humidity ratio for T=%g K, B=%g K, P=%g Pa stuck at %g", f.Name(), T, B, P, w)
	d.Raise(ErrHumRatNoConvergence)
	return w
}
