// Copyright (C) 2026, Benjamin Drung <bdrung@posteo.de>
// SPDX-License-Identifier: ISC

package psychro

import "math"

const (
	dewPointMaxIter   = 100
	dewPointTolerance = 1e-9 // K
)

// dewPointTemperature finds D with f(D, P)·Pws(D) = xv·P. It starts from the
// ideal gas dew point Tws(xv·P) and alternates between the enhancement factor
// and the saturation temperature.
func dewPointTemperature(f Formulation, xv, P float64, d *Diagnostics) float64 {
	if xv <= 0.0 {
		return math.NaN()
	}
	pv := xv * P
	D := SaturationTemperature(f, pv, d)
	for iter := 0; iter < dewPointMaxIter; iter++ {
		next := SaturationTemperature(f, pv/f.EFactor(D, P), d)
		delta := math.Abs(next - D)
		D = next
		if delta < dewPointTolerance {
			return D
		}
	}
	lg.Debugf("%s: dew point for xv=%g, P=%g Pa stuck at %g K", f.Name(), xv, P, D)
	d.Raise(ErrDewPointNoConvergence)
	return D
}
