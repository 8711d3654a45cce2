// Copyright (C) 2026, Benjamin Drung <bdrung@posteo.de>
// SPDX-License-Identifier: ISC

package psychro

import "math"

const (
	saturationMaxIter   = 100
	saturationTolerance = 1e-8 // K
)

// SaturationTemperature inverts f.Pws with Newton-Raphson, starting from
// f.TwsGuess. The guess matters: Pws has a kink at 273.15 K where a poor
// starting point can make Newton oscillate between the ice and liquid
// branches. Without convergence ErrSaturationTempNoConvergence is raised on d
// and the last iterate is returned.
func SaturationTemperature(f Formulation, P float64, d *Diagnostics) float64 {
	T := f.TwsGuess(P)
	for iter := 0; iter < saturationMaxIter; iter++ {
		dT := (P - f.Pws(T)) / f.DPws(T)
		T += dT
		if math.Abs(dT) < saturationTolerance {
			return T
		}
	}
	lg.Debugf("%s: saturation temperature for %g Pa stuck at %g K", f.Name(), P, T)
	d.Raise(ErrSaturationTempNoConvergence)
	return T
}

// jabardoGuess approximates the saturation temperature of the Hyland-Wexler
// vapor pressure curve to within 0.6 K:
// T = g0 + g1 ln P + g2 (ln P)² + g3 (ln P)³ + g4 (ln P)⁴ + g5 P.
func jabardoGuess(P float64) float64 {
	lnP := math.Log(P)
	return 2.127925e2 + lnP*(7.305398e0+lnP*(1.969953e-1+lnP*(1.103701e-2+lnP*1.849307e-3))) +
		5.145087e-6*P
}
