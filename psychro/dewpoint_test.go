// Copyright (C) 2026, Benjamin Drung <bdrung@posteo.de>
// SPDX-License-Identifier: ISC

package psychro

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDewPointSatisfiesSaturation(t *testing.T) {
	for _, f := range []Formulation{IdealGas{}, RealGas{}, Giacomo{}} {
		for _, xv := range []float64{0.001, 0.01, 0.03} {
			var d Diagnostics
			D := dewPointTemperature(f, xv, StandardPressure, &d)
			got := f.EFactor(D, StandardPressure) * f.Pws(D)
			assert.InEpsilon(t, xv*StandardPressure, got, 1e-9, "%s xv=%g", f.Name(), xv)
			assert.Equal(t, OK, d.ErrorCode())
		}
	}
}

func TestDewPointBelowIdealDewPoint(t *testing.T) {
	// The enhancement factor lowers the dew point slightly.
	var d Diagnostics
	ideal := SaturationTemperature(RealGas{}, 0.01*StandardPressure, &d)
	dew := dewPointTemperature(RealGas{}, 0.01, StandardPressure, &d)
	assert.Less(t, dew, ideal)
	assert.InDelta(t, ideal, dew, 0.2)
}

func TestDewPointOfDryAir(t *testing.T) {
	var d Diagnostics
	assert.True(t, math.IsNaN(dewPointTemperature(RealGas{}, 0.0, StandardPressure, &d)))
	assert.Equal(t, OK, d.ErrorCode())
}

// flipping switches its enhancement factor across 280 K, so the dew point of
// xv = 0.01 at standard pressure jumps between about 280.3 K and 279.6 K.
type flipping struct{ RealGas }

func (flipping) EFactor(T, P float64) float64 {
	if T > 280.0 {
		return 1.05
	}
	return 1.0
}

func TestDewPointNoConvergence(t *testing.T) {
	var d Diagnostics
	D := dewPointTemperature(flipping{}, 0.01, StandardPressure, &d)

	assert.Equal(t, ErrDewPointNoConvergence, d.ErrorCode())
	assert.False(t, math.IsNaN(D))
	assert.InDelta(t, 280.0, D, 1.0)
}
