// Copyright (C) 2026, Benjamin Drung <bdrung@posteo.de>
// SPDX-License-Identifier: ISC

package psychro

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestSaturationTemperatureInvertsPws(t *testing.T) {
	tests := []struct {
		f     Formulation
		temps []float64
	}{
		{RealGas{}, []float64{173.15, 200.0, 250.0, 273.0, 273.15, 273.16, 300.0, 350.0, 400.0, 473.15}},
		// Band edges of the ideal gas fit are not continuous; stay inside.
		{IdealGas{}, []float64{213.15, 230.0, 250.0, 273.16, 300.0, 350.0, 400.0, 450.0, 500.0, 600.0}},
		{Giacomo{}, []float64{288.15, 293.15, 300.15}},
	}

	for _, test := range tests {
		for _, T := range test.temps {
			t.Run(fmt.Sprintf("%s/%g", test.f.Name(), T), func(t *testing.T) {
				var d Diagnostics
				got := SaturationTemperature(test.f, test.f.Pws(T), &d)
				assert.InDelta(t, T, got, 1e-6)
				assert.Equal(t, OK, d.ErrorCode())
			})
		}
	}
}

func TestPwsKnownValues(t *testing.T) {
	tests := []struct {
		T   float64
		pws float64
	}{
		{253.15, 103.26},
		{273.15, 611.21},
		{293.15, 2338.80},
		{373.15, 101418.7},
	}

	for _, test := range tests {
		got := RealGas{}.Pws(test.T)
		if !scalar.EqualWithinAbsOrRel(got, test.pws, 0.01, 1e-6) {
			t.Errorf("Pws(%g) was incorrect, got: %f, want: %f.", test.T, got, test.pws)
		}
	}
}

func TestPwsFreezingPointContinuity(t *testing.T) {
	ice := pwsIce(ZeroCelsius)
	liquid := pwsLiquid(ZeroCelsius)
	rel := math.Abs(ice-liquid) / liquid

	// Both branches meet within 0.01 %, but they do not meet exactly.
	assert.Less(t, rel, 2e-4)
	assert.NotEqual(t, ice, liquid)
	assert.Equal(t, liquid, RealGas{}.Pws(ZeroCelsius))
	assert.InDelta(t, ice, RealGas{}.Pws(math.Nextafter(ZeroCelsius, 0)), 1e-9)
}

func TestDPwsMatchesFiniteDifference(t *testing.T) {
	for _, f := range []Formulation{IdealGas{}, RealGas{}, Giacomo{}} {
		for _, T := range []float64{250.0, 290.0, 330.0} {
			h := 1e-4
			want := (f.Pws(T+h) - f.Pws(T-h)) / (2 * h)
			assert.InEpsilon(t, want, f.DPws(T), 1e-6, "%s at %g K", f.Name(), T)
		}
	}
}

func TestJabardoGuessAccuracy(t *testing.T) {
	for T := 173.15; T <= 473.15; T += 2.5 {
		guess := jabardoGuess(RealGas{}.Pws(T))
		if math.Abs(guess-T) > 0.7 {
			t.Errorf("Initial guess for %g K is off, got: %f.", T, guess)
		}
	}
}

func TestSaturationTemperatureNoConvergence(t *testing.T) {
	var d Diagnostics
	got := SaturationTemperature(stuckCurve{}, 1000.0, &d)
	assert.Equal(t, ErrSaturationTempNoConvergence, d.ErrorCode())
	assert.False(t, math.IsNaN(got))
}

// stuckCurve never reaches any positive pressure.
type stuckCurve struct{ IdealGas }

func (stuckCurve) Pws(T float64) float64 { return 0 }

func (stuckCurve) DPws(T float64) float64 { return 1 }
