// Copyright (C) 2026, Benjamin Drung <bdrung@posteo.de>
// SPDX-License-Identifier: ISC

package psychro

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZNearIdealAtModeratePressure(t *testing.T) {
	m := New(RealGas{})
	for T := 173.15; T <= 473.15; T += 10 {
		for _, P := range []float64{50e3, StandardPressure, 500e3} {
			for _, xv := range []float64{0.0, 0.005, 0.01, 0.02} {
				z := m.Z(T, P, xv)
				if math.Abs(z-1) > 0.05 {
					t.Errorf("Z(%g, %g, %g) too far from ideal, got: %f.", T, P, xv, z)
				}
			}
		}
	}
	assert.Equal(t, OK, m.ErrorCode())
}

func TestZKnownValues(t *testing.T) {
	var d Diagnostics
	assert.InDelta(t, 0.99962, RealGas{}.Z(293.15, StandardPressure, 0.01, &d), 1e-5)
	assert.InDelta(t, 0.79981, RealGas{}.Z(173.15, 5e6, 0.0, &d), 1e-5)
	assert.InDelta(t, 1.0, IdealGas{}.Z(293.15, 5e6, 0.01, &d), 0)
	assert.InDelta(t, 0.99960, Giacomo{}.Z(293.15, StandardPressure, 0.0116, &d), 1e-5)
	assert.Equal(t, OK, d.ErrorCode())
}

func TestZNoConvergence(t *testing.T) {
	m := New(RealGas{})
	z := m.Z(173.15, 1e9, 0.0)

	assert.Equal(t, ErrCompressibilityNoConvergence, m.ErrorCode())
	assert.False(t, math.IsNaN(z), "Z must stay a number")
	assert.False(t, math.IsInf(z, 0), "Z must stay finite")
}

func TestDryAirVolumeNoConvergence(t *testing.T) {
	var d Diagnostics
	h := RealGas{}.DryAirEnthalpy(173.15, 1e9, &d)
	assert.Equal(t, ErrDryAirVolumeNoConvergence, d.ErrorCode())
	assert.False(t, math.IsNaN(h))
}

func TestEFactorNeverBelowOne(t *testing.T) {
	for _, f := range []Formulation{IdealGas{}, RealGas{}, Giacomo{}} {
		for T := 173.15; T <= 473.15; T += 5 {
			for _, P := range []float64{1e3, 50e3, StandardPressure, 1e6, 5e6} {
				if got := f.EFactor(T, P); got < 1.0 {
					t.Errorf("%s: EFactor(%g, %g) below one, got: %f.", f.Name(), T, P, got)
				}
			}
		}
	}
}

func TestEFactorKnownValues(t *testing.T) {
	tests := []struct {
		T, P, want float64
	}{
		{200.0, StandardPressure, 1.00745},
		{273.15, StandardPressure, 1.00393},
		{293.15, StandardPressure, 1.00407},
		{350.0, StandardPressure, 1.00596},
		{300.0, 5e6, 1.15196},
		// The iteration settles below one here and is floored.
		{373.15, StandardPressure, 1.0},
	}

	for _, test := range tests {
		got := RealGas{}.EFactor(test.T, test.P)
		assert.InDelta(t, test.want, got, 1e-5, "EFactor(%g, %g)", test.T, test.P)
	}
}

func TestGiacomoEFactor(t *testing.T) {
	require.InDelta(t, 1.0040256, Giacomo{}.EFactor(293.15, StandardPressure), 1e-7)
	require.InDelta(t, 1.00062, Giacomo{}.EFactor(ZeroCelsius, 0), 1e-12)
}

func TestHenryAirPositive(t *testing.T) {
	for T := 273.15; T <= 473.15; T += 20 {
		k := henryAir(T)
		if !(k > 0) || math.IsInf(k, 0) {
			t.Errorf("Henry constant at %g K is not usable, got: %g.", T, k)
		}
	}
}

func TestCondensedEnthalpyAtFreezingPoint(t *testing.T) {
	for _, f := range []Formulation{IdealGas{}, RealGas{}} {
		ice := f.CondensedEnthalpy(math.Nextafter(ZeroCelsius, 0))
		liquid := f.CondensedEnthalpy(ZeroCelsius)
		// Ice carries the heat of fusion, about 333.4 kJ/kg.
		assert.InDelta(t, 333.4e3, liquid-ice, 1.5e3, f.Name())
	}
}

func TestVaporVolumeNoConvergence(t *testing.T) {
	// Near 590 K the saturated vapor volume iteration oscillates.
	var d Diagnostics
	h := RealGas{}.VaporEnthalpy(590.0, &d)

	assert.Equal(t, ErrVaporVolumeNoConvergence, d.ErrorCode())
	assert.False(t, math.IsNaN(h))
	assert.False(t, math.IsInf(h, 0))
}
