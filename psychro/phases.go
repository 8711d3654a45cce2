// Copyright (C) 2026, Benjamin Drung <bdrung@posteo.de>
// SPDX-License-Identifier: ISC

package psychro

import "math"

// Saturated condensed phases of water. Densities and volumes from R. W. Hyland
// and A. Wexler, "Formulations for the thermodynamic properties of the
// saturated phases of H2O from 173.15 K to 473.15 K", ASHRAE Transactions
// 89(2A), 1983.

// liquidDensity of saturated water in kg/m³, 273.15 K < T < 473.15 K.
func liquidDensity(T float64) float64 {
	num := -0.2403360201e4 + T*(-0.140758895e1+T*(0.1068287657e0+T*(-0.2914492351e-3+
		T*(0.373497936e-6+T*-0.21203787e-9))))
	den := -0.3424442728e1 + 0.1619785e-1*T
	return num / den
}

// liquidVolume of saturated water in m³/kg.
func liquidVolume(T float64) float64 {
	return 1.0 / liquidDensity(T)
}

// iceVolume of saturated ice in m³/kg, 173.15 K < T < 273.15 K.
func iceVolume(T float64) float64 {
	return 0.1070003e-2 - 0.249936e-7*T + 0.371611e-9*T*T
}

// condensedVolume is iceVolume below 273.15 K and liquidVolume above.
func condensedVolume(T float64) float64 {
	if T < ZeroCelsius {
		return iceVolume(T)
	}
	return liquidVolume(T)
}

// liquidCompressibility is the isothermal compressibility of water at
// atmospheric pressure in 1/Pa (G. S. Kell, J. Chem. Eng. Data 20(1), 1975).
func liquidCompressibility(T float64) float64 {
	t := T - ZeroCelsius
	var k float64
	if t < 100.0 {
		k = (50.88496 + 0.6163813*t + 1.459187e-3*t*t + 20.08438e-6*t*t*t -
			58.47727e-9*math.Pow(t, 4) + 410.4110e-12*math.Pow(t, 5)) / (1.0 + 19.67348e-3*t)
	} else {
		k = (50.884917 + 0.62590623*t + 1.3848668e-3*t*t + 21.603427e-6*t*t*t -
			72.087667e-9*math.Pow(t, 4) + 465.45054e-12*math.Pow(t, 5)) / (1.0 + 19.859983e-3*t)
	}
	return k * 1e-11
}

// iceCompressibility is the isothermal compressibility of ice in 1/Pa.
func iceCompressibility(T float64) float64 {
	return (8.875 + 0.0165*T) * 1e-11
}

func condensedCompressibility(T float64) float64 {
	if T < ZeroCelsius {
		return iceCompressibility(T)
	}
	return liquidCompressibility(T)
}

// henryLog10 solves a2·x² + a1·x + a0 = 0 for x = log10(k) with the
// coefficients of D. M. Himmelblau, J. Chem. Eng. Data 5, 1960.
func henryLog10(T, alpha, beta, gamma, delta, eps float64) float64 {
	tau := 1000.0 / T
	a2 := alpha
	a1 := gamma*tau + delta
	a0 := beta*tau*tau + eps*tau - 1.0
	return (-a1 - math.Sqrt(a1*a1-4.0*a2*a0)) / (2.0 * a2)
}

func henryO2(T float64) float64 {
	return math.Pow(10, henryLog10(T, -0.0005943, -0.1470, -0.05120, -0.1076, 0.8447))
}

func henryN2(T float64) float64 {
	return math.Pow(10, henryLog10(T, -0.1021, -0.1482, -0.019, -0.03741, 0.851))
}

// henryAir is the Henry constant of dry air in 1/Pa, combined from oxygen
// and nitrogen as 1/k = xO2/kO2 + xN2/kN2.
func henryAir(T float64) float64 {
	const xO2, xN2 = 0.22, 0.78
	k := 1.0 / (xO2/henryO2(T) + xN2/henryN2(T))
	return 1e-4 / k / StandardPressure
}
