// Copyright (C) 2026, Benjamin Drung <bdrung@posteo.de>
// SPDX-License-Identifier: ISC

package psychro

import "math"

// Virial coefficients of dry air, water vapor and their mixture after R. W.
// Hyland and A. Wexler, "Formulations for the thermodynamic properties of dry
// air from 173.15 K to 473.15 K, and of saturated moist air from 173.15 K to
// 372.15 K, at pressures to 5 MPa", ASHRAE Transactions 89(2A), 1983.
//
// Second coefficients are in m³/kmol, third coefficients in m⁶/kmol², and
// the d-prefixed functions are their temperature derivatives.

func baa(T float64) float64 {
	return (0.349568e2 - 0.668772e4/T - 0.210141e7/(T*T) + 0.924746e8/(T*T*T)) / 1e3
}

func dBaa(T float64) float64 {
	return (0.668772e4/(T*T) + 0.420282e7/(T*T*T) - 0.277424e9/(T*T*T*T)) / 1e3
}

func baw(T float64) float64 {
	return (0.32366097e2 - 0.141138e5/T - 0.1244535e7/(T*T) - 0.2348789e10/(T*T*T*T)) / 1e3
}

func dBaw(T float64) float64 {
	return (0.141138e5/(T*T) + 0.248907e7/(T*T*T) + 0.93951568e10/math.Pow(T, 5)) / 1e3
}

// bPrime is the second virial coefficient of water in the pressure series,
// in 1/Pa.
func bPrime(T float64) float64 {
	return 0.70e-8 - 0.147184e-8*math.Exp(1734.29/T)
}

func dBPrime(T float64) float64 {
	return 0.255260e-5 / (T * T) * math.Exp(1734.29/T)
}

// cPrime is the third virial coefficient of water in the pressure series,
// in 1/Pa².
func cPrime(T float64) float64 {
	return 0.104e-14 - 0.335297e-17*math.Exp(3645.09/T)
}

func dCPrime(T float64) float64 {
	return 0.122219e-13 / (T * T) * math.Exp(3645.09/T)
}

func bww(T float64) float64 {
	return R * T * bPrime(T)
}

func dBww(T float64) float64 {
	return R * (T*dBPrime(T) + bPrime(T))
}

func caaa(T float64) float64 {
	return (0.125975e4 - 0.190905e6/T + 0.632467e8/(T*T)) / 1e6
}

func dCaaa(T float64) float64 {
	return (0.190905e6/(T*T) - 0.126493e9/(T*T*T)) / 1e6
}

func caaw(T float64) float64 {
	return (0.482737e3 + 0.105678e6/T - 0.656394e8/(T*T) + 0.294442e11/(T*T*T) -
		0.319317e13/(T*T*T*T)) / 1e6
}

func dCaaw(T float64) float64 {
	return (-0.105678e6/(T*T) + 1.312788e8/(T*T*T) - 8.83326e10/math.Pow(T, 4) +
		1.277268e13/math.Pow(T, 5)) / 1e6
}

func caww(T float64) float64 {
	return -math.Exp(-0.10728876e2 + 0.347802e4/T - 0.383383e6/(T*T) + 0.33406e8/(T*T*T))
}

func dCaww(T float64) float64 {
	return (-0.347802e4/(T*T) + 2*0.383383e6/(T*T*T) - 3*0.33406e8/math.Pow(T, 4)) * caww(T)
}

func cwww(T float64) float64 {
	b := bPrime(T)
	return R * T * R * T * (cPrime(T) + b*b)
}

func dCwww(T float64) float64 {
	b := bPrime(T)
	return R*T*R*T*(dCPrime(T)+2*b*dBPrime(T)) + 2*R*R*T*(cPrime(T)+b*b)
}

// mixtureB is Bm = xa²·Baa + 2·xa·xv·Baw + xv²·Bww.
func mixtureB(T, xv float64) float64 {
	xa := 1.0 - xv
	return xa*xa*baa(T) + 2*xa*xv*baw(T) + xv*xv*bww(T)
}

func mixtureDB(T, xv float64) float64 {
	xa := 1.0 - xv
	return xa*xa*dBaa(T) + 2*xa*xv*dBaw(T) + xv*xv*dBww(T)
}

// mixtureC is Cm = xa³·Caaa + 3·xa²·xv·Caaw + 3·xa·xv²·Caww + xv³·Cwww.
func mixtureC(T, xv float64) float64 {
	xa := 1.0 - xv
	return xa*xa*xa*caaa(T) + 3*xa*xa*xv*caaw(T) + 3*xa*xv*xv*caww(T) + xv*xv*xv*cwww(T)
}

func mixtureDC(T, xv float64) float64 {
	xa := 1.0 - xv
	return xa*xa*xa*dCaaa(T) + 3*xa*xa*xv*dCaaw(T) + 3*xa*xv*xv*dCaww(T) + xv*xv*xv*dCwww(T)
}

// virialMolarVolume solves P·v/(R·T) = 1 + b/v + c/v² for the molar volume v
// by fixed-point iteration from the ideal gas volume. It returns the last
// iterate and false if |Δv| did not drop below tol within maxIter steps.
func virialMolarVolume(T, P, b, c float64, maxIter int, tol float64) (float64, bool) {
	vi := R * T / P
	v := vi
	for iter := 0; iter < maxIter; iter++ {
		next := vi * (1 + b/v + c/(v*v))
		delta := math.Abs(next - v)
		v = next
		if delta < tol {
			return v, true
		}
	}
	return v, false
}

// residualEnthalpy is the real gas correction R·T·((B − T·B')/v + (C − T·C'/2)/v²)
// in J/kmol for molar volume v.
func residualEnthalpy(T, v, b, db, c, dc float64) float64 {
	return R * T * ((b-T*db)/v + (c-0.5*T*dc)/(v*v))
}
