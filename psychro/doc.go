// Copyright (C) 2026, Benjamin Drung <bdrung@posteo.de>
// SPDX-License-Identifier: ISC

// Package psychro computes thermodynamic properties of moist air.
//
// A Model holds the composition of one air sample. Set resolves the
// composition from the dry-bulb temperature, pressure and one humidity
// specifier (mole fraction, humidity ratio, relative humidity, wet-bulb or
// dew-point temperature). The property evaluators then work at any
// temperature and pressure while the composition stays fixed:
//
//	m := psychro.New(psychro.RealGas{})
//	m.Set(298.15, psychro.RelativeHumidity, 0.5, 101325)
//	wetBulb := m.WetBulb(298.15, 101325)
//
// Three formulations are available: IdealGas, RealGas (the Hyland-Wexler
// virial formulation published by ASHRAE) and Giacomo (the explicit
// equations for 60-110 kPa and 15-27 °C used in mass metrology).
//
// All quantities are SI: K, Pa, kg/kg, J/kg, m³/kg.
//
// Numerical problems never abort an evaluation. They are recorded as an
// ErrorCode on the Model, which stays set until ClearError is called.
package psychro
