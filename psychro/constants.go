// Copyright (C) 2026, Benjamin Drung <bdrung@posteo.de>
// SPDX-License-Identifier: ISC

package psychro

const (
	Ma = 28.9635     // molar mass of dry air in kg/kmol (Giacomo)
	Mv = 18.01528    // molar mass of water in kg/kmol
	R  = 8314.459848 // molar gas constant in J/(kmol·K)

	ZeroCelsius      = 273.15   // K
	StandardPressure = 101325.0 // Pa

	massRatio = Mv / Ma
)

// humRatFromMolFrac converts a vapor mole fraction to a humidity ratio.
func humRatFromMolFrac(xv float64) float64 {
	return massRatio * xv / (1.0 - xv)
}

// molFracFromHumRat converts a humidity ratio to a vapor mole fraction.
func molFracFromHumRat(w float64) float64 {
	return w / (massRatio + w)
}
