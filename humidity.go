// Copyright (C) 2021-2026, Benjamin Drung <bdrung@posteo.de>
// SPDX-License-Identifier: ISC

package main

import "github.com/bdrung/prometheus-psychro-exporter/psychro"

// MoistAir holds the properties derived from one temperature, humidity and
// pressure reading, in the units the exporter publishes.
type MoistAir struct {
	AbsoluteHumidity float64 // g/m³
	DewPointC        float64 // NaN for bone dry air
	WetBulbC         float64
	HumidityRatio    float64 // g/kg dry air
	Enthalpy         float64 // kJ/kg dry air
	Density          float64 // kg/m³
	SpecificVolume   float64 // m³/kg dry air
	MoleFraction     float64
	Compressibility  float64
	ErrorCode        psychro.ErrorCode
}

// DeriveMoistAir resolves the sample from a temperature in Celsius, a
// relative humidity in percent and a pressure in Pascal. The error code of
// model is cleared first, so ErrorCode only reflects this reading.
func DeriveMoistAir(
	model *psychro.Model,
	temperatureCelsius float64,
	relativeHumidity float64,
	pressure float64,
) MoistAir {
	T := temperatureCelsius + psychro.ZeroCelsius
	model.ClearError()
	model.Set(T, psychro.RelativeHumidity, relativeHumidity/100, pressure)

	// The absolute humidity is the vapor mass per volume:
	// humidity ratio (kg vapor / kg dry air) / specific volume (m³ / kg dry air)
	volume := model.Volume(T, pressure)
	air := MoistAir{
		AbsoluteHumidity: 1000 * model.HumRat() / volume,
		DewPointC:        model.DewPoint(T, pressure) - psychro.ZeroCelsius,
		WetBulbC:         model.WetBulb(T, pressure) - psychro.ZeroCelsius,
		HumidityRatio:    1000 * model.HumRat(),
		Enthalpy:         model.Enthalpy(T, pressure) / 1000,
		Density:          model.Density(T, pressure),
		SpecificVolume:   volume,
		MoleFraction:     model.MolFrac(),
		Compressibility:  model.Compressibility(T, pressure),
	}
	air.ErrorCode = model.ErrorCode()
	return air
}

// Relative2AbsoluteHumidity calculates the absolute humidity in g/m³ for a given
// relative humidity in percent and temperature in Celsius.
//
// It uses the ideal gas model at standard pressure. For ideal gases the result
// does not depend on the pressure:
// absoluteHumidity = relativehumidity * saturationVaporPressureWater * molarMassWater / (R * temperatureKelvin)
func Relative2AbsoluteHumidity(relativeHumidity float64, temperatureCelsius float64) float64 {
	model := psychro.New(psychro.IdealGas{})
	return DeriveMoistAir(model, temperatureCelsius, relativeHumidity, psychro.StandardPressure).AbsoluteHumidity
}
