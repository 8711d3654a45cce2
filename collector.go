// Copyright (C) 2021-2026, Benjamin Drung <bdrung@posteo.de>
// SPDX-License-Identifier: ISC

package main

import (
	"sync"

	"github.com/bdrung/prometheus-psychro-exporter/psychro"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

type sensorCollector struct {
	Sensor Sensor

	Up              *prometheus.Desc
	TemperatureC    *prometheus.Desc
	HumidityRH      *prometheus.Desc
	HumidityGram    *prometheus.Desc
	PressurePa      *prometheus.Desc
	DewPointC       *prometheus.Desc
	WetBulbC        *prometheus.Desc
	HumidityRatio   *prometheus.Desc
	Enthalpy        *prometheus.Desc
	Density         *prometheus.Desc
	SpecificVolume  *prometheus.Desc
	MoleFraction    *prometheus.Desc
	Compressibility *prometheus.Desc
	PsychroError    *prometheus.Desc
	RawTemperatureC *prometheus.Desc
	RawHumidityRH   *prometheus.Desc
	RawHumidityGram *prometheus.Desc

	TempOffset     float64
	HumidityOffset float64
	Pressure       float64 // Pa, used when the sensor reports none

	// Scrapes may run concurrently, a Model may not.
	mutex sync.Mutex
	model *psychro.Model
}

func NewSensorCollector(
	s Sensor,
	f psychro.Formulation,
	pressure float64,
	tempOffset float64,
	humidityOffset float64,
) *sensorCollector {
	labels := s.Labels()
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(name, help, nil, labels)
	}
	// Only the psychrometric gauges depend on the model.
	psychroLabels := s.Labels()
	psychroLabels["psychro"] = f.Name()
	psychroDesc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(name, help, nil, psychroLabels)
	}
	return &sensorCollector{
		Sensor: s,
		Up: desc(
			"sensor_up",
			"Value is 1 if reading sensor date was successful, 0 otherwise.",
		),
		TemperatureC: desc("sensor_temperature_celsius", "Temperature in Celsius"),
		HumidityRH:   desc("sensor_humidity_percent", "Relative humidity in percent"),
		HumidityGram: desc(
			"sensor_humidity_grams_per_cubic_meter",
			"Absolute humidity in gram / cubic meter",
		),
		PressurePa:    desc("sensor_pressure_pascals", "Barometric pressure in Pascal"),
		DewPointC:     psychroDesc("sensor_dew_point_celsius", "Dew-point temperature in Celsius"),
		WetBulbC:      psychroDesc("sensor_wet_bulb_celsius", "Thermodynamic wet-bulb temperature in Celsius"),
		HumidityRatio: psychroDesc(
			"sensor_humidity_ratio_grams_per_kilogram",
			"Mass of water vapor per mass of dry air in gram / kilogram",
		),
		Enthalpy: psychroDesc(
			"sensor_enthalpy_kilojoules_per_kilogram",
			"Specific enthalpy of the moist air in kilojoule / kilogram dry air",
		),
		Density: psychroDesc(
			"sensor_density_kilograms_per_cubic_meter",
			"Density of the moist air in kilogram / cubic meter",
		),
		SpecificVolume: psychroDesc(
			"sensor_specific_volume_cubic_meters_per_kilogram",
			"Volume of the moist air in cubic meter / kilogram dry air",
		),
		MoleFraction: psychroDesc("sensor_vapor_mole_fraction", "Mole fraction of water vapor"),
		Compressibility: psychroDesc(
			"sensor_compressibility_factor",
			"Compressibility factor Z of the moist air",
		),
		PsychroError: psychroDesc(
			"sensor_psychro_error_code",
			"Psychrometric error code of the last evaluation, 0 if everything was in range.",
		),
		RawTemperatureC: desc("sensor_raw_temperature_celsius", "Uncorrected temperature in Celsius"),
		RawHumidityRH: desc(
			"sensor_raw_humidity_percent",
			"Uncorrected relative humidity in percent",
		),
		RawHumidityGram: desc(
			"sensor_raw_humidity_grams_per_cubic_meter",
			"Uncorrected absolute humidity in gram / cubic meter",
		),
		TempOffset:     tempOffset,
		HumidityOffset: humidityOffset,
		Pressure:       pressure,
		model:          psychro.New(f),
	}
}

func gauge(ch chan<- prometheus.Metric, desc *prometheus.Desc, value float64) {
	ch <- prometheus.MustNewConstMetric(desc, prometheus.GaugeValue, value)
}

// derive evaluates both the corrected and the raw readings with the
// collector's model.
func (collector *sensorCollector) derive(temperature, humidity, pressure float64) (MoistAir, MoistAir) {
	collector.mutex.Lock()
	defer collector.mutex.Unlock()
	air := DeriveMoistAir(
		collector.model,
		temperature+collector.TempOffset,
		humidity+collector.HumidityOffset,
		pressure,
	)
	raw := DeriveMoistAir(collector.model, temperature, humidity, pressure)
	return air, raw
}

func (collector *sensorCollector) Collect(ch chan<- prometheus.Metric) {
	readings, err := collector.Sensor.Poll()
	if err != nil {
		logrus.Print(err)
		gauge(ch, collector.Up, 0.0)
	} else {
		gauge(ch, collector.Up, 1)
	}
	if readings.temperature != nil {
		gauge(ch, collector.TemperatureC, *readings.temperature+collector.TempOffset)
		gauge(ch, collector.RawTemperatureC, *readings.temperature)
	}
	pressure := collector.Pressure
	if readings.pressure != nil {
		pressure = *readings.pressure
		gauge(ch, collector.PressurePa, pressure)
	}
	if readings.humidity == nil {
		return
	}
	gauge(ch, collector.HumidityRH, *readings.humidity+collector.HumidityOffset)
	gauge(ch, collector.RawHumidityRH, *readings.humidity)
	if readings.temperature == nil {
		return
	}

	air, raw := collector.derive(*readings.temperature, *readings.humidity, pressure)
	if air.ErrorCode != psychro.OK {
		lg.Infof("Psychrometric evaluation of %v: %v", collector.Sensor.Labels(), air.ErrorCode)
	}
	gauge(ch, collector.HumidityGram, round64(air.AbsoluteHumidity, 2))
	gauge(ch, collector.RawHumidityGram, round64(raw.AbsoluteHumidity, 2))
	gauge(ch, collector.DewPointC, round64(air.DewPointC, 2))
	gauge(ch, collector.WetBulbC, round64(air.WetBulbC, 2))
	gauge(ch, collector.HumidityRatio, round64(air.HumidityRatio, 3))
	gauge(ch, collector.Enthalpy, round64(air.Enthalpy, 3))
	gauge(ch, collector.Density, round64(air.Density, 5))
	gauge(ch, collector.SpecificVolume, round64(air.SpecificVolume, 5))
	gauge(ch, collector.MoleFraction, round64(air.MoleFraction, 6))
	gauge(ch, collector.Compressibility, round64(air.Compressibility, 6))
	gauge(ch, collector.PsychroError, float64(air.ErrorCode))
}

func (collector *sensorCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.TemperatureC
	ch <- collector.HumidityRH
	ch <- collector.HumidityGram
	ch <- collector.Up
	ch <- collector.PressurePa
	ch <- collector.DewPointC
	ch <- collector.WetBulbC
	ch <- collector.HumidityRatio
	ch <- collector.Enthalpy
	ch <- collector.Density
	ch <- collector.SpecificVolume
	ch <- collector.MoleFraction
	ch <- collector.Compressibility
	ch <- collector.PsychroError
	ch <- collector.RawTemperatureC
	ch <- collector.RawHumidityRH
	ch <- collector.RawHumidityGram
}
