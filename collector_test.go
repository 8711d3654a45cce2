// Copyright (C) 2026, Benjamin Drung <bdrung@posteo.de>
// SPDX-License-Identifier: ISC

package main

import (
	"errors"
	"math"
	"testing"

	"github.com/bdrung/prometheus-psychro-exporter/psychro"
	"github.com/prometheus/client_golang/prometheus"
)

type fakeSensor struct {
	readings Readings
	err      error
}

func (s fakeSensor) Poll() (Readings, error) {
	return s.readings, s.err
}

func (s fakeSensor) Labels() prometheus.Labels {
	return prometheus.Labels{"model": "fake"}
}

func float64ptr(v float64) *float64 {
	return &v
}

// gather collects the collector once and returns the gauge values by name.
func gather(t *testing.T, collector prometheus.Collector) map[string]float64 {
	t.Helper()
	registry := prometheus.NewPedanticRegistry()
	registry.MustRegister(collector)
	families, err := registry.Gather()
	if err != nil {
		t.Fatalf("Gather() unexpected error: %v", err)
	}
	values := make(map[string]float64)
	for _, family := range families {
		values[family.GetName()] = family.GetMetric()[0].GetGauge().GetValue()
	}
	return values
}

func TestCollectorWithPressure(t *testing.T) {
	sensor := fakeSensor{readings: Readings{
		temperature: float64ptr(24.5),
		humidity:    float64ptr(45.0),
		pressure:    float64ptr(psychro.StandardPressure),
	}}
	collector := NewSensorCollector(sensor, psychro.RealGas{}, 90000, 0.5, 5.0)
	values := gather(t, collector)

	tests := []struct {
		name string
		want float64
		tol  float64
	}{
		{"sensor_up", 1, 0},
		{"sensor_temperature_celsius", 25.0, 1e-9},
		{"sensor_raw_temperature_celsius", 24.5, 0},
		{"sensor_humidity_percent", 50.0, 1e-9},
		{"sensor_raw_humidity_percent", 45.0, 0},
		{"sensor_pressure_pascals", psychro.StandardPressure, 0},
		{"sensor_dew_point_celsius", 13.87, 0.005},
		{"sensor_wet_bulb_celsius", 17.88, 0.005},
		{"sensor_humidity_ratio_grams_per_kilogram", 9.924, 0.0005},
		{"sensor_enthalpy_kilojoules_per_kilogram", 50.423, 0.0005},
		{"sensor_density_kilograms_per_cubic_meter", 1.17724, 0.00001},
		{"sensor_humidity_grams_per_cubic_meter", 11.57, 0.005},
		{"sensor_psychro_error_code", 0, 0},
	}
	for _, test := range tests {
		got, ok := values[test.name]
		if !ok {
			t.Errorf("Metric %s is missing.", test.name)
			continue
		}
		if math.Abs(got-test.want) > test.tol {
			t.Errorf("Metric %s was incorrect, got: %f, want: %f.", test.name, got, test.want)
		}
	}
	if values["sensor_raw_humidity_grams_per_cubic_meter"] >= values["sensor_humidity_grams_per_cubic_meter"] {
		t.Errorf("Raw absolute humidity should be below the corrected one: %v", values)
	}
}

func TestCollectorFallbackPressure(t *testing.T) {
	sensor := fakeSensor{readings: Readings{
		temperature: float64ptr(25.0),
		humidity:    float64ptr(50.0),
	}}
	atSea := gather(t, NewSensorCollector(sensor, psychro.RealGas{}, psychro.StandardPressure, 0, 0))
	inMountains := gather(t, NewSensorCollector(sensor, psychro.RealGas{}, 70000, 0, 0))

	if _, ok := atSea["sensor_pressure_pascals"]; ok {
		t.Errorf("Pressure must only be exported when measured.")
	}
	ratio := "sensor_humidity_ratio_grams_per_kilogram"
	if inMountains[ratio] <= atSea[ratio] {
		t.Errorf("Humidity ratio should rise with altitude, got: %f at sea, %f in the mountains.",
			atSea[ratio], inMountains[ratio])
	}
}

func TestCollectorPollFailure(t *testing.T) {
	sensor := fakeSensor{err: errors.New("i2c timeout")}
	values := gather(t, NewSensorCollector(sensor, psychro.IdealGas{}, psychro.StandardPressure, 0, 0))

	if len(values) != 1 || values["sensor_up"] != 0 {
		t.Errorf("Only sensor_up=0 expected, got: %v", values)
	}
}

func TestCollectorReportsErrorCode(t *testing.T) {
	sensor := fakeSensor{readings: Readings{
		temperature: float64ptr(5.0),
		humidity:    float64ptr(50.0),
	}}
	values := gather(t, NewSensorCollector(sensor, psychro.Giacomo{}, psychro.StandardPressure, 0, 0))

	got := values["sensor_psychro_error_code"]
	if got != float64(psychro.ErrTemperatureRange) {
		t.Errorf("Error code was incorrect, got: %f, want: %d.", got, psychro.ErrTemperatureRange)
	}
}

func TestCollectorLabels(t *testing.T) {
	sensor := fakeSensor{readings: Readings{
		temperature: float64ptr(20.0),
		humidity:    float64ptr(50.0),
		pressure:    float64ptr(psychro.StandardPressure),
	}}
	registry := prometheus.NewPedanticRegistry()
	registry.MustRegister(NewSensorCollector(sensor, psychro.Giacomo{}, psychro.StandardPressure, 0, 0))
	families, err := registry.Gather()
	if err != nil {
		t.Fatalf("Gather() unexpected error: %v", err)
	}

	withModel := map[string]bool{
		"sensor_dew_point_celsius":                         true,
		"sensor_wet_bulb_celsius":                          true,
		"sensor_humidity_ratio_grams_per_kilogram":         true,
		"sensor_enthalpy_kilojoules_per_kilogram":          true,
		"sensor_density_kilograms_per_cubic_meter":         true,
		"sensor_specific_volume_cubic_meters_per_kilogram": true,
		"sensor_vapor_mole_fraction":                       true,
		"sensor_compressibility_factor":                    true,
		"sensor_psychro_error_code":                        true,
	}
	for _, family := range families {
		labels := make(map[string]string)
		for _, pair := range family.GetMetric()[0].GetLabel() {
			labels[pair.GetName()] = pair.GetValue()
		}
		if labels["model"] != "fake" {
			t.Errorf("Metric %s lost the sensor labels: %v", family.GetName(), labels)
		}
		model, ok := labels["psychro"]
		if withModel[family.GetName()] {
			if model != "giacomo" {
				t.Errorf("Metric %s should carry psychro=giacomo, got: %v", family.GetName(), labels)
			}
		} else if ok {
			t.Errorf("Metric %s must keep its labels unchanged, got: %v", family.GetName(), labels)
		}
	}
}
