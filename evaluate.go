// Copyright (C) 2026, Benjamin Drung <bdrung@posteo.de>
// SPDX-License-Identifier: ISC

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bdrung/prometheus-psychro-exporter/psychro"
)

// parseHumidity parses LETTER=value into a specifier and its value in the
// units Set expects. Relative humidity is given in percent, wet bulb and dew
// point in Celsius.
func parseHumidity(text string) (psychro.Specifier, float64, error) {
	key_value := strings.SplitN(text, "=", 2)
	if len(key_value) != 2 {
		return 0, 0, fmt.Errorf("Humidity '%s' is not in the form LETTER=value.", text)
	}
	spec, err := psychro.ParseSpecifier(key_value[0])
	if err != nil {
		return 0, 0, err
	}
	value, err := strconv.ParseFloat(key_value[1], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("Failed to parse humidity '%s': %s", key_value[1], err)
	}
	switch {
	case spec == psychro.RelativeHumidity:
		value /= 100
	case spec.IsTemperature():
		value += psychro.ZeroCelsius
	}
	return spec, value, nil
}

// evaluate resolves one air sample and writes its properties to w.
func evaluate(w io.Writer, f psychro.Formulation, temperatureCelsius float64, humidity string, pressure float64) error {
	spec, value, err := parseHumidity(humidity)
	if err != nil {
		return err
	}
	T := temperatureCelsius + psychro.ZeroCelsius
	model := psychro.New(f)
	model.Set(T, spec, value, pressure)

	rows := []struct {
		name  string
		value float64
		unit  string
	}{
		{"temperature", temperatureCelsius, "°C"},
		{"pressure", pressure, "Pa"},
		{"density", model.Density(T, pressure), "kg/m³"},
		{"volume", model.Volume(T, pressure), "m³/kg dry air"},
		{"enthalpy", model.Enthalpy(T, pressure) / 1000, "kJ/kg dry air"},
		{"wet bulb", model.WetBulb(T, pressure) - psychro.ZeroCelsius, "°C"},
		{"dew point", model.DewPoint(T, pressure) - psychro.ZeroCelsius, "°C"},
		{"relative humidity", 100 * model.RelHum(T, pressure), "%"},
		{"humidity ratio", 1000 * model.HumRat(), "g/kg dry air"},
		{"mole fraction", model.MolFrac(), ""},
		{"compressibility", model.Compressibility(T, pressure), ""},
		{"saturation pressure", model.Pws(T), "Pa"},
		{"enhancement factor", model.EFactor(T, pressure), ""},
	}

	if _, err := fmt.Fprintf(w, "%-20s %s\n", "model", f.Name()); err != nil {
		return err
	}
	for _, row := range rows {
		line := strings.TrimRight(fmt.Sprintf("%-20s %.6g %s", row.name, row.value, row.unit), " ")
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	code := model.ErrorCode()
	_, err = fmt.Fprintf(w, "%-20s %d (%s)\n", "error code", int(code), code)
	return err
}
