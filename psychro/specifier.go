// Copyright (C) 2026, Benjamin Drung <bdrung@posteo.de>
// SPDX-License-Identifier: ISC

package psychro

import (
	"fmt"
	"strings"
)

// Specifier selects how the humidity of an air sample is given to Set.
type Specifier int

const (
	MoleFraction     Specifier = iota // vapor mole fraction, mol/mol
	HumidityRatio                     // kg vapor / kg dry air
	RelativeHumidity                  // fraction, 1 is saturated
	WetBulb                           // wet-bulb temperature in K
	DewPoint                          // dew-point temperature in K
)

var specifierNames = []struct {
	letter string
	name   string
}{
	MoleFraction:     {"X", "molfrac"},
	HumidityRatio:    {"W", "humrat"},
	RelativeHumidity: {"R", "relhum"},
	WetBulb:          {"B", "wetbulb"},
	DewPoint:         {"D", "dewpoint"},
}

func (s Specifier) String() string {
	if s < 0 || int(s) >= len(specifierNames) {
		return fmt.Sprintf("Specifier(%d)", int(s))
	}
	return specifierNames[s].name
}

// Letter returns the one letter abbreviation (X, W, R, B or D).
func (s Specifier) Letter() string {
	if s < 0 || int(s) >= len(specifierNames) {
		return "?"
	}
	return specifierNames[s].letter
}

// IsTemperature reports whether the specifier value is a temperature.
func (s Specifier) IsTemperature() bool {
	return s == WetBulb || s == DewPoint
}

// ParseSpecifier accepts a letter (X, W, R, B, D) or a name (molfrac,
// humrat, relhum, wetbulb, dewpoint), case insensitive.
func ParseSpecifier(text string) (Specifier, error) {
	for i, names := range specifierNames {
		if strings.EqualFold(text, names.letter) || strings.EqualFold(text, names.name) {
			return Specifier(i), nil
		}
	}
	return 0, fmt.Errorf("Unknown humidity specifier '%s'", text)
}
