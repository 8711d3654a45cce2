// Copyright (C) 2026, Benjamin Drung <bdrung@posteo.de>
// SPDX-License-Identifier: ISC

package psychro

import "fmt"

// ErrorCode is a diagnostic recorded by a Model. Codes below 100 flag inputs
// outside the valid domain; codes from 100 on flag an iteration that hit its
// cap and returned its last iterate.
type ErrorCode int

const (
	OK ErrorCode = 0

	ErrTemperatureRange     ErrorCode = 10
	ErrPressureRange        ErrorCode = 11
	ErrNegativeRelHum       ErrorCode = 12
	ErrDewPointAboveDryBulb ErrorCode = 13
	ErrWetBulbAboveDryBulb  ErrorCode = 14
	ErrHumRatOutOfRange     ErrorCode = 15
	ErrMolFracOutOfRange    ErrorCode = 16

	ErrWetBulbNoConvergence         ErrorCode = 100
	ErrVaporVolumeNoConvergence     ErrorCode = 101
	ErrDryAirVolumeNoConvergence    ErrorCode = 102
	ErrHumRatNoConvergence          ErrorCode = 103
	ErrDewPointNoConvergence        ErrorCode = 105
	ErrSaturationTempNoConvergence  ErrorCode = 106
	ErrCompressibilityNoConvergence ErrorCode = 107
)

var errorCodeText = map[ErrorCode]string{
	OK:                              "ok",
	ErrTemperatureRange:             "temperature outside model range",
	ErrPressureRange:                "pressure outside model range",
	ErrNegativeRelHum:               "negative relative humidity",
	ErrDewPointAboveDryBulb:         "dew point above dry-bulb temperature",
	ErrWetBulbAboveDryBulb:          "wet bulb above dry-bulb temperature",
	ErrHumRatOutOfRange:             "humidity ratio outside [0, saturation]",
	ErrMolFracOutOfRange:            "vapor mole fraction outside [0, saturation]",
	ErrWetBulbNoConvergence:         "wet-bulb temperature did not converge",
	ErrVaporVolumeNoConvergence:     "saturated vapor molar volume did not converge",
	ErrDryAirVolumeNoConvergence:    "dry air molar volume did not converge",
	ErrHumRatNoConvergence:          "humidity ratio from wet bulb did not converge",
	ErrDewPointNoConvergence:        "dew point did not converge",
	ErrSaturationTempNoConvergence:  "saturation temperature did not converge",
	ErrCompressibilityNoConvergence: "compressibility factor did not converge",
}

func (c ErrorCode) String() string {
	if text, ok := errorCodeText[c]; ok {
		return text
	}
	return fmt.Sprintf("unknown error code %d", int(c))
}

func (c ErrorCode) Error() string {
	return fmt.Sprintf("psychro: %s (code %d)", c.String(), int(c))
}

// NoConvergence reports whether c was raised by an iterative solver.
func (c ErrorCode) NoConvergence() bool {
	return c >= 100
}
