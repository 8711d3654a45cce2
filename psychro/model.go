// Copyright (C) 2026, Benjamin Drung <bdrung@posteo.de>
// SPDX-License-Identifier: ISC

package psychro

import "fmt"

// Model is one air sample evaluated with one Formulation. Set fixes the
// composition; the property methods evaluate it at any temperature and
// pressure.
//
// A Model is not safe for concurrent use. Separate Models are independent.
type Model struct {
	Diagnostics

	f      Formulation
	limits Limits

	tRef float64 // dry-bulb temperature given to Set, K
	xv   float64 // vapor mole fraction
	w    float64 // humidity ratio, kg/kg
	m    float64 // molar mass of the mixture, kg/kmol
}

// New returns a Model for dry air using formulation f.
func New(f Formulation) *Model {
	return &Model{f: f, limits: f.Limits(), m: Ma}
}

// Formulation returns the formulation the model was created with.
func (m *Model) Formulation() Formulation { return m.f }

// Limits returns the validity range of the model.
func (m *Model) Limits() Limits { return m.limits }

func (m *Model) checkRange(T, P float64) {
	if code := m.limits.CheckT(T); code != OK {
		m.Raise(code)
	}
	if code := m.limits.CheckP(P); code != OK {
		m.Raise(code)
	}
}

func (m *Model) setMolFrac(xv float64) {
	m.xv = xv
	m.w = humRatFromMolFrac(xv)
	m.m = xv*Mv + (1.0-xv)*Ma
}

func (m *Model) setHumRat(w float64) {
	m.w = w
	m.xv = molFracFromHumRat(w)
	m.m = m.xv*Mv + (1.0-m.xv)*Ma
}

// saturationMolFrac is the vapor mole fraction of saturated air at T and P.
func (m *Model) saturationMolFrac(T, P float64) float64 {
	return m.f.EFactor(T, P) * m.f.Pws(T) / P
}

// Set resolves the composition of the sample at dry-bulb temperature T and
// pressure P from a humidity value given as spec. Relative humidity is a
// fraction (1 is saturated); wet-bulb and dew-point temperatures are in K.
//
// Set never fails. Inputs outside the domain raise an error code and are
// either clamped (negative relative humidity, dew point or wet bulb above
// T) or kept as given (mole fraction or humidity ratio above saturation).
func (m *Model) Set(T float64, spec Specifier, value, P float64) {
	m.checkRange(T, P)
	switch spec {
	case MoleFraction:
		m.setMolFrac(value)
		if value < 0.0 || value > m.saturationMolFrac(T, P) {
			m.Raise(ErrMolFracOutOfRange)
		}
	case HumidityRatio:
		m.setHumRat(value)
		if m.xv < 0.0 || m.xv > m.saturationMolFrac(T, P) {
			m.Raise(ErrHumRatOutOfRange)
		}
	case RelativeHumidity:
		if value < 0.0 {
			m.Raise(ErrNegativeRelHum)
			value = 0.0
		}
		m.setMolFrac(value * m.saturationMolFrac(T, P))
	case WetBulb:
		if value > T {
			m.Raise(ErrWetBulbAboveDryBulb)
			value = T
		}
		m.setHumRat(humRatFromWetBulb(m.f, T, value, P, &m.Diagnostics))
	case DewPoint:
		if value > T {
			m.Raise(ErrDewPointAboveDryBulb)
			value = T
		}
		m.setMolFrac(m.saturationMolFrac(value, P))
	default:
		panic(fmt.Sprintf("psychro: unknown humidity specifier %d", int(spec)))
	}
	m.tRef = T
}

// ReferenceTemperature is the dry-bulb temperature of the last Set in K.
func (m *Model) ReferenceTemperature() float64 { return m.tRef }

// HumRat returns the humidity ratio in kg vapor per kg dry air.
func (m *Model) HumRat() float64 { return m.w }

// MolFrac returns the vapor mole fraction.
func (m *Model) MolFrac() float64 { return m.xv }

// MolarMass returns the molar mass of the mixture in kg/kmol.
func (m *Model) MolarMass() float64 { return m.m }

// Pws returns the saturation vapor pressure at T in Pa.
func (m *Model) Pws(T float64) float64 { return m.f.Pws(T) }

// Tws returns the saturation temperature at vapor pressure P in K.
func (m *Model) Tws(P float64) float64 {
	return SaturationTemperature(m.f, P, &m.Diagnostics)
}

// EFactor returns the enhancement factor at T and P.
func (m *Model) EFactor(T, P float64) float64 { return m.f.EFactor(T, P) }

// Z returns the compressibility factor of air with vapor mole fraction xv,
// independent of the sample composition.
func (m *Model) Z(T, P, xv float64) float64 {
	return m.f.Z(T, P, xv, &m.Diagnostics)
}

// Compressibility returns the compressibility factor of the sample at T and P.
func (m *Model) Compressibility(T, P float64) float64 {
	m.checkRange(T, P)
	return m.Z(T, P, m.xv)
}

// molarVolume of the sample in m³/kmol.
func (m *Model) molarVolume(T, P float64) float64 {
	return m.Z(T, P, m.xv) * R * T / P
}

// Enthalpy returns the enthalpy of the sample in J per kg dry air.
func (m *Model) Enthalpy(T, P float64) float64 {
	m.checkRange(T, P)
	return m.f.Enthalpy(T, P, m.xv, &m.Diagnostics) * (1.0 + m.w)
}

// Volume returns the specific volume of the sample in m³ per kg dry air.
func (m *Model) Volume(T, P float64) float64 {
	m.checkRange(T, P)
	return m.molarVolume(T, P) / m.m * (1.0 + m.w)
}

// Density returns the density of the sample in kg/m³.
func (m *Model) Density(T, P float64) float64 {
	m.checkRange(T, P)
	return m.m / m.molarVolume(T, P)
}

// RelHum returns the relative humidity of the sample at T and P as a
// fraction.
func (m *Model) RelHum(T, P float64) float64 {
	m.checkRange(T, P)
	return m.xv * P / (m.f.EFactor(T, P) * m.f.Pws(T))
}

// WetBulb returns the thermodynamic wet-bulb temperature of the sample at T
// and P in K. When Pws(T) exceeds P the search can end on a root above T
// without raising a code.
func (m *Model) WetBulb(T, P float64) float64 {
	m.checkRange(T, P)
	return wetBulbTemperature(m.f, m.w, T, P, &m.Diagnostics)
}

// DewPoint returns the dew-point temperature of the sample at pressure P in
// K. T only takes part in the range check. Dry air has no dew point and
// yields NaN.
func (m *Model) DewPoint(T, P float64) float64 {
	m.checkRange(T, P)
	return dewPointTemperature(m.f, m.xv, P, &m.Diagnostics)
}
