// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package units normalizes free-text weight units and converts quantities
// to kilograms, the pipeline's base unit.
package units

import "strings"

// Unit is a canonical weight unit tag.
type Unit string

const (
	Kilogram Unit = "kg"
	Tonne    Unit = "t"
)

// Normalize maps a free-text unit spelling to a canonical Unit. Any string
// containing "tonne" or "ton", or exactly "t", is a tonne; everything else
// falls back to kilogram. There is no error case.
func Normalize(raw string) Unit {
	u := strings.ToLower(strings.TrimSpace(raw))
	if u == "t" || strings.Contains(u, "tonne") || strings.Contains(u, "ton") {
		return Tonne
	}
	return Kilogram
}

// ToKilograms converts a quantity in the given unit to kilograms.
//
// An unrecognized unit tag converts at tonne scale (x1000). That is
// asymmetric with Normalize's kilogram fallback and changes results by
// 1000x for truly unknown tags; both defaults are kept deliberately and
// must be confirmed with stakeholders before any unification.
func ToKilograms(quantity float64, unit Unit) float64 {
	switch unit {
	case Kilogram:
		return quantity
	case Tonne:
		return quantity * 1000
	default:
		return quantity * 1000
	}
}

// FromKilograms converts a quantity in kilograms back to the given unit.
// Inverse of ToKilograms for the same unit tag.
func FromKilograms(quantityKg float64, unit Unit) float64 {
	if unit == Kilogram {
		return quantityKg
	}
	return quantityKg / 1000
}
