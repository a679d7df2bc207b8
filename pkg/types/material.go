// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the gwp-engine pipeline.
// See docs/ARCHITECTURE.md § Pipeline Interface, § Data Structures.
package types

// Material is one entry in the materials catalog. Catalog order is
// significant: lookups are first-match-wins linear scans, so the catalog
// preserves insertion order.
type Material struct {
	// ID is a unique identifier. Batch imports assign a synthetic UUID
	// when the source record carries none.
	ID string `json:"id" yaml:"id"`

	// Name is the canonical material name (e.g. "Stainless steel").
	Name string `json:"name" yaml:"name"`

	// Aliases lists alternate names and spellings matched during lookup.
	Aliases []string `json:"aliases,omitempty" yaml:"aliases,omitempty"`

	// Category is a free-text grouping label (e.g. "Metals"). Distinct
	// from the fixed life-cycle taxonomy.
	Category string `json:"category" yaml:"category"`

	// GWPFactor is the emission factor in kg CO2-equivalent per kg of
	// material. Must be greater than zero for a valid record.
	GWPFactor float64 `json:"gwp_factor" yaml:"gwp_factor"`

	// Unit is the unit of measure the factor was published against.
	Unit string `json:"unit,omitempty" yaml:"unit,omitempty"`

	// Density in kg/m3, when known.
	Density float64 `json:"density,omitempty" yaml:"density,omitempty"`

	// Description is free-text documentation for the record.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}
