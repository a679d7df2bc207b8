// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// EntryResult is the per-entry outcome of a GWP calculation.
type EntryResult struct {
	// RawText is the source line the entry came from.
	RawText string `json:"raw_text" yaml:"raw_text"`

	// MaterialName is the matched catalog name, empty when unidentified.
	MaterialName string `json:"material_name,omitempty" yaml:"material_name,omitempty"`

	// QuantityKg is the entry quantity in kilograms.
	QuantityKg float64 `json:"quantity_kg" yaml:"quantity_kg"`

	// Factor is the emission factor applied (catalog or fallback).
	Factor float64 `json:"factor" yaml:"factor"`

	// EmissionsKg is the contribution in kg CO2-equivalent.
	EmissionsKg float64 `json:"emissions_kg" yaml:"emissions_kg"`

	// Percentage is the contribution's share of the total, in [0,100].
	Percentage float64 `json:"percentage" yaml:"percentage"`

	// Identified reports whether a catalog material backed the factor.
	Identified bool `json:"identified" yaml:"identified"`
}

// PhaseBreakdown splits the total GWP into fixed life-cycle phases. The
// three values always sum to the total.
type PhaseBreakdown struct {
	Production float64 `json:"production" yaml:"production"`
	Transport  float64 `json:"transport" yaml:"transport"`
	Processing float64 `json:"processing" yaml:"processing"`
}

// BenchmarkSet holds industry reference values scaled by the vessel's
// displacement.
type BenchmarkSet struct {
	// DisplacementTonnes is the reference mass the tiers were scaled by.
	DisplacementTonnes float64 `json:"displacement_tonnes" yaml:"displacement_tonnes"`

	BestPractice    float64 `json:"best_practice" yaml:"best_practice"`
	IndustryAverage float64 `json:"industry_average" yaml:"industry_average"`
	RegulatoryLimit float64 `json:"regulatory_limit" yaml:"regulatory_limit"`
}

// IdentificationStats counts how many entries were matched against the
// catalog. "Nothing identified" is a valid outcome, never an error.
type IdentificationStats struct {
	Identified   int `json:"identified" yaml:"identified"`
	Unidentified int `json:"unidentified" yaml:"unidentified"`

	// TotalWeightKg is the combined document weight.
	TotalWeightKg float64 `json:"total_weight_kg" yaml:"total_weight_kg"`

	// Rate is identified/total entries as a percentage, 0 when empty.
	Rate float64 `json:"rate" yaml:"rate"`
}

// GWPCalculationResult is the immutable output of one analysis run.
type GWPCalculationResult struct {
	// TotalGWP is the summed emissions in kg CO2-equivalent.
	TotalGWP float64 `json:"total_gwp" yaml:"total_gwp"`

	// GWPPerTonne is TotalGWP divided by the total mass in tonnes.
	GWPPerTonne float64 `json:"gwp_per_tonne" yaml:"gwp_per_tonne"`

	// Results lists per-entry contributions, sorted descending by
	// emissions (stable; ties keep source order).
	Results []EntryResult `json:"results" yaml:"results"`

	// Phases is the fixed production/transport/processing split.
	Phases PhaseBreakdown `json:"phases" yaml:"phases"`

	// Benchmarks holds the displacement-scaled reference tiers.
	Benchmarks BenchmarkSet `json:"benchmarks" yaml:"benchmarks"`

	// Stats summarizes catalog identification coverage.
	Stats IdentificationStats `json:"stats" yaml:"stats"`

	// ComputedAt is the calculation timestamp.
	ComputedAt time.Time `json:"computed_at" yaml:"computed_at"`
}
