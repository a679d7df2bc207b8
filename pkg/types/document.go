// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// ParsedMaterialEntry is one recognized material line item from a document.
type ParsedMaterialEntry struct {
	// RawText is the original line as it appeared in the source.
	RawText string `json:"raw_text" yaml:"raw_text"`

	// Material is the matched catalog record, or nil when the lookup
	// found nothing. A nil material always carries confidence 0.
	Material *Material `json:"material,omitempty" yaml:"material,omitempty"`

	// QuantityKg is the extracted quantity converted to kilograms.
	// Always non-negative.
	QuantityKg float64 `json:"quantity_kg" yaml:"quantity_kg"`

	// Confidence is the material-match quality in [0,1].
	Confidence float64 `json:"confidence" yaml:"confidence"`

	// LineNumber is the 1-based line number in the extracted text.
	LineNumber int `json:"line_number,omitempty" yaml:"line_number,omitempty"`

	// Context is a window of surrounding lines kept for audit display.
	Context string `json:"context,omitempty" yaml:"context,omitempty"`

	// Category is the assigned life-cycle category, when one was in
	// effect at the point the line was parsed.
	Category *LifeCycleCategory `json:"category,omitempty" yaml:"category,omitempty"`

	// CategoryConfidence is the category-assignment quality in [0,1].
	CategoryConfidence float64 `json:"category_confidence,omitempty" yaml:"category_confidence,omitempty"`

	// Validated records that a reviewer confirmed this entry. Toggling
	// it is idempotent and reversible.
	Validated bool `json:"validated,omitempty" yaml:"validated,omitempty"`

	// UserModified records that a reviewer overrode the material,
	// category, or quantity, independently of Validated.
	UserModified bool `json:"user_modified,omitempty" yaml:"user_modified,omitempty"`
}

// CategoryBreakdown aggregates the entries of one life-cycle category.
type CategoryBreakdown struct {
	// Category is the taxonomy entry this bucket belongs to.
	Category LifeCycleCategory `json:"category" yaml:"category"`

	// WeightKg is the summed quantity of the member entries.
	WeightKg float64 `json:"weight_kg" yaml:"weight_kg"`

	// Entries holds indexes into ParsedDocument.Materials.
	Entries []int `json:"entries" yaml:"entries"`
}

// DocumentMetadata carries provenance for a parsed document.
type DocumentMetadata struct {
	// Source identifies where the document came from, free text. The
	// calculator scans it for a displacement figure.
	Source string `json:"source,omitempty" yaml:"source,omitempty"`

	// ParsedAt is the parse timestamp.
	ParsedAt time.Time `json:"parsed_at" yaml:"parsed_at"`
}

// ParsedDocument is one processed input file. TotalWeightKg always equals
// the sum of the entry quantities; it is recomputed after any entry edit.
type ParsedDocument struct {
	// FileName is the uploaded file's name.
	FileName string `json:"file_name" yaml:"file_name"`

	// Materials lists the recognized entries in source order.
	Materials []ParsedMaterialEntry `json:"materials" yaml:"materials"`

	// TotalWeightKg is the sum of all entry quantities, categorized
	// or not.
	TotalWeightKg float64 `json:"total_weight_kg" yaml:"total_weight_kg"`

	// Breakdown groups categorized entries per life-cycle category, in
	// taxonomy order. Uncategorized entries appear only in Materials.
	Breakdown []CategoryBreakdown `json:"breakdown,omitempty" yaml:"breakdown,omitempty"`

	// Metadata carries provenance.
	Metadata DocumentMetadata `json:"metadata" yaml:"metadata"`
}
