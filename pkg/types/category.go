// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// LifeCycleCategory is one entry of the fixed seven-category PCR taxonomy.
// The taxonomy is immutable reference data; classification scans it in
// declaration order, so it is always handled as an ordered list.
type LifeCycleCategory struct {
	// ID is the stable taxonomy identifier (e.g. "hull_structures").
	ID string `json:"id" yaml:"id"`

	// Code is the two-letter short code (e.g. "HS").
	Code string `json:"code" yaml:"code"`

	// Name is the display name (e.g. "Hull and Structures").
	Name string `json:"name" yaml:"name"`

	// Description explains what the category covers.
	Description string `json:"description" yaml:"description"`

	// Examples lists keyword and example phrases used for matching
	// free text against this category.
	Examples []string `json:"examples" yaml:"examples"`
}
