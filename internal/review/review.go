// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package review is the human-in-the-loop correction layer: reviewers
// confirm or override parsed entries before the GWP calculation consumes
// them. All transitions are user-triggered, idempotent, and reversible.
package review

import (
	"fmt"

	"github.com/pdiddy/gwp-engine/internal/catalog"
	"github.com/pdiddy/gwp-engine/internal/parse"
	"github.com/pdiddy/gwp-engine/internal/taxonomy"
	"github.com/pdiddy/gwp-engine/pkg/types"
)

// Override carries the reviewer's corrections for one entry. Nil fields
// are left untouched.
type Override struct {
	// Material replaces the matched material. Setting it also lifts
	// the entry's confidence to the exact-match tier, since a human
	// picked it.
	Material *types.Material

	// CategoryCode reassigns the life-cycle category by short code.
	CategoryCode *string

	// QuantityKg replaces the quantity. Must be non-negative.
	QuantityKg *float64
}

// Validate marks an entry as reviewer-confirmed. Re-validating a
// validated entry is a no-op.
func Validate(doc *types.ParsedDocument, index int) error {
	if err := checkIndex(doc, index); err != nil {
		return err
	}
	doc.Materials[index].Validated = true
	return nil
}

// Unvalidate reverses a validation.
func Unvalidate(doc *types.ParsedDocument, index int) error {
	if err := checkIndex(doc, index); err != nil {
		return err
	}
	doc.Materials[index].Validated = false
	return nil
}

// Apply applies an override to one entry, marks it user-modified, and
// recomputes the document's totals and category breakdown.
func Apply(doc *types.ParsedDocument, index int, o Override) error {
	if err := checkIndex(doc, index); err != nil {
		return err
	}
	e := &doc.Materials[index]

	if o.QuantityKg != nil {
		if *o.QuantityKg < 0 {
			return fmt.Errorf("quantity must be non-negative, got %v", *o.QuantityKg)
		}
		e.QuantityKg = *o.QuantityKg
	}

	if o.Material != nil {
		e.Material = o.Material
		e.Confidence = catalog.ConfidenceExactName
	}

	if o.CategoryCode != nil {
		cat := taxonomy.ByCode(*o.CategoryCode)
		if cat == nil {
			return fmt.Errorf("unknown category code %q", *o.CategoryCode)
		}
		e.Category = cat
		e.CategoryConfidence = catalog.ConfidenceExactName
	}

	e.UserModified = true
	parse.Finalize(doc)
	return nil
}

// Handoff freezes the documents for calculation: totals and breakdowns
// are recomputed from whatever values are current, mirroring the parse
// stage's aggregation rules. Returns the documents ready for the GWP
// calculator.
func Handoff(docs []types.ParsedDocument) []types.ParsedDocument {
	for i := range docs {
		parse.Finalize(&docs[i])
	}
	return docs
}

func checkIndex(doc *types.ParsedDocument, index int) error {
	if index < 0 || index >= len(doc.Materials) {
		return fmt.Errorf("entry %d out of range (document has %d entries)", index, len(doc.Materials))
	}
	return nil
}
