package review

import (
	"testing"

	"github.com/pdiddy/gwp-engine/internal/parse"
	"github.com/pdiddy/gwp-engine/pkg/types"
)

func testDoc() *types.ParsedDocument {
	doc := &types.ParsedDocument{
		FileName: "bom.txt",
		Materials: []types.ParsedMaterialEntry{
			{RawText: "Stainless steel 2 t", QuantityKg: 2000, Confidence: 0.8},
			{RawText: "Unknown 1 t", QuantityKg: 1000},
		},
	}
	parse.Finalize(doc)
	return doc
}

func TestValidateIdempotentAndReversible(t *testing.T) {
	doc := testDoc()

	if err := Validate(doc, 0); err != nil {
		t.Fatal(err)
	}
	if !doc.Materials[0].Validated {
		t.Error("entry not validated")
	}

	// Idempotent.
	if err := Validate(doc, 0); err != nil {
		t.Fatal(err)
	}
	if !doc.Materials[0].Validated {
		t.Error("re-validation flipped the flag")
	}

	// Reversible.
	if err := Unvalidate(doc, 0); err != nil {
		t.Fatal(err)
	}
	if doc.Materials[0].Validated {
		t.Error("entry still validated after unvalidate")
	}

	if err := Validate(doc, 5); err == nil {
		t.Error("out-of-range index accepted")
	}
}

func TestApplyQuantityRecomputesTotals(t *testing.T) {
	doc := testDoc()

	q := 5000.0
	if err := Apply(doc, 0, Override{QuantityKg: &q}); err != nil {
		t.Fatal(err)
	}
	if !doc.Materials[0].UserModified {
		t.Error("UserModified not set")
	}
	if doc.TotalWeightKg != 6000 {
		t.Errorf("TotalWeightKg = %v, want 6000 after override", doc.TotalWeightKg)
	}

	bad := -1.0
	if err := Apply(doc, 0, Override{QuantityKg: &bad}); err == nil {
		t.Error("negative quantity accepted")
	}
}

func TestApplyMaterialAndCategory(t *testing.T) {
	doc := testDoc()

	m := &types.Material{ID: "m9", Name: "Aluminium", Category: "Metals", GWPFactor: 8.2}
	code := "HS"
	if err := Apply(doc, 1, Override{Material: m, CategoryCode: &code}); err != nil {
		t.Fatal(err)
	}

	e := doc.Materials[1]
	if e.Material == nil || e.Material.ID != "m9" {
		t.Errorf("Material = %+v, want m9", e.Material)
	}
	if e.Confidence != 1.0 {
		t.Errorf("Confidence = %v, want 1.0 after manual assignment", e.Confidence)
	}
	if e.Category == nil || e.Category.Code != "HS" {
		t.Errorf("Category = %+v, want HS", e.Category)
	}

	// Breakdown now includes the overridden entry.
	if len(doc.Breakdown) != 1 || doc.Breakdown[0].WeightKg != 1000 {
		t.Errorf("Breakdown = %+v", doc.Breakdown)
	}

	unknown := "ZZ"
	if err := Apply(doc, 1, Override{CategoryCode: &unknown}); err == nil {
		t.Error("unknown category code accepted")
	}
}

func TestHandoffRecomputes(t *testing.T) {
	doc := testDoc()
	// Simulate a stale total after an out-of-band edit.
	doc.Materials[0].QuantityKg = 4000
	doc.TotalWeightKg = 123

	docs := Handoff([]types.ParsedDocument{*doc})
	if docs[0].TotalWeightKg != 5000 {
		t.Errorf("TotalWeightKg = %v, want 5000 after handoff", docs[0].TotalWeightKg)
	}
}
