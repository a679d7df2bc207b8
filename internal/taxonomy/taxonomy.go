// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package taxonomy holds the fixed seven-category PCR life-cycle taxonomy
// and classifies free text into it by keyword matching.
package taxonomy

import (
	"strings"

	"github.com/pdiddy/gwp-engine/pkg/types"
)

// categories is the taxonomy in declaration order. Classification scans it
// front to back and the first match wins, so the order is part of the
// contract, not an implementation detail.
var categories = []types.LifeCycleCategory{
	{
		ID:          "hull_structures",
		Code:        "HS",
		Name:        "Hull and Structures",
		Description: "Hull plating, decks, bulkheads and primary structural members.",
		Examples: []string{
			"hull", "steel plate", "deck", "superstructure", "bulkhead",
			"frame", "keel", "stainless steel", "aluminium", "grp",
		},
	},
	{
		ID:          "machinery_propulsion",
		Code:        "MP",
		Name:        "Machinery and Propulsion",
		Description: "Main and auxiliary engines, gearboxes, shafting and propellers.",
		Examples: []string{
			"engine", "propeller", "gearbox", "shaft", "thruster",
			"diesel", "generator",
		},
	},
	{
		ID:          "ship_systems",
		Code:        "SS",
		Name:        "Ship Systems",
		Description: "Piping, pumps, ballast, ventilation and other distributed systems.",
		Examples: []string{
			"piping", "pump", "valve", "ballast", "hvac", "ventilation",
			"hydraulic", "freshwater",
		},
	},
	{
		ID:          "ship_electrical",
		Code:        "SE",
		Name:        "Ship Electrical Systems and Electronics",
		Description: "Cabling, switchboards, navigation and communication electronics.",
		Examples: []string{
			"cable", "switchboard", "navigation", "radar", "battery",
			"transformer", "lighting",
		},
	},
	{
		ID:          "insulation_fitting",
		Code:        "IS",
		Name:        "Insulation and Fitting Structures",
		Description: "Thermal and acoustic insulation, linings, joinery and outfitting.",
		Examples: []string{
			"insulation", "mineral wool", "lining", "joinery",
			"furniture", "cladding",
		},
	},
	{
		ID:          "deck_equipment",
		Code:        "DE",
		Name:        "Deck Machinery and Equipment",
		Description: "Winches, cranes, anchoring and mooring equipment.",
		Examples: []string{
			"winch", "crane", "anchor", "windlass", "davit", "mooring",
			"capstan",
		},
	},
	{
		ID:          "paintings",
		Code:        "PA",
		Name:        "Paintings",
		Description: "Paints, coatings and surface protection systems.",
		Examples: []string{
			"paint", "coating", "antifouling", "primer", "varnish",
			"epoxy",
		},
	},
}

// All returns the taxonomy in declaration order.
func All() []types.LifeCycleCategory {
	return categories
}

// ByCode returns the category with the given short code (case-insensitive),
// or nil when the code is unknown.
func ByCode(code string) *types.LifeCycleCategory {
	for i := range categories {
		if strings.EqualFold(categories[i].Code, code) {
			return &categories[i]
		}
	}
	return nil
}

// Identify classifies free text into a category, or nil when nothing
// matches. First pass: the text contains a category's display name or
// code. Second pass: bidirectional substring test against every example
// phrase, in declaration order, first match wins.
//
// The bidirectional test can match short example phrases against unrelated
// long text; that behavior is kept as-is.
func Identify(text string) *types.LifeCycleCategory {
	lt := strings.ToLower(strings.TrimSpace(text))
	if lt == "" {
		return nil
	}

	for i := range categories {
		if strings.Contains(lt, strings.ToLower(categories[i].Name)) ||
			strings.Contains(lt, strings.ToLower(categories[i].Code)) {
			return &categories[i]
		}
	}

	for i := range categories {
		for _, ex := range categories[i].Examples {
			le := strings.ToLower(ex)
			if strings.Contains(lt, le) || strings.Contains(le, lt) {
				return &categories[i]
			}
		}
	}

	return nil
}

// suggestGroup pairs a keyword set with the category code it implies.
type suggestGroup struct {
	keywords []string
	code     string
}

// suggestGroups is the ordered keyword heuristic behind SuggestForMaterial.
// Coarser than Identify: used only when the source document carried no
// category header for an entry.
var suggestGroups = []suggestGroup{
	{[]string{"steel", "hull", "plate", "aluminium", "structure", "frame"}, "HS"},
	{[]string{"paint", "coating", "antifouling", "primer", "varnish"}, "PA"},
	{[]string{"cable", "electric", "electronic", "battery", "switchboard"}, "SE"},
	{[]string{"engine", "propeller", "propulsion", "gearbox", "shaft"}, "MP"},
	{[]string{"insulation", "wool", "lining", "joinery", "fitting"}, "IS"},
	{[]string{"winch", "crane", "anchor", "mooring", "deck equipment"}, "DE"},
	{[]string{"pipe", "pump", "valve", "ballast", "system"}, "SS"},
}

// SuggestForMaterial classifies a material by combining its name and
// free-text category label and testing the result against an ordered list
// of keyword groups. First group with any keyword present wins; returns
// nil when nothing matches.
func SuggestForMaterial(name, categoryLabel string) *types.LifeCycleCategory {
	combined := strings.ToLower(name + " " + categoryLabel)
	for _, g := range suggestGroups {
		for _, kw := range g.keywords {
			if strings.Contains(combined, kw) {
				return ByCode(g.code)
			}
		}
	}
	return nil
}

// MaterialKeywords returns every example phrase across the taxonomy, used
// by the binary-container extractor as its string allowlist.
func MaterialKeywords() []string {
	var out []string
	for _, c := range categories {
		out = append(out, c.Examples...)
	}
	return out
}
