// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package parse turns extracted document text into structured material
// entries. It scans line by line, tracking the category header currently
// in effect, and matches material lines against the catalog and the
// life-cycle taxonomy.
package parse

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/pdiddy/gwp-engine/internal/catalog"
	"github.com/pdiddy/gwp-engine/internal/taxonomy"
	"github.com/pdiddy/gwp-engine/internal/units"
	"github.com/pdiddy/gwp-engine/pkg/types"
)

// headerCategoryConfidence is attached to entries that inherited their
// category from a recognized header line.
const headerCategoryConfidence = 0.9

// suggestedCategoryConfidence is attached when the category came from the
// coarser material-name heuristic instead of a header.
const suggestedCategoryConfidence = 0.5

var (
	// codeHeaderRe recognizes headers like "HS – Hull" or "PA - Paint".
	codeHeaderRe = regexp.MustCompile(`(?i)^(HS|MP|SS|SE|IS|DE|PA)\s*[-–—]\s*\S.*$`)

	// materialColonRe matches "<name>: <number> [unit]".
	materialColonRe = regexp.MustCompile(`(?i)^(.+?):\s*(\d+(?:[.,]\d+)*)\s*(kg|tonnes|tonne|tons|ton|t)?\s*$`)

	// materialSpaceRe matches "<name> <number> [unit]".
	materialSpaceRe = regexp.MustCompile(`(?i)^(.+?)\s+(\d+(?:[.,]\d+)*)\s*(kg|tonnes|tonne|tons|ton|t)?\s*$`)

	// nameCleanRe keeps word characters, parentheses, and hyphens.
	nameCleanRe = regexp.MustCompile(`[^\w\s()\-]`)

	// spaceCollapseRe folds whitespace runs.
	spaceCollapseRe = regexp.MustCompile(`\s+`)

	// groupedNumberRe recognizes thousands grouping like "2,000" or
	// "1,234,567.8", where the commas are separators, not decimals.
	groupedNumberRe = regexp.MustCompile(`^\d{1,3}(,\d{3})+(\.\d+)?$`)
)

// tableHeaderKeywords flag a digit-free line as a table header to skip.
var tableHeaderKeywords = []string{
	"material", "weight", "unit", "component", "description", "quantity", "item",
}

// Parser builds ParsedDocuments against a materials catalog.
type Parser struct {
	catalog *catalog.Catalog
}

// New returns a Parser using the given catalog.
func New(c *catalog.Catalog) *Parser {
	return &Parser{catalog: c}
}

// Parse scans extracted text and assembles a ParsedDocument. Lines that
// fit no recognized pattern are skipped silently; only a catalog failure
// is an error.
func (p *Parser) Parse(ctx context.Context, fileName, text string) (*types.ParsedDocument, error) {
	doc := &types.ParsedDocument{
		FileName: fileName,
		Metadata: types.DocumentMetadata{
			Source:   fileName,
			ParsedAt: time.Now().UTC(),
		},
	}

	lines := strings.Split(text, "\n")
	var currentCategory *types.LifeCycleCategory
	headerSeen := false

	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if len(line) < 3 {
			continue
		}

		if cat := matchCategoryHeader(line); cat != nil {
			currentCategory = cat
			headerSeen = true
			continue
		}

		if isTableHeader(line) {
			continue
		}

		name, quantity, unit, ok := matchMaterialLine(line)
		if !ok {
			continue
		}

		quantityKg := units.ToKilograms(quantity, unit)

		material, err := p.catalog.Find(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("looking up %q: %w", name, err)
		}

		confidence := 0.0
		if material != nil {
			confidence = catalog.Confidence(name, material)
		}

		entry := types.ParsedMaterialEntry{
			RawText:    line,
			Material:   material,
			QuantityKg: quantityKg,
			Confidence: confidence,
			LineNumber: i + 1,
			Context:    contextWindow(lines, i),
		}
		if currentCategory != nil {
			entry.Category = currentCategory
			entry.CategoryConfidence = headerCategoryConfidence
		}

		doc.Materials = append(doc.Materials, entry)
	}

	// Documents without any category header fall back to the coarser
	// per-material suggestion heuristic.
	if !headerSeen {
		for i := range doc.Materials {
			m := doc.Materials[i].Material
			if m == nil {
				continue
			}
			if cat := taxonomy.SuggestForMaterial(m.Name, m.Category); cat != nil {
				doc.Materials[i].Category = cat
				doc.Materials[i].CategoryConfidence = suggestedCategoryConfidence
			}
		}
	}

	Finalize(doc)
	return doc, nil
}

// matchCategoryHeader recognizes the two header families: a short code
// followed by a dash ("HS – Hull"), or an exact full category name.
func matchCategoryHeader(line string) *types.LifeCycleCategory {
	if m := codeHeaderRe.FindStringSubmatch(line); m != nil {
		return taxonomy.ByCode(m[1])
	}
	for _, c := range taxonomy.All() {
		if strings.EqualFold(line, c.Name) {
			cat := c
			return &cat
		}
	}
	return nil
}

// isTableHeader reports whether the line names table columns: it contains
// a header keyword and no digit.
func isTableHeader(line string) bool {
	for _, r := range line {
		if unicode.IsDigit(r) {
			return false
		}
	}
	lower := strings.ToLower(line)
	for _, kw := range tableHeaderKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// matchMaterialLine tries the two entry patterns and returns the cleaned
// name, the parsed quantity, and the normalized unit. A missing unit
// token defaults to tonnes. Returns ok=false when the line fits neither
// pattern or the quantity is not a positive finite number.
func matchMaterialLine(line string) (string, float64, units.Unit, bool) {
	m := materialColonRe.FindStringSubmatch(line)
	if m == nil {
		m = materialSpaceRe.FindStringSubmatch(line)
	}
	if m == nil {
		return "", 0, "", false
	}

	name := cleanName(m[1])
	if name == "" {
		return "", 0, "", false
	}

	quantity, err := parseQuantity(m[2])
	if err != nil || quantity <= 0 || math.IsInf(quantity, 0) || math.IsNaN(quantity) {
		return "", 0, "", false
	}

	unit := units.Tonne
	if m[3] != "" {
		unit = units.Normalize(m[3])
	}
	return name, quantity, unit, true
}

// cleanName strips everything but word characters, parentheses, and
// hyphens, then collapses whitespace.
func cleanName(raw string) string {
	cleaned := nameCleanRe.ReplaceAllString(raw, "")
	cleaned = spaceCollapseRe.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}

// parseQuantity reads a number written with either decimal separator.
// Comma-grouped figures like "2,000" are thousands, not decimals.
func parseQuantity(s string) (float64, error) {
	if groupedNumberRe.MatchString(s) {
		s = strings.ReplaceAll(s, ",", "")
	} else {
		s = strings.ReplaceAll(s, ",", ".")
	}
	return strconv.ParseFloat(s, 64)
}

// contextWindow joins the two lines before through the two lines after
// position i, for audit display.
func contextWindow(lines []string, i int) string {
	start := i - 2
	if start < 0 {
		start = 0
	}
	end := i + 3
	if end > len(lines) {
		end = len(lines)
	}
	parts := make([]string, 0, end-start)
	for _, l := range lines[start:end] {
		parts = append(parts, strings.TrimSpace(l))
	}
	return strings.Join(parts, " | ")
}

// Finalize recomputes the document's total weight and per-category
// breakdown from its entries. Called after parsing and again after any
// entry edit; the total always equals the sum of entry quantities.
func Finalize(doc *types.ParsedDocument) {
	total := 0.0
	for _, e := range doc.Materials {
		total += e.QuantityKg
	}
	doc.TotalWeightKg = total

	doc.Breakdown = nil
	for _, cat := range taxonomy.All() {
		var (
			weight  float64
			members []int
		)
		for i, e := range doc.Materials {
			if e.Category != nil && e.Category.ID == cat.ID {
				weight += e.QuantityKg
				members = append(members, i)
			}
		}
		if len(members) > 0 {
			doc.Breakdown = append(doc.Breakdown, types.CategoryBreakdown{
				Category: cat,
				WeightKg: weight,
				Entries:  members,
			})
		}
	}
}
