// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package gwp aggregates parsed material entries into Global Warming
// Potential totals, phase breakdowns, and benchmark comparisons. Pure
// computation: no I/O, deterministic for a given input.
package gwp

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/pdiddy/gwp-engine/pkg/types"
)

const (
	// fallbackFactor is the conservative industry-typical emission
	// factor (kg CO2e per kg) applied to unmatched or low-confidence
	// entries.
	fallbackFactor = 2.5

	// confidenceThreshold gates use of a matched material's own factor.
	// Strictly greater-than: an entry at exactly 0.5 takes the fallback.
	confidenceThreshold = 0.5

	// Fixed life-cycle phase split. The three factors sum to 1.0 and
	// must only ever be changed together.
	productionShare = 0.75
	transportShare  = 0.15
	processingShare = 0.10

	// defaultDisplacement is the reference vessel mass in tonnes used
	// when none can be read from document metadata.
	defaultDisplacement = 1800

	// Benchmark tiers in kg CO2e per tonne of displacement.
	bestPracticePerTonne    = 1500
	industryAveragePerTonne = 2500
	regulatoryLimitPerTonne = 3500
)

// displacementRe finds the first numeric token in metadata, accepting
// comma-grouped digits.
var displacementRe = regexp.MustCompile(`\d{1,3}(?:,\d{3})+(?:\.\d+)?|\d+(?:\.\d+)?`)

// Calculate merges the documents' entries in order and computes the full
// GWP result. An empty input is not an error: it yields zero totals and
// an empty result list, with benchmarks still scaled from the fallback
// displacement.
func Calculate(docs []types.ParsedDocument, displacementOverride float64) *types.GWPCalculationResult {
	var entries []types.ParsedMaterialEntry
	totalWeightKg := 0.0
	for _, doc := range docs {
		entries = append(entries, doc.Materials...)
		totalWeightKg += doc.TotalWeightKg
	}

	results := make([]types.EntryResult, 0, len(entries))
	totalGWP := 0.0
	identified := 0

	for _, e := range entries {
		factor := fallbackFactor
		name := ""
		usedCatalog := false
		if e.Material != nil {
			identified++
			name = e.Material.Name
			if e.Confidence > confidenceThreshold {
				factor = e.Material.GWPFactor
				usedCatalog = true
			}
		}

		// Quantity passes through tonnes and back so the factor keeps
		// its per-kg unit semantics.
		emissions := e.QuantityKg / 1000 * factor * 1000
		totalGWP += emissions

		results = append(results, types.EntryResult{
			RawText:      e.RawText,
			MaterialName: name,
			QuantityKg:   e.QuantityKg,
			Factor:       factor,
			EmissionsKg:  emissions,
			Percentage:   0, // filled below once the total is known
			Identified:   usedCatalog,
		})
	}

	for i := range results {
		if totalGWP > 0 {
			results[i].Percentage = results[i].EmissionsKg / totalGWP * 100
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].EmissionsKg > results[j].EmissionsKg
	})

	displacement := displacementOverride
	if displacement <= 0 {
		displacement = scanDisplacement(docs)
	}

	gwpPerTonne := 0.0
	if totalWeightKg > 0 {
		gwpPerTonne = totalGWP / (totalWeightKg / 1000)
	}

	rate := 0.0
	if len(entries) > 0 {
		rate = float64(identified) / float64(len(entries)) * 100
	}

	return &types.GWPCalculationResult{
		TotalGWP:    totalGWP,
		GWPPerTonne: gwpPerTonne,
		Results:     results,
		Phases: types.PhaseBreakdown{
			Production: totalGWP * productionShare,
			Transport:  totalGWP * transportShare,
			Processing: totalGWP * processingShare,
		},
		Benchmarks: types.BenchmarkSet{
			DisplacementTonnes: displacement,
			BestPractice:       displacement * bestPracticePerTonne,
			IndustryAverage:    displacement * industryAveragePerTonne,
			RegulatoryLimit:    displacement * regulatoryLimitPerTonne,
		},
		Stats: types.IdentificationStats{
			Identified:    identified,
			Unidentified:  len(entries) - identified,
			TotalWeightKg: totalWeightKg,
			Rate:          rate,
		},
		ComputedAt: time.Now().UTC(),
	}
}

// scanDisplacement reads the reference vessel mass from document metadata:
// the first numeric token found, comma grouping stripped. Falls back to
// the default when absent or unparseable.
func scanDisplacement(docs []types.ParsedDocument) float64 {
	for _, doc := range docs {
		token := displacementRe.FindString(doc.Metadata.Source)
		if token == "" {
			continue
		}
		token = strings.ReplaceAll(token, ",", "")
		if v, err := strconv.ParseFloat(token, 64); err == nil && v > 0 {
			return v
		}
	}
	return defaultDisplacement
}
