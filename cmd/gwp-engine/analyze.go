// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/gwp-engine/internal/gwp"
	"github.com/pdiddy/gwp-engine/internal/parse"
	"github.com/pdiddy/gwp-engine/internal/review"
	"github.com/pdiddy/gwp-engine/pkg/types"
)

const reportsDir = "reports"

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Compute GWP emissions from the parsed documents",
	Long: `Analyze loads every parsed document under analysis/parsed/, recomputes
totals (picking up any review overrides), merges the material lists, and runs
the GWP calculation: per-entry contributions, phase breakdown, benchmark
comparison, and identification statistics. The report is written to
analysis/reports/ and summarized on stdout.`,
	RunE: runAnalyze,
}

// analysisReport pairs the calculation result with its source documents,
// the payload handed to downstream reporting.
type analysisReport struct {
	Result    *types.GWPCalculationResult `json:"result" yaml:"result"`
	Documents []types.ParsedDocument      `json:"documents" yaml:"documents"`
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg := engineConfig(cmd)

	docs, err := parse.LoadDocuments(cfg.Analysis.AnalysisDir)
	if err != nil {
		return err
	}

	displacement, _ := cmd.Flags().GetFloat64("displacement")
	if displacement <= 0 {
		displacement = cfg.Analysis.Displacement
	}

	docs = review.Handoff(docs)
	result := gwp.Calculate(docs, displacement)

	report := analysisReport{Result: result, Documents: docs}
	format, _ := cmd.Flags().GetString("format")
	path, err := writeReport(cfg.Analysis.AnalysisDir, report, format)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	printSummary(result, len(docs))
	fmt.Printf("\nReport written to %s\n", path)
	return nil
}

func writeReport(analysisDir string, report analysisReport, format string) (string, error) {
	dir := filepath.Join(analysisDir, reportsDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating reports directory: %w", err)
	}

	var (
		data []byte
		name string
		err  error
	)
	switch format {
	case "yaml", "":
		name = "report.yaml"
		data, err = yaml.Marshal(report)
	case "json":
		name = "report.json"
		data, err = json.MarshalIndent(report, "", "  ")
	default:
		return "", fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
	if err != nil {
		return "", fmt.Errorf("marshaling report: %w", err)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

func printSummary(r *types.GWPCalculationResult, docCount int) {
	fmt.Printf("Documents:        %d\n", docCount)
	fmt.Printf("Entries:          %d (%d unidentified)\n",
		r.Stats.Identified+r.Stats.Unidentified, r.Stats.Unidentified)
	fmt.Printf("Total weight:     %.1f t\n", r.Stats.TotalWeightKg/1000)
	fmt.Printf("Total GWP:        %.0f kg CO2e\n", r.TotalGWP)
	fmt.Printf("GWP per tonne:    %.1f kg CO2e/t\n", r.GWPPerTonne)
	fmt.Printf("Identification:   %.1f%%\n", r.Stats.Rate)
	fmt.Printf("Phases:           production %.0f / transport %.0f / processing %.0f\n",
		r.Phases.Production, r.Phases.Transport, r.Phases.Processing)
	fmt.Printf("Benchmarks (at %.0f t displacement):\n", r.Benchmarks.DisplacementTonnes)
	fmt.Printf("  best practice   %.0f\n", r.Benchmarks.BestPractice)
	fmt.Printf("  industry avg    %.0f\n", r.Benchmarks.IndustryAverage)
	fmt.Printf("  regulatory      %.0f\n", r.Benchmarks.RegulatoryLimit)

	if len(r.Results) > 0 {
		fmt.Println("\nTop contributors:")
		limit := 5
		if len(r.Results) < limit {
			limit = len(r.Results)
		}
		for _, res := range r.Results[:limit] {
			name := res.MaterialName
			if name == "" {
				name = res.RawText
			}
			fmt.Printf("  %-40s %10.0f kg CO2e  %5.1f%%\n", name, res.EmissionsKg, res.Percentage)
		}
	}
}

func init() {
	analyzeCmd.Flags().Float64("displacement", 0, "vessel displacement in tonnes for benchmark scaling (0 = scan metadata)")
	analyzeCmd.Flags().String("format", "yaml", "report format: yaml or json")
	analyzeCmd.Flags().Bool("json", false, "print the result as JSON instead of a summary")

	rootCmd.AddCommand(analyzeCmd)
}
