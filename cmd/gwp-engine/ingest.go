// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/gwp-engine/internal/parse"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest [files...]",
	Short: "Extract and parse bill-of-materials documents",
	Long: `Ingest reads each input file, recovers raw text according to its format
(.txt passthrough, .csv semicolon-delimited reconstruction, .xlsx/.xls binary
string recovery, anything else treated as text), parses material line items
against the catalog, and writes one parsed document YAML per file under
analysis/parsed/.

A file that fails extraction is reported as failed and does not abort its
siblings. Zero recognized materials is a valid outcome, not a failure.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runIngest,
}

func runIngest(cmd *cobra.Command, args []string) error {
	cfg := engineConfig(cmd)

	cat, store, err := openCatalog(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	parser := parse.New(cat)
	summary, err := parser.IngestFiles(context.Background(), args, cfg.Analysis.AnalysisDir, os.Stdout)
	if err != nil {
		return err
	}
	if summary.HasFailures() {
		return fmt.Errorf("%d file(s) failed ingestion", summary.Failed)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(ingestCmd)
}
