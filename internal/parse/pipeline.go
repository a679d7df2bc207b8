// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/gwp-engine/internal/extract"
	"github.com/pdiddy/gwp-engine/pkg/types"
)

const parsedDir = "parsed"

// Summary holds counts from a batch ingest run.
type Summary struct {
	Parsed int
	Failed int
}

// Total returns the number of files processed.
func (s Summary) Total() int {
	return s.Parsed + s.Failed
}

// HasFailures reports whether any files failed.
func (s Summary) HasFailures() bool {
	return s.Failed > 0
}

// IngestFiles extracts and parses each input file, writing one parsed
// document YAML per file under analysisDir/parsed/. A failing file is
// reported and does not abort its siblings. Zero recognized materials is
// a valid outcome, reported distinctly from a failure.
func (p *Parser) IngestFiles(ctx context.Context, paths []string, analysisDir string, w io.Writer) (Summary, error) {
	outDir := filepath.Join(analysisDir, parsedDir)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return Summary{}, fmt.Errorf("creating output directory: %w", err)
	}

	var summary Summary

	for _, path := range paths {
		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		name := filepath.Base(path)

		text, err := extract.File(path)
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", name, err)
			summary.Failed++
			continue
		}

		doc, err := p.Parse(ctx, name, text)
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", name, err)
			summary.Failed++
			continue
		}

		if err := SaveDocument(outDir, doc); err != nil {
			fmt.Fprintf(w, "failed  %s: write error: %v\n", name, err)
			summary.Failed++
			continue
		}

		unidentified := 0
		for _, e := range doc.Materials {
			if e.Material == nil {
				unidentified++
			}
		}
		fmt.Fprintf(w, "parsed  %s (%d entries, %.0f kg, %d unidentified)\n",
			name, len(doc.Materials), doc.TotalWeightKg, unidentified)
		summary.Parsed++
	}

	fmt.Fprintf(w, "\nparsed: %d, failed: %d\n", summary.Parsed, summary.Failed)
	return summary, nil
}

// docFileName derives the parsed-artifact name from the source file name.
func docFileName(fileName string) string {
	base := strings.TrimSuffix(fileName, filepath.Ext(fileName))
	return base + ".yaml"
}

// SaveDocument writes a parsed document to dir as YAML.
func SaveDocument(dir string, doc *types.ParsedDocument) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshaling document: %w", err)
	}
	return os.WriteFile(filepath.Join(dir, docFileName(doc.FileName)), data, 0o644)
}

// LoadDocument reads one parsed document by its source file name.
func LoadDocument(analysisDir, fileName string) (*types.ParsedDocument, error) {
	path := filepath.Join(analysisDir, parsedDir, docFileName(fileName))
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading parsed document: %w", err)
	}
	var doc types.ParsedDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &doc, nil
}

// SaveParsed rewrites a parsed document under analysisDir/parsed/.
func SaveParsed(analysisDir string, doc *types.ParsedDocument) error {
	return SaveDocument(filepath.Join(analysisDir, parsedDir), doc)
}

// LoadDocuments reads every parsed document under analysisDir/parsed/,
// in file-name order so merges are deterministic.
func LoadDocuments(analysisDir string) ([]types.ParsedDocument, error) {
	dir := filepath.Join(analysisDir, parsedDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading parsed directory %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	var docs []types.ParsedDocument
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		var doc types.ParsedDocument
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}
