// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/gwp-engine/pkg/types"
)

// ImportRecord is one loosely-typed candidate row from an import file.
// GWP is deliberately untyped so a non-numeric factor fails only its own
// record, never the whole batch.
type ImportRecord struct {
	ID          string   `json:"id,omitempty" yaml:"id,omitempty"`
	Name        string   `json:"name" yaml:"name"`
	Aliases     []string `json:"aliases,omitempty" yaml:"aliases,omitempty"`
	Category    string   `json:"category" yaml:"category"`
	GWP         any      `json:"gwp_factor" yaml:"gwp_factor"`
	Unit        string   `json:"unit,omitempty" yaml:"unit,omitempty"`
	Density     float64  `json:"density,omitempty" yaml:"density,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
}

// ImportBatch validates each record minimally (name, category, numeric
// positive GWP factor) and inserts the valid ones. Invalid records are
// skipped with a note to w; the batch never aborts. Records without an id
// get a synthetic UUID. Returns the count of successfully imported records.
func (c *Catalog) ImportBatch(ctx context.Context, records []ImportRecord, w io.Writer) (int, error) {
	imported := 0
	for i, rec := range records {
		m, err := rec.toMaterial()
		if err != nil {
			fmt.Fprintf(w, "skipped record %d (%s): %v\n", i+1, rec.Name, err)
			continue
		}
		if err := c.store.Insert(ctx, m); err != nil {
			fmt.Fprintf(w, "skipped record %d (%s): %v\n", i+1, rec.Name, err)
			continue
		}
		imported++
	}
	if imported > 0 {
		c.invalidate()
	}
	return imported, nil
}

// ImportYAML decodes a YAML list of records and imports them.
func (c *Catalog) ImportYAML(ctx context.Context, data []byte, w io.Writer) (int, error) {
	var records []ImportRecord
	if err := yaml.Unmarshal(data, &records); err != nil {
		return 0, fmt.Errorf("parsing import file: %w", err)
	}
	return c.ImportBatch(ctx, records, w)
}

// toMaterial validates an import record and converts it to a Material.
func (r ImportRecord) toMaterial() (types.Material, error) {
	factor, err := coerceFactor(r.GWP)
	if err != nil {
		return types.Material{}, err
	}

	m := types.Material{
		ID:          r.ID,
		Name:        r.Name,
		Aliases:     r.Aliases,
		Category:    r.Category,
		GWPFactor:   factor,
		Unit:        r.Unit,
		Density:     r.Density,
		Description: r.Description,
	}
	if violations := Validate(m); len(violations) > 0 {
		return types.Material{}, fmt.Errorf("%s", strings.Join(violations, "; "))
	}
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return m, nil
}

// coerceFactor accepts the numeric shapes YAML and JSON decoders produce,
// plus numeric strings.
func coerceFactor(v any) (float64, error) {
	switch f := v.(type) {
	case float64:
		return f, nil
	case int:
		return float64(f), nil
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return 0, fmt.Errorf("gwp_factor %q is not numeric", f)
		}
		return parsed, nil
	case nil:
		return 0, fmt.Errorf("gwp_factor is required")
	default:
		return 0, fmt.Errorf("gwp_factor has unsupported type %T", v)
	}
}

// ExportYAML marshals the full catalog to YAML.
func (c *Catalog) ExportYAML(ctx context.Context) ([]byte, error) {
	materials, err := c.Materials(ctx)
	if err != nil {
		return nil, err
	}
	data, err := yaml.Marshal(materials)
	if err != nil {
		return nil, fmt.Errorf("marshaling YAML: %w", err)
	}
	return data, nil
}

// ExportJSON marshals the full catalog to indented JSON.
func (c *Catalog) ExportJSON(ctx context.Context) ([]byte, error) {
	materials, err := c.Materials(ctx)
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(materials, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return data, nil
}
