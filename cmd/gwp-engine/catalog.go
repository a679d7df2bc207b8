// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/gwp-engine/internal/catalog"
	"github.com/pdiddy/gwp-engine/pkg/types"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the materials catalog (list, add, import, export)",
	Long: `Catalog manages the SQLite-backed materials catalog the parser matches
line items against. Records carry a canonical name, aliases, a free-text
category label, and a GWP emission factor per kg.`,
}

// --- list ---

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog materials",
	RunE:  runCatalogList,
}

func runCatalogList(cmd *cobra.Command, args []string) error {
	cat, store, err := openCatalog(engineConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	category, _ := cmd.Flags().GetString("category")

	var materials []types.Material
	if category != "" {
		materials, err = cat.ByCategory(context.Background(), category)
	} else {
		materials, err = cat.Materials(context.Background())
	}
	if err != nil {
		return err
	}

	if len(materials) == 0 {
		fmt.Println("Catalog is empty.")
		return nil
	}

	fmt.Printf("%-36s  %-30s  %-15s  %8s\n", "ID", "Name", "Category", "GWP")
	fmt.Println(strings.Repeat("-", 96))
	for _, m := range materials {
		name := m.Name
		if len(m.Aliases) > 0 {
			name = fmt.Sprintf("%s (%s)", m.Name, strings.Join(m.Aliases, ", "))
		}
		if len(name) > 30 {
			name = name[:27] + "..."
		}
		fmt.Printf("%-36s  %-30s  %-15s  %8.2f\n", m.ID, name, m.Category, m.GWPFactor)
	}
	fmt.Printf("\n%d materials\n", len(materials))
	return nil
}

// --- add ---

var catalogAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add one material to the catalog",
	Args:  cobra.ExactArgs(1),
	RunE:  runCatalogAdd,
}

func runCatalogAdd(cmd *cobra.Command, args []string) error {
	cat, store, err := openCatalog(engineConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	id, _ := cmd.Flags().GetString("id")
	aliases, _ := cmd.Flags().GetStringSlice("alias")
	category, _ := cmd.Flags().GetString("category")
	factor, _ := cmd.Flags().GetFloat64("gwp-factor")
	unit, _ := cmd.Flags().GetString("unit")
	density, _ := cmd.Flags().GetFloat64("density")
	description, _ := cmd.Flags().GetString("description")

	m := types.Material{
		ID:          id,
		Name:        args[0],
		Aliases:     aliases,
		Category:    category,
		GWPFactor:   factor,
		Unit:        unit,
		Density:     density,
		Description: description,
	}
	if m.ID == "" {
		// Route through the import path so the record picks up a
		// synthetic id like any batch-imported one.
		n, err := cat.ImportBatch(context.Background(), []catalog.ImportRecord{{
			Name: m.Name, Aliases: m.Aliases, Category: m.Category,
			GWP: m.GWPFactor, Unit: m.Unit, Density: m.Density,
			Description: m.Description,
		}}, os.Stderr)
		if err != nil {
			return err
		}
		if n != 1 {
			return fmt.Errorf("material rejected; see messages above")
		}
	} else if err := cat.Add(context.Background(), m); err != nil {
		return err
	}

	fmt.Printf("Added %s\n", m.Name)
	return nil
}

// --- update ---

var catalogUpdateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Update fields of one material",
	Args:  cobra.ExactArgs(1),
	RunE:  runCatalogUpdate,
}

func runCatalogUpdate(cmd *cobra.Command, args []string) error {
	cat, store, err := openCatalog(engineConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()
	ctx := context.Background()

	materials, err := cat.Materials(ctx)
	if err != nil {
		return err
	}
	var current *types.Material
	for i := range materials {
		if materials[i].ID == args[0] {
			current = &materials[i]
			break
		}
	}
	if current == nil {
		return fmt.Errorf("material %s not found", args[0])
	}

	updated := *current
	if cmd.Flags().Changed("name") {
		updated.Name, _ = cmd.Flags().GetString("name")
	}
	if cmd.Flags().Changed("alias") {
		updated.Aliases, _ = cmd.Flags().GetStringSlice("alias")
	}
	if cmd.Flags().Changed("category") {
		updated.Category, _ = cmd.Flags().GetString("category")
	}
	if cmd.Flags().Changed("gwp-factor") {
		updated.GWPFactor, _ = cmd.Flags().GetFloat64("gwp-factor")
	}
	if cmd.Flags().Changed("unit") {
		updated.Unit, _ = cmd.Flags().GetString("unit")
	}
	if cmd.Flags().Changed("density") {
		updated.Density, _ = cmd.Flags().GetFloat64("density")
	}
	if cmd.Flags().Changed("description") {
		updated.Description, _ = cmd.Flags().GetString("description")
	}

	if err := cat.Update(ctx, args[0], updated); err != nil {
		return err
	}
	fmt.Printf("Updated %s\n", args[0])
	return nil
}

// --- remove / clear ---

var catalogRemoveCmd = &cobra.Command{
	Use:   "remove [id]",
	Short: "Remove one material by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, store, err := openCatalog(engineConfig(cmd))
		if err != nil {
			return err
		}
		defer store.Close()
		if err := cat.Remove(context.Background(), args[0]); err != nil {
			return err
		}
		fmt.Printf("Removed %s\n", args[0])
		return nil
	},
}

var catalogClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every catalog record",
	RunE: func(cmd *cobra.Command, args []string) error {
		confirmed, _ := cmd.Flags().GetBool("yes")
		if !confirmed {
			return fmt.Errorf("refusing to clear the catalog without --yes")
		}
		cat, store, err := openCatalog(engineConfig(cmd))
		if err != nil {
			return err
		}
		defer store.Close()
		if err := cat.ClearAll(context.Background()); err != nil {
			return err
		}
		fmt.Println("Catalog cleared.")
		return nil
	},
}

// --- import / export ---

var catalogImportCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import materials from a YAML file",
	Long: `Import reads a YAML list of material records and inserts the valid ones.
Invalid records (missing name or category, non-numeric or non-positive GWP
factor) are skipped with a note; the batch never aborts. Records without an
id receive a synthetic one.`,
	Args: cobra.ExactArgs(1),
	RunE: runCatalogImport,
}

func runCatalogImport(cmd *cobra.Command, args []string) error {
	cat, store, err := openCatalog(engineConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading import file: %w", err)
	}

	imported, err := cat.ImportYAML(context.Background(), data, os.Stdout)
	if err != nil {
		return err
	}
	fmt.Printf("Imported %d materials\n", imported)
	return nil
}

var catalogExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the catalog to YAML or JSON on stdout",
	RunE:  runCatalogExport,
}

func runCatalogExport(cmd *cobra.Command, args []string) error {
	cat, store, err := openCatalog(engineConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	format, _ := cmd.Flags().GetString("format")
	var data []byte
	switch format {
	case "yaml", "":
		data, err = cat.ExportYAML(context.Background())
	case "json":
		data, err = cat.ExportJSON(context.Background())
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

func init() {
	catalogListCmd.Flags().String("category", "", "filter by free-text category label")

	catalogAddCmd.Flags().String("id", "", "record id (default: synthetic)")
	catalogAddCmd.Flags().StringSlice("alias", nil, "alternate name (repeatable)")
	catalogAddCmd.Flags().String("category", "", "free-text category label")
	catalogAddCmd.Flags().Float64("gwp-factor", 0, "emission factor in kg CO2e per kg")
	catalogAddCmd.Flags().String("unit", "", "unit of measure")
	catalogAddCmd.Flags().Float64("density", 0, "density in kg/m3")
	catalogAddCmd.Flags().String("description", "", "record description")

	catalogUpdateCmd.Flags().String("name", "", "canonical name")
	catalogUpdateCmd.Flags().StringSlice("alias", nil, "alternate name (repeatable, replaces existing)")
	catalogUpdateCmd.Flags().String("category", "", "free-text category label")
	catalogUpdateCmd.Flags().Float64("gwp-factor", 0, "emission factor in kg CO2e per kg")
	catalogUpdateCmd.Flags().String("unit", "", "unit of measure")
	catalogUpdateCmd.Flags().Float64("density", 0, "density in kg/m3")
	catalogUpdateCmd.Flags().String("description", "", "record description")

	catalogClearCmd.Flags().Bool("yes", false, "confirm clearing every record")

	catalogExportCmd.Flags().String("format", "yaml", "export format: yaml or json")

	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogAddCmd)
	catalogCmd.AddCommand(catalogUpdateCmd)
	catalogCmd.AddCommand(catalogRemoveCmd)
	catalogCmd.AddCommand(catalogClearCmd)
	catalogCmd.AddCommand(catalogImportCmd)
	catalogCmd.AddCommand(catalogExportCmd)

	rootCmd.AddCommand(catalogCmd)
}
