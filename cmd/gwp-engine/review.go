// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/gwp-engine/internal/parse"
	"github.com/pdiddy/gwp-engine/internal/review"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Confirm or correct parsed entries before analysis",
	Long: `Review operates on the parsed documents under analysis/parsed/. Entries
can be validated (reviewer-confirmed), unvalidated, or overridden with a
corrected material, category, or quantity. Overrides mark the entry as
user-modified and recompute the document's totals and breakdown.`,
}

// --- status ---

var reviewStatusCmd = &cobra.Command{
	Use:   "status [file]",
	Short: "List a document's entries with their review flags",
	Args:  cobra.ExactArgs(1),
	RunE:  runReviewStatus,
}

func runReviewStatus(cmd *cobra.Command, args []string) error {
	cfg := engineConfig(cmd)

	doc, err := parse.LoadDocument(cfg.Analysis.AnalysisDir, args[0])
	if err != nil {
		return err
	}

	fmt.Printf("%s: %d entries, %.0f kg\n\n", doc.FileName, len(doc.Materials), doc.TotalWeightKg)
	fmt.Printf("%3s  %-30s  %-22s  %10s  %5s  %s\n", "#", "Raw", "Material", "Weight", "Conf", "Flags")
	fmt.Println(strings.Repeat("-", 90))
	for i, e := range doc.Materials {
		material := "-"
		if e.Material != nil {
			material = e.Material.Name
		}
		raw := e.RawText
		if len(raw) > 30 {
			raw = raw[:27] + "..."
		}
		var flags []string
		if e.Validated {
			flags = append(flags, "validated")
		}
		if e.UserModified {
			flags = append(flags, "modified")
		}
		fmt.Printf("%3d  %-30s  %-22s  %8.0fkg  %5.2f  %s\n",
			i, raw, material, e.QuantityKg, e.Confidence, strings.Join(flags, ","))
	}
	return nil
}

// --- validate / unvalidate ---

var reviewValidateCmd = &cobra.Command{
	Use:   "validate [file] [entry]",
	Short: "Mark an entry as reviewer-confirmed",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setValidated(cmd, args, true)
	},
}

var reviewUnvalidateCmd = &cobra.Command{
	Use:   "unvalidate [file] [entry]",
	Short: "Reverse a validation",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setValidated(cmd, args, false)
	},
}

func setValidated(cmd *cobra.Command, args []string, validated bool) error {
	cfg := engineConfig(cmd)

	index, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("entry index must be a number, got %q", args[1])
	}

	doc, err := parse.LoadDocument(cfg.Analysis.AnalysisDir, args[0])
	if err != nil {
		return err
	}

	if validated {
		err = review.Validate(doc, index)
	} else {
		err = review.Unvalidate(doc, index)
	}
	if err != nil {
		return err
	}

	if err := parse.SaveParsed(cfg.Analysis.AnalysisDir, doc); err != nil {
		return err
	}
	state := "validated"
	if !validated {
		state = "unvalidated"
	}
	fmt.Printf("Entry %d of %s %s\n", index, doc.FileName, state)
	return nil
}

// --- override ---

var reviewOverrideCmd = &cobra.Command{
	Use:   "override [file] [entry]",
	Short: "Correct an entry's material, category, or quantity",
	Long: `Override applies reviewer corrections to one parsed entry. A material
given by name is resolved against the catalog and lifts the entry to exact
confidence; a category is given by short code (HS, MP, SS, SE, IS, DE, PA).
The document's totals and breakdown are recomputed before saving.`,
	Args: cobra.ExactArgs(2),
	RunE: runReviewOverride,
}

func runReviewOverride(cmd *cobra.Command, args []string) error {
	cfg := engineConfig(cmd)

	index, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("entry index must be a number, got %q", args[1])
	}

	doc, err := parse.LoadDocument(cfg.Analysis.AnalysisDir, args[0])
	if err != nil {
		return err
	}

	var o review.Override

	if cmd.Flags().Changed("material") {
		name, _ := cmd.Flags().GetString("material")
		cat, store, err := openCatalog(cfg)
		if err != nil {
			return err
		}
		m, err := cat.Find(context.Background(), name)
		store.Close()
		if err != nil {
			return err
		}
		if m == nil {
			return fmt.Errorf("no catalog material matches %q", name)
		}
		o.Material = m
	}
	if cmd.Flags().Changed("category") {
		code, _ := cmd.Flags().GetString("category")
		o.CategoryCode = &code
	}
	if cmd.Flags().Changed("quantity") {
		qty, _ := cmd.Flags().GetFloat64("quantity")
		o.QuantityKg = &qty
	}

	if o.Material == nil && o.CategoryCode == nil && o.QuantityKg == nil {
		return fmt.Errorf("nothing to override: pass --material, --category, or --quantity")
	}

	if err := review.Apply(doc, index, o); err != nil {
		return err
	}
	if err := parse.SaveParsed(cfg.Analysis.AnalysisDir, doc); err != nil {
		return err
	}

	fmt.Printf("Entry %d of %s updated (total now %.0f kg)\n", index, doc.FileName, doc.TotalWeightKg)
	return nil
}

func init() {
	reviewOverrideCmd.Flags().String("material", "", "catalog material name to assign")
	reviewOverrideCmd.Flags().String("category", "", "life-cycle category short code")
	reviewOverrideCmd.Flags().Float64("quantity", 0, "corrected quantity in kg")

	reviewCmd.AddCommand(reviewStatusCmd)
	reviewCmd.AddCommand(reviewValidateCmd)
	reviewCmd.AddCommand(reviewUnvalidateCmd)
	reviewCmd.AddCommand(reviewOverrideCmd)

	rootCmd.AddCommand(reviewCmd)
}
