// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the gwp-engine CLI.
// See docs/ARCHITECTURE § Pipeline Interface, § Project Structure.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/gwp-engine/internal/catalog"
	"github.com/pdiddy/gwp-engine/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the gwp-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "gwp-engine",
	Short: "Bill-of-materials ingestion and GWP emissions analysis",
	Long: `gwp-engine processes vessel bill-of-materials documents: it extracts
material line items from uploaded files, matches them against a materials
catalog, classifies them into PCR life-cycle categories, and computes Global
Warming Potential emissions estimates with benchmark comparisons.

Each pipeline stage is a subcommand: ingest, catalog, review, and analyze.
The surrounding web application composes these through the library packages;
the CLI exposes the same pipeline for scripting and inspection.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./gwp-engine.yaml or ~/.config/gwp-engine/config.yaml)")
	rootCmd.PersistentFlags().String("catalog-dir", "", "directory holding materials.db (default: catalog)")
	rootCmd.PersistentFlags().String("analysis-dir", "", "base directory for analysis artifacts (default: analysis)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("gwp-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "gwp-engine"))
		}
	}

	viper.SetEnvPrefix("GWP_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// engineConfig resolves configuration from flags, config file, and
// defaults, in that order.
func engineConfig(cmd *cobra.Command) types.EngineConfig {
	cfg := types.EngineConfig{
		Catalog: types.CatalogConfig{
			CatalogDir: viper.GetString("catalog.catalog_dir"),
			CacheTTL:   viper.GetDuration("catalog.cache_ttl"),
		},
		Analysis: types.AnalysisConfig{
			AnalysisDir:  viper.GetString("analysis.analysis_dir"),
			Displacement: viper.GetFloat64("analysis.displacement"),
		},
	}

	if v, _ := cmd.Flags().GetString("catalog-dir"); v != "" {
		cfg.Catalog.CatalogDir = v
	}
	if v, _ := cmd.Flags().GetString("analysis-dir"); v != "" {
		cfg.Analysis.AnalysisDir = v
	}

	if cfg.Catalog.CatalogDir == "" {
		cfg.Catalog.CatalogDir = "catalog"
	}
	if cfg.Catalog.CacheTTL <= 0 {
		cfg.Catalog.CacheTTL = 5 * time.Minute
	}
	if cfg.Analysis.AnalysisDir == "" {
		cfg.Analysis.AnalysisDir = "analysis"
	}
	return cfg
}

// openCatalog builds the catalog over its SQLite store. Callers own the
// returned store and must Close it.
func openCatalog(cfg types.EngineConfig) (*catalog.Catalog, *catalog.Store, error) {
	store, err := catalog.NewStore(cfg.Catalog)
	if err != nil {
		return nil, nil, err
	}
	return catalog.New(store, cfg.Catalog), store, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
