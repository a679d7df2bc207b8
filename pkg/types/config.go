package types

import "time"

// CatalogConfig holds settings for the materials catalog.
type CatalogConfig struct {
	// CatalogDir is the directory holding materials.db.
	CatalogDir string `json:"catalog_dir" yaml:"catalog_dir"`

	// CacheTTL is how long the in-process read cache stays fresh
	// (default 5 minutes). Readers past the window trigger a lazy
	// refresh; concurrent readers may observe the previous version.
	CacheTTL time.Duration `json:"cache_ttl" yaml:"cache_ttl"`
}

// AnalysisConfig holds settings for document ingestion and GWP analysis.
type AnalysisConfig struct {
	// AnalysisDir is the base directory for analysis artifacts
	// (contains parsed/, reports/).
	AnalysisDir string `json:"analysis_dir" yaml:"analysis_dir"`

	// Displacement overrides the vessel reference mass in tonnes used
	// for benchmark scaling. Zero means scan document metadata and
	// fall back to the default.
	Displacement float64 `json:"displacement,omitempty" yaml:"displacement,omitempty"`
}

// EngineConfig groups all stage configurations for the pipeline.
type EngineConfig struct {
	Catalog  CatalogConfig  `json:"catalog" yaml:"catalog"`
	Analysis AnalysisConfig `json:"analysis" yaml:"analysis"`
}
