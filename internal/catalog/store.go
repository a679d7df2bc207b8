// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog manages the materials catalog: a SQLite-backed store of
// emission-factor records with an in-process read cache and fuzzy lookup.
package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/gwp-engine/pkg/types"
)

const dbFile = "materials.db"

// Store persists catalog records in SQLite. Row order is insertion order
// (rowid), which lookups depend on.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the catalog database at catalogDir/materials.db,
// creating the schema if it does not exist.
func NewStore(cfg types.CatalogConfig) (*Store, error) {
	dir := cfg.CatalogDir
	if dir == "" {
		dir = "catalog"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating catalog directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS materials (
		rowid INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		aliases TEXT,
		category TEXT NOT NULL,
		gwp_factor REAL NOT NULL,
		unit TEXT,
		density REAL,
		description TEXT
	)`)
	if err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// List returns every material in insertion order.
func (s *Store) List(ctx context.Context) ([]types.Material, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, aliases, category, gwp_factor, unit, density, description
		 FROM materials ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("listing materials: %w", err)
	}
	defer rows.Close()

	var out []types.Material
	for rows.Next() {
		var (
			m       types.Material
			aliases sql.NullString
			unit    sql.NullString
			density sql.NullFloat64
			desc    sql.NullString
		)
		if err := rows.Scan(&m.ID, &m.Name, &aliases, &m.Category,
			&m.GWPFactor, &unit, &density, &desc); err != nil {
			return nil, fmt.Errorf("scanning material: %w", err)
		}
		if aliases.Valid && aliases.String != "" {
			if err := json.Unmarshal([]byte(aliases.String), &m.Aliases); err != nil {
				return nil, fmt.Errorf("decoding aliases for %s: %w", m.ID, err)
			}
		}
		m.Unit = unit.String
		m.Density = density.Float64
		m.Description = desc.String
		out = append(out, m)
	}
	return out, rows.Err()
}

// Insert adds one material record.
func (s *Store) Insert(ctx context.Context, m types.Material) error {
	aliasesJSON, _ := json.Marshal(m.Aliases)
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO materials (id, name, aliases, category, gwp_factor, unit, density, description)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.Name, string(aliasesJSON), m.Category,
		m.GWPFactor, m.Unit, m.Density, m.Description)
	if err != nil {
		return fmt.Errorf("inserting material %s: %w", m.ID, err)
	}
	return nil
}

// Update replaces the record with the given id.
func (s *Store) Update(ctx context.Context, id string, m types.Material) error {
	aliasesJSON, _ := json.Marshal(m.Aliases)
	res, err := s.db.ExecContext(ctx,
		`UPDATE materials SET name=?, aliases=?, category=?, gwp_factor=?,
			unit=?, density=?, description=? WHERE id=?`,
		m.Name, string(aliasesJSON), m.Category, m.GWPFactor,
		m.Unit, m.Density, m.Description, id)
	if err != nil {
		return fmt.Errorf("updating material %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating material %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("material %s not found", id)
	}
	return nil
}

// Delete removes the record with the given id.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM materials WHERE id=?`, id)
	if err != nil {
		return fmt.Errorf("deleting material %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting material %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("material %s not found", id)
	}
	return nil
}

// DeleteAll removes every record.
func (s *Store) DeleteAll(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM materials`); err != nil {
		return fmt.Errorf("clearing catalog: %w", err)
	}
	return nil
}
