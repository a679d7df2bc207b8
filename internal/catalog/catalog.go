// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/pdiddy/gwp-engine/pkg/types"
)

const defaultCacheTTL = 5 * time.Minute

// Confidence tiers for material matching.
const (
	ConfidenceExactName    = 1.0
	ConfidenceExactAlias   = 0.95
	ConfidencePartialName  = 0.8
	ConfidencePartialAlias = 0.7
	ConfidenceFloor        = 0.5
)

// Catalog wraps a Store with a time-expiring read cache. Readers never
// block on a refresh: a reader that finds the cache expired fetches a new
// list and swaps it in whole, while concurrent readers keep seeing the
// previous version. Mutations invalidate the cache only after the store
// accepted them.
type Catalog struct {
	store *Store
	ttl   time.Duration

	// now is the clock, overridable in tests.
	now func() time.Time

	mu        sync.RWMutex
	cached    []types.Material
	fetchedAt time.Time
}

// New builds a Catalog over the given store. A zero CacheTTL uses the
// 5-minute default.
func New(store *Store, cfg types.CatalogConfig) *Catalog {
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &Catalog{
		store: store,
		ttl:   ttl,
		now:   time.Now,
	}
}

// Materials returns the cached catalog list, refreshing it from the store
// when the cache window has expired.
func (c *Catalog) Materials(ctx context.Context) ([]types.Material, error) {
	c.mu.RLock()
	fresh := !c.fetchedAt.IsZero() && c.now().Sub(c.fetchedAt) < c.ttl
	cached := c.cached
	c.mu.RUnlock()

	if fresh {
		return cached, nil
	}
	return c.Refresh(ctx)
}

// Refresh fetches the catalog from the store and replaces the cache whole,
// so no reader ever observes a half-populated list.
func (c *Catalog) Refresh(ctx context.Context) ([]types.Material, error) {
	list, err := c.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("refreshing catalog cache: %w", err)
	}

	c.mu.Lock()
	c.cached = list
	c.fetchedAt = c.now()
	c.mu.Unlock()

	return list, nil
}

// invalidate forces the next read to refresh.
func (c *Catalog) invalidate() {
	c.mu.Lock()
	c.fetchedAt = time.Time{}
	c.mu.Unlock()
}

// Find looks up a material by case-insensitive substring match: first
// across canonical names, then across every alias. The first match in
// catalog order wins; this is first-match, not best-match, so catalog
// order is load-bearing.
func (c *Catalog) Find(ctx context.Context, searchTerm string) (*types.Material, error) {
	term := strings.ToLower(strings.TrimSpace(searchTerm))
	if term == "" {
		return nil, nil
	}

	materials, err := c.Materials(ctx)
	if err != nil {
		return nil, err
	}

	for i := range materials {
		name := strings.ToLower(materials[i].Name)
		if strings.Contains(name, term) || strings.Contains(term, name) {
			return &materials[i], nil
		}
	}

	for i := range materials {
		for _, alias := range materials[i].Aliases {
			la := strings.ToLower(alias)
			if strings.Contains(la, term) || strings.Contains(term, la) {
				return &materials[i], nil
			}
		}
	}

	return nil, nil
}

// Confidence scores how well searchTerm matches an already-found material.
// Tiers: exact name 1.0, exact alias 0.95, partial name 0.8, partial alias
// 0.7, floor 0.5 (the caller already knows some relation exists).
func Confidence(searchTerm string, m *types.Material) float64 {
	term := strings.ToLower(strings.TrimSpace(searchTerm))
	name := strings.ToLower(m.Name)

	if term == name {
		return ConfidenceExactName
	}
	for _, alias := range m.Aliases {
		if term == strings.ToLower(alias) {
			return ConfidenceExactAlias
		}
	}
	if strings.Contains(name, term) || strings.Contains(term, name) {
		return ConfidencePartialName
	}
	for _, alias := range m.Aliases {
		la := strings.ToLower(alias)
		if strings.Contains(la, term) || strings.Contains(term, la) {
			return ConfidencePartialAlias
		}
	}
	return ConfidenceFloor
}

// ByCategory returns every material whose free-text category label equals
// the given label, case-insensitively.
func (c *Catalog) ByCategory(ctx context.Context, categoryLabel string) ([]types.Material, error) {
	materials, err := c.Materials(ctx)
	if err != nil {
		return nil, err
	}

	var out []types.Material
	for _, m := range materials {
		if strings.EqualFold(m.Category, categoryLabel) {
			out = append(out, m)
		}
	}
	return out, nil
}

// Add validates a material and inserts it into the store. Every violated
// constraint is reported together, not just the first. The cache is left
// unchanged when the store rejects the insert.
func (c *Catalog) Add(ctx context.Context, m types.Material) error {
	if violations := Validate(m); len(violations) > 0 {
		return fmt.Errorf("invalid material: %s", strings.Join(violations, "; "))
	}
	if err := c.store.Insert(ctx, m); err != nil {
		return err
	}
	c.invalidate()
	return nil
}

// Update validates and replaces the record with the given id.
func (c *Catalog) Update(ctx context.Context, id string, m types.Material) error {
	if violations := Validate(m); len(violations) > 0 {
		return fmt.Errorf("invalid material: %s", strings.Join(violations, "; "))
	}
	if err := c.store.Update(ctx, id, m); err != nil {
		return err
	}
	c.invalidate()
	return nil
}

// Remove deletes the record with the given id.
func (c *Catalog) Remove(ctx context.Context, id string) error {
	if err := c.store.Delete(ctx, id); err != nil {
		return err
	}
	c.invalidate()
	return nil
}

// ClearAll deletes every record.
func (c *Catalog) ClearAll(ctx context.Context) error {
	if err := c.store.DeleteAll(ctx); err != nil {
		return err
	}
	c.invalidate()
	return nil
}

// Validate checks the constraints for a catalog record and returns every
// violation. An empty slice means the record is valid.
func Validate(m types.Material) []string {
	var violations []string
	if strings.TrimSpace(m.Name) == "" {
		violations = append(violations, "name is required")
	}
	if strings.TrimSpace(m.Category) == "" {
		violations = append(violations, "category is required")
	}
	if m.GWPFactor <= 0 {
		violations = append(violations, "gwp_factor must be greater than zero")
	}
	return violations
}
