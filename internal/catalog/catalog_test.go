package catalog

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/gwp-engine/pkg/types"
)

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	store, err := NewStore(types.CatalogConfig{CatalogDir: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return New(store, types.CatalogConfig{})
}

func seed(t *testing.T, c *Catalog, materials ...types.Material) {
	t.Helper()
	for _, m := range materials {
		require.NoError(t, c.Add(context.Background(), m))
	}
}

func sampleMaterials() []types.Material {
	return []types.Material{
		{ID: "m1", Name: "Stainless steel", Aliases: []string{"inox", "SS316"}, Category: "Metals", GWPFactor: 3.5},
		{ID: "m2", Name: "Aluminium", Aliases: []string{"aluminum"}, Category: "Metals", GWPFactor: 8.2},
		{ID: "m3", Name: "Antifouling paint", Aliases: []string{"antifouling"}, Category: "Paintings", GWPFactor: 4.1},
		{ID: "m4", Name: "Mineral wool", Category: "Insulation", GWPFactor: 1.2},
	}
}

func TestFindOrderAndDirection(t *testing.T) {
	c := testCatalog(t)
	seed(t, c, sampleMaterials()...)
	ctx := context.Background()

	tests := []struct {
		name   string
		term   string
		wantID string // "" for no match
	}{
		{"exact name", "Stainless steel", "m1"},
		{"case insensitive", "ALUMINIUM", "m2"},
		{"term inside name", "wool", "m4"},
		{"name inside term", "marine grade aluminium plate", "m2"},
		{"alias match", "inox", "m1"},
		{"no match", "titanium", ""},
		{"blank", "   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Find(ctx, tt.term)
			require.NoError(t, err)
			if tt.wantID == "" {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.wantID, got.ID)
		})
	}
}

// Names are scanned before aliases: a term matching m2's alias and m3's
// name must resolve to m3's name match only if names are checked first
// across the whole catalog.
func TestFindNamesBeforeAliases(t *testing.T) {
	c := testCatalog(t)
	seed(t, c,
		types.Material{ID: "a", Name: "Copper pipe", Aliases: []string{"steel"}, Category: "Metals", GWPFactor: 2},
		types.Material{ID: "b", Name: "Steel plate", Category: "Metals", GWPFactor: 3},
	)

	got, err := c.Find(context.Background(), "steel")
	require.NoError(t, err)
	require.NotNil(t, got)
	// "a" comes first in catalog order but only matches via alias; the
	// name pass runs over the full catalog before aliases are tried.
	assert.Equal(t, "b", got.ID)
}

func TestConfidenceTiers(t *testing.T) {
	m := &types.Material{Name: "Stainless steel", Aliases: []string{"inox"}}

	exactName := Confidence("stainless steel", m)
	exactAlias := Confidence("inox", m)
	partialName := Confidence("stainless", m)
	partialAlias := Confidence("inoxydable", m)
	floor := Confidence("something else", m)

	assert.Equal(t, 1.0, exactName)
	assert.Equal(t, 0.95, exactAlias)
	assert.Equal(t, 0.8, partialName)
	assert.Equal(t, 0.7, partialAlias)
	assert.Equal(t, 0.5, floor)

	// Monotonicity across tiers.
	assert.Greater(t, exactName, exactAlias)
	assert.Greater(t, exactAlias, partialName)
	assert.Greater(t, partialName, partialAlias)
	assert.Greater(t, partialAlias, floor)
}

func TestByCategory(t *testing.T) {
	c := testCatalog(t)
	seed(t, c, sampleMaterials()...)

	metals, err := c.ByCategory(context.Background(), "metals")
	require.NoError(t, err)
	require.Len(t, metals, 2)
	assert.Equal(t, "m1", metals[0].ID)
	assert.Equal(t, "m2", metals[1].ID)
}

func TestCacheExpiry(t *testing.T) {
	c := testCatalog(t)
	seed(t, c, sampleMaterials()[0])
	ctx := context.Background()

	now := time.Now()
	c.now = func() time.Time { return now }

	first, err := c.Materials(ctx)
	require.NoError(t, err)
	require.Len(t, first, 1)

	// Insert behind the cache's back.
	require.NoError(t, c.store.Insert(ctx, sampleMaterials()[1]))

	// Within the window the stale cache is served.
	now = now.Add(time.Minute)
	stale, err := c.Materials(ctx)
	require.NoError(t, err)
	assert.Len(t, stale, 1)

	// Past the window the next read refreshes.
	now = now.Add(5 * time.Minute)
	fresh, err := c.Materials(ctx)
	require.NoError(t, err)
	assert.Len(t, fresh, 2)
}

func TestValidate(t *testing.T) {
	violations := Validate(types.Material{GWPFactor: -1})
	// All constraints reported together, not just the first.
	require.Len(t, violations, 3)

	assert.Empty(t, Validate(types.Material{Name: "x", Category: "y", GWPFactor: 0.1}))
}

func TestAddRejectsInvalid(t *testing.T) {
	c := testCatalog(t)
	err := c.Add(context.Background(), types.Material{ID: "bad"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name is required")
	assert.Contains(t, err.Error(), "gwp_factor must be greater than zero")

	// Nothing reached the store.
	list, err := c.Materials(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestImportBatchSkipsInvalid(t *testing.T) {
	c := testCatalog(t)
	var buf bytes.Buffer

	records := []ImportRecord{
		{Name: "Steel", Category: "Metals", GWP: 2.1},
		{Name: "Aluminium", Category: "Metals", GWP: 8},
		{Name: "Mystery", Category: "Metals", GWP: "not-a-number"},
		{Name: "Copper", Category: "Metals", GWP: "3.9"},
		{Name: "Zinc", Category: "Metals", GWP: 3.4},
	}

	imported, err := c.ImportBatch(context.Background(), records, &buf)
	require.NoError(t, err)
	assert.Equal(t, 4, imported)
	assert.Contains(t, buf.String(), "not-a-number")

	list, err := c.Materials(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 4)
	for _, m := range list {
		assert.NotEmpty(t, m.ID, "imported records get synthetic ids")
	}
}

func TestImportYAML(t *testing.T) {
	c := testCatalog(t)
	var buf bytes.Buffer

	data := []byte(`
- name: Steel
  category: Metals
  gwp_factor: 2.1
  aliases: [mild steel]
- name: Broken
  category: Metals
  gwp_factor: oops
`)
	imported, err := c.ImportYAML(context.Background(), data, &buf)
	require.NoError(t, err)
	assert.Equal(t, 1, imported)
}

func TestUpdateAndRemove(t *testing.T) {
	c := testCatalog(t)
	seed(t, c, sampleMaterials()[0])
	ctx := context.Background()

	updated := sampleMaterials()[0]
	updated.GWPFactor = 4.0
	require.NoError(t, c.Update(ctx, "m1", updated))

	got, err := c.Find(ctx, "stainless steel")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 4.0, got.GWPFactor)

	require.NoError(t, c.Remove(ctx, "m1"))
	assert.Error(t, c.Remove(ctx, "m1"), "removing a missing id errors")

	list, err := c.Materials(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
