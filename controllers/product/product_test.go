package productcontroller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tanjim-alam/homeline-admin-api/models"
)

func TestCatalogKey(t *testing.T) {
	cond, arg := catalogKey("42")
	assert.Equal(t, "id = ?", cond)
	assert.Equal(t, uint64(42), arg)

	// A slug must never be bound against the bigint id column.
	cond, arg = catalogKey("modular-kitchen-pro")
	assert.Equal(t, "slug = ?", cond)
	assert.Equal(t, "modular-kitchen-pro", arg)
}

func TestParseStringList(t *testing.T) {
	list, err := parseStringList(`["L-Shape","U-Shape","Parallel"]`)
	require.NoError(t, err)
	assert.Equal(t, []string{"L-Shape", "U-Shape", "Parallel"}, list)

	list, err = parseStringList("")
	require.NoError(t, err)
	assert.Nil(t, list)

	_, err = parseStringList(`"not-an-array"`)
	assert.Error(t, err)
}

func TestParseVariants(t *testing.T) {
	variants, err := parseVariants(`[{"options":{"material":"plywood","finish":"matte"},"price":185000}]`)
	require.NoError(t, err)
	require.Len(t, variants, 1)
	assert.Equal(t, "plywood", variants[0].Options["material"])
	assert.Equal(t, 185000.0, variants[0].Price)

	_, err = parseVariants(`[{"price":"x"}]`)
	assert.Error(t, err)
}

func TestParseRooms(t *testing.T) {
	rooms, err := parseRooms(`[{"name":"Living Room","items":["TV Unit","False Ceiling"]}]`)
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, "Living Room", rooms[0].Name)
	assert.Len(t, rooms[0].Items, 2)
}

func TestProductFromCells(t *testing.T) {
	id, p, err := productFromCells([]string{"", "Modular Kitchen Pro", "", "kitchen", "3", "L-shape layout", "185000", "220000", "/uploads/products/kitchen.jpg"})
	require.NoError(t, err)
	assert.Zero(t, id, "rows without an id insert")
	assert.Equal(t, "Modular Kitchen Pro", p.Name)
	assert.Equal(t, "modular-kitchen-pro", p.Slug, "slug defaults from the name")
	assert.Equal(t, models.ProductTypeKitchen, p.Type)
	assert.Equal(t, uint(3), p.CategoryID)
	assert.Equal(t, 185000.0, p.BasePrice)
	assert.Equal(t, 220000.0, p.MRP)

	id, p, err = productFromCells([]string{"42", "Sliding Wardrobe", "sliding-wardrobe", "wardrobe", "", "", "95000", "", ""})
	require.NoError(t, err)
	assert.Equal(t, uint(42), id, "rows with an id update")
	assert.Equal(t, models.ProductTypeWardrobe, p.Type)
	assert.Zero(t, p.MRP, "mrp is optional")
}

func TestProductFromCellsRejectsBadRows(t *testing.T) {
	tests := []struct {
		name  string
		cells []string
	}{
		{"missing name", []string{"", "", "", "kitchen", "", "", "1000", "", ""}},
		{"unknown type", []string{"", "Sofa", "", "sofa", "", "", "1000", "", ""}},
		{"non-numeric price", []string{"", "Kitchen", "", "kitchen", "", "", "cheap", "", ""}},
		{"mrp below base", []string{"", "Kitchen", "", "kitchen", "", "", "2000", "1000", ""}},
		{"bad slug", []string{"", "Kitchen", "Has Spaces!", "kitchen", "", "", "1000", "", ""}},
		{"short row", []string{"", "Kitchen"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := productFromCells(tt.cells)
			assert.Error(t, err)
		})
	}
}

func TestValidatePricing(t *testing.T) {
	assert.NoError(t, validatePricing(100, 150))
	assert.NoError(t, validatePricing(100, 0), "mrp is optional")
	assert.NoError(t, validatePricing(0, 0))

	assert.Error(t, validatePricing(-1, 0))
	assert.Error(t, validatePricing(200, 100))
}
