package backup

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hisabkitab/migrate/internal/domain"
)

func TestNewEnvelopeShape(t *testing.T) {
	doc := New("csv_purchase_converter")
	data, err := doc.Marshal()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "1.0.0", decoded["version"])
	assert.Equal(t, "csv_purchase_converter", decoded["export_by"])
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}T`, decoded["export_date"])

	collections, ok := decoded["data"].(map[string]any)
	require.True(t, ok)
	for _, name := range []string{
		"companies", "users", "products", "categories", "sales", "purchases",
		"suppliers", "customers", "sales_persons", "category_commissions",
		"sub_categories", "sales_person_category_assignments", "stock_adjustments",
	} {
		v, present := collections[name]
		require.True(t, present, "collection %s missing", name)
		// Empty collections must serialize as [], never null.
		assert.IsType(t, []any{}, v, "collection %s", name)
	}
	assert.IsType(t, map[string]any{}, collections["settings"])
}

func TestPopulatedCollectionsSubstituted(t *testing.T) {
	doc := New("sql_migration")
	id := 1
	doc.Data.Suppliers = []domain.Supplier{{ID: &id, Name: "V P Traders"}}

	data, err := doc.Marshal()
	require.NoError(t, err)

	var decoded struct {
		Data struct {
			Suppliers []map[string]any `json:"suppliers"`
			Purchases []any            `json:"purchases"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded.Data.Suppliers, 1)
	assert.Equal(t, "V P Traders", decoded.Data.Suppliers[0]["name"])
	assert.Empty(t, decoded.Data.Purchases)
}
