package convert

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hisabkitab/migrate/internal/mapping"
)

func entityTable(t *testing.T, entity string) mapping.Table {
	t.Helper()
	table, err := mapping.Builtin().Lookup(entity)
	require.NoError(t, err)
	return table
}

func TestProductsDefaultsAndOverlay(t *testing.T) {
	c := NewEntityConverter(1, zerolog.Nop())
	keys := []string{"product_id", "item_name", "mrp", "stock_qty", "hsn", "uom"}
	rows := []map[string]string{
		{"product_id": "7", "item_name": "Cotton Shirt", "mrp": "499.50", "stock_qty": "25", "hsn": "6107", "uom": "box"},
	}

	products := c.Products(keys, rows, entityTable(t, mapping.EntityProducts))
	require.Len(t, products, 1)
	p := products[0]

	require.NotNil(t, p.ID)
	assert.Equal(t, 7, *p.ID)
	assert.Equal(t, "Cotton Shirt", p.Name)
	assert.Equal(t, 499.50, p.SellingPrice)
	assert.Equal(t, 25, p.StockQuantity)
	assert.Equal(t, "6107", p.HSNCode)
	assert.Equal(t, "box", p.Unit)
	// Unbound fields keep their defaults.
	assert.Equal(t, 18.0, p.GSTRate)
	assert.Equal(t, "exclusive", p.TaxType)
	assert.Equal(t, "active", p.Status)
	assert.True(t, p.IsActive)
	assert.Nil(t, p.CategoryID)
}

func TestProductsMalformedCellKeepsDefault(t *testing.T) {
	c := NewEntityConverter(1, zerolog.Nop())
	keys := []string{"name", "gst_rate", "stock"}
	rows := []map[string]string{
		{"name": "Widget", "gst_rate": "n/a", "stock": "lots"},
	}

	products := c.Products(keys, rows, entityTable(t, mapping.EntityProducts))
	require.Len(t, products, 1)
	assert.Equal(t, 18.0, products[0].GSTRate)
	assert.Equal(t, 0, products[0].StockQuantity)
}

func TestProductsEmptyNameKeepsDefault(t *testing.T) {
	c := NewEntityConverter(1, zerolog.Nop())
	keys := []string{"name"}
	rows := []map[string]string{{"name": "  "}}

	products := c.Products(keys, rows, entityTable(t, mapping.EntityProducts))
	require.Len(t, products, 1)
	assert.Equal(t, "Unnamed Product", products[0].Name)
	assert.Nil(t, products[0].ID)
}

func TestCustomersOverlay(t *testing.T) {
	c := NewEntityConverter(2, zerolog.Nop())
	keys := []string{"customer_id", "company_name", "mobile", "zip", "credit"}
	rows := []map[string]string{
		{"customer_id": "3", "company_name": "Acme Retail", "mobile": "9876543210", "zip": "226001", "credit": "50,000"},
	}

	customers := c.Customers(keys, rows, entityTable(t, mapping.EntityCustomers))
	require.Len(t, customers, 1)
	r := customers[0]

	require.NotNil(t, r.ID)
	assert.Equal(t, 3, *r.ID)
	assert.Equal(t, "Acme Retail", r.Name)
	assert.Equal(t, "9876543210", r.Phone)
	assert.Equal(t, "226001", r.Pincode)
	assert.Equal(t, 50000.0, r.CreditLimit)
	assert.Equal(t, 0.0, r.CreditBalance)
	assert.Equal(t, 2, r.CompanyID)
	assert.True(t, r.IsActive)
}

func TestSuppliersRegistrationDerivedFromGSTIN(t *testing.T) {
	c := NewEntityConverter(1, zerolog.Nop())
	keys := []string{"vendor_name", "gst_no"}
	rows := []map[string]string{
		{"vendor_name": "V P Traders", "gst_no": "09ABPPA6876Q1ZN"},
		{"vendor_name": "Cash Vendor", "gst_no": ""},
	}

	suppliers := c.Suppliers(keys, rows, entityTable(t, mapping.EntitySuppliers))
	require.Len(t, suppliers, 2)
	assert.True(t, suppliers[0].IsRegistered)
	assert.False(t, suppliers[1].IsRegistered)
	assert.Nil(t, suppliers[0].ID) // master rows carry through source ids only
}

func TestSuppliersRegistrationColumnWins(t *testing.T) {
	c := NewEntityConverter(1, zerolog.Nop())
	keys := []string{"vendor_name", "gst_no", "gst_registered"}
	rows := []map[string]string{
		{"vendor_name": "V P Traders", "gst_no": "09ABPPA6876Q1ZN", "gst_registered": "0"},
	}

	suppliers := c.Suppliers(keys, rows, entityTable(t, mapping.EntitySuppliers))
	require.Len(t, suppliers, 1)
	assert.False(t, suppliers[0].IsRegistered)
}

func TestCategoriesParentMarksSubcategory(t *testing.T) {
	c := NewEntityConverter(1, zerolog.Nop())
	keys := []string{"cat_id", "cat_name", "parent_id"}
	rows := []map[string]string{
		{"cat_id": "1", "cat_name": "Apparel", "parent_id": ""},
		{"cat_id": "2", "cat_name": "Shirts", "parent_id": "1"},
	}

	categories := c.Categories(keys, rows, entityTable(t, mapping.EntityCategories))
	require.Len(t, categories, 2)
	assert.False(t, categories[0].IsSubcategory)
	assert.Nil(t, categories[0].ParentID)
	assert.True(t, categories[1].IsSubcategory)
	require.NotNil(t, categories[1].ParentID)
	assert.Equal(t, 1, *categories[1].ParentID)
}
