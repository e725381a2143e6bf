package mapping

// Built-in field tables. Keywords are ordered most-specific first; the
// matcher commits to the first keyword that finds a header, so ordering is
// part of the contract, not a tuning knob.
//
// Purchase exports name columns loosely ("Bill No", "Invoice Number",
// "invoice_number"), so that table matches by substring. Master-data exports
// come from relational dumps with stable column names, so those tables
// match exactly.

// Entity type names accepted by Lookup.
const (
	EntityPurchases  = "purchases"
	EntityProducts   = "products"
	EntityCustomers  = "customers"
	EntitySuppliers  = "suppliers"
	EntityCategories = "categories"
)

func builtinTables() []Table {
	return []Table{
		{
			Entity: EntityPurchases,
			Mode:   MatchSubstring,
			Fields: []Field{
				{Name: "supplier_name", Keywords: []string{"customer name", "supplier name", "vendor name", "supplier"}},
				{Name: "gstin", Keywords: []string{"gst number", "gstin", "gst no", "gst"}},
				{Name: "invoice_number", Keywords: []string{"bill no", "invoice no", "invoice number", "bill number"}},
				{Name: "invoice_date", Keywords: []string{"bill date", "invoice date", "date", "purchase date"}},
				{Name: "hsn_code", Keywords: []string{"hsn", "hsn code", "hsn_code"}},
				{Name: "description", Keywords: []string{"desc", "description", "product", "item"}},
				{Name: "gst_rate", Keywords: []string{"gst%", "gst rate", "gst_percent", "tax rate"}},
				{Name: "quantity", Keywords: []string{"qty", "quantity"}},
				{Name: "unit", Keywords: []string{"unit", "uom", "unit of measure"}},
				{Name: "taxable_amount", Keywords: []string{"taxable amt", "taxable amount", "subtotal", "base amount"}},
				{Name: "sgst_amount", Keywords: []string{"sgst"}},
				{Name: "cgst_amount", Keywords: []string{"cgst"}},
				{Name: "igst_amount", Keywords: []string{"igst"}},
				{Name: "total_amount", Keywords: []string{"bill amt", "total", "grand total", "bill amount"}},
			},
		},
		{
			Entity: EntityProducts,
			Mode:   MatchExact,
			Fields: []Field{
				{Name: "id", Keywords: []string{"id", "product_id", "item_id", "pid"}},
				{Name: "name", Keywords: []string{"name", "product_name", "item_name", "title", "product_title"}},
				{Name: "sku", Keywords: []string{"sku", "code", "product_code", "item_code", "product_sku"}},
				{Name: "barcode", Keywords: []string{"barcode", "barcode_no", "ean", "barcode_number"}},
				{Name: "category_id", Keywords: []string{"category_id", "cat_id", "group_id", "category"}},
				{Name: "purchase_price", Keywords: []string{"cost", "purchase_price", "buy_price", "cp", "cost_price"}},
				{Name: "selling_price", Keywords: []string{"price", "selling_price", "sale_price", "sp", "mrp", "retail_price"}},
				{Name: "stock_quantity", Keywords: []string{"stock", "quantity", "qty", "stock_qty", "inventory", "available_stock"}},
				{Name: "min_stock_level", Keywords: []string{"min_stock", "reorder_level", "alert_level", "min_qty"}},
				{Name: "hsn_code", Keywords: []string{"hsn", "hsn_code", "hsn_no"}},
				{Name: "gst_rate", Keywords: []string{"gst", "gst_rate", "tax_rate", "gst_percentage"}},
				{Name: "unit", Keywords: []string{"unit", "uom", "unit_of_measure"}},
				{Name: "description", Keywords: []string{"description", "desc", "details", "product_description"}},
			},
		},
		{
			Entity: EntityCustomers,
			Mode:   MatchExact,
			Fields: []Field{
				{Name: "id", Keywords: []string{"id", "customer_id", "client_id", "cid"}},
				{Name: "name", Keywords: []string{"name", "customer_name", "client_name", "company_name"}},
				{Name: "email", Keywords: []string{"email", "email_id", "email_address"}},
				{Name: "phone", Keywords: []string{"phone", "phone_no", "mobile", "contact_no", "phone_number"}},
				{Name: "address", Keywords: []string{"address", "addr", "full_address"}},
				{Name: "city", Keywords: []string{"city"}},
				{Name: "state", Keywords: []string{"state"}},
				{Name: "pincode", Keywords: []string{"pincode", "pin_code", "postal_code", "zip"}},
				{Name: "gstin", Keywords: []string{"gstin", "gst_no", "gst_number"}},
				{Name: "credit_limit", Keywords: []string{"credit_limit", "credit", "max_credit"}},
			},
		},
		{
			Entity: EntitySuppliers,
			Mode:   MatchExact,
			Fields: []Field{
				{Name: "id", Keywords: []string{"id", "supplier_id", "vendor_id", "sid"}},
				{Name: "name", Keywords: []string{"name", "supplier_name", "vendor_name"}},
				{Name: "email", Keywords: []string{"email", "email_id", "email_address"}},
				{Name: "phone", Keywords: []string{"phone", "phone_no", "mobile", "contact_no"}},
				{Name: "address", Keywords: []string{"address", "addr", "full_address"}},
				{Name: "city", Keywords: []string{"city"}},
				{Name: "state", Keywords: []string{"state"}},
				{Name: "pincode", Keywords: []string{"pincode", "pin_code", "postal_code"}},
				{Name: "gstin", Keywords: []string{"gstin", "gst_no", "gst_number"}},
				{Name: "is_registered", Keywords: []string{"is_registered", "gst_registered", "registered"}},
			},
		},
		{
			Entity: EntityCategories,
			Mode:   MatchExact,
			Fields: []Field{
				{Name: "id", Keywords: []string{"id", "category_id", "cat_id"}},
				{Name: "name", Keywords: []string{"name", "category_name", "cat_name"}},
				{Name: "description", Keywords: []string{"description", "desc"}},
				{Name: "parent_id", Keywords: []string{"parent_id", "parent_category_id", "parent_cat_id"}},
			},
		},
	}
}
