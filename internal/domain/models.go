package domain

// Supplier represents a supplier in the target import format. The invoice
// aggregator assigns IDs sequentially on first encounter; master-data
// conversion carries the source id through instead (nil when absent).
type Supplier struct {
	ID            *int   `json:"id"`
	Name          string `json:"name"`
	GSTIN         string `json:"gstin"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	City          string `json:"city"`
	State         string `json:"state"`
	Pincode       string `json:"pincode"`
	ContactPerson string `json:"contact_person"`
	IsRegistered  bool   `json:"is_registered"`
	CompanyID     int    `json:"company_id"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

// PurchaseItem is a single invoice line. Rate fields are nil when the
// component does not apply, so they serialize as null rather than 0.
type PurchaseItem struct {
	ProductID     *int     `json:"product_id"`
	ProductName   string   `json:"product_name"`
	Quantity      int      `json:"quantity"`
	UnitPrice     float64  `json:"unit_price"`
	PurchasePrice float64  `json:"purchase_price"`
	HSNCode       string   `json:"hsn_code"`
	GSTRate       float64  `json:"gst_rate"`
	CGSTRate      *float64 `json:"cgst_rate"`
	SGSTRate      *float64 `json:"sgst_rate"`
	IGSTRate      *float64 `json:"igst_rate"`
	TaxAmount     float64  `json:"tax_amount"`
	Total         float64  `json:"total"`
	Article       string   `json:"article"`
	Barcode       string   `json:"barcode"`
}

// Purchase is the invoice aggregate: one record per
// (supplier, invoice number, invoice date) with its line items and
// running totals.
type Purchase struct {
	ID            int            `json:"id"`
	Type          string         `json:"type"`
	SupplierID    int            `json:"supplier_id"`
	SupplierName  string         `json:"supplier_name"`
	InvoiceNumber string         `json:"invoice_number"`
	PurchaseDate  string         `json:"purchase_date"`
	Items         []PurchaseItem `json:"items"`
	Subtotal      float64        `json:"subtotal"`
	TotalTax      float64        `json:"total_tax"`
	GrandTotal    float64        `json:"grand_total"`
	PaymentStatus string         `json:"payment_status"`
	PaymentMethod string         `json:"payment_method"`
	Notes         string         `json:"notes"`
	CompanyID     int            `json:"company_id"`
	CreatedBy     int            `json:"created_by"`
	CreatedAt     string         `json:"created_at"`
	UpdatedAt     string         `json:"updated_at"`
}

// Product represents a product master record. The provisional ID is carried
// through from the source row when present, nil otherwise.
type Product struct {
	ID            *int     `json:"id"`
	Name          string   `json:"name"`
	SKU           string   `json:"sku"`
	Barcode       string   `json:"barcode"`
	CategoryID    *int     `json:"category_id"`
	Description   string   `json:"description"`
	Unit          string   `json:"unit"`
	PurchasePrice float64  `json:"purchase_price"`
	SellingPrice  float64  `json:"selling_price"`
	StockQuantity int      `json:"stock_quantity"`
	MinStockLevel int      `json:"min_stock_level"`
	HSNCode       string   `json:"hsn_code"`
	GSTRate       float64  `json:"gst_rate"`
	TaxType       string   `json:"tax_type"`
	CGSTRate      *float64 `json:"cgst_rate"`
	SGSTRate      *float64 `json:"sgst_rate"`
	IGSTRate      *float64 `json:"igst_rate"`
	IsActive      bool     `json:"is_active"`
	Status        string   `json:"status"`
	BarcodeStatus string   `json:"barcode_status"`
	CompanyID     int      `json:"company_id"`
	CreatedAt     string   `json:"created_at"`
	UpdatedAt     string   `json:"updated_at"`
}

// Customer represents a customer master record.
type Customer struct {
	ID            *int    `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	GSTIN         string  `json:"gstin"`
	Address       string  `json:"address"`
	City          string  `json:"city"`
	State         string  `json:"state"`
	Pincode       string  `json:"pincode"`
	ContactPerson string  `json:"contact_person"`
	CreditLimit   float64 `json:"credit_limit"`
	CreditBalance float64 `json:"credit_balance"`
	IsActive      bool    `json:"is_active"`
	CompanyID     int     `json:"company_id"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

// Category represents a product category. ParentID is an opaque foreign key
// copied through from the source, not validated.
type Category struct {
	ID            *int   `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	ParentID      *int   `json:"parent_id"`
	IsSubcategory bool   `json:"is_subcategory"`
	CompanyID     int    `json:"company_id"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}
