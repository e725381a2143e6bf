package convert

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/hisabkitab/migrate/internal/domain"
	"github.com/hisabkitab/migrate/internal/mapping"
	"github.com/hisabkitab/migrate/internal/normalize"
)

// RowStatus is the terminal state of one processed line-item row.
type RowStatus int

const (
	RowAccepted RowStatus = iota
	RowSkippedInsufficientColumns
	RowSkippedMissingKeyFields
	RowSkippedError
)

// PurchaseStats counts row outcomes for the run summary. Partial success is
// the normal terminal state: skips are reported, not failed.
type PurchaseStats struct {
	RowsProcessed              int
	Accepted                   int
	SkippedInsufficientColumns int
	SkippedMissingKeyFields    int
	SkippedErrors              int
}

// PurchaseConverter folds positional line-item rows into purchase
// aggregates keyed by (supplier, invoice number, invoice date), creating
// suppliers on first sight. Identity resolution is first-seen-wins, so rows
// must be fed in input order and never concurrently.
type PurchaseConverter struct {
	log       zerolog.Logger
	companyID int
	createdBy int

	cols      mapping.ColumnMap
	dedup     *Dedup
	essential []string

	suppliers []*domain.Supplier
	purchases []*domain.Purchase
	purchased map[string]*domain.Purchase

	nextPurchaseID int
	stats          PurchaseStats
}

// NewPurchaseConverter binds the header labels through the field table and
// prepares an empty run.
func NewPurchaseConverter(headers []string, table mapping.Table, companyID, createdBy int, log zerolog.Logger) *PurchaseConverter {
	cols := mapping.Infer(headers, table)
	log.Debug().
		Int("supplier_name", cols.Index("supplier_name")).
		Int("invoice_number", cols.Index("invoice_number")).
		Int("invoice_date", cols.Index("invoice_date")).
		Int("quantity", cols.Index("quantity")).
		Int("total_amount", cols.Index("total_amount")).
		Msg("column mapping")

	return &PurchaseConverter{
		log:            log,
		companyID:      companyID,
		createdBy:      createdBy,
		cols:           cols,
		dedup:          NewDedup(),
		essential:      []string{"supplier_name", "invoice_number", "invoice_date"},
		purchased:      make(map[string]*domain.Purchase),
		nextPurchaseID: 1,
	}
}

// Process folds every row, in order, into the growing aggregates.
func (c *PurchaseConverter) Process(rows [][]string) PurchaseStats {
	for i, row := range rows {
		c.ProcessRow(i+1, row)
	}
	return c.stats
}

// ProcessRow runs the per-row state machine. A single bad row never aborts
// the batch: each terminal state except RowAccepted is counted and logged.
func (c *PurchaseConverter) ProcessRow(pos int, row []string) RowStatus {
	c.stats.RowsProcessed++

	if len(row) == 0 || len(row) < c.requiredColumns() {
		c.stats.SkippedInsufficientColumns++
		c.log.Warn().Int("row", pos).Msg("skipping row: insufficient columns")
		return RowSkippedInsufficientColumns
	}

	supplierName := normalize.Text(c.cols.Cell(row, "supplier_name"))
	invoiceNumber := normalize.Text(c.cols.Cell(row, "invoice_number"))
	if supplierName == "" || invoiceNumber == "" {
		c.stats.SkippedMissingKeyFields++
		c.log.Warn().Int("row", pos).Msg("skipping row: missing supplier name or invoice number")
		return RowSkippedMissingKeyFields
	}

	if err := c.fold(row, supplierName, invoiceNumber); err != nil {
		c.stats.SkippedErrors++
		c.log.Error().Int("row", pos).Str("preview", rowPreview(row)).Err(err).Msg("error processing row")
		return RowSkippedError
	}

	c.stats.Accepted++
	return RowAccepted
}

// requiredColumns is the minimum row length implied by the essential
// bindings: one past the highest bound column among them.
func (c *PurchaseConverter) requiredColumns() int {
	max := 0
	for _, field := range c.essential {
		if idx := c.cols.Index(field); idx+1 > max {
			max = idx + 1
		}
	}
	return max
}

func (c *PurchaseConverter) fold(row []string, supplierName, invoiceNumber string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("row conversion panicked: %v", r)
		}
	}()

	invoiceDate := normalize.Instant(time.Now())
	if c.cols.Index("invoice_date") >= 0 {
		invoiceDate = normalize.Date(c.cols.Cell(row, "invoice_date"), c.log)
	}

	supplierKey := strings.ToUpper(supplierName)
	gstin := normalize.Text(c.cols.Cell(row, "gstin"))

	supplierID, created := c.dedup.Resolve(supplierKey)
	if created {
		id := supplierID
		c.suppliers = append(c.suppliers, &domain.Supplier{
			ID:           &id,
			Name:         supplierName,
			GSTIN:        gstin, // first-seen GSTIN wins for the run
			IsRegistered: gstin != "",
			CompanyID:    c.companyID,
			CreatedAt:    invoiceDate,
			UpdatedAt:    invoiceDate,
		})
	}

	purchaseKey := fmt.Sprintf("%s_%s_%s", supplierKey, invoiceNumber, invoiceDate[:10])
	purchase, ok := c.purchased[purchaseKey]
	if !ok {
		purchase = &domain.Purchase{
			ID:            c.nextPurchaseID,
			Type:          "gst",
			SupplierID:    supplierID,
			SupplierName:  supplierName,
			InvoiceNumber: invoiceNumber,
			PurchaseDate:  invoiceDate,
			Items:         []domain.PurchaseItem{},
			PaymentStatus: "pending",
			PaymentMethod: "cash",
			CompanyID:     c.companyID,
			CreatedBy:     c.createdBy,
			CreatedAt:     invoiceDate,
			UpdatedAt:     invoiceDate,
		}
		c.nextPurchaseID++
		c.purchased[purchaseKey] = purchase
		c.purchases = append(c.purchases, purchase)
	}

	hsnCode := normalize.Text(c.cols.Cell(row, "hsn_code"))
	description := normalize.Text(c.cols.Cell(row, "description"))
	if description == "" {
		description = hsnCode
	}
	if description == "" {
		description = "Unknown Product"
	}

	gstRate := normalize.Decimal(c.cols.Cell(row, "gst_rate"))
	quantity := normalize.Integer(c.cols.Cell(row, "quantity"))
	taxableAmount := normalize.Decimal(c.cols.Cell(row, "taxable_amount"))
	sgstAmount := normalize.Decimal(c.cols.Cell(row, "sgst_amount"))
	cgstAmount := normalize.Decimal(c.cols.Cell(row, "cgst_amount"))
	igstAmount := normalize.Decimal(c.cols.Cell(row, "igst_amount"))
	totalAmount := normalize.Decimal(c.cols.Cell(row, "total_amount"))

	// Division by zero is defined as zero here, not an error.
	unitPrice := 0.0
	if quantity > 0 {
		unitPrice = taxableAmount / float64(quantity)
	}

	cgstRate := deriveRate(cgstAmount, taxableAmount)
	sgstRate := deriveRate(sgstAmount, taxableAmount)
	igstRate := deriveRate(igstAmount, taxableAmount)

	// An explicit non-zero GST rate always takes precedence over the rate
	// back-calculated from the tax amounts.
	if gstRate == 0 {
		gstRate = cgstRate + sgstRate + igstRate
	}

	taxAmount := cgstAmount + sgstAmount + igstAmount

	purchase.Items = append(purchase.Items, domain.PurchaseItem{
		ProductName:   description,
		Quantity:      quantity,
		UnitPrice:     unitPrice,
		PurchasePrice: unitPrice,
		HSNCode:       hsnCode,
		GSTRate:       normalize.Round2(gstRate),
		CGSTRate:      ratePtr(cgstRate),
		SGSTRate:      ratePtr(sgstRate),
		IGSTRate:      ratePtr(igstRate),
		TaxAmount:     normalize.Round2(taxAmount),
		Total:         normalize.Round2(totalAmount),
	})

	// Rounding is applied at every update so floating error never compounds
	// beyond two-decimal granularity per step.
	purchase.Subtotal = normalize.Round2(purchase.Subtotal + taxableAmount)
	purchase.TotalTax = normalize.Round2(purchase.TotalTax + taxAmount)
	purchase.GrandTotal = normalize.Round2(purchase.GrandTotal + totalAmount)

	return nil
}

// Suppliers returns the created suppliers in first-seen order.
func (c *PurchaseConverter) Suppliers() []domain.Supplier {
	out := make([]domain.Supplier, len(c.suppliers))
	for i, s := range c.suppliers {
		out[i] = *s
	}
	return out
}

// Purchases returns the aggregates in first-seen order.
func (c *PurchaseConverter) Purchases() []domain.Purchase {
	out := make([]domain.Purchase, len(c.purchases))
	for i, p := range c.purchases {
		out[i] = *p
	}
	return out
}

// Stats returns the row outcome counts so far.
func (c *PurchaseConverter) Stats() PurchaseStats {
	return c.stats
}

func deriveRate(amount, taxableAmount float64) float64 {
	if taxableAmount <= 0 {
		return 0
	}
	return amount / taxableAmount * 100
}

// ratePtr renders a tax-rate component: rounded when present, null when the
// component does not apply.
func ratePtr(rate float64) *float64 {
	if rate <= 0 {
		return nil
	}
	r := normalize.Round2(rate)
	return &r
}

func rowPreview(row []string) string {
	if len(row) > 5 {
		row = row[:5]
	}
	return strings.Join(row, " | ")
}
