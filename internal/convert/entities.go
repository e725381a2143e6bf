package convert

import (
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/hisabkitab/migrate/internal/domain"
	"github.com/hisabkitab/migrate/internal/mapping"
	"github.com/hisabkitab/migrate/internal/normalize"
)

// EntityConverter turns keyed master-data rows (relational exports, keyed
// CSV) into flat entity records. Each row is independent: records get
// type-appropriate defaults first, then bound columns are overlaid through
// the field table. A malformed or empty cell keeps the default, so no
// single bad cell aborts a row.
type EntityConverter struct {
	log       zerolog.Logger
	companyID int
}

func NewEntityConverter(companyID int, log zerolog.Logger) *EntityConverter {
	return &EntityConverter{log: log, companyID: companyID}
}

// Products converts keyed rows into product records.
func (c *EntityConverter) Products(keys []string, rows []map[string]string, table mapping.Table) []domain.Product {
	bound := mapping.InferKeyed(keys, table)
	now := normalize.Instant(time.Now())

	out := make([]domain.Product, 0, len(rows))
	for _, row := range rows {
		p := domain.Product{
			Name:          "Unnamed Product",
			Unit:          "pcs",
			GSTRate:       18,
			TaxType:       "exclusive",
			IsActive:      true,
			Status:        "active",
			BarcodeStatus: "inactive",
			CompanyID:     c.companyID,
			CreatedAt:     now,
			UpdatedAt:     now,
		}

		overlayInt(&p.ID, bound.Cell(row, "id"))
		overlayString(&p.Name, bound.Cell(row, "name"))
		overlayString(&p.SKU, bound.Cell(row, "sku"))
		overlayString(&p.Barcode, bound.Cell(row, "barcode"))
		overlayInt(&p.CategoryID, bound.Cell(row, "category_id"))
		overlayString(&p.Description, bound.Cell(row, "description"))
		overlayString(&p.Unit, bound.Cell(row, "unit"))
		overlayFloat(&p.PurchasePrice, bound.Cell(row, "purchase_price"))
		overlayFloat(&p.SellingPrice, bound.Cell(row, "selling_price"))
		overlayCount(&p.StockQuantity, bound.Cell(row, "stock_quantity"))
		overlayCount(&p.MinStockLevel, bound.Cell(row, "min_stock_level"))
		overlayString(&p.HSNCode, bound.Cell(row, "hsn_code"))
		overlayFloat(&p.GSTRate, bound.Cell(row, "gst_rate"))

		out = append(out, p)
	}
	return out
}

// Customers converts keyed rows into customer records.
func (c *EntityConverter) Customers(keys []string, rows []map[string]string, table mapping.Table) []domain.Customer {
	bound := mapping.InferKeyed(keys, table)
	now := normalize.Instant(time.Now())

	out := make([]domain.Customer, 0, len(rows))
	for _, row := range rows {
		r := domain.Customer{
			Name:      "Unnamed Customer",
			IsActive:  true,
			CompanyID: c.companyID,
			CreatedAt: now,
			UpdatedAt: now,
		}

		overlayInt(&r.ID, bound.Cell(row, "id"))
		overlayString(&r.Name, bound.Cell(row, "name"))
		overlayString(&r.Email, bound.Cell(row, "email"))
		overlayString(&r.Phone, bound.Cell(row, "phone"))
		overlayString(&r.GSTIN, bound.Cell(row, "gstin"))
		overlayString(&r.Address, bound.Cell(row, "address"))
		overlayString(&r.City, bound.Cell(row, "city"))
		overlayString(&r.State, bound.Cell(row, "state"))
		overlayString(&r.Pincode, bound.Cell(row, "pincode"))
		overlayFloat(&r.CreditLimit, bound.Cell(row, "credit_limit"))

		out = append(out, r)
	}
	return out
}

// Suppliers converts keyed rows into supplier records. Unlike the invoice
// aggregator this carries the source id through (nil when absent) and does
// no deduplication.
func (c *EntityConverter) Suppliers(keys []string, rows []map[string]string, table mapping.Table) []domain.Supplier {
	bound := mapping.InferKeyed(keys, table)
	now := normalize.Instant(time.Now())
	registeredBound := hasBinding(bound, "is_registered")

	out := make([]domain.Supplier, 0, len(rows))
	for _, row := range rows {
		s := domain.Supplier{
			Name:      "Unnamed Supplier",
			CompanyID: c.companyID,
			CreatedAt: now,
			UpdatedAt: now,
		}

		overlayInt(&s.ID, bound.Cell(row, "id"))
		overlayString(&s.Name, bound.Cell(row, "name"))
		overlayString(&s.Email, bound.Cell(row, "email"))
		overlayString(&s.Phone, bound.Cell(row, "phone"))
		overlayString(&s.GSTIN, bound.Cell(row, "gstin"))
		overlayString(&s.Address, bound.Cell(row, "address"))
		overlayString(&s.City, bound.Cell(row, "city"))
		overlayString(&s.State, bound.Cell(row, "state"))
		overlayString(&s.Pincode, bound.Cell(row, "pincode"))

		if registeredBound {
			s.IsRegistered = truthy(bound.Cell(row, "is_registered"))
		} else {
			s.IsRegistered = s.GSTIN != ""
		}

		out = append(out, s)
	}
	return out
}

// Categories converts keyed rows into category records.
func (c *EntityConverter) Categories(keys []string, rows []map[string]string, table mapping.Table) []domain.Category {
	bound := mapping.InferKeyed(keys, table)
	now := normalize.Instant(time.Now())

	out := make([]domain.Category, 0, len(rows))
	for _, row := range rows {
		g := domain.Category{
			Name:      "Unnamed Category",
			CompanyID: c.companyID,
			CreatedAt: now,
			UpdatedAt: now,
		}

		overlayInt(&g.ID, bound.Cell(row, "id"))
		overlayString(&g.Name, bound.Cell(row, "name"))
		overlayString(&g.Description, bound.Cell(row, "description"))
		overlayInt(&g.ParentID, bound.Cell(row, "parent_id"))
		g.IsSubcategory = g.ParentID != nil

		out = append(out, g)
	}
	return out
}

func hasBinding(m mapping.KeyedMap, field string) bool {
	_, ok := m[field]
	return ok
}

// truthy follows the ingest convention for boolean cells.
func truthy(raw string) bool {
	raw = strings.TrimSpace(raw)
	return raw == "1" || strings.EqualFold(raw, "true")
}

// overlayString replaces the default with the trimmed cell when non-empty.
func overlayString(dst *string, raw string) {
	if v := normalize.Text(raw); v != "" {
		*dst = v
	}
}

// overlayInt sets an optional identifier from the cell, leaving nil/default
// in place when the cell is empty or malformed.
func overlayInt(dst **int, raw string) {
	if strings.TrimSpace(raw) == "" {
		return
	}
	if v, ok := normalize.IntegerOK(raw); ok {
		*dst = &v
	}
}

// overlayCount sets a non-negative integer field, keeping the default on
// empty or malformed cells.
func overlayCount(dst *int, raw string) {
	if strings.TrimSpace(raw) == "" {
		return
	}
	if v, ok := normalize.IntegerOK(raw); ok {
		*dst = v
	}
}

// overlayFloat sets a money/rate field, keeping the default on empty or
// malformed cells.
func overlayFloat(dst *float64, raw string) {
	if strings.TrimSpace(raw) == "" {
		return
	}
	if v, ok := normalize.DecimalOK(raw); ok {
		*dst = v
	}
}
