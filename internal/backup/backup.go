// Package backup assembles the versioned import envelope the target
// application's Backup & Restore page consumes.
package backup

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/hisabkitab/migrate/internal/domain"
	"github.com/hisabkitab/migrate/internal/normalize"
)

// Version is the envelope format version the importer understands.
const Version = "1.0.0"

// Document is the outer envelope.
type Document struct {
	Version    string `json:"version"`
	ExportDate string `json:"export_date"`
	ExportBy   string `json:"export_by"`
	Data       Data   `json:"data"`
}

// Data carries every collection the import format knows about. Collections
// not populated by a run still serialize as empty arrays, never null; the
// importer treats a missing collection as a format error.
type Data struct {
	Companies                      []json.RawMessage `json:"companies"`
	Users                          []json.RawMessage `json:"users"`
	Products                       []domain.Product  `json:"products"`
	Categories                     []domain.Category `json:"categories"`
	Sales                          []json.RawMessage `json:"sales"`
	Purchases                      []domain.Purchase `json:"purchases"`
	Suppliers                      []domain.Supplier `json:"suppliers"`
	Customers                      []domain.Customer `json:"customers"`
	SalesPersons                   []json.RawMessage `json:"sales_persons"`
	CategoryCommissions            []json.RawMessage `json:"category_commissions"`
	SubCategories                  []json.RawMessage `json:"sub_categories"`
	SalesPersonCategoryAssignments []json.RawMessage `json:"sales_person_category_assignments"`
	StockAdjustments               []json.RawMessage `json:"stock_adjustments"`
	Settings                       map[string]any    `json:"settings"`
}

// New builds an empty envelope stamped with the generation time and the
// producing tool's name.
func New(exportBy string) *Document {
	return &Document{
		Version:    Version,
		ExportDate: normalize.Instant(time.Now()),
		ExportBy:   exportBy,
		Data: Data{
			Companies:                      []json.RawMessage{},
			Users:                          []json.RawMessage{},
			Products:                       []domain.Product{},
			Categories:                     []domain.Category{},
			Sales:                          []json.RawMessage{},
			Purchases:                      []domain.Purchase{},
			Suppliers:                      []domain.Supplier{},
			Customers:                      []domain.Customer{},
			SalesPersons:                   []json.RawMessage{},
			CategoryCommissions:            []json.RawMessage{},
			SubCategories:                  []json.RawMessage{},
			SalesPersonCategoryAssignments: []json.RawMessage{},
			StockAdjustments:               []json.RawMessage{},
			Settings:                       map[string]any{},
		},
	}
}

// Marshal renders the envelope as 2-space-indented JSON.
func (d *Document) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal backup document: %w", err)
	}
	return data, nil
}

// WriteFile writes the envelope to disk.
func (d *Document) WriteFile(path string) error {
	data, err := d.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
