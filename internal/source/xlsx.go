package source

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ReadXLSXFile reads the first sheet of an XLSX file as positional rows.
// The first row is treated as the header, matching the CSV shape.
func ReadXLSXFile(path string) (*Positional, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open xlsx file %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("xlsx file %s has no sheets", path)
	}
	sheet := sheets[0]

	rows, err := f.Rows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows from sheet %s: %w", sheet, err)
	}
	defer rows.Close()

	var headers []string
	var data [][]string
	for rows.Next() {
		record, err := rows.Columns()
		if err != nil {
			return nil, fmt.Errorf("failed to read row from %s: %w", path, err)
		}
		if headers == nil {
			headers = record
			continue
		}
		data = append(data, record)
	}
	if err := rows.Error(); err != nil {
		return nil, fmt.Errorf("error iterating rows in %s: %w", path, err)
	}
	if headers == nil {
		return nil, fmt.Errorf("xlsx file %s has no header row", path)
	}

	return &Positional{Headers: headers, Rows: data}, nil
}
