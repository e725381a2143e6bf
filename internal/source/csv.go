package source

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// ReadCSV reads a positional CSV: first record is the header, the rest are
// data rows. Ragged rows are allowed; converters handle short rows.
func ReadCSV(r io.Reader) (*Positional, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV record: %w", err)
		}
		rows = append(rows, record)
	}

	return &Positional{Headers: headers, Rows: rows}, nil
}

// ReadCSVFile reads a positional CSV from disk.
func ReadCSVFile(path string) (*Positional, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()
	return ReadCSV(f)
}

// ReadKeyedCSV reads a CSV as keyed rows, mapping each cell to its header
// label. Cells beyond the header width are dropped; missing trailing cells
// read as empty.
func ReadKeyedCSV(r io.Reader) (*Keyed, error) {
	positional, err := ReadCSV(r)
	if err != nil {
		return nil, err
	}

	rows := make([]map[string]string, 0, len(positional.Rows))
	for _, record := range positional.Rows {
		row := make(map[string]string, len(positional.Headers))
		for i, key := range positional.Headers {
			if i < len(record) {
				row[key] = record[i]
			} else {
				row[key] = ""
			}
		}
		rows = append(rows, row)
	}

	return &Keyed{Keys: positional.Headers, Rows: rows}, nil
}

// ReadKeyedCSVFile reads a keyed CSV from disk.
func ReadKeyedCSVFile(path string) (*Keyed, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()
	return ReadKeyedCSV(f)
}
