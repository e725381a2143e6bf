// Package source reads raw tabular data out of the supported inputs.
// It does no interpretation: converters receive header labels and rows of
// text exactly as the export produced them.
package source

// Positional holds header-aligned rows for sources where cells are
// addressed by column index (CSV, spreadsheets). Rows may legitimately be
// shorter than the header; converters tolerate that.
type Positional struct {
	Headers []string
	Rows    [][]string
}

// Keyed holds label-addressed rows for sources that already carry column
// names per row (relational queries, keyed CSV). Keys preserve the source's
// column order so field binding stays deterministic.
type Keyed struct {
	Keys []string
	Rows []map[string]string
}
