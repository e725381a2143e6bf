// Package mapping infers which semantic field each input column carries.
// Header labels vary wildly across export tools, so binding is a ranked
// keyword heuristic: for every canonical field, the first keyword (in
// priority order) that matches a header (scanning left to right) wins, and
// a bound field is never rebound. Unmapped headers are expected, not errors.
package mapping

import (
	"fmt"
	"strings"
)

// MatchMode selects how a keyword is compared against a header label.
type MatchMode string

const (
	// MatchSubstring binds on case-insensitive containment.
	MatchSubstring MatchMode = "substring"
	// MatchExact binds on case-insensitive equality.
	MatchExact MatchMode = "exact"
)

// Field is one canonical field with its ranked candidate keywords.
type Field struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// Table holds the ordered field list for one entity type.
type Table struct {
	Entity string    `yaml:"entity"`
	Mode   MatchMode `yaml:"mode"`
	Fields []Field   `yaml:"fields"`
}

// Tables is a full set of field tables, built-in or loaded from file.
type Tables []Table

// Builtin returns the compiled-in field tables.
func Builtin() Tables {
	return builtinTables()
}

// Lookup finds the table for an entity type.
func (ts Tables) Lookup(entity string) (Table, error) {
	for _, t := range ts {
		if t.Entity == entity {
			return t, nil
		}
	}
	return Table{}, fmt.Errorf("no field table for entity type %q", entity)
}

// ColumnMap binds canonical field names to column indices for positional
// row sources.
type ColumnMap map[string]int

// Cell reads the bound cell for a field out of a positional row. Unbound
// fields and rows shorter than the bound index yield the empty string.
func (m ColumnMap) Cell(row []string, field string) string {
	idx, ok := m[field]
	if !ok || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// Index returns the bound column index for a field, -1 when unbound.
func (m ColumnMap) Index(field string) int {
	if idx, ok := m[field]; ok {
		return idx
	}
	return -1
}

// KeyedMap binds canonical field names to header labels for keyed row
// sources, which bypass positional indexing.
type KeyedMap map[string]string

// Cell reads the bound cell for a field out of a keyed row.
func (m KeyedMap) Cell(row map[string]string, field string) string {
	label, ok := m[field]
	if !ok {
		return ""
	}
	return row[label]
}

// Infer builds the field-to-column binding for a positional source.
// At most one header binds to a given field (first keyword in priority
// order, first matching header left to right); a header may still satisfy
// several fields, which is accepted.
func Infer(headers []string, table Table) ColumnMap {
	lowered := make([]string, len(headers))
	for i, h := range headers {
		lowered[i] = strings.ToLower(strings.TrimSpace(h))
	}

	bound := make(ColumnMap, len(table.Fields))
	for _, field := range table.Fields {
		for _, keyword := range field.Keywords {
			idx := scan(lowered, keyword, table.Mode)
			if idx >= 0 {
				bound[field.Name] = idx
				break
			}
		}
	}
	return bound
}

// InferKeyed runs the same binding over a keyed source's ordered key list,
// yielding field-to-label bindings.
func InferKeyed(keys []string, table Table) KeyedMap {
	byIndex := Infer(keys, table)
	bound := make(KeyedMap, len(byIndex))
	for field, idx := range byIndex {
		bound[field] = keys[idx]
	}
	return bound
}

func scan(lowered []string, keyword string, mode MatchMode) int {
	for i, h := range lowered {
		switch mode {
		case MatchExact:
			if h == keyword {
				return i
			}
		default:
			if strings.Contains(h, keyword) {
				return i
			}
		}
	}
	return -1
}
