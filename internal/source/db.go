package source

import (
	"context"
	"fmt"
	"regexp"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
)

var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ReadTable reads every row of a table as keyed rows. A missing or invalid
// table name is fatal for the run: it is caught here, before any row
// processing begins.
func ReadTable(ctx context.Context, dbURL, table string) (*Keyed, error) {
	if table == "" {
		return nil, fmt.Errorf("table name is required for a database source")
	}
	if !identPattern.MatchString(table) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}

	db, err := sqlx.ConnectContext(ctx, "pgx", dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	rows, err := db.QueryxContext(ctx, fmt.Sprintf("SELECT * FROM %s", table))
	if err != nil {
		return nil, fmt.Errorf("failed to query table %s: %w", table, err)
	}
	defer rows.Close()

	keys, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns of %s: %w", table, err)
	}

	var out []map[string]string
	for rows.Next() {
		scanned := make(map[string]interface{}, len(keys))
		if err := rows.MapScan(scanned); err != nil {
			return nil, fmt.Errorf("failed to scan row from %s: %w", table, err)
		}
		row := make(map[string]string, len(keys))
		for _, key := range keys {
			row[key] = cellString(scanned[key])
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows of %s: %w", table, err)
	}

	return &Keyed{Keys: keys, Rows: out}, nil
}

func cellString(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(val)
	case string:
		return val
	default:
		return fmt.Sprintf("%v", val)
	}
}
