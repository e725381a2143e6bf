package mapping

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads field tables from a YAML file, replacing the built-in set.
// The file holds a list of tables:
//
//	- entity: purchases
//	  mode: substring
//	  fields:
//	    - name: supplier_name
//	      keywords: ["supplier name", "vendor name"]
//
// Keyword order in the file is binding priority, same as the built-ins.
func Load(path string) (Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mapping file %s: %w", path, err)
	}

	var tables Tables
	if err := yaml.Unmarshal(data, &tables); err != nil {
		return nil, fmt.Errorf("failed to parse mapping file %s: %w", path, err)
	}

	for i, t := range tables {
		if t.Entity == "" {
			return nil, fmt.Errorf("mapping file %s: table %d has no entity", path, i)
		}
		if t.Mode == "" {
			tables[i].Mode = MatchSubstring
		}
	}
	return tables, nil
}

// LoadOrBuiltin returns tables from the given file, or the built-in set
// when no file is configured.
func LoadOrBuiltin(path string) (Tables, error) {
	if path == "" {
		return Builtin(), nil
	}
	return Load(path)
}
