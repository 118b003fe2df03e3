package conf

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// parseSource parses the content of a configuration file. Files ending in
// .toml are TOML; everything else is dotenv.
func parseSource(path string, data []byte) (map[string]string, error) {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return parseTOML(data)
	}
	return parseDotenv(data)
}

func parseDotenv(data []byte) (map[string]string, error) {
	values, err := godotenv.UnmarshalBytes(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse dotenv: %w", err)
	}
	return values, nil
}

// parseTOML flattens a TOML document into string values. Nested tables join
// their keys with an underscore; arrays are comma separated.
func parseTOML(data []byte) (map[string]string, error) {
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}
	values := make(map[string]string)
	flatten("", doc, values)
	return values, nil
}

func flatten(prefix string, table map[string]any, out map[string]string) {
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		name := k
		if prefix != "" {
			name = prefix + "_" + k
		}
		switch v := table[k].(type) {
		case map[string]any:
			flatten(name, v, out)
		case []any:
			parts := make([]string, len(v))
			for i, item := range v {
				parts[i] = fmt.Sprint(item)
			}
			out[name] = strings.Join(parts, ",")
		default:
			out[name] = fmt.Sprint(v)
		}
	}
}
