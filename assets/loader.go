package assets

import (
	"encoding/json"
	"fmt"
	"os"

	"zonegen/internal/generate"
)

// LoadInstances reads an instance table from a JSON object keyed by
// instance name. Every entry is validated so bad data fails at load time
// instead of on the first build that happens to pick it.
func LoadInstances(path string) (generate.InstanceTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read instance table: %w", err)
	}
	return ParseInstances(data)
}

// ParseInstances decodes and validates a JSON instance table.
func ParseInstances(data []byte) (generate.InstanceTable, error) {
	var table generate.InstanceTable
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("decode instance table: %w", err)
	}
	if len(table) == 0 {
		return nil, &generate.ConfigurationError{Kind: "table", Msg: "no instances configured"}
	}
	for _, name := range table.Names() {
		if err := table[name].Validate(name); err != nil {
			return nil, err
		}
	}
	return table, nil
}

// Resolve returns the table to generate from. A non-empty path replaces the
// built-in wilderness table. When name is set and only Hubs knows it, Hubs
// is returned so hub archetypes work with either source.
func Resolve(path, name string) (generate.InstanceTable, error) {
	table := Instances
	if path != "" {
		t, err := LoadInstances(path)
		if err != nil {
			return nil, err
		}
		table = t
	}
	if name == "" {
		return table, nil
	}
	if _, ok := table[name]; ok {
		return table, nil
	}
	if _, ok := Hubs[name]; ok {
		return Hubs, nil
	}
	if _, err := generate.LookupInstance(table, name); err != nil {
		return nil, err
	}
	return table, nil
}
