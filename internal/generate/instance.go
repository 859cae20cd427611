package generate

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"zonegen/internal/gamemap"
)

// IntRange is an inclusive [Min, Max] range.
type IntRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Sample draws a value uniformly from the range.
func (r IntRange) Sample(rng *rand.Rand) int {
	return r.Min + rng.Intn(r.Max-r.Min+1)
}

// valid also rejects spans too wide for Sample to draw from.
func (r IntRange) valid() bool {
	return r.Min >= 0 && r.Min <= r.Max && r.Max-r.Min < math.MaxInt
}

// minSide is the smallest grid edge that still has an interior cell.
const minSide = 3

// InstanceConfig describes one archetype of generatable zone. It is loaded
// once by the caller and never modified by generation.
type InstanceConfig struct {
	Weight    float64          `json:"weight"`
	Width     IntRange         `json:"width"`
	Height    IntRange         `json:"height"`
	Enemies   IntRange         `json:"enemies"`
	Chests    IntRange         `json:"chests"`
	Exits     int              `json:"exits"`
	Prefabs   []string         `json:"prefabs"`
	Floor     gamemap.TileType `json:"floor"`
	DeadZones *bool            `json:"dead_zones,omitempty"` // nil means enabled
}

// InstanceTable maps instance names to their archetypes.
type InstanceTable map[string]InstanceConfig

// Names returns the table's instance names in sorted order.
func (t InstanceTable) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// InstanceParams are the concrete values sampled for one build.
type InstanceParams struct {
	Name      string
	Width     int
	Height    int
	Enemies   int
	Chests    int
	Exits     int
	Prefabs   []string
	Floor     gamemap.TileType
	DeadZones bool
}

// LookupInstance returns the archetype registered under name.
func LookupInstance(table InstanceTable, name string) (InstanceConfig, error) {
	cfg, ok := table[name]
	if !ok {
		return InstanceConfig{}, &ConfigurationError{Kind: "instance", Key: name}
	}
	return cfg, nil
}

// SelectInstance picks one archetype with probability proportional to its
// weight. Entries are walked in name order so a seeded rng always yields
// the same choice; the winner is the first entry whose cumulative weight
// exceeds the draw.
func SelectInstance(table InstanceTable, rng *rand.Rand) (string, InstanceConfig, error) {
	if len(table) == 0 {
		return "", InstanceConfig{}, &ConfigurationError{Kind: "table", Key: "", Msg: "no instances configured"}
	}
	names := table.Names()
	total := 0.0
	for _, name := range names {
		w := table[name].Weight
		if w <= 0 {
			return "", InstanceConfig{}, &ConfigurationError{Kind: "instance", Key: name, Msg: "weight must be positive"}
		}
		total += w
	}

	draw := rng.Float64() * total
	upto := 0.0
	for _, name := range names {
		upto += table[name].Weight
		if upto > draw {
			return name, table[name], nil
		}
	}
	// Only reachable through float rounding at the top of the range.
	last := names[len(names)-1]
	return last, table[last], nil
}

// Validate checks everything about cfg that would otherwise only surface
// when it is selected: weight, ranges, floor type and prefab ids.
func (cfg InstanceConfig) Validate(name string) error {
	if cfg.Weight <= 0 {
		return &ConfigurationError{Kind: "instance", Key: name, Msg: "weight must be positive"}
	}
	if err := cfg.checkRanges(name); err != nil {
		return err
	}
	if !cfg.Floor.Walkable() {
		return &ConfigurationError{Kind: "instance", Key: name, Msg: fmt.Sprintf("%v is not a walkable floor tile", cfg.Floor)}
	}
	for _, id := range cfg.Prefabs {
		if _, err := NewPrefab(id); err != nil {
			return err
		}
	}
	return nil
}

func (cfg InstanceConfig) checkRanges(name string) error {
	ranges := []struct {
		field string
		r     IntRange
	}{
		{"width", cfg.Width},
		{"height", cfg.Height},
		{"enemies", cfg.Enemies},
		{"chests", cfg.Chests},
	}
	for _, f := range ranges {
		if !f.r.valid() {
			return &ConfigurationError{Kind: "range", Key: name + "." + f.field, Msg: "min must be between 0 and max"}
		}
	}
	if cfg.Width.Min < minSide {
		return &ConfigurationError{Kind: "range", Key: name + ".width", Msg: fmt.Sprintf("min must be at least %d", minSide)}
	}
	if cfg.Height.Min < minSide {
		return &ConfigurationError{Kind: "range", Key: name + ".height", Msg: fmt.Sprintf("min must be at least %d", minSide)}
	}
	if cfg.Exits < 0 {
		return &ConfigurationError{Kind: "range", Key: name + ".exits", Msg: "must not be negative"}
	}
	return nil
}

// SampleInstance draws concrete sizes and counts for cfg, in the order
// width, height, enemies, chests.
func SampleInstance(name string, cfg InstanceConfig, rng *rand.Rand) (InstanceParams, error) {
	if err := cfg.checkRanges(name); err != nil {
		return InstanceParams{}, err
	}

	p := InstanceParams{
		Name:      name,
		Exits:     cfg.Exits,
		Prefabs:   append([]string(nil), cfg.Prefabs...),
		Floor:     cfg.Floor,
		DeadZones: cfg.DeadZones == nil || *cfg.DeadZones,
	}
	p.Width = cfg.Width.Sample(rng)
	p.Height = cfg.Height.Sample(rng)
	p.Enemies = cfg.Enemies.Sample(rng)
	p.Chests = cfg.Chests.Sample(rng)
	return p, nil
}
