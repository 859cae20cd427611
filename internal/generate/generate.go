package generate

import (
	"fmt"
	"log/slog"
	"math/rand"

	"zonegen/internal/gamemap"
)

// Generate picks an archetype from table by weight, samples its parameters
// and builds the layout.
func Generate(table InstanceTable, rng *rand.Rand, logger *slog.Logger) (*gamemap.MapLayout, InstanceParams, error) {
	name, cfg, err := SelectInstance(table, rng)
	if err != nil {
		return nil, InstanceParams{}, err
	}
	return generateFrom(name, cfg, rng, logger)
}

// GenerateNamed builds the archetype registered under name, such as a hub
// whose layout is always wanted regardless of weights.
func GenerateNamed(table InstanceTable, name string, rng *rand.Rand, logger *slog.Logger) (*gamemap.MapLayout, InstanceParams, error) {
	cfg, err := LookupInstance(table, name)
	if err != nil {
		return nil, InstanceParams{}, err
	}
	return generateFrom(name, cfg, rng, logger)
}

func generateFrom(name string, cfg InstanceConfig, rng *rand.Rand, logger *slog.Logger) (*gamemap.MapLayout, InstanceParams, error) {
	params, err := SampleInstance(name, cfg, rng)
	if err != nil {
		return nil, InstanceParams{}, err
	}
	layout, err := BuildInstance(params, rng, logger)
	if err != nil {
		return nil, params, err
	}
	return layout, params, nil
}

// BuildInstance builds a layout from already sampled parameters. Prefab ids
// are resolved before any grid work so an unknown id fails fast.
func BuildInstance(p InstanceParams, rng *rand.Rand, logger *slog.Logger) (*gamemap.MapLayout, error) {
	b := NewLayoutBuilder(p.Width, p.Height, rng).
		WithLogger(logger).
		WithFloor(p.Floor).
		WithExteriorWalls().
		WithPrefabs(p.Prefabs...).
		WithExits(p.Exits).
		WithChests(p.Chests).
		WithEnemies(p.Enemies).
		WithPlayerSpawn()
	if p.DeadZones {
		b.WithDeadZones(DefaultDeadZoneConfig())
	}
	layout, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("build instance %q: %w", p.Name, err)
	}
	return layout, nil
}
