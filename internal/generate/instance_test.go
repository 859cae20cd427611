package generate

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"zonegen/internal/gamemap"
)

func rangeOf(lo, hi int) IntRange { return IntRange{Min: lo, Max: hi} }

func simpleInstance(weight float64) InstanceConfig {
	return InstanceConfig{
		Weight:  weight,
		Width:   rangeOf(30, 40),
		Height:  rangeOf(30, 40),
		Enemies: rangeOf(0, 5),
		Chests:  rangeOf(0, 2),
		Exits:   1,
		Floor:   gamemap.TileGrass,
	}
}

func TestSelectInstanceMatchesWeights(t *testing.T) {
	table := InstanceTable{
		"A": simpleInstance(40),
		"B": simpleInstance(25),
		"C": simpleInstance(25),
		"D": simpleInstance(10),
	}
	rng := rand.New(rand.NewSource(1))
	const draws = 100_000
	counts := map[string]int{}
	for range draws {
		name, _, err := SelectInstance(table, rng)
		if err != nil {
			t.Fatal(err)
		}
		counts[name]++
	}
	for name, cfg := range table {
		got := float64(counts[name]) / draws
		want := cfg.Weight / 100
		if math.Abs(got-want) > 0.01 {
			t.Errorf("%s chosen %.3f of the time; want %.2f±0.01", name, got, want)
		}
	}
}

func TestSelectInstanceIsDeterministic(t *testing.T) {
	table := InstanceTable{"a": simpleInstance(1), "b": simpleInstance(2), "c": simpleInstance(3)}
	pick := func() []string {
		rng := rand.New(rand.NewSource(99))
		var names []string
		for range 50 {
			n, _, _ := SelectInstance(table, rng)
			names = append(names, n)
		}
		return names
	}
	a, b := pick(), pick()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("draw %d differs: %s vs %s", i, a[i], b[i])
		}
	}
}

func TestSelectInstanceErrors(t *testing.T) {
	cases := []struct {
		name  string
		table InstanceTable
		kind  string
	}{
		{"empty table", InstanceTable{}, "table"},
		{"zero weight", InstanceTable{"a": simpleInstance(1), "b": simpleInstance(0)}, "instance"},
		{"negative weight", InstanceTable{"a": simpleInstance(-2)}, "instance"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := SelectInstance(tc.table, rand.New(rand.NewSource(1)))
			var cerr *ConfigurationError
			if !errors.As(err, &cerr) || cerr.Kind != tc.kind {
				t.Errorf("err = %v; want ConfigurationError of kind %q", err, tc.kind)
			}
		})
	}
}

func TestLookupInstance(t *testing.T) {
	table := InstanceTable{"forest": simpleInstance(1)}
	if _, err := LookupInstance(table, "forest"); err != nil {
		t.Errorf("LookupInstance(forest): %v", err)
	}
	_, err := LookupInstance(table, "volcano")
	var cerr *ConfigurationError
	if !errors.As(err, &cerr) {
		t.Fatalf("err = %v; want *ConfigurationError", err)
	}
	if cerr.Key != "volcano" || cerr.Kind != "instance" {
		t.Errorf("error names %s %q; want instance \"volcano\"", cerr.Kind, cerr.Key)
	}
}

func TestSampleInstanceStaysInRange(t *testing.T) {
	cfg := simpleInstance(1)
	cfg.Prefabs = []string{"hub"}
	rng := rand.New(rand.NewSource(4))
	seen := map[int]bool{}
	for range 2000 {
		p, err := SampleInstance("x", cfg, rng)
		if err != nil {
			t.Fatal(err)
		}
		if p.Width < 30 || p.Width > 40 || p.Height < 30 || p.Height > 40 {
			t.Fatalf("size %dx%d outside [30,40]", p.Width, p.Height)
		}
		if p.Enemies < 0 || p.Enemies > 5 || p.Chests < 0 || p.Chests > 2 {
			t.Fatalf("counts enemies=%d chests=%d out of range", p.Enemies, p.Chests)
		}
		if p.Exits != 1 || p.Floor != gamemap.TileGrass || !p.DeadZones || p.Name != "x" {
			t.Fatalf("fixed fields not copied: %+v", p)
		}
		seen[p.Enemies] = true
	}
	for n := 0; n <= 5; n++ {
		if !seen[n] {
			t.Errorf("enemy count %d never sampled; ranges should be inclusive", n)
		}
	}
}

func TestSampleInstanceCopiesPrefabs(t *testing.T) {
	cfg := simpleInstance(1)
	cfg.Prefabs = []string{"hub", "temple"}
	p, err := SampleInstance("x", cfg, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}
	p.Prefabs[0] = "changed"
	if cfg.Prefabs[0] != "hub" {
		t.Error("sampled params must not alias the archetype's prefab list")
	}
}

func TestSampleInstanceDeadZonesFlag(t *testing.T) {
	off := false
	cfg := simpleInstance(1)
	cfg.DeadZones = &off
	p, err := SampleInstance("x", cfg, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}
	if p.DeadZones {
		t.Error("explicit dead_zones=false should disable dead zones")
	}
}

func TestSampleInstanceRejectsBadRanges(t *testing.T) {
	cases := []struct {
		name string
		mod  func(*InstanceConfig)
		key  string
	}{
		{"inverted width", func(c *InstanceConfig) { c.Width = rangeOf(50, 10) }, "x.width"},
		{"negative enemies", func(c *InstanceConfig) { c.Enemies = rangeOf(-1, 3) }, "x.enemies"},
		{"inverted chests", func(c *InstanceConfig) { c.Chests = rangeOf(3, 2) }, "x.chests"},
		{"negative exits", func(c *InstanceConfig) { c.Exits = -1 }, "x.exits"},
		{"unbounded width", func(c *InstanceConfig) { c.Width = rangeOf(0, math.MaxInt) }, "x.width"},
		{"unbounded enemies", func(c *InstanceConfig) { c.Enemies = rangeOf(0, math.MaxInt) }, "x.enemies"},
		{"narrow width", func(c *InstanceConfig) { c.Width = rangeOf(2, 10) }, "x.width"},
		{"flat height", func(c *InstanceConfig) { c.Height = rangeOf(1, 1) }, "x.height"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := simpleInstance(1)
			tc.mod(&cfg)
			_, err := SampleInstance("x", cfg, rand.New(rand.NewSource(1)))
			var cerr *ConfigurationError
			if !errors.As(err, &cerr) || cerr.Key != tc.key {
				t.Errorf("err = %v; want ConfigurationError for %s", err, tc.key)
			}
		})
	}
}

func TestInstanceConfigValidate(t *testing.T) {
	cases := []struct {
		name string
		mod  func(*InstanceConfig)
		ok   bool
	}{
		{"valid", func(*InstanceConfig) {}, true},
		{"known prefabs", func(c *InstanceConfig) { c.Prefabs = []string{"hub", "temple"} }, true},
		{"zero weight", func(c *InstanceConfig) { c.Weight = 0 }, false},
		{"unknown prefab", func(c *InstanceConfig) { c.Prefabs = []string{"castle"} }, false},
		{"wall floor", func(c *InstanceConfig) { c.Floor = gamemap.TileWall }, false},
		{"inverted height", func(c *InstanceConfig) { c.Height = rangeOf(9, 3) }, false},
		{"water floor", func(c *InstanceConfig) { c.Floor = gamemap.TileWater }, false},
		{"unbounded chests", func(c *InstanceConfig) { c.Chests = rangeOf(0, math.MaxInt) }, false},
		{"narrow height", func(c *InstanceConfig) { c.Height = rangeOf(2, 8) }, false},
		{"smallest grid", func(c *InstanceConfig) { c.Width, c.Height = rangeOf(3, 3), rangeOf(3, 3) }, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := simpleInstance(1)
			tc.mod(&cfg)
			err := cfg.Validate("x")
			if tc.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			var cerr *ConfigurationError
			if !tc.ok && !errors.As(err, &cerr) {
				t.Errorf("err = %v; want *ConfigurationError", err)
			}
		})
	}
}
