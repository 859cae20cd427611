package assets

import (
	"errors"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"zonegen/internal/gamemap"
	"zonegen/internal/generate"
)

func quiet() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func TestBuiltinTablesValidate(t *testing.T) {
	for _, table := range []generate.InstanceTable{Instances, Hubs} {
		for _, name := range table.Names() {
			if err := table[name].Validate(name); err != nil {
				t.Errorf("%s: %v", name, err)
			}
		}
	}
}

func TestBuiltinInstancesGenerate(t *testing.T) {
	seen := map[string]bool{}
	for seed := int64(0); seed < 30; seed++ {
		l, p, err := generate.Generate(Instances, rand.New(rand.NewSource(seed)), quiet())
		if err != nil {
			t.Fatalf("seed=%d: %v", seed, err)
		}
		seen[p.Name] = true
		if l.Width() != p.Width || l.Height() != p.Height {
			t.Errorf("seed=%d: layout %dx%d; sampled %dx%d", seed, l.Width(), l.Height(), p.Width, p.Height)
		}
		if len(l.MarkerPositions(gamemap.MarkerPlayerSpawn)) == 0 {
			t.Errorf("seed=%d %s: no player spawn", seed, p.Name)
		}
	}
	if len(seen) < 3 {
		t.Errorf("30 draws only produced %v", seen)
	}
}

func TestHubLayout(t *testing.T) {
	l, _, err := generate.GenerateNamed(Hubs, HubName, rand.New(rand.NewSource(1)), quiet())
	if err != nil {
		t.Fatal(err)
	}
	if n := len(l.MarkerPositions(gamemap.MarkerNPCSpawn)); n != 1 {
		t.Errorf("hub has %d NPC spawns; want 1", n)
	}
	if n := len(l.MarkerPositions(gamemap.MarkerLevelExit)); n != 4 {
		t.Errorf("hub has %d exits; want 4", n)
	}
	if l.Grid().Count(gamemap.TileDeadZone) != 0 {
		t.Error("hub should have no dead zones")
	}
}

func writeTable(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "instances.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadInstances(t *testing.T) {
	path := writeTable(t, `{
		"bog": {
			"weight": 3,
			"width": {"min": 30, "max": 40},
			"height": {"min": 30, "max": 30},
			"enemies": {"min": 1, "max": 2},
			"chests": {"min": 0, "max": 1},
			"exits": 1,
			"prefabs": ["temple"],
			"floor": "sand",
			"dead_zones": false
		},
		"field": {
			"weight": 1,
			"width": {"min": 20, "max": 20},
			"height": {"min": 20, "max": 20},
			"enemies": {"min": 0, "max": 0},
			"chests": {"min": 0, "max": 0},
			"exits": 0,
			"floor": "grass"
		}
	}`)
	table, err := LoadInstances(path)
	if err != nil {
		t.Fatal(err)
	}
	bog := table["bog"]
	if bog.Weight != 3 || bog.Floor != gamemap.TileSand || bog.Width.Max != 40 {
		t.Errorf("bog decoded as %+v", bog)
	}
	if bog.DeadZones == nil || *bog.DeadZones {
		t.Error("dead_zones=false not honoured")
	}
	if table["field"].DeadZones != nil {
		t.Error("missing dead_zones should stay nil (enabled)")
	}
}

func TestLoadInstancesErrors(t *testing.T) {
	cases := []struct {
		name   string
		body   string
		cfgErr bool
	}{
		{"bad json", `{"a": `, false},
		{"unknown floor", `{"a": {"weight": 1, "width": {"min": 5, "max": 5}, "height": {"min": 5, "max": 5}, "floor": "lava"}}`, false},
		{"empty table", `{}`, true},
		{"unknown prefab", `{"a": {"weight": 1, "width": {"min": 5, "max": 5}, "height": {"min": 5, "max": 5}, "floor": "sand", "prefabs": ["castle"]}}`, true},
		{"zero weight", `{"a": {"width": {"min": 5, "max": 5}, "height": {"min": 5, "max": 5}, "floor": "sand"}}`, true},
		{"water floor", `{"a": {"weight": 1, "width": {"min": 5, "max": 5}, "height": {"min": 5, "max": 5}, "floor": "water"}}`, true},
		{"width below 3", `{"a": {"weight": 1, "width": {"min": 2, "max": 5}, "height": {"min": 5, "max": 5}, "floor": "sand"}}`, true},
		{"structural floor", `{"a": {"weight": 1, "width": {"min": 5, "max": 5}, "height": {"min": 5, "max": 5}, "floor": "wall"}}`, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadInstances(writeTable(t, tc.body))
			if err == nil {
				t.Fatal("expected an error")
			}
			var cerr *generate.ConfigurationError
			if got := errors.As(err, &cerr); got != tc.cfgErr {
				t.Errorf("errors.As ConfigurationError = %v; want %v (err: %v)", got, tc.cfgErr, err)
			}
		})
	}

	if _, err := LoadInstances(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file err = %v; want os.ErrNotExist", err)
	}
}

func TestResolve(t *testing.T) {
	custom := writeTable(t, `{"bog": {"weight": 1, "width": {"min": 20, "max": 20}, "height": {"min": 20, "max": 20}, "floor": "ground"}}`)
	cases := []struct {
		name    string
		path    string
		inst    string
		has     string
		wantErr bool
	}{
		{"builtin weighted", "", "", "meadow", false},
		{"builtin named", "", "ruins", "ruins", false},
		{"hub", "", HubName, HubName, false},
		{"hub with custom table", custom, HubName, HubName, false},
		{"custom named", custom, "bog", "bog", false},
		{"unknown", "", "volcano", "", true},
		{"unknown in custom", custom, "meadow", "", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			table, err := Resolve(tc.path, tc.inst)
			if tc.wantErr {
				var cerr *generate.ConfigurationError
				if !errors.As(err, &cerr) {
					t.Errorf("err = %v; want *ConfigurationError", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if _, ok := table[tc.has]; !ok {
				t.Errorf("resolved table %v lacks %q", table.Names(), tc.has)
			}
		})
	}
}
