package formats

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/blockhop/internal/games/blockhop/sim"
)

const sampleYAML = `
number: 3
name: Spike Alley
width: 900
player_start: {x: 40, y: 300}
goal: {x: 850, y: 300}
platforms:
  - {x: 0, y: 368, w: 900}
  - {x: 200, y: 300, w: 100, h: 16}
spikes:
  - {x: 400, y: 350}
coins:
  - {x: 220, y: 260}
enemies:
  - {x: 600, y: 344}
  - {x: 700, y: 344, dir: -1, speed: 2}
`

const sampleTOML = `
number = 3
name = "Spike Alley"
width = 900.0

[player_start]
x = 40.0
y = 300.0

[goal]
x = 850.0
y = 300.0

[[platforms]]
x = 0.0
y = 368.0
w = 900.0

[[platforms]]
x = 200.0
y = 300.0
w = 100.0
h = 16.0

[[spikes]]
x = 400.0
y = 350.0

[[coins]]
x = 220.0
y = 260.0

[[enemies]]
x = 600.0
y = 344.0

[[enemies]]
x = 700.0
y = 344.0
dir = -1
speed = 2.0
`

func checkSample(t *testing.T, lvl *sim.Level) {
	t.Helper()

	if lvl.Number != 3 || lvl.Name != "Spike Alley" || lvl.Width != 900 {
		t.Errorf("header = %d %q %v", lvl.Number, lvl.Name, lvl.Width)
	}
	if lvl.Goal != sim.R(850, 300, sim.GoalSize, sim.GoalSize) {
		t.Errorf("goal = %+v", lvl.Goal)
	}
	if len(lvl.Platforms) != 2 {
		t.Fatalf("platforms = %d, expected 2", len(lvl.Platforms))
	}
	if lvl.Platforms[0].H != sim.PlatformHeight {
		t.Errorf("omitted height = %v, expected %v", lvl.Platforms[0].H, sim.PlatformHeight)
	}
	if lvl.Platforms[1].H != 16 {
		t.Errorf("explicit height = %v, expected 16", lvl.Platforms[1].H)
	}
	if len(lvl.Obstacles) != 1 || lvl.Obstacles[0] != sim.Spike(400, 350) {
		t.Errorf("spikes = %+v", lvl.Obstacles)
	}
	if len(lvl.Coins) != 1 || lvl.Coins[0] != sim.Coin(220, 260) {
		t.Errorf("coins = %+v", lvl.Coins)
	}
	if len(lvl.Enemies) != 2 {
		t.Fatalf("enemies = %d, expected 2", len(lvl.Enemies))
	}
	if e := lvl.Enemies[0]; e.Direction != 1 || e.Speed != DefaultEnemySpeed || !e.Alive {
		t.Errorf("enemy defaults = %+v", e)
	}
	if e := lvl.Enemies[1]; e.Direction != -1 || e.Speed != 2 {
		t.Errorf("enemy = %+v", e)
	}
	if err := lvl.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestParseYAML(t *testing.T) {
	f, err := ParseYAML([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("ParseYAML() error = %v", err)
	}
	checkSample(t, f.Level())
}

func TestParseTOML(t *testing.T) {
	f, err := ParseTOML([]byte(sampleTOML))
	if err != nil {
		t.Fatalf("ParseTOML() error = %v", err)
	}
	checkSample(t, f.Level())
}

func TestParseRejectsBadInput(t *testing.T) {
	tests := []struct {
		name  string
		parse func([]byte) (File, error)
		data  string
	}{
		{"yaml unknown key", ParseYAML, "number: 1\nwidht: 100\n"},
		{"yaml empty", ParseYAML, ""},
		{"yaml syntax", ParseYAML, "platforms: [\n"},
		{"toml unknown key", ParseTOML, "number = 1\nwidht = 100.0\n"},
		{"toml syntax", ParseTOML, "number = \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.parse([]byte(tt.data)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestFirstLevelSurvivesEncoding(t *testing.T) {
	want := sim.FirstLevel()

	encoders := []struct {
		name   string
		encode func(File) ([]byte, error)
		parse  func([]byte) (File, error)
	}{
		{"yaml", MarshalYAML, ParseYAML},
		{"toml", MarshalTOML, ParseTOML},
	}

	for _, enc := range encoders {
		t.Run(enc.name, func(t *testing.T) {
			data, err := enc.encode(FromLevel(want))
			if err != nil {
				t.Fatalf("encode error = %v", err)
			}
			f, err := enc.parse(data)
			if err != nil {
				t.Fatalf("parse error = %v\n%s", err, data)
			}
			if got := f.Level(); !reflect.DeepEqual(got, want) {
				t.Errorf("level changed through %s:\n got %+v\nwant %+v", enc.name, got, want)
			}
		})
	}
}

func TestFromLevelSkipsBlocks(t *testing.T) {
	lvl := sim.FirstLevel()
	lvl.Platforms = append(lvl.Platforms, sim.Platform{Rect: sim.R(10, 10, 32, 32), Kind: sim.PlatformBuildable})

	f := FromLevel(lvl)
	if len(f.Platforms) != len(lvl.Platforms)-1 {
		t.Errorf("platforms = %d, expected %d", len(f.Platforms), len(lvl.Platforms)-1)
	}
	for _, b := range f.Platforms {
		if b.H != 0 {
			t.Errorf("standard height should be omitted, got %v", b.H)
		}
	}
}

func TestFormatExtensions(t *testing.T) {
	got := strings.Join(FormatExtensions(), " ")
	if got != ".yaml .yml .toml" {
		t.Errorf("FormatExtensions() = %q", got)
	}
}
