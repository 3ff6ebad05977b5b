package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchCode(t *testing.T) {
	cfg := DefaultBlockHopConfig()
	if err := yaml.Unmarshal(GetDefaultYAML("blockhop"), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != DefaultBlockHopConfig() {
		t.Errorf("embedded YAML = %+v\nexpected %+v", cfg, DefaultBlockHopConfig())
	}
	if GetDefaultYAML("nope") != nil {
		t.Error("unknown game should have no default YAML")
	}
}

func TestLoadCustomPathPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blockhop.yaml")
	data := "physics:\n  gravity: 0.75\nbuild:\n  start_blocks: 7\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBlockHop(path)
	if err != nil {
		t.Fatalf("LoadBlockHop() error = %v", err)
	}
	if cfg.Physics.Gravity != 0.75 || cfg.Build.StartBlocks != 7 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Physics.MoveSpeed != 5 || cfg.Generator.Width != 1800 {
		t.Errorf("omitted keys should keep defaults: %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := LoadBlockHop(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("physics: [not, a, map"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadBlockHop(path); err == nil {
		t.Error("malformed custom config should fail")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	cfg, err := LoadBlockHop("")
	if err != nil {
		t.Fatalf("LoadBlockHop() error = %v", err)
	}
	if cfg != DefaultBlockHopConfig() {
		t.Error("with no files the embedded default should load")
	}

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "blockhop.yaml"), []byte("build:\n  start_blocks: 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, _ = LoadBlockHop("")
	if cfg.Build.StartBlocks != 4 {
		t.Errorf("local config not used: start_blocks = %d", cfg.Build.StartBlocks)
	}

	userDir := filepath.Join(home, ".arcade", "configs")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, "blockhop.yaml"), []byte("build:\n  start_blocks: 9\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, _ = LoadBlockHop("")
	if cfg.Build.StartBlocks != 9 {
		t.Errorf("user config should win over local: start_blocks = %d", cfg.Build.StartBlocks)
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", "", false},
		{"easy", DifficultyEasy, false},
		{" Hard ", DifficultyHard, false},
		{"normal", DifficultyNormal, false},
		{"nightmare", "", true},
	}

	for _, tt := range tests {
		got, err := ParsePreset(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tt.in, got, tt.want)
		}
	}
}

func TestApplyBlockHopPreset(t *testing.T) {
	normal := DefaultBlockHopConfig()
	ApplyBlockHopPreset(&normal, DifficultyNormal)
	if normal != DefaultBlockHopConfig() {
		t.Error("normal preset should not change the config")
	}

	easy := DefaultBlockHopConfig()
	ApplyBlockHopPreset(&easy, DifficultyEasy)
	if easy.Build.StartBlocks != 5 || easy.Generator.SpikeCount != (Range{5, 8}) || easy.Generator.EnemyCount != (Range{1, 4}) {
		t.Errorf("easy preset = blocks %d spikes %+v enemies %+v",
			easy.Build.StartBlocks, easy.Generator.SpikeCount, easy.Generator.EnemyCount)
	}

	hard := DefaultBlockHopConfig()
	ApplyBlockHopPreset(&hard, DifficultyHard)
	if hard.Build.StartBlocks != 2 || hard.Generator.SpikeCount != (Range{11, 14}) || hard.Generator.EnemySpeed.Min != 2.0 {
		t.Errorf("hard preset = blocks %d spikes %+v speed %+v",
			hard.Build.StartBlocks, hard.Generator.SpikeCount, hard.Generator.EnemySpeed)
	}
}

func TestHoldTicks(t *testing.T) {
	tests := []struct {
		ms, rate, want int
	}{
		{150, 60, 9},
		{100, 30, 3},
		{1, 60, 1},
		{0, 60, 0},
		{150, 0, 0},
	}
	for _, tt := range tests {
		if got := (BlockHopInput{HoldMS: tt.ms}).HoldTicks(tt.rate); got != tt.want {
			t.Errorf("HoldTicks(%d ms @ %d) = %d, expected %d", tt.ms, tt.rate, got, tt.want)
		}
	}
}
