package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the accepted preset names.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// ParsePreset resolves a preset name. An empty name means no preset.
func ParsePreset(name string) (DifficultyPreset, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return "", nil
	}
	for _, p := range Presets() {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", name)
}

// ApplyBlockHopPreset adjusts block capacity and hazards for a preset.
// Normal leaves the loaded values alone.
func ApplyBlockHopPreset(cfg *BlockHopConfig, preset DifficultyPreset) {
	gen := &cfg.Generator
	switch preset {
	case DifficultyEasy:
		cfg.Build.StartBlocks += 2
		gen.SpikeCount = shift(gen.SpikeCount, -3)
		gen.EnemyCount = shift(gen.EnemyCount, -2)
	case DifficultyHard:
		cfg.Build.StartBlocks = max(1, cfg.Build.StartBlocks-1)
		gen.SpikeCount = shift(gen.SpikeCount, 3)
		gen.EnemyCount = shift(gen.EnemyCount, 2)
		gen.EnemySpeed.Min += 0.5
		gen.EnemySpeed.Max += 0.5
	}
}

// shift moves a range by delta without going below zero.
func shift(r Range, delta int) Range {
	return Range{Min: max(0, r.Min+delta), Max: max(0, r.Max+delta)}
}
