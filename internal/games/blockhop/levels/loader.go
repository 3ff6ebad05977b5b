// Package levels loads authored Block Hop levels from YAML and TOML files
// and watches a level directory for edits.
// This package depends on sim but sim does not depend on levels.
package levels

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/vovakirdan/blockhop/internal/games/blockhop/levels/formats"
	"github.com/vovakirdan/blockhop/internal/games/blockhop/sim"
)

// ErrDuplicateLevel is returned when two files define the same level number.
var ErrDuplicateLevel = errors.New("levels: duplicate level number")

// Loader handles loading levels from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new level loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all level files.
// Returns levels sorted by number. Any unreadable or invalid file fails the
// whole load so a broken edit never half-applies.
func (l *Loader) LoadAll() ([]*sim.Level, error) {
	var (
		loaded []*sim.Level
		seen   = make(map[int]string)
	)

	err := filepath.WalkDir(l.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !IsLevelFile(path) {
			return nil
		}

		lvl, err := l.LoadFile(path)
		if err != nil {
			return err
		}
		if prev, ok := seen[lvl.Number]; ok {
			return fmt.Errorf("%w: %d in %s and %s", ErrDuplicateLevel, lvl.Number, prev, path)
		}
		seen[lvl.Number] = path
		loaded = append(loaded, lvl)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("levels: loading %s: %w", l.Root, err)
	}

	slices.SortFunc(loaded, func(a, b *sim.Level) int { return a.Number - b.Number })
	return loaded, nil
}

// LoadFile loads and validates a single level file.
func (l *Loader) LoadFile(path string) (*sim.Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}

	parsed, err := parseByExtension(data, strings.ToLower(filepath.Ext(path)))
	if err != nil {
		return nil, fmt.Errorf("parsing file %s: %w", path, err)
	}

	lvl := parsed.Level()
	if err := lvl.Validate(); err != nil {
		return nil, fmt.Errorf("file %s: %w", path, err)
	}
	return lvl, nil
}

// Campaign loads every level under the root and applies them over base.
func (l *Loader) Campaign(base sim.Campaign) (sim.Campaign, error) {
	loaded, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	c, err := base.WithLevels(loaded)
	if err != nil {
		return nil, fmt.Errorf("levels: %w", err)
	}
	return c, nil
}

// Save writes lvl to path in the format chosen by the extension.
func Save(path string, lvl *sim.Level) error {
	f := formats.FromLevel(lvl)

	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = formats.MarshalYAML(f)
	case ".toml":
		data, err = formats.MarshalTOML(f)
	default:
		return fmt.Errorf("levels: unsupported extension %q", filepath.Ext(path))
	}
	if err != nil {
		return fmt.Errorf("levels: encoding %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("levels: writing %s: %w", path, err)
	}
	return nil
}

// IsLevelFile reports whether path has a supported level extension.
func IsLevelFile(path string) bool {
	return slices.Contains(formats.FormatExtensions(), strings.ToLower(filepath.Ext(path)))
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (formats.File, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	case ".toml":
		return formats.ParseTOML(data)
	default:
		return formats.File{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
