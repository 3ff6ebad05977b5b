package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/blockhop/internal/config"
	"github.com/vovakirdan/blockhop/internal/core"
	"github.com/vovakirdan/blockhop/internal/games/blockhop"
	"github.com/vovakirdan/blockhop/internal/games/blockhop/levels"
	"github.com/vovakirdan/blockhop/internal/platform/tui"
	"github.com/vovakirdan/blockhop/internal/registry"
	"github.com/vovakirdan/blockhop/internal/storage"
)

// newLogger creates the CLI logger writing to w.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "blockhop",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// runtimeConfig sizes the game to the terminal and resolves the seed, so
// the seed in logs and saved runs is the one actually played.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     nextSeed(),
	}
}

func nextSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// session holds what interactive commands share: the run store and a
// logger writing to the log file, since Bubble Tea owns the terminal.
type session struct {
	store   *storage.Store
	logger  *log.Logger
	logFile *os.File
}

func openSession() *session {
	s := &session{logger: log.New(io.Discard)}

	path := expandHome(flagLogPath)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
	} else if f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
	} else {
		s.logFile = f
		s.logger = newLogger(f)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		s.logger.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
	} else {
		s.store = store
	}
	return s
}

func (s *session) Close() {
	if s.store != nil {
		s.store.Close()
	}
	if s.logFile != nil {
		s.logFile.Close()
	}
}

// play runs one game until the player quits and returns the finished game.
func (s *session) play(cfg core.RuntimeConfig, difficulty config.DifficultyPreset) (registry.Game, error) {
	blockhop.SetDifficultyPreset(string(difficulty))

	// Fail before taking over the terminal if config or levels are broken.
	if _, err := blockhop.LoadSetup(); err != nil {
		return nil, err
	}

	game, err := registry.Create(blockhop.GameID)
	if err != nil {
		return nil, err
	}

	var watcher *levels.Watcher
	if flagWatch {
		watcher, err = levels.NewWatcher(blockhop.LevelsDir())
		if err != nil {
			s.logger.Warn("level watcher disabled", "error", err)
		} else {
			defer watcher.Close()
			s.logger.Info("watching levels", "dir", blockhop.LevelsDir())
		}
	}

	name := string(difficulty)
	if name == "" {
		name = string(config.DifficultyNormal)
	}
	err = tui.Run(game, cfg, tui.Options{
		Store:      s.store,
		Logger:     s.logger,
		Watcher:    watcher,
		Difficulty: name,
	})

	if g, ok := game.(*blockhop.Game); ok && g.SetupErr() != nil {
		s.logger.Warn("game ran with fallback setup", "error", g.SetupErr())
	}
	return game, err
}
