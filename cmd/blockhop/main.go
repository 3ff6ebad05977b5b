// blockhop is a terminal platformer: jump, build blocks under your feet and
// reach the flag at the end of every level.
//
// Usage:
//
//	blockhop play              - Play the campaign
//	blockhop menu              - Title menu with difficulty and high scores
//	blockhop list              - List games and levels
//	blockhop scores            - Show the best runs
//	blockhop gen               - Preview a level as an ASCII map
//	blockhop replay <file>     - Re-run a recorded game
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible levels
//	--db <path>           - Set database path (default: ~/.arcade/scores.db)
//	--config <path>       - Custom game config YAML
//	--difficulty <name>   - Difficulty preset: easy, normal, hard
//	--levels <dir>        - Directory of YAML/TOML level files
//	--watch               - Reload level files while playing
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockhop/internal/config"
	"github.com/vovakirdan/blockhop/internal/games/blockhop"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLevels     string
	flagWatch      bool
	flagLogPath    string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockhop",
	Short: "Block Hop - a block-building platformer for your terminal",
	Long: `Block Hop is a side-scrolling platformer played in the terminal.
Jump across platforms, place blocks to bridge gaps, stomp enemies,
and grab the star to carry more blocks into the next level.

Available commands:
  play     - Play the campaign
  menu     - Title menu with difficulty and high scores
  list     - Show games and levels
  scores   - View the best runs
  gen      - Preview a generated level
  replay   - Re-run a recorded game

Examples:
  blockhop play
  blockhop play --difficulty hard --seed 42
  blockhop play --levels ./levels --watch
  blockhop gen --seed 7 --level 2
  blockhop replay run.yaml`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: applyGlobalFlags,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.StringVar(&flagLevels, "levels", "", "Directory of YAML/TOML level files")
	pf.BoolVar(&flagWatch, "watch", false, "Reload level files when they change (needs --levels)")
	pf.StringVar(&flagLogPath, "log", "~/.arcade/blockhop.log", "Log file used while the game owns the terminal")
	pf.BoolVar(&flagDebug, "debug", false, "Log every simulation event")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(replayCmd)
}

// applyGlobalFlags validates the shared flags and hands them to the game
// package before any command runs.
func applyGlobalFlags(cmd *cobra.Command, args []string) error {
	if flagFPS < 1 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}
	if flagWatch && flagLevels == "" {
		return fmt.Errorf("--watch needs a --levels directory")
	}

	blockhop.SetConfigPath(flagConfig)
	blockhop.SetDifficultyPreset(flagDifficulty)
	blockhop.SetLevelsDir(flagLevels)
	return nil
}
