package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockhop/internal/games/blockhop"
	"github.com/vovakirdan/blockhop/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Title menu",
	Long: `Open the title menu to pick a difficulty, start a run
or browse the best runs.

Controls:
  Up/Down       - Navigate
  Left/Right    - Change difficulty
  Enter         - Select
  Tab           - High scores
  Q/Ctrl+C      - Quit`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(cmd *cobra.Command, args []string) {
	s := openSession()
	defer s.Close()

	cfg := runtimeConfig()
	difficulty := flagDifficulty

	for {
		result, err := tui.RunMenu(cfg, difficulty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running menu: %v\n", err)
			return
		}
		cfg = result.Config
		difficulty = string(result.Difficulty)

		switch result.Choice {
		case tui.MenuChoiceQuit:
			return

		case tui.MenuChoiceScores:
			goBack, err := tui.RunScoreboard(s.store, blockhop.GameID, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
				return
			}
			if !goBack {
				return
			}

		case tui.MenuChoicePlay:
			cfg.Seed = nextSeed()
			if _, err := s.play(cfg, result.Difficulty); err != nil {
				fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
				return
			}
		}
	}
}
