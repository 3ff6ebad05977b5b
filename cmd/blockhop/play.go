package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockhop/internal/config"
	"github.com/vovakirdan/blockhop/internal/registry"
)

var flagRecord string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Block Hop",
	Long: `Start a run at level 1.

Controls:
  Left/Right, A/D   - Walk
  Up/W/Space        - Jump
  Down/S/B          - Place a block under your feet
  Enter             - Continue after a level
  P/Esc             - Pause
  R                 - Restart the run
  Ctrl+S            - Screenshot
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Two extra blocks, fewer spikes and enemies
  normal - Config values as they are
  hard   - One block fewer, more spikes, faster enemies

Runs are saved to the scores database when you win or quit,
together with a replay. Use --record to also write the replay to a file.

Examples:
  blockhop play
  blockhop play --difficulty easy
  blockhop play --seed 42 --record run.yaml
  blockhop play --config ./my-blockhop.yaml
  blockhop play --levels ./levels --watch`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Write the replay of the run to this file")
}

func runPlay(cmd *cobra.Command, args []string) {
	preset, _ := config.ParsePreset(flagDifficulty)

	s := openSession()
	game, err := s.play(runtimeConfig(), preset)
	s.Close()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}

	if flagRecord != "" {
		if err := writeRecording(game, flagRecord); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Replay written to %s\n", flagRecord)
	}
}

func writeRecording(game registry.Game, path string) error {
	rec, ok := game.(registry.Recorder)
	if !ok {
		return fmt.Errorf("%s does not record replays", game.ID())
	}
	data, err := rec.EncodeRecording()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("cannot write replay: %w", err)
	}
	return nil
}
