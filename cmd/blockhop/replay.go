package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockhop/internal/games/blockhop"
	"github.com/vovakirdan/blockhop/internal/games/blockhop/sim"
	"github.com/vovakirdan/blockhop/internal/storage"
)

var (
	flagReplayRun    int64
	flagReplayEvents bool
)

var replayCmd = &cobra.Command{
	Use:   "replay [file]",
	Short: "Re-run a recorded game",
	Long: `Feed a recorded run back through the simulation without a screen
and print where it ends. The recording keeps the seed and difficulty,
so the same config and level files reproduce the run exactly.

Recordings come from 'blockhop play --record FILE' or from the scores
database ('blockhop scores' shows the run numbers).

Examples:
  blockhop replay run.yaml
  blockhop replay --run 12 --events`,
	Args: cobra.MaximumNArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().Int64Var(&flagReplayRun, "run", 0, "Replay a run saved in the scores database")
	replayCmd.Flags().BoolVar(&flagReplayEvents, "events", false, "Log every simulation event")
}

func runReplay(cmd *cobra.Command, args []string) {
	logger := newLogger(os.Stderr)

	data, source, err := loadRecording(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	replay, err := blockhop.DecodeReplay(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The recorded difficulty wins unless the flag was given explicitly.
	if !cmd.Flags().Changed("difficulty") {
		blockhop.SetDifficultyPreset(replay.Difficulty)
	}
	setup, err := blockhop.LoadSetup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger.Info("replaying", "source", source, "seed", replay.Seed, "frames", replay.Frames(),
		"difficulty", setup.Difficulty)

	world, events, err := replay.Play(setup.Params, setup.Campaign)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagReplayEvents {
		for _, ev := range events {
			logger.Info("event", "frame", ev.Frame, "name", blockhop.EventName(ev))
		}
	}

	printReplaySummary(world, events)
}

// loadRecording reads the replay from a file argument or from a saved run.
func loadRecording(args []string) (data []byte, source string, err error) {
	switch {
	case flagReplayRun != 0 && len(args) > 0:
		return nil, "", fmt.Errorf("give either a file or --run, not both")

	case flagReplayRun != 0:
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return nil, "", err
		}
		defer store.Close()

		run, err := store.RunByID(flagReplayRun)
		if err != nil {
			return nil, "", err
		}
		if len(run.Replay) == 0 {
			return nil, "", fmt.Errorf("run %d has no replay", run.ID)
		}
		return run.Replay, "run " + strconv.FormatInt(run.ID, 10), nil

	case len(args) == 1:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, "", fmt.Errorf("cannot read replay: %w", err)
		}
		return data, args[0], nil
	}
	return nil, "", fmt.Errorf("need a replay file or --run ID")
}

func printReplaySummary(world *sim.World, events []sim.Event) {
	snap := world.Snapshot()
	s := snap.Session

	counts := make(map[sim.EventKind]int)
	for _, ev := range events {
		counts[ev.Kind]++
	}

	fmt.Printf("Frames:  %d\n", s.Frames)
	fmt.Printf("Level:   %d (%s)\n", s.CurrentLevel, s.Phase())
	fmt.Printf("Score:   %d\n", s.Score())
	fmt.Printf("Coins:   %d  Stars: %d  Deaths: %d\n", s.CoinsBanked+s.Coins, s.TotalStars, s.Deaths)
	fmt.Printf("Blocks:  %d placed, %d denied\n", counts[sim.EventBlockPlaced], counts[sim.EventBlockDenied])
	fmt.Printf("Stomps:  %d  Jumps: %d\n", counts[sim.EventEnemyStomp], counts[sim.EventJump])
	fmt.Printf("Hash:    %016x\n", snap.Hash())
}
