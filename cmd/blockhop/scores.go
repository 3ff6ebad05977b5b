package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockhop/internal/games/blockhop"
	"github.com/vovakirdan/blockhop/internal/platform/tui"
	"github.com/vovakirdan/blockhop/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresTUI   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the best Block Hop runs with their level, coins, stars,
deaths and play time. The run number can be passed to
'blockhop replay --run'.

Examples:
  blockhop scores
  blockhop scores --limit 25
  blockhop scores --interactive
  blockhop scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVarP(&flagScoresTUI, "interactive", "i", false, "Browse runs in a scrollable table")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every saved run")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagScoresClear:
		if err := store.ClearRuns(blockhop.GameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All runs deleted.")
		return

	case flagScoresTUI:
		cfg := runtimeConfig()
		if _, err := tui.RunScoreboard(store, blockhop.GameID, cfg.ScreenW, cfg.ScreenH); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	runs, err := store.TopRuns(blockhop.GameID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - Block Hop")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'blockhop play' to set the first high score!")
		return
	}

	const row = "  %-4s  %-5s  %-6s  %-5s  %-5s  %-5s  %-6s  %-7s  %-3s  %s\n"
	fmt.Printf(row, "Rank", "Run", "Score", "Level", "Coins", "Stars", "Deaths", "Time", "Won", "Date")
	fmt.Printf(row, "----", "---", "-----", "-----", "-----", "-----", "------", "----", "---", "----")
	for i, r := range runs {
		won := "no"
		if r.Won {
			won = "yes"
		}
		fmt.Printf(row,
			fmt.Sprint(i+1), fmt.Sprint(r.ID), fmt.Sprint(r.Score), fmt.Sprint(r.Level),
			fmt.Sprint(r.Coins), fmt.Sprint(r.Stars), fmt.Sprint(r.Deaths),
			tui.FormatFrames(r.Frames), won, r.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, err := store.GetGameStats(blockhop.GameID); err == nil {
		fmt.Printf("Best: %d  |  Runs: %d  |  Wins: %d  |  Best level: %d\n",
			stats.HighScore, stats.RunsCount, stats.Wins, stats.BestLevel)
	}
}
