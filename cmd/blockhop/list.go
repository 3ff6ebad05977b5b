package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockhop/internal/games/blockhop"
	"github.com/vovakirdan/blockhop/internal/games/blockhop/sim"
	"github.com/vovakirdan/blockhop/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List games and levels",
	Long: `Shows the registered games and the level table, including
levels loaded from --levels.`,
	Args: cobra.NoArgs,
	Run:  runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	fmt.Println("Available games:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	setup, err := blockhop.LoadSetup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("Levels:")
	fmt.Println()
	fmt.Printf("  %-3s  %-20s  %s\n", "#", "Name", "Source")
	fmt.Printf("  %-3s  %-20s  %s\n", "-", "----", "------")
	for i, src := range setup.Campaign {
		name, kind := describeSource(src)
		fmt.Printf("  %-3d  %-20s  %s\n", i+1, name, kind)
	}

	fmt.Println()
	fmt.Println("Run 'blockhop play' to start at level 1.")
}

func describeSource(src sim.LevelSource) (name, kind string) {
	switch s := src.(type) {
	case sim.Authored:
		if s.Level == nil {
			return "?", "authored"
		}
		return s.Level.Name, "authored"
	case sim.Procedural:
		return s.Name, "generated"
	default:
		return "?", fmt.Sprintf("%T", src)
	}
}
