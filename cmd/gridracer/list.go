package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridracer/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all race modes",
	Long:  `Shows every race mode registered with gridracer.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No race modes available.")
		return
	}

	fmt.Println("Race modes:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'gridracer play <id>' to start a race.")
}
