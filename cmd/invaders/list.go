package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all variants",
	Long:  `Shows every registered game variant.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	games := registry.List()

	if len(games) == 0 {
		fmt.Fprintln(out, "No games available.")
		return
	}

	maxIDLen := len("ID")
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Fprintln(out, "Available games:")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-*s  %-5s  %s\n", maxIDLen, "ID", "Menu", "Title")
	fmt.Fprintf(out, "  %-*s  %-5s  %s\n", maxIDLen, "--", "----", "-----")

	for _, g := range games {
		menu := "no"
		if g.HasMenu {
			menu = "yes"
		}
		fmt.Fprintf(out, "  %-*s  %-5s  %s\n", maxIDLen, g.ID, menu, g.Title)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'invaders play <id>' to play.")
}
