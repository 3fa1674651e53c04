package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show the best runs of a variant",
	Long: `Display the best runs and overall statistics for the specified variant.
Without a variant, print a summary of every variant that has been played.

Examples:
  invaders scores
  invaders scores invaders
  invaders scores invaders_arcade --limit 20
  invaders scores invaders --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded runs of the variant")
}

func runScores(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return runScoresSummary(cmd)
	}

	gameID := args[0]
	info, ok := registry.Info(gameID)
	if !ok {
		return fmt.Errorf("unknown game %q, run 'invaders list' to see available games", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening runs database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagScoresClear {
		if err := store.ClearRuns(gameID); err != nil {
			return err
		}
		fmt.Fprintf(out, "Cleared all runs of %s.\n", info.Title)
		return nil
	}

	runs, err := store.TopRuns(gameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	fmt.Fprintf(out, "Best runs - %s\n\n", info.Title)

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'invaders play %s' to set the first score!\n", gameID)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-6s  %-5s  %-6s  %s\n", "Rank", "Score", "Shot", "Missed", "Date")
	fmt.Fprintf(out, "  %-4s  %-6s  %-5s  %-6s  %s\n", "----", "-----", "----", "------", "----")
	for i, r := range runs {
		fmt.Fprintf(out, "  %-4d  %-6d  %-5d  %-6d  %s\n",
			i+1, r.Score, r.AliensShot, r.AliensMissed, r.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(gameID)
	if err == nil && stats != nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Best: %d   Runs: %d   Average: %.1f   Aliens shot: %d\n",
			stats.HighScore, stats.RunsCount, stats.AvgScore, stats.TotalShot)
	}
	return nil
}

// runScoresSummary prints one line per played variant.
func runScoresSummary(cmd *cobra.Command) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening runs database: %w", err)
	}
	defer store.Close()

	all, err := store.AllStats()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(all) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		return nil
	}

	fmt.Fprintf(out, "  %-20s  %-5s  %-6s  %-7s  %s\n", "Game", "Runs", "Best", "Average", "Last played")
	fmt.Fprintf(out, "  %-20s  %-5s  %-6s  %-7s  %s\n", "----", "----", "----", "-------", "-----------")
	for _, info := range registry.List() {
		st, ok := all[info.ID]
		if !ok {
			continue
		}
		fmt.Fprintf(out, "  %-20s  %-5d  %-6d  %-7.1f  %s\n",
			info.ID, st.RunsCount, st.HighScore, st.AvgScore, st.LastPlayed.Local().Format("2006-01-02 15:04"))
	}
	return nil
}
