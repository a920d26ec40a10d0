package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var flagRoundsLimit int

var roundsCmd = &cobra.Command{
	Use:   "rounds <mode>",
	Short: "Show round history for a mode",
	Long: `Display the most recent rounds of a mode with a summary line.

Examples:
  digger rounds digger
  digger rounds digger_rush --limit 50`,
	Args: cobra.ExactArgs(1),
	Run:  runRounds,
}

func init() {
	roundsCmd.Flags().IntVar(&flagRoundsLimit, "limit", 20, "Number of rounds to show")
}

func runRounds(_ *cobra.Command, args []string) {
	gameID := args[0]
	title := modeTitle(gameID)

	store := mustOpenStore()
	defer store.Close()

	rounds, err := store.RecentRounds(gameID, flagRoundsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving rounds: %v\n", err)
		return
	}

	fmt.Printf("Round History - %s\n", title)
	fmt.Println()

	if len(rounds) == 0 {
		fmt.Println("No rounds played yet.")
		return
	}

	fmt.Printf("  %-5s  %-6s  %-7s  %-6s  %-7s  %-8s  %-10s  %s\n",
		"Level", "Round", "Total", "Target", "Result", "Time", "Player", "Date")
	fmt.Printf("  %-5s  %-6s  %-7s  %-6s  %-7s  %-8s  %-10s  %s\n",
		"-----", "-----", "-----", "------", "------", "----", "------", "----")
	for _, r := range rounds {
		result := "failed"
		if r.Cleared {
			result = "cleared"
		}
		player := r.Player
		if player == "" {
			player = "local"
		}
		fmt.Printf("  %-5d  %-6d  %-7d  %-6d  %-7s  %-8s  %-10s  %s\n",
			r.Level, r.RoundScore, r.Score, r.Target, result,
			r.Duration.Round(100*time.Millisecond).String(), player, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(gameID)
	if err != nil {
		return
	}
	fmt.Println()
	fmt.Printf("Rounds: %d  Cleared: %d  Best level: %d  Best round: %d  Average: %.0f\n",
		stats.Rounds, stats.Cleared, stats.BestLevel, stats.BestRound, stats.AvgRoundScore)
}
