// digger is a terminal hook digger: swing a hook, drop it into the ground,
// reel in gold and diamonds before the clock runs out.
//
// Usage:
//
//	digger list              - List game modes
//	digger play <mode>       - Play a mode
//	digger menu              - Pick modes interactively
//	digger serve             - Start SSH server for remote play
//	digger scores <mode>     - Show high scores for a mode
//	digger rounds <mode>     - Show round history for a mode
//	digger generate          - Print a generated level
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible levels
//	--db <path>         - Set database path (default: ~/.digger/scores.db)
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Register game modes
	_ "github.com/vovakirdan/hook-digger/internal/games/digger"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "digger",
	Short: "Hook Digger - dig for treasure in your terminal",
	Long: `Hook Digger is a terminal arcade game. A hook swings under your miner;
drop it to grab gold, diamonds and mystery bags, and reach the level
target before time runs out.

Available commands:
  list      - Show game modes
  play      - Play a mode directly
  menu      - Interactive mode picker
  serve     - Start SSH server for remote play
  scores    - View high scores
  rounds    - View round history
  generate  - Print a generated level

Examples:
  digger menu
  digger play digger --level 3
  digger play digger_rush
  digger serve --ssh :2222
  digger generate --level 5 --seed 42`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
		log.SetLevel(level)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.digger/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(roundsCmd)
	rootCmd.AddCommand(generateCmd)
}
