package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/hook-digger/internal/config"
	"github.com/vovakirdan/hook-digger/internal/core"
	"github.com/vovakirdan/hook-digger/internal/games/digger"
	"github.com/vovakirdan/hook-digger/internal/platform/tui"
	"github.com/vovakirdan/hook-digger/internal/registry"
	"github.com/vovakirdan/hook-digger/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      int
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a game mode",
	Long: `Start playing the specified mode.

Controls:
  Space/Down/S  - Drop the hook, next level
  P/Esc         - Pause
  R             - Restart (after game over)
  Ctrl+S        - Screenshot to ~/.digger/screenshots
  Q/Ctrl+C      - Quit

Difficulty options:
  easy   - Gentle scaling over the campaign
  normal - Default scaling
  hard   - Starts partly scaled: faster swing, more and deeper objects
  fixed  - No scaling, every level plays like level 1

Without --level, campaign mode asks for the starting level.

Examples:
  digger play digger
  digger play digger --level 4 --difficulty hard
  digger play digger_rush
  digger play digger --config ./my-digger.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Campaign start level (0 = choose)")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'digger list' to see available modes.")
		os.Exit(1)
	}
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := runtimeConfig()
	applyGameFlags()

	if gameID == digger.IDCampaign {
		level := flagLevel
		if level <= 0 {
			choice, err := tui.RunLevelSelector(levelChoices(), cfg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			if choice == nil {
				return
			}
			level = choice.Level
		}
		digger.SetStartLevel(level)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	runErr := tui.Run(game, store, cfg, tui.WithRoundHook(logRound))
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// runtimeConfig builds the runtime config from the terminal size and the
// global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func applyGameFlags() {
	digger.SetConfigPath(flagConfig)
	digger.SetDifficultyPreset(flagDifficulty)
}

// openStore opens the scores database. Games still run without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open scores database", "path", flagDBPath, "err", err)
		return nil
	}
	if v, err := store.SchemaVersion(); err == nil {
		log.Debug("scores database ready", "path", flagDBPath, "schema", v)
	}
	return store
}

// levelChoices lists the campaign levels up to the one where difficulty
// stops growing.
func levelChoices() []tui.LevelChoice {
	cfg, err := config.LoadDigger(flagConfig)
	if err != nil {
		log.Warn("could not load game config, using defaults", "err", err)
		cfg = config.DefaultDiggerConfig()
	}

	n := cfg.Difficulty.Progression.MaxAt
	if n < 1 {
		n = 10
	}
	choices := make([]tui.LevelChoice, n)
	for i := range choices {
		choices[i] = tui.LevelChoice{Level: i + 1, Target: cfg.TargetFor(i + 1)}
	}
	return choices
}

func logRound(gameID string, r core.RoundReport) {
	log.Debug("round finished",
		"game", gameID,
		"level", r.Level,
		"round_score", r.RoundScore,
		"score", r.Score,
		"target", r.Target,
		"cleared", r.Cleared,
	)
}
