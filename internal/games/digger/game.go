// Package digger implements the hook digger game on top of the dig
// simulation core: level flow, timer, score and rendering.
package digger

import (
	"math/rand"

	"github.com/vovakirdan/hook-digger/internal/config"
	"github.com/vovakirdan/hook-digger/internal/core"
	"github.com/vovakirdan/hook-digger/internal/dig"
	"github.com/vovakirdan/hook-digger/internal/registry"
)

// Game states
const (
	StatePlaying  = "playing"  // Hook live, timer running
	StateLevelEnd = "levelend" // Target reached, waiting for the next level
	StatePaused   = "paused"   // Game paused
	StateGameOver = "gameover" // Target missed, or rush round over
)

// GameMode represents the game mode.
type GameMode int

const (
	ModeCampaign GameMode = iota // Level after level until a target is missed
	ModeRush                     // One long round, field refilled when emptied
)

// Game IDs as registered with the platform.
const (
	IDCampaign = "digger"
	IDRush     = "digger_rush"
)

// bankFlashTicks is how long the "+value" popup stays on screen.
const bankFlashTicks = 45

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// startLevel stores the campaign level to start from, set via CLI
var startLevel = 1

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil || preset == "" {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// SetStartLevel sets the first campaign level. Values below 1 mean 1.
func SetStartLevel(level int) {
	startLevel = max(level, 1)
}

// Game implements the hook digger game logic.
type Game struct {
	mode GameMode

	// Simulation
	hook      *dig.HookSimulator
	field     *dig.Field
	generator *dig.LevelGenerator
	level     dig.LevelConfig

	// Game state
	state      string
	score      int
	levelNum   int
	roundScore int
	timeLeft   int // Ticks
	tickCount  int
	roundTicks int
	refills    int // Rush mode field regenerations
	lastErr    error

	// Last banked value, shown briefly near the pivot
	flashValue int
	flashTicks int

	// Configuration
	runtime    core.RuntimeConfig
	cfg        config.DiggerConfig
	difficulty *config.DifficultyManager
	dt         float64

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a new hook digger game in campaign mode.
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewRush creates a new hook digger game in rush mode.
func NewRush() *Game {
	return &Game{mode: ModeRush}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeRush {
		return IDRush
	}
	return IDCampaign
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeRush {
		return "Hook Digger (Rush)"
	}
	return "Hook Digger"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.dt = runtime.TickScale()

	// Load game config
	cfg, err := config.LoadDigger(configPath)
	if err != nil {
		cfg = config.DefaultDiggerConfig()
	}

	// Apply difficulty preset if set
	if difficultyPreset != "" {
		config.ApplyDiggerPreset(&cfg, difficultyPreset)
	}

	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.generator = dig.NewLevelGenerator(cfg.Layout(), dig.DefaultCatalog(), rand.New(rand.NewSource(runtime.Seed))) //#nosec G404 -- gameplay randomness
	g.field = dig.NewField(nil)

	g.minScreenW = 40
	g.minScreenH = 16
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	g.score = 0
	g.tickCount = 0
	g.refills = 0
	g.flashTicks = 0

	first := 1
	if g.mode == ModeCampaign {
		first = startLevel
	}
	g.startLevel(first)
}

// Resize adapts to a new screen size. The field is scaled to the screen, so
// play continues where it was.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.screenTooSmall = width < g.minScreenW || height < g.minScreenH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	// Handle restart
	if in.Has(core.ActionRestart) && g.state == StateGameOver {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		if g.state == StatePaused {
			g.state = StatePlaying
		} else if g.state == StatePlaying {
			g.state = StatePaused
		}
	}

	switch g.state {
	case StatePaused, StateGameOver:
		return core.StepResult{State: g.State()}
	case StateLevelEnd:
		if in.Has(core.ActionFire) || in.Has(core.ActionConfirm) {
			g.startLevel(g.levelNum + 1)
		}
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	g.roundTicks++
	if g.flashTicks > 0 {
		g.flashTicks--
	}

	if in.Has(core.ActionFire) {
		g.hook.Trigger()
	}

	res := g.hook.Tick(g.dt, g.field)
	if res.Banked {
		g.score += res.ScoreDelta
		g.roundScore += res.ScoreDelta
		g.flashValue = res.ScoreDelta
		g.flashTicks = bankFlashTicks
	}

	g.timeLeft--
	idle := g.hook.Phase() == dig.PhaseIdle

	if g.mode == ModeRush && g.field.Len() == 0 && idle && g.timeLeft > 0 {
		g.refill()
	}

	if g.timeLeft <= 0 || (g.field.Len() == 0 && idle) {
		report := g.endRound()
		return core.StepResult{State: g.State(), Round: &report}
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Level:    g.levelNum,
		GameOver: g.state == StateGameOver,
		Paused:   g.state == StatePaused,
	}
}

// Field returns the live object field. Callers must not modify it.
func (g *Game) Field() *dig.Field {
	return g.field
}

// Hook returns the current hook state.
func (g *Game) Hook() dig.HookState {
	return g.hook.State()
}

// LevelConfig returns the configuration of the current round.
func (g *Game) LevelConfig() dig.LevelConfig {
	return g.level
}

// Err returns the last level generation failure, if any.
func (g *Game) Err() error {
	return g.lastErr
}

// Register the games with the registry
func init() {
	registry.Register(IDCampaign, func() registry.Game {
		return New()
	})
	registry.Register(IDRush, func() registry.Game {
		return NewRush()
	})
}
