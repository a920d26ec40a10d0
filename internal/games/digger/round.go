package digger

import (
	"github.com/vovakirdan/hook-digger/internal/config"
	"github.com/vovakirdan/hook-digger/internal/core"
	"github.com/vovakirdan/hook-digger/internal/dig"
)

// startLevel sets up round n: level config, a fresh hook and a new field.
func (g *Game) startLevel(n int) {
	g.levelNum = n

	lc, err := g.cfg.LevelFor(n, g.difficulty)
	if err != nil {
		lc, _ = config.DefaultDiggerConfig().LevelFor(n, g.difficulty)
	}
	if g.mode == ModeRush && g.cfg.Round.RushTimeLimit > 0 {
		lc.TimeLimit = g.cfg.Round.RushTimeLimit
	}
	g.level = lc

	hc := g.cfg.HookSettings()
	hc.SwingSpeed = g.difficulty.SwingSpeed(hc.SwingSpeed, n)
	g.hook = dig.NewHookSimulator(hc)

	g.generate()

	g.roundScore = 0
	g.roundTicks = 0
	g.timeLeft = lc.TimeLimit * g.tickRate()
	g.state = StatePlaying
}

// generate fills the field for the current level config.
func (g *Game) generate() {
	objs, err := g.generator.Generate(g.level)
	if err != nil {
		g.lastErr = err
		objs = nil
	}
	g.field.Replace(objs)
}

// refill regenerates an emptied field in rush mode.
func (g *Game) refill() {
	g.refills++
	g.generate()
}

// endRound closes the current round and decides where the game goes next.
// Score carries across levels, so the target is checked against the total.
func (g *Game) endRound() core.RoundReport {
	cleared := g.score >= g.level.TargetScore

	report := core.RoundReport{
		Level:       g.levelNum,
		Score:       g.score,
		RoundScore:  g.roundScore,
		Target:      g.level.TargetScore,
		Cleared:     cleared,
		ObjectsLeft: g.field.Len(),
		Ticks:       g.roundTicks,
	}

	if g.mode == ModeCampaign && cleared {
		g.state = StateLevelEnd
	} else {
		g.state = StateGameOver
	}
	return report
}

func (g *Game) tickRate() int {
	if g.runtime.TickRate <= 0 {
		return core.NominalTickRate
	}
	return g.runtime.TickRate
}

// secondsLeft rounds the remaining time up to whole seconds.
func (g *Game) secondsLeft() int {
	if g.timeLeft <= 0 {
		return 0
	}
	rate := g.tickRate()
	return (g.timeLeft + rate - 1) / rate
}
