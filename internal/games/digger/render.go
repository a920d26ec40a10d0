package digger

import (
	"fmt"

	"github.com/vovakirdan/hook-digger/internal/core"
	"github.com/vovakirdan/hook-digger/internal/dig"
)

// Visual characters for rendering
const (
	SurfaceChar = '▀'
	SoilChar    = '.'
	RopeChar    = '·'
	HookChar    = 'V'
	ReelChar    = '◎'
	MinerChar   = '@'
)

// KindGlyph returns the glyph and color objects of a kind are drawn with.
func KindGlyph(k dig.Kind) (rune, core.Color) {
	switch k {
	case dig.KindCommon:
		return '$', core.ColorBrightYellow
	case dig.KindHeavy:
		return '#', core.ColorGray
	case dig.KindPrecious:
		return '*', core.ColorBrightCyan
	case dig.KindWildcard:
		return '?', core.ColorMagenta
	default:
		return '?', core.ColorDefault
	}
}

// viewport maps field coordinates to screen cells. Row 0 is the HUD.
type viewport struct {
	fieldW, fieldH float64
	cols, rows     int
}

func (g *Game) viewport(dst *core.Screen) viewport {
	return viewport{
		fieldW: g.cfg.Field.Width,
		fieldH: g.cfg.Field.Height,
		cols:   dst.Width(),
		rows:   dst.Height(),
	}
}

func (v viewport) cell(p core.Vec) (int, int) {
	x := int(p.X / v.fieldW * float64(v.cols-1))
	y := 1 + int(p.Y/v.fieldH*float64(v.rows-2))
	return core.Clamp(x, 0, v.cols-1), core.Clamp(y, 1, v.rows-1)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Check for screen too small
	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	vp := g.viewport(dst)

	g.renderGround(dst, vp)
	g.renderObjects(dst, vp)
	g.renderHook(dst, vp)
	g.renderHUD(dst)
	g.renderOverlay(dst)
}

// renderHUD draws score, target, time and level.
func (g *Game) renderHUD(dst *core.Screen) {
	scoreText := fmt.Sprintf("Score: %d / %d", g.score, g.level.TargetScore)
	color := core.ColorWhite
	if g.score >= g.level.TargetScore {
		color = core.ColorBrightGreen
	}
	dst.DrawTextColor(1, 0, scoreText, color)

	timeText := fmt.Sprintf("Time: %02d", g.secondsLeft())
	timeColor := core.ColorWhite
	if g.secondsLeft() <= 10 {
		timeColor = core.ColorBrightRed
	}
	dst.DrawTextColor((dst.Width()-len(timeText))/2, 0, timeText, timeColor)

	var levelText string
	if g.mode == ModeRush {
		levelText = fmt.Sprintf("Rush x%d", g.refills+1)
	} else {
		levelText = fmt.Sprintf("Level: %d", g.levelNum)
	}
	dst.DrawText(dst.Width()-len(levelText)-1, 0, levelText)
}

// renderGround draws the surface line and the soil texture below it.
func (g *Game) renderGround(dst *core.Screen, vp viewport) {
	_, surface := vp.cell(core.V(0, g.cfg.Field.SurfaceY))
	dst.DrawHLine(0, surface, dst.Width(), SurfaceChar, core.ColorGreen)

	for y := surface + 1; y < dst.Height(); y++ {
		for x := range dst.Width() {
			if (x+2*y)%6 == 0 {
				dst.SetColor(x, y, SoilChar, core.ColorBrown)
			}
		}
	}
}

// renderObjects draws every buried object as a block of its kind glyph.
func (g *Game) renderObjects(dst *core.Screen, vp viewport) {
	for _, obj := range g.field.Objects() {
		glyph, color := KindGlyph(obj.Kind)
		b := obj.Bounds()
		x0, y0 := vp.cell(b.Min())
		x1, y1 := vp.cell(b.Max())
		dst.DrawRectColor(core.NewRect(x0, y0, x1-x0+1, y1-y0+1), glyph, color)
	}
}

// renderHook draws the miner, the rope and the hook tip.
func (g *Game) renderHook(dst *core.Screen, vp viewport) {
	cfg := g.hook.Config()
	hs := g.hook.State()

	px, py := vp.cell(cfg.Pivot)
	tx, ty := vp.cell(g.hook.Tip())

	dst.DrawLine(px, py, tx, ty, RopeChar, core.ColorWhite)

	if hs.Carried != nil {
		glyph, color := KindGlyph(hs.Carried.Kind)
		dst.SetColor(tx, ty, glyph, color)
	} else {
		dst.SetColor(tx, ty, HookChar, core.ColorRed)
	}

	dst.SetColor(px, py, ReelChar, core.ColorOrange)
	if py > 1 {
		dst.SetColor(px, py-1, MinerChar, core.ColorOrange)
	}

	if g.flashTicks > 0 {
		dst.DrawTextColor(px+2, core.Max(py-1, 1), fmt.Sprintf("+%d", g.flashValue), core.ColorBrightYellow)
	}
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StatePlaying:
		if g.lastErr != nil && g.field.Len() == 0 {
			dst.DrawTextColor(1, dst.Height()-1, g.lastErr.Error(), core.ColorRed)
		} else if g.hook.Phase() == dig.PhaseIdle && g.roundTicks < 3*g.tickRate() {
			dst.DrawTextCentered(dst.Height()-1, "Press SPACE to drop the hook")
		}

	case StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case StateLevelEnd:
		title := fmt.Sprintf("LEVEL %d CLEARED", g.levelNum)
		subtitle := fmt.Sprintf("Score: %d  |  Press SPACE for level %d", g.score, g.levelNum+1)
		g.drawCenteredBox(dst, title, subtitle)

	case StateGameOver:
		title := "GAME OVER"
		if g.mode == ModeRush {
			title = "TIME UP"
		}
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.score)
		g.drawCenteredBox(dst, title, subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextColor(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightWhite)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
