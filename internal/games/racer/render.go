package racer

import (
	"fmt"

	"github.com/vovakirdan/gridracer/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar     = '@'
	CrashChar      = 'X'
	TrailChar      = '·'
	FinishChar     = '#'
	CheckpointChar = ':'
)

const (
	hudHeight  = 2
	minScreenW = 20
	minScreenH = 8
)

// Render draws the race to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	view := g.viewport(dst)
	g.renderTrack(dst, view)
	g.renderTrail(dst, view)
	g.renderCars(dst, view)

	switch {
	case g.won:
		g.renderOverlay(dst, "Finished!", fmt.Sprintf("Final Score: %d", g.score))
	case g.err != nil:
		g.renderOverlay(dst, "Race stopped", "Press R to restart")
	case g.gameOver:
		g.renderOverlay(dst, "Crashed!", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// viewport fits the track into the area below the HUD.
func (g *Game) viewport(dst *core.Screen) core.Viewport {
	area := core.NewRect(0, hudHeight, dst.Width(), dst.Height()-hudHeight)
	lo, hi := g.track.Corners()
	return core.FitViewport(area, lo.X, lo.Y, hi.X, hi.Y)
}

func (g *Game) renderHUD(dst *core.Screen) {
	lapText := fmt.Sprintf("%d", g.laps)
	if g.cfg.Track.Laps > 0 {
		lapText = fmt.Sprintf("%d/%d", g.laps, g.cfg.Track.Laps)
	}
	v := g.velocity(g.player)
	hud := fmt.Sprintf(" %s | Lap %s | Score %d | Speed %g,%g (max %d) | Moves %d",
		g.Title(), lapText, g.score, v.X, v.Y, g.MaxSpeed(), g.moves)
	if g.difficulty.IsEnabled() {
		hud += fmt.Sprintf(" | Level %d%%", int(g.difficulty.Level(g.score, g.tick)*100))
	}
	dst.DrawText(0, 0, hud)

	for x := range dst.Width() {
		dst.Set(x, 1, '─')
	}
}

func (g *Game) renderTrack(dst *core.Screen, view core.Viewport) {
	lo, hi := g.track.Corners()
	x0, y0 := view.Project(lo.X, lo.Y)
	x1, y1 := view.Project(hi.X, hi.Y)
	dst.DrawBox(core.NewRect(x0, y0, x1-x0+1, y1-y0+1), core.ColorWhite)

	g.renderLine(dst, view, g.checkpoint.V0.X, g.checkpoint.V0.Y, g.checkpoint.V1.X, g.checkpoint.V1.Y, CheckpointChar, core.ColorYellow)
	g.renderLine(dst, view, g.finish.V0.X, g.finish.V0.Y, g.finish.V1.X, g.finish.V1.Y, FinishChar, core.ColorBrightWhite)
}

func (g *Game) renderLine(dst *core.Screen, view core.Viewport, ax, ay, bx, by float64, r rune, c core.Color) {
	x0, y0 := view.Project(ax, ay)
	x1, y1 := view.Project(bx, by)
	dst.DrawLine(x0, y0, x1, y1, r, c)
}

func (g *Game) renderTrail(dst *core.Screen, view core.Viewport) {
	for _, p := range g.trail {
		x, y := view.Project(p.X, p.Y)
		dst.SetColor(x, y, TrailChar, core.ColorGray)
	}
}

func (g *Game) renderCars(dst *core.Screen, view core.Viewport) {
	for i, e := range g.rivals {
		name, _ := g.world.Names.Get(e)
		glyph := '?'
		for _, r := range string(name) {
			glyph = r
			break
		}
		color := core.CarColor(i, string(name))
		if g.world.Crashed(e) {
			glyph = CrashChar
		}
		p := g.position(e)
		x, y := view.Project(p.X, p.Y)
		dst.SetColor(x, y, glyph, color)
	}

	p := g.position(g.player)
	x, y := view.Project(p.X, p.Y)
	if g.world.Crashed(g.player) {
		dst.SetColor(x, y, CrashChar, core.ColorRed)
		return
	}
	dst.SetColor(x, y, PlayerChar, core.ColorBrightGreen)
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := max(len([]rune(line1)), len([]rune(line2))) + 4
	h := 5
	box := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)

	for y := box.Y + 1; y < box.Bottom()-1; y++ {
		for x := box.X + 1; x < box.Right()-1; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box, core.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
