package invaders

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Glyphs used when drawing entities.
const (
	WallChar      = '█'
	SpaceshipChar = '▀'
	LaserChar     = '│'
	AlienChar     = '▓'
)

// Palette follows the classic look: blue spaceship, salmon lasers,
// lavender aliens and grey walls.
const (
	SpaceshipColor = core.ColorBlue
	LaserColor     = core.ColorSalmon
	AlienColor     = core.ColorLavender
	WallColor      = core.ColorGray
	ScoreColor     = core.ColorSalmon
	LivesColor     = core.ColorBrightMagenta
	TextColor      = core.ColorLavender
)

// Projection maps world coordinates (+Y up) onto a screen rectangle (+Y down).
type Projection struct {
	World  core.Box
	Screen core.Rect
}

// NewProjection fits the whole arena, walls included, into the screen area.
func NewProjection(a Arena, screen core.Rect) Projection {
	return Projection{World: a.Bounds(), Screen: screen}
}

// Column returns the screen column containing world x.
func (p Projection) Column(x float64) int {
	lo, hi := p.World.Min().X, p.World.Max().X
	if hi <= lo || p.Screen.W <= 0 {
		return p.Screen.X
	}
	col := int(math.Floor((x - lo) / (hi - lo) * float64(p.Screen.W)))
	return p.Screen.X + clampInt(col, 0, p.Screen.W-1)
}

// Row returns the screen row containing world y.
func (p Projection) Row(y float64) int {
	lo, hi := p.World.Min().Y, p.World.Max().Y
	if hi <= lo || p.Screen.H <= 0 {
		return p.Screen.Y
	}
	row := int(math.Floor((hi - y) / (hi - lo) * float64(p.Screen.H)))
	return p.Screen.Y + clampInt(row, 0, p.Screen.H-1)
}

// Rect returns the screen cells covered by a world box. Every visible box
// covers at least one cell.
func (p Projection) Rect(b core.Box) core.Rect {
	left := p.Column(b.Min().X)
	right := p.Column(b.Max().X)
	top := p.Row(b.Max().Y)
	bottom := p.Row(b.Min().Y)
	return core.NewRect(left, top, right-left+1, bottom-top+1)
}

// Visible reports whether any part of the box is inside the projected area.
func (p Projection) Visible(b core.Box) bool {
	return b.Overlaps(p.World)
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return core.Max(lo, core.Min(hi, v))
}

// Render draws the current game state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	proj := NewProjection(g.sim.Arena, core.NewRect(0, 1, dst.Width(), dst.Height()-1))

	g.renderHUD(dst)
	g.renderWorld(dst, proj)
	g.renderOverlay(dst)
}

func (g *Game) renderHUD(dst *core.Screen) {
	score := fmt.Sprintf("Score: %d", g.sim.Score)
	lives := fmt.Sprintf("  Lives remaining: %d", g.sim.Lives)
	dst.DrawTextColor(1, 0, score, ScoreColor)
	dst.DrawTextColor(1+len(score), 0, lives, LivesColor)

	title := g.Title()
	if x := dst.Width() - len([]rune(title)) - 1; x > 1+len(score)+len(lives) {
		dst.DrawTextColor(x, 0, title, TextColor)
	}
}

func (g *Game) renderWorld(dst *core.Screen, proj Projection) {
	w := g.sim.World
	draw := func(tag Tag, glyph rune, color core.Color) {
		for _, e := range w.Tagged(tag) {
			t, _ := w.Transform(e)
			box := t.Box()
			if !proj.Visible(box) {
				continue
			}
			dst.DrawRect(proj.Rect(box), glyph, color)
		}
	}

	draw(TagWall, WallChar, WallColor)
	draw(TagAlien, AlienChar, AlienColor)
	draw(TagLaser, LaserChar, LaserColor)
	draw(TagSpaceship, SpaceshipChar, SpaceshipColor)
}

func (g *Game) renderOverlay(dst *core.Screen) {
	switch {
	case g.sim.Phase == PhaseMainMenu:
		g.drawCenteredBox(dst, g.Title(), []string{
			"←/→ or A/D  move",
			"Space  fire",
			"Enter  start",
		})
	case g.sim.Phase == PhaseGameOver:
		g.drawCenteredBox(dst, "Game Over", []string{
			fmt.Sprintf("Your score: %d", g.sim.Score),
			"R  restart   Q  quit",
		})
	case g.paused:
		g.drawCenteredBox(dst, "PAUSED", []string{"P  resume"})
	}
}

func (g *Game) drawCenteredBox(dst *core.Screen, title string, lines []string) {
	width := len([]rune(title)) + 4
	for _, l := range lines {
		width = core.Max(width, len([]rune(l))+4)
	}
	height := len(lines) + 4

	x := (dst.Width() - width) / 2
	y := (dst.Height() - height) / 2
	box := core.NewRect(x, y, width, height)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, TextColor)
	dst.DrawTextColor(x+(width-len([]rune(title)))/2, y+1, title, LivesColor)
	for i, l := range lines {
		dst.DrawTextColor(x+2, y+3+i, l, TextColor)
	}
}
