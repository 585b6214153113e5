package cavern

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/crystal-cavern/internal/core"
	"github.com/vovakirdan/crystal-cavern/internal/levels"
)

// Visual characters for rendering
const (
	PlayerChar     = '@'
	PlatformChar   = '█'
	MovingChar     = '▒'
	CrystalChar    = '◆'
	PortalChar     = 'O'
	BossChar       = '▓'
	BulletChar     = '•'
	BossBulletChar = '*'
	LavaChar       = '~'
	BorderHoriz    = '─'
)

// hudRows is the number of screen rows reserved above the playfield.
const hudRows = 2

// viewport maps playfield pixels onto screen cells below the HUD.
type viewport struct {
	sx, sy float64
	top    int
}

func newViewport(dst *core.Screen, fieldW, fieldH float64) viewport {
	rows := dst.Height() - hudRows
	if rows < 1 {
		rows = 1
	}
	return viewport{
		sx:  float64(dst.Width()) / fieldW,
		sy:  float64(rows) / fieldH,
		top: hudRows,
	}
}

// cell converts a playfield point to a screen cell.
func (v viewport) cell(x, y float64) (int, int) {
	return int(math.Floor(x * v.sx)), int(math.Floor(y*v.sy)) + v.top
}

// span converts a box to a screen rectangle at least one cell in size.
func (v viewport) span(b core.Box) core.Rect {
	x0, y0 := v.cell(b.X, b.Y)
	x1 := int(math.Ceil(b.Right() * v.sx))
	y1 := int(math.Ceil(b.Bottom()*v.sy)) + v.top
	return core.NewRect(x0, y0, core.Max(1, x1-x0), core.Max(1, y1-y0))
}

func themeColor(t levels.Theme) core.Color {
	switch t {
	case levels.ThemeForest:
		return core.ColorGreen
	case levels.ThemeCave:
		return core.ColorBrown
	case levels.ThemeLava:
		return core.ColorOrange
	case levels.ThemeIce:
		return core.ColorBrightCyan
	case levels.ThemeSpace:
		return core.ColorMagenta
	default:
		return core.ColorGray
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.Snapshot()

	if snap.State == StateTitle {
		g.renderTitle(dst, snap)
		return
	}

	vp := newViewport(dst, g.cfg.Playfield.Width, g.cfg.Playfield.Height)
	g.renderHUD(dst, snap)
	g.renderLevel(dst, vp, snap)
	g.renderActors(dst, vp, snap)
	g.renderOverlay(dst, snap)
}

// renderHUD draws score, lives, health, level, gems and active effects.
func (g *Game) renderHUD(dst *core.Screen, snap Snapshot) {
	left := fmt.Sprintf("Score: %d  Lives: %d  HP: %d", snap.Score, snap.Lives, int(math.Ceil(snap.Player.Health)))
	dst.DrawText(1, 0, left)

	level := fmt.Sprintf("%d/%d %s", snap.LevelIndex+1, snap.LevelCount, snap.LevelName)
	dst.DrawTextCentered(0, level)

	gems := fmt.Sprintf("Gems: %d/%d", snap.Gems, snap.TotalGems)
	dst.DrawText(dst.Width()-len(gems)-1, 0, gems)

	if effects := buildEffectsString(snap.Effects); effects != "" {
		dst.DrawTextColored(1, 1, effects, core.ColorBrightYellow)
		return
	}
	for x := range dst.Width() {
		dst.SetColored(x, 1, BorderHoriz, core.ColorGray)
	}
}

// buildEffectsString creates a compact effects display.
func buildEffectsString(effects []EffectView) string {
	parts := make([]string, 0, len(effects))
	for _, e := range effects {
		parts = append(parts, fmt.Sprintf("%s(%d)", e.Kind, (e.Remaining+59)/60))
	}
	return strings.Join(parts, " ")
}

// renderLevel draws the static scenery: lava, platforms, pickups, portal.
func (g *Game) renderLevel(dst *core.Screen, vp viewport, snap Snapshot) {
	color := themeColor(snap.Theme)

	if snap.Theme == levels.ThemeLava {
		_, y := vp.cell(0, g.cfg.Playfield.FloorLine)
		for x := range dst.Width() {
			dst.SetColored(x, y, LavaChar, core.ColorRed)
		}
	}

	for _, pl := range snap.Platforms {
		glyph := PlatformChar
		if pl.Moving {
			glyph = MovingChar
		}
		dst.DrawRect(vp.span(core.NewBox(pl.X, pl.Y, pl.W, pl.H)), glyph, color)
	}

	for _, c := range snap.Crystals {
		x, y := vp.cell(core.NewBox(c.X, c.Y, c.Size, c.Size).Center())
		dst.SetColored(x, y, CrystalChar, core.ColorCyan)
	}

	for _, pu := range snap.PowerUps {
		x, y := vp.cell(core.NewBox(pu.X, pu.Y, pu.Size, pu.Size).Center())
		dst.SetColored(x, y, powerUpGlyph(pu.Kind), core.ColorGreen)
	}

	if snap.Portal != nil {
		x, y := vp.cell(snap.Portal.X, snap.Portal.Y)
		dst.SetColored(x, y, PortalChar, core.ColorMagenta)
	}
}

// renderActors draws enemies, the boss, bullets and the player.
func (g *Game) renderActors(dst *core.Screen, vp viewport, snap Snapshot) {
	for _, e := range snap.Enemies {
		dst.DrawRect(vp.span(core.NewBox(e.X, e.Y, e.W, e.H)), e.Kind.Glyph(), core.ColorRed)
	}

	if b := snap.Boss; b != nil && b.Active {
		r := vp.span(core.NewBox(b.X, b.Y, b.W, b.H))
		dst.DrawRect(r, BossChar, core.ColorBrightRed)
		bar := fmt.Sprintf("BOSS %d/%d", b.Health, b.MaxHealth)
		dst.DrawTextColored(r.X, r.Y-1, bar, core.ColorBrightRed)
	}

	for _, b := range snap.BossBullets {
		x, y := vp.cell(b.X, b.Y)
		dst.SetColored(x, y, BossBulletChar, core.ColorRed)
	}

	for _, b := range snap.Bullets {
		x, y := vp.cell(b.X, b.Y)
		dst.SetColored(x, y, BulletChar, core.ColorYellow)
	}

	p := snap.Player
	// Blink while invincible.
	if p.Invincible && (g.frames/4)%2 == 1 {
		return
	}
	dst.DrawRect(vp.span(core.NewBox(p.X, p.Y, p.W, p.H)), PlayerChar, core.ColorBlue)
}

// renderTitle draws the title card.
func (g *Game) renderTitle(dst *core.Screen, snap Snapshot) {
	g.drawCenteredBox(dst, "CRYSTAL CAVERN", fmt.Sprintf("%d levels  |  %d crystals", snap.LevelCount, snap.TotalGems))
	if (g.frames/30)%2 == 0 {
		dst.DrawTextCentered(dst.Height()/2+4, "Press SPACE to start")
	}
	dst.DrawTextCentered(dst.Height()-1, "arrows move  up jump  z dash  space shoot  p pause  q quit")
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen, snap Snapshot) {
	switch {
	case snap.Paused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case snap.State == StateGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", snap.Score)
		g.drawCenteredBox(dst, "GAME OVER", subtitle)

	case snap.State == StateWin:
		subtitle := fmt.Sprintf("Final Score: %d  Gems: %d/%d  |  Press R to restart", snap.Score, snap.Gems, snap.TotalGems)
		g.drawCenteredBox(dst, "YOU WIN!", subtitle)
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

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
