package cavern

import (
	"github.com/vovakirdan/crystal-cavern/internal/config"
	"github.com/vovakirdan/crystal-cavern/internal/core"
	"github.com/vovakirdan/crystal-cavern/internal/levels"
)

// Platform is a solid rectangle in play. Moving platforms oscillate
// horizontally between minX and maxX, or between the playfield edges when
// the level gives them no range.
type Platform struct {
	X, Y, W, H float64
	Moving     bool
	Direction  int
	Speed      float64

	minX, maxX float64
}

func newPlatform(tmpl levels.Platform, fieldW float64) *Platform {
	p := &Platform{
		X:         tmpl.X,
		Y:         tmpl.Y,
		W:         tmpl.W,
		H:         tmpl.H,
		Moving:    tmpl.Moving,
		Direction: tmpl.Direction,
		Speed:     tmpl.Speed,
		minX:      0,
		maxX:      fieldW - tmpl.W,
	}
	if p.Direction == 0 {
		p.Direction = 1
	}
	if tmpl.Range > 0 {
		if p.Direction > 0 {
			p.minX, p.maxX = tmpl.X, tmpl.X+tmpl.Range
		} else {
			p.minX, p.maxX = tmpl.X-tmpl.Range, tmpl.X
		}
	}
	return p
}

// Box returns the platform's bounding box.
func (p *Platform) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.W, p.H)
}

// Delta is the horizontal displacement the platform applies this tick.
func (p *Platform) Delta() float64 {
	if !p.Moving {
		return 0
	}
	return p.Speed * float64(p.Direction)
}

// Advance moves the platform one tick and reverses it once it has left its
// travel interval.
func (p *Platform) Advance() {
	if !p.Moving {
		return
	}
	p.X += p.Delta()
	if p.X < p.minX || p.X > p.maxX {
		p.Direction = -p.Direction
	}
}

// Pickup is a crystal or power-up lying in the level.
type Pickup struct {
	Kind      string // "crystal" or a power-up kind
	X, Y      float64
	Collected bool
}

// KindCrystal marks a Pickup as a crystal.
const KindCrystal = "crystal"

// LevelState is the mutable runtime form of one campaign level. It is built
// from an immutable template and can restore itself from it.
type LevelState struct {
	Index    int
	Template levels.Level

	Platforms []*Platform
	Enemies   []Enemy
	Crystals  []*Pickup
	PowerUps  []*Pickup
}

func newLevelState(index int, tmpl levels.Level, cfg config.CavernConfig) *LevelState {
	ls := &LevelState{Index: index, Template: tmpl.Clone()}

	ls.Platforms = make([]*Platform, 0, len(tmpl.Platforms))
	for _, p := range tmpl.Platforms {
		ls.Platforms = append(ls.Platforms, newPlatform(p, cfg.Playfield.Width))
	}

	ls.Crystals = make([]*Pickup, 0, len(tmpl.Crystals))
	for _, c := range tmpl.Crystals {
		ls.Crystals = append(ls.Crystals, &Pickup{Kind: KindCrystal, X: c.X, Y: c.Y})
	}

	ls.PowerUps = make([]*Pickup, 0, len(tmpl.PowerUps))
	for _, pu := range tmpl.PowerUps {
		ls.PowerUps = append(ls.PowerUps, &Pickup{Kind: pu.Type, X: pu.X, Y: pu.Y})
	}

	ls.restoreEnemies(cfg)
	return ls
}

// Theme returns the level theme.
func (ls *LevelState) Theme() levels.Theme {
	return ls.Template.Theme
}

// restorePickups marks every crystal and power-up as uncollected.
func (ls *LevelState) restorePickups() {
	for _, c := range ls.Crystals {
		c.Collected = false
	}
	for _, pu := range ls.PowerUps {
		pu.Collected = false
	}
}

// restoreEnemies rebuilds the enemy roster from the template.
func (ls *LevelState) restoreEnemies(cfg config.CavernConfig) {
	ls.Enemies = make([]Enemy, 0, len(ls.Template.Enemies))
	for _, e := range ls.Template.Enemies {
		if enemy := newEnemy(e, cfg); enemy != nil {
			ls.Enemies = append(ls.Enemies, enemy)
		}
	}
}

// removeEnemy drops a single enemy from the roster.
func (ls *LevelState) removeEnemy(target Enemy) {
	for i, e := range ls.Enemies {
		if e == target {
			ls.Enemies = append(ls.Enemies[:i], ls.Enemies[i+1:]...)
			return
		}
	}
}

// scatterPowerUps places perLevel random power-ups on every level that
// declares none of its own.
func scatterPowerUps(c levels.Campaign, perLevel int, rng *SimpleRNG) levels.Campaign {
	out := c.Clone()
	for i := range out.Levels {
		if len(out.Levels[i].PowerUps) > 0 {
			continue
		}
		for range perLevel {
			out.Levels[i].PowerUps = append(out.Levels[i].PowerUps, levels.PowerUp{
				Type: levels.PowerUpKinds[rng.Intn(len(levels.PowerUpKinds))],
				X:    float64(rng.Range(100, 700)),
				Y:    float64(rng.Range(100, 400)),
			})
		}
	}
	return out
}

// resolvePlatforms lands the player on any platform it is falling onto,
// carries it with moving platforms and applies the lava floor hazard.
// Platforms only catch from above.
func resolvePlatforms(w *World) {
	p := w.player
	lvl := w.level()

	p.Grounded = false
	box := p.Box()
	for _, pl := range lvl.Platforms {
		pb := pl.Box()
		if !box.Intersects(pb) {
			continue
		}
		if p.VY >= 0 && box.Bottom() <= pb.Bottom() {
			p.Y = pb.Y - p.H
			p.VY = 0
			p.Grounded = true
			p.OnIce = lvl.Theme() == levels.ThemeIce
			p.X += pl.Delta()
		}
	}

	if lvl.Theme() == levels.ThemeLava && p.Y+p.H >= w.cfg.Playfield.FloorLine {
		w.damagePlayer(w.cfg.Combat.LavaDamage)
	}
}

// advancePlatforms moves every moving platform of the current level.
func advancePlatforms(w *World) {
	for _, pl := range w.level().Platforms {
		pl.Advance()
	}
}
