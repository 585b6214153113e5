package cavern

import (
	"math"

	"github.com/vovakirdan/crystal-cavern/internal/config"
	"github.com/vovakirdan/crystal-cavern/internal/core"
	"github.com/vovakirdan/crystal-cavern/internal/levels"
)

// EnemyKind identifies an enemy's movement behaviour.
type EnemyKind int

const (
	KindWalker EnemyKind = iota // Patrols horizontally
	KindJumper                  // Hops at random
	KindFlyer                   // Bobs on a sine wave
)

// String returns the name used in level files.
func (k EnemyKind) String() string {
	switch k {
	case KindWalker:
		return levels.EnemyWalker
	case KindJumper:
		return levels.EnemyJumper
	case KindFlyer:
		return levels.EnemyFlyer
	default:
		return "unknown"
	}
}

// Glyph returns the display character for an enemy kind.
func (k EnemyKind) Glyph() rune {
	switch k {
	case KindWalker:
		return 'W'
	case KindJumper:
		return 'J'
	case KindFlyer:
		return 'F'
	default:
		return '?'
	}
}

// Enemy is anything hostile that moves on its own each tick.
type Enemy interface {
	Kind() EnemyKind
	Bounds() core.Box
	Update(w *World)
}

type body struct {
	X, Y, W, H float64
}

// Bounds returns the enemy's bounding box.
func (b *body) Bounds() core.Box {
	return core.NewBox(b.X, b.Y, b.W, b.H)
}

// Walker patrols left and right, turning around at the playfield edges.
type Walker struct {
	body
	Speed     float64
	Direction int
}

func (e *Walker) Kind() EnemyKind { return KindWalker }

func (e *Walker) Update(w *World) {
	e.X += e.Speed * float64(e.Direction)
	if e.X < 0 || e.X+e.W > w.cfg.Playfield.Width {
		e.Direction = -e.Direction
	}
}

// Jumper sits on the floor and occasionally leaps straight up.
type Jumper struct {
	body
	JumpForce float64
	VY        float64
}

func (e *Jumper) Kind() EnemyKind { return KindJumper }

func (e *Jumper) Update(w *World) {
	if w.rng.Intn(w.cfg.Enemies.JumpChance) == 0 {
		e.VY = -e.JumpForce
	}
	e.VY += w.cfg.Enemies.JumperGravity
	e.Y += e.VY

	floor := w.cfg.Playfield.FloorLine
	if e.Y+e.H > floor {
		e.Y = floor - e.H
		e.VY = 0
	}
}

// Flyer drifts vertically on a sine wave driven by the tick counter.
type Flyer struct {
	body
	Speed float64
}

func (e *Flyer) Kind() EnemyKind { return KindFlyer }

func (e *Flyer) Update(w *World) {
	e.Y += math.Sin(float64(w.tick)/w.cfg.Enemies.FlyerPeriod) * e.Speed
}

// newEnemy builds a runtime enemy from its placement. Unknown kinds are
// rejected at load time, so nil here means a hand-built campaign slipped
// through.
func newEnemy(tmpl levels.Enemy, cfg config.CavernConfig) Enemy {
	b := body{X: tmpl.X, Y: tmpl.Y, W: tmpl.W, H: tmpl.H}
	switch tmpl.Type {
	case levels.EnemyWalker:
		dir := 1
		if tmpl.Speed < 0 {
			dir = -1
		}
		return &Walker{body: b, Speed: math.Abs(tmpl.Speed), Direction: dir}
	case levels.EnemyJumper:
		return &Jumper{body: b, JumpForce: tmpl.JumpForce}
	case levels.EnemyFlyer:
		return &Flyer{body: b, Speed: tmpl.Speed}
	default:
		return nil
	}
}

// updateEnemies moves every enemy, applies contact damage and lets player
// bullets destroy enemies. A bullet removes at most one enemy.
func updateEnemies(w *World) {
	lvl := w.level()
	for _, e := range lvl.Enemies {
		e.Update(w)
	}

	epoch := w.epoch
	p := w.player
	roster := append([]Enemy(nil), lvl.Enemies...)
	for _, e := range roster {
		bounds := e.Bounds()

		if p.Box().Intersects(bounds) {
			w.damagePlayer(w.cfg.Combat.ContactDamage)
			// A lost life rebuilds the level; this roster is stale now.
			if w.epoch != epoch || w.state != StatePlaying {
				return
			}
		}

		for i, b := range p.Bullets {
			if b.Box().Intersects(bounds) {
				lvl.removeEnemy(e)
				p.Bullets = append(p.Bullets[:i], p.Bullets[i+1:]...)
				w.score += w.cfg.Combat.EnemyPoints
				break
			}
		}
	}
}
