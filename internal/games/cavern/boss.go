package cavern

import (
	"math"

	"github.com/vovakirdan/crystal-cavern/internal/core"
	"github.com/vovakirdan/crystal-cavern/internal/levels"
)

// Boss is the final-level enemy. It patrols like a walker and periodically
// fires a rotating ring of bullets.
type Boss struct {
	X, Y, W, H     float64
	Speed          float64 // Signed horizontal velocity
	Health         int
	MaxHealth      int
	AttackCooldown int
	Pattern        string
	BulletSpeed    float64
	Active         bool
}

func newBoss(tmpl levels.Boss) *Boss {
	return &Boss{
		X:              tmpl.X,
		Y:              tmpl.Y,
		W:              tmpl.W,
		H:              tmpl.H,
		Speed:          tmpl.Speed,
		Health:         tmpl.Health,
		MaxHealth:      tmpl.Health,
		AttackCooldown: tmpl.AttackCooldown,
		Pattern:        tmpl.Pattern,
		BulletSpeed:    tmpl.BulletSpeed,
		Active:         true,
	}
}

// Box returns the boss's bounding box.
func (b *Boss) Box() core.Box {
	return core.NewBox(b.X, b.Y, b.W, b.H)
}

// fireRing emits one ring of bullets from the boss centre. The ring is
// rotated by the tick counter so consecutive volleys form a spiral.
func (w *World) fireRing(b *Boss) {
	cx, cy := b.Box().Center()
	step := w.cfg.Boss.RingStep
	if step <= 0 {
		step = 45
	}
	for angle := 0.0; angle < 360; angle += step {
		rad := (angle + float64(w.tick)*w.cfg.Boss.SpiralRate) * math.Pi / 180
		w.bossBullets = append(w.bossBullets, &Bullet{
			X:      cx,
			Y:      cy,
			VX:     b.BulletSpeed * math.Cos(rad),
			VY:     b.BulletSpeed * math.Sin(rad),
			Radius: w.cfg.Boss.BulletRadius,
		})
	}
}

// updateBoss moves the boss, fires on cooldown and settles all bullet
// exchanges. Player hits on the boss are settled first so a killing shot
// wins the tick.
func updateBoss(w *World) {
	b := w.boss
	if b == nil || !b.Active {
		return
	}
	field := w.cfg.Playfield

	b.X += b.Speed
	if b.X < 0 || b.X+b.W > field.Width {
		b.Speed = -b.Speed
	}

	b.AttackCooldown--
	if b.AttackCooldown <= 0 {
		b.AttackCooldown = w.cfg.Boss.AttackInterval
		w.fireRing(b)
	}

	bounds := core.NewBox(0, 0, field.Width, field.Height)
	live := w.bossBullets[:0]
	for _, bb := range w.bossBullets {
		bb.Move()
		if bb.X >= bounds.X && bb.X <= bounds.Right() && bb.Y >= bounds.Y && bb.Y <= bounds.Bottom() {
			live = append(live, bb)
		}
	}
	w.bossBullets = live

	p := w.player
	bossBox := b.Box()
	for i := 0; i < len(p.Bullets); {
		if !p.Bullets[i].Box().Intersects(bossBox) {
			i++
			continue
		}
		p.Bullets = append(p.Bullets[:i], p.Bullets[i+1:]...)
		b.Health -= w.cfg.Combat.BossHitDamage
		if b.Health <= 0 {
			b.Health = 0
			b.Active = false
			w.score += w.cfg.Combat.BossPoints
			w.log.Info("boss defeated", "score", w.score)
			w.setState(StateWin)
			return
		}
	}

	epoch := w.epoch
	for i := 0; i < len(w.bossBullets); {
		if !w.bossBullets[i].Box().Intersects(p.Box()) {
			i++
			continue
		}
		w.bossBullets = append(w.bossBullets[:i], w.bossBullets[i+1:]...)
		w.damagePlayer(w.cfg.Combat.BossBulletDamage)
		if w.epoch != epoch || w.state != StatePlaying {
			return
		}
	}
}
