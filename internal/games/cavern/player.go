package cavern

import (
	"github.com/vovakirdan/crystal-cavern/internal/config"
	"github.com/vovakirdan/crystal-cavern/internal/core"
)

// Bullet is a round projectile. Player bullets travel horizontally, boss
// bullets along any vector.
type Bullet struct {
	X, Y   float64 // Centre
	VX, VY float64 // Velocity per tick
	Radius float64
}

// Box returns the bullet's square hit region.
func (b *Bullet) Box() core.Box {
	return core.BoxAround(b.X, b.Y, b.Radius)
}

// Move advances the bullet by its velocity.
func (b *Bullet) Move() {
	b.X += b.VX
	b.Y += b.VY
}

// Player is the single player character. It is reset, never recreated,
// when a life is lost.
type Player struct {
	X, Y   float64 // Top-left corner
	VX, VY float64
	W, H   float64
	Facing int // +1 right, -1 left

	Gravity   float64
	MoveSpeed float64
	JumpForce float64

	Grounded       bool
	DoubleJumpUsed bool
	OnIce          bool

	Invincible      bool
	InvincibleTimer int
	DashCooldown    int
	ShootCooldown   int

	Health    float64
	MaxHealth float64

	Bullets []*Bullet
}

func newPlayer(cfg config.CavernConfig) *Player {
	return &Player{
		W:         cfg.Player.Width,
		H:         cfg.Player.Height,
		Facing:    1,
		Gravity:   cfg.Physics.Gravity,
		MoveSpeed: cfg.Physics.MoveSpeed,
		JumpForce: cfg.Physics.JumpForce,
		Health:    cfg.Player.MaxHealth,
		MaxHealth: cfg.Player.MaxHealth,
	}
}

// Box returns the player's bounding box.
func (p *Player) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.W, p.H)
}

// jump performs a ground jump, or the single air jump if it is still
// available.
func (p *Player) jump() {
	if p.Grounded {
		p.VY = -p.JumpForce
		p.Grounded = false
		p.DoubleJumpUsed = false
		return
	}
	if !p.DoubleJumpUsed {
		p.VY = -p.JumpForce
		p.DoubleJumpUsed = true
	}
}

// grantInvincibility starts (or restarts) the invincibility window.
func (p *Player) grantInvincibility(ticks int) {
	p.Invincible = true
	p.InvincibleTimer = ticks
}

// tickTimers counts every cooldown down by one tick, clamped at zero.
func (p *Player) tickTimers() {
	if p.DashCooldown > 0 {
		p.DashCooldown--
	}
	if p.ShootCooldown > 0 {
		p.ShootCooldown--
	}
	if p.Invincible {
		p.InvincibleTimer--
		if p.InvincibleTimer <= 0 {
			p.InvincibleTimer = 0
			p.Invincible = false
		}
	}
}

// decelerate moves v toward zero by step and snaps to zero once the
// remaining magnitude is smaller than the step.
func decelerate(v, step float64) float64 {
	switch {
	case v < step && v > -step:
		return 0
	case v > 0:
		return v - step
	default:
		return v + step
	}
}

// applyInput is the first pipeline stage: it turns the tick's actions into
// velocity changes, jumps, dashes and shots.
func applyInput(w *World) {
	p := w.player
	in := w.input
	phys := w.cfg.Physics

	switch {
	case in.Has(core.ActionLeft):
		p.VX = -p.MoveSpeed
		p.Facing = -1
	case in.Has(core.ActionRight):
		p.VX = p.MoveSpeed
		p.Facing = 1
	default:
		friction := phys.Friction
		if p.OnIce && p.Grounded {
			friction = phys.IceFriction
		}
		p.VX = decelerate(p.VX, friction)
	}

	if in.Has(core.ActionJump) {
		p.jump()
	}

	if in.Has(core.ActionDash) && p.DashCooldown <= 0 {
		p.VX = phys.DashSpeed * float64(p.Facing)
		p.DashCooldown = phys.DashCooldown
	}

	if in.Has(core.ActionShoot) && p.ShootCooldown <= 0 {
		w.shoot()
		p.ShootCooldown = phys.ShootCooldown
	}
}

// shoot spawns a bullet at the player's centre travelling in the facing
// direction.
func (w *World) shoot() {
	p := w.player
	cx, cy := p.Box().Center()
	p.Bullets = append(p.Bullets, &Bullet{
		X:      cx,
		Y:      cy,
		VX:     w.cfg.Player.BulletSpeed * float64(p.Facing),
		Radius: w.cfg.Player.BulletRadius,
	})
}

// integratePlayer applies gravity, moves the player and its bullets, keeps
// the player inside the playfield and counts timers down. Falling out of the
// bottom of the world is always lethal, invincible or not.
func integratePlayer(w *World) {
	p := w.player
	field := w.cfg.Playfield

	p.VY += p.Gravity
	if p.VY > w.cfg.Physics.MaxFallSpeed {
		p.VY = w.cfg.Physics.MaxFallSpeed
	}

	p.X += p.VX
	p.Y += p.VY

	p.X = core.ClampF(p.X, 0, field.Width-p.W)
	if p.Y < 0 {
		p.Y = 0
		p.VY = 0
	}

	p.tickTimers()

	live := p.Bullets[:0]
	for _, b := range p.Bullets {
		b.Move()
		if b.X >= 0 && b.X <= field.Width {
			live = append(live, b)
		}
	}
	p.Bullets = live

	if p.Y > field.Height {
		w.killPlayer("fell out of the world")
	}
}
