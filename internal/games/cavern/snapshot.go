package cavern

import (
	"math"

	"github.com/vovakirdan/crystal-cavern/internal/levels"
)

// PlayerView is the read-only player state.
type PlayerView struct {
	X, Y, W, H float64
	VX, VY     float64
	Facing     int
	Health     float64
	MaxHealth  float64
	Invincible bool
	Grounded   bool
	MoveSpeed  float64
	JumpForce  float64
}

// BulletView is a bullet centre and radius.
type BulletView struct {
	X, Y, Radius float64
}

// EnemyView is one enemy's kind and bounds.
type EnemyView struct {
	Kind       EnemyKind
	X, Y, W, H float64
}

// BossView is the boss state.
type BossView struct {
	X, Y, W, H float64
	Health     int
	MaxHealth  int
	Active     bool
}

// PickupView is an uncollected crystal or power-up.
type PickupView struct {
	Kind       string
	X, Y, Size float64
}

// PlatformView is a platform rectangle.
type PlatformView struct {
	X, Y, W, H float64
	Moving     bool
}

// PortalView is the portal centre and trigger radius.
type PortalView struct {
	X, Y, Radius float64
}

// EffectView is an active effect and its remaining ticks.
type EffectView struct {
	Kind      EffectKind
	Remaining int
}

// Snapshot is everything a renderer needs to draw one frame. It shares no
// memory with the simulation.
type Snapshot struct {
	Tick       int
	State      string
	Paused     bool
	LevelIndex int
	LevelCount int
	LevelName  string
	Theme      levels.Theme

	Player      PlayerView
	Bullets     []BulletView
	Enemies     []EnemyView
	Boss        *BossView
	BossBullets []BulletView
	Crystals    []PickupView
	PowerUps    []PickupView
	Platforms   []PlatformView
	Portal      *PortalView
	Effects     []EffectView

	Score     int
	Lives     int
	Gems      int
	TotalGems int
}

func bulletViews(bullets []*Bullet) []BulletView {
	out := make([]BulletView, 0, len(bullets))
	for _, b := range bullets {
		out = append(out, BulletView{X: b.X, Y: b.Y, Radius: b.Radius})
	}
	return out
}

func (w *World) pickupViews(pickups []*Pickup) []PickupView {
	out := make([]PickupView, 0, len(pickups))
	for _, pu := range pickups {
		if pu.Collected {
			continue
		}
		out = append(out, PickupView{Kind: pu.Kind, X: pu.X, Y: pu.Y, Size: w.cfg.Player.PickupSize})
	}
	return out
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	w := g.world
	lvl := w.level()
	p := w.player

	snap := Snapshot{
		Tick:       w.tick,
		State:      w.state,
		Paused:     w.paused,
		LevelIndex: w.levelIndex,
		LevelCount: len(w.levels),
		LevelName:  lvl.Template.Name,
		Theme:      lvl.Theme(),

		Player: PlayerView{
			X: p.X, Y: p.Y, W: p.W, H: p.H,
			VX: p.VX, VY: p.VY,
			Facing:     p.Facing,
			Health:     p.Health,
			MaxHealth:  p.MaxHealth,
			Invincible: p.Invincible,
			Grounded:   p.Grounded,
			MoveSpeed:  p.MoveSpeed,
			JumpForce:  p.JumpForce,
		},
		Bullets:     bulletViews(p.Bullets),
		BossBullets: bulletViews(w.bossBullets),
		Crystals:    w.pickupViews(lvl.Crystals),
		PowerUps:    w.pickupViews(lvl.PowerUps),

		Score:     w.score,
		Lives:     w.lives,
		Gems:      w.gems,
		TotalGems: w.campaign.CrystalCount(),
	}

	snap.Enemies = make([]EnemyView, 0, len(lvl.Enemies))
	for _, e := range lvl.Enemies {
		b := e.Bounds()
		snap.Enemies = append(snap.Enemies, EnemyView{Kind: e.Kind(), X: b.X, Y: b.Y, W: b.W, H: b.H})
	}

	snap.Platforms = make([]PlatformView, 0, len(lvl.Platforms))
	for _, pl := range lvl.Platforms {
		snap.Platforms = append(snap.Platforms, PlatformView{X: pl.X, Y: pl.Y, W: pl.W, H: pl.H, Moving: pl.Moving})
	}

	if b := w.boss; b != nil {
		snap.Boss = &BossView{X: b.X, Y: b.Y, W: b.W, H: b.H, Health: b.Health, MaxHealth: b.MaxHealth, Active: b.Active}
	}

	if portal := lvl.Template.Portal; portal != nil {
		snap.Portal = &PortalView{X: portal.X, Y: portal.Y, Radius: w.cfg.Player.PortalRadius}
	}

	snap.Effects = make([]EffectView, 0, len(w.effects))
	for _, e := range w.effects {
		snap.Effects = append(snap.Effects, EffectView{Kind: e.Kind, Remaining: e.Remaining})
	}

	return snap
}

func mixF(h uint64, v float64) uint64 {
	return h*31 + math.Float64bits(v)
}

func mixI(h uint64, v int) uint64 {
	return h*31 + uint64(v) //#nosec G115 -- hash computation
}

func mixB(h uint64, v bool) uint64 {
	if v {
		return mixI(h, 1)
	}
	return mixI(h, 0)
}

// Hash returns a digest of the snapshot for determinism testing. Floats
// are hashed by their exact bit patterns.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(17)
	h = mixI(h, snap.Tick)
	for _, r := range snap.State {
		h = mixI(h, int(r))
	}
	h = mixB(h, snap.Paused)
	h = mixI(h, snap.LevelIndex)
	h = mixI(h, snap.Score)
	h = mixI(h, snap.Lives)
	h = mixI(h, snap.Gems)

	p := snap.Player
	for _, v := range []float64{p.X, p.Y, p.VX, p.VY, p.Health, p.MoveSpeed, p.JumpForce} {
		h = mixF(h, v)
	}
	h = mixI(h, p.Facing)
	h = mixB(h, p.Invincible)
	h = mixB(h, p.Grounded)

	for _, b := range snap.Bullets {
		h = mixF(mixF(h, b.X), b.Y)
	}
	for _, e := range snap.Enemies {
		h = mixF(mixF(mixI(h, int(e.Kind)), e.X), e.Y)
	}
	if b := snap.Boss; b != nil {
		h = mixI(mixF(mixF(h, b.X), b.Y), b.Health)
	}
	for _, b := range snap.BossBullets {
		h = mixF(mixF(h, b.X), b.Y)
	}
	for _, c := range snap.Crystals {
		h = mixF(mixF(h, c.X), c.Y)
	}
	for _, pu := range snap.PowerUps {
		h = mixF(mixF(h, pu.X), pu.Y)
	}
	for _, pl := range snap.Platforms {
		h = mixF(h, pl.X)
	}
	for _, e := range snap.Effects {
		h = mixI(mixI(h, int(e.Kind)), e.Remaining)
	}
	return h
}
