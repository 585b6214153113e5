package cavern

import (
	"github.com/vovakirdan/crystal-cavern/internal/core"
	"github.com/vovakirdan/crystal-cavern/internal/levels"
)

// EffectKind represents a timed stat boost.
type EffectKind int

const (
	EffectSpeed EffectKind = iota // Move speed raised
	EffectJump                    // Jump force raised
)

// String returns the short name for effect display.
func (e EffectKind) String() string {
	switch e {
	case EffectSpeed:
		return "SPD"
	case EffectJump:
		return "JMP"
	default:
		return "?"
	}
}

// Effect is an active timed effect.
type Effect struct {
	Kind      EffectKind
	Remaining int // Ticks left
}

// powerUpGlyph returns the display character for a power-up kind.
func powerUpGlyph(kind string) rune {
	switch kind {
	case levels.PowerUpHealth:
		return '+'
	case levels.PowerUpSpeed:
		return '>'
	case levels.PowerUpJump:
		return '^'
	case levels.PowerUpShield:
		return '#'
	default:
		return '?'
	}
}

// pickupBox returns the square collection region of a crystal or power-up.
func (w *World) pickupBox(pu *Pickup) core.Box {
	size := w.cfg.Player.PickupSize
	return core.NewBox(pu.X, pu.Y, size, size)
}

// collectPickups gathers every crystal and power-up the player overlaps.
func collectPickups(w *World) {
	lvl := w.level()
	box := w.player.Box()

	for _, c := range lvl.Crystals {
		if c.Collected || !box.Intersects(w.pickupBox(c)) {
			continue
		}
		c.Collected = true
		w.gems++
		w.score += w.cfg.Player.CrystalPoints
	}

	for _, pu := range lvl.PowerUps {
		if pu.Collected || !box.Intersects(w.pickupBox(pu)) {
			continue
		}
		pu.Collected = true
		w.applyPowerUp(pu.Kind)
	}
}

// applyPowerUp activates a collected power-up.
func (w *World) applyPowerUp(kind string) {
	p := w.player
	cfg := w.cfg.PowerUps

	switch kind {
	case levels.PowerUpHealth:
		p.Health = min(p.MaxHealth, p.Health+cfg.Heal)
	case levels.PowerUpSpeed:
		p.MoveSpeed += cfg.SpeedBonus
		w.effects = append(w.effects, &Effect{Kind: EffectSpeed, Remaining: cfg.EffectDuration})
	case levels.PowerUpJump:
		p.JumpForce += cfg.JumpBonus
		w.effects = append(w.effects, &Effect{Kind: EffectJump, Remaining: cfg.EffectDuration})
	case levels.PowerUpShield:
		p.grantInvincibility(cfg.ShieldDuration)
	}
	w.log.Debug("power-up collected", "kind", kind)
}

// countEffects returns how many effects of the kind are still running.
func (w *World) countEffects(kind EffectKind) int {
	n := 0
	for _, e := range w.effects {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// onEffectExpired recomputes the affected stat from its baseline. With
// stacking enabled the bonuses of still-running effects of the same kind
// are kept.
func (w *World) onEffectExpired(kind EffectKind) {
	remaining := 0
	if w.cfg.Gameplay.StackEffects {
		remaining = w.countEffects(kind)
	}
	p := w.player
	switch kind {
	case EffectSpeed:
		p.MoveSpeed = w.cfg.Physics.MoveSpeed + w.cfg.PowerUps.SpeedBonus*float64(remaining)
	case EffectJump:
		p.JumpForce = w.cfg.Physics.JumpForce + w.cfg.PowerUps.JumpBonus*float64(remaining)
	}
}

// expireEffects counts every effect down and reverts the ones that ran out.
func expireEffects(w *World) {
	var expired []EffectKind
	live := w.effects[:0]
	for _, e := range w.effects {
		e.Remaining--
		if e.Remaining <= 0 {
			expired = append(expired, e.Kind)
			continue
		}
		live = append(live, e)
	}
	w.effects = live

	for _, kind := range expired {
		w.onEffectExpired(kind)
	}
}
