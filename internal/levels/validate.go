package levels

import (
	"fmt"
	"slices"
)

// ValidationError contains details about a rejected level pack.
type ValidationError struct {
	Code    string
	Level   string // Level ID, empty for campaign-wide problems
	Message string
}

func (e ValidationError) Error() string {
	if e.Level == "" {
		return fmt.Sprintf("[%s] %s", e.Code, e.Message)
	}
	return fmt.Sprintf("[%s] level %s: %s", e.Code, e.Level, e.Message)
}

// Validate checks the whole campaign against a playfield of the given size
// and returns the first violation. A pack that fails validation must not be
// played: the simulation does not defend against malformed data per tick.
func Validate(c Campaign, width, height float64) error {
	if len(c.Levels) == 0 {
		return ValidationError{Code: "EMPTY_CAMPAIGN", Message: "campaign has no levels"}
	}

	seen := make(map[string]bool, len(c.Levels))
	for i, l := range c.Levels {
		id := l.ID
		if id == "" {
			id = fmt.Sprintf("#%d", i+1)
		}
		if seen[id] {
			return ValidationError{Code: "DUPLICATE_ID", Level: id, Message: "level id used twice"}
		}
		seen[id] = true

		if l.Boss != nil && i != len(c.Levels)-1 {
			return ValidationError{Code: "BOSS_NOT_FINAL", Level: id, Message: "only the final level may carry a boss"}
		}
		if err := validateLevel(id, l, width, height); err != nil {
			return err
		}
	}
	return nil
}

func validateLevel(id string, l Level, width, height float64) error {
	fail := func(code, format string, args ...any) error {
		return ValidationError{Code: code, Level: id, Message: fmt.Sprintf(format, args...)}
	}
	inside := func(x, y, w, h float64) bool {
		return x >= 0 && y >= 0 && x+w <= width && y+h <= height
	}

	if !l.Theme.Valid() {
		return fail("BAD_THEME", "unknown theme %q", l.Theme)
	}

	if len(l.Platforms) == 0 {
		return fail("NO_PLATFORMS", "level has no platforms")
	}
	for i, p := range l.Platforms {
		if p.W <= 0 || p.H <= 0 {
			return fail("BAD_PLATFORM", "platform %d has non-positive size %vx%v", i, p.W, p.H)
		}
		if p.Moving {
			if p.Direction != 1 && p.Direction != -1 {
				return fail("BAD_PLATFORM", "moving platform %d direction must be 1 or -1, got %d", i, p.Direction)
			}
			if p.Speed <= 0 || p.Range < 0 {
				return fail("BAD_PLATFORM", "moving platform %d needs speed > 0 and range >= 0", i)
			}
		}
	}

	if l.Spawn.X < 0 || l.Spawn.X >= width || l.Spawn.Y < 0 || l.Spawn.Y >= height {
		return fail("SPAWN_OUT_OF_BOUNDS", "spawn (%v, %v) outside %vx%v playfield", l.Spawn.X, l.Spawn.Y, width, height)
	}

	for i, e := range l.Enemies {
		if e.W <= 0 || e.H <= 0 {
			return fail("BAD_ENEMY", "enemy %d has non-positive size", i)
		}
		switch e.Type {
		case EnemyWalker:
			if e.Speed == 0 {
				return fail("BAD_ENEMY", "walker %d needs a non-zero speed", i)
			}
		case EnemyJumper:
			if e.JumpForce <= 0 {
				return fail("BAD_ENEMY", "jumper %d needs jump_force > 0", i)
			}
		case EnemyFlyer:
			if e.Speed < 0 {
				return fail("BAD_ENEMY", "flyer %d has negative speed", i)
			}
		default:
			return fail("BAD_ENEMY", "enemy %d has unknown type %q", i, e.Type)
		}
		if !inside(e.X, e.Y, e.W, e.H) {
			return fail("ENEMY_OUT_OF_BOUNDS", "enemy %d at (%v, %v) outside %vx%v playfield", i, e.X, e.Y, width, height)
		}
	}

	for i, p := range l.PowerUps {
		if !slices.Contains(PowerUpKinds, p.Type) {
			return fail("BAD_POWERUP", "power-up %d has unknown type %q", i, p.Type)
		}
	}

	switch {
	case l.Boss != nil && l.Portal != nil:
		return fail("PORTAL_ON_BOSS_LEVEL", "a boss level exits through the boss, not a portal")
	case l.Boss == nil && l.Portal == nil:
		return fail("NO_EXIT", "level needs a portal or a boss")
	}

	if b := l.Boss; b != nil {
		switch {
		case b.W <= 0 || b.H <= 0:
			return fail("BAD_BOSS", "boss has non-positive size")
		case b.Health <= 0:
			return fail("BAD_BOSS", "boss health must be positive")
		case b.AttackCooldown <= 0:
			return fail("BAD_BOSS", "boss attack_cooldown must be positive")
		case b.BulletSpeed <= 0:
			return fail("BAD_BOSS", "boss bullet_speed must be positive")
		case b.Pattern != PatternSpiral:
			return fail("BAD_BOSS", "unknown attack pattern %q", b.Pattern)
		case !inside(b.X, b.Y, b.W, b.H):
			return fail("BOSS_OUT_OF_BOUNDS", "boss at (%v, %v) outside %vx%v playfield", b.X, b.Y, width, height)
		}
	}

	return nil
}
