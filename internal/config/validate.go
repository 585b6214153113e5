package config

import "fmt"

// Validate rejects tunings the simulation cannot run with. Periods,
// chances, intervals, speeds and sizes must be positive; counts and
// cooldowns may be zero.
func (c CavernConfig) Validate() error {
	positive := []struct {
		key string
		val float64
	}{
		{"playfield.width", c.Playfield.Width},
		{"playfield.height", c.Playfield.Height},
		{"playfield.floor_line", c.Playfield.FloorLine},
		{"physics.gravity", c.Physics.Gravity},
		{"physics.max_fall_speed", c.Physics.MaxFallSpeed},
		{"physics.move_speed", c.Physics.MoveSpeed},
		{"physics.jump_force", c.Physics.JumpForce},
		{"physics.friction", c.Physics.Friction},
		{"physics.ice_friction", c.Physics.IceFriction},
		{"physics.dash_speed", c.Physics.DashSpeed},
		{"player.width", c.Player.Width},
		{"player.height", c.Player.Height},
		{"player.max_health", c.Player.MaxHealth},
		{"player.lives", float64(c.Player.Lives)},
		{"player.bullet_speed", c.Player.BulletSpeed},
		{"player.bullet_radius", c.Player.BulletRadius},
		{"player.pickup_size", c.Player.PickupSize},
		{"player.portal_radius", c.Player.PortalRadius},
		{"powerups.effect_duration", float64(c.PowerUps.EffectDuration)},
		{"powerups.shield_duration", float64(c.PowerUps.ShieldDuration)},
		{"enemies.jumper_gravity", c.Enemies.JumperGravity},
		{"enemies.jump_chance", float64(c.Enemies.JumpChance)},
		{"enemies.flyer_period", c.Enemies.FlyerPeriod},
		{"boss.attack_interval", float64(c.Boss.AttackInterval)},
		{"boss.ring_step", c.Boss.RingStep},
		{"boss.bullet_radius", c.Boss.BulletRadius},
	}
	for _, p := range positive {
		if !(p.val > 0) {
			return fmt.Errorf("%s must be positive, got %v", p.key, p.val)
		}
	}

	nonNegative := []struct {
		key string
		val float64
	}{
		{"physics.dash_cooldown", float64(c.Physics.DashCooldown)},
		{"physics.shoot_cooldown", float64(c.Physics.ShootCooldown)},
		{"player.respawn_grace", float64(c.Player.RespawnGrace)},
		{"combat.contact_damage", c.Combat.ContactDamage},
		{"combat.lava_damage", c.Combat.LavaDamage},
		{"combat.boss_bullet_damage", c.Combat.BossBulletDamage},
		{"combat.boss_hit_damage", float64(c.Combat.BossHitDamage)},
		{"powerups.heal", c.PowerUps.Heal},
		{"powerups.speed_bonus", c.PowerUps.SpeedBonus},
		{"powerups.jump_bonus", c.PowerUps.JumpBonus},
		{"powerups.per_level", float64(c.PowerUps.PerLevel)},
	}
	for _, p := range nonNegative {
		if !(p.val >= 0) {
			return fmt.Errorf("%s must not be negative, got %v", p.key, p.val)
		}
	}

	switch {
	case c.Physics.Friction > 1 || c.Physics.IceFriction > 1:
		return fmt.Errorf("physics friction must be at most 1")
	case c.Playfield.FloorLine > c.Playfield.Height:
		return fmt.Errorf("playfield.floor_line %v below playfield height %v", c.Playfield.FloorLine, c.Playfield.Height)
	case c.Boss.RingStep > 360:
		return fmt.Errorf("boss.ring_step must be at most 360, got %v", c.Boss.RingStep)
	}
	return nil
}
