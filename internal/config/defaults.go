package config

import (
	_ "embed"
)

//go:embed defaults/cavern.yaml
var defaultCavernYAML []byte

// DefaultCavernConfig returns the hardcoded tuning. It mirrors
// defaults/cavern.yaml and is used when the embedded file cannot be parsed.
func DefaultCavernConfig() CavernConfig {
	return CavernConfig{
		Playfield: PlayfieldConfig{
			Width:     800,
			Height:    600,
			FloorLine: 550,
		},
		Physics: PhysicsConfig{
			Gravity:       0.5,
			MaxFallSpeed:  10,
			MoveSpeed:     5,
			JumpForce:     12,
			Friction:      0.3,
			IceFriction:   0.1,
			DashSpeed:     15,
			DashCooldown:  30,
			ShootCooldown: 15,
		},
		Player: PlayerConfig{
			Width:         30,
			Height:        50,
			MaxHealth:     100,
			Lives:         3,
			RespawnGrace:  60,
			BulletSpeed:   8,
			BulletRadius:  5,
			PickupSize:    20,
			PortalRadius:  20,
			CrystalPoints: 100,
		},
		Combat: CombatConfig{
			ContactDamage:    0.5,
			LavaDamage:       0.1,
			BossBulletDamage: 1,
			BossHitDamage:    5,
			EnemyPoints:      50,
			BossPoints:       1000,
		},
		PowerUps: PowerUpConfig{
			Heal:           30,
			SpeedBonus:     2,
			JumpBonus:      5,
			EffectDuration: 300, // 5 seconds
			ShieldDuration: 180, // 3 seconds
			PerLevel:       2,
		},
		Enemies: EnemyConfig{
			JumperGravity: 0.5,
			JumpChance:    101,
			FlyerPeriod:   30,
		},
		Boss: BossConfig{
			AttackInterval: 60,
			RingStep:       45,
			SpiralRate:     2,
			BulletRadius:   6,
		},
		Gameplay: GameplayConfig{
			RestoreEnemiesOnReset: true,
			StackEffects:          true,
		},
	}
}

// DefaultYAML returns the embedded default tuning file.
func DefaultYAML() []byte {
	return defaultCavernYAML
}
