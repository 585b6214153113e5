// Package config provides YAML-based tuning for the simulation and
// difficulty presets.
package config

// CavernConfig contains every tuning constant of the simulation.
type CavernConfig struct {
	Playfield PlayfieldConfig `yaml:"playfield"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Player    PlayerConfig    `yaml:"player"`
	Combat    CombatConfig    `yaml:"combat"`
	PowerUps  PowerUpConfig   `yaml:"powerups"`
	Enemies   EnemyConfig     `yaml:"enemies"`
	Boss      BossConfig      `yaml:"boss"`
	Gameplay  GameplayConfig  `yaml:"gameplay"`
}

// PlayfieldConfig defines the world rectangle.
type PlayfieldConfig struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	FloorLine float64 `yaml:"floor_line"` // Lava surface and jumper floor
}

// PhysicsConfig defines player movement.
type PhysicsConfig struct {
	Gravity       float64 `yaml:"gravity"`
	MaxFallSpeed  float64 `yaml:"max_fall_speed"`
	MoveSpeed     float64 `yaml:"move_speed"` // Baseline, restored when effects expire
	JumpForce     float64 `yaml:"jump_force"` // Baseline, restored when effects expire
	Friction      float64 `yaml:"friction"`
	IceFriction   float64 `yaml:"ice_friction"`
	DashSpeed     float64 `yaml:"dash_speed"`
	DashCooldown  int     `yaml:"dash_cooldown"`
	ShootCooldown int     `yaml:"shoot_cooldown"`
}

// PlayerConfig defines the player body and survivability.
type PlayerConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	MaxHealth     float64 `yaml:"max_health"`
	Lives         int     `yaml:"lives"`
	RespawnGrace  int     `yaml:"respawn_grace"` // Invincibility ticks after a level reset
	BulletSpeed   float64 `yaml:"bullet_speed"`
	BulletRadius  float64 `yaml:"bullet_radius"`
	PickupSize    float64 `yaml:"pickup_size"`
	PortalRadius  float64 `yaml:"portal_radius"`
	CrystalPoints int     `yaml:"crystal_points"`
}

// CombatConfig defines damage amounts and score awards.
type CombatConfig struct {
	ContactDamage    float64 `yaml:"contact_damage"`
	LavaDamage       float64 `yaml:"lava_damage"`
	BossBulletDamage float64 `yaml:"boss_bullet_damage"`
	BossHitDamage    int     `yaml:"boss_hit_damage"`
	EnemyPoints      int     `yaml:"enemy_points"`
	BossPoints       int     `yaml:"boss_points"`
}

// PowerUpConfig defines pickup effects.
type PowerUpConfig struct {
	Heal           float64 `yaml:"heal"`
	SpeedBonus     float64 `yaml:"speed_bonus"`
	JumpBonus      float64 `yaml:"jump_bonus"`
	EffectDuration int     `yaml:"effect_duration"`
	ShieldDuration int     `yaml:"shield_duration"`
	PerLevel       int     `yaml:"per_level"` // Scattered when a level places none
}

// EnemyConfig defines enemy AI constants.
type EnemyConfig struct {
	JumperGravity float64 `yaml:"jumper_gravity"`
	JumpChance    int     `yaml:"jump_chance"` // One jump per N rolls on average
	FlyerPeriod   float64 `yaml:"flyer_period"`
}

// BossConfig defines the boss attack.
type BossConfig struct {
	AttackInterval int     `yaml:"attack_interval"`
	RingStep       float64 `yaml:"ring_step"`   // Degrees between ring bullets
	SpiralRate     float64 `yaml:"spiral_rate"` // Degrees of ring rotation per tick
	BulletRadius   float64 `yaml:"bullet_radius"`
}

// GameplayConfig toggles rule variants.
type GameplayConfig struct {
	// RestoreEnemiesOnReset puts the level's enemies back at their
	// starting positions whenever the level is reset.
	RestoreEnemiesOnReset bool `yaml:"restore_enemies_on_reset"`
	// StackEffects makes an expiring effect remove only its own bonus.
	// When false the first expiry reverts the stat to its baseline.
	StackEffects bool `yaml:"stack_effects"`
}
