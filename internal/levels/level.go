// Package levels describes the static level dataset the simulation consumes:
// platforms, spawn points, portals, enemies, crystals, power-ups and the boss.
// Level packs are read from YAML or TOML and validated once at load time.
package levels

// Theme is a level's environmental category. It selects friction (ice),
// the ambient floor hazard (lava) and presentation.
type Theme string

const (
	ThemeForest Theme = "forest"
	ThemeCave   Theme = "cave"
	ThemeLava   Theme = "lava"
	ThemeIce    Theme = "ice"
	ThemeSpace  Theme = "space"
)

// Valid reports whether t is one of the known themes.
func (t Theme) Valid() bool {
	switch t {
	case ThemeForest, ThemeCave, ThemeLava, ThemeIce, ThemeSpace:
		return true
	}
	return false
}

// Enemy kinds as written in level files.
const (
	EnemyWalker = "walker"
	EnemyJumper = "jumper"
	EnemyFlyer  = "flyer"
)

// Power-up kinds as written in level files.
const (
	PowerUpHealth = "health"
	PowerUpSpeed  = "speed"
	PowerUpJump   = "jump"
	PowerUpShield = "shield"
)

// PowerUpKinds lists every power-up kind in a stable order.
var PowerUpKinds = []string{PowerUpHealth, PowerUpSpeed, PowerUpJump, PowerUpShield}

// PatternSpiral is the only boss attack pattern.
const PatternSpiral = "spiral"

// Point is a position in playfield pixels.
type Point struct {
	X float64 `yaml:"x" toml:"x"`
	Y float64 `yaml:"y" toml:"y"`
}

// Platform is a solid rectangle. Moving platforms oscillate horizontally.
type Platform struct {
	X         float64 `yaml:"x" toml:"x"`
	Y         float64 `yaml:"y" toml:"y"`
	W         float64 `yaml:"w" toml:"w"`
	H         float64 `yaml:"h" toml:"h"`
	Moving    bool    `yaml:"moving,omitempty" toml:"moving,omitempty"`
	Direction int     `yaml:"direction,omitempty" toml:"direction,omitempty"` // +1 right, -1 left
	Speed     float64 `yaml:"speed,omitempty" toml:"speed,omitempty"`
	Range     float64 `yaml:"range,omitempty" toml:"range,omitempty"` // 0 = bounce at playfield edges
}

// Enemy is the starting placement of one enemy.
type Enemy struct {
	Type      string  `yaml:"type" toml:"type"`
	X         float64 `yaml:"x" toml:"x"`
	Y         float64 `yaml:"y" toml:"y"`
	W         float64 `yaml:"w" toml:"w"`
	H         float64 `yaml:"h" toml:"h"`
	Speed     float64 `yaml:"speed,omitempty" toml:"speed,omitempty"`           // walker, flyer
	JumpForce float64 `yaml:"jump_force,omitempty" toml:"jump_force,omitempty"` // jumper
}

// PowerUp is a placed power-up pickup.
type PowerUp struct {
	Type string  `yaml:"type" toml:"type"`
	X    float64 `yaml:"x" toml:"x"`
	Y    float64 `yaml:"y" toml:"y"`
}

// Boss is the template a fresh boss is built from on every level entry.
type Boss struct {
	X              float64 `yaml:"x" toml:"x"`
	Y              float64 `yaml:"y" toml:"y"`
	W              float64 `yaml:"w" toml:"w"`
	H              float64 `yaml:"h" toml:"h"`
	Health         int     `yaml:"health" toml:"health"`
	Speed          float64 `yaml:"speed" toml:"speed"`
	AttackCooldown int     `yaml:"attack_cooldown" toml:"attack_cooldown"`
	Pattern        string  `yaml:"pattern" toml:"pattern"`
	BulletSpeed    float64 `yaml:"bullet_speed" toml:"bullet_speed"`
}

// Level is one entry of the campaign.
type Level struct {
	ID        string     `yaml:"id" toml:"id"`
	Name      string     `yaml:"name" toml:"name"`
	Theme     Theme      `yaml:"theme" toml:"theme"`
	Spawn     Point      `yaml:"spawn" toml:"spawn"`
	Portal    *Point     `yaml:"portal,omitempty" toml:"portal,omitempty"`
	Platforms []Platform `yaml:"platforms" toml:"platforms"`
	Enemies   []Enemy    `yaml:"enemies,omitempty" toml:"enemies,omitempty"`
	Crystals  []Point    `yaml:"crystals,omitempty" toml:"crystals,omitempty"`
	PowerUps  []PowerUp  `yaml:"powerups,omitempty" toml:"powerups,omitempty"`
	Boss      *Boss      `yaml:"boss,omitempty" toml:"boss,omitempty"`
}

// Clone creates a deep copy of the level.
func (l Level) Clone() Level {
	clone := l
	clone.Platforms = append([]Platform(nil), l.Platforms...)
	clone.Enemies = append([]Enemy(nil), l.Enemies...)
	clone.Crystals = append([]Point(nil), l.Crystals...)
	clone.PowerUps = append([]PowerUp(nil), l.PowerUps...)
	if l.Portal != nil {
		p := *l.Portal
		clone.Portal = &p
	}
	if l.Boss != nil {
		b := *l.Boss
		clone.Boss = &b
	}
	return clone
}

// Campaign is the ordered level sequence.
type Campaign struct {
	Name   string  `yaml:"name" toml:"name"`
	Levels []Level `yaml:"levels" toml:"levels"`
}

// CrystalCount returns the number of crystals across all levels.
func (c Campaign) CrystalCount() int {
	total := 0
	for _, l := range c.Levels {
		total += len(l.Crystals)
	}
	return total
}

// Clone creates a deep copy of the campaign.
func (c Campaign) Clone() Campaign {
	clone := Campaign{Name: c.Name, Levels: make([]Level, len(c.Levels))}
	for i, l := range c.Levels {
		clone.Levels[i] = l.Clone()
	}
	return clone
}
