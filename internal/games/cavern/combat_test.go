package cavern

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/crystal-cavern/internal/core"
	"github.com/vovakirdan/crystal-cavern/internal/levels"
)

func bossLevel() levels.Level {
	lvl := groundLevel("arena", levels.ThemeSpace)
	lvl.Portal = nil
	lvl.Boss = &levels.Boss{
		X: 400, Y: 150, W: 80, H: 80,
		Health: 100, Speed: 3, AttackCooldown: 60,
		Pattern: levels.PatternSpiral, BulletSpeed: 5,
	}
	return lvl
}

func TestInvincibleIgnoresDamage(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
	}{
		{"contact", 0.5},
		{"boss bullet", 1},
		{"overkill", 999},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, testConfig(), groundLevel("flat", levels.ThemeCave))
			w := g.world
			require.True(t, w.player.Invincible)

			w.damagePlayer(tt.amount)
			assert.Equal(t, 100.0, w.player.Health)
			assert.Equal(t, 3, w.lives)
		})
	}
}

func TestLethalDamageResetsLevel(t *testing.T) {
	lvl := groundLevel("flat", levels.ThemeCave)
	lvl.Crystals = []levels.Point{{X: 400, Y: 520}}
	g := newTestGame(t, testConfig(), lvl)
	w := g.world
	p := w.player

	p.X, p.Y = 380, 500
	g.Step(idle())
	require.Equal(t, 1, w.gems)
	require.True(t, w.level().Crystals[0].Collected)

	p.Invincible = false
	w.damagePlayer(200)

	assert.Equal(t, 2, w.lives)
	assert.Equal(t, 100.0, p.Health)
	assert.Equal(t, 100.0, p.X)
	assert.Equal(t, 500.0, p.Y)
	assert.True(t, p.Invincible)
	assert.Equal(t, g.cfg.Player.RespawnGrace, p.InvincibleTimer)
	assert.False(t, w.level().Crystals[0].Collected, "crystals should reappear")
	assert.Equal(t, 1, w.gems, "gem count survives a lost life")
	assert.Equal(t, StatePlaying, w.state)
}

func TestLethalDamageRestoresPowerUps(t *testing.T) {
	lvl := groundLevel("flat", levels.ThemeCave)
	lvl.PowerUps = []levels.PowerUp{{Type: levels.PowerUpSpeed, X: 400, Y: 520}}
	g := newTestGame(t, testConfig(), lvl)
	w := g.world
	p := w.player

	p.X, p.Y = 380, 500
	g.Step(idle())
	require.True(t, w.level().PowerUps[0].Collected)
	require.Empty(t, g.Snapshot().PowerUps)
	require.Len(t, w.effects, 1)

	p.Invincible = false
	w.damagePlayer(200)

	assert.Equal(t, 2, w.lives)
	assert.False(t, w.level().PowerUps[0].Collected, "power-ups should reappear")
	snap := g.Snapshot()
	require.Len(t, snap.PowerUps, 1)
	assert.Equal(t, levels.PowerUpSpeed, snap.PowerUps[0].Kind)
	assert.Equal(t, 400.0, snap.PowerUps[0].X)
	assert.Equal(t, 520.0, snap.PowerUps[0].Y)
	assert.Len(t, w.effects, 1, "active effects survive a lost life")
}

func TestLastLifeEndsRun(t *testing.T) {
	cfg := testConfig()
	cfg.Player.Lives = 1
	g := newTestGame(t, cfg, groundLevel("flat", levels.ThemeCave))
	w := g.world

	w.player.Invincible = false
	w.damagePlayer(150)

	assert.Equal(t, StateGameOver, g.Phase())
	assert.True(t, g.State().GameOver)
	assert.False(t, g.State().Won)

	before := g.Snapshot()
	stepN(g, core.FrameOf(core.ActionRight, core.ActionJump), 10)
	after := g.Snapshot()
	assert.Equal(t, before.Hash(), after.Hash(), "game over should freeze the world")
}

func TestFallingOutIgnoresInvincibility(t *testing.T) {
	cfg := testConfig()
	cfg.Player.RespawnGrace = 1000
	lvl := groundLevel("pit", levels.ThemeCave)
	lvl.Platforms = []levels.Platform{{X: 600, Y: 550, W: 200, H: 50}}
	lvl.Spawn = levels.Point{X: 100, Y: 100}
	g := newTestGame(t, cfg, lvl)
	w := g.world

	for range 120 {
		g.Step(idle())
		if w.lives < 3 {
			break
		}
	}
	assert.Equal(t, 2, w.lives)
	assert.Equal(t, 100.0, w.player.Y)
}

func TestLavaFloorBurns(t *testing.T) {
	g := newTestGame(t, testConfig(), groundLevel("magma", levels.ThemeLava))
	p := g.world.player
	g.Step(idle())
	p.Invincible = false

	stepN(g, idle(), 10)
	assert.InDelta(t, 99.0, p.Health, 1e-9)
}

func TestEnemyContactDamage(t *testing.T) {
	lvl := groundLevel("den", levels.ThemeCave)
	lvl.Enemies = []levels.Enemy{{Type: levels.EnemyWalker, X: 105, Y: 510, W: 30, H: 30}}
	g := newTestGame(t, testConfig(), lvl)
	g.world.player.Invincible = false

	g.Step(idle())
	assert.InDelta(t, 99.5, g.world.player.Health, 1e-9)
}

func TestBulletDestroysOneEnemy(t *testing.T) {
	lvl := groundLevel("den", levels.ThemeCave)
	lvl.Enemies = []levels.Enemy{
		{Type: levels.EnemyWalker, X: 300, Y: 500, W: 30, H: 30},
		{Type: levels.EnemyWalker, X: 302, Y: 500, W: 30, H: 30},
	}
	g := newTestGame(t, testConfig(), lvl)
	w := g.world
	w.player.Bullets = []*Bullet{{X: 290, Y: 515, VX: 8, Radius: 5}}

	g.Step(idle())
	assert.Len(t, w.level().Enemies, 1)
	assert.Empty(t, w.player.Bullets)
	assert.Equal(t, 50, w.score)
}

func TestEnemyRestoreOnReset(t *testing.T) {
	tests := []struct {
		name     string
		restore  bool
		expected int
	}{
		{"restored", true, 1},
		{"stays dead", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.Gameplay.RestoreEnemiesOnReset = tt.restore
			lvl := groundLevel("den", levels.ThemeCave)
			lvl.Enemies = []levels.Enemy{{Type: levels.EnemyWalker, X: 300, Y: 500, W: 30, H: 30}}
			g := newTestGame(t, cfg, lvl)
			w := g.world

			w.player.Bullets = []*Bullet{{X: 290, Y: 515, VX: 8, Radius: 5}}
			g.Step(idle())
			require.Empty(t, w.level().Enemies)

			w.killPlayer("test")
			assert.Len(t, w.level().Enemies, tt.expected)
		})
	}
}

func TestWalkerTurnsAtEdges(t *testing.T) {
	g := newTestGame(t, testConfig(), groundLevel("flat", levels.ThemeCave))
	walker := &Walker{body: body{X: 775, Y: 500, W: 30, H: 30}, Speed: 2, Direction: 1}

	walker.Update(g.world)
	assert.Equal(t, 777.0, walker.X)
	assert.Equal(t, -1, walker.Direction)

	walker.X = 1
	walker.Update(g.world)
	assert.Equal(t, 1, walker.Direction)
}

func TestJumperNeverSinksBelowFloor(t *testing.T) {
	g := newTestGame(t, testConfig(), groundLevel("flat", levels.ThemeCave))
	jumper := &Jumper{body: body{X: 300, Y: 100, W: 30, H: 30}, JumpForce: 10}

	jumped := false
	for range 2000 {
		jumper.Update(g.world)
		require.LessOrEqual(t, jumper.Y+jumper.H, g.cfg.Playfield.FloorLine)
		if jumper.VY < 0 {
			jumped = true
		}
	}
	assert.True(t, jumped, "jumper should leap at least once in 2000 rolls")
}

func TestFlyerFollowsSine(t *testing.T) {
	g := newTestGame(t, testConfig(), groundLevel("flat", levels.ThemeCave))
	flyer := &Flyer{body: body{X: 300, Y: 200, W: 30, H: 30}, Speed: 2}
	g.world.tick = 45

	flyer.Update(g.world)
	assert.InDelta(t, 200+math.Sin(1.5)*2, flyer.Y, 1e-9)
}

func TestBossFiresRotatingRing(t *testing.T) {
	g := newTestGame(t, testConfig(), bossLevel())
	w := g.world
	w.boss.AttackCooldown = 1

	g.Step(idle())
	require.Len(t, w.bossBullets, 8)
	assert.Equal(t, 60, w.boss.AttackCooldown)

	first := w.bossBullets[0]
	assert.InDelta(t, 5.0, math.Hypot(first.VX, first.VY), 1e-9)
	phase := float64(w.tick) * 2 * math.Pi / 180
	assert.InDelta(t, math.Cos(phase)*5, first.VX, 1e-9)
	assert.InDelta(t, math.Sin(phase)*5, first.VY, 1e-9)
}

func TestBossDefeatWins(t *testing.T) {
	g := newTestGame(t, testConfig(), bossLevel())
	w := g.world
	cx, cy := w.boss.Box().Center()
	for range 20 {
		w.player.Bullets = append(w.player.Bullets, &Bullet{X: cx, Y: cy, VX: 8, Radius: 5})
	}

	g.Step(idle())
	assert.Equal(t, 0, w.boss.Health)
	assert.False(t, w.boss.Active)
	assert.Equal(t, 1000, w.score)
	assert.Equal(t, StateWin, g.Phase())
	assert.True(t, g.State().Won)
	assert.True(t, g.State().GameOver)
}

func TestBossKillWinsOnLastLife(t *testing.T) {
	cfg := testConfig()
	cfg.Player.Lives = 1
	g := newTestGame(t, cfg, bossLevel())
	w := g.world
	p := w.player
	p.Invincible = false
	p.Health = 0.5
	w.boss.Health = 5

	px, py := p.Box().Center()
	w.bossBullets = []*Bullet{{X: px, Y: py, Radius: 6}}
	cx, cy := w.boss.Box().Center()
	p.Bullets = []*Bullet{{X: cx, Y: cy, VX: 8, Radius: 5}}

	g.Step(idle())
	assert.Equal(t, StateWin, g.Phase())
	assert.Equal(t, 1, w.lives)
}

func TestBossBulletHurts(t *testing.T) {
	g := newTestGame(t, testConfig(), bossLevel())
	w := g.world
	g.Step(idle())
	p := w.player
	p.Invincible = false

	px, py := p.Box().Center()
	w.bossBullets = []*Bullet{{X: px, Y: py, Radius: 6}}
	g.Step(idle())

	assert.InDelta(t, 99.0, p.Health, 1e-9)
	assert.Empty(t, w.bossBullets)
}

func TestBossRebuiltOnLevelReset(t *testing.T) {
	g := newTestGame(t, testConfig(), bossLevel())
	w := g.world
	w.boss.Health = 10
	w.bossBullets = []*Bullet{{X: 10, Y: 10, VX: 1, Radius: 6}}

	w.killPlayer("test")
	assert.Equal(t, 100, w.boss.Health)
	assert.Empty(t, w.bossBullets)
}
