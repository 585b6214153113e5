package cavern

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/crystal-cavern/internal/config"
	"github.com/vovakirdan/crystal-cavern/internal/core"
	"github.com/vovakirdan/crystal-cavern/internal/levels"
)

// scriptedInputs builds a busy but repeatable input sequence.
func scriptedInputs(n int) []core.InputFrame {
	inputs := make([]core.InputFrame, n)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i == 0:
			inputs[i].Set(core.ActionStart)
		case i%97 == 0:
			inputs[i].Set(core.ActionRestart)
		case i%40 < 25:
			inputs[i].Set(core.ActionRight)
		case i%40 < 32:
			inputs[i].Set(core.ActionLeft)
		}
		if i%13 == 0 {
			inputs[i].Set(core.ActionJump)
		}
		if i%17 == 0 {
			inputs[i].Set(core.ActionShoot)
		}
		if i%61 == 0 {
			inputs[i].Set(core.ActionDash)
		}
	}
	return inputs
}

func TestGameDeterminism(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 12345}
	inputs := scriptedInputs(3000)

	run := func() Snapshot {
		g := New()
		g.Reset(cfg)
		for _, in := range inputs {
			g.Step(in)
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	assert.Equal(t, snap1, snap2)
}

func TestFallSpeedCappedUnderRandomPlay(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 99})
	for _, in := range scriptedInputs(3000) {
		g.Step(in)
		require.LessOrEqual(t, g.world.player.VY, g.cfg.Physics.MaxFallSpeed)
		require.GreaterOrEqual(t, g.world.lives, 0)
	}
}

func TestTitleWaitsForStart(t *testing.T) {
	g := New()
	g.Reset(core.DefaultConfig())
	assert.Equal(t, StateTitle, g.Phase())

	stepN(g, core.FrameOf(core.ActionRight, core.ActionShoot), 10)
	assert.Equal(t, StateTitle, g.Phase())
	assert.Zero(t, g.Snapshot().Tick)

	g.Step(core.FrameOf(core.ActionStart))
	assert.Equal(t, StatePlaying, g.Phase())
	assert.Equal(t, 3, g.Snapshot().Lives)
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(t, testConfig(), groundLevel("flat", levels.ThemeCave))
	stepN(g, core.FrameOf(core.ActionRight), 5)

	g.Step(core.FrameOf(core.ActionPause))
	require.True(t, g.State().Paused)
	frozen := g.Snapshot()

	stepN(g, core.FrameOf(core.ActionRight), 30)
	now := g.Snapshot()
	assert.Equal(t, frozen.Hash(), now.Hash())

	// The unpausing step runs a tick of its own.
	g.Step(core.FrameOf(core.ActionPause))
	assert.False(t, g.State().Paused)
	assert.Equal(t, frozen.Tick+1, g.Snapshot().Tick)
}

func TestRestartAfterGameOver(t *testing.T) {
	cfg := testConfig()
	cfg.Player.Lives = 2
	lvl := groundLevel("flat", levels.ThemeCave)
	lvl.Crystals = []levels.Point{{X: 105, Y: 520}}
	g := newTestGame(t, cfg, lvl, groundLevel("second", levels.ThemeIce))
	w := g.world

	g.Step(idle())
	require.Equal(t, 1, w.gems)
	w.applyPowerUp(levels.PowerUpSpeed)
	w.killPlayer("test")
	w.killPlayer("test")
	require.Equal(t, StateGameOver, g.Phase())

	g.Step(core.FrameOf(core.ActionStart))
	assert.Equal(t, StateGameOver, g.Phase(), "only restart leaves game over")

	g.Step(core.FrameOf(core.ActionRestart))
	snap := g.Snapshot()
	assert.Equal(t, StatePlaying, snap.State)
	assert.Zero(t, snap.Score)
	assert.Zero(t, snap.Gems)
	assert.Equal(t, 2, snap.Lives)
	assert.Zero(t, snap.LevelIndex)
	assert.Equal(t, 5.0, snap.Player.MoveSpeed)
	assert.Empty(t, snap.Effects)
	assert.Len(t, snap.Crystals, 1)
}

func TestPortalAdvancesLevel(t *testing.T) {
	second := groundLevel("second", levels.ThemeIce)
	second.Spawn = levels.Point{X: 300, Y: 500}
	g := newTestGame(t, testConfig(), groundLevel("first", levels.ThemeCave), second)
	w := g.world

	w.player.X, w.player.Y = 745, 500
	g.Step(idle())
	assert.Equal(t, 1, w.levelIndex)
	assert.Equal(t, 300.0, w.player.X)
	assert.True(t, w.player.Invincible)

	w.player.X, w.player.Y = 745, 500
	g.Step(idle())
	assert.Equal(t, StateWin, g.Phase())
}

func TestDefaultCampaignSnapshot(t *testing.T) {
	g := New()
	g.Reset(core.DefaultConfig())
	g.Step(core.FrameOf(core.ActionStart))
	snap := g.Snapshot()

	assert.Equal(t, 5, snap.LevelCount)
	assert.Equal(t, levels.ThemeForest, snap.Theme)
	assert.Equal(t, 37, snap.TotalGems)
	assert.Len(t, snap.PowerUps, config.DefaultCavernConfig().PowerUps.PerLevel)
	assert.Nil(t, snap.Boss)
	require.NotNil(t, snap.Portal)
	assert.Equal(t, 700.0, snap.Portal.X)
}

func TestRender(t *testing.T) {
	g := New()
	g.Reset(core.DefaultConfig())
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	assert.Contains(t, screen.String(), "CRYSTAL CAVERN")

	g.Step(core.FrameOf(core.ActionStart))
	stepN(g, idle(), 8)
	g.Render(screen)
	out := screen.String()
	assert.Contains(t, out, "Score: 0")
	assert.Contains(t, out, "Gems: 0/37")
	assert.True(t, strings.ContainsRune(out, PlatformChar))
	assert.True(t, strings.ContainsRune(out, CrystalChar))

	g.Step(core.FrameOf(core.ActionPause))
	g.Render(screen)
	assert.Contains(t, screen.String(), "PAUSED")
}
