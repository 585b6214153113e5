package cavern

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/crystal-cavern/internal/config"
	"github.com/vovakirdan/crystal-cavern/internal/core"
	"github.com/vovakirdan/crystal-cavern/internal/levels"
)

// groundLevel is a flat level: a full-width floor, the player standing on
// it at x=100 and a portal in the far corner.
func groundLevel(id string, theme levels.Theme) levels.Level {
	return levels.Level{
		ID:     id,
		Name:   id,
		Theme:  theme,
		Spawn:  levels.Point{X: 100, Y: 500},
		Portal: &levels.Point{X: 760, Y: 520},
		Platforms: []levels.Platform{
			{X: 0, Y: 550, W: 800, H: 50},
		},
	}
}

func testConfig() config.CavernConfig {
	cfg := config.DefaultCavernConfig()
	cfg.PowerUps.PerLevel = 0
	return cfg
}

// newTestGame builds a game over the given levels and starts a run.
func newTestGame(t *testing.T, cfg config.CavernConfig, lvls ...levels.Level) *Game {
	t.Helper()
	g := New(WithConfig(cfg), WithLevels(levels.Campaign{Name: "test", Levels: lvls}))
	g.Reset(core.DefaultConfig())
	g.Step(core.FrameOf(core.ActionStart))
	require.Equal(t, StatePlaying, g.Phase())
	return g
}

func idle() core.InputFrame {
	return core.NewInputFrame()
}

func stepN(g *Game, in core.InputFrame, n int) {
	for range n {
		g.Step(in)
	}
}
