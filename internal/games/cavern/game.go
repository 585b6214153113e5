// Package cavern implements the Crystal Cavern platformer simulation: a
// fixed-rate, deterministic tick loop over a five-level campaign with
// crystals, power-ups, enemies and a boss. The package draws nothing itself
// beyond an ASCII rendition onto a core.Screen; terminals and other front
// ends consume its Snapshot.
package cavern

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/crystal-cavern/internal/config"
	"github.com/vovakirdan/crystal-cavern/internal/core"
	"github.com/vovakirdan/crystal-cavern/internal/levels"
)

// Game implements the Crystal Cavern game logic.
type Game struct {
	cfg      config.CavernConfig
	campaign levels.Campaign
	log      *log.Logger

	runtime core.RuntimeConfig
	world   *World
	frames  int // Rendered-step counter for blinking, runs in every state
}

// Option configures a Game.
type Option func(*Game)

// WithConfig replaces the default tuning.
func WithConfig(cfg config.CavernConfig) Option {
	return func(g *Game) {
		g.cfg = cfg
	}
}

// WithLevels replaces the built-in campaign. The campaign is expected to
// have passed levels.Validate.
func WithLevels(c levels.Campaign) Option {
	return func(g *Game) {
		g.campaign = c.Clone()
	}
}

// WithLogger sets the logger used for state transitions and run events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.log = l
		}
	}
}

// New creates a new game. Reset must be called before the first Step.
func New(opts ...Option) *Game {
	g := &Game{
		cfg: config.DefaultCavernConfig(),
		log: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	if len(g.campaign.Levels) == 0 {
		c, err := levels.Default(g.cfg.Playfield.Width, g.cfg.Playfield.Height)
		if err != nil {
			// The embedded campaign is covered by tests; this cannot happen
			// in a released build.
			panic(err)
		}
		g.campaign = c
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "cavern"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Crystal Cavern"
}

// Reset initializes or restarts the game in the title state.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.frames = 0
	g.world = newWorld(g.cfg, g.campaign, runtime.Seed, g.log)
	g.log.Debug("game reset", "seed", runtime.Seed, "levels", len(g.campaign.Levels))
}

// Step advances the game by exactly one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	w := g.world
	g.frames++

	switch w.state {
	case StateTitle:
		if in.Has(core.ActionStart) {
			w.startRun()
		}

	case StateGameOver, StateWin:
		if in.Has(core.ActionRestart) {
			w.startRun()
		}

	case StatePlaying:
		if in.Has(core.ActionPause) {
			w.paused = !w.paused
			w.log.Debug("pause toggled", "paused", w.paused)
		}
		if !w.paused {
			w.advance(in)
		}
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	w := g.world
	return core.GameState{
		Score:    w.score,
		GameOver: w.state == StateGameOver || w.state == StateWin,
		Won:      w.state == StateWin,
		Paused:   w.paused,
	}
}

// Phase returns the state machine's current state name.
func (g *Game) Phase() string {
	return g.world.state
}
