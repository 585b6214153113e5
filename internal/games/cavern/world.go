package cavern

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/crystal-cavern/internal/config"
	"github.com/vovakirdan/crystal-cavern/internal/core"
	"github.com/vovakirdan/crystal-cavern/internal/levels"
)

// Game state constants
const (
	StateTitle    = "title"    // Waiting for Start
	StatePlaying  = "playing"  // Simulation running
	StateGameOver = "gameover" // No lives left
	StateWin      = "win"      // Boss defeated or final portal taken
)

// World is the simulation context every pipeline stage operates on. It is
// owned by a single Game and never shared.
type World struct {
	cfg      config.CavernConfig
	campaign levels.Campaign // Templates, power-ups already scattered
	log      *log.Logger
	rng      *SimpleRNG

	levels     []*LevelState
	levelIndex int
	player     *Player

	boss        *Boss // nil on levels without one
	bossBullets []*Bullet
	effects     []*Effect

	state  string
	paused bool
	score  int
	lives  int
	gems   int
	tick   int

	// epoch increments on every level entry so a stage can tell that the
	// entities it was iterating have been replaced underneath it.
	epoch int

	input core.InputFrame
}

func newWorld(cfg config.CavernConfig, campaign levels.Campaign, seed int64, logger *log.Logger) *World {
	rng := NewSimpleRNG(seed)
	w := &World{
		cfg:      cfg,
		campaign: scatterPowerUps(campaign, cfg.PowerUps.PerLevel, rng),
		log:      logger,
		rng:      rng,
		input:    core.NewInputFrame(),
	}
	w.resetRun()
	w.state = StateTitle
	return w
}

// level returns the current level state.
func (w *World) level() *LevelState {
	return w.levels[w.levelIndex]
}

// setState moves the state machine and logs the transition.
func (w *World) setState(s string) {
	if w.state == s {
		return
	}
	w.log.Info("state change", "from", w.state, "to", s, "tick", w.tick, "score", w.score)
	w.state = s
}

// resetRun restores everything a fresh run starts with: score, lives, gems,
// a new player with baseline stats and pristine copies of every level.
func (w *World) resetRun() {
	w.score = 0
	w.lives = w.cfg.Player.Lives
	w.gems = 0
	w.effects = nil
	w.paused = false
	w.player = newPlayer(w.cfg)

	w.levels = make([]*LevelState, len(w.campaign.Levels))
	for i, tmpl := range w.campaign.Levels {
		w.levels[i] = newLevelState(i, tmpl, w.cfg)
	}
	w.enterLevel(0)
}

// startRun begins a new run in the Playing state.
func (w *World) startRun() {
	w.resetRun()
	w.setState(StatePlaying)
}

// enterLevel performs a level reset: the player goes back to the spawn
// point with fresh invincibility, pickups reappear, a boss is rebuilt from
// its template and, if configured, the enemy roster is restored.
func (w *World) enterLevel(index int) {
	w.levelIndex = index
	w.epoch++
	lvl := w.level()

	p := w.player
	p.X, p.Y = lvl.Template.Spawn.X, lvl.Template.Spawn.Y
	p.VX, p.VY = 0, 0
	p.Grounded = false
	p.DoubleJumpUsed = false
	p.OnIce = false
	p.Bullets = nil
	p.grantInvincibility(w.cfg.Player.RespawnGrace)

	w.bossBullets = nil
	w.boss = nil
	if lvl.Template.Boss != nil {
		w.boss = newBoss(*lvl.Template.Boss)
	}

	lvl.restorePickups()
	if w.cfg.Gameplay.RestoreEnemiesOnReset {
		lvl.restoreEnemies(w.cfg)
	}

	w.log.Debug("entered level", "index", index, "name", lvl.Template.Name, "theme", lvl.Theme())
}

// portalBox returns the trigger region of the current level's portal.
func (w *World) portalBox() (core.Box, bool) {
	portal := w.level().Template.Portal
	if portal == nil {
		return core.Box{}, false
	}
	return core.BoxAround(portal.X, portal.Y, w.cfg.Player.PortalRadius), true
}

// checkPortal advances to the next level when the player reaches the
// portal. Taking the last level's portal wins the run.
func checkPortal(w *World) {
	box, ok := w.portalBox()
	if !ok || !w.player.Box().Intersects(box) {
		return
	}
	next := w.levelIndex + 1
	if next >= len(w.levels) {
		w.setState(StateWin)
		return
	}
	w.log.Info("portal reached", "from", w.levelIndex, "to", next)
	w.enterLevel(next)
}

// stage is one named step of the tick pipeline.
type stage struct {
	name string
	run  func(w *World)
}

// pipeline is the fixed per-tick update order while Playing.
var pipeline = []stage{
	{"input", applyInput},
	{"kinematics", integratePlayer},
	{"collision", resolvePlatforms},
	{"pickups", collectPickups},
	{"enemies", updateEnemies},
	{"boss", updateBoss},
	{"platforms", advancePlatforms},
	{"effects", expireEffects},
	{"portal", checkPortal},
}

// advance runs one Playing tick. Stages after a state change are skipped.
// The frame is copied because front ends reuse theirs between ticks.
func (w *World) advance(in core.InputFrame) {
	w.input = in.Clone()
	w.tick++
	for _, s := range pipeline {
		s.run(w)
		if w.state != StatePlaying {
			w.log.Debug("pipeline stopped", "stage", s.name, "state", w.state)
			return
		}
	}
}
