package cavern

// damagePlayer subtracts health unless the player is invincible. Running out
// of health costs a life.
func (w *World) damagePlayer(amount float64) {
	p := w.player
	if p.Invincible {
		return
	}
	p.Health -= amount
	if p.Health <= 0 {
		w.loseLife()
	}
}

// killPlayer costs a life regardless of invincibility.
func (w *World) killPlayer(cause string) {
	w.log.Debug("player killed", "cause", cause, "level", w.levelIndex)
	w.player.Health = 0
	w.loseLife()
}

// loseLife decrements lives and either resets the current level or ends
// the run.
func (w *World) loseLife() {
	w.lives--
	w.log.Info("life lost", "lives", w.lives, "level", w.levelIndex)
	if w.lives <= 0 {
		w.lives = 0
		w.setState(StateGameOver)
		return
	}
	w.player.Health = w.player.MaxHealth
	w.enterLevel(w.levelIndex)
}
