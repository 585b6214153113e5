package tui

import "github.com/vovakirdan/crystal-cavern/internal/core"

// defaultHoldTicks is how long a horizontal key press counts as held. It
// bridges the gap between terminal auto-repeat events.
const defaultHoldTicks = 8

// heldKeys approximates key-hold state for terminals, which only report
// presses. A press keeps its action active for a number of ticks; pressing
// the opposite direction releases the other one at once.
type heldKeys struct {
	ttl       int
	remaining map[core.Action]int
}

func newHeldKeys(ttl int) *heldKeys {
	if ttl <= 0 {
		ttl = defaultHoldTicks
	}
	return &heldKeys{ttl: ttl, remaining: make(map[core.Action]int)}
}

// press marks the action as held for the next ttl ticks.
func (h *heldKeys) press(a core.Action) {
	switch a {
	case core.ActionLeft:
		delete(h.remaining, core.ActionRight)
	case core.ActionRight:
		delete(h.remaining, core.ActionLeft)
	}
	h.remaining[a] = h.ttl
}

// apply sets every held action on the frame and ages the latch by a tick.
func (h *heldKeys) apply(frame *core.InputFrame) {
	for a, n := range h.remaining {
		frame.Set(a)
		if n <= 1 {
			delete(h.remaining, a)
			continue
		}
		h.remaining[a] = n - 1
	}
}

// release drops every held action.
func (h *heldKeys) release() {
	clear(h.remaining)
}
