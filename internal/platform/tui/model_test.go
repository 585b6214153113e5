package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/crystal-cavern/internal/core"
)

// recordingGame remembers the frames it was stepped with.
type recordingGame struct {
	frames []core.InputFrame
	resets int
	state  core.GameState
}

func (g *recordingGame) ID() string               { return "recording" }
func (g *recordingGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *recordingGame) State() core.GameState    { return g.state }
func (g *recordingGame) Render(dst *core.Screen)  { dst.DrawText(0, 0, "hello") }
func (g *recordingGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	return core.StepResult{State: g.state}
}

func newTestModel(g *recordingGame) Model {
	cfg := core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 1}
	return NewModel(g, cfg, Options{HoldTicks: 2, ScreenshotDir: "unused"})
}

func TestModelLatchesDirections(t *testing.T) {
	g := &recordingGame{}
	var m tea.Model = newTestModel(g)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	for range 3 {
		m, _ = m.Update(TickMsg{})
	}

	if len(g.frames) != 3 {
		t.Fatalf("steps = %d, expected 3", len(g.frames))
	}
	if !g.frames[0].Has(core.ActionRight) || !g.frames[0].Has(core.ActionJump) {
		t.Errorf("first frame = %v, expected right and jump", g.frames[0])
	}
	if !g.frames[1].Has(core.ActionRight) || g.frames[1].Has(core.ActionJump) {
		t.Errorf("second frame should hold right only, got %v", g.frames[1])
	}
	if g.frames[2].Has(core.ActionRight) {
		t.Error("third frame should have released right")
	}
}

func TestModelQuit(t *testing.T) {
	g := &recordingGame{}
	var m tea.Model = newTestModel(g)

	m, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelViewIncludesHelp(t *testing.T) {
	g := &recordingGame{}
	m := newTestModel(g)

	view := m.View()
	if !strings.Contains(view, "hello") {
		t.Error("view should contain the game screen")
	}
	if !strings.Contains(view, "jump") {
		t.Error("view should contain the help line")
	}
}
