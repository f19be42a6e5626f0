package tui

import (
	"math"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/sigep/internal/core"
	"github.com/vovakirdan/sigep/internal/geom"
	"github.com/vovakirdan/sigep/internal/scene"
)

func newTestViewer(t *testing.T, w, h int) ViewerModel {
	t.Helper()
	cfg := core.DefaultConfig()
	cfg.ScreenW, cfg.ScreenH = w, h
	return NewViewerModel(scene.Default(), cfg)
}

func send(t *testing.T, m ViewerModel, msg tea.Msg) (ViewerModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	vm, ok := next.(ViewerModel)
	if !ok {
		t.Fatalf("Update returned %T, want ViewerModel", next)
	}
	return vm, cmd
}

func TestViewerSelection(t *testing.T) {
	m := newTestViewer(t, 100, 30)
	if m.Selected() != 0 {
		t.Fatalf("initial selection = %d, want 0", m.Selected())
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.Selected() != 1 {
		t.Errorf("after tab selection = %d, want 1", m.Selected())
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if want := m.Scene().Len() - 1; m.Selected() != want {
		t.Errorf("shift+tab should wrap to %d, got %d", want, m.Selected())
	}
}

func TestViewerMoveAndRotate(t *testing.T) {
	m := newTestViewer(t, 100, 30)
	before := m.Scene().Items[0].Shape

	m, _ = send(t, m, runeKey('d'))
	m, _ = send(t, m, runeKey('s'))
	got := m.Scene().Items[0].Shape.Center()
	want := before.Center().Add(geom.V(1, 1))
	if !got.Equal(want) {
		t.Errorf("center after move = %v, want %v", got, want)
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if rot := m.Scene().Items[0].Shape.Rotation(); math.Abs(rot-m.config.SpinStep) > 1e-9 {
		t.Errorf("rotation after right = %v, want %v", rot, m.config.SpinStep)
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if rot := m.Scene().Items[0].Shape.Rotation(); math.Abs(rot-(geom.TwoPi-m.config.SpinStep)) > 1e-9 {
		t.Errorf("rotation should wrap below zero, got %v", rot)
	}

	m, _ = send(t, m, runeKey('r'))
	if rot := m.Scene().Items[0].Shape.Rotation(); rot != 0 {
		t.Errorf("rotation after reset = %v, want 0", rot)
	}

	// the source scene is untouched
	if !scene.Default().Items[0].Shape.Equal(before) {
		t.Error("editing the viewer changed the default scene")
	}
}

func TestViewerSpin(t *testing.T) {
	m := newTestViewer(t, 100, 30)

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if !m.Spinning() || cmd == nil {
		t.Fatal("space should start spinning and schedule a tick")
	}

	m, cmd = send(t, m, TickMsg{Gen: m.spinGen})
	if cmd == nil {
		t.Error("tick while spinning should schedule another tick")
	}
	if rot := m.Scene().Items[0].Shape.Rotation(); rot <= 0 {
		t.Errorf("tick did not rotate the selection, rotation = %v", rot)
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if m.Spinning() {
		t.Fatal("second space should stop spinning")
	}
	rot := m.Scene().Items[0].Shape.Rotation()
	m, cmd = send(t, m, TickMsg{Gen: m.spinGen})
	if cmd != nil {
		t.Error("tick after stop should not reschedule")
	}
	if m.Scene().Items[0].Shape.Rotation() != rot {
		t.Error("tick after stop changed the rotation")
	}
}

func TestViewerSpinRestartDropsStaleTicks(t *testing.T) {
	m := newTestViewer(t, 100, 30)
	space := tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}

	m, _ = send(t, m, space)
	stale := m.spinGen
	m, _ = send(t, m, space)
	m, _ = send(t, m, space)
	if !m.Spinning() || m.spinGen == stale {
		t.Fatalf("restart should spin under a new generation, got gen %d (old %d)", m.spinGen, stale)
	}

	// the tick scheduled before the stop arrives late
	m, cmd := send(t, m, TickMsg{Gen: stale})
	if cmd != nil {
		t.Error("stale tick should not reschedule")
	}
	if rot := m.Scene().Items[0].Shape.Rotation(); rot != 0 {
		t.Errorf("stale tick rotated the selection to %v", rot)
	}

	// only the current chain advances, one step per tick
	step := 2 * m.config.SpinStep / float64(m.config.TickRate)
	m, cmd = send(t, m, TickMsg{Gen: m.spinGen})
	if cmd == nil {
		t.Error("current tick should reschedule")
	}
	if rot := m.Scene().Items[0].Shape.Rotation(); math.Abs(rot-step) > 1e-9 {
		t.Errorf("rotation after one tick = %v, want %v", rot, step)
	}
}

func TestViewerQuit(t *testing.T) {
	m := newTestViewer(t, 100, 30)
	m, cmd := send(t, m, runeKey('q'))
	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestViewerView(t *testing.T) {
	m := newTestViewer(t, 100, 30)
	view := m.View()

	for _, want := range []string{"default", "floor", "Shape", "probes inside"} {
		if !strings.Contains(view, want) {
			t.Errorf("wide view missing %q", want)
		}
	}

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	if strings.Contains(m.View(), "Shape") {
		t.Error("narrow view should hide the shape table")
	}
	if w, h := m.canvasSize(); w != 60 || h != 17 {
		t.Errorf("narrow canvas = %dx%d, want 60x17", w, h)
	}
}

func TestViewerEmptyScene(t *testing.T) {
	sc, err := scene.New("empty", nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	m := NewViewerModel(sc, core.DefaultConfig())
	if m.Selected() != -1 {
		t.Errorf("selection in empty scene = %d, want -1", m.Selected())
	}

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if m.Spinning() || cmd != nil {
		t.Error("empty scene should not spin")
	}
	m, _ = send(t, m, runeKey('d'))
	if !strings.Contains(m.View(), "empty scene") {
		t.Error("status should report the empty scene")
	}
}

func TestDrawSceneMarksProbes(t *testing.T) {
	sc, err := scene.New("probes", []scene.Item{
		{Name: "box", Shape: geom.NewRotatedRect(0, 0, 10, 10, math.Pi/4), Color: core.ColorCyan},
	}, []geom.Vector{geom.V(5, 5), geom.V(0.5, 0.5)})
	if err != nil {
		t.Fatal(err)
	}
	s := core.NewScreen(40, 20)
	vp := FitScene(sc, 40, 20, 2)

	DrawScene(s, vp, sc, -1)

	hits, misses, filled := 0, 0, 0
	for y := range s.Height() {
		for x := range s.Width() {
			switch s.Get(x, y) {
			case probeHitRune:
				hits++
			case probeRune:
				misses++
			case fillRune:
				filled++
			}
		}
	}
	// the corner at (0.5, 0.5) is cut off by the 45 degree turn
	if hits != 1 || misses != 1 {
		t.Errorf("probe marks: %d hits, %d misses, want 1 and 1", hits, misses)
	}
	if filled == 0 {
		t.Error("shape was not filled")
	}
	if s.Get(0, 0) != '┌' || s.Get(39, 19) != '┘' {
		t.Errorf("canvas not framed: %q %q", s.Get(0, 0), s.Get(39, 19))
	}
}

func TestViewerOffScreenStatus(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.ScreenW, cfg.ScreenH = 100, 30
	cfg.Step = 1000
	m := NewViewerModel(scene.Default(), cfg)

	if strings.Contains(m.View(), "[off-screen]") {
		t.Fatal("fresh scene should be on screen")
	}
	m, _ = send(t, m, runeKey('d'))
	if !strings.Contains(m.View(), "[off-screen]") {
		t.Error("shape moved far right should be reported off-screen")
	}
}
