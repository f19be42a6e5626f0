package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/sigep/internal/core"
	"github.com/vovakirdan/sigep/internal/geom"
	"github.com/vovakirdan/sigep/internal/scene"
)

// Viewer layout constants
const (
	minWidthForSidebar = 80 // Minimum width to show the shape table
	sidebarWidth       = 34 // Width of the shape table including border
	chromeHeight       = 3  // Title, status and help lines
)

// ViewerModel is the Bubble Tea model for the interactive scene viewer.
type ViewerModel struct {
	scene    scene.Scene
	original scene.Scene
	config   core.RuntimeConfig
	screen   *core.Screen
	viewport core.Viewport
	selected int
	spinning bool
	spinGen  int
	keys     ViewerKeyMap
	help     help.Model
	table    table.Model
	quitting bool
}

// NewViewerModel creates a viewer over sc sized by cfg.
func NewViewerModel(sc scene.Scene, cfg core.RuntimeConfig) ViewerModel {
	cfg = cfg.Normalize()
	h := help.New()
	h.ShowAll = false
	h.Width = cfg.ScreenW

	m := ViewerModel{
		scene:    sc,
		original: sc,
		config:   cfg,
		keys:     DefaultViewerKeyMap(),
		help:     h,
	}
	if sc.Len() == 0 {
		m.selected = -1
	}
	m.layout()
	return m
}

// showSidebar reports whether the shape table fits next to the canvas.
func (m ViewerModel) showSidebar() bool {
	return m.config.ScreenW >= minWidthForSidebar
}

// canvasSize returns the cell size of the drawing area.
func (m ViewerModel) canvasSize() (int, int) {
	w := m.config.ScreenW
	if m.showSidebar() {
		w -= sidebarWidth + 1
	}
	return max(w, 1), max(m.config.ScreenH-chromeHeight, 1)
}

// layout rebuilds the screen, viewport and table after a resize.
func (m *ViewerModel) layout() {
	w, h := m.canvasSize()
	if m.screen == nil {
		m.screen = core.NewScreen(w, h)
	} else {
		m.screen.Resize(w, h)
	}
	// fitted to the unedited scene so edits do not rescale the view
	m.viewport = FitScene(m.original, w, h, m.config.Aspect)
	m.table = m.createTable(h)
	m.updateTableRows()
}

func (m ViewerModel) createTable(height int) table.Model {
	columns := []table.Column{
		{Title: "Shape", Width: 10},
		{Title: "Rot°", Width: 6},
		{Title: "Center", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(height-4, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

func (m *ViewerModel) updateTableRows() {
	rows := make([]table.Row, m.scene.Len())
	for i, it := range m.scene.Items {
		c := it.Shape.Center()
		rows[i] = table.Row{
			it.Name,
			fmt.Sprintf("%.0f", it.Shape.Rotation()*180/math.Pi),
			fmt.Sprintf("%.1f,%.1f", c.X, c.Y),
		}
	}
	m.table.SetRows(rows)
	if m.selected >= 0 {
		m.table.SetCursor(m.selected)
	}
}

// Init starts no commands; ticks run only while spinning.
func (m ViewerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m ViewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.apply(m.keys.Action(msg))
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.layout()
		return m, nil
	case TickMsg:
		if !m.spinning || msg.Gen != m.spinGen {
			return m, nil
		}
		// two key steps per second
		m.scene = m.scene.Rotate(m.selected, 2*m.config.SpinStep/float64(m.config.TickRate))
		m.updateTableRows()
		return m, tickCmd(m.config.TickRate, m.spinGen)
	}
	return m, nil
}

// apply performs a viewer action on the selected shape.
func (m ViewerModel) apply(a core.Action) (ViewerModel, tea.Cmd) {
	step := m.config.Step
	switch a {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionToggleHelp:
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case core.ActionToggleSpin:
		if m.selected < 0 {
			return m, nil
		}
		m.spinning = !m.spinning
		m.spinGen++
		if m.spinning {
			return m, tickCmd(m.config.TickRate, m.spinGen)
		}
		return m, nil
	case core.ActionNextShape, core.ActionPrevShape:
		if n := m.scene.Len(); n > 0 {
			d := 1
			if a == core.ActionPrevShape {
				d = n - 1
			}
			m.selected = (m.selected + d) % n
		}
	case core.ActionMoveUp:
		m.scene = m.scene.Move(m.selected, geom.V(0, -step))
	case core.ActionMoveDown:
		m.scene = m.scene.Move(m.selected, geom.V(0, step))
	case core.ActionMoveLeft:
		m.scene = m.scene.Move(m.selected, geom.V(-step, 0))
	case core.ActionMoveRight:
		m.scene = m.scene.Move(m.selected, geom.V(step, 0))
	case core.ActionRotateCCW:
		m.scene = m.scene.Rotate(m.selected, m.config.SpinStep)
	case core.ActionRotateCW:
		m.scene = m.scene.Rotate(m.selected, -m.config.SpinStep)
	case core.ActionResetShape:
		m.scene = m.scene.Reset(m.selected)
	default:
		return m, nil
	}
	m.updateTableRows()
	return m, nil
}

// Scene returns the scene with all edits applied.
func (m ViewerModel) Scene() scene.Scene {
	return m.scene
}

// Selected returns the index of the highlighted shape, or -1.
func (m ViewerModel) Selected() int {
	return m.selected
}

// Spinning reports whether the selected shape is animating.
func (m ViewerModel) Spinning() bool {
	return m.spinning
}

// IsQuitting returns true if the user asked to leave.
func (m ViewerModel) IsQuitting() bool {
	return m.quitting
}

// View renders the viewer.
func (m ViewerModel) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	DrawScene(m.screen, m.viewport, m.scene, m.selected)
	canvas := RenderScreen(m.screen)

	body := canvas
	if m.showSidebar() {
		tableStyle := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Width(sidebarWidth - 2)
		body = lipgloss.JoinHorizontal(lipgloss.Top, canvas, " ", tableStyle.Render(m.table.View()))
	}

	var b strings.Builder
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(m.scene.Name))
	b.WriteString("\n")
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(m.status())
	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// status describes the selected shape and how many probes it holds.
func (m ViewerModel) status() string {
	if m.selected < 0 || m.selected >= m.scene.Len() {
		return "empty scene"
	}
	it := m.scene.Items[m.selected]
	inside := 0
	for _, p := range m.scene.Probes {
		if it.Shape.Contains(p) {
			inside++
		}
	}
	line := fmt.Sprintf("%s  %s  probes inside: %d", it.Name, it.Shape, inside)
	w, h := m.canvasSize()
	if !m.viewport.Visible(w, h).Contains(it.Shape.Center()) {
		line += "  [off-screen]"
	}
	if m.spinning {
		line += "  [spinning]"
	}
	return StyleFor(it.Color).Render(line)
}
