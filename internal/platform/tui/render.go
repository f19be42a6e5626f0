package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/sigep/internal/core"
	"github.com/vovakirdan/sigep/internal/geom"
	"github.com/vovakirdan/sigep/internal/scene"
)

// Glyphs used when drawing a scene.
const (
	fillRune     = '█'
	selectedRune = '▓'
	cornerRune   = '+'
	probeRune    = '×'
	probeHitRune = '◉'
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// StyleFor returns the lipgloss style of a color.
func StyleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(StyleFor(startColor).Render(run.String()))
		}
	}
	return sb.String()
}

// DrawScene rasterizes every shape of sc, then marks the probes and frames the
// canvas. The shape at index selected, if any, is drawn after the others with
// a distinct fill and its corners.
func DrawScene(dst *core.Screen, vp core.Viewport, sc scene.Scene, selected int) {
	for i, it := range sc.Items {
		if i == selected {
			continue
		}
		core.Rasterize(dst, vp, it.Shape, fillRune, it.Color)
	}
	if selected >= 0 && selected < sc.Len() {
		it := sc.Items[selected]
		core.Rasterize(dst, vp, it.Shape, selectedRune, it.Color)
		core.DrawCorners(dst, vp, it.Shape, cornerRune, core.ColorBrightWhite)
	}

	for _, p := range sc.Probes {
		r, c := probeRune, core.ColorGray
		if len(sc.Hit(p)) > 0 {
			r, c = probeHitRune, core.ColorBrightRed
		}
		core.DrawPoint(dst, vp, p, r, c)
	}

	dst.DrawBox(dst.Bounds(), core.ColorGray)
}

// FitScene returns a viewport showing the whole scene in a w x h area.
// Bounds are padded so shapes can be moved and spun without leaving the view.
func FitScene(sc scene.Scene, w, h int, aspect float64) core.Viewport {
	bounds, ok := sc.Bounds()
	if !ok {
		bounds = geom.NewRect(-10, -10, 20, 20)
	}
	pad := 0.15 * max(bounds.W, bounds.H)
	padded := geom.NewRect(bounds.X-pad, bounds.Y-pad, bounds.W+2*pad, bounds.H+2*pad)
	// one cell of margin is left for the frame
	return core.FitViewport(padded, w, h, 1, aspect)
}
