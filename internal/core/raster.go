package core

import "github.com/vovakirdan/sigep/internal/geom"

// Rasterize fills every cell whose center lies inside shape and returns the
// number of cells written. Only cells under the shape's surrounding rect are
// tested.
func Rasterize(s *Screen, vp Viewport, shape geom.Shape, fill rune, c Color) int {
	bounds := shape.SurroundingRect()
	x0, y0 := vp.ToCell(bounds.Origin())
	x1, y1 := vp.ToCell(bounds.Origin().Add(bounds.Size()))

	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, s.Width()-1), min(y1, s.Height()-1)

	n := 0
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if shape.Contains(vp.CellCenter(x, y)) {
				s.SetColored(x, y, fill, c)
				n++
			}
		}
	}
	return n
}

// DrawCorners marks the corners of shape with r.
func DrawCorners(s *Screen, vp Viewport, shape geom.Shape, r rune, c Color) {
	for _, p := range shape.Corners() {
		DrawPoint(s, vp, p, r, c)
	}
}

// DrawPoint marks the cell holding world point p.
func DrawPoint(s *Screen, vp Viewport, p geom.Vector, r rune, c Color) {
	x, y := vp.ToCell(p)
	s.SetColored(x, y, r, c)
}
