package main

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/boxplatformer/physics"
)

// cellRect is a half-open range of terminal cells.
type cellRect struct {
	X0, Y0, X1, Y1 int
}

// viewport maps world units onto a cols x rows grid. The world keeps its
// aspect ratio: each cell is twice as tall as it is wide.
type viewport struct {
	scaleX, scaleY float64
	cols, rows     int
}

func newViewport(worldW, worldH float64, cols, rows int) viewport {
	if worldW <= 0 || worldH <= 0 || cols <= 0 || rows <= 0 {
		return viewport{cols: cols, rows: rows}
	}
	sx := float64(cols) / worldW
	sy := float64(rows) / worldH
	// one cell row spans two columns' worth of height
	if sy*2 < sx {
		sx = sy * 2
	} else {
		sy = sx / 2
	}
	return viewport{scaleX: sx, scaleY: sy, cols: cols, rows: rows}
}

// cells returns the cells s covers, at least one cell per axis, clipped to
// the grid.
func (v viewport) cells(s physics.Shape) cellRect {
	r := cellRect{
		X0: int(math.Floor(s.X * v.scaleX)),
		Y0: int(math.Floor(s.Y * v.scaleY)),
		X1: int(math.Ceil((s.X + s.Width) * v.scaleX)),
		Y1: int(math.Ceil((s.Y + s.Height) * v.scaleY)),
	}
	if r.X1 <= r.X0 {
		r.X1 = r.X0 + 1
	}
	if r.Y1 <= r.Y0 {
		r.Y1 = r.Y0 + 1
	}
	r.X0, r.X1 = clamp(r.X0, 0, v.cols), clamp(r.X1, 0, v.cols)
	r.Y0, r.Y1 = clamp(r.Y0, 0, v.rows), clamp(r.Y1, 0, v.rows)
	return r
}

func clamp(n, lo, hi int) int {
	return max(lo, min(n, hi))
}

func toTcell(c color.Color) tcell.Color {
	if c == nil {
		return tcell.ColorDefault
	}
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	return tcell.NewRGBColor(int32(rgba.R), int32(rgba.G), int32(rgba.B))
}

func fillCells(screen tcell.Screen, r cellRect, ch rune, style tcell.Style) {
	for y := r.Y0; y < r.Y1; y++ {
		for x := r.X0; x < r.X1; x++ {
			screen.SetContent(x, y, ch, nil, style)
		}
	}
}
