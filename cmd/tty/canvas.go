package main

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
	"lasteroids/game"
)

// hudRows is the number of terminal rows above the playfield
const hudRows = 1

const lineRune = '*'

// cellSetter is the part of tcell.Screen the canvas writes through
type cellSetter interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// canvas rasterises world-space outlines into terminal cells
type canvas struct {
	dst            cellSetter
	worldW, worldH float64
	cols, rows     int
	scaleX, scaleY float64 // cells per world unit
}

func newCanvas(dst cellSetter, worldW, worldH float64, cols, rows int) *canvas {
	c := &canvas{dst: dst, worldW: worldW, worldH: worldH}
	c.resize(cols, rows)
	return c
}

// resize fits the playfield to a cols x rows terminal, below the HUD
func (c *canvas) resize(cols, rows int) {
	c.cols = cols
	c.rows = rows - hudRows
	if c.rows < 0 {
		c.rows = 0
	}
	c.scaleX = float64(c.cols) / c.worldW
	c.scaleY = float64(c.rows) / c.worldH
}

// cell maps a world point to a playfield cell
func (c *canvas) cell(p game.Point) (int, int) {
	return int(p.X * c.scaleX), int(p.Y * c.scaleY)
}

// DrawPolyline plots every edge of the closed loop
func (c *canvas) DrawPolyline(points []game.Point, clr color.RGBA) {
	n := len(points)
	if n == 0 {
		return
	}
	style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(clr.R), int32(clr.G), int32(clr.B)))
	for i, p := range points {
		x0, y0 := c.cell(p)
		x1, y1 := c.cell(points[(i+1)%n])
		line(x0, y0, x1, y1, func(x, y int) {
			c.plot(x, y, style)
		})
	}
}

// plot sets one playfield cell, clipping anything off-screen
func (c *canvas) plot(x, y int, style tcell.Style) {
	if x < 0 || x >= c.cols || y < 0 || y >= c.rows {
		return
	}
	c.dst.SetContent(x, y+hudRows, lineRune, nil, style)
}

// line calls plot for every cell on the segment from (x0,y0) to (x1,y1), both ends included
func line(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	err := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// drawText writes s starting at column x of row y
func drawText(dst cellSetter, x, y int, s string, style tcell.Style) {
	for _, r := range s {
		dst.SetContent(x, y, r, nil, style)
		x++
	}
}
