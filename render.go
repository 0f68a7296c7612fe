package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"lasteroids/game"
)

// lineDrawer strokes simulation outlines onto the frame being drawn
type lineDrawer struct {
	dst   *ebiten.Image
	width float32
}

// DrawPolyline strokes the closed loop through points
func (d *lineDrawer) DrawPolyline(points []game.Point, clr color.RGBA) {
	n := len(points)
	if n < 2 || d.dst == nil {
		return
	}
	for i, p := range points {
		q := points[(i+1)%n]
		vector.StrokeLine(d.dst, float32(p.X), float32(p.Y), float32(q.X), float32(q.Y), d.width, clr, true)
	}
}
