// Package core provides fundamental types and utilities for the racer platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect is an integer cell rectangle on the screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Viewport maps track coordinates onto a screen rectangle.
// Track x grows right and track y grows down, like screen cells.
type Viewport struct {
	Screen     Rect
	MinX, MinY float64 // Track coordinates shown at the top-left cell
	ScaleX     float64 // Cells per track unit horizontally
	ScaleY     float64 // Cells per track unit vertically
}

// FitViewport scales the track span [minX,maxX]x[minY,maxY] to fill screen.
// Degenerate spans map at one cell per unit.
func FitViewport(screen Rect, minX, minY, maxX, maxY float64) Viewport {
	v := Viewport{Screen: screen, MinX: minX, MinY: minY, ScaleX: 1, ScaleY: 1}
	if maxX > minX && screen.W > 1 {
		v.ScaleX = float64(screen.W-1) / (maxX - minX)
	}
	if maxY > minY && screen.H > 1 {
		v.ScaleY = float64(screen.H-1) / (maxY - minY)
	}
	return v
}

// Project converts a track point to the nearest screen cell.
func (v Viewport) Project(x, y float64) (int, int) {
	cx := v.Screen.X + int(math.Round((x-v.MinX)*v.ScaleX))
	cy := v.Screen.Y + int(math.Round((y-v.MinY)*v.ScaleY))
	return cx, cy
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
