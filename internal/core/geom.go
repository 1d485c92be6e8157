// Package core provides fundamental types and utilities for the arcade platform.
// It has no external dependencies (in particular no Bubble Tea), so game logic
// built on it stays pure and testable.
package core

import "math"

// Rect is an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Box is an axis-aligned bounding box in world units.
// Simulations keep positions in floats and only project to cells when drawing.
type Box struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Overlaps reports whether two boxes share interior area.
// Touching edges do not count as overlap.
func (b Box) Overlaps(o Box) bool {
	return b.X < o.Right() &&
		b.Right() > o.X &&
		b.Y < o.Bottom() &&
		b.Bottom() > o.Y
}

// ToRect projects the box onto a cell grid using the given scale factors
// (cells per world unit). The result always covers at least one cell so
// small entities never disappear when the terminal is tiny.
func (b Box) ToRect(scaleX, scaleY float64) Rect {
	x0 := int(math.Floor(b.X * scaleX))
	y0 := int(math.Floor(b.Y * scaleY))
	x1 := int(math.Ceil(b.Right() * scaleX))
	y1 := int(math.Ceil(b.Bottom() * scaleY))
	return NewRect(x0, y0, Max(x1-x0, 1), Max(y1-y0, 1))
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
