// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect represents an axis-aligned area of the screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
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

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
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

// GridCursor tracks a cursor on a cols x rows grid of cells indexed row-major.
type GridCursor struct {
	Cols, Rows int
	Index      int
}

// Move shifts the cursor by (dx, dy), clamped to the grid.
func (c *GridCursor) Move(dx, dy int) {
	x := Clamp(c.Index%c.Cols+dx, 0, c.Cols-1)
	y := Clamp(c.Index/c.Cols+dy, 0, c.Rows-1)
	c.Index = y*c.Cols + x
}

// Apply moves the cursor according to the directional actions in the frame.
func (c *GridCursor) Apply(in InputFrame) {
	switch {
	case in.Has(ActionUp):
		c.Move(0, -1)
	case in.Has(ActionDown):
		c.Move(0, 1)
	case in.Has(ActionLeft):
		c.Move(-1, 0)
	case in.Has(ActionRight):
		c.Move(1, 0)
	}
}
