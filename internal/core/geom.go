// Package core provides fundamental types and utilities for the lanefall platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import (
	"fmt"
	"math"
)

// Vector2 is an immutable 2D vector. All operations return new values.
type Vector2 struct {
	X, Y float64
}

// V2 creates a new Vector2.
func V2(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add returns v + o.
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{v.X - o.X, v.Y - o.Y}
}

// Scalar returns v scaled by k.
func (v Vector2) Scalar(k float64) Vector2 {
	return Vector2{v.X * k, v.Y * k}
}

// Length returns sqrt(x²+y²).
func (v Vector2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Distance returns the length of v - o.
func (v Vector2) Distance(o Vector2) float64 {
	return v.Sub(o).Length()
}

// Normalize returns the unit vector in the direction of v.
// The second result is false when v has zero length; the direction is then
// undefined and the returned vector is the zero vector.
func (v Vector2) Normalize() (Vector2, bool) {
	l := v.Length()
	if l == 0 {
		return Vector2{}, false
	}
	return v.Scalar(1 / l), true
}

// IsFinite reports whether both components are neither NaN nor infinite.
func (v Vector2) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

// String implements fmt.Stringer.
func (v Vector2) String() string {
	return fmt.Sprintf("(%.3f, %.3f)", v.X, v.Y)
}

// Side indexes one edge of a Bounds.
type Side int

const (
	SideLeft Side = iota
	SideRight
	SideTop
	SideBottom
)

// String returns the side name.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// Bounds is an axis-aligned rectangle in continuous coordinates.
type Bounds struct {
	Left, Top, Right, Bottom float64
}

// NewBounds creates bounds from its four edges.
func NewBounds(left, top, right, bottom float64) Bounds {
	return Bounds{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Width returns Right - Left.
func (b Bounds) Width() float64 {
	return b.Right - b.Left
}

// Height returns Bottom - Top.
func (b Bounds) Height() float64 {
	return b.Bottom - b.Top
}

// Contains is a half-open test: [Left,Right) × [Top,Bottom).
func (b Bounds) Contains(p Vector2) bool {
	return b.Left <= p.X && p.X < b.Right && b.Top <= p.Y && p.Y < b.Bottom
}

// BoundsFlags is the classification returned by Bounds.Test.
//
// For side k (left=0, right=1, top=2, bottom=3) flag[2k] means the other box
// has reached or passed that side and flag[2k+1] means it is still partially
// inside across it. Flag 8 is reserved and always false.
type BoundsFlags [9]bool

// Reached reports flag[2k]: the side has been reached or passed.
func (f BoundsFlags) Reached(s Side) bool {
	return f[2*int(s)]
}

// Straddling reports flag[2k+1]: the side is reached but the box is still
// partially inside across it.
func (f BoundsFlags) Straddling(s Side) bool {
	return f[2*int(s)+1]
}

// Crossed reports that the box has entirely passed beyond side s.
func (f BoundsFlags) Crossed(s Side) bool {
	return f.Reached(s) && !f.Straddling(s)
}

// Test classifies how o intersects or crosses each side of b.
func (b Bounds) Test(o Bounds) BoundsFlags {
	var flags BoundsFlags

	if o.Left <= b.Left {
		flags[0] = true
		flags[1] = o.Right > b.Left
	}

	if o.Right >= b.Right {
		flags[2] = true
		flags[3] = o.Left < b.Right
	}

	if o.Top <= b.Top {
		flags[4] = true
		flags[5] = o.Bottom > b.Top
	}

	if o.Bottom >= b.Bottom {
		flags[6] = true
		flags[7] = o.Top < b.Bottom
	}

	flags[8] = false
	return flags
}

// Inset returns b shrunk by margin on every side.
func (b Bounds) Inset(margin float64) Bounds {
	return Bounds{b.Left + margin, b.Top + margin, b.Right - margin, b.Bottom - margin}
}

// Rect represents an integer axis-aligned box in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
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

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
