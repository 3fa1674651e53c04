// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect is an integer axis-aligned rectangle in screen cells.
// Used by the Screen buffer for boxes and fills.
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

// Vec2 is a 2D vector in world units. World space has +Y pointing up.
type Vec2 struct {
	X, Y float64
}

// V2 is shorthand for Vec2{X: x, Y: y}.
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Length returns the Euclidean length of v.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns v scaled to unit length, or the zero vector for zero input.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Box is an axis-aligned bounding box described by its center and full size.
type Box struct {
	Center Vec2
	Size   Vec2
}

// NewBox creates a box centered at c with the given size.
func NewBox(c, size Vec2) Box {
	return Box{Center: c, Size: size}
}

// Half returns the half-extents of the box.
func (b Box) Half() Vec2 {
	return b.Size.Scale(0.5)
}

// Min returns the bottom-left corner.
func (b Box) Min() Vec2 {
	h := b.Half()
	return Vec2{X: b.Center.X - h.X, Y: b.Center.Y - h.Y}
}

// Max returns the top-right corner.
func (b Box) Max() Vec2 {
	h := b.Half()
	return Vec2{X: b.Center.X + h.X, Y: b.Center.Y + h.Y}
}

// Overlaps reports whether two boxes intersect on both axes.
// Edges are inclusive: boxes that only touch count as overlapping.
func (b Box) Overlaps(o Box) bool {
	aMin, aMax := b.Min(), b.Max()
	bMin, bMax := o.Min(), o.Max()

	if aMax.X < bMin.X || bMax.X < aMin.X {
		return false
	}
	if aMax.Y < bMin.Y || bMax.Y < aMin.Y {
		return false
	}
	return true
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
