// Package core provides fundamental types and utilities for the digger platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned cell rectangle used for screen drawing.
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

// Vec is a point or displacement in continuous field coordinates.
// Y grows downward, matching screen rows.
type Vec struct {
	X, Y float64
}

// V is shorthand for Vec{X: x, Y: y}.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Polar returns the point at distance length from v along angle, where angle
// is measured in radians from straight down and grows toward +X.
func (v Vec) Polar(angle, length float64) Vec {
	return Vec{
		X: v.X + math.Sin(angle)*length,
		Y: v.Y + math.Cos(angle)*length,
	}
}

// Box is an axis-aligned bounding box given by its center and full size.
type Box struct {
	Center Vec
	W, H   float64
}

// Min returns the top-left corner.
func (b Box) Min() Vec {
	return Vec{X: b.Center.X - b.W/2, Y: b.Center.Y - b.H/2}
}

// Max returns the bottom-right corner.
func (b Box) Max() Vec {
	return Vec{X: b.Center.X + b.W/2, Y: b.Center.Y + b.H/2}
}

// Contains reports whether p lies inside the box. Edges are inclusive so a tip
// landing exactly on a border still counts as a hit.
func (b Box) Contains(p Vec) bool {
	lo, hi := b.Min(), b.Max()
	return p.X >= lo.X && p.X <= hi.X && p.Y >= lo.Y && p.Y <= hi.Y
}

// InBounds reports whether p lies within [0, w] x [0, h].
func InBounds(p Vec, w, h float64) bool {
	return p.X >= 0 && p.X <= w && p.Y >= 0 && p.Y <= h
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

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
