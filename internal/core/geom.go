// Package core provides fundamental types and utilities for the dice roller.
// It contains no external dependencies (especially no Bubble Tea) to keep
// drawing logic pure and testable.
package core

import "math"

// Point is a position in a continuous 2D drawing space.
// Y grows downwards, matching both terminal rows and raster images.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Polar returns the point at distance r from p along angle a (radians).
// Angle 0 points right; positive angles turn clockwise on screen.
func (p Point) Polar(r, a float64) Point {
	return Point{
		X: p.X + r*math.Cos(a),
		Y: p.Y + r*math.Sin(a),
	}
}

// Rect represents an axis-aligned area of screen cells.
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

// NormalizeDegrees maps any angle in degrees into [0, 360).
func NormalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	// math.Mod can return 360 after the correction for tiny negatives.
	if deg >= 360 {
		deg = 0
	}
	return deg
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}
