package motion

import "math"

// Vec2 is a 2D vector in world units, y-up
type Vec2 struct {
	X, Y float64
}

// Zero is the zero vector
var Zero = Vec2{}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v * s
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the vector length
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalized returns the unit vector of v, or Zero for very short vectors
func (v Vec2) Normalized() Vec2 {
	l := v.Len()
	if l < 1e-5 {
		return Zero
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// IsZero reports whether both components are exactly zero
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// signOf returns -1 for negative values and +1 otherwise, zero included
func signOf(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}
