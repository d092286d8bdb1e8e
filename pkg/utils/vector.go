package utils

import "math"

// Vec2 is a 2D size or point in floating point units.
// Used for screen sizes, reference resolutions and canvas size deltas.
type Vec2 struct {
	X float64
	Y float64
}

// Vec3 is a 3D position, used for camera and canvas transforms.
type Vec3 struct {
	X float64
	Y float64
	Z float64
}

// NewVec2 creates a Vec2 from integer pixel dimensions.
func NewVec2(width, height int) Vec2 {
	return Vec2{X: float64(width), Y: float64(height)}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Div returns v divided by s.
func (v Vec2) Div(s float64) Vec2 {
	return Vec2{X: v.X / s, Y: v.Y / s}
}

// Ints rounds up both components to integer pixels.
func (v Vec2) Ints() (int, int) {
	return int(math.Ceil(v.X)), int(math.Ceil(v.Y))
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Length returns the Euclidean length of v.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Distance returns the Euclidean distance between two positions.
func Distance(a, b Vec3) float64 {
	return a.Sub(b).Length()
}

// Lerp 线性插值，t 不做截断
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 将 t 限制在 [0, 1]
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
