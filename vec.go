package main

import "fmt"

// Vec is an integer 2-D vector, used both for the position of the
// instruction pointer and for its velocity. X grows to the right, Y grows
// downward.
type Vec struct{ X, Y int }

// The cardinal unit vectors.
var (
	Origin = Vec{0, 0}
	Right  = Vec{1, 0}
	Left   = Vec{-1, 0}
	Up     = Vec{0, -1}
	Down   = Vec{0, 1}
)

func (v Vec) Add(o Vec) Vec   { return Vec{v.X + o.X, v.Y + o.Y} }
func (v Vec) Sub(o Vec) Vec   { return Vec{v.X - o.X, v.Y - o.Y} }
func (v Vec) Scale(k int) Vec { return Vec{v.X * k, v.Y * k} }
func (v Vec) IsZero() bool    { return v == Origin }

func (v Vec) String() string { return fmt.Sprintf("(%d, %d)", v.X, v.Y) }

// Mag returns the number of cells crossed along the dominant axis when moving
// by v; every cardinal unit vector has magnitude 1.
func (v Vec) Mag() int {
	x, y := absInt(v.X), absInt(v.Y)
	if x > y {
		return x
	}
	return y
}

// Dir scales v down by its magnitude, so that moving by the result advances
// exactly one cell along the dominant axis.
func (v Vec) Dir() Vec {
	m := v.Mag()
	if m == 0 {
		return Origin
	}
	return Vec{v.X / m, v.Y / m}
}

// RotateRight turns v a quarter turn clockwise as seen on screen: Right
// becomes Down.
func (v Vec) RotateRight() Vec { return Vec{-v.Y, v.X} }

// RotateLeft turns v a quarter turn counter-clockwise: Right becomes Up.
func (v Vec) RotateLeft() Vec { return Vec{v.Y, -v.X} }

// Accelerate implements the direction setting policy of accelerating
// programs: continuing along an axis in the same sense compounds the
// velocity, anything else replaces it.
func Accelerate(cur, want Vec) Vec {
	if sameSign(cur.X, want.X) || sameSign(cur.Y, want.Y) {
		return cur.Add(want)
	}
	return want
}

func sameSign(a, b int) bool {
	return a < 0 && b < 0 || a > 0 && b > 0
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
