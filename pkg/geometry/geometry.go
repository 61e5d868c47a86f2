package geometry

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Ray represents a ray in 3D space
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

// At returns the point reached after travelling t along the ray
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Aabb is an axis-aligned box given by its minimum and maximum corners.
// It is laid out as six consecutive float32 values (Lo then Hi).
type Aabb struct {
	Lo mgl32.Vec3 `json:"lo" yaml:"lo" toml:"lo"`
	Hi mgl32.Vec3 `json:"hi" yaml:"hi" toml:"hi"`
}

// DefaultAabb returns the unit box spanning [0,1] on every axis
func DefaultAabb() Aabb {
	return Aabb{
		Lo: mgl32.Vec3{0, 0, 0},
		Hi: mgl32.Vec3{1, 1, 1},
	}
}

// WithTranslation returns a copy of the box moved by offset
func (b Aabb) WithTranslation(offset mgl32.Vec3) Aabb {
	return Aabb{
		Lo: b.Lo.Add(offset),
		Hi: b.Hi.Add(offset),
	}
}

// Center returns the midpoint of the box
func (b Aabb) Center() mgl32.Vec3 {
	return b.Lo.Add(b.Hi).Mul(0.5)
}

// HalfExtent returns half the size of the box on each axis
func (b Aabb) HalfExtent() mgl32.Vec3 {
	return b.Hi.Sub(b.Lo).Mul(0.5)
}

// Contains reports whether p lies inside the box (boundary included)
func (b Aabb) Contains(p mgl32.Vec3) bool {
	for i := 0; i < 3; i++ {
		if p[i] < b.Lo[i] || p[i] > b.Hi[i] {
			return false
		}
	}
	return true
}

// Intersect runs a slab test and returns the entry and exit distances along
// the ray. tNear is clamped to zero when the origin is inside the box.
func (b Aabb) Intersect(r Ray) (tNear, tFar float32, ok bool) {
	tNear, tFar = 0, math32.Inf(1)

	for i := 0; i < 3; i++ {
		o, d := r.Origin[i], r.Direction[i]

		// Parallel to this slab: miss unless the origin is between the planes
		if math32.Abs(d) < 1e-8 {
			if o < b.Lo[i] || o > b.Hi[i] {
				return 0, 0, false
			}
			continue
		}

		inv := 1 / d
		t1 := (b.Lo[i] - o) * inv
		t2 := (b.Hi[i] - o) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tNear {
			tNear = t1
		}
		if t2 < tFar {
			tFar = t2
		}
		if tNear > tFar {
			return 0, 0, false
		}
	}

	return tNear, tFar, true
}
