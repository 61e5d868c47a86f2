package graphics

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"volray/pkg/geometry"
)

// Camera orbits TargetPos at Distance. Theta is the azimuth in the X-Z plane
// and Phi the polar angle measured from +Y, both in radians. VFov is the
// vertical field of view in radians.
//
// The struct is seven consecutive float32 values and is uploaded as-is.
type Camera struct {
	Distance  float32    `json:"distance" yaml:"distance" toml:"distance"`
	Theta     float32    `json:"theta" yaml:"theta" toml:"theta"`
	Phi       float32    `json:"phi" yaml:"phi" toml:"phi"`
	VFov      float32    `json:"vfov" yaml:"vfov" toml:"vfov"`
	TargetPos mgl32.Vec3 `json:"target_pos" yaml:"target_pos" toml:"target_pos"`
}

// DefaultCamera looks at the origin from +X
func DefaultCamera() Camera {
	return Camera{
		Distance:  1.3,
		Theta:     math32.Pi / 2,
		Phi:       math32.Pi / 2,
		VFov:      math32.Pi / 4,
		TargetPos: mgl32.Vec3{0, 0, 0},
	}
}

// SphericalToCartesian maps (radius, theta, phi) to a vector of length |radius|
func SphericalToCartesian(radius, theta, phi float32) mgl32.Vec3 {
	sinPhi := math32.Sin(phi)
	return mgl32.Vec3{
		sinPhi * math32.Sin(theta),
		math32.Cos(phi),
		sinPhi * math32.Cos(theta),
	}.Mul(radius)
}

// Position returns the world-space eye point
func (c Camera) Position() mgl32.Vec3 {
	return c.TargetPos.Add(SphericalToCartesian(c.Distance, c.Theta, c.Phi))
}

// ShootRay returns the viewing ray through screenCoord, where both axes run
// roughly over [-1, 1] and aspectRatio is width/height.
//
// The screen basis depends on Theta only, so near the poles it is not
// orthogonal to the view direction.
func (c Camera) ShootRay(screenCoord mgl32.Vec2, aspectRatio float32) geometry.Ray {
	cameraPos := c.Position()
	cameraDirection := c.TargetPos.Sub(cameraPos).Normalize()

	tangent := mgl32.Vec3{math32.Cos(c.Theta), 0, -math32.Sin(c.Theta)}
	bitangent := cameraDirection.Cross(tangent)

	fovTan := math32.Tan(0.5 * c.VFov)
	direction := cameraDirection.
		Add(tangent.Mul(screenCoord.X() / aspectRatio * fovTan)).
		Add(bitangent.Mul(screenCoord.Y() * fovTan)).
		Normalize()

	return geometry.Ray{
		Origin:    cameraPos,
		Direction: direction,
	}
}

// Equal compares field by field in declared order
func (c Camera) Equal(other Camera) bool {
	return c.Distance == other.Distance &&
		c.Theta == other.Theta &&
		c.Phi == other.Phi &&
		c.VFov == other.VFov &&
		c.TargetPos == other.TargetPos
}
