package graphics

import (
	"encoding/binary"
	"hash/fnv"

	"github.com/go-gl/mathgl/mgl32"

	"volray/pkg/geometry"
)

// RaymarchSettings tunes the external integration loop. NSteps is passed
// through unchecked.
type RaymarchSettings struct {
	NSteps uint32 `json:"n_steps" yaml:"n_steps" toml:"n_steps"`
}

// DefaultRaymarchSettings returns a 300 step budget
func DefaultRaymarchSettings() RaymarchSettings {
	return RaymarchSettings{NSteps: 300}
}

// Equal compares field by field
func (s RaymarchSettings) Equal(other RaymarchSettings) bool {
	return s.NSteps == other.NSteps
}

// Hash is FNV-1a over the little-endian fields in declared order
func (s RaymarchSettings) Hash() uint64 {
	h := fnv.New64a()
	h.Write(binary.LittleEndian.AppendUint32(nil, s.NSteps))
	return h.Sum64()
}

// RenderConfiguration is the per-frame snapshot handed to the raymarcher.
// It holds no pointers and its memory layout matches the shader-side struct
// (see ConfigurationSize and Bytes).
//
// RenderTarget is a runtime selector. It is never persisted; decoding goes
// through ConfigurationSchema.Restore which always assigns it.
type RenderConfiguration struct {
	Camera       Camera           `json:"-" yaml:"-" toml:"-"`
	RmSettings   RaymarchSettings `json:"-" yaml:"-" toml:"-"`
	BoundingBox  geometry.Aabb    `json:"-" yaml:"-" toml:"-"`
	RenderTarget uint32           `json:"-" yaml:"-" toml:"-"`
}

// DefaultRenderConfiguration composes the default camera and settings with a
// unit box centered on the origin
func DefaultRenderConfiguration() RenderConfiguration {
	return RenderConfiguration{
		Camera:       DefaultCamera(),
		RmSettings:   DefaultRaymarchSettings(),
		BoundingBox:  geometry.DefaultAabb().WithTranslation(mgl32.Vec3{-0.5, -0.5, -0.5}),
		RenderTarget: RenderTargetColor,
	}
}

// Target resolves the RenderTarget code
func (c RenderConfiguration) Target() (RenderTarget, error) {
	return RenderTargetFromCode(c.RenderTarget)
}

// WithTarget returns a copy selecting t
func (c RenderConfiguration) WithTarget(t RenderTarget) RenderConfiguration {
	c.RenderTarget = t.Code()
	return c
}

// Equal compares every field, RenderTarget included
func (c RenderConfiguration) Equal(other RenderConfiguration) bool {
	return c.Camera.Equal(other.Camera) &&
		c.RmSettings.Equal(other.RmSettings) &&
		c.BoundingBox == other.BoundingBox &&
		c.RenderTarget == other.RenderTarget
}

// ConfigurationSchema is the persisted form of a RenderConfiguration.
// It deliberately has no render target field.
//
//	camera:       {distance, theta, phi, vfov, target_pos: [x, y, z]}
//	rm_settings:  {n_steps}
//	bounding_box: {lo: [x, y, z], hi: [x, y, z]}
type ConfigurationSchema struct {
	Camera      Camera           `json:"camera" yaml:"camera" toml:"camera"`
	RmSettings  RaymarchSettings `json:"rm_settings" yaml:"rm_settings" toml:"rm_settings"`
	BoundingBox geometry.Aabb    `json:"bounding_box" yaml:"bounding_box" toml:"bounding_box"`
}

// DefaultConfigurationSchema is the schema of DefaultRenderConfiguration
func DefaultConfigurationSchema() ConfigurationSchema {
	return DefaultRenderConfiguration().Schema()
}

// Schema drops the runtime-only fields
func (c RenderConfiguration) Schema() ConfigurationSchema {
	return ConfigurationSchema{
		Camera:      c.Camera,
		RmSettings:  c.RmSettings,
		BoundingBox: c.BoundingBox,
	}
}

// Restore rebuilds a RenderConfiguration selecting target
func (s ConfigurationSchema) Restore(target RenderTarget) RenderConfiguration {
	return RenderConfiguration{
		Camera:       s.Camera,
		RmSettings:   s.RmSettings,
		BoundingBox:  s.BoundingBox,
		RenderTarget: target.Code(),
	}
}
