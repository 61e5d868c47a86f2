package graphics

import (
	"encoding/binary"
	"hash/fnv"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// CompactColor quantizes a linear RGBA color to bytes. Each component is
// scaled by 255, clamped to [0, 255] and truncated. NaN maps to 0.
func CompactColor(color mgl32.Vec4) [4]uint8 {
	var out [4]uint8
	for i, c := range color {
		c = 255 * c
		if math32.IsNaN(c) {
			c = 0
		}
		out[i] = uint8(mgl32.Clamp(c, 0, 255))
	}
	return out
}

// Color is a packed R, G, B, A byte quadruple. Its memory is bit-compatible
// with a 32-bit word whose least significant byte is R.
type Color [4]uint8

// DefaultColor is opaque black
var DefaultColor = Color{0, 0, 0, 255}

// NewColor splits a 32-bit literal into channels, least significant byte
// first, so 0xAABBGGRR yields {RR, GG, BB, AA}.
func NewColor(hex uint32) Color {
	var c Color
	binary.LittleEndian.PutUint32(c[:], hex)
	return c
}

// ColorFromVec4 quantizes a linear color with CompactColor
func ColorFromVec4(value mgl32.Vec4) Color {
	return Color(CompactColor(value))
}

// Uint32 returns the 32-bit word NewColor would need to produce c
func (c Color) Uint32() uint32 {
	return binary.LittleEndian.Uint32(c[:])
}

func (c Color) R() uint8 { return c[0] }
func (c Color) G() uint8 { return c[1] }
func (c Color) B() uint8 { return c[2] }
func (c Color) A() uint8 { return c[3] }

// Compare orders colors byte-wise in R, G, B, A order and returns -1, 0 or +1
func (c Color) Compare(other Color) int {
	for i := range c {
		switch {
		case c[i] < other[i]:
			return -1
		case c[i] > other[i]:
			return 1
		}
	}
	return 0
}

// Hash is FNV-1a over the channels in R, G, B, A order
func (c Color) Hash() uint64 {
	h := fnv.New64a()
	h.Write(c[:])
	return h.Sum64()
}
