package graphics

import (
	"math"
	"sort"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestCompactColor(t *testing.T) {
	cases := []struct {
		in   mgl32.Vec4
		want [4]uint8
	}{
		{mgl32.Vec4{1, 1, 1, 1}, [4]uint8{255, 255, 255, 255}},
		{mgl32.Vec4{-1, 2, 0.5, 0}, [4]uint8{0, 255, 127, 0}},
		{mgl32.Vec4{0, 0, 0, 0}, [4]uint8{0, 0, 0, 0}},
		{mgl32.Vec4{0.999, 0.25, 100, -0.001}, [4]uint8{254, 63, 255, 0}},
		{mgl32.Vec4{float32(math.NaN()), float32(math.Inf(1)), float32(math.Inf(-1)), 1}, [4]uint8{0, 255, 0, 255}},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, CompactColor(tc.in), "CompactColor(%v)", tc.in)
	}
}

func TestCompactColorRange(t *testing.T) {
	for v := float32(-3); v <= 3; v += 0.0625 {
		c := CompactColor(mgl32.Vec4{v, -v, v * 0.5, v * v})
		for _, b := range c {
			assert.LessOrEqual(t, int(b), 255)
			assert.GreaterOrEqual(t, int(b), 0)
		}
	}
}

func TestNewColor(t *testing.T) {
	c := NewColor(0xFF336699)
	assert.Equal(t, Color{0x99, 0x66, 0x33, 0xFF}, c)
	assert.Equal(t, uint8(0x99), c.R())
	assert.Equal(t, uint8(0x66), c.G())
	assert.Equal(t, uint8(0x33), c.B())
	assert.Equal(t, uint8(0xFF), c.A())
	assert.Equal(t, uint32(0xFF336699), c.Uint32())

	assert.Equal(t, DefaultColor, NewColor(0xFF000000))
}

func TestColorFromVec4(t *testing.T) {
	v := mgl32.Vec4{0.2, 0.4, 0.6, 1}
	assert.Equal(t, Color(CompactColor(v)), ColorFromVec4(v))
}

func TestColorOrdering(t *testing.T) {
	a := Color{1, 2, 3, 4}
	b := Color{1, 2, 4, 0}
	c := Color{2, 0, 0, 0}

	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, c.Compare(b))
	assert.Equal(t, 0, a.Compare(Color{1, 2, 3, 4}))

	colors := []Color{c, a, b}
	sort.Slice(colors, func(i, j int) bool { return colors[i].Compare(colors[j]) < 0 })
	assert.Equal(t, []Color{a, b, c}, colors)
}

func TestColorHash(t *testing.T) {
	assert.Equal(t, Color{1, 2, 3, 4}.Hash(), Color{1, 2, 3, 4}.Hash())
	assert.NotEqual(t, Color{1, 2, 3, 4}.Hash(), Color{4, 3, 2, 1}.Hash())
}
