package render

import (
	"context"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"volray/pkg/graphics"
)

func TestScreenCoord(t *testing.T) {
	assert.Equal(t, mgl32.Vec2{0, 0}, ScreenCoord(2, 2, 5, 5))
	assert.Equal(t, mgl32.Vec2{-0.75, 0.75}, ScreenCoord(0, 0, 4, 4))
	assert.Equal(t, mgl32.Vec2{0.75, -0.75}, ScreenCoord(3, 3, 4, 4))
}

func TestGenerateRays(t *testing.T) {
	cam := graphics.DefaultCamera()
	const w, h = 7, 5

	rays, err := GenerateRays(context.Background(), cam, w, h, 3)
	require.NoError(t, err)
	require.Len(t, rays, w*h)

	aspect := float32(w) / float32(h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			want := cam.ShootRay(ScreenCoord(x, y, w, h), aspect)
			assert.Equal(t, want, rays[y*w+x])
		}
	}

	center := rays[(h/2)*w+w/2]
	assert.InDelta(t, -1, center.Direction.X(), 1e-5)
	assert.InDelta(t, 1.3, center.Origin.X(), 1e-5)
}

func TestGenerateRaysInvalidSize(t *testing.T) {
	_, err := GenerateRays(context.Background(), graphics.DefaultCamera(), 0, 4, 1)
	assert.Error(t, err)
}

func TestGenerateRaysCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := GenerateRays(ctx, graphics.DefaultCamera(), 64, 64, 2)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestPreviewColor(t *testing.T) {
	cfg := graphics.DefaultRenderConfiguration()
	img, err := Preview(context.Background(), cfg, 9, 9, 0)
	require.NoError(t, err)

	// the center ray points along -X and hits the box
	center := graphics.Color(img.Pix[img.PixOffset(4, 4):][:4])
	assert.Equal(t, graphics.ColorFromVec4(mgl32.Vec4{0, 0.5, 0.5, 1}), center)
}

func TestPreviewDensity(t *testing.T) {
	cfg := graphics.DefaultRenderConfiguration().WithTarget(graphics.TargetDensity)
	cfg.Camera.VFov = 2.5

	img, err := Preview(context.Background(), cfg, 9, 9, 2)
	require.NoError(t, err)

	// chord through the center is 1, the diagonal is sqrt(3)
	center := graphics.Color(img.Pix[img.PixOffset(4, 4):][:4])
	want := uint8(255 / mgl32.Vec3{1, 1, 1}.Len())
	assert.InDelta(t, want, center.R(), 1)
	assert.Equal(t, uint8(255), center.A())

	// with a wide field of view the corners miss the box
	corner := graphics.Color(img.Pix[img.PixOffset(0, 0):][:4])
	assert.Equal(t, graphics.DefaultColor, corner)
}

func TestPreviewInvalidTarget(t *testing.T) {
	cfg := graphics.DefaultRenderConfiguration()
	cfg.RenderTarget = 4

	_, err := Preview(context.Background(), cfg, 4, 4, 1)
	var codeErr *graphics.ParseCodeError
	require.True(t, errors.As(err, &codeErr))
	assert.Equal(t, uint32(4), codeErr.Code)
}

func TestWritePNG(t *testing.T) {
	img, err := Preview(context.Background(), graphics.DefaultRenderConfiguration(), 8, 6, 1)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out", "preview.png")
	require.NoError(t, WritePNG(path, img))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	decoded, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())
}
