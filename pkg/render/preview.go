package render

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"

	"volray/internal/util"
	"volray/pkg/geometry"
	"volray/pkg/graphics"
)

// Preview renders a diagnostic image of cfg without marching the volume.
//
// For the color target each pixel that hits the bounding box shows its ray
// direction remapped to [0, 1]; misses are DefaultColor. For the density
// target each pixel shows the chord length through the box relative to the
// box diagonal.
func Preview(ctx context.Context, cfg graphics.RenderConfiguration, width, height, workers int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid preview size %dx%d", width, height)
	}

	target, err := cfg.Target()
	if err != nil {
		return nil, err
	}

	shade := shadeColor
	if target == graphics.TargetDensity {
		shade = shadeDensity
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	aspectRatio := float32(width) / float32(height)

	err = forEachRow(ctx, height, workers, func(y int) {
		row := img.Pix[y*img.Stride : y*img.Stride+width*graphics.ColorSize]
		for x := 0; x < width; x++ {
			ray := cfg.Camera.ShootRay(ScreenCoord(x, y, width, height), aspectRatio)
			c := shade(ray, cfg.BoundingBox)
			copy(row[x*graphics.ColorSize:], c[:])
		}
	})
	if err != nil {
		return nil, err
	}

	return img, nil
}

func shadeColor(ray geometry.Ray, box geometry.Aabb) graphics.Color {
	if _, _, ok := box.Intersect(ray); !ok {
		return graphics.DefaultColor
	}
	d := ray.Direction.Mul(0.5).Add(mgl32.Vec3{0.5, 0.5, 0.5})
	return graphics.ColorFromVec4(d.Vec4(1))
}

func shadeDensity(ray geometry.Ray, box geometry.Aabb) graphics.Color {
	tNear, tFar, ok := box.Intersect(ray)
	if !ok {
		return graphics.DefaultColor
	}
	diag := box.Hi.Sub(box.Lo).Len()
	if diag == 0 {
		return graphics.DefaultColor
	}
	v := (tFar - tNear) / diag
	return graphics.ColorFromVec4(mgl32.Vec4{v, v, v, 1})
}

// WritePNG encodes img to path, creating parent directories
func WritePNG(path string, img image.Image) error {
	if err := util.CreateDirIfNotExist(filepath.Dir(path)); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", path, err)
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("error encoding %s: %w", path, err)
	}

	return f.Close()
}
