package render

import (
	"context"
	"fmt"
	"runtime"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/sync/errgroup"

	"volray/pkg/geometry"
	"volray/pkg/graphics"
)

// ScreenCoord maps the center of pixel (x, y) to [-1, 1] on both axes,
// with y growing upward
func ScreenCoord(x, y, width, height int) mgl32.Vec2 {
	return mgl32.Vec2{
		2*(float32(x)+0.5)/float32(width) - 1,
		1 - 2*(float32(y)+0.5)/float32(height),
	}
}

// GenerateRays shoots one ray per pixel and returns them row-major
func GenerateRays(ctx context.Context, camera graphics.Camera, width, height, workers int) ([]geometry.Ray, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid frame size %dx%d", width, height)
	}

	rays := make([]geometry.Ray, width*height)
	aspectRatio := float32(width) / float32(height)

	err := forEachRow(ctx, height, workers, func(y int) {
		row := rays[y*width : (y+1)*width]
		for x := range row {
			row[x] = camera.ShootRay(ScreenCoord(x, y, width, height), aspectRatio)
		}
	})
	if err != nil {
		return nil, err
	}

	return rays, nil
}

// forEachRow runs fn for every row on at most workers goroutines. Each row
// is handed to exactly one call, so fn may write its row without locking.
func forEachRow(ctx context.Context, height, workers int, fn func(y int)) error {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for y := 0; y < height; y++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fn(y)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
