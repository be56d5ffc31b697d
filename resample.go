package pixelgrid

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// Downsample reduces a source buffer to its mosaic grid. Each grid cell
// covers a pixelSize x pixelSize block of the source; the grid is
// Gw = max(1, W/pixelSize) by Gh = max(1, H/pixelSize). Cell colors come
// from a smoothing (area-averaging) kernel, so shrinking preserves overall
// tone instead of point-sampling. pixelSize == 1 is an exact identity copy.
// pixelSize < 1 wraps ErrInvalidInput; an empty source yields an empty grid.
func Downsample(src PixelBuffer, pixelSize int) (PixelBuffer, error) {
	if pixelSize < 1 {
		return PixelBuffer{}, fmt.Errorf("pixelgrid: pixel size %d: %w", pixelSize, ErrInvalidInput)
	}
	if src.Empty() {
		return PixelBuffer{}, nil
	}
	if pixelSize == 1 {
		return src.Clone(), nil
	}
	gw := max(1, src.W/pixelSize)
	gh := max(1, src.H/pixelSize)
	dst := image.NewNRGBA(image.Rect(0, 0, gw, gh))
	draw.BiLinear.Scale(dst, dst.Bounds(), src.NRGBA(), image.Rect(0, 0, src.W, src.H), draw.Src, nil)
	return fromNRGBA(dst), nil
}

// Upscale stretches a quantized grid to w x h with nearest-neighbor
// sampling, introducing no new colors. w and h need not be multiples of the
// grid dimensions; edge cells then cover a fractional block, which is the
// intended behavior rather than snapping to whole blocks. Degenerate
// targets or an empty grid yield an empty buffer.
func Upscale(grid PixelBuffer, w, h int) PixelBuffer {
	if grid.Empty() || w <= 0 || h <= 0 {
		return PixelBuffer{}
	}
	if grid.W == w && grid.H == h {
		return grid.Clone()
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), grid.NRGBA(), image.Rect(0, 0, grid.W, grid.H), draw.Src, nil)
	return fromNRGBA(dst)
}
