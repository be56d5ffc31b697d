package pixelgrid

import "image"

// PixelBuffer is a row-major grid of colors. Both the full-resolution source
// image and the downsampled mosaic grid are PixelBuffers; only the
// dimensions differ.
type PixelBuffer struct {
	W, H int
	Pix  []Color // len = W*H
}

// NewPixelBuffer returns a zeroed (all black) buffer. Non-positive
// dimensions yield an empty buffer.
func NewPixelBuffer(w, h int) PixelBuffer {
	if w <= 0 || h <= 0 {
		return PixelBuffer{}
	}
	return PixelBuffer{W: w, H: h, Pix: make([]Color, w*h)}
}

func (p PixelBuffer) index(x, y int) int {
	return y*p.W + x
}

// At returns the color at (x, y). Coordinates outside the buffer panic via
// the underlying slice.
func (p PixelBuffer) At(x, y int) Color {
	return p.Pix[p.index(x, y)]
}

// Set writes the color at (x, y).
func (p PixelBuffer) Set(x, y int, c Color) {
	p.Pix[p.index(x, y)] = c
}

// Empty reports whether the buffer covers no pixels.
func (p PixelBuffer) Empty() bool {
	return p.W == 0 || p.H == 0
}

// Clone returns a deep copy sharing no pixel storage with p.
func (p PixelBuffer) Clone() PixelBuffer {
	out := PixelBuffer{W: p.W, H: p.H}
	if len(p.Pix) != 0 {
		out.Pix = make([]Color, len(p.Pix))
		copy(out.Pix, p.Pix)
	}
	return out
}

// FromImage flattens a decoded image into a PixelBuffer. Alpha is discarded;
// the processing pipeline treats every pixel as opaque.
func FromImage(img image.Image) PixelBuffer {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	buf := NewPixelBuffer(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			buf.Pix[buf.index(x, y)] = Color{
				R: uint8(r >> 8),
				G: uint8(g >> 8),
				B: uint8(b >> 8),
			}
		}
	}
	return buf
}

// NRGBA renders the buffer as an opaque image.NRGBA for encoding or for the
// resampling kernels.
func (p PixelBuffer) NRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.W, p.H))
	for i, c := range p.Pix {
		off := i * 4
		img.Pix[off] = c.R
		img.Pix[off+1] = c.G
		img.Pix[off+2] = c.B
		img.Pix[off+3] = 255
	}
	return img
}

// fromNRGBA reads an image produced by the resampling kernels back into a
// PixelBuffer. The image must start at the origin.
func fromNRGBA(img *image.NRGBA) PixelBuffer {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	buf := NewPixelBuffer(w, h)
	for y := 0; y < h; y++ {
		row := y * img.Stride
		for x := 0; x < w; x++ {
			off := row + x*4
			buf.Pix[buf.index(x, y)] = Color{
				R: img.Pix[off],
				G: img.Pix[off+1],
				B: img.Pix[off+2],
			}
		}
	}
	return buf
}
