package pixelgrid

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// DitherMethod selects how the mosaic grid is pushed into the palette.
type DitherMethod int

const (
	// DitherMethodNone quantizes every cell independently.
	DitherMethodNone DitherMethod = iota
	// DitherMethodFloydSteinberg diffuses quantization error to
	// unvisited neighbor cells.
	DitherMethodFloydSteinberg
	// DitherMethodOrdered biases cells by a tiled Bayer 8x8 threshold
	// pattern before quantizing.
	DitherMethodOrdered
	// DitherMethodThreshold maps each cell to one of two colors by
	// comparing its luma against a cut point.
	DitherMethodThreshold
)

func (m DitherMethod) String() string {
	switch m {
	case DitherMethodNone:
		return "none"
	case DitherMethodFloydSteinberg:
		return "floyd-steinberg"
	case DitherMethodOrdered:
		return "ordered"
	case DitherMethodThreshold:
		return "threshold"
	default:
		return fmt.Sprintf("DitherMethod(%d)", int(m))
	}
}

// ParseDitherMethod resolves a method name as produced by String. Unknown
// names wrap ErrInvalidInput.
func ParseDitherMethod(s string) (DitherMethod, error) {
	switch s {
	case "none":
		return DitherMethodNone, nil
	case "floyd-steinberg":
		return DitherMethodFloydSteinberg, nil
	case "ordered":
		return DitherMethodOrdered, nil
	case "threshold":
		return DitherMethodThreshold, nil
	}
	return 0, fmt.Errorf("pixelgrid: unknown dither method %q: %w", s, ErrInvalidInput)
}

// bayer8 is the standard 8x8 Bayer threshold matrix (values 0..63). Never
// mutated at runtime.
var bayer8 = [8][8]int{
	{0, 32, 8, 40, 2, 34, 10, 42},
	{48, 16, 56, 24, 50, 18, 58, 26},
	{12, 44, 4, 36, 14, 46, 6, 38},
	{60, 28, 52, 20, 62, 30, 54, 22},
	{3, 35, 11, 43, 1, 33, 9, 41},
	{51, 19, 59, 27, 49, 17, 57, 25},
	{15, 47, 7, 39, 13, 45, 5, 37},
	{63, 31, 55, 23, 61, 29, 53, 21},
}

// Dither produces a fully palette-quantized copy of the grid using the
// method and parameters in o. Numeric parameters are preconditions here:
// o.Strength in [0,1] and o.Threshold in [0,255] are clamped by Process,
// not re-checked. An unknown method wraps ErrInvalidInput.
func Dither(grid PixelBuffer, o Options) (PixelBuffer, error) {
	return dither(grid, o, nil)
}

// dither is Dither with a staleness hook checked once per row, so a
// Processor can abandon superseded work mid-grid.
func dither(grid PixelBuffer, o Options, stale func() bool) (PixelBuffer, error) {
	switch o.Method {
	case DitherMethodNone:
		return ditherNone(grid, o.Palette, stale)
	case DitherMethodFloydSteinberg:
		return ditherFloydSteinberg(grid, o.Palette, stale)
	case DitherMethodOrdered:
		return ditherOrdered(grid, o.Palette, o.Strength, stale)
	case DitherMethodThreshold:
		return ditherThreshold(grid, o.Palette, o.Threshold, stale)
	}
	return PixelBuffer{}, fmt.Errorf("pixelgrid: dither method %d: %w", int(o.Method), ErrInvalidInput)
}

func ditherNone(grid PixelBuffer, p Palette, stale func() bool) (PixelBuffer, error) {
	out := NewPixelBuffer(grid.W, grid.H)
	for y := 0; y < grid.H; y++ {
		if stale != nil && stale() {
			return PixelBuffer{}, ErrSuperseded
		}
		row := y * grid.W
		for x := 0; x < grid.W; x++ {
			out.Pix[row+x] = p.Nearest(grid.Pix[row+x])
		}
	}
	return out, nil
}

// ditherFloydSteinberg runs a single row-major left-to-right pass (no
// serpentine). Two per-channel error rows sized Gw+2 are indexed at x+1 so
// the x-1 and x+1 writes never need bounds checks; the two pad slots are
// written but never read back.
func ditherFloydSteinberg(grid PixelBuffer, p Palette, stale func() bool) (PixelBuffer, error) {
	out := NewPixelBuffer(grid.W, grid.H)
	cur := make([][3]float64, grid.W+2)
	nxt := make([][3]float64, grid.W+2)
	for y := 0; y < grid.H; y++ {
		if stale != nil && stale() {
			return PixelBuffer{}, ErrSuperseded
		}
		row := y * grid.W
		for x := 0; x < grid.W; x++ {
			c := grid.Pix[row+x]
			vr := clampChannel(float64(c.R) + cur[x+1][0])
			vg := clampChannel(float64(c.G) + cur[x+1][1])
			vb := clampChannel(float64(c.B) + cur[x+1][2])
			q := p.Nearest(Color{
				R: uint8(vr + 0.5),
				G: uint8(vg + 0.5),
				B: uint8(vb + 0.5),
			})
			out.Pix[row+x] = q

			er := vr - float64(q.R)
			eg := vg - float64(q.G)
			eb := vb - float64(q.B)
			cur[x+2][0] += er * 7 / 16
			cur[x+2][1] += eg * 7 / 16
			cur[x+2][2] += eb * 7 / 16
			nxt[x][0] += er * 3 / 16
			nxt[x][1] += eg * 3 / 16
			nxt[x][2] += eb * 3 / 16
			nxt[x+1][0] += er * 5 / 16
			nxt[x+1][1] += eg * 5 / 16
			nxt[x+1][2] += eb * 5 / 16
			nxt[x+2][0] += er * 1 / 16
			nxt[x+2][1] += eg * 1 / 16
			nxt[x+2][2] += eb * 1 / 16
		}
		cur, nxt = nxt, cur
		clear(nxt)
	}
	return out, nil
}

// ditherOrdered biases each channel by the tiled Bayer pattern before
// quantizing: t = (bayer8[y%8][x%8] - 32) / 64, bias = t * 64 * strength.
// strength 0 reduces exactly to ditherNone.
func ditherOrdered(grid PixelBuffer, p Palette, strength float64, stale func() bool) (PixelBuffer, error) {
	out := NewPixelBuffer(grid.W, grid.H)
	for y := 0; y < grid.H; y++ {
		if stale != nil && stale() {
			return PixelBuffer{}, ErrSuperseded
		}
		row := y * grid.W
		for x := 0; x < grid.W; x++ {
			c := grid.Pix[row+x]
			t := (float64(bayer8[y%8][x%8]) - 32) / 64
			bias := t * 64 * strength
			out.Pix[row+x] = p.Nearest(Color{
				R: uint8(clampChannel(float64(c.R)+bias) + 0.5),
				G: uint8(clampChannel(float64(c.G)+bias) + 0.5),
				B: uint8(clampChannel(float64(c.B)+bias) + 0.5),
			})
		}
	}
	return out, nil
}

// ditherThreshold maps each cell to the darker of two colors when its luma
// falls below threshold, else to the lighter (the boundary value goes
// light). The pair comes from the palette's luma extremes; palettes with
// fewer than two entries fall back to pure black and white.
func ditherThreshold(grid PixelBuffer, p Palette, threshold int, stale func() bool) (PixelBuffer, error) {
	dark, light := thresholdPair(p)
	cut := float64(threshold)
	out := NewPixelBuffer(grid.W, grid.H)
	for y := 0; y < grid.H; y++ {
		if stale != nil && stale() {
			return PixelBuffer{}, ErrSuperseded
		}
		row := y * grid.W
		for x := 0; x < grid.W; x++ {
			if grid.Pix[row+x].Luma() < cut {
				out.Pix[row+x] = dark
			} else {
				out.Pix[row+x] = light
			}
		}
	}
	return out, nil
}

// thresholdPair picks the binary working pair by luma extremes, not by
// palette order. Strict comparisons keep the first extreme on equal luma.
func thresholdPair(p Palette) (dark, light Color) {
	if len(p) < 2 {
		return Color{0, 0, 0}, Color{255, 255, 255}
	}
	dark, light = p[0], p[0]
	darkL, lightL := p[0].Luma(), p[0].Luma()
	for _, c := range p[1:] {
		l := c.Luma()
		if l < darkL {
			darkL = l
			dark = c
		}
		if l > lightL {
			lightL = l
			light = c
		}
	}
	return dark, light
}

func clampChannel(v float64) float64 {
	return min(255, max(0, v))
}

// AutoThreshold picks a threshold for DitherMethodThreshold with Otsu's
// method: build the rounded-luma histogram, then choose the split
// maximizing between-class variance. The returned value T is the first
// luma of the light class, matching the "luma < T goes dark" rule. Buffers
// whose histogram cannot be split return 128.
func AutoThreshold(buf PixelBuffer) int {
	if len(buf.Pix) == 0 {
		return 128
	}
	hist := make([]float64, 256)
	moment := make([]float64, 256)
	for _, c := range buf.Pix {
		hist[int(c.Luma()+0.5)]++
	}
	for i := range moment {
		moment[i] = float64(i) * hist[i]
	}
	cum := make([]float64, 256)
	cumMoment := make([]float64, 256)
	floats.CumSum(cum, hist)
	floats.CumSum(cumMoment, moment)

	total := cum[255]
	totalMoment := cumMoment[255]
	best, bestVar := 128, -1.0
	for t := 0; t < 255; t++ {
		w0 := cum[t]
		w1 := total - w0
		if w0 == 0 || w1 == 0 {
			continue
		}
		m0 := cumMoment[t] / w0
		m1 := (totalMoment - cumMoment[t]) / w1
		d := m0 - m1
		if v := w0 * w1 * d * d; v > bestVar {
			bestVar = v
			best = t + 1
		}
	}
	return best
}
