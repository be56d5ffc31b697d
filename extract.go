package pixelgrid

import "fmt"

// Extraction defaults. The stride keeps sampling cheap on large sources;
// the fixed iteration count trades convergence detection for a flat,
// predictable cost.
const (
	extractStride = 4
	extractIters  = 12
)

// ExtractPalette derives a k-color palette from a source buffer by
// clustering a strided sample of its pixels. k is clamped to [2,32]. The
// clustering is deterministic: identical buffers always produce identical
// palettes. The result is ordered darkest to brightest. A buffer with no
// sampleable pixels wraps ErrEmptySampleSet; callers substitute
// DefaultPalette.
func ExtractPalette(src PixelBuffer, k int) (Palette, error) {
	k = max(2, min(32, k))
	samples := sampleGrid(src, extractStride)
	if len(samples) == 0 {
		return nil, fmt.Errorf("pixelgrid: extracting %d colors from %dx%d buffer: %w",
			k, src.W, src.H, ErrEmptySampleSet)
	}
	p := kmeansPalette(samples, k, extractIters)
	p.SortByLuma()
	return p, nil
}

// sampleGrid collects one color from every stride-th row and column, in
// row-major order.
func sampleGrid(src PixelBuffer, stride int) []Color {
	if src.Empty() || stride < 1 {
		return nil
	}
	samples := make([]Color, 0, (src.W/stride+1)*(src.H/stride+1))
	for y := 0; y < src.H; y += stride {
		for x := 0; x < src.W; x += stride {
			samples = append(samples, src.At(x, y))
		}
	}
	return samples
}

// kmeansPalette runs plain k-means over the samples with a deterministic
// start: center i seeds from the sample at i*step, step = max(1, n/k),
// index clamped into range (so more centers than samples just repeats the
// last sample). Exactly iters assignment/update rounds run, with no early
// exit on convergence. Assignment ties go to the lowest center index, and
// a center that attracts no samples in a round keeps its previous value.
func kmeansPalette(samples []Color, k, iters int) Palette {
	n := len(samples)
	centers := make([]Color, k)
	step := max(1, n/k)
	for i := 0; i < k; i++ {
		centers[i] = samples[min(i*step, n-1)]
	}

	type acc struct {
		r, g, b int
		count   int
	}
	assign := make([]int, n)
	sums := make([]acc, k)

	for iter := 0; iter < iters; iter++ {
		for i, s := range samples {
			best := 0
			bestD := distSq(s, centers[0])
			for ci := 1; ci < k; ci++ {
				if d := distSq(s, centers[ci]); d < bestD {
					bestD = d
					best = ci
				}
			}
			assign[i] = best
		}

		clear(sums)
		for i, s := range samples {
			a := &sums[assign[i]]
			a.r += int(s.R)
			a.g += int(s.G)
			a.b += int(s.B)
			a.count++
		}
		for ci, a := range sums {
			if a.count == 0 {
				continue
			}
			centers[ci] = Color{
				R: uint8((a.r + a.count/2) / a.count),
				G: uint8((a.g + a.count/2) / a.count),
				B: uint8((a.b + a.count/2) / a.count),
			}
		}
	}
	return Palette(centers)
}
