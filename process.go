package pixelgrid

import "sync/atomic"

// Options holds one processing run's configuration. Process normalizes a
// copy before use, so zero values and out-of-range inputs degrade to
// something usable instead of failing.
type Options struct {
	// Edge length of one mosaic cell in source pixels. Minimum 1;
	// 1 disables the mosaic effect entirely.
	PixelSize int
	// Quantization strategy for the downsampled grid.
	Method DitherMethod
	// Ordered-dither amplitude in [0,1]. 0 disables the pattern;
	// only DitherMethodOrdered reads it.
	Strength float64
	// Luma cut point in [0,255]; only DitherMethodThreshold reads it.
	// AutoThreshold can pick one from the source.
	Threshold int
	// Allowed output colors. Empty falls back to DefaultPalette.
	Palette Palette
}

// DefaultOptions returns a classic 1-bit look: 8-pixel cells,
// Floyd-Steinberg diffusion over the monochrome palette.
func DefaultOptions() Options {
	return Options{
		PixelSize: 8,
		Method:    DitherMethodFloydSteinberg,
		Strength:  0.5,
		Threshold: 128,
		Palette:   DefaultPalette(),
	}
}

// normalized clamps every numeric field into its documented range and
// resolves an empty palette to the default. The stages downstream of
// Process assume these invariants and do not re-validate.
func (o Options) normalized() Options {
	o.PixelSize = max(1, o.PixelSize)
	o.Strength = min(1, max(0, o.Strength))
	o.Threshold = min(255, max(0, o.Threshold))
	if len(o.Palette) == 0 {
		o.Palette = DefaultPalette()
	}
	return o
}

// Result carries both resolutions of a processed image.
type Result struct {
	// Grid is the palette-quantized mosaic, one entry per cell.
	Grid PixelBuffer
	// Full is the grid upscaled back to the source dimensions.
	Full PixelBuffer
}

// Process runs the full pipeline: downsample the source by o.PixelSize,
// quantize the grid with o's dither method and palette, and upscale the
// result back to the source size. The source buffer is never written.
// Process is total for any well-formed buffer: bad palettes degrade to the
// default and numeric fields are clamped; only an unknown dither method
// returns an error.
func Process(src PixelBuffer, o Options) (Result, error) {
	return process(src, o, nil)
}

// Processor serializes intent, not execution: every Process call bumps a
// generation counter, and a run that observes a newer generation abandons
// its remaining work with ErrSuperseded. UI-style callers can therefore
// fire a run per parameter change from any goroutine and keep only the
// result that was requested last.
type Processor struct {
	gen atomic.Uint64
}

// Process behaves like the package-level Process but participates in the
// supersede protocol. The staleness check runs between pipeline stages and
// once per grid row inside the dither pass.
func (p *Processor) Process(src PixelBuffer, o Options) (Result, error) {
	gen := p.gen.Add(1)
	return process(src, o, func() bool {
		return p.gen.Load() != gen
	})
}

func process(src PixelBuffer, o Options, stale func() bool) (Result, error) {
	o = o.normalized()
	grid, err := Downsample(src, o.PixelSize)
	if err != nil {
		return Result{}, err
	}
	if stale != nil && stale() {
		return Result{}, ErrSuperseded
	}
	quantized, err := dither(grid, o, stale)
	if err != nil {
		return Result{}, err
	}
	if stale != nil && stale() {
		return Result{}, ErrSuperseded
	}
	return Result{
		Grid: quantized,
		Full: Upscale(quantized, src.W, src.H),
	}, nil
}
