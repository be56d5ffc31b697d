// Package pixelgrid converts full-color raster images into palette-limited
// pixel art. The pipeline is mosaic downsampling to a low-resolution grid,
// nearest-color quantization against an ordered palette with an optional
// dither pass (Floyd-Steinberg, ordered Bayer 8x8, or binary threshold),
// nearest-neighbor upscaling back to the source resolution, and a
// run-length rectangle export for vector output.
//
// The package works on raw PixelBuffer values; decoding image files into
// buffers and encoding results back to PNG or SVG lives in the utils
// subpackage.
package pixelgrid

import "errors"

var (
	// ErrInvalidInput reports a parameter outside its documented domain:
	// an unknown palette preset, an unknown dither method, a pixel size
	// below 1, or a vector cell size below 1.
	ErrInvalidInput = errors.New("pixelgrid: invalid input")

	// ErrEmptyPalette reports a palette source that resolved to zero
	// colors. Callers substitute DefaultPalette and continue.
	ErrEmptyPalette = errors.New("pixelgrid: empty palette")

	// ErrEmptySampleSet reports a palette extraction over a buffer with
	// no sampleable pixels.
	ErrEmptySampleSet = errors.New("pixelgrid: empty sample set")

	// ErrSuperseded reports a Processor run abandoned because a newer
	// run was requested before it finished.
	ErrSuperseded = errors.New("pixelgrid: superseded by a newer request")
)
