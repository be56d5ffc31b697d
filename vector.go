package pixelgrid

import "fmt"

// RectRun is one axis-aligned rectangle of the vector export, in output
// pixel units. Each run covers a row-aligned span of grid cells scaled by
// the cell size at emission, so H always equals the cell size and W is a
// positive multiple of it.
type RectRun struct {
	X, Y  int
	W, H  int
	Color Color
}

// EmitVector encodes a quantized grid as row-wise run-length rectangles.
// Consecutive cells of exactly equal color merge into one run; runs never
// span rows. The emitted rectangles tile the full grid area (Gw*cell by
// Gh*cell) with no gaps or overlaps and change no colors. cell is the
// cell-to-pixel scale factor (pixel size times export scale); cell < 1
// wraps ErrInvalidInput.
func EmitVector(grid PixelBuffer, cell int) ([]RectRun, error) {
	if cell < 1 {
		return nil, fmt.Errorf("pixelgrid: vector cell size %d: %w", cell, ErrInvalidInput)
	}
	if grid.Empty() {
		return nil, nil
	}
	runs := make([]RectRun, 0, grid.H)
	for y := 0; y < grid.H; y++ {
		row := y * grid.W
		start := 0
		c := grid.Pix[row]
		for x := 1; x < grid.W; x++ {
			if grid.Pix[row+x] == c {
				continue
			}
			runs = append(runs, RectRun{
				X: start * cell, Y: y * cell,
				W: (x - start) * cell, H: cell,
				Color: c,
			})
			start = x
			c = grid.Pix[row+x]
		}
		runs = append(runs, RectRun{
			X: start * cell, Y: y * cell,
			W: (grid.W - start) * cell, H: cell,
			Color: c,
		})
	}
	return runs, nil
}
