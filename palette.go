package pixelgrid

import (
	"fmt"
	"slices"
	"strings"
	"unicode"
)

// Palette is an ordered list of allowed output colors. Order matters:
// quantization ties go to the lowest index, so callers that sort a palette
// change which color wins contested cells.
type Palette []Color

// DefaultPalette returns the two-color monochrome fallback used whenever a
// palette source fails to produce colors.
func DefaultPalette() Palette {
	return Palette{{0, 0, 0}, {255, 255, 255}}
}

// presets are fixed, never mutated at runtime. PresetPalette hands out
// copies so callers cannot corrupt the table.
var presets = map[string]Palette{
	"mono": {{0, 0, 0}, {255, 255, 255}},
	"grayscale": {
		{0, 0, 0}, {85, 85, 85}, {170, 170, 170}, {255, 255, 255},
	},
	// Original Game Boy (DMG-01) greens.
	"gameboy": {
		{15, 56, 15}, {48, 98, 48}, {139, 172, 15}, {155, 188, 15},
	},
	// CGA mode 4 palette 1, high intensity.
	"cga": {
		{0, 0, 0}, {85, 255, 255}, {255, 85, 255}, {255, 255, 255},
	},
	"pico8": {
		{0, 0, 0}, {29, 43, 83}, {126, 37, 83}, {0, 135, 81},
		{171, 82, 54}, {95, 87, 79}, {194, 195, 199}, {255, 241, 232},
		{255, 0, 77}, {255, 163, 0}, {255, 236, 39}, {0, 228, 54},
		{41, 173, 255}, {131, 118, 156}, {255, 119, 168}, {255, 204, 170},
	},
	"nord": {
		{46, 52, 64}, {59, 66, 82}, {67, 76, 94}, {76, 86, 106},
		{216, 222, 233}, {229, 233, 240}, {236, 239, 244},
		{143, 188, 187}, {136, 192, 208}, {129, 161, 193}, {94, 129, 172},
		{191, 97, 106}, {208, 135, 112}, {235, 203, 139}, {163, 190, 140},
		{180, 142, 173},
	},
}

// PresetPalette looks up a named built-in palette. Unknown names wrap
// ErrInvalidInput; callers typically fall back to DefaultPalette instead of
// aborting.
func PresetPalette(name string) (Palette, error) {
	p, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("pixelgrid: unknown palette preset %q: %w", name, ErrInvalidInput)
	}
	return slices.Clone(p), nil
}

// PresetNames returns the available preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ParseHexList parses free-form palette text into a Palette. Tokens are
// separated by whitespace and/or commas and parsed as hex colors (see
// parseHexColor for the token grammar). Token order is preserved. A text
// that yields no colors at all wraps ErrEmptyPalette; callers substitute
// DefaultPalette.
func ParseHexList(text string) (Palette, error) {
	tokens := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	var p Palette
	for _, tok := range tokens {
		c, ok := parseHexColor(tok)
		if !ok {
			continue
		}
		p = append(p, c)
	}
	if len(p) == 0 {
		return nil, fmt.Errorf("pixelgrid: no colors in %q: %w", text, ErrEmptyPalette)
	}
	return p, nil
}

// Nearest returns the palette entry with the smallest squared RGB distance
// to c. Exact ties keep the lowest index. An empty palette returns black;
// resolving palettes before quantization is the caller's job.
func (p Palette) Nearest(c Color) Color {
	if len(p) == 0 {
		return Color{}
	}
	best := p[0]
	bestD := distSq(c, p[0])
	for _, pc := range p[1:] {
		if d := distSq(c, pc); d < bestD {
			bestD = d
			best = pc
		}
	}
	return best
}

// SortByLuma orders the palette in place from darkest to brightest.
func (p Palette) SortByLuma() {
	slices.SortFunc(p, func(a, b Color) int {
		la, lb := a.Luma(), b.Luma()
		if la < lb {
			return -1
		}
		if la > lb {
			return 1
		}
		return 0
	})
}
