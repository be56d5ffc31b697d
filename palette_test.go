package pixelgrid

import (
	"errors"
	"math"
	"slices"
	"testing"
)

func TestColorLuma(t *testing.T) {
	for _, tc := range []struct {
		name string
		c    Color
		want float64
	}{
		{name: "black", c: Color{0, 0, 0}, want: 0},
		{name: "white", c: Color{255, 255, 255}, want: 255},
		{name: "gray_exact", c: Color{100, 100, 100}, want: 100},
		{name: "pure_green", c: Color{0, 255, 0}, want: 182.376},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.c.Luma(); math.Abs(got-tc.want) > 1e-9 {
				t.Fatalf("Luma(%v) = %v, want %v", tc.c, got, tc.want)
			}
		})
	}
	// Equal-channel grays must land exactly on the channel value, since the
	// threshold dither compares luma against integer cut points.
	for v := range 256 {
		c := Color{uint8(v), uint8(v), uint8(v)}
		if got := c.Luma(); got != float64(v) {
			t.Fatalf("Luma(gray %d) = %v, want exactly %d", v, got, v)
		}
	}
}

func TestColorHex(t *testing.T) {
	if got, want := (Color{255, 0, 170}).Hex(), "#ff00aa"; got != want {
		t.Fatalf("Hex = %q, want %q", got, want)
	}
	if got, want := (Color{}).Hex(), "#000000"; got != want {
		t.Fatalf("Hex = %q, want %q", got, want)
	}
}

func TestParseHexList(t *testing.T) {
	for _, tc := range []struct {
		name string
		text string
		want Palette
	}{
		{name: "short_form", text: "#f0a", want: Palette{{255, 0, 170}}},
		{name: "order_preserved", text: "000,fff", want: Palette{{0, 0, 0}, {255, 255, 255}}},
		{name: "mixed_separators", text: "ff0000 00ff00,\t0000ff\n", want: Palette{{255, 0, 0}, {0, 255, 0}, {0, 0, 255}}},
		{name: "uppercase", text: "FF00AA", want: Palette{{255, 0, 170}}},
		{name: "bad_channel_defaults_to_zero", text: "ggff00", want: Palette{{0, 255, 0}}},
		{name: "bad_token_skipped", text: "#12 #abcdef", want: Palette{{171, 205, 239}}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseHexList(tc.text)
			if err != nil {
				t.Fatalf("ParseHexList(%q): %v", tc.text, err)
			}
			if !slices.Equal(got, tc.want) {
				t.Fatalf("ParseHexList(%q) = %v, want %v", tc.text, got, tc.want)
			}
		})
	}
}

func TestParseHexListEmpty(t *testing.T) {
	for _, text := range []string{"", "  ,\t, ", "#12 #1234"} {
		if _, err := ParseHexList(text); !errors.Is(err, ErrEmptyPalette) {
			t.Fatalf("ParseHexList(%q) err = %v, want ErrEmptyPalette", text, err)
		}
	}
}

func TestDefaultPalette(t *testing.T) {
	want := Palette{{0, 0, 0}, {255, 255, 255}}
	if got := DefaultPalette(); !slices.Equal(got, want) {
		t.Fatalf("DefaultPalette = %v, want %v", got, want)
	}
}

func TestPresetPalette(t *testing.T) {
	p, err := PresetPalette("gameboy")
	if err != nil {
		t.Fatalf("PresetPalette(gameboy): %v", err)
	}
	if len(p) != 4 {
		t.Fatalf("gameboy preset has %d colors, want 4", len(p))
	}
	if p[0] != (Color{15, 56, 15}) {
		t.Fatalf("gameboy[0] = %v, want {15 56 15}", p[0])
	}

	if _, err := PresetPalette("no-such-preset"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("unknown preset err = %v, want ErrInvalidInput", err)
	}

	// Handed-out palettes are copies; mutating one must not poison the table.
	p[0] = Color{1, 2, 3}
	again, err := PresetPalette("gameboy")
	if err != nil {
		t.Fatalf("PresetPalette(gameboy): %v", err)
	}
	if again[0] != (Color{15, 56, 15}) {
		t.Fatalf("preset table mutated through a returned palette: %v", again[0])
	}
}

func TestPresetNames(t *testing.T) {
	names := PresetNames()
	if len(names) == 0 {
		t.Fatalf("PresetNames returned nothing")
	}
	if !slices.IsSorted(names) {
		t.Fatalf("PresetNames not sorted: %v", names)
	}
	for _, name := range names {
		if _, err := PresetPalette(name); err != nil {
			t.Fatalf("PresetPalette(%q): %v", name, err)
		}
	}
}

func TestNearest(t *testing.T) {
	p, err := PresetPalette("pico8")
	if err != nil {
		t.Fatalf("PresetPalette(pico8): %v", err)
	}
	for _, c := range []Color{{0, 0, 0}, {255, 255, 255}, {130, 40, 220}, {7, 200, 99}} {
		got := p.Nearest(c)
		idx := slices.Index(p, got)
		if idx < 0 {
			t.Fatalf("Nearest(%v) = %v, not a palette member", c, got)
		}
		for _, pc := range p {
			if distSq(c, pc) < distSq(c, got) {
				t.Fatalf("Nearest(%v) = %v but %v is closer", c, got, pc)
			}
		}
	}
}

func TestNearestTieBreak(t *testing.T) {
	// {1,0,0} sits exactly between the two entries; the first must win.
	p := Palette{{0, 0, 0}, {2, 0, 0}}
	if got := p.Nearest(Color{1, 0, 0}); got != (Color{0, 0, 0}) {
		t.Fatalf("tie went to %v, want first entry {0 0 0}", got)
	}
}

func TestNearestEmptyPalette(t *testing.T) {
	var p Palette
	if got := p.Nearest(Color{200, 100, 50}); got != (Color{}) {
		t.Fatalf("Nearest on empty palette = %v, want zero color", got)
	}
}

func TestSortByLuma(t *testing.T) {
	p := Palette{{255, 255, 255}, {0, 0, 0}, {128, 128, 128}}
	p.SortByLuma()
	want := Palette{{0, 0, 0}, {128, 128, 128}, {255, 255, 255}}
	if !slices.Equal(p, want) {
		t.Fatalf("SortByLuma = %v, want %v", p, want)
	}
}

func TestExtractPaletteTwoTone(t *testing.T) {
	// Top half dark, bottom half light. The stride-4 sampling sees both
	// tones, and k-means must resolve them exactly.
	buf := NewPixelBuffer(8, 8)
	for y := range 8 {
		c := Color{10, 10, 10}
		if y >= 4 {
			c = Color{240, 240, 240}
		}
		for x := range 8 {
			buf.Set(x, y, c)
		}
	}
	p, err := ExtractPalette(buf, 2)
	if err != nil {
		t.Fatalf("ExtractPalette: %v", err)
	}
	want := Palette{{10, 10, 10}, {240, 240, 240}}
	if !slices.Equal(p, want) {
		t.Fatalf("ExtractPalette = %v, want %v", p, want)
	}
}

func TestExtractPaletteDeterministic(t *testing.T) {
	buf := makeTestBuffer(64, 48)
	a, err := ExtractPalette(buf, 8)
	if err != nil {
		t.Fatalf("ExtractPalette: %v", err)
	}
	b, err := ExtractPalette(buf, 8)
	if err != nil {
		t.Fatalf("ExtractPalette: %v", err)
	}
	if !slices.Equal(a, b) {
		t.Fatalf("two extractions differ: %v vs %v", a, b)
	}
	if !slices.IsSortedFunc(a, func(x, y Color) int {
		if x.Luma() < y.Luma() {
			return -1
		}
		if x.Luma() > y.Luma() {
			return 1
		}
		return 0
	}) {
		t.Fatalf("palette not luma-sorted: %v", a)
	}
}

func TestExtractPaletteClampsK(t *testing.T) {
	buf := makeTestBuffer(64, 64)
	p, err := ExtractPalette(buf, 100)
	if err != nil {
		t.Fatalf("ExtractPalette: %v", err)
	}
	if len(p) != 32 {
		t.Fatalf("k=100 produced %d colors, want 32", len(p))
	}
	p, err = ExtractPalette(buf, 0)
	if err != nil {
		t.Fatalf("ExtractPalette: %v", err)
	}
	if len(p) != 2 {
		t.Fatalf("k=0 produced %d colors, want 2", len(p))
	}
}

func TestExtractPaletteEmptySource(t *testing.T) {
	if _, err := ExtractPalette(PixelBuffer{}, 4); !errors.Is(err, ErrEmptySampleSet) {
		t.Fatalf("empty source err = %v, want ErrEmptySampleSet", err)
	}
}

func TestKMeansSingleCenter(t *testing.T) {
	// With k=1 every sample stays in the one cluster, so the center must
	// settle on the rounded per-channel mean.
	samples := []Color{{0, 0, 0}, {10, 20, 30}, {20, 40, 60}}
	p := kmeansPalette(samples, 1, 12)
	if len(p) != 1 || p[0] != (Color{10, 20, 30}) {
		t.Fatalf("kmeansPalette k=1 = %v, want [{10 20 30}]", p)
	}

	// Mean rounding is half-up: (1+2)/2 rounds to 2.
	samples = []Color{{1, 1, 1}, {2, 2, 2}}
	p = kmeansPalette(samples, 1, 1)
	if len(p) != 1 || p[0] != (Color{2, 2, 2}) {
		t.Fatalf("kmeansPalette rounding = %v, want [{2 2 2}]", p)
	}
}
