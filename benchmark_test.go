package pixelgrid

import "testing"

func BenchmarkProcess(b *testing.B) {
	src := makeTestBuffer(512, 512)
	o := DefaultOptions()
	if _, err := Process(src, o); err != nil {
		b.Fatalf("Process: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Process(src, o); err != nil {
			b.Fatalf("Process: %v", err)
		}
	}
}

func BenchmarkProcessOrdered(b *testing.B) {
	src := makeTestBuffer(512, 512)
	o := DefaultOptions()
	o.Method = DitherMethodOrdered
	p, err := PresetPalette("pico8")
	if err != nil {
		b.Fatalf("PresetPalette: %v", err)
	}
	o.Palette = p
	if _, err := Process(src, o); err != nil {
		b.Fatalf("Process: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Process(src, o); err != nil {
			b.Fatalf("Process: %v", err)
		}
	}
}

func BenchmarkExtractPalette(b *testing.B) {
	src := makeTestBuffer(256, 256)
	if _, err := ExtractPalette(src, 8); err != nil {
		b.Fatalf("ExtractPalette: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ExtractPalette(src, 8); err != nil {
			b.Fatalf("ExtractPalette: %v", err)
		}
	}
}

func BenchmarkEmitVector(b *testing.B) {
	grid, err := Downsample(makeTestBuffer(512, 512), 4)
	if err != nil {
		b.Fatalf("Downsample: %v", err)
	}
	quantized, err := Dither(grid, Options{Method: DitherMethodNone, Palette: DefaultPalette()})
	if err != nil {
		b.Fatalf("Dither: %v", err)
	}
	if _, err := EmitVector(quantized, 4); err != nil {
		b.Fatalf("EmitVector: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := EmitVector(quantized, 4); err != nil {
			b.Fatalf("EmitVector: %v", err)
		}
	}
}
