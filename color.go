package pixelgrid

import (
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is one opaque sRGB value. Processed output is always fully opaque,
// so no alpha channel is carried.
type Color struct {
	R, G, B uint8
}

// Luma returns the perceptual brightness of c in the 0..255 range,
// weighted 0.2126/0.7152/0.0722 (BT.709) over the raw channel values.
// The weighted sum is built in integer math so equal-channel grays land
// exactly on their channel value.
func (c Color) Luma() float64 {
	return float64(2126*int(c.R)+7152*int(c.G)+722*int(c.B)) / 10000
}

// Hex returns c as a lowercase "#rrggbb" string.
func (c Color) Hex() string {
	return c.Colorful().Hex()
}

// Colorful converts c to a go-colorful color with channels in [0,1].
func (c Color) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// FromColorful converts a go-colorful color to a Color, clamping each
// channel into [0,255].
func FromColorful(c colorful.Color) Color {
	cc := c.Clamped()
	return Color{
		R: uint8(cc.R*255 + 0.5),
		G: uint8(cc.G*255 + 0.5),
		B: uint8(cc.B*255 + 0.5),
	}
}

// distSq is the squared RGB distance between two colors. Integer math keeps
// nearest-color scans exact.
func distSq(a, b Color) int {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return dr*dr + dg*dg + db*db
}

// parseHexColor parses one palette token: an optional leading '#', then
// either three hex digits (each doubled, so "f0a" reads as "ff00aa") or six.
// Tokens of any other length are rejected. A channel that fails to parse
// as hex contributes 0 rather than rejecting the whole token.
func parseHexColor(tok string) (Color, bool) {
	tok = strings.TrimPrefix(tok, "#")
	if len(tok) == 3 {
		tok = string([]byte{tok[0], tok[0], tok[1], tok[1], tok[2], tok[2]})
	}
	if len(tok) != 6 {
		return Color{}, false
	}
	return Color{
		R: hexChannel(tok[0:2]),
		G: hexChannel(tok[2:4]),
		B: hexChannel(tok[4:6]),
	}, true
}

func hexChannel(s string) uint8 {
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0
	}
	return uint8(v)
}
