package willowbind

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// parseColor reads a color attribute value. It accepts color.Color values,
// CSS-style hex strings (#rgb, #rgba, #rrggbb, #rrggbbaa) and SVG color
// names ("red", "cornflowerblue").
func parseColor(v any) (color.RGBA, bool) {
	switch c := v.(type) {
	case color.RGBA:
		return c, true
	case color.Color:
		r, g, b, a := c.RGBA()
		return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}, true
	case string:
		return parseColorString(c)
	}
	return color.RGBA{}, false
}

func parseColorString(s string) (color.RGBA, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[s]; ok {
		return c, true
	}
	if !strings.HasPrefix(s, "#") {
		return color.RGBA{}, false
	}
	hex := s[1:]
	switch len(hex) {
	case 3, 4:
		// Expand shorthand: #abc -> #aabbcc.
		var b strings.Builder
		for _, r := range hex {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		hex = b.String()
	case 6, 8:
	default:
		return color.RGBA{}, false
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, false
	}
	return color.RGBA{R: uint8(n >> 24), G: uint8(n >> 16), B: uint8(n >> 8), A: uint8(n)}, true
}

// lerpColor interpolates each channel of a and b at t. Easings that
// undershoot or overshoot push t outside [0, 1]; channels clamp to [0, 255].
func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	ch := func(x, y uint8) uint8 {
		v := float64(x) + (float64(y)-float64(x))*t + 0.5
		return uint8(math.Min(math.Max(v, 0), 255))
	}
	return color.RGBA{R: ch(a.R, b.R), G: ch(a.G, b.G), B: ch(a.B, b.B), A: ch(a.A, b.A)}
}

// formatColor renders c as #rrggbb, or #rrggbbaa when not fully opaque.
func formatColor(c color.RGBA) string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// lerpValue interpolates a single attribute value. Numbers and colors
// interpolate; anything else snaps to b once t reaches 1 and stays a before.
func lerpValue(a, b any, t float64) any {
	if fa, ok := toFloat(a); ok {
		if fb, ok := toFloat(b); ok {
			return fa + (fb-fa)*t
		}
	}
	if _, isStr := b.(string); isStr {
		if ca, ok := parseColor(a); ok {
			if cb, ok := parseColor(b); ok {
				if t >= 1 {
					return b
				}
				return formatColor(lerpColor(ca, cb, t))
			}
		}
	}
	if t >= 1 {
		return b
	}
	return a
}

// lerpAttrs interpolates every key of to against from at t. Keys missing
// from from take their target value immediately.
func lerpAttrs(from, to Attrs, t float64) Attrs {
	out := make(Attrs, len(to))
	for k, v := range to {
		if k == keyOffset {
			continue
		}
		a, ok := from[k]
		if !ok {
			out[k] = v
			continue
		}
		out[k] = lerpValue(a, v, t)
	}
	return out
}
