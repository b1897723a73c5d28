// Package cssvalue parses CSS component values - colors and lengths - into
// the concrete Go types that layout and render consume, shared across the
// two so neither reimplements the other's parsing.
package cssvalue

import (
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseColor parses a CSS <color> value: a named color (the full CSS
// extended color keyword set via x/image/colornames), a hex color
// (#rgb, #rgba, #rrggbb, #rrggbbaa), rgb()/rgba()/hsl()/hsla()/hwb()
// functional notation, lab()/lch()/oklab()/oklch(), color(), color-mix(),
// light-dark() (resolved to its light branch; see ParseColorEnv for
// dark-mode-aware resolution), and relative-color syntax
// (rgb(from <color> ...), hsl(from ...), hwb(from ...)). ok is false for
// unrecognized input; callers should fall back to a property-appropriate
// default rather than black, since black is itself a valid color and a
// bad signal for "unparsed".
func ParseColor(value string) (color.RGBA, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return color.RGBA{}, false
	}

	lower := strings.ToLower(value)
	if lower == "transparent" {
		return color.RGBA{0, 0, 0, 0}, true
	}

	if strings.HasPrefix(value, "#") {
		return parseHex(value)
	}

	if isRelativeFunction(lower) {
		if c, ok := parseRelativeColor(value); ok {
			return c, true
		}
		return color.RGBA{}, false
	}

	if strings.HasPrefix(lower, "rgb(") || strings.HasPrefix(lower, "rgba(") {
		return parseRGBFunction(lower)
	}
	if strings.HasPrefix(lower, "hsl(") || strings.HasPrefix(lower, "hsla(") {
		return parseHSLFunction(lower)
	}
	if strings.HasPrefix(lower, "hwb(") {
		return parseHWBFunction(lower)
	}
	if strings.HasPrefix(lower, "lab(") {
		return parseLabFunction(value)
	}
	if strings.HasPrefix(lower, "lch(") {
		return parseLchFunction(value)
	}
	if strings.HasPrefix(lower, "oklab(") {
		return parseOklabFunction(value)
	}
	if strings.HasPrefix(lower, "oklch(") {
		return parseOklchFunction(value)
	}
	if strings.HasPrefix(lower, "color(") {
		return parseColorFunction(value)
	}
	if strings.HasPrefix(lower, "color-mix(") {
		return parseColorMix(value)
	}
	if strings.HasPrefix(lower, "light-dark(") {
		// With no Environment available, ParseColor resolves light-dark()
		// to its light-mode branch; use ParseColorEnv to honor dark mode.
		args, ok := topLevelFunctionArgs(value)
		if !ok || len(args) != 2 {
			return color.RGBA{}, false
		}
		return ParseColor(args[0])
	}

	if c, ok := colornames.Map[lower]; ok {
		return color.RGBA{c.R, c.G, c.B, c.A}, true
	}

	return color.RGBA{}, false
}

// isRelativeFunction reports whether value is a relative-color function:
// rgb(from ...), hsl(from ...), or hwb(from ...).
func isRelativeFunction(lower string) bool {
	for _, prefix := range []string{"rgb(from ", "rgba(from ", "hsl(from ", "hsla(from ", "hwb(from "} {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}

func parseHex(value string) (color.RGBA, bool) {
	hex := strings.TrimPrefix(value, "#")
	expand := func(c byte) (uint8, bool) {
		v, err := strconv.ParseUint(string(c)+string(c), 16, 8)
		return uint8(v), err == nil
	}
	pair := func(s string) (uint8, bool) {
		v, err := strconv.ParseUint(s, 16, 8)
		return uint8(v), err == nil
	}

	switch len(hex) {
	case 3, 4:
		r, ok1 := expand(hex[0])
		g, ok2 := expand(hex[1])
		b, ok3 := expand(hex[2])
		a := uint8(255)
		ok4 := true
		if len(hex) == 4 {
			a, ok4 = expand(hex[3])
		}
		if !ok1 || !ok2 || !ok3 || !ok4 {
			return color.RGBA{}, false
		}
		return color.RGBA{r, g, b, a}, true
	case 6, 8:
		r, ok1 := pair(hex[0:2])
		g, ok2 := pair(hex[2:4])
		b, ok3 := pair(hex[4:6])
		a := uint8(255)
		ok4 := true
		if len(hex) == 8 {
			a, ok4 = pair(hex[6:8])
		}
		if !ok1 || !ok2 || !ok3 || !ok4 {
			return color.RGBA{}, false
		}
		return color.RGBA{r, g, b, a}, true
	default:
		return color.RGBA{}, false
	}
}

// parseRGBFunction parses rgb(r, g, b) / rgba(r, g, b, a), accepting both
// comma and space separators since authored stylesheets use both forms.
func parseRGBFunction(value string) (color.RGBA, bool) {
	args, ok := functionArgs(value)
	if !ok || len(args) < 3 {
		return color.RGBA{}, false
	}
	r, ok1 := parseChannel(args[0])
	g, ok2 := parseChannel(args[1])
	b, ok3 := parseChannel(args[2])
	if !ok1 || !ok2 || !ok3 {
		return color.RGBA{}, false
	}
	a := uint8(255)
	if len(args) >= 4 {
		a = parseAlpha(args[3])
	}
	return color.RGBA{r, g, b, a}, true
}

func parseHSLFunction(value string) (color.RGBA, bool) {
	args, ok := functionArgs(value)
	if !ok || len(args) < 3 {
		return color.RGBA{}, false
	}
	h, ok1 := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(args[0]), "deg"), 64)
	s, ok2 := parsePercent(args[1])
	l, ok3 := parsePercent(args[2])
	if !ok1 || !ok2 || !ok3 {
		return color.RGBA{}, false
	}
	a := uint8(255)
	if len(args) >= 4 {
		a = parseAlpha(args[3])
	}
	r, g, b := hslToRGB(h, s, l)
	return color.RGBA{r, g, b, a}, true
}

func functionArgs(value string) ([]string, bool) {
	open := strings.IndexByte(value, '(')
	if open < 0 || !strings.HasSuffix(value, ")") {
		return nil, false
	}
	inner := value[open+1 : len(value)-1]
	sep := ","
	if !strings.Contains(inner, ",") {
		sep = " "
	}
	var args []string
	for _, part := range strings.Split(inner, sep) {
		part = strings.TrimSpace(part)
		if part != "" && part != "/" {
			args = append(args, strings.TrimPrefix(part, "/"))
		}
	}
	return args, len(args) > 0
}

func parseChannel(s string) (uint8, bool) {
	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, "%") {
		v, ok := parsePercent(s)
		if !ok {
			return 0, false
		}
		return uint8(v / 100 * 255), true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return clampByte(v), true
}

func parseAlpha(s string) uint8 {
	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, "%") {
		v, ok := parsePercent(s)
		if !ok {
			return 255
		}
		return clampByte(v / 100 * 255)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 255
	}
	return clampByte(v * 255)
}

func parsePercent(s string) (float64, bool) {
	s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
	v, err := strconv.ParseFloat(s, 64)
	return v, err == nil
}

func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// hslToRGB converts hue (degrees), saturation and lightness (0-100) to
// 8-bit RGB channels, per CSS Color 4's hsl-to-rgb algorithm.
func hslToRGB(h, s, l float64) (uint8, uint8, uint8) {
	s /= 100
	l /= 100
	h = normalizeHue(h)

	if s == 0 {
		v := clampByte(l * 255)
		return v, v, v
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	r := hueToChannel(p, q, h/360+1.0/3.0)
	g := hueToChannel(p, q, h/360)
	b := hueToChannel(p, q, h/360-1.0/3.0)

	return clampByte(r * 255), clampByte(g * 255), clampByte(b * 255)
}

func normalizeHue(h float64) float64 {
	for h < 0 {
		h += 360
	}
	for h >= 360 {
		h -= 360
	}
	return h
}

func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6*t
	case t < 1.0/2.0:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6
	default:
		return p
	}
}
