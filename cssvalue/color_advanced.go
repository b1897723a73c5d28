package cssvalue

import (
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lukehoban/contentcore/cssenv"
)

// ParseColorEnv resolves a <color> value the same way ParseColor does,
// additionally resolving light-dark(light, dark) against env's
// prefers-color-scheme state.
func ParseColorEnv(value string, env cssenv.Environment) (color.RGBA, bool) {
	trimmed := strings.TrimSpace(value)
	lower := strings.ToLower(trimmed)
	if strings.HasPrefix(lower, "light-dark(") {
		args, ok := topLevelFunctionArgs(trimmed)
		if !ok || len(args) != 2 {
			return color.RGBA{}, false
		}
		if env.PrefersDark() {
			return ParseColorEnv(args[1], env)
		}
		return ParseColorEnv(args[0], env)
	}
	return ParseColor(value)
}

// parseHWBFunction parses hwb(H W% B% [/ A]) per CSS Color 4.
func parseHWBFunction(value string) (color.RGBA, bool) {
	args, ok := functionArgs(value)
	if !ok || len(args) < 3 {
		return color.RGBA{}, false
	}
	h, ok1 := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(args[0]), "deg"), 64)
	w, ok2 := parsePercent(args[1])
	b, ok3 := parsePercent(args[2])
	if !ok1 || !ok2 || !ok3 {
		return color.RGBA{}, false
	}
	a := uint8(255)
	if len(args) >= 4 {
		a = parseAlpha(args[3])
	}
	r, g, bl := hwbToRGB(h, w, b)
	return color.RGBA{r, g, bl, a}, true
}

func hwbToRGB(h, w, b float64) (uint8, uint8, uint8) {
	w /= 100
	b /= 100
	if w+b >= 1 {
		gray := clampByte(w / (w + b) * 255)
		return gray, gray, gray
	}
	// Pure-hue RGB via the S=100%, L=50% point of the hsl-to-rgb algorithm.
	pr, pg, pb := hslToRGB(h, 100, 50)
	mix := func(c uint8) uint8 {
		v := float64(c)/255*(1-w-b) + w
		return clampByte(v * 255)
	}
	return mix(pr), mix(pg), mix(pb)
}

// parseLabFunction parses lab(L a b [/ A]): CIE L*a*b*, D50 white point.
func parseLabFunction(value string) (color.RGBA, bool) {
	args, ok := functionArgs(value)
	if !ok || len(args) < 3 {
		return color.RGBA{}, false
	}
	l, ok1 := parseLabComponent(args[0], 100)
	a, ok2 := parseLabComponent(args[1], 125)
	b, ok3 := parseLabComponent(args[2], 125)
	if !ok1 || !ok2 || !ok3 {
		return color.RGBA{}, false
	}
	alpha := uint8(255)
	if len(args) >= 4 {
		alpha = parseAlpha(args[3])
	}
	return labToRGBA(l, a, b, alpha), true
}

// parseLchFunction parses lch(L C H [/ A]).
func parseLchFunction(value string) (color.RGBA, bool) {
	args, ok := functionArgs(value)
	if !ok || len(args) < 3 {
		return color.RGBA{}, false
	}
	l, ok1 := parseLabComponent(args[0], 100)
	c, ok2 := parseLabComponent(args[1], 150)
	h, ok3 := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(args[2]), "deg"), 64)
	if !ok1 || !ok2 || !ok3 {
		return color.RGBA{}, false
	}
	alpha := uint8(255)
	if len(args) >= 4 {
		alpha = parseAlpha(args[3])
	}
	hr := h * math.Pi / 180
	a := c * math.Cos(hr)
	bb := c * math.Sin(hr)
	return labToRGBA(l, a, bb, alpha), true
}

func parseLabComponent(s string, percentScale float64) (float64, bool) {
	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, "%") {
		v, ok := parsePercent(s)
		if !ok {
			return 0, false
		}
		return v / 100 * percentScale, true
	}
	v, err := strconv.ParseFloat(s, 64)
	return v, err == nil
}

// labToRGBA converts CIE Lab (D50) to sRGB via XYZ, per CSS Color 4.
func labToRGBA(l, a, b float64, alpha uint8) color.RGBA {
	fy := (l + 16) / 116
	fx := fy + a/500
	fz := fy - b/200

	finv := func(t float64) float64 {
		const delta = 6.0 / 29.0
		if t > delta {
			return t * t * t
		}
		return 3 * delta * delta * (t - 4.0/29.0)
	}

	const xn, yn, zn = 0.96422, 1.0, 0.82521
	x := xn * finv(fx)
	y := yn * finv(fy)
	z := zn * finv(fz)

	// D50 XYZ to linear sRGB.
	lr := 3.1338561*x - 1.6168667*y - 0.4906146*z
	lg := -0.9787684*x + 1.9161415*y + 0.0334540*z
	lb := 0.0719453*x - 0.2289914*y + 1.4052427*z

	r, g, bl := gammaEncode(lr), gammaEncode(lg), gammaEncode(lb)
	return color.RGBA{clampByte(r * 255), clampByte(g * 255), clampByte(bl * 255), alpha}
}

// parseOklabFunction parses oklab(L a b [/ A]).
func parseOklabFunction(value string) (color.RGBA, bool) {
	args, ok := functionArgs(value)
	if !ok || len(args) < 3 {
		return color.RGBA{}, false
	}
	l, ok1 := parseLabComponent(args[0], 1)
	a, ok2 := parseLabComponent(args[1], 0.4)
	b, ok3 := parseLabComponent(args[2], 0.4)
	if !ok1 || !ok2 || !ok3 {
		return color.RGBA{}, false
	}
	alpha := uint8(255)
	if len(args) >= 4 {
		alpha = parseAlpha(args[3])
	}
	return oklabToRGBA(l, a, b, alpha), true
}

// parseOklchFunction parses oklch(L C H [/ A]).
func parseOklchFunction(value string) (color.RGBA, bool) {
	args, ok := functionArgs(value)
	if !ok || len(args) < 3 {
		return color.RGBA{}, false
	}
	l, ok1 := parseLabComponent(args[0], 1)
	c, ok2 := parseLabComponent(args[1], 0.4)
	h, ok3 := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(args[2]), "deg"), 64)
	if !ok1 || !ok2 || !ok3 {
		return color.RGBA{}, false
	}
	alpha := uint8(255)
	if len(args) >= 4 {
		alpha = parseAlpha(args[3])
	}
	hr := h * math.Pi / 180
	a := c * math.Cos(hr)
	b := c * math.Sin(hr)
	return oklabToRGBA(l, a, b, alpha), true
}

// oklabToRGBA converts OKLab to sRGB, per Björn Ottosson's reference
// matrices (also the ones CSS Color 4 cites).
func oklabToRGBA(l, a, b float64, alpha uint8) color.RGBA {
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b

	ll := l_ * l_ * l_
	mm := m_ * m_ * m_
	ss := s_ * s_ * s_

	lr := 4.0767416621*ll - 3.3077115913*mm + 0.2309699292*ss
	lg := -1.2684380046*ll + 2.6097574011*mm - 0.3413193965*ss
	lb := -0.0041960863*ll - 0.7034186147*mm + 1.7076147010*ss

	r, g, bl := gammaEncode(lr), gammaEncode(lg), gammaEncode(lb)
	return color.RGBA{clampByte(r * 255), clampByte(g * 255), clampByte(bl * 255), alpha}
}

func gammaEncode(c float64) float64 {
	if c <= 0 {
		return 0
	}
	if c <= 0.0031308 {
		return c * 12.92
	}
	return 1.055*math.Pow(c, 1/2.4) - 0.055
}

// parseColorFunction parses color(space r g b [/ A]). display-p3 and
// a98-rgb are treated as srgb (an approximation: their gamuts differ from
// srgb's, but channel values are applied directly without gamut mapping).
func parseColorFunction(value string) (color.RGBA, bool) {
	args, ok := functionArgs(value)
	if !ok || len(args) < 4 {
		return color.RGBA{}, false
	}
	space := strings.ToLower(strings.TrimSpace(args[0]))
	r, ok1 := parseLabComponent(args[1], 1)
	g, ok2 := parseLabComponent(args[2], 1)
	b, ok3 := parseLabComponent(args[3], 1)
	if !ok1 || !ok2 || !ok3 {
		return color.RGBA{}, false
	}
	alpha := uint8(255)
	if len(args) >= 5 {
		alpha = parseAlpha(args[4])
	}
	switch space {
	case "srgb-linear":
		return color.RGBA{
			clampByte(gammaEncode(r) * 255),
			clampByte(gammaEncode(g) * 255),
			clampByte(gammaEncode(b) * 255),
			alpha,
		}, true
	default: // srgb, display-p3, a98-rgb, prophoto-rgb, rec2020: applied directly
		return color.RGBA{clampByte(r * 255), clampByte(g * 255), clampByte(b * 255), alpha}, true
	}
}

// parseColorMix parses color-mix(in srgb, <color> [pct], <color> [pct]),
// linearly interpolating channels in sRGB space. Other interpolation
// color spaces (oklab, lab, hsl) are not distinguished from srgb.
func parseColorMix(value string) (color.RGBA, bool) {
	args, ok := topLevelFunctionArgs(value)
	if !ok || len(args) != 3 {
		return color.RGBA{}, false
	}
	// args[0] is "in srgb" (or similar); ignored beyond validation.
	c1Str, p1 := splitColorMixComponent(args[1])
	c2Str, p2 := splitColorMixComponent(args[2])

	c1, ok1 := ParseColor(c1Str)
	c2, ok2 := ParseColor(c2Str)
	if !ok1 || !ok2 {
		return color.RGBA{}, false
	}

	switch {
	case p1 >= 0 && p2 >= 0:
		total := p1 + p2
		if total <= 0 {
			return color.RGBA{}, false
		}
		p1, p2 = p1/total*100, p2/total*100
	case p1 >= 0:
		p2 = 100 - p1
	case p2 >= 0:
		p1 = 100 - p2
	default:
		p1, p2 = 50, 50
	}

	lerp := func(a, b uint8) uint8 {
		return clampByte(float64(a)*p1/100 + float64(b)*p2/100)
	}
	return color.RGBA{lerp(c1.R, c2.R), lerp(c1.G, c2.G), lerp(c1.B, c2.B), lerp(c1.A, c2.A)}, true
}

// splitColorMixComponent splits a color-mix() argument like "red 30%"
// into the color text and its percentage (-1 if omitted).
func splitColorMixComponent(s string) (string, float64) {
	parts := splitArgsRespectingParens(strings.TrimSpace(s))
	if len(parts) == 2 && strings.HasSuffix(parts[1], "%") {
		if p, ok := parsePercent(parts[1]); ok {
			return parts[0], p
		}
	}
	if len(parts) == 2 && strings.HasSuffix(parts[0], "%") {
		if p, ok := parsePercent(parts[0]); ok {
			return parts[1], p
		}
	}
	return strings.Join(parts, " "), -1
}

// parseRelativeColor parses rgb(from <color> R G B [/ A]) and the
// hsl()/hwb() equivalents, evaluating R/G/B/A against the base color's
// own channels exposed as calc() variables (r, g, b, alpha, or h, s, l /
// h, w, b depending on function).
func parseRelativeColor(value string) (color.RGBA, bool) {
	open := strings.IndexByte(value, '(')
	if open < 0 || !strings.HasSuffix(value, ")") {
		return color.RGBA{}, false
	}
	funcName := strings.ToLower(strings.TrimSpace(value[:open]))
	inner := value[open+1 : len(value)-1]
	inner = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(inner), "from"))
	// Allow "from" without a following space edge case (shouldn't happen
	// given isRelativeFunction's prefix check, but stay defensive).

	tokens := splitArgsRespectingParens(inner)
	if len(tokens) < 4 {
		return color.RGBA{}, false
	}
	base, ok := ParseColor(tokens[0])
	if !ok {
		return color.RGBA{}, false
	}
	channelTokens := tokens[1:]
	var alphaTok string
	if len(channelTokens) == 4 {
		alphaTok = strings.TrimPrefix(channelTokens[3], "/")
		channelTokens = channelTokens[:3]
	} else if len(channelTokens) == 3 && strings.Contains(channelTokens[2], "/") {
		split := strings.SplitN(channelTokens[2], "/", 2)
		channelTokens[2] = split[0]
		alphaTok = split[1]
	}
	if len(channelTokens) != 3 {
		return color.RGBA{}, false
	}

	family := funcName
	family = strings.TrimSuffix(family, "a") // rgba/hsla -> rgb/hsl

	switch family {
	case "rgb":
		vars := map[string]float64{
			"r": float64(base.R), "g": float64(base.G), "b": float64(base.B),
			"alpha": float64(base.A) / 255,
		}
		r, ok1 := resolveChannelExpr(channelTokens[0], vars, 255)
		g, ok2 := resolveChannelExpr(channelTokens[1], vars, 255)
		b, ok3 := resolveChannelExpr(channelTokens[2], vars, 255)
		if !ok1 || !ok2 || !ok3 {
			return color.RGBA{}, false
		}
		a := float64(base.A)
		if alphaTok != "" {
			if av, ok := resolveChannelExpr(alphaTok, vars, 1); ok {
				a = av * 255
			}
		}
		return color.RGBA{clampByte(r), clampByte(g), clampByte(b), clampByte(a)}, true
	case "hsl":
		h, s, l := rgbToHSL(base)
		vars := map[string]float64{"h": h, "s": s, "l": l, "alpha": float64(base.A) / 255}
		hv, ok1 := resolveChannelExpr(channelTokens[0], vars, 360)
		sv, ok2 := resolveChannelExpr(channelTokens[1], vars, 100)
		lv, ok3 := resolveChannelExpr(channelTokens[2], vars, 100)
		if !ok1 || !ok2 || !ok3 {
			return color.RGBA{}, false
		}
		a := base.A
		if alphaTok != "" {
			if av, ok := resolveChannelExpr(alphaTok, vars, 1); ok {
				a = clampByte(av * 255)
			}
		}
		r, g, b := hslToRGB(hv, sv, lv)
		return color.RGBA{r, g, b, a}, true
	case "hwb":
		h, w, bl := rgbToHWB(base)
		vars := map[string]float64{"h": h, "w": w, "b": bl, "alpha": float64(base.A) / 255}
		hv, ok1 := resolveChannelExpr(channelTokens[0], vars, 360)
		wv, ok2 := resolveChannelExpr(channelTokens[1], vars, 100)
		bv, ok3 := resolveChannelExpr(channelTokens[2], vars, 100)
		if !ok1 || !ok2 || !ok3 {
			return color.RGBA{}, false
		}
		a := base.A
		if alphaTok != "" {
			if av, ok := resolveChannelExpr(alphaTok, vars, 1); ok {
				a = clampByte(av * 255)
			}
		}
		r, g, b := hwbToRGB(hv, wv, bv)
		return color.RGBA{r, g, b, a}, true
	}
	return color.RGBA{}, false
}

// resolveChannelExpr resolves one relative-color channel argument: a
// bare variable name (r, g, b, h, s, l, w, alpha, ...), a calc()
// expression referencing those variables, a percentage of maxVal, or a
// literal number.
func resolveChannelExpr(token string, vars map[string]float64, maxVal float64) (float64, bool) {
	token = strings.TrimSpace(token)
	lower := strings.ToLower(token)
	if lower == "none" {
		return 0, true
	}
	if v, ok := vars[lower]; ok {
		return v, true
	}
	if isCalcFunction(lower) {
		expr, ok := ParseCalcExpr(token)
		if !ok {
			return 0, false
		}
		return expr.Evaluate(CalcContext{Vars: vars}), true
	}
	if strings.HasSuffix(token, "%") {
		n, ok := parsePercent(token)
		if !ok {
			return 0, false
		}
		return n / 100 * maxVal, true
	}
	n, err := strconv.ParseFloat(strings.TrimSuffix(token, "deg"), 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// rgbToHSL inverts hslToRGB, for relative hsl(from <rgb-color> ...).
func rgbToHSL(c color.RGBA) (h, s, l float64) {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l = (max + min) / 2
	if max == min {
		return 0, 0, l * 100
	}
	d := max - min
	if l > 0.5 {
		s = d / (2 - max - min)
	} else {
		s = d / (max + min)
	}
	switch max {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	h *= 60
	return h, s * 100, l * 100
}

// rgbToHWB inverts hwbToRGB, for relative hwb(from <rgb-color> ...).
func rgbToHWB(c color.RGBA) (h, w, b float64) {
	h, _, _ = rgbToHSL(c)
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	bl := float64(c.B) / 255
	w = math.Min(r, math.Min(g, bl))
	b = 1 - math.Max(r, math.Max(g, bl))
	return h, w * 100, b * 100
}

// topLevelFunctionArgs splits a function call's arguments on top-level
// commas (not nested inside parens), for functions like color-mix() and
// light-dark() whose arguments are themselves multi-word.
func topLevelFunctionArgs(value string) ([]string, bool) {
	open := strings.IndexByte(value, '(')
	if open < 0 || !strings.HasSuffix(value, ")") {
		return nil, false
	}
	inner := value[open+1 : len(value)-1]
	var args []string
	depth := 0
	start := 0
	for i, r := range inner {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				args = append(args, strings.TrimSpace(inner[start:i]))
				start = i + 1
			}
		}
	}
	args = append(args, strings.TrimSpace(inner[start:]))
	return args, true
}

// splitArgsRespectingParens splits s on top-level whitespace, leaving
// parenthesized groups (e.g. a nested color function) intact as a
// single token.
func splitArgsRespectingParens(s string) []string {
	var parts []string
	depth := 0
	start := -1
	runes := []rune(s)
	for i, r := range runes {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		}
		if r == ' ' || r == '\t' || r == '\n' {
			if depth == 0 {
				if start >= 0 {
					parts = append(parts, string(runes[start:i]))
					start = -1
				}
				continue
			}
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		parts = append(parts, string(runes[start:]))
	}
	return parts
}
