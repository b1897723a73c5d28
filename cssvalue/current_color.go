package cssvalue

import (
	"image/color"
	"strings"
)

// ParseColorWithCurrent resolves a <color> value the same way ParseColor
// does, except "currentcolor" resolves to current instead of falling
// through to the unparsed-input default.
func ParseColorWithCurrent(value string, current color.RGBA) (color.RGBA, bool) {
	if strings.EqualFold(strings.TrimSpace(value), "currentcolor") {
		return current, true
	}
	return ParseColor(value)
}
