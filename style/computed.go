package style

import (
	"image/color"

	"github.com/lukehoban/contentcore/cssenv"
	"github.com/lukehoban/contentcore/cssvalue"
)

// ComputedStyle holds a node's cascaded properties resolved to typed Go
// values - cssvalue.Length payloads and color.RGBA - instead of the raw
// strings StyledNode.Styles stores them as. Percentage and calc()
// lengths keep their Length payload rather than being resolved to
// pixels here, since their numeric value depends on a containing block
// size layout computes, not anything known at style time.
type ComputedStyle struct {
	Display  string
	Position string

	Color           color.RGBA
	BackgroundColor color.RGBA
	HasBackground   bool

	// FontSize is always absolute: inheritance resolves em/rem against
	// the parent's FontSize as styling walks down the tree, so by the
	// time a node's own ComputedStyle exists there's no percentage base
	// left to defer.
	FontSize float64

	Width, Height       cssvalue.Length
	HasWidth, HasHeight bool

	Margin  EdgeLengths
	Padding EdgeLengths
	Border  EdgeWidths
}

// EdgeLengths holds the four-sided margin/padding of a box as retained
// Length payloads, resolved against the containing block's width once
// layout knows it.
type EdgeLengths struct {
	Top, Right, Bottom, Left cssvalue.Length
}

// EdgeWidths holds the four-sided border widths of a box, already
// resolved to pixels (CSS 2.1 border widths don't accept percentages).
type EdgeWidths struct {
	Top, Right, Bottom, Left float64
}

// Compute resolves a node's raw cascaded string properties into a
// ComputedStyle, given the environment it's rendered in and the font
// size it inherits from its parent (pass env.RootFontSize for the root).
func (s *StyledNode) Compute(env cssenv.Environment, parentFontSize float64) ComputedStyle {
	cs := ComputedStyle{
		Display:  valueOr(s.Styles["display"], "inline"),
		Position: valueOr(s.Styles["position"], "static"),
		FontSize: parentFontSize,
	}

	if fs, ok := s.Styles["font-size"]; ok {
		if l, ok := cssvalue.ParseLength(fs, parentFontSize, env.RootFontSize); ok {
			cs.FontSize = l.Resolve(parentFontSize, parentFontSize, env.RootFontSize)
		}
	}

	if c, ok := s.Styles["color"]; ok {
		if rgba, ok := cssvalue.ParseColorEnv(c, env); ok {
			cs.Color = rgba
		}
	}
	if bg, ok := firstNonEmpty(s.Styles, "background-color", "background"); ok {
		if rgba, ok := cssvalue.ParseColorEnv(bg, env); ok {
			cs.BackgroundColor = rgba
			cs.HasBackground = true
		}
	}

	if w, ok := s.Styles["width"]; ok {
		if l, ok := cssvalue.ParseLength(w, cs.FontSize, env.RootFontSize); ok {
			cs.Width = l
			cs.HasWidth = true
		}
	}
	if h, ok := s.Styles["height"]; ok {
		if l, ok := cssvalue.ParseLength(h, cs.FontSize, env.RootFontSize); ok {
			cs.Height = l
			cs.HasHeight = true
		}
	}

	cs.Margin = s.edgeLengths("margin", cs.FontSize, env)
	cs.Padding = s.edgeLengths("padding", cs.FontSize, env)
	cs.Border = s.edgeWidths("border", cs.FontSize, env)

	return cs
}

func (s *StyledNode) edgeLengths(prefix string, fontSize float64, env cssenv.Environment) EdgeLengths {
	side := func(name string) cssvalue.Length {
		v, ok := s.Styles[prefix+"-"+name]
		if !ok {
			return cssvalue.Px(0)
		}
		l, ok := cssvalue.ParseLength(v, fontSize, env.RootFontSize)
		if !ok {
			return cssvalue.Px(0)
		}
		return l
	}
	return EdgeLengths{Top: side("top"), Right: side("right"), Bottom: side("bottom"), Left: side("left")}
}

func (s *StyledNode) edgeWidths(prefix string, fontSize float64, env cssenv.Environment) EdgeWidths {
	side := func(name string) float64 {
		v, ok := s.Styles[prefix+"-"+name+"-width"]
		if !ok {
			return 0
		}
		l, ok := cssvalue.ParseLength(v, fontSize, env.RootFontSize)
		if !ok {
			return 0
		}
		return l.Resolve(0, fontSize, env.RootFontSize)
	}
	return EdgeWidths{Top: side("top"), Right: side("right"), Bottom: side("bottom"), Left: side("left")}
}

func firstNonEmpty(styles map[string]string, keys ...string) (string, bool) {
	for _, k := range keys {
		if v := styles[k]; v != "" {
			return v, true
		}
	}
	return "", false
}

func valueOr(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
