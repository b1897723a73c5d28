// Package cssenv carries the viewport and font context that value and
// length resolution needs, as an explicit object passed by the caller
// rather than package-level mutable state.
package cssenv

// Environment is the context a stylesheet is resolved against: the
// viewport a document is laid out in, plus the font metrics percentage
// and relative units resolve against.
type Environment struct {
	ViewportWidth  float64
	ViewportHeight float64

	// ContainerWidth/Height default to the viewport dimensions and are
	// overridden per-subtree by container query evaluation.
	ContainerWidth  float64
	ContainerHeight float64

	RootFontSize float64

	// DarkMode overrides prefers-color-scheme media-feature evaluation;
	// nil means "use the OS/UA default".
	DarkMode *bool
}

// Default returns an Environment with a 1280x720 viewport and a 16px root
// font size, the values a caller with no better information should start
// from.
func Default() Environment {
	return Environment{
		ViewportWidth:   1280,
		ViewportHeight:  720,
		ContainerWidth:  1280,
		ContainerHeight: 720,
		RootFontSize:    16,
	}
}

// PrefersDark reports whether prefers-color-scheme: dark should match,
// honoring an explicit override before falling back to light.
func (e Environment) PrefersDark() bool {
	if e.DarkMode != nil {
		return *e.DarkMode
	}
	return false
}
