package cssvalue

import (
	"image/color"
	"testing"
)

func TestParseColorNamed(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected color.RGBA
	}{
		{"black", "black", color.RGBA{0, 0, 0, 255}},
		{"white", "white", color.RGBA{255, 255, 255, 255}},
		{"rebeccapurple", "rebeccapurple", color.RGBA{102, 51, 153, 255}},
		{"case insensitive", "ReD", color.RGBA{255, 0, 0, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseColor(tt.input)
			if !ok {
				t.Fatalf("expected ok=true for %q", tt.input)
			}
			if got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestParseColorHex(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected color.RGBA
	}{
		{"3-digit", "#f00", color.RGBA{255, 0, 0, 255}},
		{"6-digit", "#ff0000", color.RGBA{255, 0, 0, 255}},
		{"4-digit with alpha", "#f008", color.RGBA{255, 0, 0, 0x88}},
		{"8-digit with alpha", "#ff000080", color.RGBA{255, 0, 0, 0x80}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseColor(tt.input)
			if !ok {
				t.Fatalf("expected ok=true for %q", tt.input)
			}
			if got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestParseColorFunctional(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected color.RGBA
	}{
		{"rgb comma", "rgb(255, 0, 0)", color.RGBA{255, 0, 0, 255}},
		{"rgb space", "rgb(255 0 0)", color.RGBA{255, 0, 0, 255}},
		{"rgba with alpha", "rgba(255, 0, 0, 0.5)", color.RGBA{255, 0, 0, 128}},
		{"rgb percent", "rgb(100%, 0%, 0%)", color.RGBA{255, 0, 0, 255}},
		{"hsl red", "hsl(0, 100%, 50%)", color.RGBA{255, 0, 0, 255}},
		{"hsl black", "hsl(0, 0%, 0%)", color.RGBA{0, 0, 0, 255}},
		{"hsl white", "hsl(0, 0%, 100%)", color.RGBA{255, 255, 255, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseColor(tt.input)
			if !ok {
				t.Fatalf("expected ok=true for %q", tt.input)
			}
			if got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestParseColorTransparentAndInvalid(t *testing.T) {
	got, ok := ParseColor("transparent")
	if !ok || got != (color.RGBA{0, 0, 0, 0}) {
		t.Errorf("expected transparent, got %v ok=%v", got, ok)
	}

	if _, ok := ParseColor("not-a-color"); ok {
		t.Error("expected ok=false for unrecognized input")
	}
}

func TestParseColorWithCurrent(t *testing.T) {
	current := color.RGBA{10, 20, 30, 255}

	got, ok := ParseColorWithCurrent("currentColor", current)
	if !ok || got != current {
		t.Errorf("expected currentcolor to resolve to %v, got %v ok=%v", current, got, ok)
	}

	got, ok = ParseColorWithCurrent("blue", current)
	if !ok || got != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("expected blue to resolve independently of current, got %v ok=%v", got, ok)
	}
}
