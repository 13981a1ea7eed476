package willowbind

import (
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want color.RGBA
		ok   bool
	}{
		{"named", "red", color.RGBA{255, 0, 0, 255}, true},
		{"named mixed case", "Green", color.RGBA{0, 128, 0, 255}, true},
		{"short hex", "#0f0", color.RGBA{0, 255, 0, 255}, true},
		{"long hex", "#102030", color.RGBA{0x10, 0x20, 0x30, 255}, true},
		{"hex with alpha", "#11223344", color.RGBA{0x11, 0x22, 0x33, 0x44}, true},
		{"color value", color.RGBA{1, 2, 3, 4}, color.RGBA{1, 2, 3, 4}, true},
		{"bad hex", "#12345", color.RGBA{}, false},
		{"not a color", "normal", color.RGBA{}, false},
		{"number", 5, color.RGBA{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseColor(tt.in)
			if ok != tt.ok || got != tt.want {
				t.Errorf("parseColor(%v) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestLerpValue(t *testing.T) {
	if got := lerpValue(0, 10, 0.25); got != 2.5 {
		t.Errorf("numbers: got %v, want 2.5", got)
	}
	if got := lerpValue("#000000", "#ffffff", 0.5); got != "#808080" {
		t.Errorf("colors: got %v, want #808080", got)
	}
	if got := lerpValue("red", "green", 1); got != "green" {
		t.Errorf("colors at end: got %v, want the exact target", got)
	}
	if got := lerpValue("#000000", "#ffffff", -0.2); got != "#000000" {
		t.Errorf("colors undershooting: got %v, want #000000", got)
	}
	if got := lerpValue("#ffffff", "#000000", -0.2); got != "#ffffff" {
		t.Errorf("colors undershooting down: got %v, want #ffffff", got)
	}
	if got := formatColor(lerpColor(color.RGBA{A: 255}, color.RGBA{R: 255, G: 255, B: 255, A: 255}, 1.3)); got != "#ffffff" {
		t.Errorf("colors overshooting: got %v, want #ffffff", got)
	}
	if got := lerpValue("a", "b", 0.5); got != "a" {
		t.Errorf("strings mid-way: got %v, want a", got)
	}
	if got := lerpValue("a", "b", 1); got != "b" {
		t.Errorf("strings at end: got %v, want b", got)
	}
}

func TestLerpAttrsSkipsOffsetAndMissingKeys(t *testing.T) {
	got := lerpAttrs(Attrs{"x": 0}, Attrs{"x": 10, "y": 5, "offset": 1}, 0.5)
	if got["x"] != 5.0 {
		t.Errorf("x = %v, want 5", got["x"])
	}
	if got["y"] != 5 {
		t.Errorf("y = %v, want the target 5", got["y"])
	}
	if _, ok := got["offset"]; ok {
		t.Error("offset must not be interpolated")
	}
}

func TestFormatColor(t *testing.T) {
	if got := formatColor(color.RGBA{255, 0, 16, 255}); got != "#ff0010" {
		t.Errorf("opaque: %q", got)
	}
	if got := formatColor(color.RGBA{1, 2, 3, 4}); got != "#01020304" {
		t.Errorf("translucent: %q", got)
	}
}
