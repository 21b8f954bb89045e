package vector

import (
	"math"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   RGB
		wantOK bool
	}{
		{"hex lowercase", "#ff00ff", RGB{255, 0, 255}, true},
		{"hex uppercase", "#FF00FF", RGB{255, 0, 255}, true},
		{"hex mixed", "#Ab0CdE", RGB{0xAB, 0x0C, 0xDE}, true},
		{"functional", "rgb(255,0,255)", RGB{255, 0, 255}, true},
		{"functional spaced", "rgb( 12 , 34 , 56 )", RGB{12, 34, 56}, true},
		{"functional uppercase", "RGB(1,2,3)", RGB{1, 2, 3}, true},
		{"none", "none", RGB{}, false},
		{"empty", "", RGB{}, false},
		{"named color", "magenta", RGB{}, false},
		{"gradient url", "url(#grad1)", RGB{}, false},
		{"short hex", "#f0f", RGB{}, false},
		{"hex with alpha", "#ff00ff80", RGB{}, false},
		{"channel overflow", "rgb(300,0,0)", RGB{}, false},
		{"not a function", "rgba(1,2,3,0.5)", RGB{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseColor(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ParseColor(%q): ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ParseColor(%q): got %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDistance(t *testing.T) {
	key := RGB{255, 0, 255}

	if d := key.Distance(key); d != 0 {
		t.Errorf("self distance: got %v, want 0", d)
	}
	if d := (RGB{254, 0, 255}).Distance(key); math.Abs(d-1) > 1e-9 {
		t.Errorf("one-step distance: got %v, want 1", d)
	}
	want := math.Sqrt(3 * 255 * 255)
	if d := (RGB{0, 0, 0}).Distance(RGB{255, 255, 255}); math.Abs(d-want) > 1e-6 {
		t.Errorf("diagonal distance: got %v, want %v", d, want)
	}
}
