package raster

import (
	"errors"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name string
		spec string
		want RGB
	}{
		{"plain", "FF00FF", RGB{255, 0, 255}},
		{"hash prefix", "#ff00ff", RGB{255, 0, 255}},
		{"mixed case", "#Ff00fF", RGB{255, 0, 255}},
		{"surrounding space", "  276EE6 ", RGB{0x27, 0x6E, 0xE6}},
		{"black", "000000", RGB{0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.spec)
			if err != nil {
				t.Fatalf("ParseHex(%q) failed: %v", tt.spec, err)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q): got %+v, want %+v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestParseHex_Invalid(t *testing.T) {
	for _, spec := range []string{"", "fff", "#fff", "ff00ff00", "nothex", "gg0000"} {
		if _, err := ParseHex(spec); !errors.Is(err, ErrConfiguration) {
			t.Errorf("ParseHex(%q): got %v, want ErrConfiguration", spec, err)
		}
	}
}

func TestNewPalette(t *testing.T) {
	pal, err := NewPalette("FF00FF", "FFFFFF", "276EE6")
	if err != nil {
		t.Fatalf("NewPalette failed: %v", err)
	}
	if pal.Key != (RGB{255, 0, 255}) {
		t.Errorf("Key: got %+v, want {255 0 255}", pal.Key)
	}
	if len(pal.Colors) != 2 {
		t.Fatalf("Colors: got %d entries, want 2", len(pal.Colors))
	}
	if pal.Colors[0] != (RGB{255, 255, 255}) {
		t.Errorf("Colors[0]: got %+v, want white", pal.Colors[0])
	}
}

func TestNewPalette_Errors(t *testing.T) {
	if _, err := NewPalette("FF00FF"); !errors.Is(err, ErrConfiguration) {
		t.Errorf("empty palette: got %v, want ErrConfiguration", err)
	}
	if _, err := NewPalette("notacolor", "FFFFFF"); !errors.Is(err, ErrConfiguration) {
		t.Errorf("bad key spec: got %v, want ErrConfiguration", err)
	}
	if _, err := NewPalette("FF00FF", "xyz"); !errors.Is(err, ErrConfiguration) {
		t.Errorf("bad color spec: got %v, want ErrConfiguration", err)
	}
}

func TestNearest(t *testing.T) {
	pal := Palette{
		Key:    RGB{255, 0, 255},
		Colors: []RGB{{255, 0, 0}, {0, 0, 255}},
	}

	tests := []struct {
		name    string
		r, g, b uint8
		want    RGB
	}{
		{"exact red", 255, 0, 0, RGB{255, 0, 0}},
		{"exact blue", 0, 0, 255, RGB{0, 0, 255}},
		{"near red", 200, 30, 40, RGB{255, 0, 0}},
		{"near blue", 40, 30, 200, RGB{0, 0, 255}},
		// Any pixel with r == b is equidistant from red and blue; the
		// first configured color must win.
		{"tie breaks to first", 100, 0, 100, RGB{255, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pal.Nearest(tt.r, tt.g, tt.b); got != tt.want {
				t.Errorf("Nearest(%d,%d,%d): got %+v, want %+v", tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

func TestKeyDistance(t *testing.T) {
	pal := Palette{Key: RGB{255, 0, 255}, Colors: []RGB{{255, 255, 255}}}

	if d := pal.KeyDistance(255, 0, 255); d != 0 {
		t.Errorf("distance to key itself: got %v, want 0", d)
	}
	if d := pal.KeyDistance(255, 0, 0); d != 255 {
		t.Errorf("distance across one channel: got %v, want 255", d)
	}
}
