package glyph16

import (
	"bytes"
	"testing"
)

// lit holds every code below Limit that lights at least one segment.
var lit = map[byte]Mask{
	'*': 0x3FC0, '+': 0x1540, '-': 0x0440, '.': 0x4000, '/': 0x2200,
	'0': 0x003F, '1': 0x0006, '2': 0x045B, '3': 0x044F, '4': 0x0466,
	'5': 0x046D, '6': 0x047D, '7': 0x2201, '8': 0x047F, '9': 0x046F,
	':': 0x8000,
	'A': 0x0477, 'B': 0x047C, 'C': 0x0039, 'D': 0x045E, 'E': 0x0479,
	'F': 0x0471, 'G': 0x043D, 'H': 0x0476, 'I': 0x1109, 'J': 0x001E,
	'K': 0x1B00, 'L': 0x0038, 'M': 0x02B6, 'N': 0x08B6, 'O': 0x003F,
	'P': 0x0473, 'Q': 0x0467, 'R': 0x0C73, 'S': 0x046D, 'T': 0x1101,
	'U': 0x003E, 'V': 0x0886, 'W': 0x2836, 'X': 0x2A80, 'Y': 0x1280,
	'Z': 0x2209, '\\': 0x0880, '_': 0x0008,
}

func TestLookupFont(t *testing.T) {
	for c := 0; c < Limit; c++ {
		got, ok := Lookup(byte(c))
		if !ok {
			t.Errorf("Lookup(0x%02X) ok = false, want true", c)
			continue
		}
		want := lit[byte(c)]
		if got != want {
			t.Errorf("Lookup(0x%02X) = 0x%04X, want 0x%04X", c, uint16(got), uint16(want))
		}
	}
}

func TestLookupNoGlyph(t *testing.T) {
	for c := Limit; c <= 0xFF; c++ {
		got, ok := Lookup(byte(c))
		if ok {
			t.Errorf("Lookup(0x%02X) ok = true, want false", c)
		}
		if got != Blank {
			t.Errorf("Lookup(0x%02X) = 0x%04X, want blank", c, uint16(got))
		}
	}
}

func TestLookupSpaceIsBlankGlyph(t *testing.T) {
	m, ok := Lookup(' ')
	if !ok || m != Blank {
		t.Errorf("Lookup(' ') = (%v, %v), want (-, true)", m, ok)
	}
}

func TestSegmentBits(t *testing.T) {
	tests := []struct {
		name string
		seg  Mask
		want uint16
	}{
		{"A", A, 0x0001},
		{"G", G, 0x0040},
		{"M", M, 0x0400},
		{"Q", Q, 0x2000},
		{"DP", DP, 0x4000},
		{"COL", COL, 0x8000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if uint16(tt.seg) != tt.want {
				t.Errorf("%s = 0x%04X, want 0x%04X", tt.name, uint16(tt.seg), tt.want)
			}
		})
	}

	// '-' is the two middle bars, '.' and ':' their own segments.
	if m, _ := Lookup('-'); m != G|M {
		t.Errorf("Lookup('-') = %v, want G|M", m)
	}
	if m, _ := Lookup('.'); m != DP {
		t.Errorf("Lookup('.') = %v, want DP", m)
	}
	if m, _ := Lookup(':'); m != COL {
		t.Errorf("Lookup(':') = %v, want COL", m)
	}
}

func TestMaskHas(t *testing.T) {
	eight, _ := Lookup('8')
	zero, _ := Lookup('0')
	if !eight.Has(zero) {
		t.Error("'8' should contain every segment of '0'")
	}
	if zero.Has(eight) {
		t.Error("'0' should not contain every segment of '8'")
	}
}

func TestMaskString(t *testing.T) {
	tests := []struct {
		m    Mask
		want string
	}{
		{Blank, "-"},
		{A, "A"},
		{0x0476, "B|C|E|F|G|M"},
		{DP | COL, "DP|COL"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("Mask(0x%04X).String() = %q, want %q", uint16(tt.m), got, tt.want)
		}
	}
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []byte
	}{
		{"ascii", "HELLO ", []byte("HELLO ")},
		{"latin-1", "Grüße", []byte{'G', 'r', 0xFC, 0xDF, 'e'}},
		{"outside latin-1", "5€", []byte{'5', 0x1A}},
		{"empty", "", []byte{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(tt.in)
			if err != nil {
				t.Fatalf("Encode(%q) error = %v", tt.in, err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("Encode(%q) = % X, want % X", tt.in, got, tt.want)
			}
		})
	}
}
