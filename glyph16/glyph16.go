// Package glyph16 maps character codes to 16-segment display masks.
package glyph16

import (
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// Mask is the set of lit segments of one character cell.
// Bit k is segment k in the order A B C D E F G H J K M N P Q DP COL.
type Mask uint16

// Segments.
const (
	A Mask = 1 << iota
	B
	C
	D
	E
	F
	G
	H
	J
	K
	M
	N
	P
	Q
	DP  // Decimal point
	COL // Colon
)

// Blank lights no segment.
const Blank Mask = 0

// Limit is the first character code without a glyph.
const Limit = 0x60

var segmentNames = [16]string{"A", "B", "C", "D", "E", "F", "G", "H", "J", "K", "M", "N", "P", "Q", "DP", "COL"}

// font is indexed by character code.
var font = [Limit]Mask{
	0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000,
	0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000,
	0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000,
	0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000,
	//         !       "       #       $       %       &       '
	0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000,
	// (       )       *       +       ,       -       .       /
	0x0000, 0x0000, 0x3FC0, 0x1540, 0x0000, 0x0440, 0x4000, 0x2200,
	// 0       1       2       3       4       5       6       7
	0x003F, 0x0006, 0x045B, 0x044F, 0x0466, 0x046D, 0x047D, 0x2201,
	// 8       9       :       ;       <       =       >       ?
	0x047F, 0x046F, 0x8000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000,
	// @       A       B       C       D       E       F       G
	0x0000, 0x0477, 0x047C, 0x0039, 0x045E, 0x0479, 0x0471, 0x043D,
	// H       I       J       K       L       M       N       O
	0x0476, 0x1109, 0x001E, 0x1B00, 0x0038, 0x02B6, 0x08B6, 0x003F,
	// P       Q       R       S       T       U       V       W
	0x0473, 0x0467, 0x0C73, 0x046D, 0x1101, 0x003E, 0x0886, 0x2836,
	// X       Y       Z       [       \       ]       ^       _
	0x2A80, 0x1280, 0x2209, 0x0000, 0x0880, 0x0000, 0x0000, 0x0008,
}

// Lookup returns the mask for character code c.
//
// ok is false when c has no glyph (c >= Limit). Callers must then leave the
// cell untouched, which differs from drawing a Blank mask: a blank mask
// clears whatever the cell showed before.
func Lookup(c byte) (m Mask, ok bool) {
	if c >= Limit {
		return 0, false
	}
	return font[c], true
}

// Has reports whether every segment of s is lit in m.
func (m Mask) Has(s Mask) bool {
	return m&s == s
}

// String lists the lit segments, e.g. "B|C|E|F|G|M". A blank mask is "-".
func (m Mask) String() string {
	if m == Blank {
		return "-"
	}
	var names []string
	for i, name := range segmentNames {
		if m&(1<<uint(i)) != 0 {
			names = append(names, name)
		}
	}
	return strings.Join(names, "|")
}

// Encode converts s to single-byte character codes using ISO 8859-1.
// Runes outside Latin-1 become the SUB control code (0x1A), which has a blank
// glyph.
func Encode(s string) ([]byte, error) {
	enc := encoding.ReplaceUnsupported(charmap.ISO8859_1.NewEncoder())
	t, err := enc.String(s)
	if err != nil {
		return nil, err
	}
	return []byte(t), nil
}
