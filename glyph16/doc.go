// Package glyph16 provides the 16-segment font used by seglcd.
//
// Each character cell has fourteen bar segments plus a decimal point and a
// colon. A Mask stores one bit per segment in lexicographic order, so
// mask&1 is segment A, mask&2 is segment B and so on:
//
//	          A
//	 _   ----------
//	|_|  |\   |J  /|
//	    F| H  |  K |B
//	 _   |  \ | /  |
//	|_|  --G-- --M--
//	     |   /| \  |
//	    E|  Q |  N |C
//	 _   | /  |P  \|
//	|_|  -----------
//	          D
//
//	bit:  0 1 2 3 4 5 6 7 8 9 10 11 12 13 14 15
//	seg:  A B C D E F G H J K M  N  P  Q  DP COL
//
// The font covers character codes 0x00 to 0x5F. Only digits, upper case
// letters and a handful of symbols (* + - . / : \ _) light anything; the
// remaining codes in that range map to a blank Mask. Codes from 0x60 upward
// have no glyph at all, which Lookup reports separately from a blank Mask.
//
// Example usage:
//
//	m, ok := glyph16.Lookup('H')
//	fmt.Println(m, ok) // B|C|E|F|G|M true
//
//	// Convert a Go string to character codes first.
//	codes, err := glyph16.Encode("Grüße")
package glyph16
