package seglcd

import (
	"errors"
	"fmt"

	"periph.io/x/devices/v3/seglcd/glyph16"
)

const (
	// Slots is the number of character cells on the glass.
	Slots = 6
	// COMs is the number of common lines, one 32-bit RAM word each.
	COMs = 4
)

// PixelMemory is the controller's pixel RAM: one 32-bit word per common
// line. Bit n of word c drives segment line n while common c is active.
type PixelMemory interface {
	ReadWord(com int) (uint32, error)
	WriteWord(com int, v uint32) error
}

var errSlot = errors.New("seglcd: slot out of range")

// wire tells which COM word and which of the slot's four segment lines
// (P1..P4, as index 0..3) carry a mask bit. Indexed by mask bit.
var wire = [16]struct{ com, p uint8 }{
	{1, 3}, // A
	{0, 3}, // B
	{1, 1}, // C
	{1, 0}, // D
	{0, 0}, // E
	{1, 2}, // F
	{0, 2}, // G
	{3, 2}, // H
	{3, 3}, // J
	{2, 3}, // K
	{0, 1}, // M
	{3, 0}, // N
	{2, 0}, // P
	{2, 2}, // Q
	{3, 1}, // DP
	{2, 1}, // COL
}

// mapSlot returns the segment lines P1..P4 used by slot. The cells are not
// wired in order: slot 1 skips ahead for P2 and slot 5 has P3 and P4 swapped.
func mapSlot(slot int) [4]uint {
	var p1, p2, p3, p4 int
	if slot < 2 {
		p1 = 2 * slot
	} else {
		p1 = 2*slot + 4
	}
	if slot == 1 {
		p2 = p1 + 5
	} else {
		p2 = p1 + 1
	}
	if slot < 3 {
		p3 = 23 - 2*slot + 6
	} else {
		p3 = 23 - 2*slot + 4
	}
	if slot == 5 {
		p4 = p3
		p3--
	} else {
		p4 = p3 - 1
	}
	return [4]uint{uint(p1), uint(p2), uint(p3), uint(p4)}
}

// slotBits is the union of the segment lines of slot.
func slotBits(p [4]uint) uint32 {
	return 1<<p[0] | 1<<p[1] | 1<<p[2] | 1<<p[3]
}

// encodeMask lights mask in slot. When clear is set, the slot's lines are
// reset in all four words first; otherwise bits are only ever added.
func encodeMask(words *[COMs]uint32, slot int, mask glyph16.Mask, clear bool) {
	p := mapSlot(slot)
	if clear {
		bits := slotBits(p)
		for i := range words {
			words[i] &^= bits
		}
	}
	for bit, w := range wire {
		words[w.com] |= uint32(mask>>uint(bit)&1) << p[w.p]
	}
}

// decodeMask is the inverse of encodeMask.
func decodeMask(words *[COMs]uint32, slot int) glyph16.Mask {
	p := mapSlot(slot)
	var mask glyph16.Mask
	for bit, w := range wire {
		mask |= glyph16.Mask(words[w.com]>>p[w.p]&1) << uint(bit)
	}
	return mask
}

func readWords(m PixelMemory) (words [COMs]uint32, err error) {
	for i := range words {
		if words[i], err = m.ReadWord(i); err != nil {
			return words, fmt.Errorf("seglcd: failed to read COM%d: %w", i, err)
		}
	}
	return words, nil
}

// WriteMask lights the segments of mask in slot. Each of the four RAM words
// is read once, modified and written back once. With clear set, segments
// previously lit in slot are turned off; otherwise mask is OR-ed in.
func WriteMask(m PixelMemory, slot int, mask glyph16.Mask, clear bool) error {
	if slot < 0 || slot >= Slots {
		return errSlot
	}
	words, err := readWords(m)
	if err != nil {
		return err
	}
	encodeMask(&words, slot, mask, clear)
	for i, w := range words {
		if err := m.WriteWord(i, w); err != nil {
			return fmt.Errorf("seglcd: failed to write COM%d: %w", i, err)
		}
	}
	return nil
}

// ReadMask returns the segments currently lit in slot.
func ReadMask(m PixelMemory, slot int) (glyph16.Mask, error) {
	if slot < 0 || slot >= Slots {
		return 0, errSlot
	}
	words, err := readWords(m)
	if err != nil {
		return 0, err
	}
	return decodeMask(&words, slot), nil
}
