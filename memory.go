package seglcd

import (
	"fmt"

	"periph.io/x/devices/v3/seglcd/glyph16"
)

// Memory is an in-memory PixelMemory and Latch.
//
// It is always ready for an update. CommitFrame copies RAM into Display, the
// way the controller transfers its RAM to the display buffer on an update
// request.
type Memory struct {
	RAM     [COMs]uint32
	Display [COMs]uint32 // Contents latched by the last CommitFrame
	Commits int
}

// ReadWord implements PixelMemory.
func (m *Memory) ReadWord(com int) (uint32, error) {
	if com < 0 || com >= COMs {
		return 0, fmt.Errorf("seglcd: no COM%d", com)
	}
	return m.RAM[com], nil
}

// WriteWord implements PixelMemory.
func (m *Memory) WriteWord(com int, v uint32) error {
	if com < 0 || com >= COMs {
		return fmt.Errorf("seglcd: no COM%d", com)
	}
	m.RAM[com] = v
	return nil
}

// ReadyForUpdate implements Latch.
func (m *Memory) ReadyForUpdate() (bool, error) {
	return true, nil
}

// CommitFrame implements Latch.
func (m *Memory) CommitFrame() error {
	m.Display = m.RAM
	m.Commits++
	return nil
}

// Shown returns the mask latched for slot by the last CommitFrame. Slots out
// of range show nothing.
func (m *Memory) Shown(slot int) glyph16.Mask {
	if slot < 0 || slot >= Slots {
		return glyph16.Blank
	}
	return decodeMask(&m.Display, slot)
}
