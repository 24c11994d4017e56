package seglcd

import (
	"encoding/binary"
	"errors"
	"fmt"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/mmr"
)

// LCD controller register offsets.
const (
	regSR  = 0x08 // Status
	regCLR = 0x0C // Clear
	regRAM = 0x14 // COM0 low word; each COM takes two words
)

// Status register bits.
const (
	srENS = 1 << 0 // Controller enabled
	srUDR = 1 << 2 // Update display request, cleared by hardware
	srUDD = 1 << 3 // Update display done
	srRDY = 1 << 4 // Step-up converter ready
)

// clrUDDC clears the UDD flag when written to the clear register.
const clrUDDC = 1 << 3

// Registers is the register block of an STM32L1 LCD controller reached over
// a half-duplex conn.Conn, for example an I²C bridge to the microcontroller.
// Registers are addressed by their 8-bit offset and are 32 bits wide, little
// endian.
//
// It implements PixelMemory and Latch.
type Registers struct {
	d mmr.Dev8
}

// NewRegisters returns the LCD register block behind c.
//
// c must be half-duplex: the register address is written, then the value is
// read back in a separate phase. Full-duplex connections such as SPI are
// rejected.
func NewRegisters(c conn.Conn) (*Registers, error) {
	if c.Duplex() != conn.Half {
		return nil, errors.New("seglcd: register bridge must be half-duplex")
	}
	return &Registers{d: mmr.Dev8{Conn: c, Order: binary.LittleEndian}}, nil
}

func ramOffset(com int) uint8 {
	return uint8(regRAM + 8*com)
}

// ReadWord implements PixelMemory.
func (r *Registers) ReadWord(com int) (uint32, error) {
	if com < 0 || com >= COMs {
		return 0, fmt.Errorf("seglcd: no COM%d", com)
	}
	return r.d.ReadUint32(ramOffset(com))
}

// WriteWord implements PixelMemory.
func (r *Registers) WriteWord(com int, v uint32) error {
	if com < 0 || com >= COMs {
		return fmt.Errorf("seglcd: no COM%d", com)
	}
	return r.d.WriteUint32(ramOffset(com), v)
}

func (r *Registers) status() (uint32, error) {
	sr, err := r.d.ReadUint32(regSR)
	if err != nil {
		return 0, fmt.Errorf("seglcd: failed to read status: %w", err)
	}
	return sr, nil
}

// ReadyForUpdate implements Latch. The RAM may be written while no update
// request is pending.
func (r *Registers) ReadyForUpdate() (bool, error) {
	sr, err := r.status()
	if err != nil {
		return false, err
	}
	return sr&srUDR == 0, nil
}

// CommitFrame implements Latch. It requests the transfer of the RAM to the
// display buffer; the controller performs it at the next frame boundary.
func (r *Registers) CommitFrame() error {
	sr, err := r.status()
	if err != nil {
		return err
	}
	return r.d.WriteUint32(regSR, sr|srUDR)
}

// Enabled reports whether the controller is enabled and its step-up
// converter is ready, i.e. whether the start-of-day setup has completed.
func (r *Registers) Enabled() (bool, error) {
	sr, err := r.status()
	if err != nil {
		return false, err
	}
	return sr&(srENS|srRDY) == srENS|srRDY, nil
}

// ClearUpdateDone acknowledges a completed update (the UDD flag).
func (r *Registers) ClearUpdateDone() error {
	return r.d.WriteUint32(regCLR, clrUDDC)
}

// UpdateDone reports whether the last requested update has been latched.
func (r *Registers) UpdateDone() (bool, error) {
	sr, err := r.status()
	if err != nil {
		return false, err
	}
	return sr&srUDD != 0, nil
}

// String implements fmt.Stringer.
func (r *Registers) String() string {
	return fmt.Sprintf("seglcd.Registers{%s}", r.d.Conn)
}
