// Package seglcd drives a six cell 16-segment LCD attached to the LCD
// controller of an STM32L1 microcontroller.
//
// See the examples for how to use this package.
package seglcd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/devices/v3/seglcd/glyph16"
)

// Latch is the update handshake of the controller. The pixel RAM may only be
// written while ReadyForUpdate reports true; CommitFrame then asks the
// controller to show what was written.
type Latch interface {
	ReadyForUpdate() (bool, error)
	CommitFrame() error
}

// ErrNotReady is returned when the controller did not become ready for an
// update within Opts.ReadyTimeout.
var ErrNotReady = errors.New("seglcd: not ready for update")

var (
	errEmpty  = errors.New("seglcd: text must not be empty")
	errHalted = errors.New("seglcd: halted")
)

// DefaultRate is the scroll rate used when Opts.Rate is zero.
const DefaultRate = 4 * physic.Hertz

// Opts is the configuration for the display.
type Opts struct {
	// Text to scroll. It is converted with glyph16.Encode and must not be
	// empty.
	Text string

	// Rate at which Scroll advances by one character (default: DefaultRate).
	Rate physic.Frequency

	// ReadyTimeout bounds the wait for the controller to accept an update.
	// Zero waits forever.
	ReadyTimeout time.Duration

	// Delay, if set, replaces the ticker pacing Scroll. It is called once
	// after every frame and stops the scroll by returning an error.
	Delay func(ctx context.Context) error
}

// Dev is the device handle for the display.
//
// Dev is not safe for concurrent use.
type Dev struct {
	ram   PixelMemory
	latch Latch

	text         []byte
	period       time.Duration
	readyTimeout time.Duration
	delay        func(context.Context) error

	halted bool
}

var (
	_ conn.Resource = &Dev{}
	_ io.Writer     = &Dev{}
)

// New returns a display writing frames to ram and committing them through
// latch. For the STM32L1 controller both are the same *Registers.
//
// opts can be nil to scroll "HELLO " at DefaultRate.
func New(ram PixelMemory, latch Latch, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &Opts{Text: "HELLO "}
	}
	if opts.Rate < 0 {
		return nil, errors.New("seglcd: rate must be positive")
	}
	if opts.ReadyTimeout < 0 {
		return nil, errors.New("seglcd: ready timeout must not be negative")
	}
	text, err := glyph16.Encode(opts.Text)
	if err != nil {
		return nil, fmt.Errorf("seglcd: failed to encode text: %w", err)
	}
	if len(text) == 0 {
		return nil, errEmpty
	}
	rate := opts.Rate
	if rate == 0 {
		rate = DefaultRate
	}
	return &Dev{
		ram:          ram,
		latch:        latch,
		text:         text,
		period:       rate.Period(),
		readyTimeout: opts.ReadyTimeout,
		delay:        opts.Delay,
	}, nil
}

// waitReady polls the latch until the pixel RAM may be written.
func (d *Dev) waitReady() error {
	var deadline time.Time
	if d.readyTimeout > 0 {
		deadline = time.Now().Add(d.readyTimeout)
	}
	for {
		ok, err := d.latch.ReadyForUpdate()
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
		if !deadline.IsZero() && time.Now().After(deadline) {
			return ErrNotReady
		}
	}
}

// Show draws one frame: the six characters of text starting at offset,
// wrapping around to the start of text when it is shorter than the display.
//
// Every cell is cleared before its glyph is drawn, except for characters
// without a glyph (codes 0x60 and above) whose cell is left as it was.
func (d *Dev) Show(text []byte, offset int) error {
	if d.halted {
		return errHalted
	}
	n := len(text)
	if n == 0 {
		return errEmpty
	}
	if offset %= n; offset < 0 {
		offset += n
	}
	if err := d.waitReady(); err != nil {
		return err
	}
	for i := 0; i < Slots; i++ {
		m, ok := glyph16.Lookup(text[(offset+i)%n])
		if !ok {
			continue
		}
		if err := WriteMask(d.ram, i, m, true); err != nil {
			return err
		}
	}
	return d.commit()
}

func (d *Dev) commit() error {
	if err := d.latch.CommitFrame(); err != nil {
		return fmt.Errorf("seglcd: failed to commit frame: %w", err)
	}
	return nil
}

// Scroll shows the configured text moving right to left, one character per
// period, starting over when the end is reached.
//
// It only returns on failure, or when the delay returns an error such as
// ctx being canceled.
func (d *Dev) Scroll(ctx context.Context) error {
	if d.halted {
		return errHalted
	}
	delay := d.delay
	if delay == nil {
		t := time.NewTicker(d.period)
		defer t.Stop()
		delay = func(ctx context.Context) error {
			select {
			case <-t.C:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
	for offset := 0; ; offset = (offset + 1) % len(d.text) {
		if err := d.Show(d.text, offset); err != nil {
			return err
		}
		if err := delay(ctx); err != nil {
			return err
		}
	}
}

// Write shows p from its first character, as Show(p, 0) does. An empty p
// draws nothing.
func (d *Dev) Write(p []byte) (int, error) {
	if d.halted {
		return 0, errHalted
	}
	if len(p) == 0 {
		return 0, nil
	}
	if err := d.Show(p, 0); err != nil {
		return 0, err
	}
	return len(p), nil
}

// WriteMask draws mask in slot without waiting or committing. With clear
// set the cell's previous segments are turned off.
func (d *Dev) WriteMask(slot int, mask glyph16.Mask, clear bool) error {
	if d.halted {
		return errHalted
	}
	return WriteMask(d.ram, slot, mask, clear)
}

// WriteChar draws the glyph of c in slot without waiting or committing.
// Characters without a glyph leave the cell untouched.
func (d *Dev) WriteChar(slot int, c byte, clear bool) error {
	if d.halted {
		return errHalted
	}
	m, ok := glyph16.Lookup(c)
	if !ok {
		if slot < 0 || slot >= Slots {
			return errSlot
		}
		return nil
	}
	return d.WriteMask(slot, m, clear)
}

// Clear turns every segment off.
func (d *Dev) Clear() error {
	if d.halted {
		return errHalted
	}
	if err := d.waitReady(); err != nil {
		return err
	}
	for i := 0; i < COMs; i++ {
		if err := d.ram.WriteWord(i, 0); err != nil {
			return fmt.Errorf("seglcd: failed to write COM%d: %w", i, err)
		}
	}
	return d.commit()
}

// Text returns the character codes scrolled by Scroll.
func (d *Dev) Text() []byte {
	return append([]byte(nil), d.text...)
}

// Halt blanks the display. Further operations fail until a new Dev is
// created.
//
// Halt waits for the controller like Show does: with a zero
// Opts.ReadyTimeout it blocks forever if the controller never becomes ready.
func (d *Dev) Halt() error {
	if d.halted {
		return nil
	}
	err := d.Clear()
	d.halted = true
	return err
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("seglcd.Dev{%d slots, %q}", Slots, d.text)
}
