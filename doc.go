// Package seglcd drives a six cell 16-segment LCD attached to the LCD
// controller of an STM32L1 microcontroller.
//
// The controller multiplexes the glass over four common lines (1/4 duty).
// Its pixel RAM holds one 32-bit word per common line; every character cell
// uses four segment lines, so each cell owns four bits in each of the four
// words. Which mask bit lands where is fixed by the board wiring and is not
// uniform across cells.
//
// # Display Characteristics
//
// - 6 character cells, left to right slots 0 to 5
// - 14 bar segments per cell plus a decimal point and a colon
// - 1/4 duty, 1/3 bias multiplexing
// - Double buffered RAM: writes become visible after an update request
//
// # Hardware Connection
//
// The controller lives on the microcontroller itself. This package reaches
// its registers through a half-duplex periph.io conn.Conn that forwards 8-bit
// register addresses to the LCD register block (an I²C bridge firmware), or
// not at all with the in-memory Memory. Full-duplex connections such as SPI
// are not supported.
//
// Enabling the controller (clock source, GPIO alternate functions, duty,
// bias, contrast) is done by the microcontroller firmware. Registers.Enabled
// tells whether it has completed.
//
// # Basic Usage
//
//	package main
//
//	import (
//		"context"
//
//		"periph.io/x/conn/v3/i2c"
//		"periph.io/x/conn/v3/i2c/i2creg"
//		"periph.io/x/conn/v3/physic"
//		"periph.io/x/devices/v3/seglcd"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		host.Init()
//		b, _ := i2creg.Open("")
//		defer b.Close()
//
//		regs, _ := seglcd.NewRegisters(&i2c.Dev{Bus: b, Addr: 0x28})
//		dev, _ := seglcd.New(regs, regs, &seglcd.Opts{
//			Text: "HELLO WORLD ",
//			Rate: 5 * physic.Hertz,
//		})
//		defer dev.Halt()
//
//		dev.Scroll(context.Background())
//	}
//
// # Frames
//
// Show draws one frame of six characters and commits it:
//
//	dev.Show([]byte("12:30 "), 0)
//
// A frame waits until the controller has latched the previous one, then
// clears and redraws every cell. Characters 0x60 and above (lower case
// letters among them) have no glyph; their cell keeps what it showed before.
// Characters below 0x60 without a visible glyph, such as space, blank the
// cell.
//
// Single cells can be drawn without committing with WriteChar and WriteMask,
// followed by Show or a Latch.CommitFrame of your own.
//
// # Testing Without Hardware
//
// Memory implements both PixelMemory and Latch in memory:
//
//	var m seglcd.Memory
//	dev, _ := seglcd.New(&m, &m, nil)
//	dev.Show(dev.Text(), 0)
//	fmt.Println(m.Shown(0)) // B|C|E|F|G|M
package seglcd
