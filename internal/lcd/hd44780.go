// Package lcd drives an HD44780-compatible 16x2 character display over a
// 4-bit parallel bus: six GPIO outputs (RS, E, D4..D7).
//
// Every byte goes out as two nibbles, high nibble first. Each nibble is put
// on D4..D7, latched with a >=1µs enable pulse and followed by a 40µs settle.
// RS low selects the instruction register, RS high the data register.
package lcd

import (
	"time"

	"github.com/rileyhilliard/lcdstat/internal/errors"
	"github.com/rileyhilliard/lcdstat/internal/gpio"
	"github.com/rileyhilliard/lcdstat/internal/logger"
)

// Display geometry.
const (
	Cols = 16
	Rows = 2
)

// Controller instructions.
const (
	cmdClear       = 0x01
	cmdEntryMode   = 0x06 // increment, no shift
	cmdDisplayOff  = 0x08
	cmdDisplayOn   = 0x0C // display on, cursor off, blink off
	cmdFunctionSet = 0x28 // 4-bit bus, 2 lines, 5x8 font
	cmdSetDDRAM    = 0x80

	row0Base = 0x00
	row1Base = 0x40
)

// Bus timing.
const (
	PulseWidth   = 1 * time.Microsecond
	SettleDelay  = 40 * time.Microsecond
	PowerOnDelay = 50 * time.Millisecond
	ClearDelay   = 2 * time.Millisecond

	wakeDelay  = 5 * time.Millisecond
	resetDelay = 200 * time.Microsecond
)

// Consumer is the label the display's lines are requested under.
const Consumer = "hd44780"

// Pins are the chip offsets of the six bus lines.
type Pins struct {
	RS int
	E  int
	D4 int
	D5 int
	D6 int
	D7 int
}

// Offsets lists the pins in request order.
func (p Pins) Offsets() []int {
	return []int{p.RS, p.E, p.D4, p.D5, p.D6, p.D7}
}

// Sleeper pauses for at least d.
type Sleeper func(d time.Duration)

// Option configures a Display.
type Option func(*Display)

// WithSleeper replaces time.Sleep, letting tests record bus delays.
func WithSleeper(s Sleeper) Option {
	return func(d *Display) { d.sleep = s }
}

// WithLogger sets the logger used for driver diagnostics.
func WithLogger(l logger.Logger) Option {
	return func(d *Display) { d.log = l }
}

// Display is an initialized HD44780 controller.
type Display struct {
	lines gpio.Lines
	pins  Pins
	sleep Sleeper
	log   logger.Logger
}

// Open takes ownership of an output line group and runs the power-on
// handshake. On failure the lines are left open for the caller to release.
func Open(lines gpio.Lines, pins Pins, opts ...Option) (*Display, error) {
	d := &Display{
		lines: lines,
		pins:  pins,
		sleep: time.Sleep,
		log:   logger.Noop(),
	}
	for _, opt := range opts {
		opt(d)
	}

	if err := d.init(); err != nil {
		return nil, errors.DriverFault("init", err)
	}
	d.log.Debug("display initialized (rs=%d e=%d d4..d7=%d,%d,%d,%d)",
		pins.RS, pins.E, pins.D4, pins.D5, pins.D6, pins.D7)
	return d, nil
}

// init forces the controller into 4-bit mode whatever state it powered up
// in: 8-bit, or 4-bit with half a byte latched.
func (d *Display) init() error {
	for _, o := range d.pins.Offsets() {
		if err := d.lines.Set(o, false); err != nil {
			return err
		}
	}

	d.sleep(PowerOnDelay)

	if err := d.lines.Set(d.pins.RS, false); err != nil {
		return err
	}

	wake := []struct {
		nibble byte
		wait   time.Duration
	}{
		{0x03, wakeDelay},
		{0x03, resetDelay},
		{0x03, resetDelay},
		{0x02, resetDelay},
	}
	for _, w := range wake {
		if err := d.write4(w.nibble); err != nil {
			return err
		}
		d.sleep(w.wait)
	}

	for _, c := range []byte{cmdFunctionSet, cmdDisplayOff, cmdClear} {
		if err := d.command(c); err != nil {
			return err
		}
	}
	d.sleep(ClearDelay)

	for _, c := range []byte{cmdEntryMode, cmdDisplayOn} {
		if err := d.command(c); err != nil {
			return err
		}
	}
	return nil
}

// write4 puts a nibble on D4..D7 (bit 0 on D4) and strobes E.
func (d *Display) write4(nibble byte) error {
	data := [4]int{d.pins.D4, d.pins.D5, d.pins.D6, d.pins.D7}
	for bit, o := range data {
		if err := d.lines.Set(o, nibble>>bit&1 == 1); err != nil {
			return err
		}
	}

	if err := d.lines.Set(d.pins.E, true); err != nil {
		return err
	}
	d.sleep(PulseWidth)
	if err := d.lines.Set(d.pins.E, false); err != nil {
		return err
	}

	d.sleep(SettleDelay)
	return nil
}

func (d *Display) send(rs bool, b byte) error {
	if err := d.lines.Set(d.pins.RS, rs); err != nil {
		return err
	}
	if err := d.write4(b >> 4 & 0x0F); err != nil {
		return err
	}
	return d.write4(b & 0x0F)
}

func (d *Display) command(c byte) error { return d.send(false, c) }
func (d *Display) data(b byte) error    { return d.send(true, b) }

// Clear blanks the display and homes the cursor.
func (d *Display) Clear() error {
	if err := d.command(cmdClear); err != nil {
		return errors.DriverFault("clear", err)
	}
	d.sleep(ClearDelay)
	return nil
}

// SetCursor moves the DDRAM address to row/col. Columns outside 0..15 are
// clamped; any row other than 0 addresses the second line.
func (d *Display) SetCursor(row, col int) error {
	if err := d.setCursor(row, col); err != nil {
		return errors.DriverFault("set cursor", err)
	}
	return nil
}

func (d *Display) setCursor(row, col int) error {
	if col < 0 {
		col = 0
	}
	if col > Cols-1 {
		col = Cols - 1
	}
	addr := row1Base + col
	if row == 0 {
		addr = row0Base + col
	}
	return d.command(cmdSetDDRAM | byte(addr))
}

// WriteString writes s at the current cursor position.
func (d *Display) WriteString(s string) error {
	for i := 0; i < len(s); i++ {
		if err := d.data(s[i]); err != nil {
			return errors.DriverFault("write", err)
		}
	}
	return nil
}

// WriteLines overwrites both rows in full. NUL bytes are sent as spaces so
// no stale cells survive. A failure leaves the display half updated.
func (d *Display) WriteLines(line1, line2 [Cols]byte) error {
	if err := d.writeRow(0, line1); err != nil {
		return errors.DriverFault("write", err)
	}
	if err := d.writeRow(1, line2); err != nil {
		return errors.DriverFault("write", err)
	}
	return nil
}

func (d *Display) writeRow(row int, line [Cols]byte) error {
	if err := d.setCursor(row, 0); err != nil {
		return err
	}
	for _, c := range line {
		if c == 0 {
			c = ' '
		}
		if err := d.data(c); err != nil {
			return err
		}
	}
	return nil
}

// Close releases the display's line group. It does not clear the screen.
func (d *Display) Close() error {
	return d.lines.Close()
}
