package ads1115

import (
	"time"

	"tinygo.org/x/drivers"

	"github.com/vietthu-ngo/driver-ads1115/errcode"
)

// Channel identifies one of the four single-ended inputs (AINn vs GND).
type Channel uint8

const (
	AIN0 Channel = iota
	AIN1
	AIN2
	AIN3
)

func (c Channel) Valid() bool { return c <= AIN3 }

func (c Channel) String() string {
	switch c {
	case AIN0:
		return "AIN0"
	case AIN1:
		return "AIN1"
	case AIN2:
		return "AIN2"
	case AIN3:
		return "AIN3"
	}
	return "AIN?"
}

// ConversionWaiter decides how the driver waits out one conversion period
// after the config write. The default is a fixed delay; a ready-pin or
// polling strategy can be substituted without touching the read sequence.
type ConversionWaiter interface {
	WaitConversion()
}

// FixedDelay blocks for a constant interval.
type FixedDelay time.Duration

func (f FixedDelay) WaitConversion() { time.Sleep(time.Duration(f)) }

// DefaultSettle comfortably exceeds one conversion period at 128 SPS (~7.8ms).
const DefaultSettle = 15 * time.Millisecond

// Config controls construction. All fields are optional.
type Config struct {
	// Address defaults to AddressDefault (0x48, ADDR strapped to GND).
	Address uint16
	// Waiter defaults to FixedDelay(DefaultSettle).
	Waiter ConversionWaiter
}

// Device represents an ADS1115 instance on an I2C bus.
type Device struct {
	i2c  drivers.I2C
	addr uint16
	wait ConversionWaiter

	// Fixed buffers to avoid per-call heap allocations.
	w [3]byte
	r [2]byte
}

// New constructs a Device with the supplied config. The I2C bus must already
// be configured; this function does not touch the device.
func New(bus drivers.I2C, cfg Config) *Device {
	addr := cfg.Address
	if addr == 0 {
		addr = AddressDefault
	}
	wait := cfg.Waiter
	if wait == nil {
		wait = FixedDelay(DefaultSettle)
	}
	return &Device{i2c: bus, addr: addr, wait: wait}
}

// ReadChannel runs one complete single-shot acquisition on ch and returns the
// signed 16-bit sample. The sequence is strict: config write, conversion
// wait, pointer select, result read. Any bus failure aborts the remaining
// steps and is returned as a transport error carrying the underlying cause.
// A negative sample is a valid result, never an error.
func (d *Device) ReadChannel(ch Channel) (int16, error) {
	if !ch.Valid() {
		return 0, &errcode.E{C: errcode.InvalidArgument, Op: "ads1115.read", Msg: "channel out of range"}
	}
	if err := d.writeWord(regConfig, buildConfig(ch)); err != nil {
		return 0, &errcode.E{C: errcode.Transport, Op: "ads1115.config", Msg: "config write failed", Err: err}
	}
	d.wait.WaitConversion()
	if err := d.selectRegister(regConversion); err != nil {
		return 0, &errcode.E{C: errcode.Transport, Op: "ads1115.select", Msg: "conversion register select failed", Err: err}
	}
	raw, err := d.readWord()
	if err != nil {
		return 0, &errcode.E{C: errcode.Transport, Op: "ads1115.result", Msg: "conversion read failed", Err: err}
	}
	return int16(raw), nil
}
