// Package ads1115 provides a driver for the ADS1115 4-channel 16-bit
// delta-sigma ADC, exposing single-ended single-shot conversions:
//
//	dev := ads1115.New(bus, ads1115.Config{})
//	sample, err := dev.ReadChannel(ads1115.AIN0)
//
// The I2C bus handle is lent by the caller and never retained beyond one
// acquisition. Requests against one device must be serialized externally;
// the driver performs no locking.
package ads1115

const (
	// 7-bit I2C addresses selected by the ADDR pin strap.
	AddressDefault = 0x48 // ADDR -> GND
	AddressVDD     = 0x49
	AddressSDA     = 0x4A
	AddressSCL     = 0x4B

	// --- Register pointer values ---

	regConversion = 0x00 // R: latest conversion result
	regConfig     = 0x01 // R/W: OS/mux/PGA/mode/rate/comparator
	regLoThresh   = 0x02 // R/W: comparator low threshold
	regHiThresh   = 0x03 // R/W: comparator high threshold

	// --- Config register bitfields (16-bit) ---

	// Written 1: start a single conversion. Read 1: converter idle.
	cfgOSSingle = 0x8000

	cfgMuxOffset = 12 // input multiplexer, 3 bits
	cfgPGAOffset = 9  // programmable gain, 3 bits
	cfgDROffset  = 5  // data rate, 3 bits

	// Mux codes 0x4..0x7 route AIN0..AIN3 against GND (single-ended).
	muxAIN0GND = 0x4 << cfgMuxOffset
	muxAIN1GND = 0x5 << cfgMuxOffset
	muxAIN2GND = 0x6 << cfgMuxOffset
	muxAIN3GND = 0x7 << cfgMuxOffset

	// Full-scale ranges.
	pga6V144 = 0x0 << cfgPGAOffset
	pga4V096 = 0x1 << cfgPGAOffset
	pga2V048 = 0x2 << cfgPGAOffset
	pga1V024 = 0x3 << cfgPGAOffset

	cfgModeSingle = 0x0100 // single-shot / power-down

	// Sample rates.
	dr8SPS   = 0x0 << cfgDROffset
	dr64SPS  = 0x3 << cfgDROffset
	dr128SPS = 0x4 << cfgDROffset
	dr860SPS = 0x7 << cfgDROffset

	cfgCompDisable = 0x0003 // comparator queue off, ALERT/RDY high-Z
)

// configBase is the fixed portion of every conversion request: start single
// conversion, +/-4.096V range, single-shot mode, 128 SPS, comparator off.
const configBase uint16 = cfgOSSingle | pga4V096 | cfgModeSingle | dr128SPS | cfgCompDisable
