package ads1115

// Word byte-order codec. The host exchanges 16-bit words with the device in
// SMBus word order (low byte first after the register byte), while the
// device's registers are big-endian on the wire. Every word crossing the bus
// passes through this swap; skipping it transposes the bytes of every sample.

func encodeWord(v uint16) uint16 { return v<<8 | v>>8 }
func decodeWord(v uint16) uint16 { return v<<8 | v>>8 }

// buildConfig returns the config word that starts a single-shot conversion on
// ch: the fixed base plus the mux field routing AINch against GND.
// ch must already be validated.
func buildConfig(ch Channel) uint16 {
	return configBase | muxSingle(ch)
}

// muxSingle maps a channel to its single-ended mux field, codes 0x4..0x7.
func muxSingle(ch Channel) uint16 {
	return (4 + uint16(ch)) << cfgMuxOffset
}

// Unit conversions at the fixed +/-4.096V full-scale range over the signed
// 16-bit span. One LSB is 125 microvolts.

// Microvolts returns the sample in microvolts, exact fixed-point.
func Microvolts(sample int16) int32 { return int32(sample) * 125 }

// Volts returns the sample in volts. Prefer Microvolts for fixed-point.
func Volts(sample int16) float64 { return float64(sample) * 4.096 / 32768.0 }
