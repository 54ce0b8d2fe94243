package ads1115

// I2C 16-bit word operations in SMBus order (LOW then HIGH after the register
// byte). encodeWord/decodeWord map between that order and the device's
// big-endian registers.

func (d *Device) writeWord(reg byte, val uint16) error {
	enc := encodeWord(val)
	d.w[0] = reg
	d.w[1] = byte(enc)      // low
	d.w[2] = byte(enc >> 8) // high
	return d.i2c.Tx(d.addr, d.w[:3], nil)
}

// selectRegister points the device's internal register pointer at reg without
// transferring data.
func (d *Device) selectRegister(reg byte) error {
	d.w[0] = reg
	return d.i2c.Tx(d.addr, d.w[:1], nil)
}

// readWord reads the register the pointer currently selects.
func (d *Device) readWord() (uint16, error) {
	if err := d.i2c.Tx(d.addr, nil, d.r[:2]); err != nil {
		return 0, err
	}
	return decodeWord(uint16(d.r[0]) | uint16(d.r[1])<<8), nil
}
