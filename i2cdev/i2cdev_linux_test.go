//go:build linux

package i2cdev

import "testing"

func TestOpenMissingDevice(t *testing.T) {
	if _, err := Open("/dev/i2c-does-not-exist"); err == nil {
		t.Fatal("expected error opening nonexistent adapter")
	}
}

func TestTxOnClosedBus(t *testing.T) {
	b := &Bus{}
	if err := b.Tx(0x48, []byte{0x01}, nil); err == nil {
		t.Fatal("expected error on closed bus")
	}
}

func TestTxInvalidAddress(t *testing.T) {
	// Address validation happens before any fd use.
	b := &Bus{}
	for _, addr := range []uint16{0x00, 0x80, 0x3FF} {
		if err := b.Tx(addr, []byte{0x01}, nil); err == nil {
			t.Errorf("addr %#02x: expected error", addr)
		}
	}
}
