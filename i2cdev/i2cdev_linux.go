//go:build linux

// Package i2cdev accesses I2C adapters through the Linux /dev/i2c-N character
// devices. Transfers use the I2C_RDWR ioctl so a write followed by a read is
// one combined transaction with a repeated start, as register reads require.
//
// Bus satisfies the Tx shape the driver consumes. A Bus is not safe for
// concurrent transfers; serialize at a higher level.
package i2cdev

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unsafe"

	"golang.org/x/sys/unix"

	"tinygo.org/x/drivers"
)

// Compile-time check.
var _ drivers.I2C = (*Bus)(nil)

const (
	i2cMRd  = 0x0001 // read flag in i2c_msg.flags
	i2cRdwr = 0x0707 // I2C_RDWR ioctl request
)

// Mirrors struct i2c_msg from the kernel uapi.
type i2cMsg struct {
	addr  uint16
	flags uint16
	len   uint16
	buf   uintptr
}

// Mirrors struct i2c_rdwr_ioctl_data.
type rdwrData struct {
	msgs  uintptr
	nmsgs uint32
}

// Bus is an opened I2C adapter.
type Bus struct {
	f    *os.File
	path string
}

// Open opens an I2C adapter device, e.g. "/dev/i2c-1".
func Open(path string) (*Bus, error) {
	path = filepath.Clean(path)
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}
	return &Bus{f: f, path: path}, nil
}

func (b *Bus) Close() error {
	if b == nil || b.f == nil {
		return nil
	}
	err := b.f.Close()
	b.f = nil
	return err
}

func (b *Bus) String() string { return b.path }

// Tx writes w then reads into r at the 7-bit address addr, in one combined
// transaction. Either slice may be empty.
func (b *Bus) Tx(addr uint16, w, r []byte) error {
	if addr == 0 || addr > 0x7F {
		return fmt.Errorf("i2cdev: invalid address %#02x", addr)
	}
	if b == nil || b.f == nil {
		return errors.New("i2cdev: bus is closed")
	}
	msgs := make([]i2cMsg, 0, 2)
	if len(w) > 0 {
		msgs = append(msgs, i2cMsg{addr: addr, len: uint16(len(w)), buf: uintptr(unsafe.Pointer(&w[0]))})
	}
	if len(r) > 0 {
		msgs = append(msgs, i2cMsg{addr: addr, flags: i2cMRd, len: uint16(len(r)), buf: uintptr(unsafe.Pointer(&r[0]))})
	}
	if len(msgs) == 0 {
		return nil
	}
	data := rdwrData{msgs: uintptr(unsafe.Pointer(&msgs[0])), nmsgs: uint32(len(msgs))}
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, b.f.Fd(), uintptr(i2cRdwr), uintptr(unsafe.Pointer(&data)))
	if errno != 0 {
		return errno
	}
	return nil
}
