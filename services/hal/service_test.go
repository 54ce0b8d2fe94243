// services/hal/service_test.go
package hal

import (
	"testing"

	"tinygo.org/x/drivers"

	"github.com/vietthu-ngo/driver-ads1115/drivers/ads1115"
	"github.com/vietthu-ngo/driver-ads1115/errcode"
)

// Compile-time check.
var _ drivers.I2C = (*fakeADS)(nil)

// fakeADS answers the driver's three transfer shapes and counts them.
type fakeADS struct {
	ops  int
	conv uint16 // conversion register, device order
}

func (f *fakeADS) Tx(addr uint16, w, r []byte) error {
	f.ops++
	if len(w) == 0 && len(r) == 2 {
		r[0] = byte(f.conv >> 8)
		r[1] = byte(f.conv)
	}
	return nil
}

func noWait() ads1115.Config {
	return ads1115.Config{Waiter: ads1115.FixedDelay(0)}
}

func TestReadBeforeAttach(t *testing.T) {
	s := New()
	_, err := s.ReadChannel(ads1115.AIN0)
	if errcode.Of(err) != errcode.NotReady {
		t.Fatalf("error = %v, want %v", err, errcode.NotReady)
	}
}

func TestAttachReadDetach(t *testing.T) {
	bus := &fakeADS{conv: 0x1F40}
	s := New()
	if err := s.Attach(bus, noWait()); err != nil {
		t.Fatalf("attach: %v", err)
	}
	if !s.Attached() {
		t.Fatal("Attached() = false after attach")
	}

	sample, err := s.ReadChannel(ads1115.AIN2)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if sample != 8000 {
		t.Fatalf("sample = %d, want 8000", sample)
	}

	s.Detach()
	if s.Attached() {
		t.Fatal("Attached() = true after detach")
	}
	if _, err := s.ReadChannel(ads1115.AIN2); errcode.Of(err) != errcode.NotReady {
		t.Fatalf("post-detach error = %v, want %v", err, errcode.NotReady)
	}
}

func TestAttachTwiceIsBusy(t *testing.T) {
	s := New()
	if err := s.Attach(&fakeADS{}, noWait()); err != nil {
		t.Fatalf("attach: %v", err)
	}
	if err := s.Attach(&fakeADS{}, noWait()); errcode.Of(err) != errcode.Busy {
		t.Fatalf("second attach error = %v, want %v", err, errcode.Busy)
	}
}

func TestAttachNilBus(t *testing.T) {
	s := New()
	if err := s.Attach(nil, noWait()); errcode.Of(err) != errcode.InvalidArgument {
		t.Fatalf("error = %v, want %v", err, errcode.InvalidArgument)
	}
}

func TestInvalidSelectorIssuesNoBusTraffic(t *testing.T) {
	bus := &fakeADS{}
	s := New()
	if err := s.Attach(bus, noWait()); err != nil {
		t.Fatalf("attach: %v", err)
	}
	if _, err := s.ReadChannel(ads1115.Channel(4)); errcode.Of(err) != errcode.InvalidArgument {
		t.Fatalf("error = %v, want %v", err, errcode.InvalidArgument)
	}
	if bus.ops != 0 {
		t.Errorf("bus touched %d times for invalid selector", bus.ops)
	}
}

func TestNegativeSamplePassesThrough(t *testing.T) {
	bus := &fakeADS{conv: 0xFFFF}
	s := New()
	if err := s.Attach(bus, noWait()); err != nil {
		t.Fatalf("attach: %v", err)
	}
	sample, err := s.ReadChannel(ads1115.AIN0)
	if err != nil {
		t.Fatalf("negative sample classified as error: %v", err)
	}
	if sample != -1 {
		t.Fatalf("sample = %d, want -1", sample)
	}
}

func TestCapabilities(t *testing.T) {
	caps := New().Capabilities()
	if len(caps) != 4 {
		t.Fatalf("capabilities = %d, want 4", len(caps))
	}
	for i, c := range caps {
		if c.Kind != "voltage" {
			t.Errorf("cap %d kind = %q", i, c.Kind)
		}
		want := ads1115.Channel(i).String()
		if c.Channel != want {
			t.Errorf("cap %d channel = %q, want %q", i, c.Channel, want)
		}
	}
}
