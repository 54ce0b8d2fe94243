// services/hal/service.go
package hal

import (
	"sync"

	"tinygo.org/x/drivers"

	"github.com/vietthu-ngo/driver-ads1115/drivers/ads1115"
	"github.com/vietthu-ngo/driver-ads1115/errcode"
)

// Service owns the attach/detach lifecycle of one ADS1115 and dispatches
// channel read requests against it. Acquisitions are serialized here; the
// driver performs no locking of its own, and the transport handle never
// outlives the attach/detach cycle.
type Service struct {
	mu  sync.Mutex
	dev *ads1115.Device
}

func New() *Service { return &Service{} }

// Attach binds a transport and constructs the device against it. The bus is
// lent by the caller; Detach invalidates it. Attaching while a transport is
// already bound fails with busy.
func (s *Service) Attach(bus drivers.I2C, cfg ads1115.Config) error {
	if bus == nil {
		return &errcode.E{C: errcode.InvalidArgument, Op: "hal.attach", Msg: "nil bus"}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.dev != nil {
		return &errcode.E{C: errcode.Busy, Op: "hal.attach", Msg: "transport already attached"}
	}
	s.dev = ads1115.New(bus, cfg)
	return nil
}

// Detach drops the device and the lent transport handle. In-flight
// acquisitions complete first; later requests fail with not_ready.
func (s *Service) Detach() {
	s.mu.Lock()
	s.dev = nil
	s.mu.Unlock()
}

func (s *Service) Attached() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dev != nil
}

// ReadChannel acquires one sample from ch. An out-of-range selector and a
// missing transport are rejected before any bus traffic; everything else is
// the engine's result, passed through unchanged — including negative samples.
func (s *Service) ReadChannel(ch ads1115.Channel) (int16, error) {
	if !ch.Valid() {
		return 0, &errcode.E{C: errcode.InvalidArgument, Op: "hal.read", Msg: "channel out of range"}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.dev == nil {
		return 0, &errcode.E{C: errcode.NotReady, Op: "hal.read", Msg: "no transport attached"}
	}
	return s.dev.ReadChannel(ch)
}

// Capabilities lists the four single-ended voltage inputs.
func (s *Service) Capabilities() []CapInfo {
	caps := make([]CapInfo, 0, 4)
	for ch := ads1115.AIN0; ch <= ads1115.AIN3; ch++ {
		caps = append(caps, CapInfo{
			Kind:    "voltage",
			Channel: ch.String(),
			Info:    map[string]any{"unit": "V", "fsr_v": 4.096, "bits": 16, "driver": "ads1115"},
		})
	}
	return caps
}
