package weatherstation

import (
	"log/slog"
)

// Station holds the current temperature reading and an ordered registry of
// observers. It is the subject side of the observer pairing: every call to
// SetMeasurement stores the value and fans it out to each attached observer,
// synchronously and in attachment order.
//
// A Station is not safe for concurrent use; the demo runs a single goroutine
// and the contract is fully synchronous delivery.
type Station struct {
	name        string
	logger      *slog.Logger
	temperature float64
	observers   []Observer
}

// NewStation initialises a station with no observers and a zero temperature.
func NewStation(logger *slog.Logger, name string) *Station {
	return &Station{
		name:      name,
		logger:    logger,
		observers: make([]Observer, 0),
	}
}

// Attach appends an observer to the registry. Attachment order is delivery
// order. Duplicates are permitted and receive one notification per
// attachment.
func (s *Station) Attach(o Observer) {
	s.observers = append(s.observers, o)
	s.logger.Info("new observer added", "station", s.name, "observers", len(s.observers))
}

// AttachFunc attaches a bare function as an observer and returns the handle
// under which it was registered, so it can later be detached.
func (s *Station) AttachFunc(f func(temperature float64)) Observer {
	o := &observerFunc{f}
	s.Attach(o)
	return o
}

// Detach removes the first matching observer from the registry. Detaching an
// observer that was never attached is a no-op.
func (s *Station) Detach(o Observer) {
	for i, attached := range s.observers {
		if attached == o {
			s.observers = append(s.observers[:i], s.observers[i+1:]...)
			s.logger.Info("observer removed", "station", s.name, "observers", len(s.observers))
			return
		}
	}
}

// SetMeasurement stores the new temperature unconditionally and notifies
// every attached observer in attachment order. The fan-out is a direct
// nested call; it completes before SetMeasurement returns.
func (s *Station) SetMeasurement(temperature float64) {
	s.temperature = temperature
	s.logger.Info("temperature changed", "station", s.name, "temperature", temperature)

	for _, o := range s.observers {
		o.Update(temperature)
	}
}

// Temperature returns the most recently stored reading.
func (s *Station) Temperature() float64 {
	return s.temperature
}

// Observers retrieves all currently attached observers.
func (s *Station) Observers() []Observer {
	return s.observers
}
