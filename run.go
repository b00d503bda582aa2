package weatherstation

import (
	"io"
	"log/slog"
)

// Run wires up the demo: one station, a current-conditions display and a
// statistics display, then replays the scenario's readings in order. When
// DetachAfter is positive the current-conditions display is removed once
// that many readings have been delivered, so the remaining readings reach
// the statistics display alone.
//
// Rendered lines go to out; diagnostics go to the logger.
func Run(l *slog.Logger, sc Scenario, out io.Writer) error {
	if len(sc.Readings) == 0 {
		return ErrNoReadings
	}

	station := NewStation(l, sc.Name)
	conditions := NewCurrentConditionsDisplay(out, sc.Unit)
	statistics := NewStatisticsDisplay(out, sc.Unit)

	station.Attach(conditions)
	station.Attach(statistics)

	for i, reading := range sc.Readings {
		if sc.DetachAfter > 0 && i == sc.DetachAfter {
			station.Detach(conditions)
		}
		station.SetMeasurement(reading)
	}

	return nil
}
