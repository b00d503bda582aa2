package weatherstation

import (
	"fmt"
	"io"
	"os"
)

// DefaultUnit is the suffix appended to rendered temperatures when a
// scenario does not override it.
const DefaultUnit = "°C"

// CurrentConditionsDisplay renders the latest temperature as a single line.
type CurrentConditionsDisplay struct {
	out  io.Writer
	unit string
}

// NewCurrentConditionsDisplay writes to out, or os.Stdout when out is nil.
func NewCurrentConditionsDisplay(out io.Writer, unit string) *CurrentConditionsDisplay {
	if out == nil {
		out = os.Stdout
	}
	if unit == "" {
		unit = DefaultUnit
	}
	return &CurrentConditionsDisplay{out: out, unit: unit}
}

func (d *CurrentConditionsDisplay) Update(temperature float64) {
	fmt.Fprintf(d.out, "CurrentConditionsDisplay: The current temperature is %g%s\n", temperature, d.unit)
}

// StatisticsDisplay keeps every reading it has received and renders running
// average, maximum and minimum temperatures on each update. The history is
// private to the display; the station itself stores only the latest value.
type StatisticsDisplay struct {
	out          io.Writer
	unit         string
	temperatures []float64
}

// NewStatisticsDisplay writes to out, or os.Stdout when out is nil.
func NewStatisticsDisplay(out io.Writer, unit string) *StatisticsDisplay {
	if out == nil {
		out = os.Stdout
	}
	if unit == "" {
		unit = DefaultUnit
	}
	return &StatisticsDisplay{out: out, unit: unit}
}

func (d *StatisticsDisplay) Update(temperature float64) {
	d.temperatures = append(d.temperatures, temperature)

	sum := 0.0
	max := d.temperatures[0]
	min := d.temperatures[0]
	for _, t := range d.temperatures {
		sum += t
		if t > max {
			max = t
		}
		if t < min {
			min = t
		}
	}
	avg := sum / float64(len(d.temperatures))

	fmt.Fprintf(d.out, "StatisticsDisplay: Avg/Max/Min temperatures = %.1f/%g/%g%s\n", avg, max, min, d.unit)
}
