package weatherstation_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phpboyscout/weatherstation"
)

func TestCurrentConditionsDisplay_Update(t *testing.T) {
	t.Parallel()

	t.Run("renders the latest temperature", func(t *testing.T) {
		t.Parallel()
		out := &bytes.Buffer{}
		d := weatherstation.NewCurrentConditionsDisplay(out, "°C")

		d.Update(24)

		assert.Equal(t, "CurrentConditionsDisplay: The current temperature is 24°C\n", out.String())
	})

	t.Run("renders each update on its own line", func(t *testing.T) {
		t.Parallel()
		out := &bytes.Buffer{}
		d := weatherstation.NewCurrentConditionsDisplay(out, "°C")

		d.Update(24)
		d.Update(-3.5)

		assert.Equal(t,
			"CurrentConditionsDisplay: The current temperature is 24°C\n"+
				"CurrentConditionsDisplay: The current temperature is -3.5°C\n",
			out.String())
	})

	t.Run("empty unit falls back to the default", func(t *testing.T) {
		t.Parallel()
		out := &bytes.Buffer{}
		d := weatherstation.NewCurrentConditionsDisplay(out, "")

		d.Update(24)

		assert.Contains(t, out.String(), "24"+weatherstation.DefaultUnit)
	})
}

func TestStatisticsDisplay_Update(t *testing.T) {
	t.Parallel()

	t.Run("tracks average, maximum and minimum", func(t *testing.T) {
		t.Parallel()
		out := &bytes.Buffer{}
		d := weatherstation.NewStatisticsDisplay(out, "°C")

		d.Update(24)
		d.Update(29)
		d.Update(15)

		assert.Equal(t,
			"StatisticsDisplay: Avg/Max/Min temperatures = 24.0/24/24°C\n"+
				"StatisticsDisplay: Avg/Max/Min temperatures = 26.5/29/24°C\n"+
				"StatisticsDisplay: Avg/Max/Min temperatures = 22.7/29/15°C\n",
			out.String())
	})

	t.Run("single reading is its own average, maximum and minimum", func(t *testing.T) {
		t.Parallel()
		out := &bytes.Buffer{}
		d := weatherstation.NewStatisticsDisplay(out, "°C")

		d.Update(21)

		assert.Equal(t, "StatisticsDisplay: Avg/Max/Min temperatures = 21.0/21/21°C\n", out.String())
	})
}
