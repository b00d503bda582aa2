package weatherstation

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/go-errors/errors"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// Scenario is the fixed call sequence the driver replays against a station.
// The zero surface is deliberate: every key has a default and the defaults
// reproduce the original demo, so the program runs with no file, no flags
// and no environment.
type Scenario struct {
	Name        string
	Unit        string
	Readings    []float64
	DetachAfter int
}

var ErrNoReadings = errors.Errorf("scenario contains no readings")

func newScenarioViper(fs afero.Fs) *viper.Viper {
	v := viper.New()
	v.SetFs(fs)
	v.SetTypeByDefaultValue(true)

	v.SetDefault("station.name", "weather station")
	v.SetDefault("station.unit", DefaultUnit)
	v.SetDefault("readings", []float64{24, 29, 15, 21})
	v.SetDefault("detach.conditions_after", 3)

	return v
}

// LoadScenario reads the scenario from the given config files, merging later
// files over earlier ones. Missing or unreadable files are logged and
// skipped; with no readable file the built-in defaults apply.
func LoadScenario(l *slog.Logger, fs afero.Fs, configFiles ...string) (Scenario, error) {
	v := newScenarioViper(fs)

	loaded := []string{}
	for _, f := range configFiles {
		if _, err := fs.Stat(f); err != nil {
			continue
		}

		v.SetConfigFile(f)

		var err error
		if len(loaded) == 0 {
			err = v.ReadInConfig()
		} else {
			err = v.MergeInConfig()
		}
		if handleReadFileError(l, err) {
			loaded = append(loaded, f)
		}
	}

	if len(loaded) > 0 {
		l.Info("loaded scenario", "files", strings.Join(loaded, ";"))
	} else {
		l.Debug("no scenario file found, using default values")
	}

	return buildScenario(v)
}

func buildScenario(v *viper.Viper) (Scenario, error) {
	sc := Scenario{
		Name:        v.GetString("station.name"),
		Unit:        v.GetString("station.unit"),
		DetachAfter: v.GetInt("detach.conditions_after"),
	}

	if err := v.UnmarshalKey("readings", &sc.Readings); err != nil {
		return Scenario{}, errors.WrapPrefix(err, "failed to decode scenario readings", 0)
	}

	return sc, nil
}

// handleReadFileError reports whether the file was read. Missing files fall
// back to the default values; anything else is surfaced as a warning.
func handleReadFileError(l *slog.Logger, err error) bool {
	var pathError *os.PathError
	if errors.As(err, &pathError) {
		l.Warn("could not load scenario file. Using default values", "stacktrace", errors.Wrap(err, 0).ErrorStack())
		return false
	} else if err != nil {
		l.Warn(fmt.Sprintf("Could not read the scenario file (%s)", err), "stacktrace", errors.Wrap(err, 0).ErrorStack())
		return false
	}

	return true
}
