package main

import (
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	"github.com/phpboyscout/weatherstation"
)

func main() {
	logger := slog.New(log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "weatherstation",
	}))

	sc, err := weatherstation.LoadScenario(logger, afero.NewOsFs(), "scenario.yml")
	if err != nil {
		logger.Error("invalid scenario", "error", err)
		os.Exit(1)
	}

	if err := weatherstation.Run(logger, sc, os.Stdout); err != nil {
		logger.Error("demo failed", "error", err)
		os.Exit(1)
	}
}
