// Package logging installs the charmbracelet handler behind log/slog so the
// library packages keep logging through the standard slog API.
package logging

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/log"

	"github.com/KostasZigo/gogit-odb/internal/constants"
)

// Setup resolves the level and makes a charmbracelet logger writing to w the
// slog default. Timestamps are only shown at debug level.
func Setup(w io.Writer, flagValue, envValue string) error {
	level, err := ResolveLevel(flagValue, envValue)
	if err != nil {
		return err
	}

	handler := log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          "gogit",
		ReportTimestamp: level == log.DebugLevel,
	})
	slog.SetDefault(slog.New(handler))
	return nil
}

// ResolveLevel picks the flag value, then the environment, then the default.
func ResolveLevel(flagValue, envValue string) (log.Level, error) {
	name := constants.DefaultLogLevel
	switch {
	case flagValue != "":
		name = flagValue
	case envValue != "":
		name = envValue
	}

	level, err := log.ParseLevel(name)
	if err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return level, nil
}
