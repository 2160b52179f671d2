package config

import (
	"os"

	golog "github.com/tochemey/goakt/v3/log"
)

// NewLogger returns the goakt logger used by the binaries and the actor system.
func NewLogger(debug bool) golog.Logger {
	if debug {
		return golog.New(golog.DebugLevel, os.Stdout)
	}
	return golog.DefaultLogger
}
