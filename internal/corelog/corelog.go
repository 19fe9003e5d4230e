// Package corelog wires a single shared github.com/op/go-logging backend for
// the whole module, the way frankkopp/FrankyGo's internal/logging package
// hands every subsystem package its own named *logging.Logger over one
// shared backend instead of each package configuring logging itself.
package corelog

import (
	"os"

	logging "github.com/op/go-logging"
)

var format = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{level:.4s} %{module}: %{message}`,
)

var backendInitialized = false

func ensureBackend() {
	if backendInitialized {
		return
	}
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(backend, format)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.WARNING, "")
	logging.SetBackend(leveled)
	backendInitialized = true
}

// Get returns the named logger (e.g. "corvid/position", "corvid/movegen"),
// configuring the shared backend on first use.
func Get(module string) *logging.Logger {
	ensureBackend()
	return logging.MustGetLogger(module)
}

// SetLevel adjusts the verbosity of every logger sharing the module's
// backend. The perft CLI driver exposes this behind a -verbose flag.
func SetLevel(level logging.Level) {
	ensureBackend()
	logging.SetLevel(level, "")
}
