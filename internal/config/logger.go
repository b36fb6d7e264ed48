package config

import (
	"os"

	"github.com/op/go-logging"
)

const logFormat = `%{time:2006-01-02 15:04:05} %{level:.5s} %{module:-10s} %{message}`

// InitLogger routes every module logger to stderr at the given level.
// Unknown levels fall back to INFO.
func InitLogger(level string) {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(backend, logging.MustStringFormatter(logFormat))
	leveled := logging.AddModuleLevel(formatted)

	lvl, err := logging.LogLevel(level)
	if err != nil {
		lvl = logging.INFO
	}
	leveled.SetLevel(lvl, "")
	logging.SetBackend(leveled)
}
