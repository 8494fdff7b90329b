package systems

import (
	"os"

	"github.com/charmbracelet/log"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "crygeen",
})

// Logger returns the shared game logger.
func Logger() *log.Logger {
	return logger
}

// SetVerbose switches debug logging on or off.
func SetVerbose(v bool) {
	if v {
		logger.SetLevel(log.DebugLevel)
		return
	}
	logger.SetLevel(log.InfoLevel)
}
