package system

import (
	"io"
	"os"

	"github.com/adrg/xdg"
	clog "github.com/charmbracelet/log"
)

// Logger is the shared application logger for CLI output.
// It prints to stderr with timestamps enabled, and mirrors everything into a
// log file under the XDG state directory so failed runs can be inspected
// after the terminal is gone.
var Logger = clog.NewWithOptions(logWriter(), clog.Options{
	ReportTimestamp: true,
})

func logWriter() io.Writer {
	path, err := xdg.StateFile("devup/devup.log")
	if err != nil {
		return os.Stderr
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return os.Stderr
	}
	return io.MultiWriter(os.Stderr, f)
}
