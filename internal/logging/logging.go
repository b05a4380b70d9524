package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// VerboseEnv enables the diagnostic file log when set to any non-empty value.
const VerboseEnv = "HOVER_CLI_VERBOSE"

const logFileName = "hover-cli.log"

var (
	// Logger is a no-op until Init enables diagnostics.
	Logger  = zerolog.Nop()
	logFile *os.File
)

// Init opens the append-only log file when diagnostics are enabled, either
// explicitly or via the environment. The log is a side channel only:
// detection behaves identically with it disabled.
func Init(verbose bool) error {
	if !verbose && os.Getenv(VerboseEnv) == "" {
		return nil
	}
	f, err := os.OpenFile(logFileName, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	logFile = f

	zerolog.TimeFieldFormat = time.RFC3339
	Logger = zerolog.New(f).With().Timestamp().Logger().Level(zerolog.DebugLevel)
	return nil
}

// Close closes the log file.
func Close() {
	if logFile != nil {
		logFile.Close()
	}
}

// Debug returns a debug level event.
func Debug() *zerolog.Event { return Logger.Debug() }

// Info returns an info level event.
func Info() *zerolog.Event { return Logger.Info() }

// Warn returns a warn level event.
func Warn() *zerolog.Event { return Logger.Warn() }

// Error returns an error level event.
func Error() *zerolog.Event { return Logger.Error() }
