// Package hostlog builds the zerolog logger used for incidental diagnostics.
//
// Under wasip1 log lines go to the host's console_log(ptr, len) import, under
// js/wasm to console.log, and to stderr elsewhere. Nothing written here is part
// of the data contract.
package hostlog

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// LevelFromEnv reads LOG_LEVEL (debug, info, warn, error). Anything else is info.
func LevelFromEnv() zerolog.Level {
	switch os.Getenv("LOG_LEVEL") {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Init configures zerolog's process-wide settings. Entry points call it once
// before serving the host.
func Init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
	zerolog.SetGlobalLevel(LevelFromEnv())
}

// New returns a logger writing to the platform sink at the LOG_LEVEL level.
func New() zerolog.Logger {
	return NewWithWriter(Sink(), LevelFromEnv())
}

// NewWithWriter returns a timestamped logger writing JSON lines to w.
func NewWithWriter(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

func trimNewline(p []byte) []byte {
	if n := len(p); n > 0 && p[n-1] == '\n' {
		return p[:n-1]
	}
	return p
}
