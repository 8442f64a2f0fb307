// Package logger wraps zerolog with the constructors and context helpers
// used throughout the mess manager. Application code passes *Logger by
// pointer and obtains request-scoped loggers via FromContext or
// FromRequest.
package logger

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger embeds zerolog.Logger, exposing the full zerolog API while
// leaving room for application helpers.
type Logger struct {
	zerolog.Logger
}

// clientLogFile is where the TUI binary writes its log; the terminal
// itself belongs to the UI.
const clientLogFile = "mess-client.log"

// NewLogger constructs the server logger: JSON to stdout, debug level,
// every entry tagged with the role label, a timestamp and the emitting
// function name under "func".
func NewLogger(role string) *Logger {
	return &Logger{newZerolog(os.Stdout, role)}
}

// NewClientLogger constructs the client logger. Output goes to a log file
// next to the executable so it never fights the TUI for the terminal;
// stdout is the fallback when the file cannot be opened.
func NewClientLogger(role string) *Logger {
	execPath, _ := os.Executable()
	logPath := filepath.Join(filepath.Dir(execPath), clientLogFile)

	out, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return &Logger{newZerolog(os.Stdout, role)}
	}
	return &Logger{newZerolog(out, role)}
}

func newZerolog(out *os.File, role string) zerolog.Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}

	return zerolog.New(out).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()
}

// Nop returns a *Logger that discards everything. For tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger inheriting all fields of the
// receiver; the child can be enriched without touching the parent.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest returns the request-scoped logger attached to r's context,
// or zerolog's global logger when none was attached.
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}

// FromContext returns the logger attached to ctx by zerolog's WithContext,
// or zerolog's global logger when none was attached. Never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
