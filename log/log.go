// Package log provides the global structured logger used across the module.
// It is a thin wrapper around zerolog with printf-style and key-value
// variants for each level.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"
)

const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
	LogLevelFatal = "fatal"
)

// logTestWriterName is a reserved output name that makes Init use
// logTestWriter, so tests and benchmarks can redirect the output.
const logTestWriterName = "stdout_test"

var logTestWriter io.Writer = os.Stdout

var (
	log   zerolog.Logger
	level string

	// panicOnInvalidChars makes the formatted helpers panic when the message
	// contains invalid UTF-8, to catch raw bytes logged via %s.
	panicOnInvalidChars = os.Getenv("LOG_PANIC_ON_INVALIDCHARS") == "true"
)

func init() {
	// Allow the package to be used before Init is called.
	Init(LogLevelInfo, "stderr", nil)
}

// Init initializes the global logger with the given level and output.
// Output may be "stdout", "stderr" or a file path. If errorOutput is not
// nil, error and fatal messages are duplicated to it as JSON lines.
func Init(logLevel, output string, errorOutput io.Writer) {
	var out io.Writer
	switch output {
	case "stdout":
		out = os.Stdout
	case "stderr":
		out = os.Stderr
	case logTestWriterName:
		out = logTestWriter
	default:
		f, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			panic(fmt.Sprintf("cannot create log output: %v", err))
		}
		out = f
	}
	var writer io.Writer = zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
	}
	if errorOutput != nil {
		writer = zerolog.MultiLevelWriter(writer, errorLevelWriter{errorOutput})
	}
	log = zerolog.New(writer).With().Timestamp().Logger().Level(parseLevel(logLevel))
	level = logLevel
}

// errorLevelWriter forwards only error-or-worse events to the wrapped writer.
type errorLevelWriter struct {
	io.Writer
}

func (w errorLevelWriter) WriteLevel(l zerolog.Level, p []byte) (int, error) {
	if l < zerolog.ErrorLevel {
		return len(p), nil
	}
	return w.Write(p)
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case LogLevelDebug:
		return zerolog.DebugLevel
	case LogLevelInfo:
		return zerolog.InfoLevel
	case LogLevelWarn:
		return zerolog.WarnLevel
	case LogLevelError:
		return zerolog.ErrorLevel
	case LogLevelFatal:
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}

// Level returns the level the logger was initialized with.
func Level() string { return level }

// Logger returns the underlying zerolog logger.
func Logger() *zerolog.Logger { return &log }

func checkInvalidChars(msg string) {
	if panicOnInvalidChars && !utf8.ValidString(msg) {
		panic(fmt.Sprintf("log message contains invalid UTF-8: %q", msg))
	}
}

func send(ev *zerolog.Event, args ...any) {
	msg := fmt.Sprint(args...)
	checkInvalidChars(msg)
	ev.Msg(msg)
}

func sendf(ev *zerolog.Event, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	checkInvalidChars(msg)
	ev.Msg(msg)
}

func sendw(ev *zerolog.Event, msg string, keysAndValues ...any) {
	checkInvalidChars(msg)
	ev.Fields(keysAndValues).Msg(msg)
}

func Debug(args ...any) { send(log.Debug(), args...) }
func Info(args ...any)  { send(log.Info(), args...) }
func Warn(args ...any)  { send(log.Warn(), args...) }
func Error(args ...any) { send(log.Error(), args...) }

func Debugf(format string, args ...any) { sendf(log.Debug(), format, args...) }
func Infof(format string, args ...any)  { sendf(log.Info(), format, args...) }
func Warnf(format string, args ...any)  { sendf(log.Warn(), format, args...) }
func Errorf(format string, args ...any) { sendf(log.Error(), format, args...) }

func Debugw(msg string, keysAndValues ...any) { sendw(log.Debug(), msg, keysAndValues...) }
func Infow(msg string, keysAndValues ...any)  { sendw(log.Info(), msg, keysAndValues...) }
func Warnw(msg string, keysAndValues ...any)  { sendw(log.Warn(), msg, keysAndValues...) }

// Errorw logs an error with an explanatory message.
func Errorw(err error, msg string) {
	checkInvalidChars(msg)
	log.Error().Err(err).Msg(msg)
}

// Fatal logs the arguments at fatal level and exits.
func Fatal(args ...any) { send(log.Fatal(), args...) }

// Fatalf logs the formatted message at fatal level and exits.
func Fatalf(format string, args ...any) { sendf(log.Fatal(), format, args...) }
