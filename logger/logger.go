// Package logger provides centralized logging for the application.
// File: logger/logger.go
package logger

import (
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// ------------------- global loggers -------------------

// four logger levels accessible throughout the application
var (
	Info  *log.Logger
	Warn  *log.Logger
	Error *log.Logger
	Debug *log.Logger
)

// Options controls where log output goes.
type Options struct {
	// Dir, when set, receives a timestamped log file in addition to stderr.
	Dir string
	// Env "production" discards debug output.
	Env string
}

// ------------------- logger initialization -------------------

// InitLogger creates or reinitializes the logging system. It:
// - Builds a tint slog handler on stderr (coloured only on a terminal).
// - Optionally creates a timestamped log file in opts.Dir and tees into it.
// - Exposes Info, Warn, Error and Debug as *log.Logger views over that handler.
func InitLogger(opts Options) error {
	var out io.Writer = os.Stderr
	noColor := !isatty.IsTerminal(os.Stderr.Fd())

	if opts.Dir != "" {
		if err := os.MkdirAll(opts.Dir, 0700); err != nil {
			return err
		}
		logFileName := filepath.Join(opts.Dir, time.Now().Format("2006-01-02_15-04-05")+".log")
		file, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600) // #nosec
		if err != nil {
			return err
		}
		out = io.MultiWriter(os.Stderr, file)
		noColor = true
	}

	handler := tint.NewHandler(out, &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: time.RFC1123Z,
		NoColor:    noColor,
	})
	install(handler)
	SetLogLevel(opts.Env)
	return nil
}

// SetLogLevel discards Debug output in production and keeps it elsewhere.
func SetLogLevel(env string) {
	if env == "production" {
		Debug.SetOutput(io.Discard)
	}
}

// Discard silences every logger. Tests use it to keep output quiet.
func Discard() {
	install(slog.NewTextHandler(io.Discard, nil))
}

func install(h slog.Handler) {
	slog.SetDefault(slog.New(h))
	Info = slog.NewLogLogger(h, slog.LevelInfo)
	Warn = slog.NewLogLogger(h, slog.LevelWarn)
	Error = slog.NewLogLogger(h, slog.LevelError)
	Debug = slog.NewLogLogger(h, slog.LevelDebug)
}

// init gives every package working loggers before main configures them.
func init() {
	install(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: time.RFC1123Z,
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	}))
}
