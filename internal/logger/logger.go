package logger

import (
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

var (
	base zerolog.Logger
	sink io.Writer
)

// Init configures the global JSON logger.
//
// Environment variables (optional):
//   - LOG_LEVEL: debug|info|warn|error (default: info)
//   - LOG_PRETTY: true|false (default: false)
//   - LOG_FILE: path of a rotating log file; stdout when empty
//   - LOG_MAX_SIZE_MB: rotate after this many megabytes (default: 100)
//   - LOG_MAX_AGE_DAYS: delete rotated files older than this (default: 7)
func Init() {
	InitWithOutput(output(getenv("LOG_FILE", "")))
}

// InitWithOutput configures the global logger like Init but writes to w.
func InitWithOutput(w io.Writer) {
	level := parseLevel(getenv("LOG_LEVEL", "info"))
	pretty := strings.EqualFold(getenv("LOG_PRETTY", "false"), "true")

	zerolog.TimeFieldFormat = time.RFC3339Nano
	sink = w
	if pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: w != os.Stdout}
	}
	base = zerolog.New(w).With().Timestamp().Logger().Level(level)
}

// WritesTo reports whether the global logger's sink is w.
func WritesTo(w io.Writer) bool {
	return sink == w
}

// L returns the global logger. Call Init() once on startup.
func L() *zerolog.Logger {
	if base.GetLevel() == zerolog.NoLevel {
		Init()
	}
	return &base
}

// output picks the log sink: stdout, stderr, or a size/age rotated file.
func output(path string) io.Writer {
	switch strings.ToLower(path) {
	case "", "stdout":
		return os.Stdout
	case "stderr":
		return os.Stderr
	}
	return &lumberjack.Logger{
		Filename: path,
		MaxSize:  getenvInt("LOG_MAX_SIZE_MB", 100),
		MaxAge:   getenvInt("LOG_MAX_AGE_DAYS", 7),
		Compress: true,
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	n, err := strconv.Atoi(getenv(key, ""))
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error", "err":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
