package observability

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	EnvLogLevel   = "CRAFTCTL_LOG_LEVEL"
	EnvLogNoColor = "CRAFTCTL_LOG_NOCOLOR"
)

// InitLogger installs the process-wide console logger. Level and color
// are overridable through the environment.
func InitLogger(app string) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
		NoColor:    boolFromEnv(EnvLogNoColor),
	}
	level := levelFromEnv(zerolog.InfoLevel)
	logger := zerolog.New(output).Level(level).With().Timestamp().Str("app", app).Logger()
	log.Logger = logger
	return logger
}

// ConfigureTests installs a quiet logger for test runs; the env level
// override still applies so failures can be rerun verbosely.
func ConfigureTests() {
	level := levelFromEnv(zerolog.WarnLevel)
	output := zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true}
	log.Logger = zerolog.New(output).Level(level)
}

func levelFromEnv(fallback zerolog.Level) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(EnvLogLevel))) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off", "none":
		return zerolog.Disabled
	default:
		return fallback
	}
}

func boolFromEnv(key string) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false
	}
	return v
}
