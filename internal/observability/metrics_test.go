package observability

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestRegisterMetricsIsIdempotent(t *testing.T) {
	// A second registration must not panic on duplicate collectors.
	RegisterMetrics()
	RegisterMetrics()
}

func TestRecordersDoNotPanic(t *testing.T) {
	RecordConnectionOpened()
	RecordConnectionClosed()
	RecordFrame("status")
	RecordProtocolError()
	RecordBytesRead(128)
	RecordHTTPRequest("GET", "/health", 200, 5*time.Millisecond)
}

func TestLevelFromEnv(t *testing.T) {
	t.Setenv(EnvLogLevel, "debug")
	if got := levelFromEnv(zerolog.InfoLevel); got != zerolog.DebugLevel {
		t.Fatalf("level: %v", got)
	}
	t.Setenv(EnvLogLevel, "nonsense")
	if got := levelFromEnv(zerolog.InfoLevel); got != zerolog.InfoLevel {
		t.Fatalf("fallback level: %v", got)
	}
}
