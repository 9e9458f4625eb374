package testlog

import (
	"testing"

	"github.com/rs/zerolog/log"

	"github.com/danmuck/craftctl/internal/observability"
)

func Start(t *testing.T) {
	t.Helper()
	observability.ConfigureTests()
	log.Debug().Str("test", t.Name()).Msg("test start")
}
