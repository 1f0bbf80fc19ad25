package logger_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlinalg/logger"
)

// TestSet_InstallsCustomLogger verifies that a logger installed via Set is the
// one handed back by Logger and that its events reach the chosen writer.
func TestSet_InstallsCustomLogger(t *testing.T) {
	var buf bytes.Buffer
	logger.Set(zerolog.New(&buf))

	log := logger.Logger()
	log.Info().Str("stage", "setup").Msg("hello")

	require.NotEmpty(t, buf.String(), "expected the event to reach the buffer")
	assert.Contains(t, buf.String(), `"stage":"setup"`, "structured field should survive")
	assert.Contains(t, buf.String(), "hello", "message should survive")
}

// TestSetOutput_Redirects checks that SetOutput swaps the writer while keeping
// the logger usable.
func TestSetOutput_Redirects(t *testing.T) {
	var first, second bytes.Buffer
	logger.Set(zerolog.New(&first))
	logger.SetOutput(&second)

	log := logger.Logger()
	log.Info().Msg("redirected")

	assert.Empty(t, first.String(), "old writer must see nothing after redirect")
	assert.Contains(t, second.String(), "redirected", "new writer must receive events")
}

// TestDisable_SilencesEverything confirms Disable yields a no-op logger.
func TestDisable_SilencesEverything(t *testing.T) {
	var buf bytes.Buffer
	logger.Set(zerolog.New(&buf))
	logger.Disable()

	log := logger.Logger()
	log.Error().Msg("should vanish")

	assert.Empty(t, buf.String(), "disabled logger must not write")
}
