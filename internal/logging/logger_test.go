package logging

import (
	"bytes"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phishreport/phishreport/internal/config"
)

func TestNew(t *testing.T) {
	t.Run("json lines carry run id", func(t *testing.T) {
		var buf bytes.Buffer
		log := New(config.LogConfig{Level: "info", Format: "json"}, &buf)
		log.Info().Int("captures", 2).Msg("parsed capture log")

		var line map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "info", line["level"])
		assert.Equal(t, "parsed capture log", line["message"])
		assert.NotEmpty(t, line["run_id"])
		assert.EqualValues(t, 2, line["captures"])
	})

	t.Run("level filters", func(t *testing.T) {
		var buf bytes.Buffer
		log := New(config.LogConfig{Level: "warn", Format: "json"}, &buf)
		log.Info().Msg("hidden")
		assert.Empty(t, buf.String())

		log.Warn().Msg("shown")
		assert.Contains(t, buf.String(), "shown")
	})

	t.Run("console format", func(t *testing.T) {
		var buf bytes.Buffer
		log := New(config.LogConfig{Level: "debug", Format: "console"}, &buf)
		log.Debug().Msg("scanning")
		assert.Contains(t, buf.String(), "scanning")
		assert.Contains(t, buf.String(), "run_id=")
	})

	t.Run("unknown level falls back to warn", func(t *testing.T) {
		var buf bytes.Buffer
		log := New(config.LogConfig{Level: "loud", Format: "json"}, &buf)
		log.Info().Msg("hidden")
		assert.Empty(t, buf.String())
	})
}
