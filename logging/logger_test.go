package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_ProductionIsJSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("production", &buf)

	log.Debug().Msg("hidden")
	log.Info().Str("prompt", "a cat").Msg("generating")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "generating", entry["message"])
	assert.Equal(t, "a cat", entry["prompt"])
	assert.Equal(t, "snap-gen", entry["service"])
	assert.NotContains(t, buf.String(), "hidden")
}

func TestNewWithWriter_DevelopmentLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("development", &buf)

	assert.Equal(t, zerolog.DebugLevel, log.GetLevel())
	log.Debug().Msg("visible")
	assert.Contains(t, buf.String(), "visible")
}
