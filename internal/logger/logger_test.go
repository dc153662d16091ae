package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_JSONWithComponent(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	var buf bytes.Buffer
	Init(Config{Level: "debug", Format: "json", Writer: &buf})

	l := New("library")
	l.Debug().Str("album", "Trip").Msg("album created")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "library", entry["component"])
	assert.Equal(t, "Trip", entry["album"])
	assert.Equal(t, "debug", entry["level"])
	assert.Contains(t, entry, "time")
}

func TestInit_LevelFiltersAndDefaults(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	var buf bytes.Buffer
	Init(Config{Level: "warn", Format: "json", Writer: &buf})
	l := New("x")
	l.Info().Msg("hidden")
	assert.Zero(t, buf.Len())

	Init(Config{Level: "nonsense", Format: "json", Writer: &buf})
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}
