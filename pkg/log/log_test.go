package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{in: "debug", want: DebugLevel},
		{in: " INFO ", want: InfoLevel},
		{in: "Warn", want: WarnLevel},
		{in: "error", want: ErrorLevel},
		{in: "trace", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInitJSONWithFields(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: DebugLevel, JSONOutput: true, Output: &buf})
	t.Cleanup(func() { Init(Config{Level: InfoLevel, JSONOutput: true}) })

	logger := WithComponent("recipes")
	logger.Info().Str("author", "Alice").Msg("recipe created")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "recipes", entry["component"])
	assert.Equal(t, "Alice", entry["author"])
	assert.Equal(t, "recipe created", entry["message"])
	assert.Contains(t, entry, "time")
}

func TestInitLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: WarnLevel, JSONOutput: true, Output: &buf})
	t.Cleanup(func() { Init(Config{Level: InfoLevel, JSONOutput: true}) })

	Info("hidden")
	Debug("hidden")
	assert.Empty(t, buf.String())

	Errorf("store failed", errors.New("disk full"))
	assert.Contains(t, buf.String(), "disk full")
	assert.Contains(t, buf.String(), "store failed")
}

func TestWithEntityAndRequestID(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: InfoLevel, JSONOutput: true, Output: &buf})
	t.Cleanup(func() { Init(Config{Level: InfoLevel, JSONOutput: true}) })

	entityLogger := WithEntity("recipe", "r-1")
	entityLogger.Info().Msg("deleted")
	requestLogger := WithRequestID("req-42")
	requestLogger.Info().Msg("served")

	out := buf.String()
	assert.Contains(t, out, `"kind":"recipe"`)
	assert.Contains(t, out, `"id":"r-1"`)
	assert.Contains(t, out, `"request_id":"req-42"`)
}
