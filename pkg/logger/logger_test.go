package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) entry {
	t.Helper()
	var e entry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &e))
	return e
}

func TestLogger_WritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(InfoLevel, &buf)

	log.Info("hello", F("key", "value"))

	e := decodeEntry(t, &buf)
	assert.Equal(t, "INFO", e.Level)
	assert.Equal(t, "hello", e.Message)
	assert.Equal(t, "value", e.Fields["key"])
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(WarnLevel, &buf)

	log.Debug("dropped")
	log.Info("dropped too")
	assert.Zero(t, buf.Len())

	log.Warn("kept")
	assert.NotZero(t, buf.Len())
}

func TestLogger_WithFields(t *testing.T) {
	var buf bytes.Buffer
	log := New(InfoLevel, &buf).WithFields(F("service", "tunewave"))

	log.Info("message")

	e := decodeEntry(t, &buf)
	assert.Equal(t, "tunewave", e.Fields["service"])
}

func TestLogger_WithContextRequestID(t *testing.T) {
	var buf bytes.Buffer
	log := New(InfoLevel, &buf)

	ctx := WithRequestID(context.Background(), "req-123")
	log.WithContext(ctx).Info("message")

	e := decodeEntry(t, &buf)
	assert.Equal(t, "req-123", e.Fields["request_id"])
}

func TestErrField(t *testing.T) {
	f := Err(assert.AnError)
	assert.Equal(t, "error", f.Key)
	assert.Equal(t, assert.AnError.Error(), f.Value)
}
