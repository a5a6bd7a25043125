package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "info", Format: "text", Output: &buf})

	logger.Info(context.Background(), "scan complete", "missing", 3)

	out := buf.String()
	assert.Contains(t, out, "scan complete")
	assert.Contains(t, out, "missing=3")
}

func TestJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "info", Format: "json", Output: &buf})

	logger.Error(context.Background(), errors.New("boom"), "scan aborted", "root", ".")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "scan aborted", entry["msg"])
	assert.Equal(t, "boom", entry["error"])
	assert.Equal(t, ".", entry["root"])
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "warn", Format: "text", Output: &buf})

	logger.Debug(context.Background(), "not shown")
	logger.Info(context.Background(), "not shown either")
	assert.Empty(t, buf.String())

	logger.Warn(context.Background(), nil, "shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "info", Format: "text", Output: &buf}).WithComponent("check")

	logger.Info(context.Background(), "hello")
	assert.Contains(t, buf.String(), "component=check")
}

func TestDiscard(t *testing.T) {
	// Must not panic or write anywhere.
	logger := Discard()
	logger.Info(context.Background(), "dropped", "k", "v")
	logger.Error(context.Background(), errors.New("x"), "dropped")
}
