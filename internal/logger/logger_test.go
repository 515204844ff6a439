package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "warn")

	l.Info("slot %s created", "a1")
	l.Warn("slot %s conflict", "a2")
	l.Error("store failed: %v", "boom")

	out := buf.String()
	assert.NotContains(t, out, "a1")
	assert.Contains(t, out, "[WARN] slot a2 conflict")
	assert.Contains(t, out, "[ERROR] store failed: boom")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, LevelWarn, ParseLevel("warning"))
	assert.Equal(t, LevelError, ParseLevel("error"))
	assert.Equal(t, LevelInfo, ParseLevel(""))
	assert.Equal(t, LevelInfo, ParseLevel("verbose"))
}
