package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewClientLogger_NotNil verifies that NewClientLogger returns a non-nil *Logger.
func TestNewClientLogger_NotNil(t *testing.T) {
	l := NewClientLogger("test")
	require.NotNil(t, l)
}

// TestNewClientLogger_RoleField verifies that every log entry produced by a
// logger created with NewClientLogger contains the expected "role" field.
func TestNewClientLogger_RoleField(t *testing.T) {
	var buf bytes.Buffer
	l := NewClientLogger("test-role")
	l.Logger = l.Output(&buf)

	l.Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "test-role", entry["role"])
}

// TestNewClientLogger_CallerFieldName verifies that the caller field is named "func".
func TestNewClientLogger_CallerFieldName(t *testing.T) {
	NewClientLogger("caller-role") // sets zerolog.CallerFieldName as a side-effect
	assert.Equal(t, "func", zerolog.CallerFieldName)
}

func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)
	assert.NotPanics(t, func() { l.Error().Msg("dropped") })
}

func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewClientLogger("parent-role")
	l.Logger = l.Output(&buf)

	child := l.GetChildLogger()
	child.Info().Msg("from child")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "parent-role", entry["role"])
}
