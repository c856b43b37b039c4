package logging

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LogLevelDebug, ParseLevel("debug"))
	assert.Equal(t, LogLevelWarn, ParseLevel("WARN"))
	assert.Equal(t, LogLevelError, ParseLevel("error"))
	assert.Equal(t, LogLevelInfo, ParseLevel("anything else"))
}

func TestLogLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", LogLevelDebug.String())
	assert.Equal(t, "ERROR", LogLevelError.String())
	assert.Equal(t, "UNKNOWN", LogLevel(99).String())
}

func TestSleepMeshLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&LoggerConfig{Level: LogLevelWarn, Format: "text", Output: &buf})

	logger.Info("should be dropped")
	logger.Warn("should appear")

	out := buf.String()
	assert.NotContains(t, out, "should be dropped")
	assert.Contains(t, out, "should appear")
}

func TestSleepMeshLoggerContext(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&LoggerConfig{Level: LogLevelDebug, Format: "json", Output: &buf}).
		WithComponent("classifier").
		WithConversation("c42")

	logger.Info("hello")

	out := buf.String()
	assert.Contains(t, out, `"component":"classifier"`)
	assert.Contains(t, out, `"conversation_id":"c42"`)
}

func TestDomainHelpers(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&LoggerConfig{Level: LogLevelDebug, Format: "json", Output: &buf})

	logger.LogRouting("coach", true)
	logger.LogCheck("fairness", true, "low", 0)
	logger.LogModelCall("gemini-2.5-flash", 120*time.Millisecond, false)

	out := buf.String()
	assert.Contains(t, out, `"intent":"coach"`)
	assert.Contains(t, out, `"category":"fairness"`)
	assert.Contains(t, out, "Model call declined")
}

func TestNoOpLogger(t *testing.T) {
	// Must simply not panic.
	l := NoOpLogger{}
	l.Debug("a")
	l.Info("b", "k", "v")
	l.Warn("c")
	l.Error("d")
}
