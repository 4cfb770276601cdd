package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

// captureLog sets up the logger to write to a buffer and returns the buffer.
func captureLog(cfg LogConfig) *bytes.Buffer {
	var buf bytes.Buffer
	cfg.Writer = &buf
	SetupLogging(cfg)
	return &buf
}

func TestSetupLogging_TimestampsOffByDefault(t *testing.T) {
	buf := captureLog(LogConfig{})
	Info("hello")
	assert.NotRegexp(t, `^\d{2}:\d{2}:\d{2}`, strings.TrimSpace(buf.String()),
		"output should not start with a timestamp")
}

func TestSetupLogging_TimestampsEnabled(t *testing.T) {
	buf := captureLog(LogConfig{Timestamps: boolPtr(true)})
	Info("hello")
	assert.Regexp(t, `^\d{2}:\d{2}:\d{2}`, strings.TrimSpace(buf.String()))
}

func TestSetupLogging_VerboseForcesTimestampsOn(t *testing.T) {
	buf := captureLog(LogConfig{Verbose: true, Timestamps: boolPtr(false)})
	Debug("verbose-msg")
	out := buf.String()
	assert.Contains(t, out, "verbose-msg", "debug message should appear in verbose mode")
	assert.Regexp(t, `^\d{2}:\d{2}:\d{2}`, strings.TrimSpace(out))
}

func TestSetupLogging_Levels(t *testing.T) {
	SetupLogging(LogConfig{Verbose: true})
	assert.Equal(t, log.DebugLevel, logger.GetLevel(), "verbose should set debug level")

	SetupLogging(LogConfig{})
	assert.Equal(t, log.InfoLevel, logger.GetLevel(), "default should be info level")
}

func TestSetupLogging_DebugHiddenByDefault(t *testing.T) {
	buf := captureLog(LogConfig{})
	Debug("hidden")
	Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestFileLogger_HasPrefix(t *testing.T) {
	SetupLogging(LogConfig{})
	fileLog := FileLogger("apps/app.kamut.yaml")
	assert.NotNil(t, fileLog)
	assert.Contains(t, fileLog.GetPrefix(), "apps/app.kamut.yaml", "prefix should contain file path")
}

func TestFileLogger_InheritsLevel(t *testing.T) {
	SetupLogging(LogConfig{Verbose: true})
	fileLog := FileLogger("app.kamut.yaml")
	assert.Equal(t, log.DebugLevel, fileLog.GetLevel(), "file logger should inherit debug level")
}

func boolPtr(b bool) *bool {
	return &b
}
