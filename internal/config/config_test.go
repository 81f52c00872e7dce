package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "chat-demo-api", cfg.ServiceName)
	assert.Equal(t, 8000, cfg.HTTPPort)
	assert.Equal(t, "ExampleBot", cfg.BotName)
	assert.True(t, cfg.MultiTurn)
	assert.True(t, cfg.FileSupport)
	assert.Equal(t, 40*time.Millisecond, cfg.DefaultEventDelay)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Empty(t, cfg.ConversationsFile)
	assert.Equal(t, ":8000", cfg.Addr())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("HTTP_HOST", "127.0.0.1")
	t.Setenv("HTTP_PORT", "9100")
	t.Setenv("BOT_NAME", "DemoBot")
	t.Setenv("FILE_SUPPORT", "false")
	t.Setenv("LOG_FORMAT", " JSON ")
	t.Setenv("CONVERSATIONS_FILE", " scripts.yaml ")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9100", cfg.Addr())
	assert.Equal(t, "DemoBot", cfg.BotName)
	assert.False(t, cfg.FileSupport)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "scripts.yaml", cfg.ConversationsFile)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"port out of range", "HTTP_PORT", "70000"},
		{"port not a number", "HTTP_PORT", "eighty"},
		{"unknown log format", "LOG_FORMAT", "xml"},
		{"zero upload limit", "MAX_UPLOAD_BYTES", "0"},
		{"negative delay", "DEFAULT_EVENT_DELAY", "-1s"},
		{"blank bot name", "BOT_NAME", "  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
