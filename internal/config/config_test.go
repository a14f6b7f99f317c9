package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
sink: mattermost
log_level: debug
mattermost:
  url: chat.example.com
  port: 8065
  token: file-token
  team: ops
  channel: alerts
  timeout: 5s
telegram:
  chat_id: "123"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFromFile(t *testing.T) {
	cfg, err := Load(New(), writeConfig(t, testConfigYAML))
	require.NoError(t, err)

	assert.Equal(t, SinkMattermost, cfg.Sink)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "chat.example.com", cfg.Mattermost.URL)
	assert.Equal(t, "https", cfg.Mattermost.Scheme)
	assert.Equal(t, 8065, cfg.Mattermost.Port)
	assert.Equal(t, "file-token", cfg.Mattermost.Token)
	assert.Equal(t, "ops", cfg.Mattermost.Team)
	assert.Equal(t, "alerts", cfg.Mattermost.Channel)
	assert.Equal(t, 5*time.Second, cfg.Mattermost.Timeout)
	assert.Equal(t, "123", cfg.Telegram.ChatID)
	assert.NoError(t, cfg.Validate())
}

func TestLoadEnvOverridesFile(t *testing.T) {
	t.Setenv("NOTIFY_MATTERMOST_TOKEN", "env-token")
	t.Setenv("NOTIFY_MATTERMOST_PORT", "443")

	cfg, err := Load(New(), writeConfig(t, testConfigYAML))
	require.NoError(t, err)
	assert.Equal(t, "env-token", cfg.Mattermost.Token)
	assert.Equal(t, 443, cfg.Mattermost.Port)
}

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	cfg, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, NewDefault(), cfg)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestServerURL(t *testing.T) {
	tests := []struct {
		name    string
		cfg     MattermostConfig
		want    string
		wantErr bool
	}{
		{name: "host and port", cfg: MattermostConfig{URL: "chat.example.com", Scheme: "https", Port: 8065}, want: "https://chat.example.com:8065"},
		{name: "no port", cfg: MattermostConfig{URL: "chat.example.com", Scheme: "http"}, want: "http://chat.example.com"},
		{name: "full url", cfg: MattermostConfig{URL: "http://127.0.0.1:8065/", Scheme: "https", Port: 443}, want: "http://127.0.0.1:8065"},
		{name: "empty", cfg: MattermostConfig{}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.cfg.ServerURL()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
