package repo

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"IcingaMattermostBot/internal/app"
	"IcingaMattermostBot/internal/config"
	ent "IcingaMattermostBot/internal/entity"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSender(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(*config.Config)
		wantType string
		wantErr  bool
	}{
		{
			name: "mattermost",
			setup: func(cfg *config.Config) {
				cfg.Mattermost.URL = "chat.example.com"
			},
			wantType: "*repo.MattermostSender",
		},
		{
			name:    "mattermost without url",
			setup:   func(cfg *config.Config) {},
			wantErr: true,
		},
		{
			name: "stdout",
			setup: func(cfg *config.Config) {
				cfg.Sink = config.SinkStdout
			},
			wantType: "*repo.StdoutSender",
		},
		{
			name: "dry run overrides sink",
			setup: func(cfg *config.Config) {
				cfg.DryRun = true
			},
			wantType: "*repo.StdoutSender",
		},
		{
			name: "telegram without token",
			setup: func(cfg *config.Config) {
				cfg.Sink = config.SinkTelegram
			},
			wantErr: true,
		},
		{
			name: "unknown",
			setup: func(cfg *config.Config) {
				cfg.Sink = "irc"
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.NewDefault()
			tt.setup(cfg)
			sender, err := NewSender(cfg, &bytes.Buffer{}, logr.Discard())
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, sender)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, getTypeName(sender))
		})
	}
}

func getTypeName(s app.Sender) string {
	switch s.(type) {
	case *MattermostSender:
		return "*repo.MattermostSender"
	case *TelegramBot:
		return "*repo.TelegramBot"
	case *StdoutSender:
		return "*repo.StdoutSender"
	default:
		return "unknown"
	}
}

func TestStdoutSender(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewStdoutSender(&buf).Send(context.Background(), testPayload()))

	var got ent.MessagePayload
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, testPayload(), got)
}
