package repo

import (
	"fmt"
	"io"

	"IcingaMattermostBot/internal/app"
	"IcingaMattermostBot/internal/config"

	"github.com/go-logr/logr"
)

// NewSender creates the Sender selected by the configuration. out is only
// used by the stdout sink.
func NewSender(cfg *config.Config, out io.Writer, log logr.Logger) (app.Sender, error) {
	switch sink := cfg.EffectiveSink(); sink {
	case config.SinkMattermost:
		s, err := NewMattermostSender(cfg.Mattermost, log.WithName("mattermost"))
		if err != nil {
			return nil, fmt.Errorf("creating mattermost sender: %w", err)
		}
		return s, nil
	case config.SinkTelegram:
		bot, err := NewTelegramBot(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Telegram.CriticalChatID)
		if err != nil {
			return nil, fmt.Errorf("creating telegram bot: %w", err)
		}
		return bot, nil
	case config.SinkStdout:
		return NewStdoutSender(out), nil
	default:
		return nil, fmt.Errorf("unknown sink %q", sink)
	}
}
