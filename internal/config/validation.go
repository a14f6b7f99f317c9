package config

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("config.%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}
	var b strings.Builder
	b.WriteString("multiple configuration errors:\n")
	for _, err := range e {
		b.WriteString("  - ")
		b.WriteString(err.Error())
		b.WriteString("\n")
	}
	return b.String()
}

// Validate checks the settings required by the selected sink.
func (c *Config) Validate() error {
	var errs ValidationErrors

	required := func(field, value string) {
		if value == "" {
			errs = append(errs, ValidationError{Field: field, Message: "is required"})
		}
	}

	switch c.EffectiveSink() {
	case SinkMattermost:
		required("mattermost.url", c.Mattermost.URL)
		required("mattermost.token", c.Mattermost.Token)
		required("mattermost.team", c.Mattermost.Team)
		required("mattermost.channel", c.Mattermost.Channel)
		if c.Mattermost.Port < 0 || c.Mattermost.Port > 65535 {
			errs = append(errs, ValidationError{
				Field:   "mattermost.port",
				Message: fmt.Sprintf("invalid port %d", c.Mattermost.Port),
			})
		}
		switch c.Mattermost.Scheme {
		case "http", "https":
		default:
			errs = append(errs, ValidationError{
				Field:   "mattermost.scheme",
				Message: fmt.Sprintf("invalid value %q, must be %q or %q", c.Mattermost.Scheme, "http", "https"),
			})
		}
		if c.Mattermost.Timeout <= 0 {
			errs = append(errs, ValidationError{Field: "mattermost.timeout", Message: "must be positive"})
		}
	case SinkTelegram:
		required("telegram.bot_token", c.Telegram.BotToken)
		required("telegram.chat_id", c.Telegram.ChatID)
		chatID := func(field, id string) {
			if id == "" {
				return
			}
			if _, err := strconv.ParseInt(id, 10, 64); err != nil {
				errs = append(errs, ValidationError{Field: field, Message: fmt.Sprintf("invalid chat id %q", id)})
			}
		}
		chatID("telegram.chat_id", c.Telegram.ChatID)
		chatID("telegram.critical_chat_id", c.Telegram.CriticalChatID)
	case SinkStdout:
	default:
		errs = append(errs, ValidationError{
			Field:   "sink",
			Message: fmt.Sprintf("unknown sink %q, must be one of: %s", c.Sink, strings.Join([]string{SinkMattermost, SinkTelegram, SinkStdout}, ", ")),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
