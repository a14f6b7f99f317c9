package repo

import (
	"context"
	"errors"
	"strconv"
	"strings"

	ent "IcingaMattermostBot/internal/entity"

	tgbotapi "gopkg.in/telegram-bot-api.v4"
)

const maxMsgLength = 4096

var markupStripper = strings.NewReplacer("**", "", "`", "")

type BotAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type TelegramBot struct {
	Bot            BotAPI
	chatID         string
	criticalChatID string
}

func NewTelegramBot(token, chatID, criticalChatID string) (*TelegramBot, error) {
	if token == "" {
		return nil, errors.New("telegram bot token is required")
	}
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	return &TelegramBot{
		Bot:            bot,
		chatID:         chatID,
		criticalChatID: criticalChatID,
	}, nil
}

func (t *TelegramBot) Send(_ context.Context, payload ent.MessagePayload) error {
	chatID, err := t.GetChatID(payload)
	if err != nil {
		return err
	}
	return t.SendMessage(chatID, formatTelegramText(payload))
}

func (t *TelegramBot) SendMessage(chatID int64, messageText string) error {
	for _, msg := range splitLongMessage(messageText) {
		message := tgbotapi.NewMessage(chatID, msg)
		if _, err := t.Bot.Send(message); err != nil {
			return err
		}
	}
	return nil
}

// GetChatID routes broadcast alerts to the critical chat when one is set.
func (t *TelegramBot) GetChatID(payload ent.MessagePayload) (int64, error) {
	chatID := t.chatID
	if payload.IsBroadcast() && t.criticalChatID != "" {
		chatID = t.criticalChatID
	}
	if chatID == "" {
		return 0, errors.New("telegram chat id is not configured")
	}
	return strconv.ParseInt(chatID, 10, 64)
}

func formatTelegramText(payload ent.MessagePayload) string {
	emoji := ent.ResolvedEmoji
	if payload.IsBroadcast() {
		emoji = ent.FiringEmoji
	}
	return emoji + " " + markupStripper.Replace(payload.Attachment.Text)
}

// splitLongMessage cuts message into chunks of at most maxMsgLength bytes,
// preferring to break at a newline.
func splitLongMessage(message string) []string {
	if len(message) <= maxMsgLength {
		return []string{message}
	}

	var result []string
	for len(message) > maxMsgLength {
		splitIndex := strings.LastIndexByte(message[:maxMsgLength], '\n')
		if splitIndex <= 0 {
			result = append(result, message[:maxMsgLength])
			message = message[maxMsgLength:]
			continue
		}
		result = append(result, message[:splitIndex])
		message = message[splitIndex+1:]
	}
	if message != "" {
		result = append(result, message)
	}
	return result
}
