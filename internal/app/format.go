package app

import (
	"fmt"
	"strings"

	ent "IcingaMattermostBot/internal/entity"
)

// StateColor returns the attachment color for an Icinga state. Matching is
// case-insensitive; unknown states get the neutral default.
func StateColor(state string) string {
	if color, ok := ent.StateColors[strings.ToUpper(state)]; ok {
		return color
	}
	return ent.DefaultColor
}

// IsHealthy reports whether state is OK or UP.
func IsHealthy(state string) bool {
	return strings.EqualFold(state, "OK") || strings.EqualFold(state, "UP")
}

// FormatMessage builds the chat payload for one alert.
func FormatMessage(alert ent.AlertFields) ent.MessagePayload {
	lines := []string{
		fmt.Sprintf("**%s**: `%s`", alert.NotificationType, alert.State),
		targetLine(alert),
		fmt.Sprintf("**Output**: %s", alert.Output),
		fmt.Sprintf("**Time**: %s", alert.DateTime),
	}

	if alert.Comment != "" {
		lines = append(lines, fmt.Sprintf("**Comment**: _%s_", alert.Comment))
	}
	if alert.Author != "" {
		lines = append(lines, fmt.Sprintf("**Author**: %s", alert.Author))
	}
	if alert.IcingaURL != "" {
		lines = append(lines, fmt.Sprintf("[View in Icinga](%s)", alert.IcingaURL))
	}

	payload := ent.MessagePayload{
		Attachment: ent.Attachment{
			Color: StateColor(alert.State),
			Text:  strings.Join(lines, "\n"),
		},
	}
	if !IsHealthy(alert.State) {
		payload.Message = ent.BroadcastMarker
	}
	return payload
}

func targetLine(alert ent.AlertFields) string {
	if !alert.IsService() {
		return fmt.Sprintf("**Host**: %s", alert.HostDisplayName)
	}
	name := alert.ServiceDisplayName
	if name == "" {
		name = alert.ServiceName
	}
	return fmt.Sprintf("**Service**: %s on `%s`", name, alert.HostDisplayName)
}
