package app

import (
	"context"
	"fmt"

	ent "IcingaMattermostBot/internal/entity"

	"github.com/go-logr/logr"
)

// Sender delivers a formatted payload to a chat service.
type Sender interface {
	Send(ctx context.Context, payload ent.MessagePayload) error
}

type AlertNotifier interface {
	Notify(ctx context.Context, alert ent.AlertFields) error
}

type alertUseCase struct {
	sender Sender
	log    logr.Logger
}

func NewAlertUseCase(s Sender, log logr.Logger) AlertNotifier {
	return &alertUseCase{
		sender: s,
		log:    log,
	}
}

// Notify formats the alert and sends it once. Sender errors are returned
// unchanged apart from context; there is no retry.
func (u *alertUseCase) Notify(ctx context.Context, alert ent.AlertFields) error {
	kind := "host"
	if alert.IsService() {
		kind = "service"
	}
	u.log.V(1).Info("Formatting notification",
		"kind", kind,
		"host", alert.HostName,
		"service", alert.ServiceName,
		"state", alert.State,
		"type", alert.NotificationType,
		"address", alert.HostAddress,
		"address6", alert.HostAddress6,
	)

	payload := FormatMessage(alert)

	if err := u.sender.Send(ctx, payload); err != nil {
		return fmt.Errorf("sending %s notification for %s: %w", kind, alert.HostName, err)
	}

	u.log.Info("Notification sent", "kind", kind, "host", alert.HostName, "state", alert.State, "broadcast", payload.IsBroadcast())
	return nil
}
