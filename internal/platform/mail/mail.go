package mail

import (
	"context"
	"log/slog"
	"strings"

	"fundflow/contexts/fundraising/donation-service/ports"
)

// LogMailer renders messages into the structured log. It stands in for an
// SMTP or provider-backed sender behind the same port.
type LogMailer struct {
	Logger *slog.Logger
}

func (m LogMailer) Send(_ context.Context, item ports.Mail) error {
	logger := m.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("mail delivered",
		"event", "mail_delivered",
		"module", "internal/platform/mail",
		"layer", "platform",
		"recipient_id", item.RecipientID,
		"recipient_name", item.RecipientName,
		"subject", item.Subject,
		"greeting", item.Greeting,
		"body", strings.Join(item.Lines, " "),
		"action_text", item.ActionText,
		"action_url", item.ActionURL,
	)
	return nil
}
