package mail

import (
	"context"
	"log/slog"
	"strings"
)

// Message is a rendered plain-text email.
type Message struct {
	To      []string
	ReplyTo string
	Subject string
	Body    string
}

// Mailer dispatches rendered messages to a mail relay.
type Mailer interface {
	Send(ctx context.Context, msg *Message) error
}

// LogMailer writes messages to the log instead of sending them. Used in development.
type LogMailer struct {
	logger *slog.Logger
}

func NewLogMailer(logger *slog.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (m *LogMailer) Send(_ context.Context, msg *Message) error {
	m.logger.Info("mail not sent (log driver)",
		"to", strings.Join(msg.To, ","),
		"reply_to", msg.ReplyTo,
		"subject", msg.Subject,
		"body", msg.Body,
	)
	return nil
}
