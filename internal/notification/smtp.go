package notification

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

// SMTPNotifier delivers messages over an SMTP relay.
type SMTPNotifier struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPNotifier constructs an SMTP-backed notifier.
func NewSMTPNotifier(host string, port int, username, password, from string) *SMTPNotifier {
	return &SMTPNotifier{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

// Send dials the relay and delivers the message as plain text.
func (n *SMTPNotifier) Send(_ context.Context, message Message) error {
	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", message.To)
	m.SetHeader("Subject", message.Subject)
	m.SetBody("text/plain", message.Body)

	if err := n.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}
