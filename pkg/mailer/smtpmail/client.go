// Package smtpmail implements mailer.Transport on top of an authenticated
// SMTP account.
package smtpmail

import (
	"adminops/pkg/mailer"
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"
)

// Options configures the SMTP connection.
type Options struct {
	Host     string
	Port     int
	Username string
	Password string
}

// Client sends messages over SMTP. A fresh connection is dialed per message,
// mail volume here is a handful of admin notifications per registration.
type Client struct {
	options Options
}

// Send builds the MIME message and delivers it in a single SMTP session.
func (c *Client) Send(ctx context.Context, msg mailer.Message) error {
	m := gomail.NewMsg()
	if err := m.FromFormat(msg.From.Name, msg.From.Email); err != nil {
		return fmt.Errorf("could not set from address: %w", err)
	}
	if err := m.To(msg.To...); err != nil {
		return fmt.Errorf("could not set recipients: %w", err)
	}
	if msg.ReplyTo != "" {
		if err := m.ReplyTo(msg.ReplyTo); err != nil {
			return fmt.Errorf("could not set reply-to: %w", err)
		}
	}
	m.Subject(msg.Subject)
	m.SetBodyString(gomail.TypeTextPlain, msg.Text)
	if msg.HTML != "" {
		m.AddAlternativeString(gomail.TypeTextHTML, msg.HTML)
	}

	client, err := gomail.NewClient(c.options.Host,
		gomail.WithPort(c.options.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(c.options.Username),
		gomail.WithPassword(c.options.Password))
	if err != nil {
		return fmt.Errorf("could not create smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("could not send message: %w", err)
	}

	return nil
}

// Ensure Client conforms to the mailer.Transport interface at compile time.
var _ mailer.Transport = (*Client)(nil)

// New creates an SMTP-backed transport.
func New(options Options) *Client {
	return &Client{options: options}
}
