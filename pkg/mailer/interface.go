// Package mailer defines the outbound email abstraction used by the
// notification pipeline.
package mailer

import (
	"context"
)

// Address is a display name plus email address pair.
type Address struct {
	Name  string
	Email string
}

// Message is a single outbound email. Text and HTML are alternative bodies of
// the same message; both should be set so clients can pick either rendering.
type Message struct {
	From    Address
	To      []string
	ReplyTo string
	Subject string
	Text    string
	HTML    string
}

// Transport delivers messages.
//
//go:generate mockgen -package mockmailer -source=interface.go -destination=mock/mockmailer.go *
type Transport interface {
	// Send delivers the message to all recipients. Delivery failures are
	// returned so callers can retry.
	Send(ctx context.Context, msg Message) error
}
