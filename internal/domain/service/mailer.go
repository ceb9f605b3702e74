package service

import "context"

// MailMessage is a fully rendered email ready to hand to a Mailer.
type MailMessage struct {
	From    string
	To      []string
	Subject string
	HTML    string
	Text    string
}

// Mailer defines the interface for sending transactional email.
// Callers treat sends as best-effort: a failed notification is logged
// and never fails the operation that triggered it.
type Mailer interface {
	// Send delivers one message to all of its recipients.
	Send(ctx context.Context, msg *MailMessage) error
}
