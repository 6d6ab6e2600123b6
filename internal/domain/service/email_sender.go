package service

import "context"

// EmailAttachment is a file attached to an outgoing message.
type EmailAttachment struct {
	Filename    string
	ContentType string
	Content     []byte
}

// EmailSender delivers messages through the configured transport.
type EmailSender interface {
	// Send delivers an HTML message, optionally with attachments.
	Send(ctx context.Context, to, subject, htmlBody string, attachments ...EmailAttachment) error
}
