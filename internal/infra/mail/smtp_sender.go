// Package mail delivers outgoing email through SMTP with gomail.
package mail

import (
	"context"
	"io"
	"log/slog"

	"github.com/pkg/errors"
	gomail "gopkg.in/gomail.v2"

	"resumebuilder/config"
	"resumebuilder/internal/domain/service"
)

type smtpSender struct {
	dialer *gomail.Dialer
	from   string
	logger *slog.Logger
}

// NewSMTPSender constructs an EmailSender backed by the configured SMTP relay.
func NewSMTPSender(cfg *config.Config, logger *slog.Logger) (service.EmailSender, error) {
	if cfg.SMTP == nil || cfg.SMTP.Host == "" {
		return nil, errors.New("smtp configuration must be provided")
	}

	from := cfg.SMTP.From
	if from == "" {
		from = cfg.SMTP.Username
	}

	return &smtpSender{
		dialer: gomail.NewDialer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password),
		from:   from,
		logger: logger,
	}, nil
}

// Send delivers an HTML message with optional attachments. The dial-and-send
// round trip is synchronous; the context only guards against sending after
// the caller already gave up.
func (s *smtpSender) Send(ctx context.Context, to, subject, htmlBody string, attachments ...service.EmailAttachment) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "email send aborted")
	}

	msg := buildMessage(s.from, to, subject, htmlBody, attachments...)

	if err := s.dialer.DialAndSend(msg); err != nil {
		s.logger.Error("Failed to send email", slog.String("to", to), slog.Any("error", err))

		return errors.Wrap(err, "failed to send email")
	}

	s.logger.Debug("Email sent", slog.String("to", to), slog.String("subject", subject))

	return nil
}

func buildMessage(from, to, subject, htmlBody string, attachments ...service.EmailAttachment) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetHeader("From", from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	for _, att := range attachments {
		content := att.Content
		settings := []gomail.FileSetting{
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(content)

				return err
			}),
		}
		if att.ContentType != "" {
			settings = append(settings, gomail.SetHeader(map[string][]string{
				"Content-Type": {att.ContentType},
			}))
		}
		msg.Attach(att.Filename, settings...)
	}

	return msg
}
