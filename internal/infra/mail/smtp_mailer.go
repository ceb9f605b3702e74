// Package mail implements the Mailer interface over SMTP.
package mail

import (
	"context"
	"log/slog"

	"bazaar/config"
	"bazaar/internal/domain/service"

	"github.com/pkg/errors"
	gomail "github.com/wneessen/go-mail"
	"go.uber.org/fx"
)

type smtpMailer struct {
	client *gomail.Client
	from   string
	logger *slog.Logger
}

// Params holds dependencies for the SMTP mailer, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewSMTPMailer creates a Mailer that delivers through the configured SMTP relay.
func NewSMTPMailer(params Params) (service.Mailer, error) {
	cfg := params.Config.Mail
	if cfg == nil {
		return nil, errors.New("mail config is required")
	}

	client, err := gomail.NewClient(cfg.Host,
		gomail.WithPort(cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(cfg.Username),
		gomail.WithPassword(cfg.Password),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create SMTP client")
	}

	return &smtpMailer{
		client: client,
		from:   cfg.From,
		logger: params.Logger,
	}, nil
}

// Send delivers one rendered message to all of its recipients.
func (m *smtpMailer) Send(ctx context.Context, msg *service.MailMessage) error {
	if len(msg.To) == 0 {
		return errors.New("mail message has no recipients")
	}

	message := gomail.NewMsg()

	from := msg.From
	if from == "" {
		from = m.from
	}
	if err := message.From(from); err != nil {
		return errors.Wrap(err, "invalid mail sender")
	}
	if err := message.To(msg.To...); err != nil {
		return errors.Wrap(err, "invalid mail recipients")
	}

	message.Subject(msg.Subject)
	if msg.Text != "" {
		message.SetBodyString(gomail.TypeTextPlain, msg.Text)
	}
	if msg.HTML != "" {
		message.AddAlternativeString(gomail.TypeTextHTML, msg.HTML)
	}

	if err := m.client.DialAndSendWithContext(ctx, message); err != nil {
		return errors.Wrap(err, "failed to send mail")
	}

	m.logger.Info("Mail sent",
		slog.String("subject", msg.Subject),
		slog.Int("recipients", len(msg.To)),
	)

	return nil
}
