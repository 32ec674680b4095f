package mailer

import (
	"log/slog"

	"stagepass/internal/pkg/config"
	"stagepass/internal/pkg/errs"

	"gopkg.in/gomail.v2"
)

// Sender delivers notification emails over SMTP.
type Sender interface {
	Send(to, subject, body string) error
}

type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPSender(cfg config.MailConfig) *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

func (s *SMTPSender) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return errs.Wrap(err, "failed to send mail")
	}
	return nil
}

// LogSender stands in when SMTP is not configured, so local environments
// run without a relay.
type LogSender struct{}

func (LogSender) Send(to, subject, body string) error {
	slog.Info("mail suppressed", "to", to, "subject", subject)
	return nil
}

func NewSender(cfg config.MailConfig) Sender {
	if cfg.Host == "" {
		return LogSender{}
	}
	return NewSMTPSender(cfg)
}
