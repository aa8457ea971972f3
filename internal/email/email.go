package email

import (
	"agencyportal/internal/logger"

	"gopkg.in/gomail.v2"
)

// Sender delivers notification mail. Implementations must be safe for
// concurrent use.
type Sender interface {
	Send(to, subject, body string) error
}

// Config carries SMTP connection settings.
type Config struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

// SMTPSender sends HTML mail over SMTP.
type SMTPSender struct {
	cfg Config
}

func NewSMTPSender(cfg Config) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

func (s *SMTPSender) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.cfg.FromEmail, s.cfg.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)
	return d.DialAndSend(m)
}

// NoopSender logs instead of delivering. Used when SMTP is not
// configured and in tests.
type NoopSender struct{}

func (NoopSender) Send(to, subject, body string) error {
	logger.Debug("email delivery skipped, SMTP not configured",
		"to", to, "subject", subject)
	return nil
}

// NewSender picks the SMTP sender when a host is configured, otherwise
// the noop one.
func NewSender(cfg Config) Sender {
	if cfg.Host == "" {
		return NoopSender{}
	}
	return NewSMTPSender(cfg)
}
