package mail

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/secretaria-online/secretaria-api/internal/config"
)

// SMTPMailer sends plain-text mail through the configured relay.
type SMTPMailer struct {
	addr string
	auth smtp.Auth
	from string
}

// New returns nil when no SMTP host is configured, which callers treat as
// notifications disabled.
func New(cfg config.SMTPConfig) *SMTPMailer {
	if cfg.Host == "" {
		return nil
	}
	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}
	return &SMTPMailer{
		addr: fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		auth: auth,
		from: cfg.From,
	}
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := strings.Join([]string{
		"From: " + m.from,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=utf-8",
		"",
		body,
	}, "\r\n")
	return smtp.SendMail(m.addr, m.auth, m.from, []string{to}, []byte(msg))
}
