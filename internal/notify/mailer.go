package notify

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"github.com/vkclicks/vkclicks-api/internal/config"
)

type Message struct {
	To      []string
	Subject string
	Body    string
}

type Mailer interface {
	Send(msg Message) error
}

// NewMailer returns the SMTP mailer when SMTP is configured, otherwise
// a mailer that only logs. Outbound mail is always best-effort.
func NewMailer(cfg *config.Config) Mailer {
	if cfg.SMTPEnabled() {
		return NewSMTPMailer(cfg)
	}
	return &logMailer{}
}

type SMTPMailer struct {
	addr string
	host string
	from string
	auth smtp.Auth
}

func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	var auth smtp.Auth
	if cfg.SMTPUsername != "" && cfg.SMTPPassword != "" {
		auth = smtp.PlainAuth("", cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPHost)
	}

	return &SMTPMailer{
		addr: fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort),
		host: cfg.SMTPHost,
		from: cfg.FromEmail,
		auth: auth,
	}
}

func (m *SMTPMailer) Send(msg Message) error {
	if len(msg.To) == 0 {
		return fmt.Errorf("no recipients")
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("From: %s\r\n", m.from))
	b.WriteString(fmt.Sprintf("To: %s\r\n", strings.Join(msg.To, ",")))
	b.WriteString(fmt.Sprintf("Subject: %s\r\n", msg.Subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n\r\n")
	b.WriteString(msg.Body)

	return smtp.SendMail(m.addr, m.auth, m.from, msg.To, []byte(b.String()))
}

type logMailer struct{}

func (l *logMailer) Send(msg Message) error {
	log.Printf("mail (smtp disabled) to=%s subject=%q", strings.Join(msg.To, ","), msg.Subject)
	return nil
}
