package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// SMTPProvider sends mail through a plain SMTP relay.
type SMTPProvider struct {
	cfg    Config
	dialer *gomail.Dialer
}

func NewSMTPProvider(cfg Config) *SMTPProvider {
	return &SMTPProvider{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

func (p *SMTPProvider) SendWelcome(to, name string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.cfg.FromEmail, p.cfg.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Welcome to Fair Chance Navigator")
	m.SetBody("text/html", fmt.Sprintf(
		"<p>Hi %s,</p><p>Your Fair Chance Navigator account is ready. "+
			"Sign in to explore the learning modules and start your team's assessment.</p>",
		name,
	))

	return p.dialer.DialAndSend(m)
}
