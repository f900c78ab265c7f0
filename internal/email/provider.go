package email

// Provider sends transactional mail. Sending is best-effort everywhere it is
// used: a mail failure never fails the request that triggered it.
type Provider interface {
	SendWelcome(to, name string) error
}

// Config holds SMTP settings.
type Config struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

// NoopProvider drops all mail. Used when email is disabled and in tests.
type NoopProvider struct{}

func (p *NoopProvider) SendWelcome(to, name string) error {
	return nil
}
