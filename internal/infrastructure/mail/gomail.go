package mail

import (
	"context"
	"crypto/tls"

	"clinic-booking/config"

	"github.com/go-gomail/gomail"
)

// Sender delivers mail through the configured SMTP server.
type Sender struct {
	dialer *gomail.Dialer
	from   string
}

func NewSender(cfg config.MailConfig) *Sender {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	if !cfg.UseTLS {
		dialer.TLSConfig = &tls.Config{InsecureSkipVerify: true}
	}
	return &Sender{
		dialer: dialer,
		from:   cfg.Sender,
	}
}

// Send delivers a plain-text message. The SMTP dial and send run in a
// goroutine so a slow mail server cannot stall the caller past the context
// deadline.
func (s *Sender) Send(ctx context.Context, to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	errc := make(chan error, 1)
	go func() {
		errc <- s.dialer.DialAndSend(m)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
