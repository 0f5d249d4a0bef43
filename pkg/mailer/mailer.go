package mailer

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"

	pkgErrors "seatwatch-srv/pkg/errors"
)

// ISender delivers notification emails over SMTP.
type ISender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// Config holds SMTP connection settings. Implicit TLS (port 465) is assumed.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type implSender struct {
	cfg Config
}

// New returns an SMTP sender.
func New(cfg Config) ISender {
	if cfg.From == "" {
		cfg.From = cfg.Username
	}
	return &implSender{cfg: cfg}
}

func (s *implSender) Send(ctx context.Context, to, subject, body string) error {
	msg := []byte(
		fmt.Sprintf("From: %s\r\n", s.cfg.From) +
			fmt.Sprintf("To: %s\r\n", to) +
			fmt.Sprintf("Subject: %s\r\n", subject) +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/html; charset=\"utf-8\"\r\n" +
			"\r\n" +
			body,
	)

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	dialer := &net.Dialer{}
	conn, err := tls.DialWithDialer(dialer, "tcp", addr, &tls.Config{ServerName: s.cfg.Host})
	if err != nil {
		return pkgErrors.NewTransientError("mailer.Send", err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	client, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return pkgErrors.NewTransientError("mailer.Send", err)
	}
	defer client.Quit()

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	if err := client.Auth(auth); err != nil {
		// Bad credentials are a deployment problem, not a retry case.
		return fmt.Errorf("mailer: auth failed: %w", err)
	}

	if err := client.Mail(s.cfg.From); err != nil {
		return pkgErrors.NewTransientError("mailer.Send", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("mailer: recipient rejected: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return pkgErrors.NewTransientError("mailer.Send", err)
	}
	if _, err := w.Write(msg); err != nil {
		return pkgErrors.NewTransientError("mailer.Send", err)
	}
	if err := w.Close(); err != nil {
		return pkgErrors.NewTransientError("mailer.Send", err)
	}

	return nil
}
