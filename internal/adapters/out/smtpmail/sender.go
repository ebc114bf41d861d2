// Package smtpmail implements the email provider port over SMTP with
// STARTTLS, matching how Gmail submission on port 587 works. Each message
// carries a plain-text and an HTML alternative.
package smtpmail

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"time"
)

const (
	defaultHost    = "smtp.gmail.com"
	defaultPort    = 587
	defaultTimeout = 15 * time.Second
)

// Config carries the SMTP credentials and endpoint settings.
type Config struct {
	User     string
	Password string

	// Host and Port default to Gmail submission when empty.
	Host string
	Port int

	// Timeout bounds the whole SMTP conversation. Zero means the default.
	Timeout time.Duration
}

// Sender sends emails over authenticated SMTP.
type Sender struct {
	cfg Config
}

// NewSender creates an SMTP email sender. A sender without credentials is
// valid but reports itself unconfigured and refuses to send.
func NewSender(cfg Config) *Sender {
	if cfg.Host == "" {
		cfg.Host = defaultHost
	}
	if cfg.Port <= 0 {
		cfg.Port = defaultPort
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	return &Sender{cfg: cfg}
}

// IsConfigured reports whether both the user and the password are present.
func (s *Sender) IsConfigured() bool {
	return s.cfg.User != "" && s.cfg.Password != ""
}

// Send delivers the email to the given address. The connection is plain
// TCP upgraded via STARTTLS before authentication, per RFC 3207.
func (s *Sender) Send(ctx context.Context, to, subject, textBody, htmlBody string) error {
	if !s.IsConfigured() {
		return fmt.Errorf("smtpmail: credentials not configured")
	}

	addr := net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port))

	dialer := net.Dialer{Timeout: s.cfg.Timeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("smtpmail: dial %s: %w", addr, err)
	}

	// One deadline for the whole conversation; smtp.Client has no
	// context support of its own.
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	} else {
		_ = conn.SetDeadline(time.Now().Add(s.cfg.Timeout))
	}

	client, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("smtpmail: handshake: %w", err)
	}
	defer client.Close()

	if err := client.StartTLS(&tls.Config{ServerName: s.cfg.Host}); err != nil {
		return fmt.Errorf("smtpmail: starttls: %w", err)
	}

	auth := smtp.PlainAuth("", s.cfg.User, s.cfg.Password, s.cfg.Host)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("smtpmail: auth: %w", err)
	}

	if err := client.Mail(s.cfg.User); err != nil {
		return fmt.Errorf("smtpmail: mail from: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("smtpmail: rcpt to: %w", err)
	}

	writer, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtpmail: data: %w", err)
	}

	message := buildMessage(s.cfg.User, to, subject, textBody, htmlBody)
	if _, err := writer.Write([]byte(message)); err != nil {
		return fmt.Errorf("smtpmail: write message: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("smtpmail: close message: %w", err)
	}

	return client.Quit()
}
