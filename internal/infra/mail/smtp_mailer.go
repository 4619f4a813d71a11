// Package mail provides the SMTP implementation of the outbound mail
// collaborator.
package mail

import (
	"crypto/tls"
	"fmt"
	"log/slog"
	"net/url"
	"sync"

	"github.com/dajohi/goemail"

	"github.com/khaledhussein957/my-websote-sub000/config"
	"github.com/khaledhussein957/my-websote-sub000/internal/domain/service"
	"github.com/khaledhussein957/my-websote-sub000/internal/errors"
)

// smtpMailer sends mail through a single process-wide SMTP connection.
//
// The connection is lazily initialized on first use and memoized behind a
// single accessor; it is never explicitly torn down, which is acceptable
// because the process lifetime equals the connection's useful lifetime.
type smtpMailer struct {
	cfg    *config.SMTPConfig
	logger *slog.Logger

	once     sync.Once
	smtp     *goemail.SMTP
	initErr  error
	disabled bool
}

// NewSMTPMailer is the constructor for smtpMailer. Mail is considered
// disabled when the host or credentials are missing; a disabled mailer
// reports every send as success without doing anything, matching the
// best-effort contract.
func NewSMTPMailer(cfg *config.Config, logger *slog.Logger) service.Mailer {
	m := &smtpMailer{
		cfg:    cfg.SMTP,
		logger: logger,
	}

	if cfg.SMTP == nil || cfg.SMTP.Host == "" || cfg.SMTP.Username == "" || cfg.SMTP.Password == "" {
		m.disabled = true
		logger.Info("Outbound mail disabled, credentials missing")
	}

	return m
}

// IsEnabled returns whether the mail server is configured.
func (m *smtpMailer) IsEnabled() bool {
	return !m.disabled
}

// Send delivers one message to one recipient. The connection is created on
// the first call and reused afterwards.
func (m *smtpMailer) Send(to, subject, body string) error {
	if m.disabled {
		return nil
	}

	smtp, err := m.client()
	if err != nil {
		return errors.Wrap(err, "failed to initialize smtp client")
	}

	msg := goemail.NewHTMLMessage(m.cfg.FromAddress, subject, body)
	if m.cfg.FromName != "" {
		msg.SetName(m.cfg.FromName)
	}
	msg.AddTo(to)

	if err := smtp.Send(msg); err != nil {
		return errors.Wrap(err, "failed to send email")
	}

	return nil
}

// client is the single accessor for the memoized SMTP connection.
func (m *smtpMailer) client() (*goemail.SMTP, error) {
	m.once.Do(func() {
		hostPort := fmt.Sprintf("smtps://%s:%s@%s:%d",
			url.QueryEscape(m.cfg.Username),
			url.QueryEscape(m.cfg.Password),
			m.cfg.Host,
			m.cfg.Port,
		)

		u, err := url.Parse(hostPort)
		if err != nil {
			m.initErr = errors.Wrap(err, "failed to parse smtp host")

			return
		}

		tlsConfig := &tls.Config{
			InsecureSkipVerify: m.cfg.SkipVerify, //nolint:gosec // Operator opt-in for self-signed relays.
		}

		m.smtp, m.initErr = goemail.NewSMTP(u.String(), tlsConfig)
		if m.initErr == nil {
			m.logger.Info("SMTP connection established",
				slog.String("host", m.cfg.Host),
				slog.String("from", m.cfg.FromAddress),
			)
		}
	})

	return m.smtp, m.initErr
}
