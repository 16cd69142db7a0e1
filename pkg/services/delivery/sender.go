// Package delivery emails the assembled report as a PDF attachment through
// a fixed SMTP relay.
package delivery

import (
	"bytes"
	"context"
	"crypto/tls"
	"net"
	"net/smtp"

	"github.com/adhavannn/ai-report-generator/pkg/models/domain"
	"github.com/jordan-wright/email"
	"github.com/rs/zerolog"
)

const (
	subject        = "Your AI Business Report"
	bodyText       = "Attached is your requested business report."
	attachmentName = "business_report.pdf"
)

// Settings is the mail relay boundary configuration. Host, port and sender
// credentials are deployment configuration; only the recipient comes from
// user input.
type Settings struct {
	Host     string
	Port     string
	Username string
	Password string
	Sender   string
}

// Sender transmits report PDFs over an implicit-TLS SMTP connection.
// Failures are reported as *domain.DeliveryError and never retried.
type Sender struct {
	settings Settings
}

func NewSender(settings Settings) *Sender {
	return &Sender{settings: settings}
}

// Send mails the PDF to the given address. A blank address is a no-op, not
// an error: the caller skips delivery when the email field was left empty.
func (s *Sender) Send(ctx context.Context, to string, pdfBytes []byte) error {
	if to == "" {
		return nil
	}
	logger := zerolog.Ctx(ctx)

	e := email.NewEmail()
	e.From = s.settings.Sender
	e.To = []string{to}
	e.Subject = subject
	e.Text = []byte(bodyText)

	if _, err := e.Attach(bytes.NewReader(pdfBytes), attachmentName, "application/pdf"); err != nil {
		return &domain.DeliveryError{Recipient: to, Err: err}
	}

	addr := net.JoinHostPort(s.settings.Host, s.settings.Port)
	auth := smtp.PlainAuth("", s.settings.Username, s.settings.Password, s.settings.Host)
	tlsConfig := &tls.Config{ServerName: s.settings.Host}

	if err := e.SendWithTLS(addr, auth, tlsConfig); err != nil {
		logger.Warn().Err(err).Str("recipient", to).Msg("report delivery failed")
		return &domain.DeliveryError{Recipient: to, Err: err}
	}

	logger.Info().Str("recipient", to).Msg("report emailed")
	return nil
}
