package notification

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"stayhub/models"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

const confirmationSubject = "Hotel Booking Details"

var confirmationTmpl = template.Must(template.New("confirmation").Parse(`<!doctype html>
<html>
<body style="font-family:Arial, Helvetica, sans-serif; color:#222;">
  <h2>Your Booking Details</h2>
  <p>Dear {{.GuestName}},</p>
  <p>Thank you for your booking! Here are your details:</p>
  <ul>
    <li><strong>Booking ID:</strong> {{.BookingID}}</li>
    <li><strong>Package:</strong> {{.PackageName}}</li>
    <li><strong>Hotel Name:</strong> {{.HotelName}}</li>
    <li><strong>Location:</strong> {{.HotelAddress}}</li>
    <li><strong>Check-in:</strong> {{.CheckInDate.Format "Mon Jan 2 2006"}}</li>
    <li><strong>Check-out:</strong> {{.CheckOutDate.Format "Mon Jan 2 2006"}}</li>
    <li><strong>Booking Amount:</strong> {{printf "%.2f" .TotalPrice}}</li>
  </ul>
  <p>We look forward to welcoming you!</p>
  <p>If you need to make any changes, feel free to contact us.</p>
</body>
</html>`))

// RenderBookingConfirmation returns the subject and HTML body of the email.
func RenderBookingConfirmation(email models.BookingConfirmationEmail) (string, string, error) {
	var buf bytes.Buffer
	if err := confirmationTmpl.Execute(&buf, email); err != nil {
		return "", "", fmt.Errorf("render booking confirmation: %w", err)
	}
	return confirmationSubject, buf.String(), nil
}

// SMTPConfig holds the outgoing mail server settings.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPMailer sends mail through an authenticated SMTP server.
type SMTPMailer struct {
	client *mail.Client
	from   string
}

func NewSMTPMailer(cfg SMTPConfig) (*SMTPMailer, error) {
	client, err := mail.NewClient(cfg.Host,
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create SMTP client: %w", err)
	}
	return &SMTPMailer{client: client, from: cfg.From}, nil
}

func (m *SMTPMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("invalid sender %q: %w", m.from, err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("invalid recipient %q: %w", to, err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}

// LogMailer stands in for SMTP in development; it only logs the envelope.
type LogMailer struct {
	Logger *zap.Logger
}

func (m LogMailer) Send(_ context.Context, to, subject, _ string) error {
	m.Logger.Info("[MOCK EMAIL]", zap.String("to", to), zap.String("subject", subject))
	return nil
}

// NewMailer returns an SMTP mailer when the server is configured and a
// LogMailer otherwise.
func NewMailer(cfg SMTPConfig, logger *zap.Logger) (Mailer, error) {
	if cfg.Host == "" || cfg.Username == "" || cfg.Password == "" {
		logger.Warn("SMTP not configured, emails will only be logged")
		return LogMailer{Logger: logger}, nil
	}
	return NewSMTPMailer(cfg)
}
