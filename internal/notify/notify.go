package notify

import (
	"fmt"
	"net/smtp"

	"github.com/rs/zerolog"
)

// Notifier defines the interface for outbound notifications
type Notifier interface {
	NotifyApplicationReceived(toEmail, toName, companyName string) error
	NotifyBookingConfirmed(toEmail, toName string) error
}

// SMTPConfig holds configuration for the SMTP server
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type smtpNotifier struct {
	config SMTPConfig
	logger zerolog.Logger
}

// NewNotifier creates a notifier. Without SMTP credentials it records the
// delivery intent in the log and sends nothing.
func NewNotifier(config SMTPConfig, logger zerolog.Logger) Notifier {
	return &smtpNotifier{
		config: config,
		logger: logger.With().Str("component", "notify").Logger(),
	}
}

func (n *smtpNotifier) NotifyApplicationReceived(toEmail, toName, companyName string) error {
	subject := fmt.Sprintf("Application received - %s", companyName)
	body := fmt.Sprintf("Hello %s,\n\nYour application for the %s drive has been received. Track its status on the applications page.\n", toName, companyName)
	return n.send(toEmail, subject, body)
}

func (n *smtpNotifier) NotifyBookingConfirmed(toEmail, toName string) error {
	subject := "Mentorship booking confirmed"
	body := fmt.Sprintf("Hello %s,\n\nYour mentorship slot booking is confirmed. The session details are on your bookings page.\n", toName)
	return n.send(toEmail, subject, body)
}

func (n *smtpNotifier) send(toEmail, subject, body string) error {
	if n.config.Username == "" || n.config.Password == "" {
		n.logger.Info().
			Str("toEmail", toEmail).
			Str("subject", subject).
			Msg("SMTP credentials not configured - notification recorded, not sent")
		return nil
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		n.config.From, toEmail, subject, body)
	addr := fmt.Sprintf("%s:%d", n.config.Host, n.config.Port)
	auth := smtp.PlainAuth("", n.config.Username, n.config.Password, n.config.Host)

	if err := smtp.SendMail(addr, auth, n.config.From, []string{toEmail}, []byte(msg)); err != nil {
		n.logger.Error().Err(err).Str("toEmail", toEmail).Msg("Failed to send notification")
		return err
	}
	return nil
}
