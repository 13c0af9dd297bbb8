package mailing

import (
	"errors"
	"io"
	"strconv"

	"gopkg.in/gomail.v2"

	"restaurant-inventory/internal/utils"
)

var ErrMailNotConfigured = errors.New("smtp host is not configured")

type (
	MailConfig struct {
		SMTPHost     string
		SMTPPort     string
		SMTPSender   string
		SMTPEmail    string
		SMTPPassword string
	}

	Mailer struct {
		config MailConfig
		send   func(msgs ...*gomail.Message) error
	}
)

func LoadMailConfig() MailConfig {
	return MailConfig{
		SMTPHost:     utils.GetConfig("SMTP_HOST"),
		SMTPPort:     utils.GetConfig("SMTP_PORT"),
		SMTPSender:   utils.GetConfig("SMTP_SENDER_NAME"),
		SMTPEmail:    utils.GetConfig("SMTP_AUTH_EMAIL"),
		SMTPPassword: utils.GetConfig("SMTP_AUTH_PASSWORD"),
	}
}

// NewMailer dials the configured SMTP server for every message.
func NewMailer(cfg MailConfig) (*Mailer, error) {
	if cfg.SMTPHost == "" {
		return nil, ErrMailNotConfigured
	}
	port, err := strconv.Atoi(cfg.SMTPPort)
	if err != nil {
		return nil, err
	}
	dialer := gomail.NewDialer(cfg.SMTPHost, port, cfg.SMTPEmail, cfg.SMTPPassword)
	return &Mailer{config: cfg, send: dialer.DialAndSend}, nil
}

// NewMailerWithSender delivers through sender instead of dialing SMTP.
func NewMailerWithSender(cfg MailConfig, sender gomail.Sender) *Mailer {
	return &Mailer{
		config: cfg,
		send: func(msgs ...*gomail.Message) error {
			return gomail.Send(sender, msgs...)
		},
	}
}

func (m *Mailer) message(toEmail, subject, body string) *gomail.Message {
	mailer := gomail.NewMessage()
	mailer.SetAddressHeader("From", m.config.SMTPEmail, m.config.SMTPSender)
	mailer.SetHeader("To", toEmail)
	mailer.SetHeader("Subject", subject)
	mailer.SetBody("text/html", body)
	return mailer
}

func (m *Mailer) SendMail(toEmail string, subject string, body string) error {
	return m.send(m.message(toEmail, subject, body))
}

func (m *Mailer) SendAttachment(toEmail, subject, body, filename string, data []byte) error {
	mailer := m.message(toEmail, subject, body)
	mailer.Attach(filename,
		gomail.SetHeader(map[string][]string{"Content-Type": {"text/csv"}}),
		gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(data)
			return err
		}),
	)
	return m.send(mailer)
}
