package mailing

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

func TestSendAttachment(t *testing.T) {
	var (
		gotFrom string
		gotTo   []string
		raw     bytes.Buffer
	)
	sender := gomail.SendFunc(func(from string, to []string, msg io.WriterTo) error {
		gotFrom, gotTo = from, to
		_, err := msg.WriteTo(&raw)
		return err
	})
	m := NewMailerWithSender(MailConfig{SMTPEmail: "reports@example.com", SMTPSender: "Inventory"}, sender)

	err := m.SendAttachment("chef@example.com", "Inventory report", "<p>hi</p>", "remaining.csv", []byte("a,b\n1,2\n"))
	require.NoError(t, err)

	assert.Equal(t, "reports@example.com", gotFrom)
	assert.Equal(t, []string{"chef@example.com"}, gotTo)
	assert.Contains(t, raw.String(), `filename="remaining.csv"`)
	assert.Contains(t, raw.String(), "Subject: Inventory report")
}

func TestNewMailerRequiresHost(t *testing.T) {
	_, err := NewMailer(MailConfig{SMTPPort: "587"})
	require.ErrorIs(t, err, ErrMailNotConfigured)

	_, err = NewMailer(MailConfig{SMTPHost: "smtp.example.com", SMTPPort: "smtp"})
	require.Error(t, err)
}
