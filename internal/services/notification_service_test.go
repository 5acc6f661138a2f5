package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportsfed/fedsite/internal/config"
	"github.com/sportsfed/fedsite/internal/models"
	"github.com/sportsfed/fedsite/internal/utils"
)

type sentMail struct {
	to, subject, body string
}

func TestContactReceivedSendsMail(t *testing.T) {
	sent := make(chan sentMail, 1)
	svc := NewNotificationServiceWithSender(
		config.EmailConfig{Host: "smtp.example.org", NotifyTo: "office@fed.org"},
		func(to, subject, body string) error {
			sent <- sentMail{to, subject, body}
			return nil
		},
	)

	svc.ContactReceived(&models.Contact{
		Name:    "Asha",
		Email:   "asha@example.org",
		Subject: ptr("Membership"),
		Message: "How do I <register>?",
	})

	select {
	case mail := <-sent:
		assert.Equal(t, "office@fed.org", mail.to)
		assert.Equal(t, "Contact: Membership", mail.subject)
		assert.Contains(t, mail.body, "asha@example.org")
		assert.Contains(t, mail.body, "&lt;register&gt;")
	case <-time.After(2 * time.Second):
		t.Fatal("notification was not sent")
	}
}

func TestContactReceivedWithoutSMTP(t *testing.T) {
	called := false
	svc := NewNotificationServiceWithSender(config.EmailConfig{}, func(string, string, string) error {
		called = true
		return nil
	})

	svc.ContactReceived(&models.Contact{Name: "Asha", Email: "asha@example.org", Message: "Hi"})
	assert.False(t, called)
}

func TestContactReceivedFlattensSubject(t *testing.T) {
	sent := make(chan sentMail, 1)
	svc := NewNotificationServiceWithSender(
		config.EmailConfig{Host: "smtp.example.org", NotifyTo: "office@fed.org"},
		func(to, subject, body string) error {
			sent <- sentMail{to, subject, body}
			return nil
		},
	)

	svc.ContactReceived(&models.Contact{Name: "Visitor\r\nBcc: victim@example.org", Email: "v@example.org", Message: "Hi"})

	select {
	case mail := <-sent:
		assert.Equal(t, "New contact message from Visitor Bcc: victim@example.org", mail.subject)
	case <-time.After(2 * time.Second):
		t.Fatal("notification was not sent")
	}
}

func TestBuildMessageHeaders(t *testing.T) {
	msg := string(buildMessage("Federation <noreply@fed.org>", "office@fed.org", "Contact: x\r\nBcc: victim@example.org", "<p>hi</p>"))
	head, body, found := strings.Cut(msg, "\r\n\r\n")
	require.True(t, found)
	assert.Equal(t, "<p>hi</p>", body)

	lines := strings.Split(head, "\r\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "Subject: Contact: x Bcc: victim@example.org", lines[2])
	for _, line := range lines {
		assert.False(t, strings.HasPrefix(line, "Bcc:"), line)
	}

	msg = string(buildMessage("noreply@fed.org", "office@fed.org", "Contact: सदस्यता", ""))
	assert.Contains(t, msg, "Subject: =?utf-8?q?")
}

func TestContactInputRejectsLineBreaks(t *testing.T) {
	in := &ContactInput{
		Name:    ptr("Visitor\r\nBcc: victim@example.org"),
		Email:   ptr("v@example.org"),
		Message: ptr("Hi"),
	}
	err := utils.ValidateStruct(in)
	require.Error(t, err)
	assert.Equal(t, "name must not contain line breaks", utils.GetValidationErrors(err)[0].Message)

	in.Name = ptr("Visitor")
	in.Subject = ptr("Membership\nBcc: victim@example.org")
	err = utils.ValidateStruct(in)
	require.Error(t, err)
	assert.Equal(t, "subject must not contain line breaks", utils.GetValidationErrors(err)[0].Message)

	in.Subject = ptr("Membership")
	assert.NoError(t, utils.ValidateStruct(in))
}

type recordingNotifier struct {
	contacts []*models.Contact
}

func (r *recordingNotifier) ContactReceived(c *models.Contact) {
	r.contacts = append(r.contacts, c)
}

func TestContactService(t *testing.T) {
	ctx := context.Background()
	notifier := &recordingNotifier{}
	svc := NewContactService(newTestDB(t), nil, notifier)

	contact, err := svc.Create(ctx, &ContactInput{
		Name:    ptr("Asha"),
		Email:   ptr("asha@example.org"),
		Phone:   ptr(""),
		Message: ptr("Hello"),
	})
	require.NoError(t, err)
	assert.False(t, contact.IsRead)
	assert.Nil(t, contact.Phone)
	require.Len(t, notifier.contacts, 1)
	assert.Equal(t, contact.ID, notifier.contacts[0].ID)

	read, err := svc.MarkRead(ctx, contact.ID)
	require.NoError(t, err)
	assert.True(t, read.IsRead)

	_, err = svc.MarkRead(ctx, contact.ID+1)
	assert.ErrorIs(t, err, ErrNotFound)
}
