// internal/services/notification_service.go
package services

import (
	"bytes"
	"fmt"
	"html/template"
	"mime"
	"net/smtp"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/sportsfed/fedsite/internal/config"
	"github.com/sportsfed/fedsite/internal/models"
)

// MailSender delivers one HTML message.
type MailSender func(to, subject, body string) error

// NotificationService emails site staff about new contact messages.
// Delivery happens in the background and failures are only logged.
type NotificationService struct {
	config config.EmailConfig
	send   MailSender
}

var contactTemplate = template.Must(template.New("contact").Parse(`
<!DOCTYPE html>
<html>
<body>
	<h2>New contact message</h2>
	<p><strong>From:</strong> {{.Name}} &lt;{{.Email}}&gt;</p>
	{{if .Phone}}<p><strong>Phone:</strong> {{.Phone}}</p>{{end}}
	{{if .Subject}}<p><strong>Subject:</strong> {{.Subject}}</p>{{end}}
	<p>{{.Message}}</p>
</body>
</html>`))

func NewNotificationService(cfg config.EmailConfig) *NotificationService {
	s := &NotificationService{config: cfg}
	s.send = s.sendSMTP
	return s
}

// NewNotificationServiceWithSender replaces SMTP delivery, e.g. in tests.
func NewNotificationServiceWithSender(cfg config.EmailConfig, send MailSender) *NotificationService {
	return &NotificationService{config: cfg, send: send}
}

func (s *NotificationService) ContactReceived(contact *models.Contact) {
	if !s.config.Enabled() {
		logrus.WithField("contact_id", contact.ID).Debug("SMTP not configured, skipping contact notification")
		return
	}

	subject := "New contact message from " + contact.Name
	if contact.Subject != nil {
		subject = "Contact: " + *contact.Subject
	}
	subject = headerText(subject)

	body, err := s.renderContact(contact)
	if err != nil {
		logrus.WithError(err).Error("Failed to render contact notification")
		return
	}

	go func() {
		if err := s.send(s.config.NotifyTo, subject, body); err != nil {
			logrus.WithError(err).WithField("contact_id", contact.ID).Error("Failed to send contact notification")
		}
	}()
}

func (s *NotificationService) renderContact(contact *models.Contact) (string, error) {
	data := map[string]interface{}{
		"Name":    contact.Name,
		"Email":   contact.Email,
		"Message": contact.Message,
		"Phone":   "",
		"Subject": "",
	}
	if contact.Phone != nil {
		data["Phone"] = *contact.Phone
	}
	if contact.Subject != nil {
		data["Subject"] = *contact.Subject
	}

	var buf bytes.Buffer
	if err := contactTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (s *NotificationService) sendSMTP(to, subject, body string) error {
	var auth smtp.Auth
	if s.config.Username != "" {
		auth = smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)
	}

	from := s.config.FromEmail
	if s.config.FromName != "" {
		from = fmt.Sprintf("%s <%s>", s.config.FromName, s.config.FromEmail)
	}

	addr := fmt.Sprintf("%s:%s", s.config.Host, s.config.Port)
	return smtp.SendMail(addr, auth, s.config.FromEmail, []string{to}, buildMessage(from, to, subject, body))
}

func buildMessage(from, to, subject, body string) []byte {
	return []byte(fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s",
		headerText(from), headerText(to), mime.QEncoding.Encode("utf-8", headerText(subject)), body))
}

var headerBreaks = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

// headerText flattens s onto one line so it cannot start a new header.
func headerText(s string) string {
	return strings.TrimSpace(headerBreaks.Replace(s))
}
