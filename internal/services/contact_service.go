// internal/services/contact_service.go
package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/sportsfed/fedsite/internal/cache"
	"github.com/sportsfed/fedsite/internal/models"
)

type ContactInput struct {
	Name    *string `json:"name" validate:"required,notblank,single_line"`
	Email   *string `json:"email" validate:"required,notblank,opt_email"`
	Phone   *string `json:"phone"`
	Subject *string `json:"subject" validate:"omitempty,single_line"`
	Message *string `json:"message" validate:"required,notblank"`
}

func (in *ContactInput) Build() (*models.Contact, error) {
	return &models.Contact{
		Name:    text(in.Name),
		Email:   text(in.Email),
		Phone:   optionalText(in.Phone),
		Subject: optionalText(in.Subject),
		Message: text(in.Message),
	}, nil
}

func (in *ContactInput) Changes() (map[string]interface{}, error) {
	c := changeSet{}
	c.text("name", in.Name)
	c.text("email", in.Email)
	c.optionalText("phone", in.Phone)
	c.optionalText("subject", in.Subject)
	c.text("message", in.Message)
	return c, nil
}

// ContactNotifier is told about every new contact message.
type ContactNotifier interface {
	ContactReceived(contact *models.Contact)
}

type ContactService struct {
	*ContentService[models.Contact]
	notifier ContactNotifier
}

func NewContactService(db *gorm.DB, c cache.Cache, notifier ContactNotifier) *ContactService {
	return &ContactService{
		ContentService: NewContentService(db, c, ContentOptions[models.Contact]{
			Name:  "Contact message",
			Key:   "contacts",
			Order: "created_at DESC, id DESC",
		}),
		notifier: notifier,
	}
}

func (s *ContactService) Create(ctx context.Context, input Input[models.Contact]) (*models.Contact, error) {
	contact, err := s.ContentService.Create(ctx, input)
	if err != nil {
		return nil, err
	}
	if s.notifier != nil {
		s.notifier.ContactReceived(contact)
	}
	return contact, nil
}

func (s *ContactService) MarkRead(ctx context.Context, id uint) (*models.Contact, error) {
	return s.UpdateColumns(ctx, id, map[string]interface{}{"is_read": true})
}
