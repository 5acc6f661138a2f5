// internal/services/news_service.go
package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/sportsfed/fedsite/internal/cache"
	"github.com/sportsfed/fedsite/internal/models"
	"github.com/sportsfed/fedsite/internal/utils"
)

// NewsInput carries article content as markdown; the rendered and
// sanitized HTML is stored alongside it.
type NewsInput struct {
	Title       *string           `json:"title" validate:"required,notblank"`
	Content     *string           `json:"content" validate:"required,notblank"`
	Excerpt     *string           `json:"excerpt" validate:"required,notblank"`
	ImageURL    *string           `json:"imageUrl" validate:"omitempty,http_url"`
	IsFeatured  *bool             `json:"isFeatured"`
	PublishedAt *utils.DateString `json:"publishedAt" validate:"omitempty,flex_date"`
}

func (in *NewsInput) Build() (*models.News, error) {
	content := text(in.Content)
	publishedAt := time.Now().UTC()
	if t := optionalDate(in.PublishedAt); t != nil {
		publishedAt = *t
	}

	return &models.News{
		Title:       text(in.Title),
		Content:     content,
		ContentHTML: utils.RenderMarkdown(content),
		Excerpt:     text(in.Excerpt),
		ImageURL:    optionalText(in.ImageURL),
		IsFeatured:  boolOr(in.IsFeatured, false),
		PublishedAt: publishedAt,
	}, nil
}

func (in *NewsInput) Changes() (map[string]interface{}, error) {
	c := changeSet{}
	c.text("title", in.Title)
	if in.Content != nil {
		content := text(in.Content)
		c["content"] = content
		c["content_html"] = utils.RenderMarkdown(content)
	}
	c.text("excerpt", in.Excerpt)
	c.optionalText("image_url", in.ImageURL)
	c.bool("is_featured", in.IsFeatured)
	if in.PublishedAt != nil && !in.PublishedAt.IsEmpty() {
		c["published_at"] = in.PublishedAt.Time()
	}
	return c, nil
}

func NewNewsService(db *gorm.DB, c cache.Cache) *ContentService[models.News] {
	return NewContentService(db, c, ContentOptions[models.News]{
		Name:  "News article",
		Key:   "news",
		Order: "published_at DESC, id DESC",
	})
}

type EventInput struct {
	Title                *string           `json:"title" validate:"required,notblank"`
	Description          *string           `json:"description" validate:"required,notblank"`
	Venue                *string           `json:"venue" validate:"required,notblank"`
	City                 *string           `json:"city" validate:"required,notblank"`
	State                *string           `json:"state" validate:"required,notblank"`
	EventDate            *utils.DateString `json:"eventDate" validate:"required,notblank,flex_date"`
	RegistrationDeadline *utils.DateString `json:"registrationDeadline" validate:"omitempty,flex_date"`
	RegistrationLink     *string           `json:"registrationLink" validate:"omitempty,http_url"`
	ImageURL             *string           `json:"imageUrl" validate:"omitempty,http_url"`
	IsFeatured           *bool             `json:"isFeatured"`
}

func (in *EventInput) Build() (*models.Event, error) {
	return &models.Event{
		Title:                text(in.Title),
		Description:          text(in.Description),
		Venue:                text(in.Venue),
		City:                 text(in.City),
		State:                text(in.State),
		EventDate:            in.EventDate.Time(),
		RegistrationDeadline: optionalDate(in.RegistrationDeadline),
		RegistrationLink:     optionalText(in.RegistrationLink),
		ImageURL:             optionalText(in.ImageURL),
		IsFeatured:           boolOr(in.IsFeatured, false),
	}, nil
}

func (in *EventInput) Changes() (map[string]interface{}, error) {
	c := changeSet{}
	c.text("title", in.Title)
	c.text("description", in.Description)
	c.text("venue", in.Venue)
	c.text("city", in.City)
	c.text("state", in.State)
	c.date("event_date", in.EventDate)
	c.optionalDate("registration_deadline", in.RegistrationDeadline)
	c.optionalText("registration_link", in.RegistrationLink)
	c.optionalText("image_url", in.ImageURL)
	c.bool("is_featured", in.IsFeatured)
	return c, nil
}

func NewEventService(db *gorm.DB, c cache.Cache) *ContentService[models.Event] {
	return NewContentService(db, c, ContentOptions[models.Event]{
		Name:  "Event",
		Key:   "events",
		Order: "event_date DESC, id DESC",
	})
}

// FeaturedOnly limits news or events to featured rows.
func FeaturedOnly(db *gorm.DB) *gorm.DB {
	return db.Where("is_featured = ?", true)
}
