// internal/services/hero_slide_service.go
package services

import (
	"gorm.io/gorm"

	"github.com/sportsfed/fedsite/internal/cache"
	"github.com/sportsfed/fedsite/internal/models"
	"github.com/sportsfed/fedsite/internal/utils"
)

type HeroSlideInput struct {
	ImageURL    *string          `json:"imageUrl" validate:"required,notblank,http_url"`
	Headline    *string          `json:"headline" validate:"required,notblank"`
	Subheadline *string          `json:"subheadline"`
	CTAText     *string          `json:"ctaText"`
	CTALink     *string          `json:"ctaLink" validate:"omitempty,http_url"`
	Order       *utils.IntString `json:"order" validate:"omitempty,nonneg_int"`
	IsActive    *bool            `json:"isActive"`
}

func (in *HeroSlideInput) Build() (*models.HeroSlide, error) {
	return &models.HeroSlide{
		ImageURL:    text(in.ImageURL),
		Headline:    text(in.Headline),
		Subheadline: optionalText(in.Subheadline),
		CTAText:     optionalText(in.CTAText),
		CTALink:     optionalText(in.CTALink),
		Order:       intValue(in.Order),
		IsActive:    boolOr(in.IsActive, true),
	}, nil
}

func (in *HeroSlideInput) Changes() (map[string]interface{}, error) {
	c := changeSet{}
	c.text("image_url", in.ImageURL)
	c.text("headline", in.Headline)
	c.optionalText("subheadline", in.Subheadline)
	c.optionalText("cta_text", in.CTAText)
	c.optionalText("cta_link", in.CTALink)
	c.int("sort_order", in.Order)
	c.bool("is_active", in.IsActive)
	return c, nil
}

func NewHeroSlideService(db *gorm.DB, c cache.Cache) *ContentService[models.HeroSlide] {
	return NewContentService(db, c, ContentOptions[models.HeroSlide]{
		Name:  "Hero slide",
		Key:   "hero-slides",
		Order: "sort_order ASC, id ASC",
	})
}

// ActiveOnly limits hero slides to the ones shown on the home page.
func ActiveOnly(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}
