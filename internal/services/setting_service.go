// internal/services/setting_service.go
package services

import (
	"gorm.io/gorm"

	"github.com/sportsfed/fedsite/internal/cache"
	"github.com/sportsfed/fedsite/internal/models"
)

type SiteSettingInput struct {
	Key   *string `json:"key" validate:"required,notblank"`
	Value *string `json:"value" validate:"required"`
}

func (in *SiteSettingInput) Build() (*models.SiteSetting, error) {
	return &models.SiteSetting{
		Key:   text(in.Key),
		Value: *in.Value,
	}, nil
}

func (in *SiteSettingInput) Changes() (map[string]interface{}, error) {
	c := changeSet{}
	c.text("key", in.Key)
	if in.Value != nil {
		c["value"] = *in.Value
	}
	return c, nil
}

// NewSiteSettingService keys settings uniquely by name.
func NewSiteSettingService(db *gorm.DB, c cache.Cache) *ContentService[models.SiteSetting] {
	return NewContentService(db, c, ContentOptions[models.SiteSetting]{
		Name:  "Setting",
		Key:   "settings",
		Order: "key ASC, id ASC",
		Unique: &UniqueField[models.SiteSetting]{
			Column: "key",
			Value:  func(s *models.SiteSetting) string { return s.Key },
		},
	})
}
