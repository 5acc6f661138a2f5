// internal/services/organization_service.go
package services

import (
	"gorm.io/gorm"

	"github.com/sportsfed/fedsite/internal/cache"
	"github.com/sportsfed/fedsite/internal/models"
	"github.com/sportsfed/fedsite/internal/utils"
)

type ClubInput struct {
	Name         *string `json:"name" validate:"required,notblank"`
	City         *string `json:"city" validate:"required,notblank"`
	State        *string `json:"state" validate:"required,notblank"`
	ManagerName  *string `json:"managerName" validate:"required,notblank"`
	ContactEmail *string `json:"contactEmail" validate:"required,notblank,opt_email"`
	ContactPhone *string `json:"contactPhone" validate:"required,notblank"`
	LogoURL      *string `json:"logoUrl" validate:"omitempty,http_url"`
	IsRegistered *bool   `json:"isRegistered"`
}

func (in *ClubInput) Build() (*models.Club, error) {
	return &models.Club{
		Name:         text(in.Name),
		City:         text(in.City),
		State:        text(in.State),
		ManagerName:  text(in.ManagerName),
		ContactEmail: text(in.ContactEmail),
		ContactPhone: text(in.ContactPhone),
		LogoURL:      optionalText(in.LogoURL),
		IsRegistered: boolOr(in.IsRegistered, true),
	}, nil
}

func (in *ClubInput) Changes() (map[string]interface{}, error) {
	c := changeSet{}
	c.text("name", in.Name)
	c.text("city", in.City)
	c.text("state", in.State)
	c.text("manager_name", in.ManagerName)
	c.text("contact_email", in.ContactEmail)
	c.text("contact_phone", in.ContactPhone)
	c.optionalText("logo_url", in.LogoURL)
	c.bool("is_registered", in.IsRegistered)
	return c, nil
}

func NewClubService(db *gorm.DB, c cache.Cache) *ContentService[models.Club] {
	return NewContentService(db, c, ContentOptions[models.Club]{
		Name:  "Club",
		Key:   "clubs",
		Order: "name ASC, id ASC",
	})
}

type MemberStateInput struct {
	Name               *string `json:"name" validate:"required,notblank"`
	LogoURL            *string `json:"logoUrl" validate:"omitempty,http_url"`
	RepresentativeName *string `json:"representativeName"`
	ContactEmail       *string `json:"contactEmail" validate:"omitempty,opt_email"`
	ContactPhone       *string `json:"contactPhone"`
	IsRegistered       *bool   `json:"isRegistered"`
}

func (in *MemberStateInput) Build() (*models.MemberState, error) {
	return &models.MemberState{
		Name:               text(in.Name),
		LogoURL:            optionalText(in.LogoURL),
		RepresentativeName: optionalText(in.RepresentativeName),
		ContactEmail:       optionalText(in.ContactEmail),
		ContactPhone:       optionalText(in.ContactPhone),
		IsRegistered:       boolOr(in.IsRegistered, true),
	}, nil
}

func (in *MemberStateInput) Changes() (map[string]interface{}, error) {
	c := changeSet{}
	c.text("name", in.Name)
	c.optionalText("logo_url", in.LogoURL)
	c.optionalText("representative_name", in.RepresentativeName)
	c.optionalText("contact_email", in.ContactEmail)
	c.optionalText("contact_phone", in.ContactPhone)
	c.bool("is_registered", in.IsRegistered)
	return c, nil
}

func NewMemberStateService(db *gorm.DB, c cache.Cache) *ContentService[models.MemberState] {
	return NewContentService(db, c, ContentOptions[models.MemberState]{
		Name:  "Member state",
		Key:   "member-states",
		Order: "name ASC, id ASC",
	})
}

type AffiliationInput struct {
	Name        *string          `json:"name" validate:"required,notblank"`
	LogoURL     *string          `json:"logoUrl" validate:"required,notblank,http_url"`
	Website     *string          `json:"website" validate:"omitempty,http_url"`
	Description *string          `json:"description"`
	Order       *utils.IntString `json:"order" validate:"omitempty,nonneg_int"`
}

func (in *AffiliationInput) Build() (*models.Affiliation, error) {
	return &models.Affiliation{
		Name:        text(in.Name),
		LogoURL:     text(in.LogoURL),
		Website:     optionalText(in.Website),
		Description: optionalText(in.Description),
		Order:       intValue(in.Order),
	}, nil
}

func (in *AffiliationInput) Changes() (map[string]interface{}, error) {
	c := changeSet{}
	c.text("name", in.Name)
	c.text("logo_url", in.LogoURL)
	c.optionalText("website", in.Website)
	c.optionalText("description", in.Description)
	c.int("sort_order", in.Order)
	return c, nil
}

func NewAffiliationService(db *gorm.DB, c cache.Cache) *ContentService[models.Affiliation] {
	return NewContentService(db, c, ContentOptions[models.Affiliation]{
		Name:  "Affiliation",
		Key:   "affiliations",
		Order: "sort_order ASC, id ASC",
	})
}
