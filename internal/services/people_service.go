// internal/services/people_service.go
package services

import (
	"gorm.io/gorm"

	"github.com/sportsfed/fedsite/internal/cache"
	"github.com/sportsfed/fedsite/internal/models"
	"github.com/sportsfed/fedsite/internal/utils"
)

type PlayerInput struct {
	Name         *string          `json:"name" validate:"required,notblank"`
	Club         *string          `json:"club" validate:"required,notblank"`
	State        *string          `json:"state" validate:"required,notblank"`
	Category     *string          `json:"category" validate:"required,notblank"`
	PhotoURL     *string          `json:"photoUrl" validate:"omitempty,http_url"`
	TotalPoints  *utils.IntString `json:"totalPoints" validate:"omitempty,nonneg_int"`
	Achievements *string          `json:"achievements"`
	AwardsWon    *utils.IntString `json:"awardsWon" validate:"omitempty,nonneg_int"`
	GamesPlayed  *utils.IntString `json:"gamesPlayed" validate:"omitempty,nonneg_int"`
	Biography    *string          `json:"biography"`
}

func (in *PlayerInput) Build() (*models.Player, error) {
	return &models.Player{
		Name:         text(in.Name),
		Club:         text(in.Club),
		State:        text(in.State),
		Category:     text(in.Category),
		PhotoURL:     optionalText(in.PhotoURL),
		TotalPoints:  intValue(in.TotalPoints),
		Achievements: optionalText(in.Achievements),
		AwardsWon:    intValue(in.AwardsWon),
		GamesPlayed:  intValue(in.GamesPlayed),
		Biography:    optionalText(in.Biography),
	}, nil
}

func (in *PlayerInput) Changes() (map[string]interface{}, error) {
	c := changeSet{}
	c.text("name", in.Name)
	c.text("club", in.Club)
	c.text("state", in.State)
	c.text("category", in.Category)
	c.optionalText("photo_url", in.PhotoURL)
	c.int("total_points", in.TotalPoints)
	c.optionalText("achievements", in.Achievements)
	c.int("awards_won", in.AwardsWon)
	c.int("games_played", in.GamesPlayed)
	c.optionalText("biography", in.Biography)
	return c, nil
}

// NewPlayerService lists players as a ranking table.
func NewPlayerService(db *gorm.DB, c cache.Cache) *ContentService[models.Player] {
	return NewContentService(db, c, ContentOptions[models.Player]{
		Name:  "Player",
		Key:   "players",
		Order: "total_points DESC, name ASC, id ASC",
	})
}

type LeaderInput struct {
	Name     *string          `json:"name" validate:"required,notblank"`
	Position *string          `json:"position" validate:"required,notblank"`
	PhotoURL *string          `json:"photoUrl" validate:"omitempty,http_url"`
	Bio      *string          `json:"bio"`
	Order    *utils.IntString `json:"order" validate:"omitempty,nonneg_int"`
}

func (in *LeaderInput) Build() (*models.Leader, error) {
	return &models.Leader{
		Name:     text(in.Name),
		Position: text(in.Position),
		PhotoURL: optionalText(in.PhotoURL),
		Bio:      optionalText(in.Bio),
		Order:    intValue(in.Order),
	}, nil
}

func (in *LeaderInput) Changes() (map[string]interface{}, error) {
	c := changeSet{}
	c.text("name", in.Name)
	c.text("position", in.Position)
	c.optionalText("photo_url", in.PhotoURL)
	c.optionalText("bio", in.Bio)
	c.int("sort_order", in.Order)
	return c, nil
}

func NewLeaderService(db *gorm.DB, c cache.Cache) *ContentService[models.Leader] {
	return NewContentService(db, c, ContentOptions[models.Leader]{
		Name:  "Leader",
		Key:   "leaders",
		Order: "sort_order ASC, id ASC",
	})
}
