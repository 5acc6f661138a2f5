// internal/models/content.go
package models

import (
	"time"
)

type HeroSlide struct {
	BaseModel
	ImageURL    string  `json:"imageUrl" gorm:"type:text;not null"`
	Headline    string  `json:"headline" gorm:"size:255;not null"`
	Subheadline *string `json:"subheadline" gorm:"type:text"`
	CTAText     *string `json:"ctaText" gorm:"size:100"`
	CTALink     *string `json:"ctaLink" gorm:"type:text"`
	Order       int     `json:"order" gorm:"column:sort_order;not null;default:0;index"`
	IsActive    bool    `json:"isActive" gorm:"not null"`
}

type News struct {
	BaseModel
	Title       string    `json:"title" gorm:"size:255;not null"`
	Content     string    `json:"content" gorm:"type:text;not null"`
	ContentHTML string    `json:"contentHtml" gorm:"type:text;not null"`
	Excerpt     string    `json:"excerpt" gorm:"type:text;not null"`
	ImageURL    *string   `json:"imageUrl" gorm:"type:text"`
	IsFeatured  bool      `json:"isFeatured" gorm:"not null;index"`
	PublishedAt time.Time `json:"publishedAt" gorm:"not null;index"`
}

type Event struct {
	BaseModel
	Title                string     `json:"title" gorm:"size:255;not null"`
	Description          string     `json:"description" gorm:"type:text;not null"`
	Venue                string     `json:"venue" gorm:"size:255;not null"`
	City                 string     `json:"city" gorm:"size:100;not null"`
	State                string     `json:"state" gorm:"size:100;not null"`
	EventDate            time.Time  `json:"eventDate" gorm:"not null;index"`
	RegistrationDeadline *time.Time `json:"registrationDeadline"`
	RegistrationLink     *string    `json:"registrationLink" gorm:"type:text"`
	ImageURL             *string    `json:"imageUrl" gorm:"type:text"`
	IsFeatured           bool       `json:"isFeatured" gorm:"not null;index"`
}

type Player struct {
	BaseModel
	Name         string  `json:"name" gorm:"size:255;not null"`
	Club         string  `json:"club" gorm:"size:255;not null"`
	State        string  `json:"state" gorm:"size:100;not null;index"`
	Category     string  `json:"category" gorm:"size:100;not null;index"`
	PhotoURL     *string `json:"photoUrl" gorm:"type:text"`
	TotalPoints  int     `json:"totalPoints" gorm:"not null;default:0"`
	Achievements *string `json:"achievements" gorm:"type:text"`
	AwardsWon    int     `json:"awardsWon" gorm:"not null;default:0"`
	GamesPlayed  int     `json:"gamesPlayed" gorm:"not null;default:0"`
	Biography    *string `json:"biography" gorm:"type:text"`
}

type Club struct {
	BaseModel
	Name         string  `json:"name" gorm:"size:255;not null"`
	City         string  `json:"city" gorm:"size:100;not null"`
	State        string  `json:"state" gorm:"size:100;not null;index"`
	ManagerName  string  `json:"managerName" gorm:"size:255;not null"`
	ContactEmail string  `json:"contactEmail" gorm:"size:255;not null"`
	ContactPhone string  `json:"contactPhone" gorm:"size:50;not null"`
	LogoURL      *string `json:"logoUrl" gorm:"type:text"`
	IsRegistered bool    `json:"isRegistered" gorm:"not null"`
}

type MemberState struct {
	BaseModel
	Name               string  `json:"name" gorm:"size:255;not null"`
	LogoURL            *string `json:"logoUrl" gorm:"type:text"`
	RepresentativeName *string `json:"representativeName" gorm:"size:255"`
	ContactEmail       *string `json:"contactEmail" gorm:"size:255"`
	ContactPhone       *string `json:"contactPhone" gorm:"size:50"`
	IsRegistered       bool    `json:"isRegistered" gorm:"not null"`
}

type Leader struct {
	BaseModel
	Name     string  `json:"name" gorm:"size:255;not null"`
	Position string  `json:"position" gorm:"size:255;not null"`
	PhotoURL *string `json:"photoUrl" gorm:"type:text"`
	Bio      *string `json:"bio" gorm:"type:text"`
	Order    int     `json:"order" gorm:"column:sort_order;not null;default:0;index"`
}

// Media is a gallery item. External items (IsExternal) point off-platform,
// e.g. at a YouTube video, and may carry a derived thumbnail; direct items
// never do.
type Media struct {
	BaseModel
	Title        string  `json:"title" gorm:"size:255;not null"`
	Description  *string `json:"description" gorm:"type:text"`
	ImageURL     string  `json:"imageUrl" gorm:"type:text;not null"`
	Category     string  `json:"category" gorm:"size:100;not null;index"`
	IsExternal   bool    `json:"isExternal" gorm:"not null"`
	ThumbnailURL *string `json:"thumbnailUrl" gorm:"type:text"`
}

type Affiliation struct {
	BaseModel
	Name        string  `json:"name" gorm:"size:255;not null"`
	LogoURL     string  `json:"logoUrl" gorm:"type:text;not null"`
	Website     *string `json:"website" gorm:"type:text"`
	Description *string `json:"description" gorm:"type:text"`
	Order       int     `json:"order" gorm:"column:sort_order;not null;default:0;index"`
}

// Contact is a message submitted through the public contact form.
// IsRead is only ever changed by the server.
type Contact struct {
	BaseModel
	Name    string  `json:"name" gorm:"size:255;not null"`
	Email   string  `json:"email" gorm:"size:255;not null"`
	Phone   *string `json:"phone" gorm:"size:50"`
	Subject *string `json:"subject" gorm:"size:255"`
	Message string  `json:"message" gorm:"type:text;not null"`
	IsRead  bool    `json:"isRead" gorm:"not null;index"`
}

type SiteSetting struct {
	BaseModel
	Key   string `json:"key" gorm:"uniqueIndex;size:100;not null"`
	Value string `json:"value" gorm:"type:text;not null"`
}

func (News) TableName() string  { return "news" }
func (Media) TableName() string { return "media" }
