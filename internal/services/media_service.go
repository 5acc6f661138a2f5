// internal/services/media_service.go
package services

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"gorm.io/gorm"

	"github.com/sportsfed/fedsite/internal/cache"
	"github.com/sportsfed/fedsite/internal/models"
)

var youTubeIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// MediaInput accepts either an uploaded image (imageUrl) or a link to an
// external item such as a YouTube video (externalUrl), never both.
type MediaInput struct {
	Title       *string `json:"title" validate:"required,notblank"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl" validate:"omitempty,http_url"`
	ExternalURL *string `json:"externalUrl" validate:"omitempty,http_url"`
	Category    *string `json:"category" validate:"required,notblank"`
}

func (in *MediaInput) Build() (*models.Media, error) {
	item := &models.Media{
		Title:       text(in.Title),
		Description: optionalText(in.Description),
		Category:    text(in.Category),
	}
	if err := in.applySource(item); err != nil {
		return nil, err
	}
	if item.ImageURL == "" {
		return nil, invalidInput("imageUrl is required")
	}
	return item, nil
}

func (in *MediaInput) Changes() (map[string]interface{}, error) {
	c := changeSet{}
	c.text("title", in.Title)
	c.optionalText("description", in.Description)
	c.text("category", in.Category)

	if in.ImageURL != nil || in.ExternalURL != nil {
		var item models.Media
		if err := in.applySource(&item); err != nil {
			return nil, err
		}
		if item.ImageURL == "" {
			return nil, invalidInput("imageUrl is required")
		}
		c["image_url"] = item.ImageURL
		c["is_external"] = item.IsExternal
		if item.ThumbnailURL != nil {
			c["thumbnail_url"] = *item.ThumbnailURL
		} else {
			c["thumbnail_url"] = nil
		}
	}
	return c, nil
}

func (in *MediaInput) applySource(item *models.Media) error {
	image, external := text(in.ImageURL), text(in.ExternalURL)
	switch {
	case image != "" && external != "":
		return invalidInput("provide either imageUrl or externalUrl, not both")
	case external != "":
		item.ImageURL = external
		item.IsExternal = true
		if thumb, ok := YouTubeThumbnail(external); ok {
			item.ThumbnailURL = &thumb
		}
	case image != "":
		item.ImageURL = image
		item.IsExternal = false
		item.ThumbnailURL = nil
	}
	return nil
}

// YouTubeThumbnail returns the hqdefault thumbnail of a YouTube watch,
// share, embed or shorts URL.
func YouTubeThumbnail(raw string) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", false
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	host = strings.TrimPrefix(host, "m.")

	var id string
	switch host {
	case "youtu.be":
		id = firstSegment(u.Path)
	case "youtube.com", "youtube-nocookie.com", "music.youtube.com":
		switch {
		case u.Path == "/watch":
			id = u.Query().Get("v")
		case strings.HasPrefix(u.Path, "/embed/"):
			id = firstSegment(strings.TrimPrefix(u.Path, "/embed/"))
		case strings.HasPrefix(u.Path, "/shorts/"):
			id = firstSegment(strings.TrimPrefix(u.Path, "/shorts/"))
		case strings.HasPrefix(u.Path, "/v/"):
			id = firstSegment(strings.TrimPrefix(u.Path, "/v/"))
		}
	}

	if !youTubeIDPattern.MatchString(id) {
		return "", false
	}
	return fmt.Sprintf("https://img.youtube.com/vi/%s/hqdefault.jpg", id), true
}

func firstSegment(path string) string {
	return strings.SplitN(strings.TrimPrefix(path, "/"), "/", 2)[0]
}

func NewMediaService(db *gorm.DB, c cache.Cache) *ContentService[models.Media] {
	return NewContentService(db, c, ContentOptions[models.Media]{
		Name:  "Media item",
		Key:   "media",
		Order: "created_at DESC, id DESC",
	})
}

// InCategory limits media to one gallery category.
func InCategory(category string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("category = ?", category)
	}
}
