package blogs

import (
	"time"

	"github.com/hassan-414/Backend-Blog-Project/internal/users"
)

// Categories a blog may belong to. Validated on create and update.
var ValidCategories = []string{"Business", "Study", "Technology", "Food", "Travel", "Others"}

func IsValidCategory(cat string) bool {
	for _, c := range ValidCategories {
		if c == cat {
			return true
		}
	}
	return false
}

type Blog struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"not null"`
	Description string `gorm:"not null"`
	Category    string `gorm:"not null"`
	Image       string
	AuthorID    uint       `gorm:"not null;index"`
	Author      users.User `gorm:"foreignKey:AuthorID"`
	CreatedAt   time.Time
}

type BlogResponse struct {
	ID          uint          `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Category    string        `json:"category"`
	Image       string        `json:"image,omitempty"`
	Author      users.Summary `json:"author"`
	CreatedAt   time.Time     `json:"createdAt"`
}

func toResponse(b *Blog) BlogResponse {
	return BlogResponse{
		ID:          b.ID,
		Title:       b.Title,
		Description: b.Description,
		Category:    b.Category,
		Image:       b.Image,
		Author:      users.ToSummary(&b.Author),
		CreatedAt:   b.CreatedAt,
	}
}

func toResponses(bs []Blog) []BlogResponse {
	out := make([]BlogResponse, 0, len(bs))
	for i := range bs {
		out = append(out, toResponse(&bs[i]))
	}
	return out
}
