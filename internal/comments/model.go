package comments

import (
	"time"

	"github.com/hassan-414/Backend-Blog-Project/internal/blogs"
	"github.com/hassan-414/Backend-Blog-Project/internal/users"
)

type Comment struct {
	ID        uint   `gorm:"primaryKey"`
	Content   string `gorm:"not null"`
	BlogID    uint   `gorm:"not null;index"`
	Blog      blogs.Blog
	UserID    uint `gorm:"not null;index"`
	User      users.User
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CommentResponse struct {
	ID        uint          `json:"id"`
	Content   string        `json:"content"`
	BlogID    uint          `json:"blogId"`
	User      users.Summary `json:"user"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

func toResponse(cm *Comment) CommentResponse {
	return CommentResponse{
		ID:        cm.ID,
		Content:   cm.Content,
		BlogID:    cm.BlogID,
		User:      users.ToSummary(&cm.User),
		CreatedAt: cm.CreatedAt,
		UpdatedAt: cm.UpdatedAt,
	}
}

func toResponses(cms []Comment) []CommentResponse {
	out := make([]CommentResponse, 0, len(cms))
	for i := range cms {
		out = append(out, toResponse(&cms[i]))
	}
	return out
}
