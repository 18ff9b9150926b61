package comments

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hassan-414/Backend-Blog-Project/internal/auth"
	"github.com/hassan-414/Backend-Blog-Project/internal/blogs"
)

type Handler struct {
	DB *gorm.DB
}

type createCommentDTO struct {
	Content string `json:"content"`
	BlogID  uint   `json:"blogId"`
}

type updateCommentDTO struct {
	Content string `json:"content"`
}

// ListForBlogHandler returns the comments on a blog, newest first, with
// the commenter summary populated. Public route.
func (h *Handler) ListForBlogHandler(c *gin.Context) {
	blogID, err := strconv.ParseUint(c.Param("blogId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid blog id"})
		return
	}

	var list []Comment
	if err := h.DB.Preload("User").Where("blog_id = ?", uint(blogID)).
		Order("created_at DESC").Find(&list).Error; err != nil {
		log.Printf("comment list error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching comments"})
		return
	}
	c.JSON(http.StatusOK, toResponses(list))
}

// CreateCommentHandler adds a comment to an existing blog. Content is
// stored trimmed and the commenter is always the authenticated caller.
func (h *Handler) CreateCommentHandler(c *gin.Context) {
	uid, ok := auth.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Access denied. Please login to continue."})
		return
	}

	var body createCommentDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	content := strings.TrimSpace(body.Content)
	if content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Comment content is required"})
		return
	}
	if body.BlogID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Blog ID is required"})
		return
	}

	var blog blogs.Blog
	if err := h.DB.First(&blog, body.BlogID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Blog not found"})
			return
		}
		log.Printf("comment blog lookup error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating comment"})
		return
	}

	comment := Comment{
		Content: content,
		BlogID:  body.BlogID,
		UserID:  uid,
	}

	if err := h.DB.Create(&comment).Error; err != nil {
		log.Printf("comment create error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating comment"})
		return
	}

	if err := h.DB.Preload("User").First(&comment, comment.ID).Error; err != nil {
		log.Printf("comment reload error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating comment"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Comment added successfully",
		"comment": toResponse(&comment),
	})
}

// UpdateCommentHandler edits a comment's content. Existence is checked
// before ownership so a missing comment never reads as forbidden.
func (h *Handler) UpdateCommentHandler(c *gin.Context) {
	uid, ok := auth.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Access denied. Please login to continue."})
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid comment id"})
		return
	}

	var body updateCommentDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	content := strings.TrimSpace(body.Content)
	if content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Comment content is required"})
		return
	}

	var comment Comment
	if err := h.DB.First(&comment, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Comment not found"})
			return
		}
		log.Printf("comment lookup error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating comment"})
		return
	}

	if comment.UserID != uid {
		c.JSON(http.StatusForbidden, gin.H{"message": "Not authorized to edit this comment"})
		return
	}

	comment.Content = content
	if err := h.DB.Save(&comment).Error; err != nil {
		log.Printf("comment update error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating comment"})
		return
	}

	if err := h.DB.Preload("User").First(&comment, comment.ID).Error; err != nil {
		log.Printf("comment reload error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating comment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Comment updated successfully",
		"comment": toResponse(&comment),
	})
}

// DeleteCommentHandler removes a comment after the same
// existence-then-owner check as update.
func (h *Handler) DeleteCommentHandler(c *gin.Context) {
	uid, ok := auth.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Access denied. Please login to continue."})
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid comment id"})
		return
	}

	var comment Comment
	if err := h.DB.First(&comment, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Comment not found"})
			return
		}
		log.Printf("comment lookup error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting comment"})
		return
	}

	if comment.UserID != uid {
		c.JSON(http.StatusForbidden, gin.H{"message": "Not authorized to delete this comment"})
		return
	}

	if err := h.DB.Delete(&Comment{}, uint(id)).Error; err != nil {
		log.Printf("comment delete error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting comment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Comment deleted successfully",
		"commentId": uint(id),
	})
}
