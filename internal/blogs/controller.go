package blogs

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hassan-414/Backend-Blog-Project/internal/auth"
)

type Handler struct {
	DB *gorm.DB
}

type createBlogDTO struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Image       string `json:"image" binding:"required"`
	Category    string `json:"category" binding:"required"`
}

// updateBlogDTO carries optional fields; absent ones keep their current
// value. There is deliberately no author field here.
type updateBlogDTO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Category    string `json:"category"`
}

// CreateBlogHandler stores a new blog. The author is always the
// authenticated caller; nothing in the body can override it.
func (h *Handler) CreateBlogHandler(c *gin.Context) {
	uid, ok := auth.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Access denied. Please login to continue."})
		return
	}

	var body createBlogDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Title and description are required"})
		return
	}

	if !IsValidCategory(body.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid category selected"})
		return
	}

	blog := Blog{
		Title:       body.Title,
		Description: body.Description,
		Image:       body.Image,
		Category:    body.Category,
		AuthorID:    uid,
	}

	if err := h.DB.Create(&blog).Error; err != nil {
		log.Printf("blog create error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error posting blog"})
		return
	}

	if err := h.DB.Preload("Author").First(&blog, blog.ID).Error; err != nil {
		log.Printf("blog reload error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error posting blog"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Blog posted successfully!",
		"blog":    toResponse(&blog),
	})
}

// ListBlogsHandler returns every blog, newest first, with the author
// summary populated. Public route.
func (h *Handler) ListBlogsHandler(c *gin.Context) {
	var list []Blog
	if err := h.DB.Preload("Author").Order("created_at DESC").Find(&list).Error; err != nil {
		log.Printf("blog list error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching blogs"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"blogs": toResponses(list)})
}

// MyBlogsHandler returns the caller's blogs, newest first.
func (h *Handler) MyBlogsHandler(c *gin.Context) {
	uid, ok := auth.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Access denied. Please login to continue."})
		return
	}

	var list []Blog
	if err := h.DB.Preload("Author").Where("author_id = ?", uid).
		Order("created_at DESC").Find(&list).Error; err != nil {
		log.Printf("my blogs error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching user blogs"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"blogs": toResponses(list)})
}

// UpdateBlogHandler applies a partial update. Existence is checked
// before ownership so a missing blog never reads as forbidden.
func (h *Handler) UpdateBlogHandler(c *gin.Context) {
	uid, ok := auth.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Access denied. Please login to continue."})
		return
	}

	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid blog id"})
		return
	}

	var body updateBlogDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	var blog Blog
	if err := h.DB.First(&blog, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Blog not found"})
			return
		}
		log.Printf("blog lookup error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating blog"})
		return
	}

	if blog.AuthorID != uid {
		c.JSON(http.StatusForbidden, gin.H{"message": "Unauthorized: You can only edit your own blog"})
		return
	}

	if body.Category != "" && !IsValidCategory(body.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid category selected"})
		return
	}

	if body.Title != "" {
		blog.Title = body.Title
	}
	if body.Description != "" {
		blog.Description = body.Description
	}
	if body.Image != "" {
		blog.Image = body.Image
	}
	if body.Category != "" {
		blog.Category = body.Category
	}

	if err := h.DB.Save(&blog).Error; err != nil {
		log.Printf("blog update error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating blog"})
		return
	}

	if err := h.DB.Preload("Author").First(&blog, blog.ID).Error; err != nil {
		log.Printf("blog reload error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating blog"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Blog updated successfully",
		"blog":    toResponse(&blog),
	})
}

// DeleteBlogHandler removes a blog after the same existence-then-owner
// check as update.
func (h *Handler) DeleteBlogHandler(c *gin.Context) {
	uid, ok := auth.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Access denied. Please login to continue."})
		return
	}

	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid blog id"})
		return
	}

	var blog Blog
	if err := h.DB.First(&blog, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Blog not found"})
			return
		}
		log.Printf("blog lookup error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting blog"})
		return
	}

	if blog.AuthorID != uid {
		c.JSON(http.StatusForbidden, gin.H{"message": "You are not authorized to delete this blog"})
		return
	}

	if err := h.DB.Delete(&Blog{}, id).Error; err != nil {
		log.Printf("blog delete error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting blog"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Blog deleted successfully"})
}

func parseID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	return uint(id), err
}
