package auth

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hassan-414/Backend-Blog-Project/internal/users"
)

type updateProfileDTO struct {
	FirstName     string `json:"firstName" binding:"omitempty,max=50"`
	LastName      string `json:"lastName" binding:"omitempty,max=50"`
	Age           *int   `json:"age" binding:"omitempty,gte=1,lte=120"`
	Gender        string `json:"gender" binding:"omitempty,oneof=Male Female Other"`
	Phone         string `json:"phone" binding:"omitempty,numeric,min=10,max=15"`
	Country       string `json:"country"`
	City          string `json:"city"`
	Address       string `json:"address" binding:"omitempty,max=200"`
	Qualification string `json:"qualification" binding:"omitempty,max=100"`
}

func (h *Handler) loadCaller(c *gin.Context) (*users.User, bool) {
	uid, ok := UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Access denied. Please login to continue."})
		return nil, false
	}

	var u users.User
	if err := h.DB.First(&u, uid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found!"})
			return nil, false
		}
		log.Printf("user lookup error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return nil, false
	}
	return &u, true
}

// MeHandler returns the caller's full profile, password excluded.
func (h *Handler) MeHandler(c *gin.Context) {
	u, ok := h.loadCaller(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, users.ToResponse(u))
}

// UpdateProfileHandler applies a partial update to the optional profile
// fields. Identity fields (email, username, password) are not editable
// through this route.
func (h *Handler) UpdateProfileHandler(c *gin.Context) {
	var body updateProfileDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	u, ok := h.loadCaller(c)
	if !ok {
		return
	}

	if body.FirstName != "" {
		u.FirstName = strings.TrimSpace(body.FirstName)
	}
	if body.LastName != "" {
		u.LastName = strings.TrimSpace(body.LastName)
	}
	if body.Age != nil {
		u.Age = *body.Age
	}
	if body.Gender != "" {
		u.Gender = body.Gender
	}
	if body.Phone != "" {
		u.Phone = strings.TrimSpace(body.Phone)
	}
	if body.Country != "" {
		u.Country = strings.TrimSpace(body.Country)
	}
	if body.City != "" {
		u.City = strings.TrimSpace(body.City)
	}
	if body.Address != "" {
		u.Address = strings.TrimSpace(body.Address)
	}
	if body.Qualification != "" {
		u.Qualification = strings.TrimSpace(body.Qualification)
	}

	if err := h.DB.Save(u).Error; err != nil {
		log.Printf("profile update error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully!",
		"user":    users.ToResponse(u),
	})
}

// VerifyHandler confirms the token maps to a live account and returns a
// minimal identity payload.
func (h *Handler) VerifyHandler(c *gin.Context) {
	u, ok := h.loadCaller(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": users.ToSummary(u)})
}
