package users

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Handler struct {
	DB *gorm.DB
}

type SignupDTO struct {
	Username     string `json:"username" binding:"required,min=3,max=30"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=5,max=100"`
	ProfileImage string `json:"profileImage"`
}

func HashPassword(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	return string(b), err
}

// SignupHandler registers a new account. Emails are normalized to
// lowercase and only the gmail.com domain is accepted.
func (h *Handler) SignupHandler(c *gin.Context) {
	var body SignupDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	email := strings.ToLower(body.Email)
	if !strings.HasSuffix(email, "@gmail.com") {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Only @gmail.com emails are allowed!"})
		return
	}

	var existing User
	err := h.DB.First(&existing, "email = ?", email).Error
	if err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email already registered. Please log in!"})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("signup lookup error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}

	hashed, err := HashPassword(body.Password)
	if err != nil {
		log.Printf("hash password error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}

	profileImage := body.ProfileImage
	if profileImage == "" {
		profileImage = DefaultProfileImage
	}

	user := User{
		Username:     body.Username,
		Email:        email,
		PasswordHash: hashed,
		ProfileImage: profileImage,
	}

	if err := h.DB.Create(&user).Error; err != nil {
		log.Printf("signup create error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "User registered successfully!"})
}
