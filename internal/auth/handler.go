package auth

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/hassan-414/Backend-Blog-Project/internal/users"
)

const cookieMaxAge = 7 * 24 * 60 * 60 // seconds, matches the token TTL

type Handler struct {
	DB            *gorm.DB
	Tokens        *TokenService
	SecureCookies bool
}

type loginDTO struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginHandler checks credentials and issues a token. A missing user and
// a wrong password produce the same response so the error does not say
// which of the two fields was wrong.
func (h *Handler) LoginHandler(c *gin.Context) {
	var dto loginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	var u users.User
	if err := h.DB.First(&u, "email = ?", dto.Email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
			return
		}
		log.Printf("login lookup error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(dto.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	tok, err := h.Tokens.Issue(&u)
	if err != nil {
		log.Printf("token issue error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(CookieName, tok, cookieMaxAge, "/", "", h.SecureCookies, true)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"user":    users.ToSummary(&u),
		"token":   tok,
	})
}

// LogoutHandler clears the cookie. Tokens are not revoked server-side;
// one issued before logout stays valid until it expires.
func (h *Handler) LogoutHandler(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(CookieName, "", -1, "/", "", h.SecureCookies, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logout successful!"})
}
