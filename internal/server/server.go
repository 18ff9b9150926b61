package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hassan-414/Backend-Blog-Project/internal/auth"
	"github.com/hassan-414/Backend-Blog-Project/internal/blogs"
	"github.com/hassan-414/Backend-Blog-Project/internal/comments"
	"github.com/hassan-414/Backend-Blog-Project/internal/config"
	"github.com/hassan-414/Backend-Blog-Project/internal/users"
)

// New assembles the gin engine: middleware, CORS and the full route
// table. Handlers get the database handle and token service explicitly
// so tests can stand up the whole router against a scratch database.
func New(db *gorm.DB, cfg config.Config) *gin.Engine {
	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)

	authHandler := &auth.Handler{DB: db, Tokens: tokens, SecureCookies: cfg.SecureCookies}
	userHandler := &users.Handler{DB: db}
	blogHandler := &blogs.Handler{DB: db}
	commentHandler := &comments.Handler{DB: db}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	requireAuth := auth.RequireAuth(tokens)

	// Auth + profile
	r.POST("/signup", userHandler.SignupHandler)
	r.POST("/login", authHandler.LoginHandler)
	r.POST("/logout", authHandler.LogoutHandler)
	r.GET("/user", requireAuth, authHandler.MeHandler)
	r.PUT("/user/update", requireAuth, authHandler.UpdateProfileHandler)
	r.GET("/user/verify", requireAuth, authHandler.VerifyHandler)

	// Blogs
	r.POST("/blogs", requireAuth, blogHandler.CreateBlogHandler)
	r.GET("/blogs", blogHandler.ListBlogsHandler)
	r.GET("/blogs/my-blogs", requireAuth, blogHandler.MyBlogsHandler)
	r.PUT("/blogs/:id", requireAuth, blogHandler.UpdateBlogHandler)
	r.DELETE("/blogs/:id", requireAuth, blogHandler.DeleteBlogHandler)

	// Comments
	r.GET("/comments/blog/:blogId", commentHandler.ListForBlogHandler)
	r.POST("/comments", requireAuth, commentHandler.CreateCommentHandler)
	r.PUT("/comments/:id", requireAuth, commentHandler.UpdateCommentHandler)
	r.DELETE("/comments/:id", requireAuth, commentHandler.DeleteCommentHandler)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Route not found"})
	})

	return r
}
