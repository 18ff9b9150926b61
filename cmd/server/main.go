package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/hassan-414/Backend-Blog-Project/internal/blogs"
	"github.com/hassan-414/Backend-Blog-Project/internal/comments"
	"github.com/hassan-414/Backend-Blog-Project/internal/config"
	"github.com/hassan-414/Backend-Blog-Project/internal/database"
	"github.com/hassan-414/Backend-Blog-Project/internal/server"
	"github.com/hassan-414/Backend-Blog-Project/internal/users"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded, continuing with environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Printf("failed to close database: %v", err)
		}
	}()

	// run migrations to create tables
	if err := database.Migrate(db, &users.User{}, &blogs.Blog{}, &comments.Comment{}); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}

	r := server.New(db, cfg)

	log.Printf("server listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
