package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"boardshelf/backend/internal/auth"
	"boardshelf/backend/internal/catalog"
	"boardshelf/backend/internal/config"
	"boardshelf/backend/internal/database"
	"boardshelf/backend/internal/handler"
	"boardshelf/backend/internal/hub"
	"boardshelf/backend/internal/models"

	"github.com/gin-gonic/gin"

	// Swagger imports
	_ "boardshelf/backend/docs" // registers the swagger spec with swag

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	config.LoadConfig()
}

// @title           Boardshelf API
// @version         1.0
// @description     Personal board game catalog: games, tags, filtered view and random picks.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	// `server hash-password <pw>` prints a value for OWNER_PASSWORD_HASH.
	if len(os.Args) == 3 && os.Args[1] == "hash-password" {
		hash, err := auth.HashPassword(os.Args[2])
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}
		fmt.Println(hash)
		return
	}

	cfg := config.AppConfig
	if cfg.AuthEnabled() && cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required when OWNER_PASSWORD_HASH is set")
	}

	store, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer store.Close()

	var opts []catalog.Option
	if cfg.SeedTags {
		opts = append(opts, catalog.WithSeedTags(models.Categories))
	}
	cat := catalog.New(context.Background(), store, opts...)
	log.Printf("Catalog loaded: %d games, %d tags.", len(cat.Games()), len(cat.Tags()))

	h := handler.New(cat, hub.NewHub(), handler.Options{
		JWTSecret:         cfg.JWTSecret,
		OwnerPasswordHash: cfg.OwnerPasswordHash,
		RandomPickCount:   cfg.RandomPickCount,
	})

	router := gin.Default()

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	h.Register(router, cfg.AuthEnabled())

	if !cfg.AuthEnabled() {
		log.Println("Warning: OWNER_PASSWORD_HASH not set, mutating routes are open")
	}

	addr := ":" + cfg.Port
	fmt.Printf("Server is running on %s\n", addr)
	fmt.Printf("Swagger UI is available at http://localhost%s/swagger/index.html\n", addr)
	if err := router.Run(addr); err != nil {
		store.Close()
		log.Fatal(err)
	}
}
