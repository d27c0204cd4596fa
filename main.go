package main

import (
	"conduit-api/config"
	"conduit-api/handlers"
	"conduit-api/helper"
	"conduit-api/logger"
	"conduit-api/repositories"
	"conduit-api/services"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	logger.Init()

	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found")
	}

	// Initialize configuration and database
	config.InitConfig()
	db := config.InitDB()

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	articleRepo := repositories.NewArticleRepository(db)
	tagRepo := repositories.NewTagRepository(db)
	favoriteRepo := repositories.NewFavoriteRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	articleService := services.NewArticleService(articleRepo, tagRepo)
	favoriteService := services.NewFavoriteService(articleRepo, userRepo, favoriteRepo)
	tagService := services.NewTagService(tagRepo)

	// Initialize handlers
	httpHelper := helper.NewHTTPHelper()
	authHandler := handlers.NewAuthHandler(authService, httpHelper)
	articleHandler := handlers.NewArticleHandler(articleService, httpHelper)
	favoriteHandler := handlers.NewFavoriteHandler(favoriteService, httpHelper)
	tagHandler := handlers.NewTagHandler(tagService, httpHelper)

	router := handlers.NewRouter(authHandler, articleHandler, favoriteHandler, tagHandler)

	port := config.AppConfig.App.Port
	log.Info().Str("port", port).Msg("server starting")
	if err := router.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
