package handlers

import (
	"net/http"

	"conduit-api/middleware"

	"github.com/gin-gonic/gin"
)

// NewRouter wires the HTTP surface. Reads are public (with optional auth),
// every mutation requires a valid token.
func NewRouter(authHandler *AuthHandler, articleHandler *ArticleHandler, favoriteHandler *FavoriteHandler, tagHandler *TagHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	v1 := router.Group("/api/v1")
	{
		// Users (public)
		users := v1.Group("/users")
		{
			users.POST("", authHandler.Register)
			users.POST("/login", authHandler.Login)
		}

		// Current user
		user := v1.Group("/user")
		user.Use(middleware.AuthRequired())
		{
			user.GET("", authHandler.GetCurrentUser)
			user.PUT("", authHandler.UpdateCurrentUser)
		}

		// Articles
		articles := v1.Group("/articles")
		{
			articles.GET("", middleware.AuthOptional(), articleHandler.GetArticles)
			articles.GET("/:slug", middleware.AuthOptional(), articleHandler.GetArticle)

			protected := articles.Group("")
			protected.Use(middleware.AuthRequired())
			{
				protected.POST("", articleHandler.CreateArticle)
				protected.PUT("/:slug", articleHandler.UpdateArticle)
				protected.DELETE("/:slug", articleHandler.DeleteArticle)
				protected.POST("/:slug/favourite", favoriteHandler.AddFavorite)
				protected.DELETE("/:slug/favourite", favoriteHandler.RemoveFavorite)
			}
		}

		// Tags (public)
		v1.GET("/tags", tagHandler.GetTags)
	}

	return router
}
