package handler

import (
	"net/http"

	"gamesquad/backend/internal/auth"
	"gamesquad/backend/internal/store"
	"gamesquad/backend/pkg/token"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter assembles the gin engine with all API routes.
func NewRouter(users *store.UserStore, rooms *store.RoomStore, tokens *token.Service, corsOrigin string) *gin.Engine {
	router := gin.Default()

	if corsOrigin != "" {
		corsConfig := cors.DefaultConfig()
		if corsOrigin == "*" {
			corsConfig.AllowAllOrigins = true
		} else {
			corsConfig.AllowOrigins = []string{corsOrigin}
		}
		corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
		router.Use(cors.New(corsConfig))
	}

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	authHandler := NewAuthHandler(users, tokens)
	roomHandler := NewRoomHandler(rooms)

	api := router.Group("/api")
	{
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)

		api.GET("/rooms", roomHandler.ListRooms)
		api.POST("/rooms", auth.RequireAuth(tokens), roomHandler.CreateRoom)
	}

	return router
}
