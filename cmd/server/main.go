package main

import (
	"fmt"
	"log"
	"time"

	"gamesquad/backend/internal/config"
	"gamesquad/backend/internal/database"
	"gamesquad/backend/internal/handler"
	"gamesquad/backend/internal/store"
	"gamesquad/backend/pkg/token"

	// Swagger imports
	_ "gamesquad/backend/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const tokenTTL = 24 * time.Hour

// @title           GameSquad API
// @version         1.0
// @description     This is the API for the GameSquad service.
// @host            localhost:8080
// @BasePath        /api
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Unable to load configuration: %v", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	users := store.NewUserStore(db)
	rooms := store.NewRoomStore(db)
	tokens := token.NewService(cfg.JWTSecret, tokenTTL)

	router := handler.NewRouter(users, rooms, tokens, cfg.CORSOrigin)

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	addr := ":" + cfg.Port
	fmt.Println("Server is running on " + addr)
	fmt.Println("Swagger UI is available at http://localhost:" + cfg.Port + "/swagger/index.html")
	log.Fatal(router.Run(addr))
}
