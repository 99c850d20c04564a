// main.go - Entry point for the climate content site backend

package main

import (
	"log"

	"go-climate-backend/config"
	"go-climate-backend/database"
	"go-climate-backend/handlers"
	"go-climate-backend/router"
	"go-climate-backend/store"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg := config.Load()

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		log.Fatal("DB connection error: ", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Printf("Failed to close database: %v", err)
		}
	}()

	if err := database.Seed(db); err != nil {
		log.Fatal("DB seed error: ", err)
	}

	h := handlers.New(store.NewArticleStore(db), store.NewUserStore(db))

	r := router.New(h)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server error: ", err)
	}
}
