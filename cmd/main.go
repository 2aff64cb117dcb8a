package main

import (
	"log"
	"os"
	"time"

	"github.com/rdbo/nutrinow/config"
	"github.com/rdbo/nutrinow/routes"
	"github.com/rdbo/nutrinow/services"
)

func main() {
	config.InitDB()
	if err := config.SeedReferenceData(config.DB); err != nil {
		log.Fatalf("Failed to seed reference data: %v", err)
	}

	stop := make(chan struct{})
	defer close(stop)
	services.NewAuthService(config.DB).StartSessionSweeper(time.Hour, stop)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	r := routes.SetupRouter()
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
