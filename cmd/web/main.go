package main

import (
	"navigator_backend/internal/app"
	"navigator_backend/internal/logger"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logger.Debug("No .env file found")
	}

	app.Run()
}
