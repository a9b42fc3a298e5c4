package main

import (
	"log"

	_ "planner/docs"
	"planner/internal/config"
	"planner/internal/server"
)

// @title           Day Planner API
// @version         1.0
// @description     API for managing date-scoped personal tasks.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @schemes http
func main() {
	cfg := config.Load()

	s, err := server.Init(cfg)
	if err != nil {
		log.Fatalf("❌ Server initialization failed: %v", err)
	}

	s.Run()
}
