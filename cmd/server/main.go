package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/eduvision/seat-assignment/internal/config"
	"github.com/eduvision/seat-assignment/internal/database"
	"github.com/eduvision/seat-assignment/internal/handler"
	"github.com/eduvision/seat-assignment/internal/queue"
	"github.com/eduvision/seat-assignment/internal/repository"
	"github.com/eduvision/seat-assignment/internal/router"
	"github.com/eduvision/seat-assignment/internal/service"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; cache and rate limiting disabled")
	}

	store := repository.NewAssignmentRepo(db)
	publisher := service.NewAMQPPublisher()

	assignments := handler.NewAssignmentHandler(store, publisher)
	seatmap := handler.NewSeatMapHandler(store)

	e := echo.New()
	e.HideBanner = true
	router.RegisterRoutes(e, seatmap, rdb)
	router.RegisterSeating(e, assignments, seatmap, cfg.JWTSecret, rdb)

	// Background consumer records assignment changes to logs/seating.log.
	go func() {
		if err := queue.StartAssignmentConsumer(); err != nil {
			log.Printf("assignment consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
