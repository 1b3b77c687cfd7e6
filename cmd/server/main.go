package main // Entry point package

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/DevXSoni021/GreenStitch-Assignment/internal/config"
	"github.com/DevXSoni021/GreenStitch-Assignment/internal/database"
	"github.com/DevXSoni021/GreenStitch-Assignment/internal/handler"
	"github.com/DevXSoni021/GreenStitch-Assignment/internal/queue"
	"github.com/DevXSoni021/GreenStitch-Assignment/internal/repository"
	"github.com/DevXSoni021/GreenStitch-Assignment/internal/router"
	"github.com/DevXSoni021/GreenStitch-Assignment/internal/service"
)

func main() {
	_ = godotenv.Load() // .env is optional; real deployments set the environment directly
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := database.EnsureSchema(ctx, db); err != nil {
		cancel()
		log.Fatalf("database: %v", err)
	}
	cancel()

	// The per-seat booking guard lives in Redis; without it concurrent
	// creates cannot be serialized, so a missing Redis is fatal.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Fatal("redis: connection failed; seat guard unavailable")
	}
	defer rdb.Close()

	publisher := queue.NewPublisher(queue.BrokerURL())
	defer publisher.Close()

	repo := repository.NewBookingRepo(db)
	locker := service.NewRedisSeatLocker(rdb, cfg.SeatLockWait)
	svc := service.NewBookingService(repo, locker, publisher)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewRequestValidator()

	seats := handler.NewSeatHandler(svc, cfg.Debug)
	bookings := handler.NewBookingHandler(svc, cfg.Debug)
	router.Register(e, cfg, db, rdb, seats, bookings)

	// Audit consumer tails the seat-events exchange into logs/; it
	// reconnects on its own and never takes the server down.
	go func() {
		if err := queue.StartEventConsumer(); err != nil {
			log.Printf("event-consumer: stopped: %v", err)
		}
	}()

	go func() {
		addr := ":" + cfg.Port
		log.Printf("listening on %s (env=%s)", addr, cfg.Env)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
