package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"staylux-backend/config"
	"staylux-backend/controllers"
	"staylux-backend/routes"
	"staylux-backend/services"
	"staylux-backend/store"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	cfg := config.Load()

	roomSeed, bookingSeed, err := config.LoadSeedData()
	if err != nil {
		log.Fatalf("failed to load seed data: %v", err)
	}

	// Each store owns its own copy of the seed; there is no shared backend.
	roomStore := store.NewRoomStore(roomSeed, cfg.MockLatency)
	bookingStore := store.NewBookingStore(bookingSeed, cfg.MockLatency)

	roomService := services.NewRoomService(roomStore)
	bookingService := services.NewBookingService(bookingStore, roomStore)
	authService := services.NewAuthService(cfg.JWTSecret)

	roomController := controllers.NewRoomController(roomService)
	bookingController := controllers.NewBookingController(bookingService)
	statsController := controllers.NewStatsController(roomStore, bookingStore)
	authController := controllers.NewAuthController(authService)
	contactController := controllers.NewContactController()

	router := routes.SetupRouter(
		roomController,
		bookingController,
		statsController,
		authController,
		contactController,
		authService,
		cfg.CORSOrigins,
	)

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down with a timeout.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server stopped gracefully")
}
