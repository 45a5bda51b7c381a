package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"hotel-backoffice/config"
	"hotel-backoffice/controllers"
	"hotel-backoffice/routes"
	"hotel-backoffice/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		log.Fatal("SESSION_SECRET environment variable is not set; refusing to sign session tokens")
	}

	sessionTTL := 24 * time.Hour
	if raw := os.Getenv("SESSION_TTL_HOURS"); raw != "" {
		hours, err := strconv.Atoi(raw)
		if err != nil || hours <= 0 {
			log.Fatalf("invalid SESSION_TTL_HOURS: %q", raw)
		}
		sessionTTL = time.Duration(hours) * time.Hour
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("database connect failed: %v", err)
	}
	db := config.DB
	log.Println("database connection established, migrations applied")

	// Services
	directory := services.NewDirectoryService(db)
	guestService := services.NewGuestService(db, directory)
	roomService := services.NewRoomService(db)
	bookingService := services.NewBookingService(db)
	availabilityService := services.NewAvailabilityService(db)
	sessionService := services.NewSessionService(db, secret, sessionTTL)

	// Controllers
	authController := controllers.NewAuthController(sessionService, int(sessionTTL.Seconds()))
	clientController := controllers.NewClientController(guestService)
	rentController := controllers.NewRentController(bookingService)
	numberController := controllers.NewNumberController(roomService, availabilityService)

	router := routes.SetupRouter(authController, clientController, rentController, numberController, sessionService)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8888"
	}
	addr := ":" + port

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
