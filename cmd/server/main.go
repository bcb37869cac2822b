package main

import (
	"collaband/CollaBand/internal/api/controller"
	"collaband/CollaBand/internal/api/repository"
	"collaband/CollaBand/internal/api/service"
	"collaband/CollaBand/internal/db"
	"collaband/CollaBand/internal/logger"
	"collaband/CollaBand/internal/server"
	"collaband/CollaBand/internal/telemetry"
	"collaband/CollaBand/internal/token"
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	ctx := context.Background()

	// Initialize telemetry
	shutdown, err := telemetry.InitOtel()
	if err != nil {
		log.Fatalf("failed to initialize telemetry: %v", err)
	}
	defer func() {
		if err := shutdown(ctx); err != nil {
			log.Printf("Error shutting down telemetry: %v", err)
		}
	}()

	logger.Init()

	// Initialize Redis
	rdb, err := db.NewRedisClient(ctx)
	if err != nil {
		log.Fatalf("failed to initialize redis: %v", err)
	}

	// Initialize SQLite DB
	if err := db.InitializeDB(); err != nil {
		log.Fatalf("failed to initialize sqlite db: %v", err)
	}
	DB, err := db.DBConnect()
	if err != nil {
		log.Fatalf("failed to get sqlite db connection: %v", err)
	}

	// Create repositories and the credential store
	userRepo := repository.NewUserRepository(DB)
	projectRepo := repository.NewProjectRepository(DB)
	chatRepo := repository.NewChatRepository(DB)
	tokens := token.NewRedisStore(rdb)

	// Create services
	authService := service.NewAuthService(userRepo, tokens)
	projectService := service.NewProjectService(projectRepo)
	chatService := service.NewChatService(chatRepo)

	// Create controllers
	authController := controller.NewAuthController(authService)
	projectController := controller.NewProjectController(projectService)
	chatController := controller.NewChatController(chatService)
	pageController := controller.NewPageController()

	// Create the Gin-based server
	srv := server.NewServer(authController, projectController, chatController, pageController, tokens)

	addr := os.Getenv("COLLABAND_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	httpServer := &http.Server{
		Addr:    addr,
		Handler: srv.Engine(),
	}

	go func() {
		log.Printf("http server started on %s", addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("ListenAndServe: %v", err)
		}
	}()

	<-stop

	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
