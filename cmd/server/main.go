package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"otbasy/internal/assistant"
	"otbasy/internal/chat"
	"otbasy/internal/config"
	"otbasy/internal/handlers"
	"otbasy/internal/service"
	"otbasy/internal/storage"
	"otbasy/internal/store"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize slot storage (supports sqlite, postgres, mysql, redis)
	kv, err := storage.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	defer kv.Close()

	log.Printf("Storage ready (type: %s)", cfg.StorageType)

	// Initialize the state store
	appStore := store.New(kv, assistant.New(nil), cfg.AIReplyDelay)
	defer appStore.Close()

	// Websocket hub, wired as the store's message listener
	hub := chat.NewHub()
	appStore.SetMessageListener(hub.Broadcast)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	if err := appStore.Init(ctx); err != nil {
		log.Fatalf("Failed to load application state: %v", err)
	}

	log.Println("Application state loaded")

	// Initialize services
	sessionService := service.NewSessionService(cfg.JWTSecret, cfg.SessionDuration)
	emailService, err := service.NewEmailService(cfg.SESRegion, cfg.SESFromEmail, cfg.SESFromName)
	if err != nil {
		log.Fatalf("Failed to initialize email service: %v", err)
	}
	deliveryService := service.NewDeliveryService(appStore, cfg.CapsuleInterval)
	deliveryService.Start(ctx)

	// Initialize handlers
	middleware := handlers.NewMiddleware(sessionService)
	authHandler := handlers.NewAuthHandler(appStore, sessionService)
	familyHandler := handlers.NewFamilyHandler(appStore, emailService)
	messageHandler := handlers.NewMessageHandler(appStore, hub)
	taskHandler := handlers.NewTaskHandler(appStore)
	eventHandler := handlers.NewEventHandler(appStore)
	capsuleHandler := handlers.NewCapsuleHandler(appStore)
	assistantHandler := handlers.NewAssistantHandler(appStore)
	systemHandler := handlers.NewSystemHandler(appStore)

	// Setup routes
	mux := http.NewServeMux()

	// Public routes
	mux.HandleFunc("GET /healthz", systemHandler.Health)
	mux.HandleFunc("POST /api/login", authHandler.Login)

	// Session routes
	mux.HandleFunc("POST /api/logout", middleware.RequireAuth(authHandler.Logout))
	mux.HandleFunc("GET /api/me", middleware.RequireAuth(authHandler.Me))

	// Family routes
	mux.HandleFunc("GET /api/families", middleware.RequireAuth(familyHandler.List))
	mux.HandleFunc("POST /api/families", middleware.RequireAuth(familyHandler.Create))
	mux.HandleFunc("GET /api/families/code", middleware.RequireAuth(familyHandler.GenerateCode))
	mux.HandleFunc("GET /api/families/{id}", middleware.RequireAuth(familyHandler.Get))
	mux.HandleFunc("POST /api/families/{id}/members", middleware.RequireAuth(familyHandler.AddMember))
	mux.HandleFunc("POST /api/families/{id}/invite", middleware.RequireAuth(familyHandler.Invite))

	// Chat routes
	mux.HandleFunc("GET /api/families/{id}/messages", middleware.RequireAuth(messageHandler.List))
	mux.HandleFunc("POST /api/families/{id}/messages", middleware.RequireAuth(messageHandler.Send))
	mux.HandleFunc("GET /ws/families/{id}", middleware.RequireAuth(messageHandler.Stream))

	// Task routes
	mux.HandleFunc("GET /api/tasks", middleware.RequireAuth(taskHandler.List))
	mux.HandleFunc("POST /api/tasks", middleware.RequireAuth(taskHandler.Create))
	mux.HandleFunc("PUT /api/tasks/{id}", middleware.RequireAuth(taskHandler.Update))
	mux.HandleFunc("POST /api/tasks/{id}/toggle", middleware.RequireAuth(taskHandler.Toggle))
	mux.HandleFunc("DELETE /api/tasks/{id}", middleware.RequireAuth(taskHandler.Delete))

	// Calendar routes
	mux.HandleFunc("GET /api/events", middleware.RequireAuth(eventHandler.List))
	mux.HandleFunc("POST /api/events", middleware.RequireAuth(eventHandler.Create))
	mux.HandleFunc("PUT /api/events/{id}", middleware.RequireAuth(eventHandler.Update))
	mux.HandleFunc("DELETE /api/events/{id}", middleware.RequireAuth(eventHandler.Delete))

	// Time capsule routes
	mux.HandleFunc("GET /api/capsules", middleware.RequireAuth(capsuleHandler.List))
	mux.HandleFunc("POST /api/capsules", middleware.RequireAuth(capsuleHandler.Create))
	mux.HandleFunc("PUT /api/capsules/{id}", middleware.RequireAuth(capsuleHandler.Update))
	mux.HandleFunc("DELETE /api/capsules/{id}", middleware.RequireAuth(capsuleHandler.Delete))
	mux.HandleFunc("POST /api/capsules/{id}/deliver", middleware.RequireAuth(capsuleHandler.Deliver))

	// Assistant routes
	mux.HandleFunc("GET /api/assistant", middleware.RequireAuth(assistantHandler.List))
	mux.HandleFunc("POST /api/assistant", middleware.RequireAuth(assistantHandler.Ask))
	mux.HandleFunc("DELETE /api/assistant", middleware.RequireAuth(assistantHandler.Clear))

	// Admin routes
	mux.HandleFunc("POST /api/reset", middleware.RequireAuth(systemHandler.Reset))

	// Wrap with logging middleware
	handler := handlers.Logging(mux)

	// Start server
	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
