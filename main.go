package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"dayplan/config"
	"dayplan/db"
	"dayplan/handlers"
	"dayplan/logger"
	"dayplan/metrics"
	appmw "dayplan/middleware"
	"dayplan/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	if err := logger.Init(cfg.Development); err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer logger.Sync()

	database, err := db.Connect(cfg.DSN)
	if err != nil {
		logger.Error("database connection", err)
		os.Exit(1)
	}
	defer database.Close()

	metrics.Init()

	noteHandler := handlers.NewNoteHandler(store.NewNoteStore(database))
	taskHandler := handlers.NewTaskHandler(store.NewTaskStore(database))
	eventHandler := handlers.NewEventHandler(store.NewEventStore(database))
	jwtSecret := []byte(cfg.JWTSecret)
	userHandler := handlers.NewUserHandler(store.NewUserStore(database), jwtSecret)

	r := chi.NewRouter()
	r.Use(appmw.RequestID)
	r.Use(appmw.Logging)
	r.Use(chimw.Recoverer)

	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}
			next.ServeHTTP(w, r)
		})
	})

	r.Get("/", handlers.Health)
	r.Handle("/metrics", metrics.Handler())

	r.Route("/user", func(r chi.Router) {
		r.Post("/register", userHandler.Register)
		r.Post("/login", userHandler.Login)
		r.Post("/refresh-token", userHandler.RefreshToken)
	})

	r.Group(func(r chi.Router) {
		r.Use(appmw.RequireAuth(jwtSecret))

		r.Route("/note", func(r chi.Router) {
			r.Post("/", noteHandler.Create)
			r.Get("/", noteHandler.List)
			r.Get("/{id}", noteHandler.GetByID)
			r.Put("/{id}", noteHandler.Update)
			r.Delete("/{id}", noteHandler.Delete)
		})

		r.Route("/task", func(r chi.Router) {
			r.Post("/", taskHandler.Create)
			r.Get("/", taskHandler.List)
			r.Get("/{id}", taskHandler.GetByID)
			r.Put("/{id}", taskHandler.Update)
			r.Delete("/{id}", taskHandler.Delete)
		})

		r.Route("/event", func(r chi.Router) {
			r.Post("/", eventHandler.Create)
			r.Get("/", eventHandler.List)
			r.Get("/{id}", eventHandler.GetByID)
			r.Put("/{id}", eventHandler.Update)
			r.Delete("/{id}", eventHandler.Delete)
		})
	})

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	go func() {
		logger.Info("server started", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", err)
			cancel()
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown requested")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown", err)
	}
}
