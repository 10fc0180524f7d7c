// cmd/disciple_keep/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"

	"disciple_keep/internal/config"
	"disciple_keep/internal/handlers"
	"disciple_keep/internal/middleware"
	"disciple_keep/internal/repository"
	"disciple_keep/internal/service"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	// 設定ファイル読み込み用の一時的なロガー設定
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)
	log.Println("Log Config Loading...")

	if err := config.LoadConfig("./configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// === 設定に基づいて slog ロガーを初期化 ===
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(config.Cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", config.Cfg.Log.Level))
	}

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		tintOpts := &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		}
		handler = tint.NewHandler(os.Stderr, tintOpts)
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		jsonOpts := &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		}
		handler = slog.NewJSONHandler(os.Stderr, jsonOpts)
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	slog.Info("Application starting...", slog.String("app", config.AppName), slog.String("version", config.AppVersion))

	// 2. Initialize Database Connection (GORM)
	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	// 3. Dependency Injection
	memberRepo := repository.NewGormMemberRepository()
	classRepo := repository.NewGormClassRepository()
	enrollRepo := repository.NewGormEnrollmentRepository()
	contentRepo := repository.NewGormContentRepository()
	contentProgressRepo := repository.NewGormContentProgressRepository()
	sessionRepo := repository.NewGormSessionRepository()
	attendanceRepo := repository.NewGormAttendanceRepository()

	mailer := service.NewMailer(&config.Cfg)
	var notifier service.Notifier
	if config.Cfg.Mailer.Type == "log" {
		notifier = &service.LogNotifier{}
	} else {
		notifier = service.NewMailNotifier(mailer)
	}

	enrollmentService := service.NewEnrollmentService(db, memberRepo, classRepo, enrollRepo, notifier, config.Cfg)
	progressService := service.NewProgressService(db, memberRepo, enrollRepo, contentRepo, contentProgressRepo, attendanceRepo)
	attendanceService := service.NewAttendanceService(db, sessionRepo, memberRepo, enrollRepo, attendanceRepo, progressService)

	enrollmentHandler := handlers.NewEnrollmentHandler(enrollmentService, logger)
	progressHandler := handlers.NewProgressHandler(progressService, logger)
	attendanceHandler := handlers.NewAttendanceHandler(attendanceService, logger)

	// 4. Setup Router
	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsOptions := cors.Options{
		AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
		AllowedMethods:   config.Cfg.CORS.AllowedMethods,
		AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
		ExposedHeaders:   config.Cfg.CORS.ExposedHeaders,
		AllowCredentials: config.Cfg.CORS.AllowCredentials,
		MaxAge:           config.Cfg.CORS.MaxAge,
		Debug:            false,
	}
	corsHandler := cors.New(corsOptions)
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// API Routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			if config.Cfg.Auth.Enabled {
				slog.Info("Applying JWT authentication middleware")
				r.Use(middleware.JWTAuthMiddleware(&config.Cfg))
			} else {
				// ローカル開発用: X-User-ID ヘッダをそのまま信用する
				slog.Warn("Auth disabled, applying development user-context middleware")
				r.Use(middleware.DevUserContextMiddleware)
			}

			// Enrollment routes
			r.Route("/enrollments", func(r chi.Router) {
				r.Post("/", enrollmentHandler.PostEnrollment)
				r.Get("/{enrollment_id}", enrollmentHandler.GetEnrollment)
				r.Post("/{enrollment_id}/approve", enrollmentHandler.ApproveEnrollment)
				r.Post("/{enrollment_id}/reject", enrollmentHandler.RejectEnrollment)
				r.Post("/{enrollment_id}/cancel", enrollmentHandler.CancelEnrollment)
				r.Post("/{enrollment_id}/complete", enrollmentHandler.CompleteEnrollment)
				r.Get("/{enrollment_id}/progress", progressHandler.GetProgressSummary)
			})

			// Class routes
			r.Route("/classes", func(r chi.Router) {
				r.Get("/{class_id}/roster", enrollmentHandler.GetClassRoster)
				r.Get("/{class_id}/contents", progressHandler.GetClassContents)
			})

			// Content progress routes
			r.Post("/contents/{content_id}/progress/toggle", progressHandler.ToggleContentProgress)

			// Session attendance routes
			r.Route("/sessions/{session_id}/attendance", func(r chi.Router) {
				r.Get("/", attendanceHandler.GetSessionAttendance)
				r.Put("/", attendanceHandler.PutAttendance)
				r.Post("/bulk", attendanceHandler.PostBulkAttendance)
			})
		})
	})

	// Health Check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sqlDB, err := db.DB()
		if err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not get DB object", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// 5. Start Server
	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}
