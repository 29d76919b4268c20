package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	_ "github.com/ashramdev/sangha/docs"
	"github.com/ashramdev/sangha/internal/alert"
	"github.com/ashramdev/sangha/internal/bot"
	"github.com/ashramdev/sangha/internal/config"
	"github.com/ashramdev/sangha/internal/database"
	"github.com/ashramdev/sangha/internal/feed"
	"github.com/ashramdev/sangha/internal/member"
	"github.com/ashramdev/sangha/internal/seva"
	"github.com/ashramdev/sangha/internal/shell"
	"github.com/ashramdev/sangha/internal/task"
	mw "github.com/ashramdev/sangha/pkg/middleware"
	"github.com/ashramdev/sangha/pkg/response"
)

var startedAt = time.Now()

// @title        Ashram Sangha API
// @version      1.0
// @description  Community API for the ashram sangha: feed, alerts, seva tracking, and the task board.
func main() {
	// Load .env file; a missing one means plain environment variables
	godotenv.Load()

	cfg := config.Load()

	logger := newLogger(cfg.Environment)
	defer logger.Sync()

	db, err := database.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	defer db.Close()

	logger.Info("connected to database")

	// Member feature
	memberRepo := member.NewRepository(db)
	memberService := member.NewService(memberRepo)
	memberHandler := member.NewHandler(memberService)

	// Task board feature
	taskRepo := task.NewRepository(db)
	taskService := task.NewService(taskRepo)
	taskHandler := task.NewHandler(taskService, memberService)

	// Seva check-in feature
	sevaRepo := seva.NewRepository(db)
	sevaService := seva.NewService(sevaRepo)
	sevaHandler := seva.NewHandler(sevaService)

	// Community feed feature
	feedRepo := feed.NewRepository(db)
	feedService := feed.NewService(feedRepo)
	feedHandler := feed.NewHandler(feedService)

	// Alert feature
	alertRepo := alert.NewRepository(db)
	alertService := alert.NewService(alertRepo)
	alertHandler := alert.NewHandler(alertService)

	// App shell: one registry, one active view at a time
	registry := shell.NewRegistry()
	for _, m := range []shell.Module{
		shell.NewSanghaModule(feedService, alertService),
		shell.NewTasksModule(taskService),
		shell.NewSevaModule(sevaService),
	} {
		if err := registry.Register(m); err != nil {
			logger.Fatal("module registration failed", zap.String("module", m.Name()), zap.Error(err))
		}
	}
	shellHandler := shell.NewHandler(registry)

	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(mw.RequestLogger(logger))
	r.Use(mw.CORS)
	r.Use(mw.MemberIdentity)

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		pingCtx, cancel := context.WithTimeout(req.Context(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(pingCtx); err != nil {
			logger.Error("health check ping failed", zap.Error(err))
			response.Unavailable(w, "Database unreachable")
			return
		}
		response.JSON(w, http.StatusOK, map[string]interface{}{
			"status":      "ok",
			"service":     "ashram-sangha",
			"environment": cfg.Environment,
			"uptime":      int(time.Since(startedAt).Seconds()),
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
		})
	})

	// API routes
	r.Route("/api/sangha", func(r chi.Router) {
		r.Post("/register", memberHandler.Register)
		r.Mount("/members", memberHandler.Routes())
		r.Mount("/tasks", taskHandler.Routes())
		r.Mount("/seva", sevaHandler.Routes())
		r.Mount("/alerts", alertHandler.Routes())
		r.Mount("/", feedHandler.Routes())
	})

	// App shell + API docs
	r.Mount("/app", shellHandler.Routes())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Telegram bot runs alongside the HTTP server when configured
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.TelegramEnabled && cfg.TelegramToken != "" {
		api, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
		if err != nil {
			logger.Fatal("telegram bot init failed", zap.Error(err))
		}
		sanghaBot := bot.New(api, memberService, sevaService, feedService, alertService, logger)
		go sanghaBot.Run(ctx)
	} else {
		logger.Info("telegram bot disabled")
	}

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	logger.Info("server starting", zap.String("port", cfg.Port))
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server failed", zap.Error(err))
	}
}

func newLogger(environment string) *zap.Logger {
	if environment == "production" {
		logger, _ := zap.NewProduction()
		return logger
	}
	logger, _ := zap.NewDevelopment()
	return logger
}
