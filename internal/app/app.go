package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/IT-Nick/quizgen/internal/app/handlers/http/attempt_handler"
	"github.com/IT-Nick/quizgen/internal/app/handlers/http/health_handler"
	"github.com/IT-Nick/quizgen/internal/app/handlers/telegram/cancel_handler"
	"github.com/IT-Nick/quizgen/internal/app/handlers/telegram/document_handler"
	"github.com/IT-Nick/quizgen/internal/app/handlers/telegram/help_handler"
	"github.com/IT-Nick/quizgen/internal/app/handlers/telegram/keyboards"
	"github.com/IT-Nick/quizgen/internal/app/handlers/telegram/select_handler"
	"github.com/IT-Nick/quizgen/internal/app/handlers/telegram/start_handler"
	"github.com/IT-Nick/quizgen/internal/app/handlers/telegram/status_handler"
	"github.com/IT-Nick/quizgen/internal/app/handlers/telegram/text_handler"
	"github.com/IT-Nick/quizgen/internal/app/middleware"
	"github.com/IT-Nick/quizgen/internal/database"
	attemptsRepo "github.com/IT-Nick/quizgen/internal/domain/attempts/repository"
	attemptsService "github.com/IT-Nick/quizgen/internal/domain/attempts/service"
	quizzesService "github.com/IT-Nick/quizgen/internal/domain/quizzes/service"
	"github.com/IT-Nick/quizgen/internal/infra/config"
	"github.com/IT-Nick/quizgen/internal/infra/keepalive"
	"github.com/IT-Nick/quizgen/internal/infra/poller"
	"github.com/IT-Nick/quizgen/internal/render"
	"github.com/jackc/pgx/v5/pgxpool"
	"gopkg.in/telebot.v4"
)

type Services struct {
	// attemptService остаётся nil без настроенной БД.
	attemptService *attemptsService.AttemptService
	quizService    *quizzesService.QuizService
}

type App struct {
	config *config.Config
	bot    *telebot.Bot
	db     *pgxpool.Pool
	server *http.Server

	store     database.Store
	activity  *keepalive.Activity
	startedAt time.Time

	Services
}

func NewApp(configPath string) (*App, error) {
	configImpl, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("config.LoadConfig: %w", err)
	}

	app := &App{
		config:    configImpl,
		store:     database.NewStore(configImpl.Storage.Type, configImpl.Storage.Path),
		activity:  keepalive.NewActivity(),
		startedAt: time.Now(),
	}

	// БД опциональна: без неё квизы генерируются, ранжирование отключено.
	if configImpl.DatabaseConfigured() {
		db, err := InitDatabase(configImpl)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		app.db = db
	} else {
		log.Println("Database is not configured, ranking is disabled")
	}

	if err := app.initServices(); err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return app, nil
}

// Функция для инициализации сервисов и репозиториев
func (app *App) initServices() error {
	if app.db != nil {
		attemptRepo := attemptsRepo.NewAttemptRepository(app.db)
		if err := attemptRepo.EnsureSchema(context.Background()); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
		app.attemptService = attemptsService.NewAttemptService(attemptRepo)
	}

	renderer, err := render.NewRenderer(app.config.KeepAlive.URL)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	app.quizService = quizzesService.NewQuizService(renderer, app.attemptService, app.config.Quiz.FontDir)
	return nil
}

// ListenAndServeTelegram запускает сервер Telegram бота
func (app *App) ListenAndServeTelegram() error {
	bot, err := telebot.NewBot(telebot.Settings{
		Token:  app.config.TelegramBot.Token,
		Poller: poller.NewPoller(app.config),
	})
	if err != nil {
		return fmt.Errorf("telebot.NewBot: %w", err)
	}
	app.bot = bot

	app.bot.Use(middleware.Recover())
	if app.config.Debug {
		app.bot.Use(middleware.Logger())
	}

	app.bootstrapHandlersTelegram()

	go app.bot.Start()

	return nil
}

// bootstrapHandlersTelegram - регистрирует обработчики для бота
func (app *App) bootstrapHandlersTelegram() {
	statusHandler := status_handler.NewStatusHandler(app.store, app.activity, app.startedAt)

	app.bot.Handle("/start", start_handler.NewStartHandler(app.store, app.activity).GetHandlerFunc())
	app.bot.Handle("/help", help_handler.NewHelpHandler(app.activity).GetHandlerFunc())
	app.bot.Handle("/cancel", cancel_handler.NewCancelHandler(app.store, app.activity).GetHandlerFunc())
	app.bot.Handle("/status", statusHandler.GetHandlerFunc())
	app.bot.Handle("/wake", statusHandler.GetWakeHandlerFunc())

	app.bot.Handle(telebot.OnDocument, document_handler.NewDocumentHandler(
		app.bot, app.store, app.quizService, app.activity, app.config.Quiz.MaxFileSize).GetHandlerFunc())
	app.bot.Handle(telebot.OnText, text_handler.NewTextHandler(
		app.store, app.quizService, app.activity).GetHandlerFunc())

	selectHandler := select_handler.NewSelectHandler(app.store, app.activity)
	app.bot.Handle(&telebot.InlineButton{Unique: keyboards.UniqueTime}, selectHandler.GetHandlerFunc())
	app.bot.Handle(&telebot.InlineButton{Unique: keyboards.UniqueMarks}, selectHandler.GetHandlerFunc())
	app.bot.Handle(&telebot.InlineButton{Unique: keyboards.UniqueNegative}, selectHandler.GetHandlerFunc())
}

// ListenAndServeHTTP запускает HTTP сервер
func (app *App) ListenAndServeHTTP() error {
	mx := http.NewServeMux()

	mx.Handle("GET /health", health_handler.NewHealthHandler(app.activity))
	mx.Handle("GET /wake", health_handler.NewWakeHandler(app.activity))
	mx.Handle("GET /status", health_handler.NewStatusHandler(app.activity, app.store))
	mx.Handle("POST /attempts", attempt_handler.NewSubmitAttemptHandler(app.attemptService, app.activity))
	mx.Handle("GET /attempts/rank", attempt_handler.NewAttemptRankHandler(app.attemptService, app.activity))

	app.server = &http.Server{
		Addr:    fmt.Sprintf("%s:%s", app.config.Server.Host, app.config.Server.Port),
		Handler: mx,
	}

	return app.server.ListenAndServe()
}

// ListenAndServe запускает оба сервера (Telegram и HTTP) и keep-alive воркер
func (app *App) ListenAndServe() error {
	if err := app.ListenAndServeTelegram(); err != nil {
		return fmt.Errorf("failed to start Telegram bot: %w", err)
	}

	go keepalive.NewWorker(app.config.KeepAlive.URL, app.config.KeepAlive.Interval).Run(context.Background())

	if err := app.ListenAndServeHTTP(); err != nil {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}

	return nil
}
