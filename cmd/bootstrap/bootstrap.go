package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinic-booking/config"
	deliveryHttp "clinic-booking/internal/delivery/http"
	"clinic-booking/internal/delivery/http/handler"
	"clinic-booking/internal/delivery/http/middleware"
	"clinic-booking/internal/infrastructure/cache"
	"clinic-booking/internal/infrastructure/database"
	"clinic-booking/internal/infrastructure/mail"
	"clinic-booking/internal/infrastructure/sms"
	"clinic-booking/internal/repository"
	"clinic-booking/internal/scheduler"
	"clinic-booking/internal/service"
	"clinic-booking/internal/usecase"
	"clinic-booking/pkg/renderer"
	"clinic-booking/pkg/validator"

	"github.com/gorilla/sessions"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
	Scheduler   *scheduler.Scheduler
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database (creates the schema if absent)
	db, err := database.NewConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	// Initialize Redis (optional; nil disables the reminder dedup guard)
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	// Initialize logger handle shared by usecases and services
	log := logrus.StandardLogger()

	// Initialize notification channels
	emailSender := mail.NewSender(cfg.Mail)
	var smsSender service.SMSSender
	if twilioSender := sms.NewTwilioSender(cfg.Twilio); twilioSender != nil {
		smsSender = twilioSender
		log.Info("SMS notifications enabled")
	} else {
		log.Info("SMS notifications disabled (Twilio credentials not configured)")
	}
	notificationService := service.NewNotificationService(emailSender, smsSender, log)

	// Initialize repositories
	appointmentRepo := repository.NewAppointmentRepository()

	// Initialize usecases
	bookingUsecase := usecase.NewBookingUsecase(db, log, appointmentRepo, notificationService)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo)
	authUsecase := usecase.NewDoctorAuthUsecase(cfg.Doctor, log)

	// Initialize reminder scheduler
	reminderJob := scheduler.NewReminderJob(db, log, appointmentRepo, notificationService, redisClient)
	sched, err := scheduler.NewScheduler(reminderJob, log)
	if err != nil {
		return nil, err
	}
	app.Scheduler = sched

	// Initialize view renderer
	htmlRenderer, err := renderer.New()
	if err != nil {
		return nil, err
	}

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize session store
	sessionStore := sessions.NewCookieStore([]byte(cfg.App.SessionSecret))
	sessionStore.Options.HttpOnly = true

	// Initialize handlers
	homeHandler := handler.NewHomeHandler(htmlRenderer)
	bookingHandler := handler.NewBookingHandler(bookingUsecase, customValidator, htmlRenderer)
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, htmlRenderer, sessionStore)
	dashboardHandler := handler.NewDashboardHandler(appointmentUsecase, htmlRenderer)

	// Initialize middleware
	doctorGuard := middleware.NewDoctorGuard(sessionStore)
	requestID := middleware.NewRequestIDMiddleware(log)

	// Initialize router
	router := deliveryHttp.NewRouter(homeHandler, bookingHandler, authHandler, dashboardHandler, doctorGuard, requestID)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	app.Server = &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// Run starts the HTTP server and the reminder scheduler, then blocks until
// shutdown.
func (app *App) Run() {
	app.Scheduler.Start()

	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Stop the reminder scheduler first so no job starts mid-shutdown
	app.Scheduler.Stop()

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis)
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
