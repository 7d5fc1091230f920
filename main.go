package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"brightpath/config"
	"brightpath/handlers"
	"brightpath/middleware"
	"brightpath/routes"
	"brightpath/services/calendar"
	"brightpath/services/intelligence"
	"brightpath/services/notification"
	"brightpath/services/scheduling"
	"brightpath/utils"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger := utils.GetLogger()

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Sugar().Warnf("main: unknown timezone %q, falling back to local", cfg.Timezone)
		loc = time.Local
	}
	resolver := scheduling.NewDateTimeResolver(loc)

	// Calendar integration: missing any credential disables live calls and
	// activates the mock responses.
	var calendarAPI calendar.API
	calendarConfigured := cfg.CalendarConfigured()
	if calendarConfigured {
		client, err := calendar.NewGoogleClient(context.Background(), calendar.Credentials{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RefreshToken: cfg.GoogleRefreshToken,
			CalendarID:   cfg.GoogleCalendarID,
		})
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize calendar client: %v", err)
		}
		calendarAPI = client
	} else {
		logger.Sugar().Info("main: calendar credentials absent, running in mock mode")
	}

	// services.
	bookingService := &scheduling.DefaultBookingService{
		Calendar: calendarAPI,
		Resolver: resolver,
	}
	availabilityService := &scheduling.DefaultAvailabilityService{
		Calendar: calendarAPI,
		Resolver: resolver,
	}

	var chatService intelligence.ChatService
	chatConfigured := cfg.GeminiAPIKey != ""
	if chatConfigured {
		chat, err := intelligence.NewGeminiChat(context.Background(), cfg.GeminiAPIKey)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize Gemini client: %v", err)
		}
		chatService = chat
	}

	var mailer notification.EmailService
	mailConfigured := cfg.ResendAPIKey != "" && cfg.ContactEmail != ""
	if mailConfigured {
		mailer = notification.NewResendMailer(cfg.ResendAPIKey, "website@brightpath.consulting", cfg.ContactEmail)
	}

	// handlers.
	appointmentHandler := handlers.NewAppointmentHandler(bookingService, availabilityService, calendarConfigured, logger)
	chatHandler := handlers.NewChatHandler(chatService, chatConfigured, logger)
	contactHandler := handlers.NewContactHandler(mailer, mailConfigured, logger)

	handlerBundle := &handlers.HandlerBundle{
		CreateAppointmentHandler: appointmentHandler.CreateAppointment,
		GetAvailabilityHandler:   appointmentHandler.GetAvailability,
		ChatHandler:              chatHandler.HandleChat,
		ContactHandler:           contactHandler.HandleContact,
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
