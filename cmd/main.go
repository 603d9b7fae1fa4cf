package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"restaurant-reservations/internal/adapter/logger"
	"restaurant-reservations/internal/adapter/postgres"
	"restaurant-reservations/internal/adapter/rabbitmq"
	"restaurant-reservations/internal/app/lookup"
	"restaurant-reservations/internal/app/order"
	"restaurant-reservations/internal/app/reservation"
	"restaurant-reservations/internal/config"
	"restaurant-reservations/internal/domain"

	amqpAdapter "restaurant-reservations/internal/adapter/amqp"
	httpAdapter "restaurant-reservations/internal/adapter/http"
)

func main() {
	mode := flag.String("mode", "", "Service mode: api, notification-subscriber")
	port := flag.Int("port", 0, "HTTP port (overrides config)")
	configPath := flag.String("config", "config.yaml", "Path to config file")
	migrationsPath := flag.String("migrations", "migrations", "Path to SQL migrations")
	flag.Parse()

	if *mode == "" {
		log.Fatal("--mode flag is required")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}

	ctx := context.Background()
	lgr := logger.New(*mode)
	requestID := logger.NewRequestID()

	switch *mode {
	case "api":
		runAPI(ctx, cfg, lgr, requestID, *migrationsPath)

	case "notification-subscriber":
		runNotificationSubscriber(ctx, cfg, lgr, requestID)

	default:
		log.Fatalf("Invalid mode: %s", *mode)
	}
}

func runAPI(ctx context.Context, cfg *config.Config, lgr logger.Logger, requestID, migrationsPath string) {
	db, err := postgres.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer db.Close()

	lgr.Info("db_connected", "Connected to PostgreSQL database", requestID, map[string]interface{}{
		"host": cfg.Database.Host,
		"db":   cfg.Database.Database,
	})

	if err := postgres.RunMigrations(ctx, db, migrationsPath, lgr); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	mqConn, err := rabbitmq.Connect(cfg.RabbitMQ)
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}
	defer mqConn.Close()

	lgr.Info("rabbitmq_connected", "Connected to RabbitMQ", requestID, map[string]interface{}{
		"host": cfg.RabbitMQ.Host,
	})

	// Repositories
	catalogRepo := postgres.NewCatalogRepository(db)
	reservationRepo := postgres.NewReservationRepository(db)
	orderRepo := postgres.NewOrderRepository(db)

	// Messaging
	publisher := rabbitmq.NewPublisher(mqConn)

	// Services
	window := domain.HoldWindow{Before: cfg.HoldBefore(), After: cfg.HoldAfter()}
	reservationService := reservation.NewService(catalogRepo, reservationRepo, publisher, lgr, window)
	orderService := order.NewService(catalogRepo, reservationRepo, orderRepo, order.DefaultMemberDiscounts, publisher, lgr)
	lookupService := lookup.NewService(reservationRepo, orderRepo)

	// Handlers
	reservationHandler := httpAdapter.NewReservationHandler(reservationService, lgr)
	orderHandler := httpAdapter.NewOrderHandler(orderService, lgr)
	menuHandler := httpAdapter.NewMenuHandler(catalogRepo, lgr)
	lookupHandler := httpAdapter.NewLookupHandler(lookupService, lgr)
	cartHandler := httpAdapter.NewCartHandler()
	healthHandler := httpAdapter.NewHealthHandler(db)

	auth := httpAdapter.NewAuthMiddleware(cfg.Auth)

	protected := http.NewServeMux()
	protected.HandleFunc("/reservations", reservationHandler.CreateReservation)
	protected.HandleFunc("/reservations/", lookupHandler.GetReservation)
	protected.HandleFunc("/orders", orderHandler.SubmitOrder)
	protected.HandleFunc("/orders/", lookupHandler.GetOrder)
	protected.HandleFunc("/cart/total", cartHandler.ComputeTotal)
	protected.Handle("/menu", httpAdapter.RequireAdmin(http.HandlerFunc(menuHandler.Handle)))

	mux := http.NewServeMux()
	mux.HandleFunc("/health", healthHandler.Health)
	mux.Handle("/", auth.Handler(protected))

	handler := httpAdapter.LoggingMiddleware(lgr)(mux)
	handler = httpAdapter.RecoveryMiddleware(lgr)(handler)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	lgr.Info("service_started", fmt.Sprintf("API started on port %d", cfg.Server.Port), requestID, map[string]interface{}{
		"port": cfg.Server.Port,
	})

	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		lgr.Info("shutdown_initiated", "Shutting down API", requestID, nil)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			lgr.Error("shutdown_error", "Error during shutdown", requestID, nil, err)
		}
	}()

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		lgr.Error("server_error", "Server error", requestID, nil, err)
	}
}

func runNotificationSubscriber(ctx context.Context, cfg *config.Config, lgr logger.Logger, requestID string) {
	mqConn, err := rabbitmq.Connect(cfg.RabbitMQ)
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}
	defer mqConn.Close()

	consumer := rabbitmq.NewConsumer(mqConn)
	notificationHandler := amqpAdapter.NewNotificationHandler(lgr)

	lgr.Info("service_started", "Notification Subscriber started", requestID, nil)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		if err := consumer.ConsumeNotifications(ctx, notificationHandler.HandleNotification); err != nil && ctx.Err() == nil {
			lgr.Error("consumer_error", "Error consuming notifications", requestID, nil, err)
		}
	}()

	sigint := make(chan os.Signal, 1)
	signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
	<-sigint

	lgr.Info("shutdown_initiated", "Shutting down Notification Subscriber", requestID, nil)
}
