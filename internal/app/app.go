package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pizzeria-backend/internal/config"
	delivery "pizzeria-backend/internal/delivery/http"
	"pizzeria-backend/internal/delivery/http/handler"
	"pizzeria-backend/internal/domain/entities"
	"pizzeria-backend/internal/infrastructure/logger"
	"pizzeria-backend/internal/infrastructure/mongodb"
	"pizzeria-backend/internal/infrastructure/nats"
	"pizzeria-backend/internal/usecase"
)

type App struct {
	cfg    *config.Config
	logger *logger.Logger
}

func New(cfg *config.Config) *App {
	return &App{
		cfg:    cfg,
		logger: logger.NewLogger(),
	}
}

func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	return New(cfg).Run()
}

func (a *App) Run() error {
	a.logger.Info("Starting pizzeria-backend")

	store, err := a.initMongoDB()
	if err != nil {
		return err
	}
	defer store.Close()

	orderRepo, err := mongodb.NewOrderRepositoryMongo(store.Database(), a.logger)
	if err != nil {
		return fmt.Errorf("failed to init order repository: %w", err)
	}
	menuRepo, err := mongodb.NewMenuRepositoryMongo(store.Database(), a.logger)
	if err != nil {
		return fmt.Errorf("failed to init menu repository: %w", err)
	}
	customerRepo, err := mongodb.NewCustomerRepositoryMongo(store.Database(), a.logger)
	if err != nil {
		return fmt.Errorf("failed to init customer repository: %w", err)
	}
	specialRepo, err := mongodb.NewSpecialRepositoryMongo(store.Database(), a.logger)
	if err != nil {
		return fmt.Errorf("failed to init special repository: %w", err)
	}
	settingsRepo := mongodb.NewSettingsRepositoryMongo(store.Database(), a.logger)

	publisher := a.initNATS()
	defer publisher.Close()

	orderUseCase := usecase.NewOrderUseCase(orderRepo, customerRepo, settingsRepo, publisher, a.logger)
	menuUseCase := usecase.NewMenuUseCase(menuRepo, a.logger)
	customerUseCase := usecase.NewCustomerUseCase(customerRepo, orderRepo, a.logger)
	settingsUseCase := usecase.NewSettingsUseCase(settingsRepo, a.logger)
	specialUseCase := usecase.NewSpecialUseCase(specialRepo, a.logger)
	analyticsUseCase := usecase.NewAnalyticsUseCase(orderRepo, customerRepo, menuRepo, a.cfg.ReportLocation(), a.logger)

	router := delivery.NewRouter(delivery.Handlers{
		Orders:    handler.NewOrderHandler(orderUseCase),
		Menu:      handler.NewMenuHandler(menuUseCase),
		Customers: handler.NewCustomerHandler(customerUseCase),
		Settings:  handler.NewSettingsHandler(settingsUseCase),
		Specials:  handler.NewSpecialHandler(specialUseCase),
		Analytics: handler.NewAnalyticsHandler(analyticsUseCase),
		Cart:      handler.NewCartHandler(settingsUseCase),
	}, a.cfg.HTTP.CORSOrigins)

	server := &http.Server{
		Addr:    ":" + a.cfg.HTTP.Port,
		Handler: router,
	}

	return a.runServerWithGracefulShutdown(server)
}

func (a *App) initMongoDB() (*mongodb.Store, error) {
	a.logger.Info("Connecting to MongoDB", "uri", a.cfg.Mongo.URI, "db", a.cfg.Mongo.DB)

	store, err := mongodb.NewStore(a.cfg.Mongo.URI, a.cfg.Mongo.DB)
	if err != nil {
		a.logger.Error("Failed to connect to MongoDB", "error", err)
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	a.logger.Info("Connected to MongoDB successfully")
	return store, nil
}

func (a *App) initNATS() usecase.EventPublisher {
	if a.cfg.NATS.URL == "" {
		a.logger.Info("NATS URL not set, event publishing disabled")
		return &noopPublisher{}
	}

	publisher, err := connectToNATSWithRetry(a.cfg.NATS.URL, a.logger, 3, 2*time.Second)
	if err != nil {
		a.logger.Warn("Failed to connect to NATS, continuing without event publishing",
			"error", err,
			"url", a.cfg.NATS.URL)
		return &noopPublisher{}
	}

	a.logger.Info("Connected to NATS successfully")
	return publisher
}

func (a *App) runServerWithGracefulShutdown(server *http.Server) error {
	serverErrors := make(chan error, 1)

	go func() {
		a.logger.Info("Starting HTTP server", "port", a.cfg.HTTP.Port)
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		a.logger.Info("Received shutdown signal, starting graceful shutdown", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			a.logger.Warn("Graceful shutdown timeout, forcing close", "error", err)
			return server.Close()
		}

		a.logger.Info("Graceful shutdown completed")
		return nil
	}
}

func connectToNATSWithRetry(url string, logger *logger.Logger, maxRetries int, delay time.Duration) (usecase.EventPublisher, error) {
	for i := 0; i < maxRetries; i++ {
		publisher, err := nats.NewNatsPublisher(url, logger)
		if err == nil {
			return publisher, nil
		}

		logger.Warn("Failed to connect to NATS, retrying...",
			"attempt", i+1,
			"max_retries", maxRetries,
			"error", err)

		if i < maxRetries-1 {
			time.Sleep(delay)
		}
	}

	return nil, fmt.Errorf("failed to connect to NATS after %d attempts", maxRetries)
}

type noopPublisher struct{}

func (n *noopPublisher) PublishOrderCreated(ctx context.Context, order *entities.Order) error {
	return nil
}

func (n *noopPublisher) Close() {
}
