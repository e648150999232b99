package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	api "farmrent-backend/internal/api/grpc"
	"farmrent-backend/internal/api/grpc/interceptor"
	httpapi "farmrent-backend/internal/api/http"
	"farmrent-backend/internal/catalog"
	"farmrent-backend/internal/config"
	"farmrent-backend/internal/domain"
	"farmrent-backend/internal/events"
	"farmrent-backend/internal/location"
	"farmrent-backend/internal/logger"
	"farmrent-backend/internal/repository"
	"farmrent-backend/internal/repository/memory"
	"farmrent-backend/internal/repository/postgres"
	redisrepo "farmrent-backend/internal/repository/redis"
	"farmrent-backend/internal/security"
	"farmrent-backend/internal/service"
	"farmrent-backend/internal/storage"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	issueToken := flag.String("issue-token", "", "Print a development access token for the given account id and exit")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)

	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.Issuer)
	if *issueToken != "" {
		token, err := tokenManager.GenerateAccessToken(domain.AccountID(*issueToken), cfg.AccessTokenTTL())
		if err != nil {
			log.Fatalf("Failed to issue token: %v", err)
		}
		fmt.Println(token)
		return
	}

	logger.Info("Starting FarmRent Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "grpc_address", cfg.GetServerAddress(), "http_address", cfg.GetHTTPAddress())
	logger.Info("Booking configuration", "equipment_mode", cfg.EquipmentMode(), "quote_ttl", cfg.QuoteTTL())

	db, err := postgres.Open(context.Background(), cfg)
	if err != nil {
		logger.Error("Database unavailable", "error", err)
		log.Fatalf("Database unavailable: %v", err)
	}
	defer db.Close()

	// Initialize Repositories
	store := postgres.NewStore(db)
	quoteStore := newQuoteStore(cfg)

	// Initialize Security
	authInterceptor := interceptor.NewAuthInterceptor(tokenManager)

	// Initialize Event Publisher
	publisher := newPublisher(cfg)
	defer publisher.Close()

	// Initialize Image Storage
	images, err := storage.New(storage.Config{
		Type:         cfg.Storage.Type,
		Dir:          cfg.Storage.UploadDir,
		BaseURL:      cfg.Storage.BaseURL,
		MaxFileSize:  cfg.Storage.MaxFileSize * 1024 * 1024,
		AllowedTypes: cfg.Storage.AllowedTypes,
	})
	if err != nil {
		logger.Error("Failed to initialize image storage", "type", cfg.Storage.Type, "error", err)
		log.Fatalf("Failed to initialize image storage: %v", err)
	}
	logger.Info("Image storage ready", "type", cfg.Storage.Type, "upload_dir", cfg.Storage.UploadDir)

	// Initialize Location Resolution
	geocoder := location.NewBigDataCloudClient(cfg.Geocoding.BaseURL, cfg.Geocoding.APIKey, cfg.Geocoding.Language, cfg.GeocodingRequestTimeout())
	positionOpts := location.DefaultPositionOptions()
	positionOpts.Timeout = cfg.DeviceFixTimeout()
	resolver := location.NewResolver(geocoder, geocoder, positionOpts, cfg.GeocodingRequestTimeout())

	// Initialize Services
	equipmentCatalog := catalog.New(domain.AccountID(cfg.Catalog.OwnerAccountID))
	equipment := service.NewEquipmentResolver(cfg.EquipmentMode(), store.ListingRepository, equipmentCatalog)
	quoteSvc := service.NewQuoteService(equipment, quoteStore, cfg.QuoteTTL())
	bookingSvc := service.NewBookingService(store.BookingRepository, quoteSvc, publisher)
	listingSvc := service.NewListingService(store.ListingRepository, images)
	statsSvc := service.NewStatsService(store.BookingRepository, store.BookingStatsRepository)
	locationSvc := service.NewLocationService(resolver)

	// Set up gRPC server
	lis, err := net.Listen("tcp", cfg.GetServerAddress())
	if err != nil {
		logger.Error("Failed to listen", "error", err, "address", cfg.GetServerAddress())
		log.Fatalf("Failed to listen: %v", err)
	}

	s := grpc.NewServer(
		grpc.UnaryInterceptor(authInterceptor.Unary()),
	)
	api.RegisterBookingServiceServer(s, api.NewBookingHandler(bookingSvc))
	healthSrv := health.NewServer()
	healthpb.RegisterHealthServer(s, healthSrv)
	healthSrv.SetServingStatus(api.BookingServiceName, healthpb.HealthCheckResponse_SERVING)

	// Set up HTTP server
	router := httpapi.NewRouter(httpapi.Dependencies{
		Locations:    locationSvc,
		Quotes:       quoteSvc,
		Bookings:     bookingSvc,
		Listings:     listingSvc,
		Stats:        statsSvc,
		Catalog:      equipmentCatalog,
		Images:       images,
		TokenManager: tokenManager,
	})
	httpServer := &http.Server{
		Addr:              cfg.GetHTTPAddress(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server error", "error", err)
		}
	}()

	go func() {
		logger.Info("gRPC server listening", "address", cfg.GetServerAddress())
		if err := s.Serve(lis); err != nil {
			logger.Error("Failed to serve gRPC", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	healthSrv.Shutdown()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Warn("HTTP server shutdown", "error", err)
	}
	s.GracefulStop()
	logger.Info("Server stopped")
}

// newQuoteStore uses redis when configured and reachable, process memory otherwise.
func newQuoteStore(cfg *config.Config) repository.QuoteStore {
	if !cfg.Redis.Enabled {
		logger.Info("Quote cache: in-memory")
		return memory.NewQuoteStore()
	}
	client, err := redisrepo.Connect(context.Background(), cfg.Redis)
	if err != nil {
		logger.Warn("Redis unavailable, falling back to in-memory quote cache", "addr", cfg.Redis.Addr, "error", err)
		return memory.NewQuoteStore()
	}
	logger.Info("Quote cache: redis", "addr", cfg.Redis.Addr, "db", cfg.Redis.DB)
	return redisrepo.NewQuoteStore(client)
}

func newPublisher(cfg *config.Config) events.Publisher {
	if !cfg.RabbitMQ.Enabled {
		return events.NoopPublisher{}
	}
	publisher, err := events.NewAMQPPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange)
	if err != nil {
		logger.Warn("RabbitMQ unavailable, booking events disabled", "exchange", cfg.RabbitMQ.Exchange, "error", err)
		return events.NoopPublisher{}
	}
	logger.Info("Publishing booking events", "exchange", cfg.RabbitMQ.Exchange)
	return publisher
}
