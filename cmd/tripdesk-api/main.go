// README: Entry point; loads config, wires the assistant, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"tripdesk/internal/ai"
	"tripdesk/internal/config"
	httptransport "tripdesk/internal/http"
	"tripdesk/internal/infra"
	"tripdesk/internal/logging"
	"tripdesk/internal/modules/conversation"
	"tripdesk/internal/modules/intent"
	"tripdesk/internal/modules/trip"
	"tripdesk/internal/modules/usage"
	"tripdesk/internal/search"
	"tripdesk/internal/search/amadeus"
	"tripdesk/internal/search/places"
	"tripdesk/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := logging.New(cfg.Env)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		logger.Fatal("db init", zap.Error(err))
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr, cfg.Redis.Password)

	provider, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey, cfg.AI.Model)
	if err != nil {
		logger.Fatal("gemini init", zap.Error(err))
	}
	defer provider.Close()

	placesSvc, err := places.NewService(cfg.Maps.APIKey, logger)
	if err != nil {
		logger.Fatal("places init", zap.Error(err))
	}

	responseCache := search.NewResponseCache(redisClient, 10*time.Minute, logger)
	amadeusClient := amadeus.NewClient(cfg.Amadeus.BaseURL, cfg.Amadeus.APIKey, cfg.Amadeus.APISecret, responseCache, logger)

	turnStore := conversation.NewStore(dbPool)
	usageSvc := usage.NewService(usage.NewStore(dbPool))

	assistant := service.NewAssistant(service.Deps{
		Classifier:   intent.NewClassifier(provider, logger),
		Parser:       trip.NewParser(provider, logger),
		Orchestrator: trip.NewOrchestrator(amadeusClient, amadeusClient, placesSvc, cfg.Assistant.FlightCap, cfg.Assistant.HotelCap, logger),
		Flights:      amadeusClient,
		Hotels:       amadeusClient,
		Places:       placesSvc,
		Synthesizer:  service.NewSynthesizer(provider, logger),
		Window:       conversation.NewWindowBuilder(turnStore, logger),
		Provider:     provider,
		MaxTurns:     cfg.Assistant.MaxHistoryTurns,
		TokenBudget:  cfg.Assistant.HistoryTokenBudget,
		Log:          logger,
	})

	router := httptransport.NewRouter(httptransport.RouterDeps{
		Assistant: assistant,
		Quota:     usageSvc,
		Turns:     turnStore,
		Log:       logger,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: router}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	logger.Info("tripdesk api listening", zap.String("addr", cfg.HTTP.Addr))
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server", zap.Error(err))
	}
}
