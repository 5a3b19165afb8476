package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"example.com/workouts/internal/api"
	"example.com/workouts/internal/config"
	"example.com/workouts/internal/domain"
	"example.com/workouts/internal/logging"
	"example.com/workouts/internal/seed"
	httptransport "example.com/workouts/internal/transport/http"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warnf("failed to load .env: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logging.Setup(logging.SetupParams{
		Level:      cfg.LogLevel,
		FormatJSON: cfg.LogFormatJSON,
		FileName:   cfg.LogFile,
	})

	store, err := newStore(cfg)
	if err != nil {
		log.Fatalf("failed to build workout store: %v", err)
	}

	service, err := domain.NewService(store, cfg.WeeklyGoalMinutes)
	if err != nil {
		log.Fatalf("failed to build service: %v", err)
	}

	router := mux.NewRouter()
	httptransport.InstrumentRouter(router)
	api.NewHandler(service).RegisterRoutes(router)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	handler := httptransport.PanicRecovery(
		httptransport.LogRequest(
			httptransport.CORS(cfg.CORSAllowedOrigin)(router),
		),
	)
	server := httptransport.NewServer(httptransport.DefaultServerConfig(cfg.HTTPAddress), handler)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.WithFields(log.Fields{
			"address":     cfg.HTTPAddress,
			"weekly_goal": cfg.WeeklyGoalMinutes,
			"workouts":    store.Len(),
		}).Info("workout dashboard listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Errorf("server error: %v", err)
		os.Exit(1)
	}
	log.Info("workout dashboard stopped")
}

func newStore(cfg config.Config) (*domain.Store, error) {
	var records []domain.Workout
	if cfg.SeedSampleData {
		var err error
		records, err = seed.Records(cfg.SeedFile)
		if err != nil {
			return nil, err
		}
	}

	opts := []domain.StoreOption{domain.WithSeed(records)}
	if cfg.IDStrategy == config.IDStrategySequence {
		opts = append(opts, domain.WithIDGenerator(domain.NewSequenceGenerator(domain.MaxSequenceID(records))))
	}
	return domain.NewStore(opts...)
}
