package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/HNP-Christopher-Rohde/hnp-example-blockchain-with-miner/internal/coordinator"
	"github.com/HNP-Christopher-Rohde/hnp-example-blockchain-with-miner/internal/metrics"
	"github.com/HNP-Christopher-Rohde/hnp-example-blockchain-with-miner/internal/pow"
	"github.com/HNP-Christopher-Rohde/hnp-example-blockchain-with-miner/internal/service"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

type config struct {
	CoordinatorURL     string        `long:"coordinator-url" env:"MINER_COORDINATOR_URL" description:"coordinator base URL" default:"http://localhost:8000"`
	Payload            string        `long:"payload" env:"MINER_PAYLOAD" description:"payload carried in mined blocks" default:"Block data"`
	Sleep              time.Duration `long:"sleep" env:"MINER_SLEEP" description:"pause between mining cycles" default:"0s"`
	HTTPTimeout        time.Duration `long:"http-timeout" env:"MINER_HTTP_TIMEOUT" description:"timeout for coordinator requests" default:"30s"`
	MaxCyclesPerSecond int           `long:"max-cycles-per-second" env:"MINER_MAX_CYCLES_PER_SECOND" description:"cap on mining cycles per second, 0 for unlimited" default:"0"`
	MetricsAddr        string        `long:"metrics-addr" env:"MINER_METRICS_ADDR" description:"address for metrics server" default:":2112"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("miner failed", zap.Error(err))
	}
	logger.Info("miner stopped")
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	client := coordinator.NewClient(cfg.CoordinatorURL, cfg.HTTPTimeout, metrics.NewCoordinatorClient())
	miner := pow.NewMiner(logger)

	limiter := ratelimit.NewUnlimited()
	if cfg.MaxCyclesPerSecond > 0 {
		limiter = ratelimit.New(cfg.MaxCyclesPerSecond)
	}

	svc, err := service.NewMinerService(
		client,
		miner,
		metrics.NewMiningLoop(),
		limiter,
		[]byte(cfg.Payload),
		cfg.Sleep,
		logger,
	)
	if err != nil {
		return err
	}

	logger.Info("starting miner",
		zap.String("coordinator", cfg.CoordinatorURL),
		zap.Duration("sleep", cfg.Sleep),
	)
	return svc.Run(ctx)
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
