package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/aaronzipp/voice-spyfall/internal/config"
	"github.com/aaronzipp/voice-spyfall/internal/engine"
	"github.com/aaronzipp/voice-spyfall/internal/game"
	"github.com/aaronzipp/voice-spyfall/internal/handlers"
	"github.com/aaronzipp/voice-spyfall/internal/reference"
	"github.com/aaronzipp/voice-spyfall/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	log, err := cfg.NewLogger()
	if err != nil {
		logrus.Fatalf("Failed to build logger: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load data
	catalog, err := reference.Load(cfg.LocationsFile)
	if err != nil {
		log.Fatalf("Failed to load locations: %v", err)
	}
	locations, _ := catalog.LocationIndex(ctx)
	log.WithField("catalog", catalog.Name()).Infof("Loaded %d locations", len(locations))

	sessions, mode, err := store.Open(ctx, store.Options{
		Mode:        cfg.Store,
		SQLitePath:  cfg.SQLitePath,
		PostgresDSN: cfg.PostgresDSN,
		Redis: store.RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			TTL:      cfg.RedisTTL,
		},
	})
	if err != nil {
		log.Fatalf("Failed to open %s session store: %v", mode, err)
	}
	defer sessions.Close()
	log.Infof("Session store: %s", mode)

	rng := game.NewEntropyRand()
	if cfg.Seed != 0 {
		log.Warnf("Using fixed seed %d; draws are reproducible", cfg.Seed)
		rng = game.NewRand(cfg.Seed)
	}

	eng := engine.New(sessions, catalog,
		engine.WithRand(rng),
		engine.WithLogger(log),
		engine.WithWriteRetries(cfg.WriteRetries),
	)
	h := &handlers.Context{Engine: eng, Log: log}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           h.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Infof("Server starting on %s", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		log.Info("Shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	if err := g.Wait(); err != nil {
		log.WithError(err).Error("Server stopped")
		os.Exit(1)
	}
}
