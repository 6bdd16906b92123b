package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Nicolas-rosa/Pokedex/config"
	"github.com/Nicolas-rosa/Pokedex/logging"
	"github.com/Nicolas-rosa/Pokedex/mcpsrv"
	"github.com/Nicolas-rosa/Pokedex/pokeapi"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appCfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logger, err := logging.New(logging.Options{File: appCfg.LogFile, Stderr: true, Verbose: appCfg.Verbose})
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	cfg := mcpsrv.LoadConfig()
	source := pokeapi.New(
		pokeapi.WithBaseURL(appCfg.BaseURL),
		pokeapi.WithTimeout(appCfg.Timeout),
		pokeapi.WithLogger(logger.Named("pokeapi")),
	)
	opts := &mcpsrv.ServerOptions{
		EnableAdmin: cfg.EnableAdmin && cfg.APIKey != "",
		APIKey:      cfg.APIKey,
		Count:       appCfg.Count,
		Concurrency: appCfg.Concurrency,
		Logger:      logger.Named("mcp"),
	}
	server := mcpsrv.NewServer(source, version, opts)

	if cfg.CacheClearInterval > 0 {
		go func() {
			ticker := time.NewTicker(cfg.CacheClearInterval)
			defer ticker.Stop()
			for {
				select {
				case <-ticker.C:
					source.ClearCache()
					logger.Debug("lookup cache cleared")
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	httpServer := &http.Server{
		Addr:              ":" + strings.TrimSpace(cfg.Port),
		Handler:           mcpsrv.NewMux(server, cfg, opts),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      0,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown error", zap.Error(err))
		}
	}()

	logger.Info("pokedex-mcp listening",
		zap.String("addr", httpServer.Addr),
		zap.Bool("stateless", cfg.Stateless),
		zap.Bool("admin", opts.EnableAdmin),
	)
	err = httpServer.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server failed", zap.Error(err))
	}
}
