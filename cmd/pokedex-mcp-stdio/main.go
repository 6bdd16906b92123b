package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
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
	// stdout carries the protocol, so logs only go to stderr or a file.
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
	server := mcpsrv.NewServer(source, version, &mcpsrv.ServerOptions{
		EnableAdmin: cfg.EnableAdmin,
		APIKey:      cfg.APIKey,
		Count:       appCfg.Count,
		Concurrency: appCfg.Concurrency,
		Logger:      logger.Named("mcp"),
	})

	if cfg.CacheClearInterval > 0 {
		go func() {
			ticker := time.NewTicker(cfg.CacheClearInterval)
			defer ticker.Stop()
			for {
				select {
				case <-ticker.C:
					source.ClearCache()
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		logger.Fatal("stdio mcp server failed", zap.Error(err))
	}
}
