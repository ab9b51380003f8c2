// Copyright 2026 Silvanic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/silvanic/handbook"
	"github.com/silvanic/handbook/config"
	"github.com/silvanic/handbook/server"
	"github.com/urfave/cli/v2"
)

const shutdownTimeout = 10 * time.Second

func main() {
	app := &cli.App{
		Name:  "handbookd",
		Usage: "Semantic search service for a structured handbook",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Start the HTTP server",
				Action: serveCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to YAML configuration file",
						Value:   "handbook.yaml",
					},
					&cli.IntFlag{
						Name:    "port",
						Usage:   "HTTP listen port",
						EnvVars: []string{"PORT"},
					},
					&cli.StringFlag{
						Name:    "environment",
						Usage:   "Runtime environment (development, production)",
						EnvVars: []string{"ENVIRONMENT"},
					},
					&cli.StringFlag{
						Name:  "data",
						Usage: "Path to the knowledge-base JSON file",
					},
					&cli.StringFlag{
						Name:    "index-api-key",
						Usage:   "API key for the remote similarity index",
						EnvVars: []string{"INDEX_API_KEY"},
					},
					&cli.StringFlag{
						Name:    "embedding-api-key",
						Usage:   "API key for the embedding service",
						EnvVars: []string{"EMBEDDING_API_KEY"},
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func serveCommand(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}

	// Flags and environment override the file.
	if c.IsSet("port") {
		cfg.Server.Port = c.Int("port")
	}
	if c.IsSet("environment") {
		cfg.Environment = c.String("environment")
	}
	if c.IsSet("data") {
		cfg.Data.Path = c.String("data")
	}
	if c.IsSet("index-api-key") {
		cfg.Index.APIKey = c.String("index-api-key")
	}
	if c.IsSet("embedding-api-key") {
		cfg.Embedding.APIKey = c.String("embedding-api-key")
	}

	svc, err := handbook.Bootstrap(cfg)
	if err != nil {
		// Development fails fast; production serves a degraded handle
		// that reports not ready on data-dependent endpoints.
		if !cfg.IsProduction() {
			return fmt.Errorf("startup failed: %w", err)
		}
		slog.Error("startup failed, serving degraded", "err", err)
	}
	defer svc.Close()

	srv, err := server.New(svc, server.Config{
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		Production:     cfg.IsProduction(),
		AllowedOrigins: cfg.Server.AllowedOrigins,
		RootKey:        cfg.Data.RootKey,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
	})
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		slog.Info("received signal, shutting down", "signal", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(ctx)
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
