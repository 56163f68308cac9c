package main

import (
	"context"
	"fmt"
	"os"

	"medtime/internal/auth"
	"medtime/internal/cli"
	"medtime/internal/config"
	"medtime/internal/ledger"
	"medtime/internal/logging"
	"medtime/internal/repository/sqlite"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Getenv("MEDTIME_CONFIG"))
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	defer log.Sync()

	if err := os.MkdirAll(cfg.Database.Dir, 0o755); err != nil {
		return fmt.Errorf("create database directory: %w", err)
	}

	repo, err := sqlite.New(cfg.GetDatabasePath())
	if err != nil {
		return err
	}
	defer repo.Close()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Database.QueryTimeout)
	store := ledger.New(ctx, repo, log)
	cancel()

	directory := auth.NewMemoryDirectory()
	tokens := auth.NewTokenIssuer(cfg.Server.JWTSecret, cfg.Server.TokenTTL)
	authService := auth.NewService(directory, tokens, log, cfg.Auth.Latency)

	root := cli.NewRootCommand(store, authService, cfg, log)
	return root.Execute()
}
