package main

import (
	"context"
	"fmt"
	"os"

	"SymbolWatch/internal/collector"
	"SymbolWatch/internal/config"
	"SymbolWatch/internal/scheduler"
	"SymbolWatch/internal/watchlist"
)

var configPath string

// app wires the components shared by all subcommands.
type app struct {
	cfg     *config.Config
	store   *watchlist.Store
	fetcher collector.Fetcher
}

func resolveConfigPath() string {
	if configPath != "" {
		return configPath
	}
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		return v
	}
	return "configs/config.yaml"
}

func loadApp() (*app, error) {
	cfg, err := config.Load(resolveConfigPath())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	store, err := watchlist.New(cfg.Holdings)
	if err != nil {
		return nil, fmt.Errorf("init watchlist: %w", err)
	}
	fetcher, err := collector.NewFetcher(cfg.DataSource.Provider, cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	if err != nil {
		return nil, fmt.Errorf("init fetcher: %w", err)
	}
	return &app{cfg: cfg, store: store, fetcher: fetcher}, nil
}

func (a *app) scheduler(ctx context.Context) *scheduler.Scheduler {
	return scheduler.NewScheduler(ctx, a.store, a.fetcher, scheduler.Options{
		Period:          a.cfg.Fetch.Period,
		Interval:        a.cfg.Fetch.Interval,
		RefreshInterval: a.cfg.Refresh(),
		Concurrency:     a.cfg.Concurrency,
	})
}
