// Copyright (c) 2026 Mats Viklund.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/mviklund/inkyear/catalog"
	"github.com/mviklund/inkyear/chat"
	"github.com/mviklund/inkyear/cliparse"
	"github.com/mviklund/inkyear/db"
	"github.com/mviklund/inkyear/handlers"
	"github.com/mviklund/inkyear/models"
	"github.com/mviklund/inkyear/router"
)

func main() {
	// Local .env is optional
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to the configured database
	driver := "sqlite"
	if cfg.DatabaseType == models.DBTypePostgres {
		driver = "postgres"
	}
	dbConn, err := sql.Open(driver, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "driver", driver)

	// Catalog client is optional: without a token the app serves the
	// cached collection and cannot refresh or commit pins.
	var client *catalog.Client
	if cfg.CatalogToken != "" {
		if cfg.CatalogURL != "" {
			client = catalog.NewClientWithURL(cfg.CatalogToken, cfg.CatalogURL)
		} else {
			client = catalog.NewClient(cfg.CatalogToken)
		}
	} else {
		slog.Warn("No catalog token; running from cache only")
	}

	cacheFile := cfg.CacheFile
	if cacheFile == "" {
		cacheFile = catalog.DefaultCacheFile
	}
	cache := catalog.NewCache(cacheFile)

	store := handlers.NewStore(dbConn, cfg, client, cache)
	if store.LoadCache() {
		slog.Info("Ink cache loaded", "info", store.CacheInfo())
	} else {
		slog.Warn("No ink cache; refresh the collection before planning")
	}

	// Chat assistant is optional as well
	var chatClient *chat.Client
	if cfg.GeminiAPIKey != "" {
		chatClient, err = chat.NewClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			slog.Error("chat client setup failed", "error", err)
			os.Exit(1)
		}
		slog.Info("Chat assistant enabled")
	} else {
		slog.Warn("No Gemini API key; chat assistant disabled")
	}

	// Create router
	mux := router.NewRouter(store, chatClient)

	// Create server
	server := http.Server{
		Handler: mux,
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "year", cfg.Year)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
