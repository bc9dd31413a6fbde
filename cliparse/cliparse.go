// Copyright (c) 2026 Mats Viklund.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	Year         int
	CatalogToken string
	CatalogURL   string
	CacheFile    string
	GeminiAPIKey string
	GeminiModel  string
	FillSeed     int64
}

// ParseFlags validates flags and fills defaults from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("inkyear", flag.ContinueOnError)

	// Network and storage (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL or file path")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.IntVar(&cfg.Year, "y", 0, "Year to plan")
	fs.StringVar(&cfg.CacheFile, "cache", "", "Ink cache file path")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.CatalogToken, "catalog-token", "", "Fountain Pen Companion API token (prefer env)")
	fs.StringVar(&cfg.CatalogURL, "catalog-url", "", "Catalog API base URL override")
	fs.StringVar(&cfg.GeminiAPIKey, "gemini-key", "", "Gemini API key for the chat assistant (prefer env)")
	fs.StringVar(&cfg.GeminiModel, "gemini-model", "", "Gemini model name")
	fs.Int64Var(&cfg.FillSeed, "seed", 0, "Fixed random seed for fill (0 = random)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 8191 // default
		}
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, errors.New("database type must be sqlite or postgres")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType == "sqlite" {
			cfg.DatabaseURL = "inkyear.db"
		} else {
			return Config{}, errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
	}

	if cfg.Year == 0 {
		if yearStr := os.Getenv("PLAN_YEAR"); yearStr != "" {
			year, err := strconv.Atoi(yearStr)
			if err != nil {
				return Config{}, errors.New("invalid PLAN_YEAR env variable")
			}
			cfg.Year = year
		} else {
			// Planning happens ahead of the calendar
			cfg.Year = time.Now().Year() + 1
		}
	}

	if cfg.CacheFile == "" {
		cfg.CacheFile = os.Getenv("CACHE_FILE")
	}

	// Catalog token is optional: without it the app runs from cache
	// and cannot refresh or commit.
	if cfg.CatalogToken == "" {
		cfg.CatalogToken = os.Getenv("FPC_API_TOKEN")
	}
	if cfg.CatalogURL == "" {
		cfg.CatalogURL = os.Getenv("CATALOG_URL")
	}

	if cfg.FillSeed == 0 {
		if seedStr := os.Getenv("FILL_SEED"); seedStr != "" {
			seed, err := strconv.ParseInt(seedStr, 10, 64)
			if err != nil {
				return Config{}, errors.New("invalid FILL_SEED env variable")
			}
			cfg.FillSeed = seed
		}
	}

	// Gemini key is optional: without it the chat assistant is disabled.
	if cfg.GeminiAPIKey == "" {
		cfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.GeminiModel == "" {
		cfg.GeminiModel = os.Getenv("GEMINI_MODEL")
	}

	return cfg, nil
}
