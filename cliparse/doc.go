// Copyright (c) 2026 Mats Viklund.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 8191)
  - DatabaseURL: SQLite file path or PostgreSQL connection string
  - DatabaseType: "sqlite" (default) or "postgres"
  - Year: Calendar year being planned (default: next year)
  - CatalogToken: Fountain Pen Companion API token (optional; without
    it the app runs from cache and cannot refresh or commit)
  - CatalogURL: Catalog endpoint override, mainly for tests
  - CacheFile: Ink cache file path
  - GeminiAPIKey: Gemini key for the chat assistant (optional; chat is
    disabled without it)
  - GeminiModel: Gemini model override
  - FillSeed: Fixed seed for randomized fill (0 = random)

# CLI Flags

	-p              Server port
	-d              Database URL / file
	-t              Database type
	-y              Plan year
	-cache          Cache file path
	-catalog-token  Catalog API token
	-catalog-url    Catalog base URL
	-gemini-key     Gemini API key
	-gemini-model   Gemini model
	-seed           Fill seed

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	PLAN_YEAR     → -y
	CACHE_FILE    → -cache
	FPC_API_TOKEN → -catalog-token
	CATALOG_URL   → -catalog-url
	GEMINI_API_KEY → -gemini-key
	GEMINI_MODEL  → -gemini-model

CLI flags take precedence over environment variables.
*/
package cliparse
