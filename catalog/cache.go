// Copyright (c) 2026 Mats Viklund.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/mviklund/inkyear/models"
)

// DefaultCacheFile is where the fetched collection is cached on disk.
const DefaultCacheFile = "ink_cache.json"

// CacheData is the on-disk cache format.
type CacheData struct {
	Timestamp time.Time    `json:"timestamp"`
	InkCount  int          `json:"ink_count"`
	Inks      []models.Ink `json:"inks"`
}

// Cache stores fetched ink data on disk so the collection survives
// restarts without hitting the API.
type Cache struct {
	path string
}

// NewCache creates a cache at path, falling back to DefaultCacheFile.
func NewCache(path string) *Cache {
	if path == "" {
		path = DefaultCacheFile
	}
	return &Cache{path: path}
}

// Save writes the collection to disk with a fetch timestamp.
func (c *Cache) Save(inks []models.Ink) error {
	data := CacheData{
		Timestamp: time.Now(),
		InkCount:  len(inks),
		Inks:      inks,
	}
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode ink cache: %w", err)
	}
	if err := os.WriteFile(c.path, raw, 0644); err != nil {
		return fmt.Errorf("failed to write ink cache: %w", err)
	}
	return nil
}

// Load reads the cached collection. A missing or unreadable cache
// returns nil without an error; the caller falls back to the API.
func (c *Cache) Load() *CacheData {
	raw, err := os.ReadFile(c.path)
	if err != nil {
		return nil
	}
	var data CacheData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil
	}
	return &data
}

// Info returns a human-readable cache description like
// "Cached: 342 inks from 3 hours ago", or "" when there is no cache.
func (c *Cache) Info() string {
	data := c.Load()
	if data == nil {
		return ""
	}
	return fmt.Sprintf("Cached: %d inks from %s", data.InkCount, humanize.Time(data.Timestamp))
}

// Clear deletes the cache file, reporting whether one existed.
func (c *Cache) Clear() bool {
	if err := os.Remove(c.path); err != nil {
		return false
	}
	return true
}
