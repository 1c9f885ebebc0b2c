// Package cache is a content-addressed artifact store with LRU eviction
// and TTL cleanup. One instance assumes a single owner; callers sharing an
// instance across goroutines must serialize access externally.
package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/mbalogun/invoice-pipeline/internal/artifact"
	"github.com/mbalogun/invoice-pipeline/internal/common"
)

// ErrNotFound is returned by Retrieve for an unknown hash.
var ErrNotFound = errors.New("artifact not found in cache")

// FullError is returned when eviction cannot free enough space for a store.
type FullError struct {
	Current int64
	Max     int64
}

func (e *FullError) Error() string {
	return fmt.Sprintf("cache full: %d of %d bytes used", e.Current, e.Max)
}

// Config controls cache placement and limits.
type Config struct {
	Dir               string
	MaxBytes          int64
	MaxAge            time.Duration
	PreserveOriginals bool
}

type entryMeta struct {
	StoredAt     time.Time `json:"stored_at"`
	LastAccessed time.Time `json:"last_accessed"`
	Size         int64     `json:"size"`
	IsOriginal   bool      `json:"is_original"`
}

const indexFile = "metadata.json"

// Cache is the content-addressed store. Identity is the SHA-256 of an
// artifact's canonical content, so structurally identical artifacts
// collapse to one entry regardless of their assigned ids.
type Cache struct {
	cfg    Config
	index  map[string]entryMeta
	logger *slog.Logger
	now    func() time.Time
}

// New opens (or creates) a cache at cfg.Dir, reloading a persisted index.
func New(cfg Config, logger *slog.Logger) (*Cache, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Dir == "" {
		return nil, fmt.Errorf("cache dir is required: %w", common.ErrInvalidInput)
	}
	if cfg.MaxBytes <= 0 {
		return nil, fmt.Errorf("cache max bytes must be positive: %w", common.ErrInvalidInput)
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, common.WrapError(err, "create cache dir")
	}

	c := &Cache{cfg: cfg, index: map[string]entryMeta{}, logger: logger, now: time.Now}
	if err := c.loadIndex(); err != nil {
		return nil, err
	}
	return c, nil
}

// Store writes the artifact under its content hash. Storing identical
// content again only refreshes the access time and returns the same hash.
func (c *Cache) Store(a artifact.Artifact) (string, error) {
	hash, err := artifact.ContentHash(a)
	if err != nil {
		return "", err
	}

	if meta, ok := c.index[hash]; ok {
		meta.LastAccessed = c.now()
		c.index[hash] = meta
		if err := c.persistIndex(); err != nil {
			return "", err
		}
		return hash, nil
	}

	data, err := artifact.Encode(a)
	if err != nil {
		return "", err
	}
	size := int64(len(data))

	if err := c.ensureSpace(size); err != nil {
		return "", err
	}

	shard := filepath.Join(c.cfg.Dir, hash[:2])
	if err := os.MkdirAll(shard, 0o755); err != nil {
		return "", common.WrapError(err, "create shard dir")
	}
	if err := os.WriteFile(filepath.Join(shard, hash+".json"), data, 0o644); err != nil {
		return "", common.WrapError(err, "write artifact")
	}

	now := c.now()
	c.index[hash] = entryMeta{
		StoredAt:     now,
		LastAccessed: now,
		Size:         size,
		IsOriginal:   artifact.IsOriginal(a),
	}
	if err := c.persistIndex(); err != nil {
		return "", err
	}
	return hash, nil
}

// Retrieve loads the artifact stored under hash, refreshing its access time.
func (c *Cache) Retrieve(hash string) (artifact.Artifact, error) {
	meta, ok := c.index[hash]
	if !ok {
		return nil, ErrNotFound
	}

	data, err := os.ReadFile(c.entryPath(hash))
	if err != nil {
		if os.IsNotExist(err) {
			// index/disk drift from a best-effort delete; treat as a miss
			c.logger.Warn("cache entry missing on disk", "hash", hash)
			return nil, ErrNotFound
		}
		return nil, common.WrapError(err, "read artifact")
	}

	a, err := artifact.Decode(data)
	if err != nil {
		return nil, err
	}

	meta.LastAccessed = c.now()
	c.index[hash] = meta
	if err := c.persistIndex(); err != nil {
		return nil, err
	}
	return a, nil
}

// CleanupExpired removes entries older than the configured max age and
// returns how many were removed. Originals are exempt when configured.
func (c *Cache) CleanupExpired() (int, error) {
	if c.cfg.MaxAge <= 0 {
		return 0, nil
	}
	cutoff := c.now().Add(-c.cfg.MaxAge)

	removed := 0
	for hash, meta := range c.index {
		if meta.StoredAt.After(cutoff) {
			continue
		}
		if c.cfg.PreserveOriginals && meta.IsOriginal {
			continue
		}
		c.removeEntry(hash)
		removed++
	}
	if removed > 0 {
		if err := c.persistIndex(); err != nil {
			return removed, err
		}
	}
	return removed, nil
}

// TotalSize reports the summed size of all cached entries.
func (c *Cache) TotalSize() int64 {
	var total int64
	for _, meta := range c.index {
		total += meta.Size
	}
	return total
}

// Len reports the number of cached entries.
func (c *Cache) Len() int {
	return len(c.index)
}

// Contains reports whether hash is present without touching access time.
func (c *Cache) Contains(hash string) bool {
	_, ok := c.index[hash]
	return ok
}

// ensureSpace evicts least-recently-accessed evictable entries until size
// more bytes fit under the cap. When eviction cannot possibly free enough,
// it fails up front without removing anything.
func (c *Cache) ensureSpace(size int64) error {
	current := c.TotalSize()
	needed := current + size - c.cfg.MaxBytes
	if needed <= 0 {
		return nil
	}

	type candidate struct {
		hash string
		meta entryMeta
	}
	var evictable []candidate
	var freeable int64
	for hash, meta := range c.index {
		if c.cfg.PreserveOriginals && meta.IsOriginal {
			continue
		}
		evictable = append(evictable, candidate{hash, meta})
		freeable += meta.Size
	}
	if freeable < needed {
		return &FullError{Current: current, Max: c.cfg.MaxBytes}
	}

	sort.Slice(evictable, func(i, j int) bool {
		return evictable[i].meta.LastAccessed.Before(evictable[j].meta.LastAccessed)
	})
	var freed int64
	for _, cand := range evictable {
		if freed >= needed {
			break
		}
		c.removeEntry(cand.hash)
		freed += cand.meta.Size
		c.logger.Debug("evicted cache entry", "hash", cand.hash, "size", cand.meta.Size)
	}
	return nil
}

// removeEntry drops an index entry; the file delete is best-effort.
func (c *Cache) removeEntry(hash string) {
	delete(c.index, hash)
	if err := os.Remove(c.entryPath(hash)); err != nil && !os.IsNotExist(err) {
		c.logger.Warn("failed to remove cache file", "hash", hash, "error", err)
	}
}

func (c *Cache) entryPath(hash string) string {
	return filepath.Join(c.cfg.Dir, hash[:2], hash+".json")
}

func (c *Cache) loadIndex() error {
	data, err := os.ReadFile(filepath.Join(c.cfg.Dir, indexFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return common.WrapError(err, "read cache index")
	}
	if err := json.Unmarshal(data, &c.index); err != nil {
		return common.WrapError(err, "decode cache index")
	}
	return nil
}

func (c *Cache) persistIndex() error {
	data, err := json.Marshal(c.index)
	if err != nil {
		return common.WrapError(err, "encode cache index")
	}
	if err := os.WriteFile(filepath.Join(c.cfg.Dir, indexFile), data, 0o644); err != nil {
		return common.WrapError(err, "write cache index")
	}
	return nil
}
