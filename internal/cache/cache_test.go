package cache

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/mbalogun/invoice-pipeline/internal/artifact"
)

func newTestCache(t *testing.T, cfg Config) *Cache {
	t.Helper()
	if cfg.Dir == "" {
		cfg.Dir = t.TempDir()
	}
	if cfg.MaxBytes == 0 {
		cfg.MaxBytes = 1 << 20
	}
	c, err := New(cfg, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

// advance installs a fake clock starting at a fixed instant and returns a
// function that moves it forward.
func advance(c *Cache) func(d time.Duration) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }
	return func(d time.Duration) { now = now.Add(d) }
}

func page(n int, text string) artifact.Page {
	return artifact.Page{ID: uuid.New(), PageNumber: n, Text: text}
}

func TestStoreRetrieveRoundTrip(t *testing.T) {
	c := newTestCache(t, Config{})

	p := page(1, "subtotal 10.00")
	hash, err := c.Store(p)
	if err != nil {
		t.Fatalf("Store: %v", err)
	}
	got, err := c.Retrieve(hash)
	if err != nil {
		t.Fatalf("Retrieve: %v", err)
	}
	gp, ok := got.(artifact.Page)
	if !ok {
		t.Fatalf("retrieved wrong type %T", got)
	}
	if gp.ID != p.ID || gp.Text != p.Text {
		t.Fatalf("retrieved %+v, stored %+v", gp, p)
	}
}

func TestStoreIdenticalContentIsIdempotent(t *testing.T) {
	c := newTestCache(t, Config{})

	// same content, different assigned ids
	h1, err := c.Store(artifact.Page{ID: uuid.New(), PageNumber: 1, Text: "x"})
	if err != nil {
		t.Fatalf("first Store: %v", err)
	}
	h2, err := c.Store(artifact.Page{ID: uuid.New(), PageNumber: 1, Text: "x"})
	if err != nil {
		t.Fatalf("second Store: %v", err)
	}
	if h1 != h2 {
		t.Fatalf("identical content stored under two hashes: %s, %s", h1, h2)
	}
	if c.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", c.Len())
	}
}

func TestRetrieveUnknownHash(t *testing.T) {
	c := newTestCache(t, Config{})
	if _, err := c.Retrieve("deadbeef"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestEvictionIsLeastRecentlyAccessed(t *testing.T) {
	c := newTestCache(t, Config{MaxBytes: 100})
	tick := advance(c)

	sizeOf := func(p artifact.Page) int64 {
		b, err := artifact.Encode(p)
		if err != nil {
			t.Fatalf("Encode: %v", err)
		}
		return int64(len(b))
	}

	a := page(1, "aaaa")
	b := page(2, "bbbb")
	c.cfg.MaxBytes = 2*sizeOf(a) + 10

	ha, err := c.Store(a)
	if err != nil {
		t.Fatalf("Store a: %v", err)
	}
	tick(time.Second)
	hb, err := c.Store(b)
	if err != nil {
		t.Fatalf("Store b: %v", err)
	}
	tick(time.Second)

	// touch a so b becomes the LRU entry
	if _, err := c.Retrieve(ha); err != nil {
		t.Fatalf("Retrieve a: %v", err)
	}
	tick(time.Second)

	hc, err := c.Store(page(3, "cccc"))
	if err != nil {
		t.Fatalf("Store c: %v", err)
	}

	if !c.Contains(ha) || !c.Contains(hc) {
		t.Fatal("recently used and new entries should survive eviction")
	}
	if c.Contains(hb) {
		t.Fatal("least recently accessed entry should have been evicted")
	}
	if c.TotalSize() > c.cfg.MaxBytes {
		t.Fatalf("size %d exceeds cap %d after eviction", c.TotalSize(), c.cfg.MaxBytes)
	}
}

func TestFullErrorWhenOnlyOriginalsRemain(t *testing.T) {
	c := newTestCache(t, Config{MaxBytes: 1 << 20, PreserveOriginals: true})

	orig := artifact.Input{ID: uuid.New(), SourcePath: "/in/a.pdf", ContentHash: "abc", FileSize: 9}
	h, err := c.Store(orig)
	if err != nil {
		t.Fatalf("Store original: %v", err)
	}

	// shrink the cap below what the original occupies; nothing is evictable
	c.cfg.MaxBytes = c.TotalSize()

	_, err = c.Store(page(1, "does not fit"))
	var full *FullError
	if !errors.As(err, &full) {
		t.Fatalf("expected FullError, got %v", err)
	}
	if full.Max != c.cfg.MaxBytes {
		t.Fatalf("FullError.Max = %d, want %d", full.Max, c.cfg.MaxBytes)
	}
	// the failed store must not have evicted the original
	if !c.Contains(h) {
		t.Fatal("original evicted by a failed store")
	}
	if c.Len() != 1 {
		t.Fatalf("expected 1 entry after failed store, got %d", c.Len())
	}
}

func TestCleanupExpiredSkipsPreservedOriginals(t *testing.T) {
	c := newTestCache(t, Config{MaxAge: time.Hour, PreserveOriginals: true})
	tick := advance(c)

	hOrig, err := c.Store(artifact.Input{ID: uuid.New(), SourcePath: "/in/a.pdf"})
	if err != nil {
		t.Fatalf("Store original: %v", err)
	}
	hPage, err := c.Store(page(1, "old page"))
	if err != nil {
		t.Fatalf("Store page: %v", err)
	}

	tick(2 * time.Hour)
	removed, err := c.CleanupExpired()
	if err != nil {
		t.Fatalf("CleanupExpired: %v", err)
	}
	if removed != 1 {
		t.Fatalf("removed %d entries, want 1", removed)
	}
	if !c.Contains(hOrig) {
		t.Fatal("preserved original was expired")
	}
	if c.Contains(hPage) {
		t.Fatal("expired page survived cleanup")
	}
}

func TestCleanupExpiredNoMaxAge(t *testing.T) {
	c := newTestCache(t, Config{})
	tick := advance(c)

	if _, err := c.Store(page(1, "stays")); err != nil {
		t.Fatalf("Store: %v", err)
	}
	tick(24 * 365 * time.Hour)

	removed, err := c.CleanupExpired()
	if err != nil {
		t.Fatalf("CleanupExpired: %v", err)
	}
	if removed != 0 || c.Len() != 1 {
		t.Fatalf("cleanup with no max age removed %d entries", removed)
	}
}

func TestIndexSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	c := newTestCache(t, Config{Dir: dir})

	h, err := c.Store(page(1, "persisted"))
	if err != nil {
		t.Fatalf("Store: %v", err)
	}

	reopened, err := New(Config{Dir: dir, MaxBytes: 1 << 20}, nil)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if !reopened.Contains(h) {
		t.Fatal("entry lost after reopen")
	}
	if _, err := reopened.Retrieve(h); err != nil {
		t.Fatalf("Retrieve after reopen: %v", err)
	}
}
