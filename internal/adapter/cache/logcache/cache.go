// Package logcache keeps the most recent processing log entries of recently
// viewed records in memory.
//
// The cache is read-through: a miss loads the newest N entries from the store.
// It holds at most Records keys, evicting the least recently used. Callers
// invalidate a key after committing a write that appends to or deletes the
// record's log. A load that overlaps an invalidation of its key still answers
// its own callers but is never stored.
package logcache

import (
	"context"
	"fmt"
	"slices"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"

	"github.com/heartmarshall/scholarship-curator/internal/domain"
)

// Loader reads the newest limit entries of a record from the store.
type Loader interface {
	ListByRecord(ctx context.Context, recordID string, limit int) ([]domain.ProcessingLogEntry, error)
}

// Cache is safe for concurrent use.
type Cache struct {
	entries *lru.Cache[string, []domain.ProcessingLogEntry]
	loader  Loader
	perKey  int
	flight  singleflight.Group

	// mu orders storing a load against Invalidate.
	mu      sync.Mutex
	pending map[string][]*load
}

// load tracks one read of the store that has not been stored yet.
type load struct {
	stale bool
}

// New creates a cache of up to records keys, each holding the newest perKey entries.
func New(loader Loader, records, perKey int) (*Cache, error) {
	if perKey <= 0 {
		return nil, fmt.Errorf("logcache: entries per record must be positive, got %d", perKey)
	}
	entries, err := lru.New[string, []domain.ProcessingLogEntry](records)
	if err != nil {
		return nil, fmt.Errorf("logcache: %w", err)
	}
	return &Cache{
		entries: entries,
		loader:  loader,
		perKey:  perKey,
		pending: make(map[string][]*load),
	}, nil
}

// Get returns up to limit of the newest entries of recordID, newest first.
// A limit above the per-record capacity bypasses the cache.
func (c *Cache) Get(ctx context.Context, recordID string, limit int) ([]domain.ProcessingLogEntry, error) {
	if limit <= 0 || limit > c.perKey {
		return c.loader.ListByRecord(ctx, recordID, limit)
	}

	if cached, ok := c.entries.Get(recordID); ok {
		return head(cached, limit), nil
	}

	v, err, _ := c.flight.Do(recordID, func() (any, error) {
		if cached, ok := c.entries.Get(recordID); ok {
			return cached, nil
		}
		l := c.begin(recordID)
		loaded, err := c.loader.ListByRecord(ctx, recordID, c.perKey)
		c.finish(recordID, l, loaded, err == nil)
		if err != nil {
			return nil, err
		}
		return loaded, nil
	})
	if err != nil {
		return nil, err
	}

	return head(v.([]domain.ProcessingLogEntry), limit), nil
}

// Invalidate drops the cached entries of recordID. Loads already in flight
// for it are discarded, and later reads start a new load instead of joining them.
func (c *Cache) Invalidate(recordID string) {
	c.mu.Lock()
	for _, l := range c.pending[recordID] {
		l.stale = true
	}
	delete(c.pending, recordID)
	c.entries.Remove(recordID)
	c.flight.Forget(recordID)
	c.mu.Unlock()
}

func (c *Cache) begin(recordID string) *load {
	l := &load{}
	c.mu.Lock()
	c.pending[recordID] = append(c.pending[recordID], l)
	c.mu.Unlock()
	return l
}

// finish stores a successful load unless its key was invalidated meanwhile.
func (c *Cache) finish(recordID string, l *load, loaded []domain.ProcessingLogEntry, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ok && !l.stale {
		c.entries.Add(recordID, loaded)
	}
	rest := slices.DeleteFunc(c.pending[recordID], func(p *load) bool { return p == l })
	if len(rest) == 0 {
		delete(c.pending, recordID)
	} else {
		c.pending[recordID] = rest
	}
}

// Len returns the number of records currently cached.
func (c *Cache) Len() int {
	return c.entries.Len()
}

// head returns a copy so callers cannot mutate the cached slice.
func head(entries []domain.ProcessingLogEntry, limit int) []domain.ProcessingLogEntry {
	return slices.Clone(entries[:min(limit, len(entries))])
}
