package treasury

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fivetwenty-io/treasury-client/internal/constants"
)

// Cache is a response cache backend.
type Cache interface {
	Get(ctx context.Context, key string) (*CacheEntry, error)
	Set(ctx context.Context, key string, entry *CacheEntry) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	Has(ctx context.Context, key string) bool
}

// CacheEntry is one cached response body.
type CacheEntry struct {
	Data      []byte    `json:"data"`
	ETag      string    `json:"etag,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the entry is past its expiry time.
func (e *CacheEntry) Expired() bool {
	return !e.ExpiresAt.IsZero() && time.Now().After(e.ExpiresAt)
}

// MemoryCache is a bounded in-process cache. When full, the entry closest to
// expiry is evicted.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]*CacheEntry
	maxSize int
}

// NewMemoryCache creates a memory cache holding at most maxSize entries.
func NewMemoryCache(maxSize int) *MemoryCache {
	if maxSize <= 0 {
		maxSize = constants.DefaultCacheSize
	}

	return &MemoryCache{
		entries: make(map[string]*CacheEntry),
		maxSize: maxSize,
	}
}

// Get returns the entry for key, ErrKeyNotFound, or ErrEntryExpired.
func (c *MemoryCache) Get(ctx context.Context, key string) (*CacheEntry, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}

	if entry.Expired() {
		_ = c.Delete(ctx, key)

		return nil, fmt.Errorf("%w: %s", ErrEntryExpired, key)
	}

	return entry, nil
}

// Set stores entry under key.
func (c *MemoryCache) Set(ctx context.Context, key string, entry *CacheEntry) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.maxSize {
		c.evictLocked()
	}

	c.entries[key] = entry

	return nil
}

func (c *MemoryCache) evictLocked() {
	var (
		victim string
		oldest time.Time
	)

	for key, entry := range c.entries {
		if victim == "" || entry.ExpiresAt.Before(oldest) {
			victim = key
			oldest = entry.ExpiresAt
		}
	}

	delete(c.entries, victim)
}

// Delete removes key.
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)

	return nil
}

// Clear removes every entry.
func (c *MemoryCache) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*CacheEntry)

	return nil
}

// Has reports whether an unexpired entry exists for key.
func (c *MemoryCache) Has(ctx context.Context, key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]

	return ok && !entry.Expired()
}

// Len returns the number of stored entries, expired ones included.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// Cleanup drops expired entries.
func (c *MemoryCache) Cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key, entry := range c.entries {
		if entry.Expired() {
			delete(c.entries, key)
		}
	}
}

// CacheStats counts cache traffic.
type CacheStats struct {
	Hits      int64
	Misses    int64
	Sets      int64
	Deletes   int64
	Evictions int64
}

// GetHitRate returns hits / (hits + misses), or 0 with no traffic.
func (s *CacheStats) GetHitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}

	return float64(s.Hits) / float64(total)
}

// CacheOptions are applied by CacheManager on top of a backend.
type CacheOptions struct {
	// DefaultTTL is used when Set is called with a zero TTL.
	DefaultTTL time.Duration
	// MaxValueSize rejects larger bodies silently.
	MaxValueSize int
}

// DefaultCacheOptions returns the default options.
func DefaultCacheOptions() *CacheOptions {
	return &CacheOptions{
		DefaultTTL:   constants.DefaultCacheTTL,
		MaxValueSize: constants.MaxCacheValueSize,
	}
}

// CacheManager wraps a backend with key derivation, TTLs and stats.
type CacheManager struct {
	cache   Cache
	options *CacheOptions

	hits    atomic.Int64
	misses  atomic.Int64
	sets    atomic.Int64
	deletes atomic.Int64
}

// NewCacheManager creates a cache manager. A nil cache disables caching.
func NewCacheManager(cache Cache, options *CacheOptions) *CacheManager {
	if cache == nil {
		cache = NewNoOpCache()
	}

	if options == nil {
		options = DefaultCacheOptions()
	}

	return &CacheManager{
		cache:   cache,
		options: options,
	}
}

// GetCacheKey derives the key of a request: "METHOD:path" or "METHOD:path:k=v&...".
func (m *CacheManager) GetCacheKey(method, path string, params map[string]string) string {
	if len(params) == 0 {
		return method + ":" + path
	}

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+params[k])
	}

	return method + ":" + path + ":" + strings.Join(parts, "&")
}

// Get returns the cached body for key.
func (m *CacheManager) Get(ctx context.Context, key string) ([]byte, error) {
	entry, err := m.cache.Get(ctx, key)
	if err != nil {
		m.misses.Add(1)

		return nil, err
	}

	m.hits.Add(1)

	return entry.Data, nil
}

// Set stores data under key for ttl.
func (m *CacheManager) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return m.SetWithETag(ctx, key, data, "", ttl)
}

// SetWithETag stores data and its ETag under key for ttl.
func (m *CacheManager) SetWithETag(ctx context.Context, key string, data []byte, etag string, ttl time.Duration) error {
	if m.options.MaxValueSize > 0 && len(data) > m.options.MaxValueSize {
		return nil
	}

	if ttl <= 0 {
		ttl = m.options.DefaultTTL
	}

	now := time.Now()

	err := m.cache.Set(ctx, key, &CacheEntry{
		Data:      data,
		ETag:      etag,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	})
	if err != nil {
		return fmt.Errorf("caching %s: %w", key, err)
	}

	m.sets.Add(1)

	return nil
}

// Invalidate removes key.
func (m *CacheManager) Invalidate(ctx context.Context, key string) error {
	err := m.cache.Delete(ctx, key)
	if err != nil && !errors.Is(err, ErrKeyNotFound) {
		return fmt.Errorf("invalidating %s: %w", key, err)
	}

	m.deletes.Add(1)

	return nil
}

// Clear removes every entry from the backend.
func (m *CacheManager) Clear(ctx context.Context) error {
	return m.cache.Clear(ctx)
}

// GetStats returns a snapshot of the counters.
func (m *CacheManager) GetStats() CacheStats {
	return CacheStats{
		Hits:    m.hits.Load(),
		Misses:  m.misses.Load(),
		Sets:    m.sets.Load(),
		Deletes: m.deletes.Load(),
	}
}

// CachingPolicy decides which responses are cached.
type CachingPolicy struct {
	CacheGET    bool
	CacheErrors bool
	// CacheLists allows caching list responses. Off by default so that
	// every page traversal reaches the API.
	CacheLists   bool
	TTL          time.Duration
	IncludePaths []string
	ExcludePaths []string
}

// DefaultCachingPolicy caches successful single-resource GETs.
func DefaultCachingPolicy() *CachingPolicy {
	return &CachingPolicy{
		CacheGET:     true,
		TTL:          constants.DefaultCacheTTL,
		ExcludePaths: []string{"/api/ping"},
	}
}

// ShouldCache reports whether a response may be cached.
func (p *CachingPolicy) ShouldCache(method, path string, statusCode int) bool {
	if method != "GET" || !p.CacheGET {
		return false
	}

	if statusCode >= 400 && !p.CacheErrors {
		return false
	}

	for _, excluded := range p.ExcludePaths {
		if strings.HasPrefix(path, excluded) {
			return false
		}
	}

	if len(p.IncludePaths) == 0 {
		return true
	}

	for _, included := range p.IncludePaths {
		if strings.HasPrefix(path, included) {
			return true
		}
	}

	return false
}

// ShouldCacheList is ShouldCache for list requests.
func (p *CachingPolicy) ShouldCacheList(method, path string, statusCode int) bool {
	return p.CacheLists && p.ShouldCache(method, path, statusCode)
}
