package treasury

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/fivetwenty-io/treasury-client/internal/constants"
)

// NATSKVConfig configures a NATS JetStream key-value cache.
type NATSKVConfig struct {
	// URL of the NATS server. Ignored when Conn is set.
	URL string
	// Conn is an existing connection; it is not closed by Close.
	Conn *nats.Conn
	// Bucket name. Defaults to "treasury-cache".
	Bucket string
	// TTL applied by the server to every key. Zero keeps keys until deleted.
	TTL time.Duration
}

// NATSKVCache stores entries in a JetStream key-value bucket so that several
// processes share one cache.
type NATSKVCache struct {
	conn   *nats.Conn
	owned  bool
	bucket jetstream.KeyValue
}

// NewNATSKVCache connects to NATS and creates or updates the bucket.
func NewNATSKVCache(ctx context.Context, config *NATSKVConfig) (*NATSKVCache, error) {
	if config == nil {
		return nil, ErrNATSConfigRequired
	}

	conn := config.Conn
	owned := false

	if conn == nil {
		url := config.URL
		if url == "" {
			url = nats.DefaultURL
		}

		var err error

		conn, err = nats.Connect(url, nats.Name("treasury-client cache"))
		if err != nil {
			return nil, fmt.Errorf("connecting to NATS: %w", err)
		}

		owned = true
	}

	bucketName := config.Bucket
	if bucketName == "" {
		bucketName = constants.DefaultCacheBucket
	}

	js, err := jetstream.New(conn)
	if err != nil {
		closeOwned(conn, owned)

		return nil, fmt.Errorf("creating JetStream context: %w", err)
	}

	bucket, err := js.CreateOrUpdateKeyValue(ctx, jetstream.KeyValueConfig{
		Bucket:      bucketName,
		Description: "treasury API response cache",
		TTL:         config.TTL,
	})
	if err != nil {
		closeOwned(conn, owned)

		return nil, fmt.Errorf("creating key-value bucket %s: %w", bucketName, err)
	}

	return &NATSKVCache{
		conn:   conn,
		owned:  owned,
		bucket: bucket,
	}, nil
}

func closeOwned(conn *nats.Conn, owned bool) {
	if owned {
		conn.Close()
	}
}

// natsKey maps an arbitrary cache key onto the key alphabet NATS accepts.
func natsKey(key string) string {
	sum := sha256.Sum256([]byte(key))

	return hex.EncodeToString(sum[:])
}

// Get returns the entry for key, ErrKeyNotFound, or ErrEntryExpired.
func (c *NATSKVCache) Get(ctx context.Context, key string) (*CacheEntry, error) {
	kve, err := c.bucket.Get(ctx, natsKey(key))
	if err != nil {
		if errors.Is(err, jetstream.ErrKeyNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, key)
		}

		return nil, fmt.Errorf("reading %s from NATS: %w", key, err)
	}

	var entry CacheEntry

	err = json.Unmarshal(kve.Value(), &entry)
	if err != nil {
		return nil, fmt.Errorf("decoding cache entry %s: %w", key, err)
	}

	if entry.Expired() {
		_ = c.Delete(ctx, key)

		return nil, fmt.Errorf("%w: %s", ErrEntryExpired, key)
	}

	return &entry, nil
}

// Set stores entry under key.
func (c *NATSKVCache) Set(ctx context.Context, key string, entry *CacheEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encoding cache entry %s: %w", key, err)
	}

	_, err = c.bucket.Put(ctx, natsKey(key), data)
	if err != nil {
		return fmt.Errorf("writing %s to NATS: %w", key, err)
	}

	return nil
}

// Delete removes key.
func (c *NATSKVCache) Delete(ctx context.Context, key string) error {
	err := c.bucket.Delete(ctx, natsKey(key))
	if err != nil && !errors.Is(err, jetstream.ErrKeyNotFound) {
		return fmt.Errorf("deleting %s from NATS: %w", key, err)
	}

	return nil
}

// Clear removes every key of the bucket.
func (c *NATSKVCache) Clear(ctx context.Context) error {
	lister, err := c.bucket.ListKeys(ctx)
	if err != nil {
		return fmt.Errorf("listing NATS keys: %w", err)
	}

	defer func() { _ = lister.Stop() }()

	for key := range lister.Keys() {
		err = c.bucket.Purge(ctx, key)
		if err != nil {
			return fmt.Errorf("purging NATS key %s: %w", key, err)
		}
	}

	return nil
}

// Has reports whether an unexpired entry exists for key.
func (c *NATSKVCache) Has(ctx context.Context, key string) bool {
	_, err := c.Get(ctx, key)

	return err == nil
}

// Close closes the NATS connection when the cache opened it.
func (c *NATSKVCache) Close() {
	closeOwned(c.conn, c.owned)
}
