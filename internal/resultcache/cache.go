// Package resultcache keeps validation results for content already seen,
// keyed by the SHA-256 of the content and the declared format. Validation
// is deterministic, so a cached result is always the one Validate would
// give again.
package resultcache

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/rmera/molcheck"
)

// Cache wraps an in-memory go-cache store.
type Cache struct {
	c      *gocache.Cache
	mu     sync.Mutex
	hits   int
	misses int
}

// New creates a cache whose entries expire after ttl. A zero ttl keeps
// entries forever.
func New(ttl time.Duration) *Cache {
	exp := ttl
	if ttl == 0 {
		exp = gocache.NoExpiration
	}
	cleanup := 2 * ttl
	if ttl == 0 {
		cleanup = 0
	}
	return &Cache{c: gocache.New(exp, cleanup)}
}

// Key returns the cache key for content declared as format.
func Key(content []byte, format molcheck.Format) string {
	sum := sha256.Sum256(content)
	return format.String() + ":" + hex.EncodeToString(sum[:])
}

// Validate returns the cached result for content and format, validating
// and storing it on a miss.
func (C *Cache) Validate(content []byte, format molcheck.Format) molcheck.ValidationResult {
	key := Key(content, format)
	if v, ok := C.c.Get(key); ok {
		C.count(true)
		return v.(molcheck.ValidationResult)
	}
	C.count(false)
	res := molcheck.Validate(content, format)
	C.c.SetDefault(key, res)
	return res
}

func (C *Cache) count(hit bool) {
	C.mu.Lock()
	defer C.mu.Unlock()
	if hit {
		C.hits++
	} else {
		C.misses++
	}
}

// Stats returns the number of hits and misses so far.
func (C *Cache) Stats() (hits, misses int) {
	C.mu.Lock()
	defer C.mu.Unlock()
	return C.hits, C.misses
}

// Len returns the number of stored results.
func (C *Cache) Len() int {
	return C.c.ItemCount()
}
