package targetver

import (
	"sync"

	"github.com/hashicorp/go-multierror"

	"github.com/anchore/go-targetver/internal/log"
)

// Cache memoizes normalization results and pairwise comparison outcomes.
// Entries are never evicted, so a cache grows for the lifetime of its owner
// (a deliberate space-for-time tradeoff — see Stats). A process-wide default
// cache backs the package-level Parse; callers that parse unbounded input
// sets should own a Cache instead. All methods are safe for concurrent use.
type Cache struct {
	mu          sync.RWMutex
	versions    map[string]*Version
	comparisons map[comparisonKey]int
}

// comparisonKey holds operands in caller-given order. The comparison cache is
// deliberately not symmetrized: every ordering method passes the receiver as
// the left operand, so (a,b) and (b,a) populate independent entries.
type comparisonKey struct {
	left  string
	right string
}

// CacheStats reports cache entry counts, letting owners observe the unbounded
// growth of a long-lived cache.
type CacheStats struct {
	Versions    int
	Comparisons int
}

func NewCache() *Cache {
	return &Cache{
		versions:    make(map[string]*Version),
		comparisons: make(map[comparisonKey]int),
	}
}

var defaultCache = NewCache()

// Parse normalizes, classifies, and memoizes a raw version string. The cache
// key is the original input, not the canonical output: ".5" and "0.5" are
// cached independently even though both canonicalize to "0.5" (the resulting
// values are Equal). The empty string means "unspecified" and always yields a
// fresh wildcard without touching the cache.
func (c *Cache) Parse(raw string) (*Version, error) {
	if raw == "" {
		return c.Any(), nil
	}

	c.mu.RLock()
	v, ok := c.versions[raw]
	c.mu.RUnlock()
	if ok {
		return v, nil
	}

	canonical, isShort, err := normalize(raw)
	if err != nil {
		return nil, err
	}

	return c.store(raw, canonical, isShort), nil
}

// ParseAll constructs a version for each raw value, aggregating any
// malformed-input failures. Values that parse are always returned, even when
// the error is non-nil.
func (c *Cache) ParseAll(values ...string) ([]*Version, error) {
	var errs error
	versions := make([]*Version, 0, len(values))
	for _, value := range values {
		v, err := c.Parse(value)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		versions = append(versions, v)
	}
	if errs != nil {
		log.Debugf("failed to parse %d of %d version values", len(values)-len(versions), len(values))
	}
	return versions, errs
}

// Any returns a wildcard version bound to this cache.
func (c *Cache) Any() *Version {
	return &Version{cache: c}
}

// Stats returns current entry counts.
func (c *Cache) Stats() CacheStats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return CacheStats{
		Versions:    len(c.versions),
		Comparisons: len(c.comparisons),
	}
}

// intern returns the cached value for an already-canonical form, creating it
// on miss. Used by range expansion, where the expanded form is canonical by
// construction.
func (c *Cache) intern(canonical string, isShort bool) *Version {
	c.mu.RLock()
	v, ok := c.versions[canonical]
	c.mu.RUnlock()
	if ok {
		return v
	}
	return c.store(canonical, canonical, isShort)
}

func (c *Cache) store(key, canonical string, isShort bool) *Version {
	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.versions[key]; ok {
		return existing
	}
	v := &Version{
		raw:     canonical,
		isShort: isShort,
		cache:   c,
	}
	c.versions[key] = v
	return v
}

func (c *Cache) comparison(left, right string) (int, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	result, ok := c.comparisons[comparisonKey{left: left, right: right}]
	return result, ok
}

func (c *Cache) memoizeComparison(left, right string, result int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.comparisons[comparisonKey{left: left, right: right}] = result
}
