package catalog

import (
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

const queryCacheSize = 64

// queryCache memoizes read-query results for the lifetime of one Store,
// keyed by query signature. Invalidation is explicit: Insert purges it,
// and Store.InvalidateCache exposes the same control to callers.
type queryCache struct {
	entries *lru.Cache[string, any]
}

func newQueryCache() *queryCache {
	entries, err := lru.New[string, any](queryCacheSize)
	if err != nil {
		// Only reachable with a non-positive size constant.
		panic(err)
	}
	return &queryCache{entries: entries}
}

func (c *queryCache) get(key string) (any, bool) {
	return c.entries.Get(key)
}

func (c *queryCache) add(key string, value any) {
	c.entries.Add(key, value)
}

func (c *queryCache) purge() {
	c.entries.Purge()
}

// cacheKey builds a stable signature from a query name and its arguments.
func cacheKey(name string, args []any) string {
	if len(args) == 0 {
		return name
	}
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, name)
	for _, arg := range args {
		parts = append(parts, fmt.Sprint(arg))
	}
	return strings.Join(parts, "\x1f")
}
