package spec_cache

import (
	"sync"
	"time"

	"github.com/kon1973/nexu-webshop-sub001/specs"
)

const TTL = 5 * time.Minute

// ── Facet group cache ────────────────────────────────────────────────────────
// Aggregating specification filters walks every matching product, so the
// result is cached per category key. Any product mutation invalidates
// the whole cache rather than tracking which categories were touched.

type entry struct {
	groups    []specs.Group
	fetchedAt time.Time
}

var (
	mu    sync.RWMutex
	byKey = make(map[string]entry)
)

// Get returns the cached facet groups for a category key ("" for the
// whole catalog) if the entry is still fresh.
func Get(category string) ([]specs.Group, bool) {
	mu.RLock()
	defer mu.RUnlock()
	e, ok := byKey[category]
	if ok && time.Since(e.fetchedAt) < TTL {
		return e.groups, true
	}
	return nil, false
}

func Set(category string, groups []specs.Group) {
	mu.Lock()
	defer mu.Unlock()
	byKey[category] = entry{groups: groups, fetchedAt: time.Now()}
}

// Invalidate drops everything. Called on any product create, update,
// or delete.
func Invalidate() {
	mu.Lock()
	defer mu.Unlock()
	byKey = make(map[string]entry)
}
