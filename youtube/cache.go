package youtube

import (
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"
)

// RegionCache hands out one client per locale code. The key space is
// bounded by the set of distinct locales requested in practice, so
// entries are never evicted. Concurrent first requests for the same
// locale are collapsed into a single initialization.
type RegionCache struct {
	mu      sync.RWMutex
	clients map[string]*Client
	group   singleflight.Group
	apiKey  string
}

func NewRegionCache(apiKey string) *RegionCache {
	return &RegionCache{
		clients: make(map[string]*Client),
		apiKey:  apiKey,
	}
}

func (rc *RegionCache) Get(region string) *Client {
	region = strings.ToUpper(strings.TrimSpace(region))

	rc.mu.RLock()
	client, ok := rc.clients[region]
	rc.mu.RUnlock()
	if ok {
		return client
	}

	v, _, _ := rc.group.Do(region, func() (any, error) {
		rc.mu.RLock()
		existing, ok := rc.clients[region]
		rc.mu.RUnlock()
		if ok {
			return existing, nil
		}
		created := NewClient(region, rc.apiKey)
		rc.mu.Lock()
		rc.clients[region] = created
		rc.mu.Unlock()
		return created, nil
	})
	return v.(*Client)
}
