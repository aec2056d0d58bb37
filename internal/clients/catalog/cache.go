package catalog

import (
	"sync"
	"time"

	"github.com/KirkDiggler/skill-planner/internal/entities/skillbook"
	"github.com/KirkDiggler/skill-planner/internal/pkg/clock"
)

type cacheEntry struct {
	branch    *skillbook.Branch
	expiresAt time.Time
}

// branchCache keeps decoded branches by job id. Cached branches are shared
// between archetypes and must be treated as read only.
type branchCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	clock   clock.Clock
	entries map[int]cacheEntry
}

func newBranchCache(ttl time.Duration, c clock.Clock) *branchCache {
	return &branchCache{
		ttl:     ttl,
		clock:   c,
		entries: make(map[int]cacheEntry),
	}
}

func (c *branchCache) get(jobID int) (*skillbook.Branch, bool) {
	if c.ttl <= 0 {
		return nil, false
	}

	c.mu.RLock()
	entry, ok := c.entries[jobID]
	c.mu.RUnlock()

	if !ok || !c.clock.Now().Before(entry.expiresAt) {
		return nil, false
	}
	return entry.branch, true
}

func (c *branchCache) put(jobID int, branch *skillbook.Branch) {
	if c.ttl <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[jobID] = cacheEntry{
		branch:    branch,
		expiresAt: c.clock.Now().Add(c.ttl),
	}
}
