package cache

import (
	"sort"
	"sync"
)

// Grant allows one role to call one method on one route pattern.
type Grant struct {
	Code   string
	Path   string
	Method string
	Role   string
}

// PermissionCache indexes grants by role.
type PermissionCache struct {
	mu     sync.RWMutex
	grants map[string][]Grant
	codes  map[string]struct{}
}

func NewPermissionCache() *PermissionCache {
	return &PermissionCache{
		grants: make(map[string][]Grant),
		codes:  make(map[string]struct{}),
	}
}

func (c *PermissionCache) Add(g Grant) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.grants[g.Role] = append(c.grants[g.Role], g)
	c.codes[g.Code] = struct{}{}
}

// GrantsFor returns every grant of role.
func (c *PermissionCache) GrantsFor(role string) []Grant {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]Grant(nil), c.grants[role]...)
}

// CodesFor returns the set of permission codes role holds.
func (c *PermissionCache) CodesFor(role string) map[string]bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[string]bool, len(c.grants[role]))
	for _, g := range c.grants[role] {
		out[g.Code] = true
	}
	return out
}

// Codes lists every known permission code.
func (c *PermissionCache) Codes() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.codes))
	for name := range c.codes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
