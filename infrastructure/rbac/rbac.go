// Package rbac maps admin roles to console routes. It only decides what the
// console shows and forwards; the content API enforces its own rules.
package rbac

import (
	"strings"

	"web3admin/infrastructure/cache"
)

const (
	RoleSuperadmin = "superadmin"
	RoleAdmin      = "admin"
	RoleEditor     = "editor"
)

// AllRoles lists every role, most privileged first.
var AllRoles = []string{RoleSuperadmin, RoleAdmin, RoleEditor}

// Rbac registers route grants into the permission cache.
type Rbac struct {
	cache *cache.PermissionCache
}

func New(c *cache.PermissionCache) *Rbac {
	return &Rbac{cache: c}
}

// Add grants code on method+path to each listed role.
func (r *Rbac) Add(code, method, path string, roles ...string) {
	if r == nil || r.cache == nil {
		return
	}
	for _, role := range roles {
		r.cache.Add(cache.Grant{
			Role:   role,
			Code:   code,
			Method: strings.ToUpper(method),
			Path:   path,
		})
	}
}

// Allowed reports whether role may call method on urlPath.
func (r *Rbac) Allowed(role, urlPath, method string) bool {
	if r == nil || r.cache == nil {
		return false
	}
	return ValidateResourceAccess(r.cache.GrantsFor(role), urlPath, method)
}

// Codes returns the permission codes role holds, for templates.
func (r *Rbac) Codes(role string) map[string]bool {
	if r == nil || r.cache == nil {
		return map[string]bool{}
	}
	return r.cache.CodesFor(role)
}

// IsRole reports whether role is one of AllRoles.
func IsRole(role string) bool {
	for _, known := range AllRoles {
		if role == known {
			return true
		}
	}
	return false
}

func ValidateResourceAccess(grants []cache.Grant, urlPath, method string) bool {
	method = strings.ToUpper(method)
	for _, g := range grants {
		if g.Method != method {
			continue
		}
		if matchPath(g.Path, urlPath) {
			return true
		}
	}
	return false
}

func matchPath(pattern, path string) bool {
	if pattern == path {
		return true
	}

	patternSeg := strings.Split(strings.Trim(pattern, "/"), "/")
	pathSeg := strings.Split(strings.Trim(path, "/"), "/")

	// Segment wildcards: /a/*/c.
	if len(patternSeg) == len(pathSeg) {
		for i := range patternSeg {
			if patternSeg[i] != "*" && patternSeg[i] != pathSeg[i] {
				return false
			}
		}
		return true
	}

	// Trailing wildcard matches any deeper suffix: /a/b/*.
	last := len(patternSeg) - 1
	if last >= 0 && patternSeg[last] == "*" && len(pathSeg) > last {
		for i := 0; i < last; i++ {
			if patternSeg[i] != pathSeg[i] {
				return false
			}
		}
		return true
	}
	return false
}

// Known lists every registered permission code, sorted.
func (r *Rbac) Known() []string {
	if r == nil || r.cache == nil {
		return nil
	}
	return r.cache.Codes()
}
