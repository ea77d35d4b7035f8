package rbac

import (
	"net/http"
	"testing"

	"web3admin/infrastructure/cache"
)

func TestMatchPathWildcardSegments(t *testing.T) {
	cases := []struct {
		pattern string
		path    string
		ok      bool
	}{
		{pattern: "/dashboard/events/*/edit", path: "/dashboard/events/42/edit", ok: true},
		{pattern: "/dashboard/events/*", path: "/dashboard/events/42", ok: true},
		{pattern: "/dashboard/events/*", path: "/dashboard/events/42/delete", ok: true},
		{pattern: "/dashboard/admins", path: "/dashboard/admins", ok: true},
		{pattern: "/dashboard/admins", path: "/dashboard/admins/new", ok: false},
		{pattern: "/dashboard/events/*/edit", path: "/dashboard/events/42/delete", ok: false},
		{pattern: "/dashboard/events/*", path: "/dashboard/blogs/1", ok: false},
	}

	for _, tc := range cases {
		if got := matchPath(tc.pattern, tc.path); got != tc.ok {
			t.Fatalf("pattern=%s path=%s expected=%v got=%v", tc.pattern, tc.path, tc.ok, got)
		}
	}
}

func TestAllowedByRole(t *testing.T) {
	r := New(cache.NewPermissionCache())
	r.Add("ADMINS_CREATE", http.MethodPost, "/dashboard/admins", RoleSuperadmin)
	r.Add("EVENTS_VIEW", http.MethodGet, "/dashboard/events", AllRoles...)

	if !r.Allowed(RoleEditor, "/dashboard/events", "get") {
		t.Fatalf("editor should view events")
	}
	if r.Allowed(RoleAdmin, "/dashboard/admins", http.MethodPost) {
		t.Fatalf("admin must not create admins")
	}
	if !r.Allowed(RoleSuperadmin, "/dashboard/admins", http.MethodPost) {
		t.Fatalf("superadmin should create admins")
	}
	if !r.Codes(RoleSuperadmin)["ADMINS_CREATE"] {
		t.Fatalf("expected ADMINS_CREATE code for superadmin")
	}
	if r.Allowed("", "/dashboard/events", http.MethodGet) {
		t.Fatalf("unknown role must not be allowed")
	}
}

func TestIsRole(t *testing.T) {
	if !IsRole("editor") || IsRole("owner") {
		t.Fatalf("unexpected IsRole results")
	}
}
