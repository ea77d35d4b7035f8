package settings

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"web3admin/infrastructure/apiclient"
	"web3admin/infrastructure/flash"
)

type fakeChanger struct {
	calls int
	err   error
}

func (f *fakeChanger) ChangePassword(context.Context, string, string) error {
	f.calls++
	return f.err
}

func TestCheckNewPassword(t *testing.T) {
	cases := []struct {
		name                  string
		current, next, repeat string
		ok                    bool
	}{
		{name: "valid", current: "oldpass1", next: "newpass22", repeat: "newpass22", ok: true},
		{name: "mismatch", current: "oldpass1", next: "newpass22", repeat: "newpass23"},
		{name: "same", current: "newpass22", next: "newpass22", repeat: "newpass22"},
		{name: "weak", current: "oldpass1", next: "short1", repeat: "short1"},
		{name: "missing", next: "newpass22", repeat: "newpass22"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			msg := checkNewPassword(tc.current, tc.next, tc.repeat)
			if tc.ok != (msg == "") {
				t.Fatalf("unexpected result %q", msg)
			}
		})
	}
}

func postChange(h http.HandlerFunc, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/dashboard/settings/password", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestChangePasswordCommandHandler(t *testing.T) {
	flashes := flash.NewStore("test-secret", false)
	valid := url.Values{"current_password": {"oldpass1"}, "new_password": {"newpass22"}, "confirm_password": {"newpass22"}}

	api := &fakeChanger{}
	rec := postChange(ChangePasswordCommandHandler(api, nil, flashes), valid)
	if api.calls != 1 || rec.Header().Get("Location") != settingsPath {
		t.Fatalf("expected one call and redirect, got %d %q", api.calls, rec.Header().Get("Location"))
	}

	api = &fakeChanger{}
	postChange(ChangePasswordCommandHandler(api, nil, flashes), url.Values{"current_password": {"oldpass1"}, "new_password": {"weak"}, "confirm_password": {"weak"}})
	if api.calls != 0 {
		t.Fatalf("weak password must not reach the API")
	}

	api = &fakeChanger{err: apiclient.ErrUnauthorized}
	rec = postChange(ChangePasswordCommandHandler(api, nil, flashes), valid)
	if rec.Header().Get("Location") != "/login" {
		t.Fatalf("expected login redirect, got %q", rec.Header().Get("Location"))
	}

	api = &fakeChanger{err: errors.New("boom")}
	rec = postChange(ChangePasswordCommandHandler(api, nil, flashes), valid)
	if rec.Header().Get("Location") != settingsPath {
		t.Fatalf("expected settings redirect, got %q", rec.Header().Get("Location"))
	}
}
