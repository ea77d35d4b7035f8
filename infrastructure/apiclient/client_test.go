package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"web3admin/infrastructure/tokenstore"
)

type recordedRequest struct {
	Method        string
	Path          string
	RawQuery      string
	Authorization string
	ContentType   string
	Body          string
}

type stubAPI struct {
	mu       sync.Mutex
	requests []recordedRequest
	status   int
	body     string
}

func newStubAPI(t *testing.T, status int, body string) (*stubAPI, *httptest.Server) {
	t.Helper()
	stub := &stubAPI{status: status, body: body}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		stub.mu.Lock()
		stub.requests = append(stub.requests, recordedRequest{
			Method:        r.Method,
			Path:          r.URL.Path,
			RawQuery:      r.URL.RawQuery,
			Authorization: r.Header.Get("Authorization"),
			ContentType:   r.Header.Get("Content-Type"),
			Body:          string(raw),
		})
		status, body := stub.status, stub.body
		stub.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return stub, srv
}

func (s *stubAPI) last(t *testing.T) recordedRequest {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		t.Fatalf("expected at least one request")
	}
	return s.requests[len(s.requests)-1]
}

func TestBearerHeaderOnlyWhenAuthRequiredAndTokenPresent(t *testing.T) {
	cases := []struct {
		name         string
		token        string
		requiresAuth bool
		wantHeader   string
	}{
		{name: "auth with token", token: "tok", requiresAuth: true, wantHeader: "Bearer tok"},
		{name: "auth without token", token: "", requiresAuth: true, wantHeader: ""},
		{name: "public with token", token: "tok", requiresAuth: false, wantHeader: ""},
		{name: "public without token", token: "", requiresAuth: false, wantHeader: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stub, srv := newStubAPI(t, http.StatusOK, `{"success":true,"data":[]}`)
			tokens := tokenstore.NewMemoryStore()
			_ = tokens.SetToken(context.Background(), tc.token)
			client := New(srv.URL, tokens)

			var err error
			if tc.requiresAuth {
				_, err = client.Admin(context.Background(), http.MethodGet, "/api/events", nil)
			} else {
				_, err = client.Public(context.Background(), http.MethodGet, "/api/events", nil)
			}
			if err != nil {
				t.Fatalf("request: %v", err)
			}

			req := stub.last(t)
			if req.Authorization != tc.wantHeader {
				t.Fatalf("Authorization = %q, want %q", req.Authorization, tc.wantHeader)
			}
			if req.ContentType != "application/json" {
				t.Fatalf("expected JSON content type, got %q", req.ContentType)
			}
		})
	}
}

func TestUnauthorizedOnAuthenticatedCallClearsToken(t *testing.T) {
	for _, token := range []string{"tok", ""} {
		_, srv := newStubAPI(t, http.StatusUnauthorized, `{"success":false}`)
		tokens := tokenstore.NewMemoryStore()
		_ = tokens.SetToken(context.Background(), token)
		client := New(srv.URL, tokens)

		hookCalls := 0
		client.OnUnauthorized(func(context.Context) { hookCalls++ })

		_, err := client.Admin(context.Background(), http.MethodGet, "/api/admin/me", nil)
		if !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
		if got, _ := tokens.Token(context.Background()); got != "" {
			t.Fatalf("expected token cleared, got %q", got)
		}
		if hookCalls != 1 {
			t.Fatalf("expected one unauthorized hook call, got %d", hookCalls)
		}
	}
}

func TestUnauthorizedOnPublicCallIsReturnedAsFailure(t *testing.T) {
	_, srv := newStubAPI(t, http.StatusUnauthorized, `{"success":false,"error":{"code":"INVALID_CREDENTIALS","message":"Invalid email or password"}}`)
	tokens := tokenstore.NewMemoryStore()
	_ = tokens.SetToken(context.Background(), "keep-me")
	client := New(srv.URL, tokens)

	_, err := client.Login(context.Background(), "a@b.com", "wrong")
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if apiErr.Code != "INVALID_CREDENTIALS" || apiErr.Status != http.StatusUnauthorized {
		t.Fatalf("unexpected api error %+v", apiErr)
	}
	if got, _ := tokens.Token(context.Background()); got != "keep-me" {
		t.Fatalf("public 401 must not touch the token store, got %q", got)
	}
}

func TestEnvelopeFailureKeepsServerMessage(t *testing.T) {
	_, srv := newStubAPI(t, http.StatusBadRequest, `{"success":false,"error":{"code":"VALIDATION","message":"Title is required"}}`)
	client := New(srv.URL, tokenstore.NewMemoryStore())

	_, err := client.Create(context.Background(), Events, map[string]string{})
	if got := UserMessage(err, "Failed to save event"); got != "Title is required" {
		t.Fatalf("UserMessage = %q", got)
	}
}

func TestEnvelopeFailureWithTopLevelMessage(t *testing.T) {
	_, srv := newStubAPI(t, http.StatusOK, `{"success":false,"message":"Not allowed"}`)
	client := New(srv.URL, tokenstore.NewMemoryStore())

	_, err := client.Public(context.Background(), http.MethodGet, "/api/events", nil)
	if got := UserMessage(err, "fallback"); got != "Not allowed" {
		t.Fatalf("UserMessage = %q", got)
	}
}

func TestNonJSONBodyIsTransportError(t *testing.T) {
	_, srv := newStubAPI(t, http.StatusBadGateway, `<html>bad gateway</html>`)
	client := New(srv.URL, tokenstore.NewMemoryStore())

	_, err := client.Public(context.Background(), http.MethodGet, "/api/events", nil)
	var tErr *TransportError
	if !errors.As(err, &tErr) {
		t.Fatalf("expected *TransportError, got %v", err)
	}
	if tErr.Status != http.StatusBadGateway {
		t.Fatalf("expected status 502 on transport error, got %d", tErr.Status)
	}
	if got := UserMessage(err, "Failed to fetch events"); got != "Failed to fetch events" {
		t.Fatalf("expected fallback message, got %q", got)
	}
}

func TestNetworkFailureIsTransportError(t *testing.T) {
	_, srv := newStubAPI(t, http.StatusOK, `{}`)
	srv.Close()
	client := New(srv.URL, tokenstore.NewMemoryStore())

	_, err := client.Public(context.Background(), http.MethodGet, "/api/events", nil)
	var tErr *TransportError
	if !errors.As(err, &tErr) {
		t.Fatalf("expected *TransportError, got %v", err)
	}
}

func TestRequestSerializesJSONBody(t *testing.T) {
	stub, srv := newStubAPI(t, http.StatusOK, `{"success":true,"data":{"id":"1"}}`)
	tokens := tokenstore.NewMemoryStore()
	_ = tokens.SetToken(context.Background(), "tok")
	client := New(srv.URL+"/", tokens)

	if _, err := client.Update(context.Background(), Events, "e 1", map[string]any{"title": "Hack"}); err != nil {
		t.Fatalf("update: %v", err)
	}
	req := stub.last(t)
	if req.Method != http.MethodPut || req.Path != "/api/events/e 1" {
		t.Fatalf("unexpected request %s %s", req.Method, req.Path)
	}
	var body map[string]any
	if err := json.Unmarshal([]byte(req.Body), &body); err != nil {
		t.Fatalf("decode sent body: %v", err)
	}
	if body["title"] != "Hack" {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestResourceEndpoints(t *testing.T) {
	stub, srv := newStubAPI(t, http.StatusOK, `{"success":true,"data":null}`)
	tokens := tokenstore.NewMemoryStore()
	_ = tokens.SetToken(context.Background(), "tok")
	client := New(srv.URL, tokens)
	ctx := context.Background()

	if _, err := client.ListAdmin(ctx, Blogs, url.Values{"limit": {"100"}}); err != nil {
		t.Fatalf("list admin: %v", err)
	}
	if req := stub.last(t); req.Path != "/api/blogs/admin/all" || req.RawQuery != "limit=100" || req.Authorization == "" {
		t.Fatalf("unexpected admin list request %+v", req)
	}

	if _, err := client.ListPublic(ctx, Blogs, nil); err != nil {
		t.Fatalf("list public: %v", err)
	}
	if req := stub.last(t); req.Path != "/api/blogs" || req.Authorization != "" {
		t.Fatalf("unexpected public list request %+v", req)
	}

	if err := client.Delete(ctx, Subscribers, "s1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if req := stub.last(t); req.Method != http.MethodDelete || req.Path != "/api/newsletter/subscribers/s1" {
		t.Fatalf("unexpected delete request %+v", req)
	}

	if _, err := client.Update(ctx, Contacts, "c1", map[string]string{"status": "read"}); err != nil {
		t.Fatalf("contact status: %v", err)
	}
	if req := stub.last(t); req.Method != http.MethodPatch || req.Path != "/api/contact/c1" || req.Body != `{"status":"read"}` {
		t.Fatalf("unexpected contact status request %+v", req)
	}

	if _, err := client.GetAdmin(ctx, Contacts, "c2"); err != nil {
		t.Fatalf("get admin: %v", err)
	}
	if req := stub.last(t); req.Method != http.MethodGet || req.Path != "/api/contact/c2" || req.Authorization != "Bearer tok" {
		t.Fatalf("unexpected admin get request %+v", req)
	}

	if err := client.Register(ctx, RegisterInput{Email: "e@x.io", Password: "pw", Name: "E", Role: "editor"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if req := stub.last(t); req.Method != http.MethodPost || req.Path != "/api/admin/register" {
		t.Fatalf("unexpected register request %+v", req)
	}

	if _, err := client.ListPublic(ctx, Contacts, nil); !errors.Is(err, ErrNoPublicPath) {
		t.Fatalf("expected ErrNoPublicPath, got %v", err)
	}
}

func TestHealthReadsBareStatus(t *testing.T) {
	_, srv := newStubAPI(t, http.StatusOK, `{"status":"OK","uptime":12}`)
	client := New(srv.URL, tokenstore.NewMemoryStore())

	status, err := client.Health(context.Background())
	if err != nil {
		t.Fatalf("health: %v", err)
	}
	if status != "OK" {
		t.Fatalf("expected OK, got %q", status)
	}
}

func TestLoginAndProfileDecode(t *testing.T) {
	_, srv := newStubAPI(t, http.StatusOK, `{"success":true,"data":{"token":"jwt","admin":{"id":"a1","email":"a@b.com","name":"A","role":"superadmin"}}}`)
	client := New(srv.URL, tokenstore.NewMemoryStore())

	res, err := client.Login(context.Background(), "a@b.com", "correct")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if res.Token != "jwt" || res.Admin.Role != "superadmin" {
		t.Fatalf("unexpected login result %+v", res)
	}
}
