package crud

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"

	sessioncontext "web3admin/frontend/shared/context"
	"web3admin/frontend/shared/table"
	"web3admin/infrastructure/apiclient"
	"web3admin/infrastructure/audit"
	"web3admin/infrastructure/authsession"
	"web3admin/infrastructure/flash"
	"web3admin/infrastructure/sqlite"
	"web3admin/models"
)

type fakeAPI struct {
	mu        sync.Mutex
	rows      []models.Record
	listCalls int
	listErr   error
	saveErr   error
	deleteErr error
	created   []any
	updated   map[string]any
	deleted   []string
}

func (f *fakeAPI) ListAdmin(_ context.Context, _ apiclient.Resource, _ url.Values) (apiclient.Collection, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.listErr != nil {
		return apiclient.Collection{}, f.listErr
	}
	return apiclient.Collection{Items: f.rows, Total: len(f.rows)}, nil
}

func (f *fakeAPI) GetAdmin(_ context.Context, _ apiclient.Resource, id string) (models.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.rows {
		if r.ID() == id {
			return r, nil
		}
	}
	return nil, &apiclient.Error{Status: http.StatusNotFound, Message: "Contact not found"}
}

func (f *fakeAPI) Create(_ context.Context, _ apiclient.Resource, input any) (json.RawMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	f.created = append(f.created, input)
	return json.RawMessage(`{}`), nil
}

func (f *fakeAPI) Update(_ context.Context, _ apiclient.Resource, id string, input any) (json.RawMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	if f.updated == nil {
		f.updated = map[string]any{}
	}
	f.updated[id] = input
	return json.RawMessage(`{}`), nil
}

func (f *fakeAPI) Delete(_ context.Context, _ apiclient.Resource, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeAPI) lists() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listCalls
}

func testEntity() Entity {
	return Entity{
		Slug:     "events",
		Title:    "Events",
		Singular: "event",
		Plural:   "events",
		Resource: apiclient.Events,
		Columns: []table.Column{
			{Key: "title", Label: "Title"},
			{Key: "status", Label: "Status"},
		},
		Fields: []Field{
			{Name: "title", Label: "Title", Kind: KindText, Required: true},
			{Name: "tags", Label: "Tags", Kind: KindTags},
			{Name: "secret", Label: "Secret", Kind: KindPassword, CreateOnly: true},
		},
		Caps:     Caps{Create: true, Edit: true, Delete: true, View: true, Export: true},
		Statuses: []Option{{Value: "new", Label: "New"}, {Value: "read", Label: "Read"}},
	}
}

type harness struct {
	api    *fakeAPI
	ctl    *Controller
	router http.Handler
	audit  *audit.Service
}

func newHarness(t *testing.T, e Entity, api *fakeAPI) *harness {
	t.Helper()
	db, err := sqlite.OpenDB(filepath.Join(t.TempDir(), "crud.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := sqlite.ApplyMigrations(context.Background(), db); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	auditSvc := audit.NewService(db)
	ctl := NewController(e, api, auditSvc, flash.NewStore("test-secret", false))

	codes := map[string]bool{}
	for _, action := range []string{ActionList, ActionCreate, ActionEdit, ActionDelete, ActionView, ActionStatus, ActionExport} {
		codes[e.Code(action)] = true
	}
	admin := &models.Admin{ID: "a1", Email: "ops@example.com", Role: "admin"}

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			v := sessioncontext.Viewer{
				Session: authsession.Snapshot{State: authsession.StateAuthenticated, Admin: admin},
				Codes:   codes,
			}
			next.ServeHTTP(w, req.WithContext(sessioncontext.NewContextWithViewer(req.Context(), v)))
		})
	})
	base := e.Path()
	r.Get(base, ctl.ListPageQueryHandler())
	r.Get(base+"/table", ctl.TableFragmentQueryHandler())
	r.Get(base+"/export.csv", ctl.ExportQueryHandler("csv"))
	r.Get(base+"/new", ctl.NewFormQueryHandler())
	r.Post(base, ctl.SaveCommandHandler())
	r.Get(base+"/{id}", ctl.DetailQueryHandler())
	r.Post(base+"/{id}", ctl.SaveCommandHandler())
	r.Get(base+"/{id}/edit", ctl.EditFormQueryHandler())
	r.Get(base+"/{id}/delete", ctl.DeleteConfirmQueryHandler())
	r.Post(base+"/{id}/delete", ctl.DeleteCommandHandler())
	r.Post(base+"/{id}/status", ctl.StatusCommandHandler())

	return &harness{api: api, ctl: ctl, router: r, audit: auditSvc}
}

func (h *harness) do(t *testing.T, method, target string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)
	return rec
}

func TestListRendersRowsAndActions(t *testing.T) {
	api := &fakeAPI{rows: []models.Record{{"id": "e1", "title": "Hack"}, {"id": "e2", "title": "Meetup"}}}
	h := newHarness(t, testEntity(), api)

	rec := h.do(t, http.MethodGet, "/dashboard/events", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if got := strings.Count(body, "<tr data-row="); got != 2 {
		t.Fatalf("expected 2 rows, got %d", got)
	}
	for _, want := range []string{`href="/dashboard/events/e1/edit"`, `href="/dashboard/events/e2/delete"`, `href="/dashboard/events/new"`} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected %s in body", want)
		}
	}
}

func TestListFailureShowsNoticeAndEmptyTable(t *testing.T) {
	api := &fakeAPI{listErr: &apiclient.TransportError{Method: http.MethodGet, Endpoint: "/api/events", Err: errors.New("connection refused")}}
	h := newHarness(t, testEntity(), api)

	rec := h.do(t, http.MethodGet, "/dashboard/events", nil, nil)
	body := rec.Body.String()
	if !strings.Contains(body, "Failed to fetch events") {
		t.Fatalf("expected fetch failure notice: %s", body)
	}
	if got := strings.Count(body, "<tr data-empty>"); got != 1 {
		t.Fatalf("expected one empty row, got %d", got)
	}
}

func TestUnauthorizedRedirectsToLogin(t *testing.T) {
	api := &fakeAPI{listErr: apiclient.ErrUnauthorized}
	h := newHarness(t, testEntity(), api)

	rec := h.do(t, http.MethodGet, "/dashboard/events", nil, nil)
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/login" {
		t.Fatalf("expected redirect to /login, got %d %q", rec.Code, rec.Header().Get("Location"))
	}
}

func TestFailedDeleteRefetchesExactlyOnce(t *testing.T) {
	api := &fakeAPI{
		rows:      []models.Record{{"id": "e1", "title": "Hack"}},
		deleteErr: &apiclient.Error{Status: http.StatusConflict, Message: "Event has registrations"},
	}
	h := newHarness(t, testEntity(), api)

	rec := h.do(t, http.MethodPost, "/dashboard/events/e1/delete", url.Values{}, nil)
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/dashboard/events" {
		t.Fatalf("expected redirect to list, got %d %q", rec.Code, rec.Header().Get("Location"))
	}
	if got := api.lists(); got != 0 {
		t.Fatalf("delete must not list by itself, got %d calls", got)
	}

	next := h.do(t, http.MethodGet, "/dashboard/events", nil, rec.Result().Cookies())
	if got := api.lists(); got != 1 {
		t.Fatalf("expected exactly one re-fetch, got %d", got)
	}
	if !strings.Contains(next.Body.String(), "Event has registrations") {
		t.Fatalf("expected server message in notice: %s", next.Body.String())
	}

	rows, err := h.audit.Recent(context.Background(), 1)
	if err != nil || len(rows) != 1 {
		t.Fatalf("expected audit row, got %v %v", rows, err)
	}
	if rows[0].Action != "events.delete" || rows[0].Outcome != audit.OutcomeFailed {
		t.Fatalf("unexpected audit row %+v", rows[0])
	}
}

func TestSuccessfulDeleteNotifies(t *testing.T) {
	api := &fakeAPI{rows: []models.Record{{"id": "e1", "title": "Hack"}}}
	h := newHarness(t, testEntity(), api)

	rec := h.do(t, http.MethodPost, "/dashboard/events/e1/delete", url.Values{}, nil)
	next := h.do(t, http.MethodGet, "/dashboard/events", nil, rec.Result().Cookies())
	if !strings.Contains(next.Body.String(), "Event deleted") {
		t.Fatalf("expected success notice")
	}
	if len(api.deleted) != 1 || api.deleted[0] != "e1" {
		t.Fatalf("unexpected deletes %v", api.deleted)
	}
}

func TestCreateSendsDecodedInputAndRedactsAudit(t *testing.T) {
	api := &fakeAPI{}
	h := newHarness(t, testEntity(), api)

	form := url.Values{"title": {"Hack"}, "tags": {"go, web3"}, "secret": {"hunter22"}}
	rec := h.do(t, http.MethodPost, "/dashboard/events", form, nil)
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/dashboard/events" {
		t.Fatalf("expected redirect, got %d", rec.Code)
	}
	if len(api.created) != 1 {
		t.Fatalf("expected one create, got %d", len(api.created))
	}
	input := api.created[0].(map[string]any)
	if tags, _ := input["tags"].([]string); len(tags) != 2 || tags[1] != "web3" {
		t.Fatalf("unexpected tags %#v", input["tags"])
	}

	rows, err := h.audit.Recent(context.Background(), 1)
	if err != nil || len(rows) != 1 {
		t.Fatalf("expected audit row, got %v %v", rows, err)
	}
	if strings.Contains(rows[0].PayloadJSON, "hunter22") {
		t.Fatalf("password leaked into audit payload: %s", rows[0].PayloadJSON)
	}
	if rows[0].AdminEmail != "ops@example.com" || rows[0].Outcome != audit.OutcomeOK {
		t.Fatalf("unexpected audit row %+v", rows[0])
	}
}

func TestCreateValidationRerendersForm(t *testing.T) {
	api := &fakeAPI{}
	h := newHarness(t, testEntity(), api)

	rec := h.do(t, http.MethodPost, "/dashboard/events", url.Values{"tags": {"go"}}, nil)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Title is required") || !strings.Contains(rec.Body.String(), `value="go"`) {
		t.Fatalf("expected problem and kept values: %s", rec.Body.String())
	}
	if len(api.created) != 0 {
		t.Fatalf("invalid input must not be sent")
	}
}

func TestUpdateFailureKeepsFormOpen(t *testing.T) {
	api := &fakeAPI{rows: []models.Record{{"id": "e1", "title": "Hack"}}, saveErr: errors.New("boom")}
	h := newHarness(t, testEntity(), api)

	rec := h.do(t, http.MethodPost, "/dashboard/events/e1", url.Values{"title": {"Hack 2"}}, nil)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Failed to save event") || !strings.Contains(body, `action="/dashboard/events/e1"`) {
		t.Fatalf("expected failure notice on edit form: %s", body)
	}
	if strings.Contains(body, `name="secret"`) {
		t.Fatalf("create-only field must not appear on edit form")
	}
}

func TestEditPrefillsFromList(t *testing.T) {
	api := &fakeAPI{rows: []models.Record{{"_id": "e9", "title": "Hack", "tags": []any{"a", "b"}}}}
	h := newHarness(t, testEntity(), api)

	rec := h.do(t, http.MethodGet, "/dashboard/events/e9/edit", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `value="a, b"`) {
		t.Fatalf("expected tags joined for editing: %s", rec.Body.String())
	}

	missing := h.do(t, http.MethodGet, "/dashboard/events/nope/edit", nil, nil)
	if missing.Code != http.StatusSeeOther {
		t.Fatalf("expected redirect for unknown id, got %d", missing.Code)
	}
}

func TestEditKeepsUnlistedSelectValue(t *testing.T) {
	e := testEntity()
	e.Fields = append(e.Fields, Field{Name: "category", Label: "Category", Kind: KindSelect, Options: []Option{
		{Value: "News", Label: "News"}, {Value: "Tutorial", Label: "Tutorial"},
	}})
	api := &fakeAPI{rows: []models.Record{{"id": "b1", "title": "Deep dive", "category": "Analysis"}}}
	h := newHarness(t, e, api)

	form := h.do(t, http.MethodGet, "/dashboard/events/b1/edit", nil, nil)
	if !strings.Contains(form.Body.String(), `<option value="Analysis" selected>`) {
		t.Fatalf("expected stored category to be selected: %s", form.Body.String())
	}

	rec := h.do(t, http.MethodPost, "/dashboard/events/b1", url.Values{"title": {"Deeper dive"}, "category": {"Analysis"}}, nil)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected redirect after update, got %d: %s", rec.Code, rec.Body.String())
	}
	got := api.updated["b1"].(map[string]any)
	if got["category"] != "Analysis" || got["title"] != "Deeper dive" {
		t.Fatalf("unexpected update input %v", got)
	}

	bad := h.do(t, http.MethodPost, "/dashboard/events/b1", url.Values{"title": {"x"}, "category": {"Gossip"}}, nil)
	if bad.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for an unknown category, got %d", bad.Code)
	}
}

func TestStatusUpdateAndDetail(t *testing.T) {
	e := testEntity()
	e.ItemReadable = true
	api := &fakeAPI{rows: []models.Record{{"id": "c1", "title": "Hello", "status": "new"}}}
	h := newHarness(t, e, api)

	detail := h.do(t, http.MethodGet, "/dashboard/events/c1", nil, nil)
	if !strings.Contains(detail.Body.String(), `<option value="new" selected>`) {
		t.Fatalf("expected current status selected: %s", detail.Body.String())
	}

	rec := h.do(t, http.MethodPost, "/dashboard/events/c1/status", url.Values{"status": {"read"}}, nil)
	if rec.Header().Get("Location") != "/dashboard/events/c1" {
		t.Fatalf("expected redirect to detail, got %q", rec.Header().Get("Location"))
	}
	if got := api.updated["c1"].(map[string]any)["status"]; got != "read" {
		t.Fatalf("unexpected status update %v", got)
	}

	h.do(t, http.MethodPost, "/dashboard/events/c1/status", url.Values{"status": {"bogus"}}, nil)
	if len(api.updated) != 1 || api.updated["c1"].(map[string]any)["status"] != "read" {
		t.Fatalf("unknown status must not be sent")
	}
}

func TestExportCSV(t *testing.T) {
	api := &fakeAPI{rows: []models.Record{{"id": "e1", "title": "Hack"}}}
	h := newHarness(t, testEntity(), api)

	rec := h.do(t, http.MethodGet, "/dashboard/events/export.csv", nil, nil)
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Fatalf("unexpected content type %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "Title,Status\nHack,-\n") {
		t.Fatalf("unexpected csv %q", rec.Body.String())
	}
}
