package exports

import (
	"bytes"
	"context"
	"strings"
	"testing"

	sessioncontext "web3admin/frontend/shared/context"
	"web3admin/frontend/shared/crud"
)

func TestExportableFiltersByCapAndPermission(t *testing.T) {
	entities := []crud.Entity{
		{Slug: "events", Title: "Events", Caps: crud.Caps{Export: true}},
		{Slug: "blogs", Title: "Blogs", Caps: crud.Caps{Export: false}},
		{Slug: "admins", Title: "Admins", Caps: crud.Caps{Export: true}},
	}
	viewer := sessioncontext.Viewer{Codes: map[string]bool{"EVENTS_EXPORT": true, "BLOGS_EXPORT": true}}

	data := Exportable(viewer, entities)
	if len(data.Entities) != 1 || data.Entities[0].Slug != "events" {
		t.Fatalf("expected only events, got %+v", data.Entities)
	}
}

func TestExportsPageLinksBothFormats(t *testing.T) {
	data := PageData{Entities: []crud.Entity{{Slug: "contacts", Title: "Contacts"}}}
	var buf bytes.Buffer
	if err := ExportsPage(data).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	body := buf.String()
	for _, want := range []string{`href="/dashboard/contacts/export.csv"`, `href="/dashboard/contacts/export.pdf"`, `data-row="contacts"`} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected %s in body", want)
		}
	}
}
