package models

import (
	"encoding/json"
	"testing"
)

func TestRecordID(t *testing.T) {
	cases := []struct {
		name string
		rec  Record
		want string
	}{
		{name: "id", rec: Record{"id": "abc"}, want: "abc"},
		{name: "mongo id", rec: Record{"_id": "65f0"}, want: "65f0"},
		{name: "numeric", rec: Record{"id": json.Number("42")}, want: "42"},
		{name: "missing", rec: Record{"title": "x"}, want: ""},
		{name: "nil id falls through", rec: Record{"id": nil, "_id": "x"}, want: "x"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.rec.ID(); got != tc.want {
				t.Fatalf("ID() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRecordLookupNested(t *testing.T) {
	rec := Record{"author": map[string]any{"name": "Ada"}, "title": nil}
	if got := rec.String("author.name"); got != "Ada" {
		t.Fatalf("expected nested lookup Ada, got %q", got)
	}
	if _, ok := rec.Lookup("author.bio"); ok {
		t.Fatalf("expected missing nested key")
	}
	if _, ok := rec.Lookup("title"); ok {
		t.Fatalf("expected nil value to report absent")
	}
}

func TestFormatValueJoinsLists(t *testing.T) {
	if got := FormatValue([]any{"a", "b", json.Number("3")}); got != "a, b, 3" {
		t.Fatalf("unexpected list rendering %q", got)
	}
}
