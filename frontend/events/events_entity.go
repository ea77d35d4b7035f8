package events

import (
	"web3admin/frontend/shared/crud"
	"web3admin/frontend/shared/table"
	"web3admin/infrastructure/apiclient"
)

var statusOptions = []crud.Option{
	{Value: "upcoming", Label: "Upcoming"},
	{Value: "live", Label: "Live"},
	{Value: "past", Label: "Past"},
}

func Entity() crud.Entity {
	return crud.Entity{
		Slug:        "events",
		Title:       "Events",
		Singular:    "event",
		Plural:      "events",
		Description: "Manage platform events",
		Resource:    apiclient.Events,
		ListQuery:   map[string]string{"limit": "100"},
		Columns: []table.Column{
			{Key: "title", Label: "Title"},
			{Key: "date", Label: "Date"},
			{Key: "location", Label: "Location"},
			{Key: "type", Label: "Type"},
			{Key: "status", Label: "Status", Render: table.Badge(map[string]string{"upcoming": "primary", "live": "danger", "past": "muted"})},
			{Key: "attendees", Label: "Attendees"},
		},
		Fields: []crud.Field{
			{Name: "title", Label: "Title", Kind: crud.KindText, Required: true},
			{Name: "date", Label: "Date", Kind: crud.KindText, Required: true, Placeholder: "March 15-17, 2024"},
			{Name: "location", Label: "Location", Kind: crud.KindText, Required: true},
			{Name: "type", Label: "Type", Kind: crud.KindText, Required: true, Placeholder: "Hackathon"},
			{Name: "status", Label: "Status", Kind: crud.KindSelect, Default: "upcoming", Options: statusOptions},
			{Name: "attendees", Label: "Attendees", Kind: crud.KindNumber},
			{Name: "registrationUrl", Label: "Registration URL", Kind: crud.KindURL},
			{Name: "description", Label: "Description", Kind: crud.KindTextarea},
		},
		Caps: crud.Caps{Create: true, Edit: true, Delete: true, Export: true},
	}
}
