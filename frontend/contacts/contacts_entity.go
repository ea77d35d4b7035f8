package contacts

import (
	"web3admin/frontend/shared/crud"
	"web3admin/frontend/shared/table"
	"web3admin/infrastructure/apiclient"
	"web3admin/models"
)

var statuses = []crud.Option{
	{Value: "new", Label: "New"},
	{Value: "read", Label: "Read"},
	{Value: "replied", Label: "Replied"},
	{Value: "archived", Label: "Archived"},
}

func Entity() crud.Entity {
	return crud.Entity{
		Slug:         "contacts",
		Title:        "Contact Messages",
		Singular:     "contact",
		Plural:       "contacts",
		Description:  "View and manage contact form submissions",
		Resource:     apiclient.Contacts,
		ListQuery:    map[string]string{"limit": "100"},
		ItemReadable: true,
		Statuses:     statuses,
		Columns: []table.Column{
			{Key: "fullName", Label: "Name"},
			{Key: "email", Label: "Email"},
			{Key: "company", Label: "Company"},
			{Key: "subject", Label: "Subject", Render: table.Truncate(40)},
			{Key: "subscribeNewsletter", Label: "Newsletter", Render: table.YesNo},
			{Key: "submittedAt", Label: "Date", Render: table.Date},
		},
		Details: []table.Column{
			{Key: "fullName", Label: "Name"},
			{Key: "email", Label: "Email"},
			{Key: "company", Label: "Company"},
			{Key: "subscribeNewsletter", Label: "Newsletter Subscription", Render: subscribed},
			{Key: "submittedAt", Label: "Date", Render: table.Date},
			{Key: "status", Label: "Status", Render: table.Badge(map[string]string{"new": "primary", "replied": "success", "archived": "muted"})},
			{Key: "subject", Label: "Subject"},
			{Key: "message", Label: "Message"},
		},
		Caps: crud.Caps{View: true, Delete: true, Export: true},
	}
}

func subscribed(value any, _ models.Record) table.Cell {
	if b, ok := value.(bool); ok && b {
		return table.Cell{Text: "Subscribed", HTML: `<span class="badge badge-success">Subscribed</span>`}
	}
	return table.Cell{Text: "Not Subscribed", HTML: `<span class="badge badge-muted">Not Subscribed</span>`}
}
