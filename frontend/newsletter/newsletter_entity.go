package newsletter

import (
	"web3admin/frontend/shared/crud"
	"web3admin/frontend/shared/table"
	"web3admin/infrastructure/apiclient"
)

// Entity lists subscribers. They sign up on the public site, so the console
// only deletes them.
func Entity() crud.Entity {
	return crud.Entity{
		Slug:        "newsletter",
		Title:       "Newsletter",
		Singular:    "subscriber",
		Plural:      "subscribers",
		Description: "Manage newsletter subscribers",
		Resource:    apiclient.Subscribers,
		ListQuery:   map[string]string{"limit": "100"},
		Columns: []table.Column{
			{Key: "email", Label: "Email"},
			{Key: "name", Label: "Name"},
			{Key: "interests", Label: "Interests", Render: table.ListPreview(2)},
			{Key: "subscribedAt", Label: "Subscribed", Render: table.Date},
		},
		Caps: crud.Caps{Delete: true, Export: true},
	}
}
