package resources

import (
	"web3admin/frontend/shared/crud"
	"web3admin/frontend/shared/table"
	"web3admin/infrastructure/apiclient"
)

func Entity() crud.Entity {
	return crud.Entity{
		Slug:        "resources",
		Title:       "Resources",
		Singular:    "resource",
		Plural:      "resources",
		Description: "Manage learning resources",
		Resource:    apiclient.Resources,
		ListQuery:   map[string]string{"limit": "100"},
		Columns: []table.Column{
			{Key: "title", Label: "Title"},
			{Key: "category", Label: "Category"},
			{Key: "type", Label: "Type", Render: table.Badge(nil)},
			{Key: "author", Label: "Author"},
			{Key: "url", Label: "Link", Render: table.Link},
			{Key: "downloadCount", Label: "Downloads"},
		},
		Fields: []crud.Field{
			{Name: "title", Label: "Title", Kind: crud.KindText, Required: true},
			{Name: "description", Label: "Description", Kind: crud.KindTextarea},
			{Name: "category", Label: "Category", Kind: crud.KindText, Default: "Development"},
			{Name: "type", Label: "Type", Kind: crud.KindSelect, Default: "guide", Options: []crud.Option{
				{Value: "guide", Label: "Guide"},
				{Value: "tutorial", Label: "Tutorial"},
				{Value: "documentation", Label: "Documentation"},
				{Value: "tool", Label: "Tool"},
				{Value: "video", Label: "Video"},
				{Value: "course", Label: "Course"},
			}},
			{Name: "url", Label: "URL", Kind: crud.KindURL},
			{Name: "author", Label: "Author", Kind: crud.KindText},
			{Name: "tags", Label: "Tags", Kind: crud.KindTags},
		},
		Caps: crud.Caps{Create: true, Edit: true, Delete: true, Export: true},
	}
}
