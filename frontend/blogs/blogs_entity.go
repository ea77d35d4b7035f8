package blogs

import (
	"web3admin/frontend/shared/crud"
	"web3admin/frontend/shared/table"
	"web3admin/infrastructure/apiclient"
	"web3admin/models"
)

func Entity() crud.Entity {
	return crud.Entity{
		Slug:        "blogs",
		Title:       "Blogs",
		Singular:    "blog",
		Plural:      "blogs",
		Description: "Manage blog posts",
		Resource:    apiclient.Blogs,
		ListQuery:   map[string]string{"limit": "100"},
		Columns: []table.Column{
			{Key: "title", Label: "Title"},
			{Key: "category", Label: "Category", Render: table.Badge(nil)},
			{Key: "readTime", Label: "Read Time"},
			{Key: "featured", Label: "Featured", Render: table.YesNo},
			{Key: "stats.views", Label: "Views", Render: countOrZero},
		},
		Fields: []crud.Field{
			{Name: "title", Label: "Title", Kind: crud.KindText, Required: true},
			{Name: "excerpt", Label: "Excerpt", Kind: crud.KindTextarea},
			{Name: "content", Label: "Content", Kind: crud.KindTextarea},
			{Name: "author.name", Label: "Author", Kind: crud.KindText},
			{Name: "category", Label: "Category", Kind: crud.KindSelect, Default: "Tutorial", Options: []crud.Option{
				{Value: "News", Label: "News"},
				{Value: "Tutorial", Label: "Tutorial"},
				{Value: "Guide", Label: "Guide"},
				{Value: "Industry News", Label: "Industry News"},
			}},
			{Name: "readTime", Label: "Read Time", Kind: crud.KindText, Placeholder: "5 min read"},
			{Name: "tags", Label: "Tags", Kind: crud.KindTags},
			{Name: "featured", Label: "Featured", Kind: crud.KindSwitch},
		},
		Caps: crud.Caps{Create: true, Edit: true, Delete: true, Export: true},
	}
}

// countOrZero renders a counter that the API may omit.
func countOrZero(value any, _ models.Record) table.Cell {
	if s := models.FormatValue(value); s != "" {
		return table.Cell{Text: s}
	}
	return table.Cell{Text: "0"}
}
