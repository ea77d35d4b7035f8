package showcase

import (
	"web3admin/frontend/shared/crud"
	"web3admin/frontend/shared/table"
	"web3admin/infrastructure/apiclient"
	"web3admin/models"
)

func Entity() crud.Entity {
	return crud.Entity{
		Slug:        "showcase",
		Title:       "Showcase",
		Singular:    "showcase project",
		Plural:      "showcase projects",
		Description: "Manage community showcase projects",
		Resource:    apiclient.Showcase,
		ListQuery:   map[string]string{"limit": "100"},
		Columns: []table.Column{
			{Key: "title", Label: "Title"},
			{Key: "category", Label: "Category", Render: table.Badge(nil)},
			{Key: "creator", Label: "Creator"},
			{Key: "featured", Label: "Featured", Render: table.YesNo},
			{Key: "trending", Label: "Trending", Render: table.YesNo},
			{Key: "stats.stars", Label: "Stars", Render: stars},
		},
		Fields: []crud.Field{
			{Name: "title", Label: "Title", Kind: crud.KindText, Required: true},
			{Name: "description", Label: "Description", Kind: crud.KindTextarea},
			{Name: "category", Label: "Category", Kind: crud.KindSelect, Default: "DeFi", Options: []crud.Option{
				{Value: "DeFi", Label: "DeFi"},
				{Value: "NFT", Label: "NFT"},
				{Value: "DAO", Label: "DAO"},
				{Value: "GameFi", Label: "GameFi"},
				{Value: "Infrastructure", Label: "Infrastructure"},
				{Value: "Social", Label: "Social"},
				{Value: "Tools", Label: "Tools"},
			}},
			{Name: "creator", Label: "Creator", Kind: crud.KindText},
			{Name: "tags", Label: "Tags", Kind: crud.KindTags},
			{Name: "featured", Label: "Featured", Kind: crud.KindSwitch},
			{Name: "trending", Label: "Trending", Kind: crud.KindSwitch},
		},
		Caps: crud.Caps{Create: true, Edit: true, Delete: true, Export: true},
	}
}

func stars(value any, _ models.Record) table.Cell {
	if s := models.FormatValue(value); s != "" {
		return table.Cell{Text: s}
	}
	return table.Cell{Text: "0"}
}
