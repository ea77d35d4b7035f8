package projects

import (
	"web3admin/frontend/shared/crud"
	"web3admin/frontend/shared/table"
	"web3admin/infrastructure/apiclient"
)

func Entity() crud.Entity {
	return crud.Entity{
		Slug:        "projects",
		Title:       "Projects",
		Singular:    "project",
		Plural:      "projects",
		Description: "Manage builder projects",
		Resource:    apiclient.Projects,
		ListQuery:   map[string]string{"limit": "100"},
		Columns: []table.Column{
			{Key: "title", Label: "Title"},
			{Key: "category", Label: "Category", Render: table.Badge(nil)},
			{Key: "difficulty", Label: "Difficulty", Render: table.Badge(map[string]string{"beginner": "muted", "intermediate": "primary", "advanced": "danger"})},
			{Key: "estimatedTime", Label: "Duration"},
			{Key: "technologies", Label: "Technologies", Render: table.ListPreview(2)},
		},
		Fields: []crud.Field{
			{Name: "title", Label: "Title", Kind: crud.KindText, Required: true},
			{Name: "description", Label: "Description", Kind: crud.KindTextarea},
			{Name: "category", Label: "Category", Kind: crud.KindSelect, Default: "defi", Options: []crud.Option{
				{Value: "defi", Label: "DeFi"},
				{Value: "nft", Label: "NFT"},
				{Value: "infrastructure", Label: "Infrastructure"},
				{Value: "gaming", Label: "Gaming"},
			}},
			{Name: "difficulty", Label: "Difficulty", Kind: crud.KindSelect, Default: "beginner", Options: []crud.Option{
				{Value: "beginner", Label: "Beginner"},
				{Value: "intermediate", Label: "Intermediate"},
				{Value: "advanced", Label: "Advanced"},
			}},
			{Name: "estimatedTime", Label: "Estimated Time", Kind: crud.KindText, Placeholder: "2 hours"},
			{Name: "technologies", Label: "Technologies", Kind: crud.KindTags, Placeholder: "Solidity, Hardhat"},
			{Name: "published", Label: "Published", Kind: crud.KindSwitch, Default: true},
		},
		Caps: crud.Caps{Create: true, Edit: true, Delete: true, Export: true},
	}
}
