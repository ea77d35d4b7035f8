package creators

import (
	"strings"

	"github.com/a-h/templ"

	"web3admin/frontend/shared/crud"
	"web3admin/frontend/shared/table"
	"web3admin/infrastructure/apiclient"
	"web3admin/models"
)

func Entity() crud.Entity {
	return crud.Entity{
		Slug:        "creators",
		Title:       "Creators",
		Singular:    "creator",
		Plural:      "creators",
		Description: "Manage featured creators",
		Resource:    apiclient.Creators,
		ListQuery:   map[string]string{"limit": "100"},
		Columns: []table.Column{
			{Key: "avatar", Label: "Avatar", Render: avatar},
			{Key: "name", Label: "Name"},
			{Key: "role", Label: "Role"},
			{Key: "expertise", Label: "Expertise", Render: table.ListPreview(2)},
			{Key: "featured", Label: "Featured", Render: table.YesNo},
		},
		Fields: []crud.Field{
			{Name: "name", Label: "Name", Kind: crud.KindText, Required: true},
			{Name: "role", Label: "Role", Kind: crud.KindText, Required: true},
			{Name: "bio", Label: "Bio", Kind: crud.KindTextarea},
			{Name: "avatar", Label: "Avatar URL", Kind: crud.KindURL},
			{Name: "expertise", Label: "Expertise", Kind: crud.KindTags, Placeholder: "Solidity, DeFi, Security"},
			{Name: "social.twitter", Label: "Twitter", Kind: crud.KindText},
			{Name: "social.github", Label: "GitHub", Kind: crud.KindText},
			{Name: "featured", Label: "Featured", Kind: crud.KindSwitch},
		},
		Caps: crud.Caps{Create: true, Edit: true, Delete: true, Export: true},
	}
}

// avatar shows the image, or the first letter of the name when there is none.
func avatar(value any, row models.Record) table.Cell {
	src := models.FormatValue(value)
	name := row.String("name")
	if src == "" {
		initial := "?"
		if name != "" {
			initial = strings.ToUpper(string([]rune(name)[:1]))
		}
		return table.Cell{Text: initial, HTML: `<span class="avatar avatar-fallback">` + templ.EscapeString(initial) + `</span>`}
	}
	return table.Cell{
		Text: src,
		HTML: `<img class="avatar" src="` + templ.EscapeString(src) + `" alt="` + templ.EscapeString(name) + `">`,
	}
}
