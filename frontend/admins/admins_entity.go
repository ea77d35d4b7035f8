package admins

import (
	"strings"

	"github.com/a-h/templ"

	"web3admin/frontend/login"
	"web3admin/frontend/shared/crud"
	"web3admin/frontend/shared/table"
	"web3admin/infrastructure/apiclient"
	"web3admin/infrastructure/rbac"
	"web3admin/models"
)

// Entity lists console admins and registers new ones. Only superadmins get
// the pages; the API enforces the same rule.
func Entity() crud.Entity {
	return crud.Entity{
		Slug:        "admins",
		Title:       "Admins",
		Singular:    "admin",
		Plural:      "admins",
		Description: "Manage admin accounts",
		Resource:    apiclient.Admins,
		Roles:       []string{rbac.RoleSuperadmin},
		Columns: []table.Column{
			{Key: "name", Label: "Name"},
			{Key: "email", Label: "Email"},
			{Key: "role", Label: "Role", Render: roleBadge},
			{Key: "createdAt", Label: "Created", Render: table.Date},
		},
		Fields: []crud.Field{
			{Name: "name", Label: "Name", Kind: crud.KindText, Required: true},
			{Name: "email", Label: "Email", Kind: crud.KindEmail, Required: true},
			{Name: "password", Label: "Password", Kind: crud.KindPassword, Required: true, CreateOnly: true},
			{Name: "role", Label: "Role", Kind: crud.KindSelect, Default: rbac.RoleAdmin, Options: []crud.Option{
				{Value: rbac.RoleAdmin, Label: "Admin"},
				{Value: rbac.RoleEditor, Label: "Editor"},
			}},
		},
		Validate: validate,
		Caps:     crud.Caps{Create: true, Export: true},
	}
}

func validate(input map[string]any, creating bool) string {
	if !creating {
		return ""
	}
	email, _ := input["email"].(string)
	if !strings.Contains(email, "@") {
		return "Email must be a valid address"
	}
	password, _ := input["password"].(string)
	if err := login.ValidatePasswordPolicy(password); err != nil {
		return "Password rejected: " + err.Error()
	}
	return ""
}

var roleLabels = map[string]struct{ label, variant string }{
	rbac.RoleSuperadmin: {"Super Admin", "primary"},
	rbac.RoleAdmin:      {"Admin", "secondary"},
	rbac.RoleEditor:     {"Editor", "outline"},
}

// roleBadge shows unknown roles as editors.
func roleBadge(value any, _ models.Record) table.Cell {
	cfg, ok := roleLabels[models.FormatValue(value)]
	if !ok {
		cfg = roleLabels[rbac.RoleEditor]
	}
	return table.Cell{
		Text: cfg.label,
		HTML: `<span class="badge badge-` + cfg.variant + `">` + templ.EscapeString(cfg.label) + `</span>`,
	}
}
