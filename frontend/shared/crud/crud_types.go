// Package crud drives the entity management pages: one controller
// parameterized by an Entity descriptor lists, creates, edits, deletes and
// exports records held by the content API.
package crud

import (
	"strings"

	"web3admin/frontend/shared/table"
	"web3admin/infrastructure/apiclient"
	"web3admin/infrastructure/rbac"
)

type FieldKind string

const (
	KindText     FieldKind = "text"
	KindTextarea FieldKind = "textarea"
	KindSelect   FieldKind = "select"
	KindSwitch   FieldKind = "switch"
	KindNumber   FieldKind = "number"
	KindTags     FieldKind = "tags"
	KindPassword FieldKind = "password"
	KindEmail    FieldKind = "email"
	KindURL      FieldKind = "url"
)

type Option struct {
	Value string
	Label string
}

// Field is one form input. Name may be dotted ("author.name") to address a
// nested object in the submitted input.
type Field struct {
	Name        string
	Label       string
	Kind        FieldKind
	Required    bool
	Placeholder string
	Options     []Option
	Default     any
	// CreateOnly fields are left out of the edit form and update input.
	CreateOnly bool
}

// Caps lists which row and page actions an entity offers.
type Caps struct {
	Create bool
	Edit   bool
	Delete bool
	View   bool
	Export bool
}

// Entity configures the controller for one resource.
type Entity struct {
	Slug  string
	Title string
	// Singular and Plural are the lower-case nouns used in notifications.
	Singular string
	Plural   string
	// Description is the page subtitle.
	Description string
	Resource    apiclient.Resource
	Columns     []table.Column
	// Details are the rows of the view page; Columns when empty.
	Details []table.Column
	Fields      []Field
	Caps        Caps
	// Roles may open the pages. Empty means every role.
	Roles []string
	// Statuses enables the status update action when non-empty.
	Statuses []Option
	// ItemReadable entities are fetched one by one for the view page instead
	// of being picked out of the list.
	ItemReadable bool
	// Transform adjusts the decoded input before it is sent.
	Transform func(input map[string]any, creating bool) map[string]any
	// Validate returns a message to show instead of sending the input.
	Validate func(input map[string]any, creating bool) string
	// ListQuery is sent with every list request.
	ListQuery map[string]string
}

// Code names the permission for action on this entity, e.g. EVENTS_CREATE.
func (e Entity) Code(action string) string {
	return strings.ToUpper(e.Slug) + "_" + action
}

// Path is the list page URL.
func (e Entity) Path() string {
	return "/dashboard/" + e.Slug
}

// ItemPath is the URL of one record, with an optional suffix such as "edit".
func (e Entity) ItemPath(id, suffix string) string {
	p := e.Path() + "/" + id
	if suffix != "" {
		p += "/" + suffix
	}
	return p
}

// AllowedRoles returns Roles, or every role when none are set.
func (e Entity) AllowedRoles() []string {
	if len(e.Roles) == 0 {
		return rbac.AllRoles
	}
	return e.Roles
}

// Permission codes shared by every entity.
const (
	ActionList   = "LIST_VIEW"
	ActionCreate = "CREATE"
	ActionEdit   = "EDIT"
	ActionDelete = "DELETE"
	ActionView   = "VIEW"
	ActionStatus = "STATUS_EDIT"
	ActionExport = "EXPORT"
)

func (e Entity) editFields(creating bool) []Field {
	if creating {
		return e.Fields
	}
	out := make([]Field, 0, len(e.Fields))
	for _, f := range e.Fields {
		if !f.CreateOnly {
			out = append(out, f)
		}
	}
	return out
}
