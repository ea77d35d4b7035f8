package nav

import (
	"strings"

	sessioncontext "web3admin/frontend/shared/context"
)

type Link struct {
	Label  string
	Href   string
	Code   string
	Active bool
}

// Sections is the sidebar in display order. Code is the permission needed to
// see the link.
var Sections = []Link{
	{Label: "Overview", Href: "/dashboard", Code: "DASHBOARD_VIEW"},
	{Label: "Events", Href: "/dashboard/events", Code: "EVENTS_LIST_VIEW"},
	{Label: "Creators", Href: "/dashboard/creators", Code: "CREATORS_LIST_VIEW"},
	{Label: "Projects", Href: "/dashboard/projects", Code: "PROJECTS_LIST_VIEW"},
	{Label: "Resources", Href: "/dashboard/resources", Code: "RESOURCES_LIST_VIEW"},
	{Label: "Blogs", Href: "/dashboard/blogs", Code: "BLOGS_LIST_VIEW"},
	{Label: "Showcase", Href: "/dashboard/showcase", Code: "SHOWCASE_LIST_VIEW"},
	{Label: "Newsletter", Href: "/dashboard/newsletter", Code: "NEWSLETTER_LIST_VIEW"},
	{Label: "Contacts", Href: "/dashboard/contacts", Code: "CONTACTS_LIST_VIEW"},
	{Label: "Admins", Href: "/dashboard/admins", Code: "ADMINS_LIST_VIEW"},
	{Label: "Exports", Href: "/dashboard/exports", Code: "EXPORTS_VIEW"},
	{Label: "Help", Href: "/dashboard/help", Code: "HELP_VIEW"},
	{Label: "Settings", Href: "/dashboard/settings", Code: "SETTINGS_VIEW"},
}

// TopNavData is shared with page renderers.
type TopNavData struct {
	Email string
	Name  string
	Role  string
	Links []Link
}

func BuildTopNavData(v sessioncontext.Viewer, currentPath string) TopNavData {
	data := TopNavData{}
	if v.Session.Admin != nil {
		data.Email = v.Session.Admin.Email
		data.Name = v.Session.Admin.Name
		data.Role = v.Session.Admin.Role
	}
	for _, l := range Sections {
		if !v.Can(l.Code) {
			continue
		}
		l.Active = isActive(l.Href, currentPath)
		data.Links = append(data.Links, l)
	}
	return data
}

func isActive(href, path string) bool {
	if href == "/dashboard" {
		return path == href
	}
	return path == href || strings.HasPrefix(path, href+"/")
}
