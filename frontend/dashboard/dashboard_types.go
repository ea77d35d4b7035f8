package dashboard

import (
	"context"
	"net/url"
	"time"

	"web3admin/infrastructure/apiclient"
	"web3admin/models"
)

const (
	StatusConnected = "connected"
	StatusError     = "error"

	recentLimit = 5
	auditLimit  = 10
)

// API is the read side of the content API the summary uses.
type API interface {
	ListPublic(ctx context.Context, res apiclient.Resource, query url.Values) (apiclient.Collection, error)
	ListAdmin(ctx context.Context, res apiclient.Resource, query url.Values) (apiclient.Collection, error)
	Health(ctx context.Context) (string, error)
}

// AuditReader returns the newest local audit entries.
type AuditReader interface {
	Recent(ctx context.Context, limit int) ([]models.AuditLog, error)
}

type Count struct {
	Label string
	Href  string
	Value int
}

type RecentItem struct {
	ID    string
	Title string
	Kind  string
	Date  time.Time
}

type Summary struct {
	Counts    []Count
	APIStatus string
	Recent    []RecentItem
	Audit     []models.AuditLog
}

type source struct {
	label     string
	slug      string
	res       apiclient.Resource
	admin     bool
	superOnly bool
	kind      string
	take      int
	titleKeys []string
	dateKeys  []string
}

var sources = []source{
	{label: "Events", slug: "events", res: apiclient.Events, kind: "Event", take: 2, titleKeys: []string{"title"}, dateKeys: []string{"date", "createdAt"}},
	{label: "Creators", slug: "creators", res: apiclient.Creators, kind: "Creator", take: 1, titleKeys: []string{"name", "title"}, dateKeys: []string{"createdAt"}},
	{label: "Projects", slug: "projects", res: apiclient.Projects, kind: "Project", take: 1, titleKeys: []string{"title"}, dateKeys: []string{"createdAt"}},
	{label: "Resources", slug: "resources", res: apiclient.Resources, kind: "Resource", take: 1, titleKeys: []string{"title"}, dateKeys: []string{"createdAt"}},
	{label: "Blogs", slug: "blogs", res: apiclient.Blogs, kind: "Blog", take: 2, titleKeys: []string{"title"}, dateKeys: []string{"publishedDate", "createdAt"}},
	{label: "Showcase", slug: "showcase", res: apiclient.Showcase, kind: "Showcase", take: 1, titleKeys: []string{"title"}, dateKeys: []string{"createdAt"}},
	{label: "Subscribers", slug: "newsletter", res: apiclient.Subscribers, admin: true, kind: "Subscriber", take: 1, titleKeys: []string{"email", "name"}, dateKeys: []string{"subscribedAt", "createdAt"}},
	{label: "Contacts", slug: "contacts", res: apiclient.Contacts, admin: true, kind: "Contact", take: 1, titleKeys: []string{"fullName", "name", "email"}, dateKeys: []string{"submittedAt", "createdAt"}},
	{label: "Admins", slug: "admins", res: apiclient.Admins, admin: true, superOnly: true},
}
