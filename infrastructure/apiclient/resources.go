package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"web3admin/models"
)

// Resource describes where one entity lives on the content API.
type Resource struct {
	Name string
	// PublicPath is the unauthenticated read path; empty for admin-only data.
	PublicPath string
	// AdminListPath is the authenticated list path.
	AdminListPath string
	// ItemPath is the base for create and /:id update/delete.
	ItemPath string
	// CreatePath overrides ItemPath for creation.
	CreatePath string
	// CollectionField names the list inside object-shaped list responses.
	CollectionField string
	// UpdateMethod defaults to PUT.
	UpdateMethod string
}

var (
	Events = Resource{
		Name:            "events",
		PublicPath:      "/api/events",
		AdminListPath:   "/api/events",
		ItemPath:        "/api/events",
		CollectionField: "events",
	}
	Creators = Resource{
		Name:            "creators",
		PublicPath:      "/api/creators",
		AdminListPath:   "/api/creators/admin/all",
		ItemPath:        "/api/creators",
		CollectionField: "creators",
	}
	Projects = Resource{
		Name:            "projects",
		PublicPath:      "/api/builders/projects",
		AdminListPath:   "/api/builders/projects/admin/all",
		ItemPath:        "/api/builders/projects",
		CollectionField: "projects",
	}
	Resources = Resource{
		Name:            "resources",
		PublicPath:      "/api/resources",
		AdminListPath:   "/api/resources/admin/all",
		ItemPath:        "/api/resources",
		CollectionField: "resources",
	}
	Blogs = Resource{
		Name:            "blogs",
		PublicPath:      "/api/blogs",
		AdminListPath:   "/api/blogs/admin/all",
		ItemPath:        "/api/blogs",
		CollectionField: "posts",
	}
	Showcase = Resource{
		Name:            "showcase",
		PublicPath:      "/api/showcase",
		AdminListPath:   "/api/showcase/admin/all",
		ItemPath:        "/api/showcase",
		CollectionField: "projects",
	}
	Subscribers = Resource{
		Name:            "subscribers",
		AdminListPath:   "/api/newsletter/subscribers",
		ItemPath:        "/api/newsletter/subscribers",
		CollectionField: "subscribers",
	}
	Contacts = Resource{
		Name:            "contacts",
		AdminListPath:   "/api/contact",
		ItemPath:        "/api/contact",
		CollectionField: "contacts",
		UpdateMethod:    http.MethodPatch,
	}
	Admins = Resource{
		Name:            "admins",
		AdminListPath:   "/api/admin/admins",
		ItemPath:        "/api/admin/admins",
		CreatePath:      "/api/admin/register",
		CollectionField: "admins",
	}
)

// ErrNoPublicPath is returned for public reads of admin-only resources.
var ErrNoPublicPath = errors.New("resource has no public read path")

func (r Resource) itemURL(id string) string {
	return r.ItemPath + "/" + url.PathEscape(strings.TrimSpace(id))
}

func withQuery(path string, query url.Values) string {
	if len(query) == 0 {
		return path
	}
	return path + "?" + query.Encode()
}

// ListPublic reads the unauthenticated listing.
func (c *Client) ListPublic(ctx context.Context, res Resource, query url.Values) (Collection, error) {
	if res.PublicPath == "" {
		return Collection{}, ErrNoPublicPath
	}
	data, err := c.Public(ctx, http.MethodGet, withQuery(res.PublicPath, query), nil)
	if err != nil {
		return Collection{}, err
	}
	return NormalizeCollection(data, res.CollectionField)
}

// ListAdmin reads the authenticated listing, which includes unpublished items.
func (c *Client) ListAdmin(ctx context.Context, res Resource, query url.Values) (Collection, error) {
	data, err := c.Admin(ctx, http.MethodGet, withQuery(res.AdminListPath, query), nil)
	if err != nil {
		return Collection{}, err
	}
	return NormalizeCollection(data, res.CollectionField)
}

// GetAdmin reads a single record on the authenticated item path.
func (c *Client) GetAdmin(ctx context.Context, res Resource, id string) (models.Record, error) {
	data, err := c.Admin(ctx, http.MethodGet, res.itemURL(id), nil)
	if err != nil {
		return nil, err
	}
	return DecodeRecord(data)
}

func (c *Client) Create(ctx context.Context, res Resource, input any) (json.RawMessage, error) {
	path := res.CreatePath
	if path == "" {
		path = res.ItemPath
	}
	return c.Admin(ctx, http.MethodPost, path, input)
}

func (c *Client) Update(ctx context.Context, res Resource, id string, input any) (json.RawMessage, error) {
	method := res.UpdateMethod
	if method == "" {
		method = http.MethodPut
	}
	return c.Admin(ctx, method, res.itemURL(id), input)
}

func (c *Client) Delete(ctx context.Context, res Resource, id string) error {
	_, err := c.Admin(ctx, http.MethodDelete, res.itemURL(id), nil)
	return err
}
