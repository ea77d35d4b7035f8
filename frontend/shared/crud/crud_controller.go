package crud

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/url"

	"web3admin/infrastructure/apiclient"
	"web3admin/infrastructure/audit"
	"web3admin/infrastructure/flash"
	"web3admin/models"
)

// API is the part of the content API client the entity pages use.
type API interface {
	ListAdmin(ctx context.Context, res apiclient.Resource, query url.Values) (apiclient.Collection, error)
	GetAdmin(ctx context.Context, res apiclient.Resource, id string) (models.Record, error)
	Create(ctx context.Context, res apiclient.Resource, input any) (json.RawMessage, error)
	Update(ctx context.Context, res apiclient.Resource, id string, input any) (json.RawMessage, error)
	Delete(ctx context.Context, res apiclient.Resource, id string) error
}

var ErrNotFound = errors.New("record not found")

// Controller runs the list, form and delete flows for one Entity.
type Controller struct {
	Entity Entity
	api    API
	audit  *audit.Service
	flash  *flash.Store
}

func NewController(e Entity, api API, auditSvc *audit.Service, flashes *flash.Store) *Controller {
	return &Controller{Entity: e, api: api, audit: auditSvc, flash: flashes}
}

// List fetches the admin listing.
func (c *Controller) List(ctx context.Context) ([]models.Record, error) {
	query := url.Values{}
	for k, v := range c.Entity.ListQuery {
		query.Set(k, v)
	}
	col, err := c.api.ListAdmin(ctx, c.Entity.Resource, query)
	if err != nil {
		return nil, err
	}
	return col.Items, nil
}

// Find returns the record with id.
func (c *Controller) Find(ctx context.Context, id string) (models.Record, error) {
	if c.Entity.ItemReadable {
		rec, err := c.api.GetAdmin(ctx, c.Entity.Resource, id)
		if err != nil {
			return nil, err
		}
		if len(rec) == 0 {
			return nil, ErrNotFound
		}
		return rec, nil
	}
	rows, err := c.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, rec := range rows {
		if rec.ID() == id {
			return rec, nil
		}
	}
	return nil, ErrNotFound
}

// Save creates the record when id is empty and updates it otherwise.
func (c *Controller) Save(ctx context.Context, admin models.Admin, id string, input map[string]any) error {
	creating := id == ""
	if c.Entity.Transform != nil {
		input = c.Entity.Transform(input, creating)
	}

	var err error
	action := "update"
	if creating {
		action = "create"
		_, err = c.api.Create(ctx, c.Entity.Resource, input)
	} else {
		_, err = c.api.Update(ctx, c.Entity.Resource, id, input)
	}
	c.record(ctx, audit.Entry{
		Admin:      admin,
		Action:     c.Entity.Slug + "." + action,
		EntityType: c.Entity.Slug,
		EntityID:   id,
		Err:        err,
		Payload:    redact(c.Entity.Fields, input),
	})
	return err
}

func (c *Controller) Remove(ctx context.Context, admin models.Admin, id string) error {
	err := c.api.Delete(ctx, c.Entity.Resource, id)
	c.record(ctx, audit.Entry{
		Admin:      admin,
		Action:     c.Entity.Slug + ".delete",
		EntityType: c.Entity.Slug,
		EntityID:   id,
		Err:        err,
	})
	return err
}

// SetStatus moves a record to status, which must be one of Entity.Statuses.
func (c *Controller) SetStatus(ctx context.Context, admin models.Admin, id, status string) error {
	if !hasOption(c.Entity.Statuses, status) {
		return errors.New("unknown status " + status)
	}
	input := map[string]any{"status": status}
	_, err := c.api.Update(ctx, c.Entity.Resource, id, input)
	c.record(ctx, audit.Entry{
		Admin:      admin,
		Action:     c.Entity.Slug + ".status",
		EntityType: c.Entity.Slug,
		EntityID:   id,
		Err:        err,
		Payload:    input,
	})
	return err
}

func (c *Controller) record(ctx context.Context, e audit.Entry) {
	if err := c.audit.Record(ctx, e); err != nil {
		slog.Error("write audit entry failed", slog.String("action", e.Action), slog.String("entity_id", e.EntityID), slog.Any("err", err))
	}
}

// redact drops password fields from an audit payload.
func redact(fields []Field, input map[string]any) map[string]any {
	out := make(map[string]any, len(input))
	for k, v := range input {
		out[k] = v
	}
	for _, f := range fields {
		if f.Kind == KindPassword {
			delete(out, f.Name)
		}
	}
	return out
}
