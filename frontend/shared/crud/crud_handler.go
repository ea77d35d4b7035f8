package crud

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	sessioncontext "web3admin/frontend/shared/context"
	"web3admin/frontend/shared/html"
	"web3admin/frontend/shared/table"
	"web3admin/infrastructure/apiclient"
	"web3admin/infrastructure/flash"
	"web3admin/models"
)

// SessionExpiredMessage is shown on the login screen after a 401.
const SessionExpiredMessage = "Your session has expired. Please sign in again."

func (c *Controller) ListPageQueryHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, notices, ok := c.loadRows(w, r)
		if !ok {
			return
		}
		v := viewer(r)
		e := c.Entity
		data := ListPageData{
			Entity:    e,
			Table:     c.tableView(v, rows),
			CanCreate: e.Caps.Create && v.Can(e.Code(ActionCreate)),
			CanExport: e.Caps.Export && v.Can(e.Code(ActionExport)),
		}
		html.WritePage(w, r, http.StatusOK, e.Title, notices, ListPage(data))
	}
}

// TableFragmentQueryHandler re-renders just the table for in-page refresh.
func (c *Controller) TableFragmentQueryHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, notices, ok := c.loadRows(w, r)
		if !ok {
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(html.Notices(notices) + c.tableView(viewer(r), rows).HTML()))
	}
}

// loadRows fetches the list and pops pending notices. A fetch failure becomes
// an error notice over an empty list. ok is false when the response has
// already been written.
func (c *Controller) loadRows(w http.ResponseWriter, r *http.Request) ([]models.Record, []flash.Notice, bool) {
	rows, err := c.List(r.Context())
	if err != nil && c.expired(w, r, err) {
		return nil, nil, false
	}
	notices := c.flash.Pop(w, r)
	if err != nil {
		slog.Error("list records failed", slog.String("entity", c.Entity.Slug), slog.Any("err", err))
		notices = append(notices, flash.Notice{
			Kind:    flash.KindError,
			Message: apiclient.UserMessage(err, "Failed to fetch "+c.Entity.Plural),
		})
		rows = []models.Record{}
	}
	return rows, notices, true
}

func (c *Controller) tableView(v sessioncontext.Viewer, rows []models.Record) table.View {
	e := c.Entity
	view := table.View{Columns: e.Columns, Rows: rows}
	if e.Caps.View && v.Can(e.Code(ActionView)) {
		view.Actions.View = func(rec models.Record) string { return e.ItemPath(rec.ID(), "") }
	}
	if e.Caps.Edit && v.Can(e.Code(ActionEdit)) {
		view.Actions.Edit = func(rec models.Record) string { return e.ItemPath(rec.ID(), "edit") }
	}
	if e.Caps.Delete && v.Can(e.Code(ActionDelete)) {
		view.Actions.Delete = func(rec models.Record) string { return e.ItemPath(rec.ID(), "delete") }
	}
	return view
}

func (c *Controller) NewFormQueryHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fields := c.Entity.editFields(true)
		c.writeForm(w, r, http.StatusOK, FormPageData{
			Entity:   c.Entity,
			Fields:   fields,
			Values:   FormValues(fields, nil),
			Action:   c.Entity.Path(),
			Creating: true,
		}, c.flash.Pop(w, r))
	}
}

func (c *Controller) EditFormQueryHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		rec, ok := c.find(w, r, id)
		if !ok {
			return
		}
		fields := c.Entity.editFields(false)
		c.writeForm(w, r, http.StatusOK, FormPageData{
			Entity: c.Entity,
			Fields: fields,
			Values: FormValues(fields, rec),
			Action: c.Entity.ItemPath(id, ""),
		}, c.flash.Pop(w, r))
	}
}

// SaveCommandHandler creates a record, or updates it when the route carries
// an id.
func (c *Controller) SaveCommandHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		creating := id == ""
		e := c.Entity
		fields := e.editFields(creating)
		data := FormPageData{Entity: e, Fields: fields, Action: e.Path(), Creating: creating}
		if !creating {
			data.Action = e.ItemPath(id, "")
		}

		if err := r.ParseForm(); err != nil {
			data.Problems = []string{"Invalid form data"}
			c.writeForm(w, r, http.StatusBadRequest, data, nil)
			return
		}
		data.Values = SubmittedValues(fields, r.PostForm)

		var current models.Record
		if !creating && UnlistedSelect(fields, r.PostForm) {
			rec, err := c.Find(r.Context(), id)
			if err != nil && c.expired(w, r, err) {
				return
			}
			current = rec
		}
		input, problems := DecodeForm(fields, r.PostForm, current)
		if len(problems) == 0 && e.Validate != nil {
			if msg := e.Validate(input, creating); msg != "" {
				problems = append(problems, msg)
			}
		}
		if len(problems) > 0 {
			data.Problems = problems
			c.writeForm(w, r, http.StatusUnprocessableEntity, data, nil)
			return
		}

		err := c.Save(r.Context(), viewer(r).Admin(), id, input)
		if err != nil {
			if c.expired(w, r, err) {
				return
			}
			slog.Error("save record failed", slog.String("entity", e.Slug), slog.String("id", id), slog.Any("err", err))
			notice := flash.Notice{Kind: flash.KindError, Message: apiclient.UserMessage(err, "Failed to save "+e.Singular)}
			c.writeForm(w, r, http.StatusUnprocessableEntity, data, []flash.Notice{notice})
			return
		}

		if creating {
			c.flash.Success(w, r, titleCase(e.Singular)+" created")
		} else {
			c.flash.Success(w, r, titleCase(e.Singular)+" updated")
		}
		http.Redirect(w, r, e.Path(), http.StatusSeeOther)
	}
}

func (c *Controller) DeleteConfirmQueryHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		rec, ok := c.find(w, r, id)
		if !ok {
			return
		}
		data := DeletePageData{Entity: c.Entity, ID: id, Label: c.label(rec)}
		html.WritePage(w, r, http.StatusOK, "Delete "+titleCase(c.Entity.Singular), c.flash.Pop(w, r), DeletePage(data))
	}
}

// DeleteCommandHandler deletes the record and returns to the list, which
// fetches again whether or not the delete succeeded.
func (c *Controller) DeleteCommandHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		e := c.Entity
		if err := c.Remove(r.Context(), viewer(r).Admin(), id); err != nil {
			if c.expired(w, r, err) {
				return
			}
			slog.Error("delete record failed", slog.String("entity", e.Slug), slog.String("id", id), slog.Any("err", err))
			c.flash.Error(w, r, apiclient.UserMessage(err, "Failed to delete "+e.Singular))
		} else {
			c.flash.Success(w, r, titleCase(e.Singular)+" deleted")
		}
		http.Redirect(w, r, e.Path(), http.StatusSeeOther)
	}
}

func (c *Controller) DetailQueryHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		rec, ok := c.find(w, r, id)
		if !ok {
			return
		}
		v := viewer(r)
		e := c.Entity
		data := DetailPageData{
			Entity:    e,
			Record:    rec,
			Status:    rec.String("status"),
			CanStatus: v.Can(e.Code(ActionStatus)),
			CanDelete: e.Caps.Delete && v.Can(e.Code(ActionDelete)),
		}
		html.WritePage(w, r, http.StatusOK, titleCase(e.Singular), c.flash.Pop(w, r), DetailPage(data))
	}
}

func (c *Controller) StatusCommandHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		e := c.Entity
		status := strings.TrimSpace(r.FormValue("status"))
		if err := c.SetStatus(r.Context(), viewer(r).Admin(), id, status); err != nil {
			if c.expired(w, r, err) {
				return
			}
			slog.Error("update status failed", slog.String("entity", e.Slug), slog.String("id", id), slog.Any("err", err))
			c.flash.Error(w, r, apiclient.UserMessage(err, "Failed to update "+e.Singular))
		} else {
			c.flash.Success(w, r, titleCase(e.Singular)+" marked as "+status)
		}
		http.Redirect(w, r, e.ItemPath(id, ""), http.StatusSeeOther)
	}
}

// ExportQueryHandler streams the current list as "csv" or "pdf".
func (c *Controller) ExportQueryHandler(format string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		e := c.Entity
		rows, err := c.List(r.Context())
		if err != nil {
			if c.expired(w, r, err) {
				return
			}
			slog.Error("export list failed", slog.String("entity", e.Slug), slog.Any("err", err))
			c.flash.Error(w, r, apiclient.UserMessage(err, "Failed to fetch "+e.Plural))
			http.Redirect(w, r, e.Path(), http.StatusSeeOther)
			return
		}

		filename := fmt.Sprintf("%s-%s.%s", e.Slug, time.Now().Format("20060102"), format)
		switch format {
		case "csv":
			w.Header().Set("Content-Type", "text/csv; charset=utf-8")
			w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
			if err := table.WriteCSV(w, e.Columns, rows); err != nil {
				slog.Error("write csv failed", slog.String("entity", e.Slug), slog.Any("err", err))
			}
		case "pdf":
			pdf, err := table.RenderPDF(e.Title, e.Columns, rows, time.Now())
			if err != nil {
				slog.Error("render pdf failed", slog.String("entity", e.Slug), slog.Any("err", err))
				http.Error(w, "failed to render pdf", http.StatusInternalServerError)
				return
			}
			w.Header().Set("Content-Type", "application/pdf")
			w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
			_, _ = w.Write(pdf)
		default:
			http.NotFound(w, r)
		}
	}
}

func (c *Controller) writeForm(w http.ResponseWriter, r *http.Request, status int, data FormPageData, notices []flash.Notice) {
	title := "Edit " + titleCase(c.Entity.Singular)
	if data.Creating {
		title = "Add " + titleCase(c.Entity.Singular)
	}
	html.WritePage(w, r, status, title, notices, FormPage(data))
}

func (c *Controller) find(w http.ResponseWriter, r *http.Request, id string) (models.Record, bool) {
	rec, err := c.Find(r.Context(), id)
	if err == nil {
		return rec, true
	}
	if c.expired(w, r, err) {
		return nil, false
	}
	if errors.Is(err, ErrNotFound) {
		c.flash.Error(w, r, titleCase(c.Entity.Singular)+" not found")
	} else {
		slog.Error("load record failed", slog.String("entity", c.Entity.Slug), slog.String("id", id), slog.Any("err", err))
		c.flash.Error(w, r, apiclient.UserMessage(err, "Failed to fetch "+c.Entity.Singular))
	}
	http.Redirect(w, r, c.Entity.Path(), http.StatusSeeOther)
	return nil, false
}

// expired sends the browser to the login screen after a 401.
func (c *Controller) expired(w http.ResponseWriter, r *http.Request, err error) bool {
	if !errors.Is(err, apiclient.ErrUnauthorized) {
		return false
	}
	c.flash.Error(w, r, SessionExpiredMessage)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
	return true
}

func (c *Controller) label(rec models.Record) string {
	for _, key := range []string{"title", "name", "fullName", "email"} {
		if s := rec.String(key); s != "" {
			return s
		}
	}
	return rec.ID()
}

func viewer(r *http.Request) sessioncontext.Viewer {
	v, _ := sessioncontext.GetViewerFromContext(r.Context())
	return v
}
