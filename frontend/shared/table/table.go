// Package table renders lists of API records as a responsive table with
// stacked cards for narrow screens, plus CSV and PDF exports that follow the
// same cell rules.
package table

import (
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"web3admin/models"
)

const (
	// SkeletonRows is the number of placeholder blocks shown while loading.
	SkeletonRows = 5
	Placeholder  = "-"
	EmptyMessage = "No data found"
)

// Cell is one rendered value. HTML, when set, is already escaped markup;
// otherwise Text is escaped on output.
type Cell struct {
	Text string
	HTML string
}

func (c Cell) markup() string {
	if c.HTML != "" {
		return c.HTML
	}
	return templ.EscapeString(c.Text)
}

// Formatter turns the value under a column key into a cell. value is nil when
// the key is absent.
type Formatter func(value any, row models.Record) Cell

type Column struct {
	Key    string
	Label  string
	Render Formatter
}

// Cell applies the column formatter, falling back to the raw value and then
// to Placeholder.
func (c Column) Cell(row models.Record) Cell {
	v, ok := row.Lookup(c.Key)
	if c.Render != nil {
		return c.Render(v, row)
	}
	if !ok {
		return Cell{Text: Placeholder}
	}
	return Cell{Text: models.FormatValue(v)}
}

// Actions map a record to the URL its button opens. Nil actions are hidden.
type Actions struct {
	View   func(models.Record) string
	Edit   func(models.Record) string
	Delete func(models.Record) string
}

func (a Actions) Any() bool {
	return a.View != nil || a.Edit != nil || a.Delete != nil
}

type View struct {
	Columns []Column
	Rows    []models.Record
	Loading bool
	Actions Actions
}

// Span is the column count of the desktop table including the actions column.
func (v View) Span() int {
	if v.Actions.Any() {
		return len(v.Columns) + 1
	}
	return len(v.Columns)
}

// HTML renders the view to markup.
func (v View) HTML() string {
	var b strings.Builder
	if v.Loading {
		b.WriteString(`<div class="table-skeleton" aria-busy="true">`)
		for i := 0; i < SkeletonRows; i++ {
			b.WriteString(`<div class="skeleton-row" data-skeleton></div>`)
		}
		b.WriteString(`</div>`)
		return b.String()
	}

	b.WriteString(`<div class="data-table"><div class="data-table-desktop"><table class="table"><thead><tr>`)
	for _, col := range v.Columns {
		b.WriteString(`<th>` + templ.EscapeString(col.Label) + `</th>`)
	}
	if v.Actions.Any() {
		b.WriteString(`<th class="actions">Actions</th>`)
	}
	b.WriteString(`</tr></thead><tbody>`)
	if len(v.Rows) == 0 {
		b.WriteString(`<tr data-empty><td class="empty" colspan="` + strconv.Itoa(v.Span()) + `">` + EmptyMessage + `</td></tr>`)
	}
	for _, row := range v.Rows {
		b.WriteString(`<tr data-row="` + templ.EscapeString(row.ID()) + `">`)
		for _, col := range v.Columns {
			b.WriteString(`<td>` + col.Cell(row).markup() + `</td>`)
		}
		if v.Actions.Any() {
			b.WriteString(`<td class="actions">` + v.actionLinks(row) + `</td>`)
		}
		b.WriteString(`</tr>`)
	}
	b.WriteString(`</tbody></table></div><div class="data-table-mobile">`)

	if len(v.Rows) == 0 {
		b.WriteString(`<div class="card empty">` + EmptyMessage + `</div>`)
	}
	for _, row := range v.Rows {
		b.WriteString(`<div class="card" data-card="` + templ.EscapeString(row.ID()) + `">`)
		for _, col := range v.Columns {
			b.WriteString(`<div class="card-field"><span class="card-label">` + templ.EscapeString(col.Label) + `:</span> <span class="card-value">` + col.Cell(row).markup() + `</span></div>`)
		}
		if v.Actions.Any() {
			b.WriteString(`<div class="card-actions">` + v.actionLinks(row) + `</div>`)
		}
		b.WriteString(`</div>`)
	}
	b.WriteString(`</div></div>`)
	return b.String()
}

func (v View) actionLinks(row models.Record) string {
	var b strings.Builder
	link := func(class, label string, target func(models.Record) string) {
		if target == nil {
			return
		}
		b.WriteString(`<a class="btn btn-sm ` + class + `" href="` + templ.EscapeString(target(row)) + `">` + label + `</a>`)
	}
	link("btn-view", "View", v.Actions.View)
	link("btn-edit", "Edit", v.Actions.Edit)
	link("btn-delete", "Delete", v.Actions.Delete)
	return b.String()
}
