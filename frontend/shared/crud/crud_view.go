package crud

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"web3admin/frontend/shared/table"
	"web3admin/models"
)

type ListPageData struct {
	Entity    Entity
	Table     table.View
	CanCreate bool
	CanExport bool
}

type FormPageData struct {
	Entity   Entity
	Fields   []Field
	Values   map[string]string
	Action   string
	Creating bool
	Problems []string
}

type DeletePageData struct {
	Entity Entity
	ID     string
	Label  string
}

type DetailPageData struct {
	Entity    Entity
	Record    models.Record
	Status    string
	CanStatus bool
	CanDelete bool
}

func component(render func(b *strings.Builder)) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		render(&b)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func esc(s string) string { return templ.EscapeString(s) }

func pageHeader(b *strings.Builder, title, description string, actions string) {
	b.WriteString(`<header class="page-header"><div><h1>` + esc(title) + `</h1>`)
	if description != "" {
		b.WriteString(`<p class="muted">` + esc(description) + `</p>`)
	}
	b.WriteString(`</div><div class="page-actions">` + actions + `</div></header>`)
}

func ListPage(d ListPageData) templ.Component {
	return component(func(b *strings.Builder) {
		e := d.Entity
		var actions strings.Builder
		actions.WriteString(`<button type="button" class="btn btn-outline" data-refresh="` + esc(e.Path()+"/table") + `">Refresh</button>`)
		if d.CanExport {
			actions.WriteString(`<a class="btn btn-outline" href="` + esc(e.Path()+"/export.csv") + `">CSV</a>`)
			actions.WriteString(`<a class="btn btn-outline" href="` + esc(e.Path()+"/export.pdf") + `">PDF</a>`)
		}
		if d.CanCreate {
			actions.WriteString(`<a class="btn btn-primary" href="` + esc(e.Path()+"/new") + `">Add ` + esc(titleCase(e.Singular)) + `</a>`)
		}
		pageHeader(b, e.Title, e.Description, actions.String())

		b.WriteString(`<section id="records">` + d.Table.HTML() + `</section>`)
		b.WriteString(`<template id="records-loading">` + table.View{Loading: true}.HTML() + `</template>`)
		b.WriteString(refreshScript)
	})
}

const refreshScript = `<script>
(function () {
  var btn = document.querySelector("[data-refresh]");
  var target = document.getElementById("records");
  var loading = document.getElementById("records-loading");
  if (!btn || !target || !loading) return;
  btn.addEventListener("click", function () {
    target.innerHTML = loading.innerHTML;
    fetch(btn.getAttribute("data-refresh"), { headers: { "Accept": "text/html" } })
      .then(function (res) {
        if (res.redirected) { window.location = res.url; return ""; }
        return res.text();
      })
      .then(function (html) { if (html) target.innerHTML = html; });
  });
})();
</script>`

func FormPage(d FormPageData) templ.Component {
	return component(func(b *strings.Builder) {
		e := d.Entity
		verb := "Edit "
		submit := "Update"
		if d.Creating {
			verb, submit = "Add ", "Create"
		}
		pageHeader(b, verb+titleCase(e.Singular), "", "")
		if len(d.Problems) > 0 {
			b.WriteString(`<ul class="form-errors">`)
			for _, p := range d.Problems {
				b.WriteString(`<li>` + esc(p) + `</li>`)
			}
			b.WriteString(`</ul>`)
		}
		b.WriteString(`<form class="form" method="POST" action="` + esc(d.Action) + `">`)
		for _, f := range d.Fields {
			writeField(b, f, d.Values[f.Name])
		}
		b.WriteString(`<div class="form-actions"><a class="btn btn-outline" href="` + esc(e.Path()) + `">Cancel</a>`)
		b.WriteString(`<button type="submit" class="btn btn-primary">` + submit + `</button></div></form>`)
	})
}

func writeField(b *strings.Builder, f Field, value string) {
	id := "f-" + strings.ReplaceAll(f.Name, ".", "-")
	attrs := ` id="` + esc(id) + `" name="` + esc(f.Name) + `"`
	if f.Required {
		attrs += ` required`
	}
	if f.Placeholder != "" {
		attrs += ` placeholder="` + esc(f.Placeholder) + `"`
	}

	if f.Kind == KindSwitch {
		checked := ""
		if isChecked(value) {
			checked = " checked"
		}
		b.WriteString(`<div class="field field-switch"><label for="` + esc(id) + `"><input type="checkbox" value="on"` + attrs + checked + `> ` + esc(f.Label) + `</label></div>`)
		return
	}

	b.WriteString(`<div class="field"><label for="` + esc(id) + `">` + esc(f.Label) + `</label>`)
	switch f.Kind {
	case KindTextarea:
		b.WriteString(`<textarea rows="4"` + attrs + `>` + esc(value) + `</textarea>`)
	case KindSelect:
		b.WriteString(`<select` + attrs + `>`)
		if value != "" && !hasOption(f.Options, value) {
			b.WriteString(`<option value="` + esc(value) + `" selected>` + esc(value) + `</option>`)
		}
		for _, o := range f.Options {
			selected := ""
			if o.Value == value {
				selected = " selected"
			}
			b.WriteString(`<option value="` + esc(o.Value) + `"` + selected + `>` + esc(o.Label) + `</option>`)
		}
		b.WriteString(`</select>`)
	default:
		b.WriteString(`<input type="` + inputType(f.Kind) + `" value="` + esc(value) + `"` + attrs + `>`)
		if f.Kind == KindTags {
			b.WriteString(`<small class="muted">Separate values with commas.</small>`)
		}
	}
	b.WriteString(`</div>`)
}

func inputType(k FieldKind) string {
	switch k {
	case KindNumber:
		return "number"
	case KindPassword:
		return "password"
	case KindEmail:
		return "email"
	case KindURL:
		return "url"
	default:
		return "text"
	}
}

func DeletePage(d DeletePageData) templ.Component {
	return component(func(b *strings.Builder) {
		e := d.Entity
		pageHeader(b, "Delete "+titleCase(e.Singular), "", "")
		b.WriteString(`<div class="confirm"><p>Are you sure you want to delete "` + esc(d.Label) + `"? This action cannot be undone.</p>`)
		b.WriteString(`<form method="POST" action="` + esc(e.ItemPath(d.ID, "delete")) + `">`)
		b.WriteString(`<a class="btn btn-outline" href="` + esc(e.Path()) + `">Cancel</a> `)
		b.WriteString(`<button type="submit" class="btn btn-danger">Delete</button></form></div>`)
	})
}

func DetailPage(d DetailPageData) templ.Component {
	return component(func(b *strings.Builder) {
		e := d.Entity
		pageHeader(b, titleCase(e.Singular), "", `<a class="btn btn-outline" href="`+esc(e.Path())+`">Back</a>`)
		cols := e.Details
		if len(cols) == 0 {
			cols = e.Columns
		}
		b.WriteString(`<dl class="detail">`)
		for _, col := range cols {
			cell := col.Cell(d.Record)
			value := cell.HTML
			if value == "" {
				value = esc(cell.Text)
			}
			b.WriteString(`<dt>` + esc(col.Label) + `</dt><dd>` + value + `</dd>`)
		}
		b.WriteString(`</dl>`)

		id := d.Record.ID()
		if d.CanStatus && len(e.Statuses) > 0 {
			b.WriteString(`<form class="inline-form" method="POST" action="` + esc(e.ItemPath(id, "status")) + `"><label for="status">Status</label><select id="status" name="status">`)
			for _, o := range e.Statuses {
				selected := ""
				if o.Value == d.Status {
					selected = " selected"
				}
				b.WriteString(`<option value="` + esc(o.Value) + `"` + selected + `>` + esc(o.Label) + `</option>`)
			}
			b.WriteString(`</select> <button type="submit" class="btn btn-primary">Update status</button></form>`)
		}
		if d.CanDelete {
			b.WriteString(`<a class="btn btn-danger" href="` + esc(e.ItemPath(id, "delete")) + `">Delete</a>`)
		}
	})
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
