package html

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"web3admin/frontend/shared/nav"
	"web3admin/infrastructure/flash"
)

// Page is everything the console layout needs around a body component.
type Page struct {
	Title   string
	Nav     nav.TopNavData
	Notices []flash.Notice
	Body    templ.Component
}

// Layout renders a full document with the sidebar, notices and body.
func Layout(p Page) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<!doctype html><html lang="en"><head><meta charset="utf-8">`)
		b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		b.WriteString(`<title>` + templ.EscapeString(p.Title) + ` | Admin</title>`)
		b.WriteString(`<link rel="stylesheet" href="/assets/app.css"></head><body>`)
		if len(p.Nav.Links) > 0 {
			b.WriteString(sidebar(p.Nav))
		}
		b.WriteString(`<main class="content">`)
		b.WriteString(Notices(p.Notices))
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if p.Body != nil {
			if err := p.Body.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</main>`+CSRFFormScript()+`</body></html>`)
		return err
	})
}

// Bare renders a full document without navigation, for the login screen.
func Bare(title string, notices []flash.Notice, body templ.Component) templ.Component {
	return Layout(Page{Title: title, Notices: notices, Body: body})
}

func sidebar(data nav.TopNavData) string {
	var b strings.Builder
	b.WriteString(`<aside class="sidebar"><div class="brand">Web3 Admin</div><nav><ul>`)
	for _, l := range data.Links {
		class := ""
		if l.Active {
			class = ` class="active"`
		}
		b.WriteString(`<li><a` + class + ` href="` + templ.EscapeString(l.Href) + `">` + templ.EscapeString(l.Label) + `</a></li>`)
	}
	b.WriteString(`</ul></nav><div class="whoami">`)
	name := data.Name
	if name == "" {
		name = data.Email
	}
	b.WriteString(`<span class="who">` + templ.EscapeString(name) + `</span>`)
	if data.Role != "" {
		b.WriteString(` <span class="badge badge-default">` + templ.EscapeString(data.Role) + `</span>`)
	}
	b.WriteString(`<form method="POST" action="/logout"><button type="submit" class="btn btn-link">Log out</button></form>`)
	b.WriteString(`</div></aside>`)
	return b.String()
}

// Notices renders flash notifications as dismissable toasts.
func Notices(notices []flash.Notice) string {
	if len(notices) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<div class="toasts" role="status">`)
	for _, n := range notices {
		b.WriteString(`<div class="toast toast-` + templ.EscapeString(string(n.Kind)) + `">` + templ.EscapeString(n.Message) + `</div>`)
	}
	b.WriteString(`</div>`)
	return b.String()
}
