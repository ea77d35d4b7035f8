package dashboard

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"
)

func DashboardPage(data PageData) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		greeting := "Welcome back"
		if data.Name != "" {
			greeting += ", " + data.Name
		}
		b.WriteString(`<header class="page-header"><div><h1>Dashboard</h1><p class="muted">` + templ.EscapeString(greeting) + `</p></div>`)
		b.WriteString(`<div class="api-status api-status-` + data.Summary.APIStatus + `">API ` + data.Summary.APIStatus + `</div></header>`)

		if !data.Failed {
			b.WriteString(`<section class="stats">`)
			for _, c := range data.Summary.Counts {
				b.WriteString(`<a class="stat-card" href="` + templ.EscapeString(c.Href) + `"><span class="stat-label">` + templ.EscapeString(c.Label) + `</span><span class="stat-value">` + strconv.Itoa(c.Value) + `</span></a>`)
			}
			b.WriteString(`</section>`)

			b.WriteString(`<section class="panel"><h2>Recent Activity</h2>`)
			if len(data.Summary.Recent) == 0 {
				b.WriteString(`<p class="muted">No recent activity</p>`)
			} else {
				b.WriteString(`<ul class="recent">`)
				for _, item := range data.Summary.Recent {
					b.WriteString(`<li data-recent><span class="badge badge-outline">` + templ.EscapeString(item.Kind) + `</span> ` + templ.EscapeString(item.Title) + ` <span class="muted">` + item.Date.Format("02/01/2006") + `</span></li>`)
				}
				b.WriteString(`</ul>`)
			}
			b.WriteString(`</section>`)
		}

		b.WriteString(`<section class="panel"><h2>Console Activity</h2>`)
		if len(data.Summary.Audit) == 0 {
			b.WriteString(`<p class="muted">No changes recorded yet</p>`)
		} else {
			b.WriteString(`<table class="table"><thead><tr><th>When</th><th>Admin</th><th>Action</th><th>Record</th><th>Outcome</th></tr></thead><tbody>`)
			for _, a := range data.Summary.Audit {
				b.WriteString(`<tr data-audit><td>` + a.CreatedAt.Local().Format("02/01/2006 15:04") + `</td><td>` + templ.EscapeString(a.AdminEmail) + `</td><td>` + templ.EscapeString(a.Action) + `</td><td>` + templ.EscapeString(a.EntityID) + `</td><td><span class="badge badge-` + templ.EscapeString(a.Outcome) + `">` + templ.EscapeString(a.Outcome) + `</span></td></tr>`)
			}
			b.WriteString(`</tbody></table>`)
		}
		b.WriteString(`</section>`)

		_, err := io.WriteString(w, b.String())
		return err
	})
}
