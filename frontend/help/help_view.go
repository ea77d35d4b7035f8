package help

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

func HelpPage(data PageData) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<header class="page-header"><div><h1>Help</h1><p class="muted">What the <strong>`)
		b.WriteString(templ.EscapeString(data.Role))
		b.WriteString(`</strong> role can do in this console. The content API applies its own checks.</p></div></header>`)
		b.WriteString(`<table class="table"><thead><tr><th>Area</th><th>Action</th><th>Allowed</th></tr></thead><tbody>`)
		for _, p := range data.Permissions {
			allowed := `<span class="badge badge-danger">No</span>`
			if p.Granted {
				allowed = `<span class="badge badge-success">Yes</span>`
			}
			b.WriteString(`<tr><td>` + templ.EscapeString(p.Area) + `</td><td>` + templ.EscapeString(p.Action) + `</td><td>` + allowed + `</td></tr>`)
		}
		b.WriteString(`</tbody></table>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}
