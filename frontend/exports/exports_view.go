package exports

import (
	"github.com/a-h/templ"

	"web3admin/frontend/shared/table"
	"web3admin/models"
)

var columns = []table.Column{
	{Key: "title", Label: "Collection"},
	{Key: "description", Label: "Description"},
	{Key: "path", Label: "Download", Render: func(value any, _ models.Record) table.Cell {
		base, _ := value.(string)
		esc := templ.EscapeString(base)
		return table.Cell{
			Text: base,
			HTML: `<a class="btn btn-sm" href="` + esc + `/export.csv">CSV</a> <a class="btn btn-sm" href="` + esc + `/export.pdf">PDF</a>`,
		}
	}},
}

func ExportsPage(data PageData) templ.Component {
	rows := make([]models.Record, 0, len(data.Entities))
	for _, e := range data.Entities {
		rows = append(rows, models.Record{"id": e.Slug, "title": e.Title, "description": e.Description, "path": e.Path()})
	}
	view := table.View{Columns: columns, Rows: rows}
	return templ.Raw(`<header class="page-header"><div><h1>Exports</h1><p class="muted">Download collections as CSV or PDF</p></div></header>` + view.HTML())
}
