package exports

import (
	"net/http"

	sessioncontext "web3admin/frontend/shared/context"
	"web3admin/frontend/shared/crud"
	"web3admin/frontend/shared/html"
	"web3admin/infrastructure/flash"
)

// ExportsPageQueryHandler links the CSV and PDF download of every entity the
// viewer holds the export permission for.
func ExportsPageQueryHandler(entities []crud.Entity, flashes *flash.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewer, _ := sessioncontext.GetViewerFromContext(r.Context())
		html.WritePage(w, r, http.StatusOK, "Exports", flashes.Pop(w, r), ExportsPage(Exportable(viewer, entities)))
	}
}

func Exportable(viewer sessioncontext.Viewer, entities []crud.Entity) PageData {
	data := PageData{}
	for _, e := range entities {
		if e.Caps.Export && viewer.Can(e.Code(crud.ActionExport)) {
			data.Entities = append(data.Entities, e)
		}
	}
	return data
}
