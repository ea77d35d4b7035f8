package exports

import "web3admin/frontend/shared/crud"

// PageData lists the collections the viewer may download.
type PageData struct {
	Entities []crud.Entity
}
