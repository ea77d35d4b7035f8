package context

import (
	"context"

	"web3admin/infrastructure/authsession"
	"web3admin/models"
)

// Viewer is the signed-in operator as seen by one request.
type Viewer struct {
	Session authsession.Snapshot
	Codes   map[string]bool
}

// Can reports whether the viewer holds permission code.
func (v Viewer) Can(code string) bool {
	return v.Codes[code]
}

// Admin returns the signed-in admin, or a zero value.
func (v Viewer) Admin() models.Admin {
	if v.Session.Admin == nil {
		return models.Admin{}
	}
	return *v.Session.Admin
}

type viewerKey struct{}

func NewContextWithViewer(ctx context.Context, v Viewer) context.Context {
	return context.WithValue(ctx, viewerKey{}, v)
}

func GetViewerFromContext(ctx context.Context) (Viewer, bool) {
	v, ok := ctx.Value(viewerKey{}).(Viewer)
	return v, ok
}
