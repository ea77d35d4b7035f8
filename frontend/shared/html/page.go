package html

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	sessioncontext "web3admin/frontend/shared/context"
	"web3admin/frontend/shared/nav"
	"web3admin/infrastructure/flash"
)

// WritePage renders body inside the console layout for the request's viewer.
func WritePage(w http.ResponseWriter, r *http.Request, status int, title string, notices []flash.Notice, body templ.Component) {
	viewer, _ := sessioncontext.GetViewerFromContext(r.Context())
	page := Page{
		Title:   title,
		Nav:     nav.BuildTopNavData(viewer, r.URL.Path),
		Notices: notices,
		Body:    body,
	}
	WriteComponent(w, r, status, Layout(page))
}

// WriteComponent buffers c so a render failure can still produce a 500.
func WriteComponent(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	var buf bytes.Buffer
	if err := c.Render(r.Context(), &buf); err != nil {
		slog.Error("render page failed", slog.String("path", r.URL.Path), slog.Any("err", err))
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
