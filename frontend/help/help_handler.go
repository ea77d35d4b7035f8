package help

import (
	"net/http"
	"strings"

	sessioncontext "web3admin/frontend/shared/context"
	"web3admin/frontend/shared/html"
	"web3admin/infrastructure/flash"
)

// Catalog lists every permission code the console registered.
type Catalog interface {
	Known() []string
}

// Permission is one row of the help page.
type Permission struct {
	Area    string
	Action  string
	Granted bool
}

type PageData struct {
	Role        string
	Permissions []Permission
}

func HelpPageQueryHandler(catalog Catalog, flashes *flash.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewer, _ := sessioncontext.GetViewerFromContext(r.Context())
		data := PageData{Role: viewer.Admin().Role}
		for _, code := range catalog.Known() {
			area, action := splitCode(code)
			data.Permissions = append(data.Permissions, Permission{Area: area, Action: action, Granted: viewer.Can(code)})
		}
		html.WritePage(w, r, http.StatusOK, "Help", flashes.Pop(w, r), HelpPage(data))
	}
}

// splitCode turns EVENTS_LIST_VIEW into ("Events", "List view").
func splitCode(code string) (string, string) {
	for _, suffix := range []string{"LIST_VIEW", "STATUS_EDIT"} {
		if area, ok := strings.CutSuffix(code, "_"+suffix); ok {
			return humanize(area), humanize(suffix)
		}
	}
	i := strings.LastIndex(code, "_")
	if i < 0 {
		return humanize(code), ""
	}
	return humanize(code[:i]), humanize(code[i+1:])
}

func humanize(s string) string {
	s = strings.ToLower(strings.ReplaceAll(s, "_", " "))
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
