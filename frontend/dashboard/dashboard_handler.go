package dashboard

import (
	"errors"
	"log/slog"
	"net/http"

	sessioncontext "web3admin/frontend/shared/context"
	"web3admin/frontend/shared/crud"
	"web3admin/frontend/shared/html"
	"web3admin/infrastructure/apiclient"
	"web3admin/infrastructure/flash"
	"web3admin/infrastructure/rbac"
)

type PageData struct {
	Name    string
	Summary Summary
	Failed  bool
}

func DashboardPageQueryHandler(api API, auditReader AuditReader, flashes *flash.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewer, _ := sessioncontext.GetViewerFromContext(r.Context())

		summary, err := LoadSummary(r.Context(), api, viewer.Session.HasRole(rbac.RoleSuperadmin))
		if errors.Is(err, apiclient.ErrUnauthorized) {
			flashes.Error(w, r, crud.SessionExpiredMessage)
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		notices := flashes.Pop(w, r)
		data := PageData{Name: viewer.Admin().Name, Summary: summary}
		if err != nil {
			slog.Error("load dashboard summary failed", slog.Any("err", err))
			data.Failed = true
			notices = append(notices, flash.Notice{Kind: flash.KindError, Message: apiclient.UserMessage(err, "Failed to load dashboard stats")})
		}
		data.Summary.Audit = loadAudit(r.Context(), auditReader)

		html.WritePage(w, r, http.StatusOK, "Dashboard", notices, DashboardPage(data))
	}
}
