package settings

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"web3admin/frontend/login"
	sessioncontext "web3admin/frontend/shared/context"
	"web3admin/frontend/shared/crud"
	"web3admin/frontend/shared/html"
	"web3admin/infrastructure/apiclient"
	"web3admin/infrastructure/audit"
	"web3admin/infrastructure/flash"
)

const settingsPath = "/dashboard/settings"

// PasswordChanger is implemented by the API client.
type PasswordChanger interface {
	ChangePassword(ctx context.Context, currentPassword, newPassword string) error
}

func SettingsPageQueryHandler(flashes *flash.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewer, _ := sessioncontext.GetViewerFromContext(r.Context())
		html.WritePage(w, r, http.StatusOK, "Settings", flashes.Pop(w, r), SettingsPage(viewer.Admin()))
	}
}

func ChangePasswordCommandHandler(api PasswordChanger, auditSvc *audit.Service, flashes *flash.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			flashes.Error(w, r, "Invalid form data")
			http.Redirect(w, r, settingsPath, http.StatusSeeOther)
			return
		}
		current := r.FormValue("current_password")
		next := r.FormValue("new_password")
		if msg := checkNewPassword(current, next, r.FormValue("confirm_password")); msg != "" {
			flashes.Error(w, r, msg)
			http.Redirect(w, r, settingsPath, http.StatusSeeOther)
			return
		}

		viewer, _ := sessioncontext.GetViewerFromContext(r.Context())
		err := api.ChangePassword(r.Context(), current, next)
		if auditErr := auditSvc.Record(r.Context(), audit.Entry{
			Admin:      viewer.Admin(),
			Action:     "admin.password",
			EntityType: "admins",
			EntityID:   viewer.Admin().ID,
			Err:        err,
		}); auditErr != nil {
			slog.Error("write audit entry failed", slog.String("action", "admin.password"), slog.Any("err", auditErr))
		}
		if err != nil {
			if errors.Is(err, apiclient.ErrUnauthorized) {
				flashes.Error(w, r, crud.SessionExpiredMessage)
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
			slog.Error("change password failed", slog.Any("err", err))
			flashes.Error(w, r, apiclient.UserMessage(err, "Failed to change password"))
			http.Redirect(w, r, settingsPath, http.StatusSeeOther)
			return
		}

		flashes.Success(w, r, "Password updated")
		http.Redirect(w, r, settingsPath, http.StatusSeeOther)
	}
}

func checkNewPassword(current, next, confirm string) string {
	switch {
	case current == "" || next == "":
		return "Current and new password are required"
	case next != confirm:
		return "New passwords do not match"
	case next == current:
		return "New password must differ from the current one"
	}
	if err := login.ValidatePasswordPolicy(next); err != nil {
		return "New password rejected: " + err.Error()
	}
	return ""
}
