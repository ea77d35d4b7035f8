package login

import (
	"net/http"

	"web3admin/frontend/shared/html"
	"web3admin/infrastructure/flash"
)

// GetLoginScreenHandler renders the login screen, or forwards a browser that
// already signed in.
func GetLoginScreenHandler(auth Authenticator, browsers Browsers, flashes *flash.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if snap := auth.Snapshot(); snap.IsAuthenticated() && browsers.Bound(r, snap.ID) {
			http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
			return
		}
		data := ScreenData{Email: r.URL.Query().Get("email")}
		html.WriteComponent(w, r, http.StatusOK, html.Bare("Sign in", flashes.Pop(w, r), GetLoginScreen(data)))
	}
}
