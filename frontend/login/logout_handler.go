package login

import (
	"net/http"

	"web3admin/infrastructure/flash"
)

// LogoutHandler discards the stored token. The content API keeps no session,
// so nothing is sent to it.
func LogoutHandler(auth Authenticator, browsers Browsers, flashes *flash.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		auth.Logout(r.Context())
		browsers.Unbind(w, r)
		flashes.Success(w, r, "Signed out")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	}
}
