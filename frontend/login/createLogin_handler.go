package login

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/time/rate"

	"web3admin/infrastructure/flash"
)

// CreateLoginHandler signs the operator in against the content API.
func CreateLoginHandler(auth Authenticator, browsers Browsers, limiter *rate.Limiter, flashes *flash.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			flashes.Error(w, r, "Invalid form data")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		email := strings.TrimSpace(r.FormValue("email"))
		password := r.FormValue("password")
		back := "/login?email=" + url.QueryEscape(email)
		if email == "" || password == "" {
			flashes.Error(w, r, "Email and password are required")
			http.Redirect(w, r, back, http.StatusSeeOther)
			return
		}

		if limiter != nil && !limiter.Allow() {
			slog.Warn("login throttled", slog.String("email", email))
			flashes.Error(w, r, "Too many login attempts. Try again in a minute.")
			http.Redirect(w, r, back, http.StatusSeeOther)
			return
		}

		if !auth.Login(r.Context(), email, password) {
			flashes.Error(w, r, "Invalid email or password")
			http.Redirect(w, r, back, http.StatusSeeOther)
			return
		}
		if err := browsers.Bind(w, r, auth.Snapshot().ID); err != nil {
			slog.Error("bind browser to session failed", slog.Any("err", err))
			flashes.Error(w, r, "Could not start a browser session")
			http.Redirect(w, r, back, http.StatusSeeOther)
			return
		}

		flashes.Success(w, r, "Welcome back!")
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
	}
}
