package login

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"web3admin/infrastructure/authsession"
)

// Authenticator is the session surface the login screens drive.
type Authenticator interface {
	Snapshot() authsession.Snapshot
	Login(ctx context.Context, email, password string) bool
	Logout(ctx context.Context)
}

// Browsers ties a browser to the signed-in period it authenticated in.
type Browsers interface {
	Bind(w http.ResponseWriter, r *http.Request, id string) error
	Bound(r *http.Request, id string) bool
	Unbind(w http.ResponseWriter, r *http.Request)
}

// NewLimiter allows perMinute login attempts per minute across the console,
// with a burst of the same size.
func NewLimiter(perMinute int) *rate.Limiter {
	if perMinute <= 0 {
		perMinute = 1
	}
	return rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute)
}

type ScreenData struct {
	Email string
}
