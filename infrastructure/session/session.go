// Package session ties browsers to the console's auth session. Only a browser
// that signed in during the current signed-in period may open console pages.
package session

import (
	"crypto/sha256"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
)

const (
	CookieName = "web3admin-auth"
	idKey      = "sid"
)

// MaxAge bounds how long a browser stays bound without signing in again.
var MaxAge = 12 * time.Hour

// Store keeps the bound session ID in a signed, encrypted cookie.
type Store struct {
	cookies *sessions.CookieStore
}

func NewStore(secret string, secure bool) *Store {
	auth := sha256.Sum256([]byte("session-auth:" + secret))
	enc := sha256.Sum256([]byte("session-enc:" + secret))
	cs := sessions.NewCookieStore(auth[:], enc[:])
	cs.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(MaxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   secure,
	}
	return &Store{cookies: cs}
}

// Bind marks the browser as signed in to the period named by id.
func (s *Store) Bind(w http.ResponseWriter, r *http.Request, id string) error {
	if s == nil {
		return nil
	}
	// An undecodable cookie still yields a fresh session, which replaces it.
	sess, err := s.cookies.Get(r, CookieName)
	if sess == nil {
		return err
	}
	sess.Values[idKey] = id
	return sess.Save(r, w)
}

// Bound reports whether the browser signed in to the period named by id.
func (s *Store) Bound(r *http.Request, id string) bool {
	if s == nil || id == "" {
		return false
	}
	sess, err := s.cookies.Get(r, CookieName)
	if err != nil {
		return false
	}
	got, _ := sess.Values[idKey].(string)
	return got == id
}

// Unbind drops the browser's cookie.
func (s *Store) Unbind(w http.ResponseWriter, r *http.Request) {
	if s == nil {
		return
	}
	sess, _ := s.cookies.Get(r, CookieName)
	if sess == nil {
		return
	}
	delete(sess.Values, idKey)
	sess.Options.MaxAge = -1
	if err := sess.Save(r, w); err != nil {
		slog.Error("session: clear cookie failed", slog.Any("err", err))
	}
}
