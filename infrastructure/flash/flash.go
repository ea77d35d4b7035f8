// Package flash carries transient notifications across a redirect.
package flash

import (
	"crypto/sha256"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/sessions"
)

const cookieName = "web3admin_flash"

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Notice is one toast shown on the next rendered page.
type Notice struct {
	Kind    Kind
	Message string
}

// Store keeps notices in a signed, encrypted cookie.
type Store struct {
	cookies *sessions.CookieStore
}

func NewStore(secret string, secure bool) *Store {
	auth := sha256.Sum256([]byte("flash-auth:" + secret))
	enc := sha256.Sum256([]byte("flash-enc:" + secret))
	cs := sessions.NewCookieStore(auth[:], enc[:])
	cs.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   10 * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   secure,
	}
	return &Store{cookies: cs}
}

func (s *Store) Success(w http.ResponseWriter, r *http.Request, message string) {
	s.add(w, r, KindSuccess, message)
}

func (s *Store) Error(w http.ResponseWriter, r *http.Request, message string) {
	s.add(w, r, KindError, message)
}

func (s *Store) add(w http.ResponseWriter, r *http.Request, kind Kind, message string) {
	if s == nil {
		return
	}
	sess, err := s.cookies.Get(r, cookieName)
	if err != nil {
		// A cookie signed with an old secret decodes to a fresh session.
		slog.Warn("flash: discarding unreadable cookie", slog.Any("err", err))
	}
	sess.AddFlash(string(kind) + ":" + message)
	if err := sess.Save(r, w); err != nil {
		slog.Error("flash: save failed", slog.Any("err", err))
	}
}

// Pop returns and clears pending notices.
func (s *Store) Pop(w http.ResponseWriter, r *http.Request) []Notice {
	if s == nil {
		return nil
	}
	sess, err := s.cookies.Get(r, cookieName)
	if err != nil {
		return nil
	}
	raw := sess.Flashes()
	if len(raw) == 0 {
		return nil
	}
	if err := sess.Save(r, w); err != nil {
		slog.Error("flash: save failed", slog.Any("err", err))
	}

	out := make([]Notice, 0, len(raw))
	for _, v := range raw {
		str, ok := v.(string)
		if !ok {
			continue
		}
		kind, msg, found := strings.Cut(str, ":")
		if !found {
			kind, msg = string(KindSuccess), str
		}
		out = append(out, Notice{Kind: Kind(kind), Message: msg})
	}
	return out
}
