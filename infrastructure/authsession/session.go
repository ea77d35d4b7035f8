// Package authsession owns the console's single authentication state.
package authsession

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"sync"

	"web3admin/infrastructure/apiclient"
	"web3admin/infrastructure/tokenstore"
	"web3admin/models"
)

type State int

const (
	StateLoading State = iota
	StateUnauthenticated
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Snapshot is a copy of the session that is safe to hold.
type Snapshot struct {
	State State
	Admin *models.Admin
	// ID names one signed-in period. It changes on every sign-in and is
	// empty outside StateAuthenticated.
	ID string
}

func (s Snapshot) IsAuthenticated() bool { return s.State == StateAuthenticated }
func (s Snapshot) IsLoading() bool       { return s.State == StateLoading }

// HasRole reports whether the signed-in admin has role.
func (s Snapshot) HasRole(role string) bool {
	return s.Admin != nil && s.Admin.Role == role
}

// API is the slice of the content API the session needs.
type API interface {
	Login(ctx context.Context, email, password string) (apiclient.LoginResult, error)
	Profile(ctx context.Context) (models.Admin, error)
}

type Listener func(Snapshot)

// Manager starts in StateLoading and leaves it on Init.
type Manager struct {
	api    API
	tokens tokenstore.Store

	mu        sync.RWMutex
	state     State
	admin     *models.Admin
	id        string
	listeners map[int]Listener
	nextID    int
}

func NewManager(api API, tokens tokenstore.Store) *Manager {
	return &Manager{
		api:       api,
		tokens:    tokens,
		state:     StateLoading,
		listeners: make(map[int]Listener),
	}
}

// Snapshot reads the current state without blocking on I/O.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snapshotLocked()
}

func (m *Manager) snapshotLocked() Snapshot {
	snap := Snapshot{State: m.state, ID: m.id}
	if m.admin != nil {
		a := *m.admin
		snap.Admin = &a
	}
	return snap
}

// Subscribe registers fn for every transition and returns its cancel func.
func (m *Manager) Subscribe(fn Listener) func() {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextID
	m.nextID++
	m.listeners[id] = fn
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.listeners, id)
	}
}

// Init resolves a persisted token into a session. It always ends outside
// StateLoading.
func (m *Manager) Init(ctx context.Context) {
	token, err := m.tokens.Token(ctx)
	if err != nil {
		slog.Error("auth session: read persisted token failed", slog.Any("err", err))
		m.transition(StateUnauthenticated, nil)
		return
	}
	if token == "" {
		m.transition(StateUnauthenticated, nil)
		return
	}

	admin, err := m.api.Profile(ctx)
	if err != nil {
		slog.Warn("auth session: persisted token rejected", slog.Any("err", err))
		if clearErr := m.tokens.ClearToken(ctx); clearErr != nil {
			slog.Error("auth session: clear token failed", slog.Any("err", clearErr))
		}
		m.transition(StateUnauthenticated, nil)
		return
	}
	m.transition(StateAuthenticated, &admin)
}

// Login reports whether the credentials were accepted. A rejected login
// leaves the session untouched.
func (m *Manager) Login(ctx context.Context, email, password string) bool {
	res, err := m.api.Login(ctx, email, password)
	if err != nil {
		slog.Info("auth session: login rejected", slog.String("email", email), slog.Any("err", err))
		return false
	}
	if err := m.tokens.SetToken(ctx, res.Token); err != nil {
		slog.Error("auth session: persist token failed", slog.Any("err", err))
		return false
	}
	admin := res.Admin
	m.transition(StateAuthenticated, &admin)
	return true
}

// Logout forgets the token locally; the server is not told.
func (m *Manager) Logout(ctx context.Context) {
	if err := m.tokens.ClearToken(ctx); err != nil {
		slog.Error("auth session: clear token on logout failed", slog.Any("err", err))
	}
	m.transition(StateUnauthenticated, nil)
}

// Expire drops the session after the API rejected the token. The API client
// has cleared the store already.
func (m *Manager) Expire(context.Context) {
	if m.Snapshot().State == StateUnauthenticated {
		return
	}
	m.transition(StateUnauthenticated, nil)
}

func (m *Manager) transition(state State, admin *models.Admin) {
	m.mu.Lock()
	m.state = state
	m.admin = admin
	m.id = ""
	if state == StateAuthenticated {
		m.id = newID()
	}
	snap := m.snapshotLocked()
	listeners := make([]Listener, 0, len(m.listeners))
	for _, fn := range m.listeners {
		listeners = append(listeners, fn)
	}
	m.mu.Unlock()

	for _, fn := range listeners {
		fn(snap)
	}
}

func newID() string {
	buf := make([]byte, 16)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}
