// Package state owns the client-side session lifecycle: the authentication
// status, the in-memory reflection of the remote profile, settings and
// favorites, and the ordering guards around searches.
package state

import (
	"context"
	"errors"
	"sync"

	"github.com/aussiebroadwan/timeworld/pkg/worldsdk"
)

// Status is the authentication state. There are only two: a token either
// resolves to a profile or it is discarded.
type Status int

const (
	Unauthenticated Status = iota
	Authenticated
)

var (
	// ErrAuthRequired is returned by mutations that need a session. No
	// network call has been made when this comes back.
	ErrAuthRequired = errors.New("authentication required")

	// ErrStaleSearch marks a search whose response was superseded by a
	// newer request before it arrived. Its results must be discarded.
	ErrStaleSearch = errors.New("stale search response")
)

// ErrorHandler receives failures from fire-and-forget updates (settings
// persistence). The local state has already moved on when it is called.
type ErrorHandler func(op string, err error)

// Settings is the local display state. Values start at the server defaults
// and are patched field-wise from remote responses.
type Settings struct {
	Theme                string
	WeatherCity          string
	TimezoneMode         string
	NotificationsEnabled bool
}

func defaultSettings() Settings {
	return Settings{
		Theme:                "white",
		WeatherCity:          "Москва",
		TimezoneMode:         "24",
		NotificationsEnabled: true,
	}
}

// Manager is the single owner of shared client state. All mutation goes
// through its methods under one mutex; callers get copies out.
type Manager struct {
	client  *worldsdk.Client
	tokens  TokenStore
	onError ErrorHandler

	mu        sync.Mutex
	status    Status
	session   *worldsdk.Session
	user      *worldsdk.UserResponse
	settings  Settings
	favorites map[int64]bool
	searchSeq uint64
}

// NewManager creates a manager in the Unauthenticated state. onError may be
// nil when the caller does not care about fire-and-forget failures.
func NewManager(client *worldsdk.Client, tokens TokenStore, onError ErrorHandler) *Manager {
	if onError == nil {
		onError = func(string, error) {}
	}
	return &Manager{
		client:    client,
		tokens:    tokens,
		onError:   onError,
		settings:  defaultSettings(),
		favorites: make(map[int64]bool),
	}
}

// Startup restores the session from the stored token. A missing token or a
// failed profile fetch leaves the manager Unauthenticated with the dead
// token cleared. Settings and favorites sync failures only reach the error
// handler; the session itself stays Authenticated.
func (m *Manager) Startup(ctx context.Context) (Status, error) {
	token, err := m.tokens.Load()
	if err != nil || token == "" {
		return Unauthenticated, err
	}

	session := m.client.NewSession(token)
	user, err := session.Profile(ctx)
	if err != nil {
		_ = m.tokens.Clear()
		return Unauthenticated, err
	}

	m.mu.Lock()
	m.status = Authenticated
	m.session = session
	m.user = user
	m.mu.Unlock()

	m.syncSettings(ctx)
	m.syncFavorites(ctx)
	return Authenticated, nil
}

// Register creates an account and enters the Authenticated state.
func (m *Manager) Register(ctx context.Context, phone, firstName, lastName string) error {
	resp, err := m.client.Register(ctx, phone, firstName, lastName)
	if err != nil {
		return err
	}
	return m.adopt(ctx, resp.Token)
}

// Login authenticates an existing phone and enters the Authenticated state.
func (m *Manager) Login(ctx context.Context, phone string) error {
	resp, err := m.client.Login(ctx, phone)
	if err != nil {
		return err
	}
	return m.adopt(ctx, resp.Token)
}

// AdoptToken installs a token obtained outside the manager, e.g. from the
// Yandex OAuth callback.
func (m *Manager) AdoptToken(ctx context.Context, token string) error {
	return m.adopt(ctx, token)
}

// adopt installs a freshly minted token: persist it, fetch the profile,
// then sync settings and favorites.
func (m *Manager) adopt(ctx context.Context, token string) error {
	if err := m.tokens.Save(token); err != nil {
		return err
	}

	session := m.client.NewSession(token)
	user, err := session.Profile(ctx)
	if err != nil {
		_ = m.tokens.Clear()
		return err
	}

	m.mu.Lock()
	m.status = Authenticated
	m.session = session
	m.user = user
	m.mu.Unlock()

	m.syncSettings(ctx)
	m.syncFavorites(ctx)
	return nil
}

// syncSettings merges the remote settings into local state field-wise.
// Absent fields keep their current local values; a failed fetch keeps all
// of them.
func (m *Manager) syncSettings(ctx context.Context) {
	session := m.currentSession()
	if session == nil {
		return
	}

	partial, err := session.SettingsPartial(ctx)
	if err != nil {
		m.onError("settings_fetch", err)
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	applyPartial(&m.settings, partial)
}

func applyPartial(s *Settings, p *worldsdk.SettingsUpdateRequest) {
	if p.Theme != nil {
		s.Theme = *p.Theme
	}
	if p.WeatherCity != nil {
		s.WeatherCity = *p.WeatherCity
	}
	if p.TimezoneMode != nil {
		s.TimezoneMode = *p.TimezoneMode
	}
	if p.NotificationsEnabled != nil {
		s.NotificationsEnabled = *p.NotificationsEnabled
	}
}

func (m *Manager) syncFavorites(ctx context.Context) {
	session := m.currentSession()
	if session == nil {
		return
	}

	cities, err := session.Favorites(ctx)
	if err != nil {
		m.onError("favorites_fetch", err)
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.favorites = make(map[int64]bool, len(cities))
	for _, c := range cities {
		m.favorites[c.ID] = true
	}
}

// UpdateSettings applies the patch locally first, then persists it
// remotely. A remote failure goes to the error handler; the local state is
// never rolled back. That inconsistency is accepted: the next startup sync
// converges on the server's view.
func (m *Manager) UpdateSettings(ctx context.Context, patch worldsdk.SettingsUpdateRequest) {
	m.mu.Lock()
	applyPartial(&m.settings, &patch)
	session := m.session
	m.mu.Unlock()

	if session == nil {
		return // local-only until the user authenticates
	}

	if err := session.UpdateSettings(ctx, patch); err != nil {
		m.onError("settings_update", err)
	}
}

// ToggleFavorite flips a city's favorite flag. Unlike settings this is not
// optimistic: the local flag only changes after the server acknowledged,
// and an unauthenticated caller gets ErrAuthRequired before any network
// call.
func (m *Manager) ToggleFavorite(ctx context.Context, cityID int64) (favorite bool, err error) {
	m.mu.Lock()
	if m.status != Authenticated {
		m.mu.Unlock()
		return false, ErrAuthRequired
	}
	session := m.session
	wasFavorite := m.favorites[cityID]
	m.mu.Unlock()

	if wasFavorite {
		err = session.RemoveFavorite(ctx, cityID)
	} else {
		err = session.AddFavorite(ctx, cityID)
	}
	if err != nil {
		return wasFavorite, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if wasFavorite {
		delete(m.favorites, cityID)
	} else {
		m.favorites[cityID] = true
	}
	return !wasFavorite, nil
}

// Search runs a city search with a per-request sequence number. If a newer
// search was issued while this one was in flight, its response is discarded
// and ErrStaleSearch returned, so the last *issued* request wins regardless
// of completion order or of how the newer one fared.
func (m *Manager) Search(ctx context.Context, query string) ([]worldsdk.City, error) {
	m.mu.Lock()
	m.searchSeq++
	seq := m.searchSeq
	m.mu.Unlock()

	cities, err := m.client.SearchCities(ctx, query)

	m.mu.Lock()
	defer m.mu.Unlock()
	if seq != m.searchSeq {
		return nil, ErrStaleSearch
	}
	if err != nil {
		return nil, err
	}
	return cities, nil
}

// Logout revokes the session best-effort, clears the stored token and
// discards all user-scoped state. The manager is Unauthenticated afterwards
// regardless of how the revocation went.
func (m *Manager) Logout(ctx context.Context) {
	session := m.currentSession()
	if session != nil {
		if err := session.Logout(ctx); err != nil {
			m.onError("logout", err)
		}
	}

	_ = m.tokens.Clear()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.status = Unauthenticated
	m.session = nil
	m.user = nil
	m.settings = defaultSettings()
	m.favorites = make(map[int64]bool)
}

// Status returns the current authentication state.
func (m *Manager) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}

// User returns a copy of the authenticated profile, or nil.
func (m *Manager) User() *worldsdk.UserResponse {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return nil
	}
	u := *m.user
	return &u
}

// Settings returns a copy of the local display settings.
func (m *Manager) Settings() Settings {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.settings
}

// IsFavorite reports whether a city is currently marked favorite.
func (m *Manager) IsFavorite(cityID int64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.favorites[cityID]
}

// Session exposes the live session for direct SDK calls, or nil when
// unauthenticated.
func (m *Manager) Session() *worldsdk.Session {
	return m.currentSession()
}

func (m *Manager) currentSession() *worldsdk.Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session
}
