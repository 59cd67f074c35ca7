package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/timeworld/internal/server/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. Sub-repositories keep concerns tidy and individually
// mockable without giving handlers raw SQL access.
type Store interface {
	Users() Users
	Sessions() Sessions
	Cities() Cities
	Favorites() Favorites
	Settings() Settings

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// Use it for multi-step operations that must be atomic (e.g., the
	// register upsert plus default settings plus session mint).
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction, rolling back when fn
	// returns an error and committing otherwise. Prefer this over Tx.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByPhone is the lookup used by login and the register upsert.
	GetUserByPhone(ctx context.Context, phone string) (domain.User, error)

	// GetUserByYandexID is the lookup used by the OAuth callback upsert.
	GetUserByYandexID(ctx context.Context, yandexID string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by the app via ULID).
	CreateUser(ctx context.Context, u domain.User) error

	// UpdateProfile mutates names and phone and bumps updated_at.
	UpdateProfile(ctx context.Context, userID, firstName, lastName, phone string) error

	// UpdateName mutates only the name fields (register re-submission).
	UpdateName(ctx context.Context, userID, firstName, lastName string) error
}

type Sessions interface {
	// CreateSession stores a new session record.
	CreateSession(ctx context.Context, s domain.Session) error

	// GetSession returns a session by id regardless of expiry; the caller
	// decides what lapsed means.
	GetSession(ctx context.Context, id string) (domain.Session, error)

	// DeleteSession revokes a single session.
	DeleteSession(ctx context.Context, id string) error

	// DeleteExpiredSessions is housekeeping.
	DeleteExpiredSessions(ctx context.Context) error
}

type Cities interface {
	// GetCityByID returns one city with its country resolved.
	GetCityByID(ctx context.Context, id int64) (domain.City, error)

	// SearchCities matches the query case-insensitively against city and
	// country names, ordered capital-first then by name.
	SearchCities(ctx context.Context, query string) ([]domain.City, error)

	// CitiesByCountry returns all cities of a country, same ordering.
	CitiesByCountry(ctx context.Context, country string) ([]domain.City, error)

	// ListCities returns the default listing capped at limit.
	ListCities(ctx context.Context, limit int) ([]domain.City, error)
}

type Favorites interface {
	// AddFavorite records a favorite; adding one that exists is a no-op.
	AddFavorite(ctx context.Context, userID string, cityID int64) error

	// RemoveFavorite deletes a favorite; removing a missing one is a no-op.
	RemoveFavorite(ctx context.Context, userID string, cityID int64) error

	// ListFavorites returns the user's favorite cities, capital-first.
	ListFavorites(ctx context.Context, userID string) ([]domain.City, error)
}

type Settings interface {
	// GetSettings returns the user's settings row or ErrNotFound.
	GetSettings(ctx context.Context, userID string) (domain.Settings, error)

	// CreateDefaultSettings inserts the default row, ignoring an existing one.
	CreateDefaultSettings(ctx context.Context, userID string) error

	// UpdateSettings applies a partial update; nil patch fields keep the
	// stored values (COALESCE semantics).
	UpdateSettings(ctx context.Context, userID string, patch domain.SettingsPatch) error
}
