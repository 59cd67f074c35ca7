package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/aussiebroadwan/timeworld/internal/server/domain"
	"github.com/aussiebroadwan/timeworld/internal/server/store"
)

type usersRepo struct {
	q querier
}

const userColumns = `id, phone, first_name, last_name, yandex_id, created_at, updated_at`

func scanUser(row *sql.Row) (domain.User, error) {
	var (
		u        domain.User
		yandexID sql.NullString
	)
	err := row.Scan(&u.ID, &u.Phone, &u.FirstName, &u.LastName, &yandexID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	u.YandexID = mapNullStringPtr(yandexID)
	return u, nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	return scanUser(r.q.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id))
}

func (r *usersRepo) GetUserByPhone(ctx context.Context, phone string) (domain.User, error) {
	return scanUser(r.q.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE phone = ?`, phone))
}

func (r *usersRepo) GetUserByYandexID(ctx context.Context, yandexID string) (domain.User, error) {
	return scanUser(r.q.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE yandex_id = ?`, yandexID))
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO users (id, phone, first_name, last_name, yandex_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Phone, u.FirstName, u.LastName, mapOptionalString(u.YandexID), u.CreatedAt, u.UpdatedAt)
	if err != nil && isUniqueViolation(err) {
		return store.ErrAlreadyExists
	}
	return err
}

func (r *usersRepo) UpdateProfile(ctx context.Context, userID, firstName, lastName, phone string) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE users SET first_name = ?, last_name = ?, phone = ?, updated_at = ?
		WHERE id = ?`,
		firstName, lastName, phone, time.Now().UTC(), userID)
	if err != nil {
		if isUniqueViolation(err) {
			return store.ErrAlreadyExists
		}
		return err
	}
	return checkAffected(res)
}

func (r *usersRepo) UpdateName(ctx context.Context, userID, firstName, lastName string) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE users SET first_name = ?, last_name = ?, updated_at = ?
		WHERE id = ?`,
		firstName, lastName, time.Now().UTC(), userID)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

// isUniqueViolation sniffs the driver error text; modernc.org/sqlite does not
// export typed constraint errors.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
