package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/timeworld/internal/server/domain"
)

type favoritesRepo struct {
	q querier
}

func (r *favoritesRepo) AddFavorite(ctx context.Context, userID string, cityID int64) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO user_favorites (user_id, city_id, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT (user_id, city_id) DO NOTHING`,
		userID, cityID, time.Now().UTC())
	return err
}

func (r *favoritesRepo) RemoveFavorite(ctx context.Context, userID string, cityID int64) error {
	_, err := r.q.ExecContext(ctx,
		`DELETE FROM user_favorites WHERE user_id = ? AND city_id = ?`,
		userID, cityID)
	return err
}

func (r *favoritesRepo) ListFavorites(ctx context.Context, userID string) ([]domain.City, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+cityColumns+cityFrom+`
		JOIN user_favorites f ON f.city_id = c.id
		WHERE f.user_id = ?`+cityOrder,
		userID)
	if err != nil {
		return nil, err
	}
	return scanCities(rows)
}
