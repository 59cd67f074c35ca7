package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/timeworld/internal/server/domain"
)

type citiesRepo struct {
	q querier
}

const cityColumns = `c.id, c.name, co.name, c.timezone, c.is_capital, c.latitude, c.longitude`

const cityFrom = ` FROM cities c JOIN countries co ON co.id = c.country_id `

// Capitals float to the top of every listing, then alphabetical.
const cityOrder = ` ORDER BY c.is_capital DESC, c.name `

func scanCities(rows *sql.Rows) ([]domain.City, error) {
	defer rows.Close()

	var out []domain.City
	for rows.Next() {
		var (
			c        domain.City
			lat, lon sql.NullFloat64
		)
		if err := rows.Scan(&c.ID, &c.Name, &c.Country, &c.Timezone, &c.IsCapital, &lat, &lon); err != nil {
			return nil, err
		}
		c.Latitude = mapNullFloatPtr(lat)
		c.Longitude = mapNullFloatPtr(lon)
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *citiesRepo) GetCityByID(ctx context.Context, id int64) (domain.City, error) {
	var (
		c        domain.City
		lat, lon sql.NullFloat64
	)
	err := r.q.QueryRowContext(ctx,
		`SELECT `+cityColumns+cityFrom+`WHERE c.id = ?`, id).
		Scan(&c.ID, &c.Name, &c.Country, &c.Timezone, &c.IsCapital, &lat, &lon)
	if err != nil {
		return domain.City{}, mapNotFound(err)
	}
	c.Latitude = mapNullFloatPtr(lat)
	c.Longitude = mapNullFloatPtr(lon)
	return c, nil
}

func (r *citiesRepo) SearchCities(ctx context.Context, query string) ([]domain.City, error) {
	pattern := "%" + query + "%"
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+cityColumns+cityFrom+`
		WHERE c.name LIKE ? COLLATE NOCASE OR co.name LIKE ? COLLATE NOCASE`+cityOrder,
		pattern, pattern)
	if err != nil {
		return nil, err
	}
	return scanCities(rows)
}

func (r *citiesRepo) CitiesByCountry(ctx context.Context, country string) ([]domain.City, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+cityColumns+cityFrom+`
		WHERE co.name = ? COLLATE NOCASE`+cityOrder,
		country)
	if err != nil {
		return nil, err
	}
	return scanCities(rows)
}

func (r *citiesRepo) ListCities(ctx context.Context, limit int) ([]domain.City, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+cityColumns+cityFrom+cityOrder+`LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	return scanCities(rows)
}
