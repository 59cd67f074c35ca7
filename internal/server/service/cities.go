package service

import (
	"context"
	"errors"
	"strings"

	"github.com/aussiebroadwan/timeworld/internal/server/domain"
	"github.com/aussiebroadwan/timeworld/internal/server/store"
)

// DefaultCityLimit caps the unfiltered city listing.
const DefaultCityLimit = 50

var ErrCityNotFound = errors.New("city_not_found")

type CityService struct {
	Store store.Store
}

// List serves the cities endpoint: search wins over country, and with
// neither the default capped listing is returned.
func (s *CityService) List(ctx context.Context, search, country string) ([]domain.City, error) {
	search = strings.TrimSpace(search)
	country = strings.TrimSpace(country)

	switch {
	case search != "":
		return s.Store.Cities().SearchCities(ctx, search)
	case country != "":
		return s.Store.Cities().CitiesByCountry(ctx, country)
	default:
		return s.Store.Cities().ListCities(ctx, DefaultCityLimit)
	}
}

// AddFavorite records a favorite. Unknown city ids are rejected; a repeat
// add is a silent no-op.
func (s *CityService) AddFavorite(ctx context.Context, userID string, cityID int64) error {
	if _, err := s.Store.Cities().GetCityByID(ctx, cityID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrCityNotFound
		}
		return err
	}
	return s.Store.Favorites().AddFavorite(ctx, userID, cityID)
}

// RemoveFavorite deletes a favorite; removing one that is absent is a no-op.
func (s *CityService) RemoveFavorite(ctx context.Context, userID string, cityID int64) error {
	return s.Store.Favorites().RemoveFavorite(ctx, userID, cityID)
}

// Favorites lists the user's favorite cities, capital-first.
func (s *CityService) Favorites(ctx context.Context, userID string) ([]domain.City, error) {
	return s.Store.Favorites().ListFavorites(ctx, userID)
}
