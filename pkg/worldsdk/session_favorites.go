package worldsdk

import (
	"context"
	"net/http"
	"strconv"
)

// AddFavorite marks a city as favorite. Adding one that is already marked
// is a server-side no-op.
func (s *Session) AddFavorite(ctx context.Context, cityID int64) error {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/cities/favorite", FavoriteRequest{CityID: cityID})
	if err != nil {
		return err
	}

	var out SuccessResponse
	return decodeJSON(resp, &out, http.StatusOK)
}

// RemoveFavorite unmarks a city. Removing one that was never marked is a
// no-op.
func (s *Session) RemoveFavorite(ctx context.Context, cityID int64) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, "/v1/cities/favorite/"+strconv.FormatInt(cityID, 10), nil)
	if err != nil {
		return err
	}

	var out SuccessResponse
	return decodeJSON(resp, &out, http.StatusOK)
}

// Favorites lists the user's favorite cities, capital-first.
func (s *Session) Favorites(ctx context.Context) ([]City, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/cities/favorites", nil)
	if err != nil {
		return nil, err
	}

	var out CitiesResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Cities, nil
}
