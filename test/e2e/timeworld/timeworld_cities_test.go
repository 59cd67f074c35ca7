package timeworld_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/timeworld/pkg/worldsdk"
)

func TestCityCatalogue(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := worldsdk.NewClient(baseURL)
	ctx := t.Context()

	cities, err := client.Cities(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, cities)

	// Capitals come first in every listing.
	sawNonCapital := false
	byName := map[string]worldsdk.City{}
	for _, c := range cities {
		if !c.IsCapital {
			sawNonCapital = true
		}
		require.False(t, sawNonCapital && c.IsCapital, "capital %s listed after a non-capital", c.Name)
		byName[c.Name] = c
	}

	// The parallel world entry ships with the seed data.
	parallel, ok := byName["Параллельный мир"]
	require.True(t, ok)
	require.Equal(t, "parallel", parallel.Timezone)
	require.Nil(t, parallel.Latitude)

	moscow, ok := byName["Москва"]
	require.True(t, ok)
	require.Equal(t, "Europe/Moscow", moscow.Timezone)
	require.True(t, moscow.IsCapital)
	require.NotNil(t, moscow.Latitude)

	// Search and country filters.
	found, err := client.SearchCities(ctx, "Токио")
	require.NoError(t, err)
	require.Len(t, found, 1)
	require.Equal(t, "Токио", found[0].Name)

	found, err = client.CitiesByCountry(ctx, "Россия")
	require.NoError(t, err)
	require.Len(t, found, 1)
	require.Equal(t, "Москва", found[0].Name)

	found, err = client.SearchCities(ctx, "Атлантида")
	require.NoError(t, err)
	require.Empty(t, found)
}

func TestFavoritesFlow(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := worldsdk.NewClient(baseURL)
	session := registerUser(t, client, "+79992345678")
	ctx := t.Context()

	favorites, err := session.Favorites(ctx)
	require.NoError(t, err)
	require.Empty(t, favorites)

	cities, err := client.Cities(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, cities)
	first := cities[0]

	require.NoError(t, session.AddFavorite(ctx, first.ID))
	require.NoError(t, session.AddFavorite(ctx, first.ID)) // repeat add is a no-op

	favorites, err = session.Favorites(ctx)
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	require.Equal(t, first.ID, favorites[0].ID)

	require.NoError(t, session.RemoveFavorite(ctx, first.ID))
	favorites, err = session.Favorites(ctx)
	require.NoError(t, err)
	require.Empty(t, favorites)

	// Favorites are per user.
	other := registerUser(t, client, "+79992345679")
	require.NoError(t, session.AddFavorite(ctx, first.ID))
	otherFavorites, err := other.Favorites(ctx)
	require.NoError(t, err)
	require.Empty(t, otherFavorites)
}

func TestFavoriteUnknownCity(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := worldsdk.NewClient(baseURL)
	session := registerUser(t, client, "+79992345680")

	err := session.AddFavorite(t.Context(), 999999)
	assertAPIError(t, err, worldsdk.ErrorCodeNotFound)
}

func TestFavoritesRequireAuth(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := worldsdk.NewClient(baseURL)
	err := client.NewSession("garbage").AddFavorite(t.Context(), 1)
	assertAPIError(t, err, worldsdk.ErrorCodeInvalidToken)
}
