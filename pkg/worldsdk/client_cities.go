package worldsdk

import (
	"context"
	"net/http"
	"net/url"
)

// Cities returns the default catalogue listing (capped server-side),
// ordered capital-first then by name.
func (c *Client) Cities(ctx context.Context) ([]City, error) {
	return c.listCities(ctx, nil)
}

// SearchCities matches the query against city and country names,
// case-insensitively.
func (c *Client) SearchCities(ctx context.Context, query string) ([]City, error) {
	return c.listCities(ctx, url.Values{"search": {query}})
}

// CitiesByCountry returns every city of the named country.
func (c *Client) CitiesByCountry(ctx context.Context, country string) ([]City, error) {
	return c.listCities(ctx, url.Values{"country": {country}})
}

func (c *Client) listCities(ctx context.Context, q url.Values) ([]City, error) {
	path := "/v1/cities"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	resp, err := c.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var out CitiesResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Cities, nil
}
