package worldsdk

import (
	"context"
	"net/http"
	"net/url"
)

// Weather returns the current report for a city. The server never fails
// this call: with no upstream configured it serves a canned clear-sky
// report, so an error here means the service itself is unreachable.
func (c *Client) Weather(ctx context.Context, city string) (*WeatherResponse, error) {
	q := url.Values{"city": {city}}
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/weather?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	var out WeatherResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
