package worldsdk

import (
	"context"
	"net/http"
)

// Settings returns the user's settings. A user who never saved anything
// still gets the full default object.
func (s *Session) Settings(ctx context.Context) (*SettingsResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/settings", nil)
	if err != nil {
		return nil, err
	}

	var out SettingsResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// SettingsPartial fetches the settings but decodes them field-wise, leaving
// anything absent from the response nil. Clients that merge remote settings
// into local state use this so a partial body never clobbers local values.
func (s *Session) SettingsPartial(ctx context.Context) (*SettingsUpdateRequest, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/settings", nil)
	if err != nil {
		return nil, err
	}

	var out SettingsUpdateRequest
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateSettings applies a partial update. Nil fields are omitted from the
// request body and keep their stored values server-side.
func (s *Session) UpdateSettings(ctx context.Context, update SettingsUpdateRequest) error {
	resp, err := s.doAuthRequest(ctx, http.MethodPut, "/v1/settings", update)
	if err != nil {
		return err
	}

	var out SuccessResponse
	return decodeJSON(resp, &out, http.StatusOK)
}
