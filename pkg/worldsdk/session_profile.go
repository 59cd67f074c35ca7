package worldsdk

import (
	"context"
	"net/http"
)

// Profile returns the authenticated user. An ErrInvalidToken result means
// the stored token is dead and should be discarded.
func (s *Session) Profile(ctx context.Context) (*UserResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/profile", nil)
	if err != nil {
		return nil, err
	}

	var out UserResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile replaces the editable profile fields.
func (s *Session) UpdateProfile(ctx context.Context, firstName, lastName, phone string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodPut, "/v1/profile", ProfileUpdateRequest{
		FirstName: firstName,
		LastName:  lastName,
		Phone:     phone,
	})
	if err != nil {
		return err
	}

	var out SuccessResponse
	return decodeJSON(resp, &out, http.StatusOK)
}

// Logout revokes the session server-side. The local token is dead after
// this regardless of the call's outcome.
func (s *Session) Logout(ctx context.Context) error {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/auth/logout", nil)
	if err != nil {
		return err
	}

	var out SuccessResponse
	return decodeJSON(resp, &out, http.StatusOK)
}
