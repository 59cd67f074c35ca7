package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/aussiebroadwan/timeworld/internal/server/domain"
	"github.com/aussiebroadwan/timeworld/internal/server/store"
	"github.com/aussiebroadwan/timeworld/pkg/idx"
	"github.com/aussiebroadwan/timeworld/pkg/slogx"
)

var (
	ErrUserNotFound   = errors.New("user_not_found")
	ErrInvalidRequest = errors.New("invalid_request")
)

// AuthService implements phone-presence registration and login plus the
// Yandex OAuth callback. There are no passwords: possession of the phone
// number is the whole credential, matching the product's trust model.
type AuthService struct {
	Store  store.Store
	Tokens *TokenService
	Yandex *YandexClient
}

// Register upserts a user by phone, ensures a default settings row exists
// and mints a fresh session. Re-registering an existing phone just updates
// the name fields.
func (s *AuthService) Register(ctx context.Context, phone, firstName, lastName string) (token string, userID string, err error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return "", "", ErrInvalidRequest
	}

	l := slogx.FromContext(ctx)

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		user, err := tx.Users().GetUserByPhone(ctx, phone)
		switch {
		case err == nil:
			userID = user.ID
			if err := tx.Users().UpdateName(ctx, user.ID, firstName, lastName); err != nil {
				return err
			}
		case errors.Is(err, store.ErrNotFound):
			now := time.Now().UTC()
			user = domain.User{
				ID:        idx.New().String(),
				Phone:     phone,
				FirstName: firstName,
				LastName:  lastName,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := tx.Users().CreateUser(ctx, user); err != nil {
				return err
			}
			userID = user.ID
		default:
			return err
		}

		if err := tx.Settings().CreateDefaultSettings(ctx, userID); err != nil {
			return err
		}

		token, err = s.Tokens.MintSession(ctx, tx, userID)
		return err
	})
	if err != nil {
		return "", "", err
	}

	l.Info("user registered", "user_id", userID)
	return token, userID, nil
}

// Login mints a session for an existing phone. Unknown phones are an error,
// the caller maps it to 404 so the client can steer users to registration.
func (s *AuthService) Login(ctx context.Context, phone string) (token string, userID string, err error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return "", "", ErrInvalidRequest
	}

	user, err := s.Store.Users().GetUserByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", "", ErrUserNotFound
		}
		return "", "", err
	}

	token, err = s.Tokens.MintSession(ctx, s.Store, user.ID)
	if err != nil {
		return "", "", err
	}

	return token, user.ID, nil
}

// YandexCallback completes the OAuth code flow: exchange the code, fetch the
// profile, upsert by yandex id and mint a session. Users without a phone on
// their Yandex account get a synthetic unique placeholder.
func (s *AuthService) YandexCallback(ctx context.Context, code string) (token string, userID string, err error) {
	if strings.TrimSpace(code) == "" {
		return "", "", ErrInvalidRequest
	}

	info, err := s.Yandex.Exchange(ctx, code)
	if err != nil {
		return "", "", err
	}

	l := slogx.FromContext(ctx)

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		user, err := tx.Users().GetUserByYandexID(ctx, info.ID)
		switch {
		case err == nil:
			userID = user.ID
			if err := tx.Users().UpdateName(ctx, user.ID, info.FirstName, info.LastName); err != nil {
				return err
			}
		case errors.Is(err, store.ErrNotFound):
			phone := info.Phone
			if phone == "" {
				phone = "yandex_" + info.ID
			}
			now := time.Now().UTC()
			yandexID := info.ID
			user = domain.User{
				ID:        idx.New().String(),
				Phone:     phone,
				FirstName: info.FirstName,
				LastName:  info.LastName,
				YandexID:  &yandexID,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := tx.Users().CreateUser(ctx, user); err != nil {
				return err
			}
			userID = user.ID
		default:
			return err
		}

		if err := tx.Settings().CreateDefaultSettings(ctx, userID); err != nil {
			return err
		}

		token, err = s.Tokens.MintSession(ctx, tx, userID)
		return err
	})
	if err != nil {
		return "", "", err
	}

	l.Info("yandex login", "user_id", userID)
	return token, userID, nil
}

// Profile returns the user behind an authenticated request.
func (s *AuthService) Profile(ctx context.Context, userID string) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, userID)
}

// UpdateProfile replaces the editable profile fields.
func (s *AuthService) UpdateProfile(ctx context.Context, userID, firstName, lastName, phone string) error {
	if strings.TrimSpace(phone) == "" {
		return ErrInvalidRequest
	}
	return s.Store.Users().UpdateProfile(ctx, userID, firstName, lastName, phone)
}
