// Package auth exchanges credentials for a bearer token and feeds the
// session store. The token itself is opaque to the console; the API is
// the only authority on it.
package auth

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/Muhammad-true/mm-shop-admin/internal/api"
	"github.com/Muhammad-true/mm-shop-admin/internal/session"
	"github.com/Muhammad-true/mm-shop-admin/internal/shared/apperr"
)

type Service struct {
	client   *api.Client
	sessions *session.Store
	logger   *slog.Logger
	now      func() time.Time
}

func NewService(client *api.Client, sessions *session.Store, logger *slog.Logger) *Service {
	return &Service{client: client, sessions: sessions, logger: logger, now: time.Now}
}

// WithClock overrides the clock (tests).
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type loginData struct {
	Token string          `json:"token"`
	Role  string          `json:"role"`
	User  json.RawMessage `json:"user"`
}

// Login exchanges credentials for a session. On success all three
// session fields are established together and the user payload is
// cached for the header.
func (s *Service) Login(ctx context.Context, email, password string) (User, error) {
	body := map[string]string{"email": email, "password": password}
	raw, err := s.client.Request(ctx, http.MethodPost, "/api/auth/login", body)
	if err != nil {
		return User{}, err
	}

	var data loginData
	if err := api.DecodeObject(raw, &data); err != nil {
		return User{}, err
	}

	var user User
	if len(data.User) > 0 {
		_ = json.Unmarshal(data.User, &user)
	}

	roleName := data.Role
	if roleName == "" {
		roleName = user.Role
	}
	role := session.Role(roleName)
	if data.Token == "" || !role.Valid() {
		return User{}, apperr.Wrap(apperr.APIErr(0, "Login response is missing token or role."))
	}

	now := s.now()
	if err := s.sessions.Establish(data.Token, role, now); err != nil {
		return User{}, apperr.Wrap(err)
	}
	if len(data.User) > 0 {
		s.sessions.SaveProfile(string(data.User))
	}

	if exp, ok := session.TokenExpiry(data.Token); ok && exp.Before(now.Add(session.IdleWindow)) {
		s.logger.Warn("token expires before idle window",
			slog.Time("token_exp", exp))
	}

	return user, nil
}

// Logout tells the API best-effort, then clears the local session
// regardless of the outcome.
func (s *Service) Logout(ctx context.Context) {
	_, _ = s.client.Request(ctx, http.MethodPost, "/api/auth/logout", nil)
	s.sessions.Clear()
}
