// Package auth implements the shared-secret login gate. The flag lives in the
// local key-value store next to the annotations; it keeps casual visitors out
// and nothing more.
package auth

import (
	"crypto/subtle"
	"fmt"
	"log/slog"
	"strings"

	"github.com/DjordjeVuckovic/translation-review/internal/apperr"
	"github.com/DjordjeVuckovic/translation-review/internal/storage/local"
	"github.com/labstack/echo/v4"
)

type Identity struct {
	Authenticated bool   `json:"authenticated"`
	User          string `json:"user,omitempty"`
}

type Gate struct {
	kv     local.KV
	secret string
}

func NewGate(kv local.KV, secret string) *Gate {
	return &Gate{kv: kv, secret: secret}
}

// Login stores the auth flag and user name when password matches the secret.
// An empty secret disables the gate check and accepts any password.
func (g *Gate) Login(user, password string) (Identity, error) {
	user = strings.TrimSpace(user)
	if user == "" {
		return Identity{}, apperr.NewValidation("user is required")
	}
	if g.secret != "" && subtle.ConstantTimeCompare([]byte(password), []byte(g.secret)) != 1 {
		slog.Warn("Rejected login attempt", "user", user)
		return Identity{}, apperr.NewUnauthorized("invalid password")
	}

	if err := g.kv.Set(local.AuthKey, "true"); err != nil {
		return Identity{}, fmt.Errorf("failed to store auth flag: %w", err)
	}
	if err := g.kv.Set(local.UserKey, user); err != nil {
		return Identity{}, fmt.Errorf("failed to store user: %w", err)
	}

	slog.Info("Reviewer logged in", "user", user)
	return Identity{Authenticated: true, User: user}, nil
}

func (g *Gate) Logout() error {
	if err := g.kv.Delete(local.AuthKey); err != nil {
		return fmt.Errorf("failed to clear auth flag: %w", err)
	}
	if err := g.kv.Delete(local.UserKey); err != nil {
		return fmt.Errorf("failed to clear user: %w", err)
	}
	return nil
}

// Current reads the stored identity. Unreadable storage counts as logged out.
func (g *Gate) Current() Identity {
	flag, ok, err := g.kv.Get(local.AuthKey)
	if err != nil || !ok || flag != "true" {
		return Identity{}
	}
	user, _, err := g.kv.Get(local.UserKey)
	if err != nil {
		user = ""
	}
	return Identity{Authenticated: true, User: user}
}

// Middleware rejects requests with 401 until someone logged in.
func (g *Gate) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !g.Current().Authenticated {
				return apperr.NewUnauthorized("login required")
			}
			return next(c)
		}
	}
}
