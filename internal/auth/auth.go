// Package auth checks the organisers' HTTP Basic credentials.
package auth

import (
	"context"
	"crypto/subtle"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gdg-garage/wedding-rsvp/internal/config"
	"golang.org/x/crypto/bcrypt"
)

const Realm = "Bruiloft RSVP"

// SecurityScheme is the name of the OpenAPI security scheme for admin routes.
const SecurityScheme = "basicAuth"

type AuthHandler struct {
	username     string
	passwordHash []byte
}

func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		username:     cfg.AdminUsername,
		passwordHash: []byte(cfg.AdminPassword),
	}
}

// Check reports whether username and password belong to the admin.
func (h *AuthHandler) Check(username, password string) bool {
	if subtle.ConstantTimeCompare([]byte(username), []byte(h.username)) != 1 {
		return false
	}
	return bcrypt.CompareHashAndPassword(h.passwordHash, []byte(password)) == nil
}

// CheckRequest reports whether r carries valid admin credentials. Missing or
// malformed credentials are not an error: the caller is anonymous.
func (h *AuthHandler) CheckRequest(r *http.Request) bool {
	username, password, ok := r.BasicAuth()
	if !ok {
		return false
	}
	return h.Check(username, password)
}

// Authorize fails with 401 and a Basic challenge unless the request in ctx
// was authenticated as admin.
func (h *AuthHandler) Authorize(ctx context.Context) error {
	if IsAdmin(ctx) {
		return nil
	}
	return Unauthorized()
}

func Unauthorized() error {
	headers := http.Header{}
	headers.Set("WWW-Authenticate", `Basic realm="`+Realm+`", charset="UTF-8"`)
	return huma.ErrorWithHeaders(
		huma.Error401Unauthorized("Je moet inloggen om deze pagina te bekijken."),
		headers,
	)
}

// HashPassword returns the bcrypt hash to configure as ADMIN_PASSWORD.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
