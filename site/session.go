package site

import (
	"crypto/rand"
	"encoding/base64"
	"net/http"

	"github.com/justin-echternach/onewheel-blog/database"
)

type contextKey string

const authenticatedUserKey = contextKey("authenticated_user")

const AuthTokenCookieName = "authenticated_user_token"

func generateAuthToken() (string, error) {
	const tokenLength = 32
	tokenBytes := make([]byte, tokenLength)
	_, err := rand.Read(tokenBytes)
	if err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(tokenBytes), nil
}

func signedInUserOrNil(r *http.Request) *database.User {
	user, _ := r.Context().Value(authenticatedUserKey).(*database.User)
	return user
}

// isAdmin reports whether the signed-in user is the configured admin.
func (s *Site) isAdmin(user *database.User) bool {
	return user != nil && user.Email == s.Config.AdminEmail
}
