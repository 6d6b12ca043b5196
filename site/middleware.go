package site

import (
	"context"
	"net/http"
)

// WithUser resolves the session cookie to a user and stores it on the
// request context. Unauthenticated requests pass through untouched;
// invalid tokens get their cookie cleared.
func (s *Site) WithUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(AuthTokenCookieName)
		if err != nil || cookie.Value == "" {
			next.ServeHTTP(w, r)
			return
		}

		user, err := s.Users.GetBySessionToken(cookie.Value)
		if err != nil || user == nil {
			http.SetCookie(w, &http.Cookie{
				Name:   AuthTokenCookieName,
				Value:  "",
				Path:   "/",
				MaxAge: -1,
			})
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), authenticatedUserKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin gates a route group: anyone who is not the signed-in admin
// is redirected to the sign-in page before any handler runs.
func (s *Site) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.isAdmin(signedInUserOrNil(r)) {
			http.Redirect(w, r, "/signin", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}
