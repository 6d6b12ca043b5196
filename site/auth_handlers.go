package site

import (
	"net/http"

	"github.com/justin-echternach/onewheel-blog/templates"
)

// SignIn renders the sign-in form on GET and verifies credentials on POST.
// An already-signed-in user is sent straight to the public listing.
func (s *Site) SignIn(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		if signedInUserOrNil(r) != nil {
			http.Redirect(w, r, "/posts", http.StatusSeeOther)
			return
		}
		s.renderPage(w, r, "Sign In", http.StatusOK, templates.SignInPage(""))
		return
	}

	email := r.FormValue("email")
	password := r.FormValue("password")

	user, err := s.Users.VerifyCredentials(email, password)
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	if user == nil {
		s.renderPage(w, r, "Sign In", http.StatusUnauthorized, templates.SignInPage("Invalid email or password"))
		return
	}

	token, err := generateAuthToken()
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	if err := s.Users.SetSessionToken(user, token); err != nil {
		s.renderError(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     AuthTokenCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})

	http.Redirect(w, r, "/posts", http.StatusSeeOther)
}

func (s *Site) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:   AuthTokenCookieName,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
	http.Redirect(w, r, "/posts", http.StatusSeeOther)
}
