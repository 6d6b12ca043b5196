package site

import (
	"net/http"
	"time"

	"github.com/go-chi/cors"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
)

// Routes assembles the router and middleware stack. The admin group is
// gated declaratively with RequireAdmin so no handler inside it runs for a
// non-admin.
func (s *Site) Routes() *chi.Mux {
	r := chi.NewRouter()

	CORSMiddleware := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	})

	r.Use(CORSMiddleware.Handler)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(httprate.LimitByIP(100, time.Minute)) // general rate limiter for all routes (shared across all routes)
	r.Use(middleware.Recoverer)
	r.Use(s.WithUser)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/posts", http.StatusSeeOther)
	})

	r.HandleFunc("/signin", s.SignIn)
	r.Post("/logout", s.Logout)

	r.Route("/posts", func(r chi.Router) {
		r.Get("/", s.PublicPostList)

		r.With(s.RequireAdmin).Route("/admin", func(r chi.Router) {
			r.Get("/", s.AdminPostList)
			r.Get("/{slug}", s.EditPost)
			r.Post("/{slug}", s.SubmitPost)
		})

		r.Get("/{slug}", s.PublicViewPost)
	})

	return r
}
