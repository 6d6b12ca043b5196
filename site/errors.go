package site

import (
	"log"
	"net/http"

	"github.com/justin-echternach/onewheel-blog/templates"
)

// renderPostNotFound is the 404 boundary for a missing slug.
func (s *Site) renderPostNotFound(w http.ResponseWriter, r *http.Request, slug string) {
	s.renderPage(w, r, "Post Not Found", http.StatusNotFound, templates.PostNotFoundPanel(slug))
}

// renderError is the last-resort boundary: log the error and show a
// generic failure panel carrying its message. Must never fail itself, so
// it renders static markup only.
func (s *Site) renderError(w http.ResponseWriter, r *http.Request, err error) {
	log.Printf("Unhandled error serving %s: %v", r.URL.Path, err)
	s.renderPage(w, r, "Something went wrong", http.StatusInternalServerError, templates.ErrorPanel(err.Error()))
}
