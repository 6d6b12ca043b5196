package site

import (
	"errors"
	"net/http"

	"github.com/justin-echternach/onewheel-blog/constants"
	"github.com/justin-echternach/onewheel-blog/database"
	"github.com/justin-echternach/onewheel-blog/templates"

	"github.com/go-chi/chi/v5"
	g "github.com/maragudk/gomponents"
)

// PublicPostList renders the public index: a link per post, plus an admin
// link when the requester happens to be the admin. Being signed out never
// blocks this page.
func (s *Site) PublicPostList(w http.ResponseWriter, r *http.Request) {
	posts, err := s.Posts.ListSummaries()
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	isAdmin := s.isAdmin(signedInUserOrNil(r))
	s.renderPage(w, r, "Posts", http.StatusOK, templates.PostIndexPage(posts, isAdmin))
}

// PublicViewPost renders a single post with its markdown converted to HTML.
func (s *Site) PublicViewPost(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	post, err := s.Posts.Get(slug)
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	if post == nil {
		s.renderPostNotFound(w, r, slug)
		return
	}

	s.renderPage(w, r, post.Title, http.StatusOK, templates.PostDetailPage(post))
}

// AdminPostList renders the admin shell with an empty nested region.
func (s *Site) AdminPostList(w http.ResponseWriter, r *http.Request) {
	posts, err := s.Posts.ListSummaries()
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	s.renderPage(w, r, "Blog Admin", http.StatusOK, templates.AdminShellPage(posts, nil))
}

// EditPost is the editor loader: the literal slug "new" yields an empty
// form, anything else loads the addressed post. A missing post renders the
// 404 boundary inside the admin shell.
func (s *Site) EditPost(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		s.renderError(w, r, errors.New("slug is required"))
		return
	}

	posts, err := s.Posts.ListSummaries()
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	if slug == constants.NEW_POST_SLUG {
		s.renderAdminShell(w, r, "Blog Admin", http.StatusOK, posts,
			templates.EditorFormComponent(templates.EditorFormProps{IsNew: true}))
		return
	}

	post, err := s.Posts.Get(slug)
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	if post == nil {
		s.renderAdminShell(w, r, "Post Not Found", http.StatusNotFound, posts,
			templates.PostNotFoundPanel(slug))
		return
	}

	s.renderAdminShell(w, r, "Blog Admin", http.StatusOK, posts,
		templates.EditorFormComponent(templates.EditorFormProps{
			Title:    post.Title,
			Slug:     post.Slug,
			Markdown: post.Markdown,
		}))
}

func (s *Site) renderAdminShell(w http.ResponseWriter, r *http.Request, title string, status int, posts []database.PostSummary, nested g.Node) {
	s.renderPage(w, r, title, status, templates.AdminShellPage(posts, nested))
}
