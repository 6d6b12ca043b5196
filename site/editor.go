package site

import (
	"errors"
	"net/http"

	"github.com/justin-echternach/onewheel-blog/constants"
	"github.com/justin-echternach/onewheel-blog/templates"

	"github.com/go-chi/chi/v5"
)

// editorAction is the parsed form of an editor submission. Each variant
// carries only the fields its branch needs.
type editorAction interface {
	isEditorAction()
}

// deleteAction targets the post addressed by the route slug.
type deleteAction struct{}

// saveAction carries the submitted fields for a create or an update.
type saveAction struct {
	title    string
	slug     string
	markdown string
}

func (deleteAction) isEditorAction() {}
func (saveAction) isEditorAction()   {}

func parseEditorAction(r *http.Request) editorAction {
	if r.FormValue("intent") == "delete" {
		return deleteAction{}
	}
	return saveAction{
		title:    r.FormValue("title"),
		slug:     r.FormValue("slug"),
		markdown: r.FormValue("markdown"),
	}
}

// fieldErrors holds one message per form field, empty when the field is
// valid.
type fieldErrors struct {
	Title    string
	Slug     string
	Markdown string
}

func (e fieldErrors) any() bool {
	return e.Title != "" || e.Slug != "" || e.Markdown != ""
}

func (a saveAction) validate() fieldErrors {
	var errs fieldErrors
	if a.title == "" {
		errs.Title = "Title is required"
	}
	if a.slug == "" {
		errs.Slug = "Slug is required"
	}
	if a.markdown == "" {
		errs.Markdown = "Markdown is required"
	}
	return errs
}

// SubmitPost is the editor action. It dispatches on the parsed action
// variant: delete removes the post at the route slug; save validates the
// three fields, then creates (route slug "new") or updates. Updates are
// keyed by the submitted slug field, not the route slug, so an edit that
// changes the slug targets the row matching the changed value.
func (s *Site) SubmitPost(w http.ResponseWriter, r *http.Request) {
	routeSlug := chi.URLParam(r, "slug")
	if routeSlug == "" {
		s.renderError(w, r, errors.New("slug is required"))
		return
	}

	if err := r.ParseForm(); err != nil {
		s.renderError(w, r, err)
		return
	}

	switch action := parseEditorAction(r).(type) {
	case deleteAction:
		if err := s.Posts.Delete(routeSlug); err != nil {
			s.renderError(w, r, err)
			return
		}

	case saveAction:
		if errs := action.validate(); errs.any() {
			s.renderEditorWithErrors(w, r, routeSlug, action, errs)
			return
		}

		var err error
		if routeSlug == constants.NEW_POST_SLUG {
			err = s.Posts.Create(action.title, action.slug, action.markdown)
		} else {
			err = s.Posts.Update(action.slug, action.title, action.slug, action.markdown)
		}
		if err != nil {
			s.renderError(w, r, err)
			return
		}
	}

	http.Redirect(w, r, "/posts/admin", http.StatusSeeOther)
}

// renderEditorWithErrors re-renders the form with inline per-field
// messages. Nothing has been persisted at this point.
func (s *Site) renderEditorWithErrors(w http.ResponseWriter, r *http.Request, routeSlug string, action saveAction, errs fieldErrors) {
	posts, err := s.Posts.ListSummaries()
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	s.renderAdminShell(w, r, "Blog Admin", http.StatusOK, posts,
		templates.EditorFormComponent(templates.EditorFormProps{
			IsNew:         routeSlug == constants.NEW_POST_SLUG,
			Title:         action.title,
			Slug:          action.slug,
			Markdown:      action.markdown,
			TitleError:    errs.Title,
			SlugError:     errs.Slug,
			MarkdownError: errs.Markdown,
		}))
}
