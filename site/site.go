package site

import (
	"log"
	"net/http"

	"github.com/justin-echternach/onewheel-blog/config"
	"github.com/justin-echternach/onewheel-blog/database"
	"github.com/justin-echternach/onewheel-blog/templates"

	g "github.com/maragudk/gomponents"
	"gorm.io/gorm"
)

// Site carries the stores and configuration every handler needs. Handlers
// are methods on it; there is no package-level state.
type Site struct {
	Config *config.Config
	Posts  *database.PostStore
	Users  *database.UserStore
}

func New(cfg *config.Config, db *gorm.DB) *Site {
	return &Site{
		Config: cfg,
		Posts:  database.NewPostStore(db),
		Users:  database.NewUserStore(db),
	}
}

func (s *Site) renderPage(w http.ResponseWriter, r *http.Request, title string, status int, body g.Node) {
	props := templates.LayoutProps{Title: title}
	if user := signedInUserOrNil(r); user != nil {
		props.CurrentUserEmail = user.Email
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := templates.Layout(props, body).Render(w); err != nil {
		log.Printf("Page render error: %v", err)
	}
}
