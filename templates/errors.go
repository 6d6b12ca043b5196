package templates

import (
	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"
)

// PostNotFoundPanel is the 404 fallback for a missing slug.
func PostNotFoundPanel(slug string) g.Node {
	return Div(g.Textf("Post Not Found - %s", slug))
}

// ErrorPanel is the last-resort fallback for everything else.
func ErrorPanel(message string) g.Node {
	return Div(Class("text-red-500"),
		g.Text("Oh no, something went wrong!"),
		Pre(g.Text(message)),
	)
}
