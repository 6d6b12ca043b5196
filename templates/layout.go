package templates

import (
	"github.com/justin-echternach/onewheel-blog/constants"

	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"
)

type LayoutProps struct {
	Title            string
	CurrentUserEmail string
}

func NavbarComponent(props LayoutProps) g.Node {
	return Nav(Class("nav"),
		Div(Class("nav-left"),
			Div(Class("brand"), A(Href("/posts"), g.Text(constants.APP_NAME))),
		),
		Div(Class("nav-links nav-right"),
			g.If(props.CurrentUserEmail == "",
				Div(
					A(Href("/signin"), g.Text("Sign In")),
				),
			),
			g.If(props.CurrentUserEmail != "",
				Div(Class("row"),
					Div(Class("col"), g.Textf("Signed in as %s", props.CurrentUserEmail)),
					Div(Class("col"),
						FormEl(Method("post"), Action("/logout"), Style("display: inline;"),
							Button(Type("submit"), Class("logout-link"), g.Text("Logout")),
						),
					),
				)),
		),
	)
}

func Layout(props LayoutProps, children ...g.Node) g.Node {
	return Doctype(
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				TitleEl(g.Text(props.Title)),
			),
			Body(
				Div(Class("container"), Style("margin-top: 1.5em;"),
					NavbarComponent(props),
					Main(
						g.Group(children),
					),
				),
			),
		),
	)
}
