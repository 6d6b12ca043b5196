package templates

import (
	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"
)

func SignInPage(errorMessage string) g.Node {
	return Div(
		H1(g.Text("Sign In")),
		g.If(errorMessage != "",
			P(Class("text-red-500"), g.Text(errorMessage)),
		),
		FormEl(Method("post"), Action("/signin"),
			P(
				Label(
					g.Text("Email: "),
					Input(Type("email"), Name("email"), Class(inputClassName)),
				),
			),
			P(
				Label(
					g.Text("Password: "),
					Input(Type("password"), Name("password"), Class(inputClassName)),
				),
			),
			Button(Type("submit"), Class("bg-blue-500 text-white px-4 py-2 rounded"), g.Text("Sign In")),
		),
	)
}
