package templates

import (
	"github.com/justin-echternach/onewheel-blog/database"

	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"
)

// PostIndexPage is the public listing: one link per post, plus an admin
// link for signed-in admins.
func PostIndexPage(posts []database.PostSummary, isAdmin bool) g.Node {
	return Div(
		H1(g.Text("Posts")),
		g.If(isAdmin,
			A(Href("/posts/admin"), Class("text-red-600 underline"), g.Text("Admin")),
		),
		Ul(
			g.Group(g.Map(posts, func(post database.PostSummary) g.Node {
				return Li(
					A(Href("/posts/"+post.Slug), Class("text-blue-600 underline"), g.Text(post.Title)),
				)
			})),
		),
	)
}

func PostDetailPage(post *database.Post) g.Node {
	return Article(
		H1(g.Text(post.Title)),
		MarkdownComponent(post.Markdown),
	)
}

// AdminShellPage renders the admin listing with a nested detail region.
// The nested node is the editor, an error panel, or nil on the bare
// listing route.
func AdminShellPage(posts []database.PostSummary, nested g.Node) g.Node {
	return Div(Class("mx-auto max-w-4xl"),
		H1(Class("my-6 border-b-2 text-center text-3xl"), g.Text("Blog Admin")),
		Div(Class("grid grid-cols-4 gap-6"),
			Nav(Class("col-span-4 md:col-span-1"),
				Ul(
					g.Group(g.Map(posts, func(post database.PostSummary) g.Node {
						return Li(
							A(Href("/posts/admin/"+post.Slug), Class("text-blue-600 underline"), g.Text(post.Title)),
						)
					})),
				),
				P(A(Href("/posts/admin/new"), g.Text("+ New Post"))),
			),
			Main(Class("col-span-4 md:col-span-3"),
				g.If(nested != nil, nested),
			),
		),
	)
}
