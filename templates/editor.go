package templates

import (
	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"
)

const inputClassName = "w-full rounded border border-gray-500 px-2 py-4"

// EditorFormProps carries the field values to prefill and one message per
// field, empty when the field is valid.
type EditorFormProps struct {
	IsNew    bool
	Title    string
	Slug     string
	Markdown string

	TitleError    string
	SlugError     string
	MarkdownError string
}

func fieldError(message string) g.Node {
	return g.If(message != "",
		Em(Class("text-red-500"), g.Text(message)),
	)
}

// EditorFormComponent is the single multi-purpose post form: create for new
// posts, update plus delete for existing ones. Submit buttons swap to an
// in-flight label and disable themselves while the submission is on the
// wire.
func EditorFormComponent(props EditorFormProps) g.Node {
	return FormEl(Method("post"),
		P(
			Label(
				g.Text("Post Title: "), fieldError(props.TitleError),
				Input(Type("text"), Name("title"), Class(inputClassName), Value(props.Title)),
			),
		),
		P(
			Label(
				g.Text("Post Slug: "), fieldError(props.SlugError),
				Input(Type("text"), Name("slug"), Class(inputClassName), Value(props.Slug)),
			),
		),
		P(
			Label(For("markdown"), g.Text("Markdown: "), fieldError(props.MarkdownError)),
			Textarea(Name("markdown"), ID("markdown"), Class(inputClassName+" font-mono"), g.Text(props.Markdown)),
		),
		Div(Class("flex justify-end gap-4"),
			g.If(!props.IsNew,
				Button(Type("submit"), Name("intent"), Value("delete"),
					Class("bg-red-500 text-white px-4 py-2 rounded hover:bg-red-600"),
					g.Attr("data-pending-label", "Deleting..."),
					g.Text("Delete"),
				),
			),
			Button(Type("submit"), Name("intent"),
				g.If(props.IsNew, Value("create")),
				g.If(!props.IsNew, Value("update")),
				Class("bg-blue-500 text-white px-4 py-2 rounded hover:bg-blue-600"),
				g.If(props.IsNew, g.Attr("data-pending-label", "Creating...")),
				g.If(!props.IsNew, g.Attr("data-pending-label", "Updating...")),
				g.If(props.IsNew, g.Text("Create Post")),
				g.If(!props.IsNew, g.Text("Update")),
			),
		),
		pendingButtonScript(),
	)
}

// pendingButtonScript disables the clicked submit button and swaps in its
// in-flight label for the duration of the round trip.
func pendingButtonScript() g.Node {
	return Script(g.Raw(`
		(function () {
			var form = document.currentScript.closest('form');
			form.addEventListener('submit', function (event) {
				var button = event.submitter;
				if (button && button.dataset.pendingLabel) {
					button.textContent = button.dataset.pendingLabel;
					button.disabled = true;
				}
			});
		})()
	`))
}
