package templates

import (
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	g "github.com/maragudk/gomponents"
)

// MarkdownComponent renders raw markdown to HTML.
func MarkdownComponent(markdownStr string) g.Node {
	extensions := parser.CommonExtensions | parser.AutoHeadingIDs
	p := parser.NewWithExtensions(extensions)
	doc := p.Parse([]byte(markdownStr))

	htmlFlags := html.CommonFlags | html.HrefTargetBlank
	opts := html.RendererOptions{Flags: htmlFlags}
	renderer := html.NewRenderer(opts)

	return g.Raw(string(markdown.Render(doc, renderer)))
}
