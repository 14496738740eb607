package components

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/thenoetrevino/quotebank/internal/models"
)

// Cache Glamour renderers by width to avoid expensive re-creation
var (
	rendererCache sync.Map // map[int]*glamour.TermRenderer
)

// getRenderer returns a cached renderer for the given width
func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// OriginLine returns "source - year", or "No source - year" when the source is blank
func OriginLine(q *models.Quote) string {
	source := q.Source
	if source == "" {
		source = noSource
	}
	if year := q.Year(); year > 0 {
		return fmt.Sprintf("%s - %d", source, year)
	}
	return source
}

// QuoteMarkdown builds the markdown document shown in the detail view
func QuoteMarkdown(q *models.Quote) string {
	var b strings.Builder

	b.WriteString("## Author\n\n")
	b.WriteString(displayAuthor(q.Author))
	b.WriteString("\n\n## Origin\n\n")
	b.WriteString(OriginLine(q))
	if q.Category != "" {
		b.WriteString("\n\n## Category\n\n")
		b.WriteString(q.Category)
	}
	b.WriteString("\n\n## Quote\n\n")
	for _, line := range strings.Split(q.Quote, "\n") {
		b.WriteString("> ")
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

// RenderQuoteDetail renders a quote as styled markdown wrapped to width.
// Falls back to the raw markdown if glamour fails.
func RenderQuoteDetail(q *models.Quote, width int) string {
	if q == nil {
		return SubtleStyle.Italic(true).Render("No quote selected")
	}

	md := QuoteMarkdown(q)
	renderer, err := getRenderer(width)
	if err != nil {
		return md
	}
	rendered, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimSpace(rendered)
}
