package components

import (
	"strings"
	"time"

	"charm.land/bubbles/v2/table"
	"charm.land/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"
	"github.com/thenoetrevino/quotebank/internal/models"
)

// TruncatePreview shortens text to limit runes and appends an ellipsis.
// Text at or under the limit is returned unchanged.
func TruncatePreview(text string, limit int) string {
	if !IsTruncated(text, limit) {
		return text
	}
	return string([]rune(text)[:limit]) + models.PreviewEllipsis
}

// IsTruncated reports whether TruncatePreview would shorten text.
func IsTruncated(text string, limit int) bool {
	if limit <= 0 {
		return false
	}
	return len([]rune(text)) > limit
}

// FormatDate renders a timestamp for the Date column
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format(DateLayout)
}

// singleLine collapses runs of whitespace so a cell stays on one row
func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// QuoteColumns sizes the table columns to fit width
func QuoteColumns(width int) []table.Column {
	fixed := authorColumnWidth + categoryColumnWidth + sourceColumnWidth + dateColumnWidth
	chrome := 5*tableCellPadding + 2 // cell padding plus the table box border
	quoteWidth := max(width-fixed-chrome, minQuoteColumnWidth)

	return []table.Column{
		{Title: "Quote", Width: quoteWidth},
		{Title: "Author", Width: authorColumnWidth},
		{Title: "Category", Width: categoryColumnWidth},
		{Title: "Source", Width: sourceColumnWidth},
		{Title: "Date", Width: dateColumnWidth},
	}
}

// QuoteRows builds one table row per quote, with the quote text truncated to previewLength
func QuoteRows(quotes []*models.Quote, previewLength int) []table.Row {
	rows := make([]table.Row, 0, len(quotes))
	for _, q := range quotes {
		rows = append(rows, table.Row{
			singleLine(TruncatePreview(q.Quote, previewLength)),
			singleLine(q.Author),
			singleLine(q.Category),
			singleLine(q.Source),
			FormatDate(q.CreatedAt),
		})
	}
	return rows
}

// SelectionPreviewProps configures RenderSelectionPreview
type SelectionPreviewProps struct {
	Quote         *models.Quote
	PreviewLength int
	Width         int
	Height        int
}

// RenderSelectionPreview shows the full text of the selected quote when the
// table only holds a truncated preview. Otherwise it renders a hint line.
func RenderSelectionPreview(props SelectionPreviewProps) string {
	innerWidth := max(props.Width-4, 10) // border + padding
	box := PreviewBoxStyle.Width(props.Width - 2)

	if props.Quote == nil || !IsTruncated(props.Quote.Quote, props.PreviewLength) {
		hint := SubtleStyle.Render("enter: view  m: menu  a: new  /: search  ?: help")
		return box.Render(hint)
	}

	header := LabelStyle.Render(displayAuthor(props.Quote.Author))
	body := wordwrap.String(props.Quote.Quote, innerWidth)

	lines := strings.Split(body, "\n")
	if props.Height > 1 && len(lines) > props.Height-1 {
		lines = lines[:props.Height-1]
		lines[len(lines)-1] += models.PreviewEllipsis
	}

	return box.Render(lipgloss.JoinVertical(lipgloss.Left, header, strings.Join(lines, "\n")))
}

func displayAuthor(author string) string {
	if author == "" {
		return unknownAuthor
	}
	return author
}
