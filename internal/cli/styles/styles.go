package styles

import (
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/quotebank/internal/config/colors"
	"github.com/thenoetrevino/quotebank/internal/models"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 80

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Author:", "Source:"
	ValueStyle    lipgloss.Style // For field values

	// Status styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
)

func init() {
	Init(*colors.Default())
}

// Init initializes all CLI styles with the given color scheme
func Init(scheme colors.ColorScheme) {
	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.Accent)).
		Padding(1, 2).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Normal))

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Create))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.ErrorFg)).
		Background(lipgloss.Color(scheme.ErrorBg)).
		Padding(0, 1)
}

// RenderQuoteCard renders every field of a quote in a bordered card
func RenderQuoteCard(q *models.Quote) string {
	field := func(label, value string) string {
		if value == "" {
			value = SubtitleStyle.Render("-")
		} else {
			value = ValueStyle.Render(value)
		}
		return LabelStyle.Render(label+":") + " " + value
	}

	lines := []string{
		TitleStyle.Render("“" + q.Quote + "”"),
		"",
		field("ID", strconv.Itoa(q.ID)),
		field("Author", q.Author),
		field("Category", q.Category),
		field("Source", q.Source),
		field("Created", q.CreatedAt.Local().Format(models.ExportTimeLayout)),
	}
	return CardStyle.Render(strings.Join(lines, "\n"))
}
