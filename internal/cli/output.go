package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/thenoetrevino/quotebank/internal/cli/styles"
	"github.com/thenoetrevino/quotebank/internal/models"
)

// listPreviewLength truncates quotes in human-readable listings
const listPreviewLength = 60

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool

	// Out and Err default to os.Stdout and os.Stderr
	Out io.Writer
	Err io.Writer
}

func (f *OutputFormatter) out() io.Writer {
	if f.Out != nil {
		return f.Out
	}
	return os.Stdout
}

func (f *OutputFormatter) errOut() io.Writer {
	if f.Err != nil {
		return f.Err
	}
	return os.Stderr
}

// Quote outputs a single quote. message is the human-readable headline.
func (f *OutputFormatter) Quote(q *models.Quote, message string) error {
	if f.Quiet {
		_, err := fmt.Fprintf(f.out(), "%d\n", q.GetID())
		return err
	}

	if f.JSON {
		return f.encode(map[string]any{
			"success": true,
			"quote":   q,
		})
	}

	if message != "" {
		if _, err := fmt.Fprintln(f.out(), styles.SuccessStyle.Render(message)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(f.out(), styles.RenderQuoteCard(q))
	return err
}

// Quotes outputs a list of quotes
func (f *OutputFormatter) Quotes(quotes []*models.Quote) error {
	if f.Quiet {
		for _, q := range quotes {
			if _, err := fmt.Fprintf(f.out(), "%d\n", q.ID); err != nil {
				return err
			}
		}
		return nil
	}

	if f.JSON {
		if quotes == nil {
			quotes = []*models.Quote{}
		}
		return f.encode(map[string]any{
			"success": true,
			"count":   len(quotes),
			"quotes":  quotes,
		})
	}

	if len(quotes) == 0 {
		_, err := fmt.Fprintln(f.out(), "No quotes found")
		return err
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styles.SubtitleStyle).
		Headers("ID", "Quote", "Author", "Category", "Date")
	for _, q := range quotes {
		t.Row(
			fmt.Sprintf("%d", q.ID),
			preview(q.Quote, listPreviewLength),
			q.Author,
			q.Category,
			q.CreatedAt.Local().Format("2006-01-02"),
		)
	}

	_, err := fmt.Fprintf(f.out(), "%s\n%d quotes\n", t.Render(), len(quotes))
	return err
}

// Message outputs a confirmation that has no quote payload, such as a delete or export.
// In quiet mode nothing is printed.
func (f *OutputFormatter) Message(message string, fields map[string]any) error {
	if f.Quiet {
		return nil
	}

	if f.JSON {
		payload := map[string]any{
			"success": true,
			"message": message,
		}
		for k, v := range fields {
			payload[k] = v
		}
		return f.encode(payload)
	}

	_, err := fmt.Fprintln(f.out(), styles.SuccessStyle.Render(message))
	return err
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return f.encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	// Human-readable error
	fmt.Fprintf(f.errOut(), "%s %s\n", styles.ErrorStyle.Render("Error"), message)
	if suggestion != "" {
		fmt.Fprintf(f.errOut(), "Suggestion: %s\n", suggestion)
	}
	return nil
}

func (f *OutputFormatter) encode(v any) error {
	return json.NewEncoder(f.out()).Encode(v)
}

// preview flattens and truncates a quote for one table cell
func preview(s string, limit int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit]) + models.PreviewEllipsis
}
