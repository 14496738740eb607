package tui

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"github.com/thenoetrevino/quotebank/internal/models"
	quoteservice "github.com/thenoetrevino/quotebank/internal/services/quote"
	"github.com/thenoetrevino/quotebank/internal/tui/huhforms"
	"github.com/thenoetrevino/quotebank/internal/tui/layers"
	"github.com/thenoetrevino/quotebank/internal/tui/state"
)

// quoteFormLines is the height of the quote text area
const quoteFormLines = 5

// ============================================================================
// QUOTE FORM (NEW + EDIT)
// ============================================================================

// openCreateForm opens an empty quote form.
func (m Model) openCreateForm() (tea.Model, tea.Cmd) {
	m.FormState.ResetQuoteForm()
	m.UIState.SetMode(state.QuoteFormMode)
	return m, m.buildQuoteForm()
}

// openEditSelected opens the edit form for the selected quote.
func (m Model) openEditSelected() (tea.Model, tea.Cmd) {
	q := m.ListState.Selected()
	if q == nil {
		return m, nil
	}
	return m.openEditForm(q.ID)
}

// openEditForm prefills the form from a fresh read of the quote.
func (m Model) openEditForm(id int) (tea.Model, tea.Cmd) {
	ctx, cancel := m.DBContext()
	defer cancel()

	q, err := m.App.QuoteService.GetQuote(ctx, id)
	if err != nil {
		m.UIState.ReturnToNormal()
		m.notifyStoreError("load", err)
		m.reload()
		return m, nil
	}

	m.FormState.ResetQuoteForm()
	m.FormState.LoadQuote(q.ID, q.Quote, q.Author, q.Category, q.Source)
	m.UIState.SetMode(state.EditFormMode)
	m.UIState.SetTargetQuoteID(q.ID)
	return m, m.buildQuoteForm()
}

// buildQuoteForm creates the huh form bound to FormState and returns its init command.
func (m *Model) buildQuoteForm() tea.Cmd {
	fs := m.FormState
	purpose := huhforms.PurposeCreate
	if fs.IsEditing() {
		purpose = huhforms.PurposeEdit
	}

	fs.QuoteForm = huhforms.CreateQuoteForm(huhforms.QuoteFormValues{
		Quote:    &fs.FormQuote,
		Author:   &fs.FormAuthor,
		Category: &fs.FormCategory,
		Source:   &fs.FormSource,
		Confirm:  &fs.FormConfirm,
	}, fs.IsEditing(), quoteFormLines).
		WithTheme(huhforms.CreateTheme(m.Config.ColorScheme, purpose)).
		WithWidth(m.formWidth())

	return fs.QuoteForm.Init()
}

// updateQuoteForm forwards messages to the quote form and handles esc and quick save.
func (m Model) updateQuoteForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.FormState.ResetQuoteForm()
			m.UIState.ReturnToNormal()
			return m, nil
		case "ctrl+c":
			return m, tea.Quit
		case m.Config.KeyMappings.SaveForm:
			m.FormState.FormConfirm = true
			return m.submitQuoteForm()
		}
	}

	return m.handleFormUpdate(msg, formConfig{
		form:    m.FormState.QuoteForm,
		setForm: func(f *huh.Form) { m.FormState.QuoteForm = f },
		onComplete: func(m Model) (tea.Model, tea.Cmd) {
			if !m.FormState.FormConfirm {
				m.FormState.ResetQuoteForm()
				m.UIState.ReturnToNormal()
				return m, nil
			}
			return m.submitQuoteForm()
		},
	})
}

// submitQuoteForm validates the form values and creates or updates the quote.
// Validation failures keep the form open with the entered values.
func (m Model) submitQuoteForm() (tea.Model, tea.Cmd) {
	fs := m.FormState
	ctx, cancel := m.DBContext()
	defer cancel()

	var (
		id  int
		err error
	)
	if fs.IsEditing() {
		id = fs.EditingQuoteID
		err = m.App.QuoteService.UpdateQuote(ctx, quoteservice.UpdateQuoteRequest{
			ID:       id,
			Quote:    fs.FormQuote,
			Author:   fs.FormAuthor,
			Category: fs.FormCategory,
			Source:   fs.FormSource,
		})
	} else {
		var created *models.Quote
		created, err = m.App.QuoteService.CreateQuote(ctx, quoteservice.CreateQuoteRequest{
			Quote:    fs.FormQuote,
			Author:   fs.FormAuthor,
			Category: fs.FormCategory,
			Source:   fs.FormSource,
		})
		if created != nil {
			id = created.ID
		}
	}

	if errors.Is(err, quoteservice.ErrValidation) {
		m.NotificationState.Error(err.Error())
		return m, m.buildQuoteForm()
	}

	editing := fs.IsEditing()
	fs.ResetQuoteForm()
	m.UIState.ReturnToNormal()

	if err != nil {
		m.notifyStoreError("save", err)
		m.reload()
		return m, nil
	}

	if editing {
		m.NotificationState.Info("Quote updated")
	} else {
		m.NotificationState.Info("Quote added")
	}
	m.reloadAndSelect(id)
	return m, nil
}

// ============================================================================
// EXPORT FORM
// ============================================================================

// openExportForm asks for the CSV path, defaulting to the last one used.
func (m Model) openExportForm() (tea.Model, tea.Cmd) {
	fs := m.FormState
	if strings.TrimSpace(fs.ExportPath) == "" {
		fs.ExportPath = m.Config.DefaultExportPath()
	}
	fs.ExportForm = huhforms.CreateExportForm(&fs.ExportPath, m.ListState.Len()).
		WithTheme(huhforms.CreateTheme(m.Config.ColorScheme, huhforms.PurposeExport)).
		WithWidth(m.formWidth())
	m.UIState.SetMode(state.ExportFormMode)
	return m, fs.ExportForm.Init()
}

// updateExportForm forwards messages to the export form.
func (m Model) updateExportForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.FormState.ResetExportForm()
			m.UIState.ReturnToNormal()
			return m, nil
		case "ctrl+c":
			return m, tea.Quit
		}
	}

	return m.handleFormUpdate(msg, formConfig{
		form:    m.FormState.ExportForm,
		setForm: func(f *huh.Form) { m.FormState.ExportForm = f },
		onComplete: func(m Model) (tea.Model, tea.Cmd) {
			m.FormState.ResetExportForm()
			m.UIState.ReturnToNormal()
			return m.exportListed(m.FormState.ExportPath)
		},
	})
}

// exportListed writes the quotes currently in the table to path.
func (m Model) exportListed(path string) (tea.Model, tea.Cmd) {
	ctx, cancel := m.DBContext()
	defer cancel()

	resolved := resolveExportPath(path, m.Config.ExportDirectory())
	quotes := m.ListState.Quotes()

	if err := m.App.QuoteService.ExportQuotes(ctx, quotes, resolved); err != nil {
		slog.Error("Error exporting quotes", "path", resolved, "error", err)
		m.NotificationState.Error(fmt.Sprintf("Export failed: %v", err))
		return m, nil
	}

	m.NotificationState.Info(fmt.Sprintf("Exported %d quotes to %s", len(quotes), resolved))
	return m, nil
}

// resolveExportPath expands a leading ~ and anchors relative paths in dir.
func resolveExportPath(path, dir string) string {
	path = strings.TrimSpace(path)
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	if !filepath.IsAbs(path) && dir != "" {
		path = filepath.Join(dir, path)
	}
	return path
}

// ============================================================================
// SHARED
// ============================================================================

// formConfig holds configuration for generic form handling
type formConfig struct {
	form       *huh.Form
	setForm    func(*huh.Form)
	onComplete func(Model) (tea.Model, tea.Cmd) // Called when the form completes
}

// handleFormUpdate forwards msg to a form and runs onComplete once it completes.
func (m Model) handleFormUpdate(msg tea.Msg, cfg formConfig) (tea.Model, tea.Cmd) {
	if cfg.form == nil {
		m.UIState.ReturnToNormal()
		return m, nil
	}

	model, cmd := cfg.form.Update(msg)
	form, ok := model.(*huh.Form)
	if !ok {
		return m, cmd
	}
	cfg.setForm(form)

	if form.State == huh.StateCompleted {
		return cfg.onComplete(m)
	}
	return m, cmd
}

// formWidth is the width forms render at inside their modal box
func (m Model) formWidth() int {
	return layers.ModalWidth(m.UIState.Width(), layers.FormMinWidth, layers.FormMaxWidth) - 6 // border + padding
}

// notifyStoreError logs a failed store call and shows a notification for it.
func (m *Model) notifyStoreError(action string, err error) {
	slog.Error("store call failed", "action", action, "error", err)
	if errors.Is(err, models.ErrQuoteNotFound) {
		m.NotificationState.Error("Quote not found")
		return
	}
	m.NotificationState.Error(fmt.Sprintf("Failed to %s quote", action))
}
