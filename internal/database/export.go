package database

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/thenoetrevino/quotebank/internal/models"
)

// WriteCSV writes the export header followed by one row per quote, in
// id, quote, author, category, source, created_at order.
func (r *Repository) WriteCSV(w io.Writer, quotes []*models.Quote) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(models.ExportHeader); err != nil {
		return fmt.Errorf("writing export header: %w", err)
	}
	for _, q := range quotes {
		if err := cw.Write(exportRow(q)); err != nil {
			return fmt.Errorf("writing quote %d: %w", q.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportCSV writes quotes to the file at path. The data goes to a temporary
// file in the same directory first and is renamed into place, so a failed
// export never leaves a partial file behind.
func (r *Repository) ExportCSV(quotes []*models.Quote, path string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".quotebank-export-*.csv")
	if err != nil {
		return fmt.Errorf("creating export file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	defer func() {
		// no-op once the rename succeeded
		if err := os.Remove(tmpName); err != nil && !os.IsNotExist(err) {
			slog.Warn("failed to remove temporary export file", "path", tmpName, "error", err)
		}
	}()

	if err := r.WriteCSV(tmp, quotes); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing export file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("setting export file permissions: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("moving export into place at %s: %w", path, err)
	}

	slog.Info("exported quotes", "path", path, "count", len(quotes))
	return nil
}

func exportRow(q *models.Quote) []string {
	created := ""
	if !q.CreatedAt.IsZero() {
		created = q.CreatedAt.Format(models.ExportTimeLayout)
	}
	return []string{
		strconv.Itoa(q.ID),
		q.Quote,
		q.Author,
		q.Category,
		q.Source,
		created,
	}
}
