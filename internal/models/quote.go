package models

import "time"

// Quote represents a single recorded quote with its metadata
type Quote struct {
	ID        int       `json:"id"`
	Quote     string    `json:"quote"`
	Author    string    `json:"author"`
	Category  string    `json:"category"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"created_at"`
}

// GetID returns the quote ID (used by the CLI quiet output mode)
func (q *Quote) GetID() int {
	return q.ID
}

// Year returns the year the quote was recorded, or 0 if unknown
func (q *Quote) Year() int {
	if q.CreatedAt.IsZero() {
		return 0
	}
	return q.CreatedAt.Year()
}
