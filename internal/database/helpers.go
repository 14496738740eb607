package database

import (
	"database/sql"
	"strings"
)

// likeEscaper escapes the LIKE wildcards so search terms match literally.
// Used together with ESCAPE '\' in the query.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a LIKE pattern matching term anywhere in a column
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

// NullStringToString converts sql.NullString to string.
// Returns empty string if the value is not valid.
func NullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

// rowScanner is satisfied by *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}
