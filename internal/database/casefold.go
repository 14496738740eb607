package database

import (
	"database/sql/driver"

	"golang.org/x/text/cases"
	"modernc.org/sqlite"
)

// casefoldFunc is the SQL name of the Unicode case folding function.
// SQLite's LIKE only ignores case for ASCII letters.
const casefoldFunc = "casefold"

func init() {
	sqlite.MustRegisterDeterministicScalarFunction(casefoldFunc, 1, func(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
		switch v := args[0].(type) {
		case string:
			return foldCase(v), nil
		case []byte:
			return foldCase(string(v)), nil
		default:
			return v, nil
		}
	})
}

// foldCase folds s for caseless matching. A Caser is not safe for
// concurrent use, so each call gets its own.
func foldCase(s string) string {
	return cases.Fold().String(s)
}
