package repositories

import (
	"database/sql"
	"strings"
)

// execer is satisfied by both *sql.DB and *sql.Tx so batch writers can run
// standalone or inside the reservation-creation transaction.
type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

func rowPlaceholders(nCols, nRows int) string {
	one := "(" + strings.TrimSuffix(strings.Repeat("?,", nCols), ",") + ")"
	parts := make([]string, nRows)
	for i := range parts {
		parts[i] = one
	}
	return strings.Join(parts, ",")
}

func flatten(rows [][]any) []any {
	out := make([]any, 0, len(rows)*len(rows[0]))
	for _, r := range rows {
		out = append(out, r...)
	}
	return out
}

// bulkInsert issues one multi-row INSERT covering all rows at once.
func bulkInsert(ex execer, table string, cols []string, rows [][]any) (sql.Result, error) {
	q := "INSERT INTO " + table + " (" + strings.Join(cols, ",") + ") VALUES " +
		rowPlaceholders(len(cols), len(rows))
	return ex.Exec(q, flatten(rows)...)
}

// bulkUpsert issues one multi-row INSERT ... ON DUPLICATE KEY UPDATE covering
// all identified rows at once. updates lists the assignment clauses.
func bulkUpsert(ex execer, table string, cols []string, rows [][]any, updates []string) error {
	q := "INSERT INTO " + table + " (" + strings.Join(cols, ",") + ") VALUES " +
		rowPlaceholders(len(cols), len(rows)) +
		" ON DUPLICATE KEY UPDATE " + strings.Join(updates, ", ")
	_, err := ex.Exec(q, flatten(rows)...)
	return err
}
