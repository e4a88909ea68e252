package database

import (
	"errors"
	"fmt"
	"strings"

	"github.com/albenaa/albenaa-api/internal/entity"
	"github.com/lib/pq"
)

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

// contentWhere builds the WHERE clause shared by the published-content
// listings: an optional category equality plus the published gate.
func contentWhere(filter entity.ContentFilter) (string, []any) {
	where := []string{}
	args := []any{}

	if filter.Category != "" {
		args = append(args, filter.Category)
		where = append(where, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.PublishedOnly {
		where = append(where, "published = TRUE")
	}
	if len(where) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(where, " AND "), args
}
