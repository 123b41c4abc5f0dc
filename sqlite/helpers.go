package sqlite

import (
	"fmt"
	"strings"
	"time"
)

// timestamp formats t the way every time column is stored.
func timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// parseTimestamp reads a time column written by timestamp.
func parseTimestamp(value, column string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse %s %q: %w", column, value, err)
	}
	return t, nil
}

// paginate returns the LIMIT/OFFSET tail of a query and its arguments.
// SQLite requires a LIMIT before OFFSET, so an offset alone uses LIMIT -1.
func paginate(limit, offset int) (string, []any) {
	var (
		clause strings.Builder
		args   []any
	)
	switch {
	case limit > 0:
		clause.WriteString(" LIMIT ?")
		args = append(args, limit)
	case offset > 0:
		clause.WriteString(" LIMIT -1")
	}
	if offset > 0 {
		clause.WriteString(" OFFSET ?")
		args = append(args, offset)
	}
	return clause.String(), args
}
